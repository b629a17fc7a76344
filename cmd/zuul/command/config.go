package command

import (
	"fmt"
	"log/slog"

	"github.com/pixil98/go-errors"
)

type Config struct {
	Console   bool             `json:"console"`
	Seed      int64            `json:"seed"`
	Locale    LocaleConfig     `json:"locale"`
	World     WorldConfig      `json:"world"`
	Listeners []ListenerConfig `json:"listeners"`
	Nats      NatsConfig       `json:"nats"`
	Metrics   MetricsConfig    `json:"metrics"`
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	if !c.Console && len(c.Listeners) == 0 {
		el.Add(fmt.Errorf("nothing to serve: enable console or configure a listener"))
	}

	for i, l := range c.Listeners {
		err := l.validate()
		if err != nil {
			el.Add(fmt.Errorf("listener %d: %w", i, err))
		}
	}

	el.Add(c.Locale.validate())
	el.Add(c.World.validate())
	el.Add(c.Nats.validate())
	el.Add(c.Metrics.validate())

	return el.Err()
}

// LogLevel parses a level name such as "debug" or "warn". Anything
// unrecognized means info.
func LogLevel(name string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return level
}
