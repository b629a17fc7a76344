package command

import (
	"fmt"
)

// MetricsConfig exposes prometheus metrics over HTTP. A zero port disables
// the endpoint; commands are still counted.
type MetricsConfig struct {
	Port int `json:"port"`
}

func (c *MetricsConfig) validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("metrics port %d is out of range", c.Port)
	}
	return nil
}
