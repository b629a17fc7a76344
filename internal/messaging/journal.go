package messaging

import (
	"context"
	"fmt"
	"log/slog"
)

// JournalSubjects matches every session's command events.
const JournalSubjects = "zuul.session.>"

// JournalLogger writes every journaled command event to the debug log.
type JournalLogger struct {
	server *NatsServer
}

func NewJournalLogger(server *NatsServer) *JournalLogger {
	return &JournalLogger{server: server}
}

func (j *JournalLogger) Start(ctx context.Context) error {
	select {
	case <-j.server.Ready():
	case <-ctx.Done():
		return nil
	}

	unsubscribe, err := j.server.Subscribe(JournalSubjects, func(subject string, data []byte) {
		slog.DebugContext(ctx, "command event", "subject", subject, "event", string(data))
	})
	if err != nil {
		return fmt.Errorf("subscribing to %s: %w", JournalSubjects, err)
	}

	<-ctx.Done()
	unsubscribe()
	return nil
}
