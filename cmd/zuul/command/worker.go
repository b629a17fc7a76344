package command

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/pixil98/go-service"
	"github.com/pixil98/go-zuul/internal/commands"
	"github.com/pixil98/go-zuul/internal/console"
	"github.com/pixil98/go-zuul/internal/display"
	"github.com/pixil98/go-zuul/internal/listener"
	"github.com/pixil98/go-zuul/internal/messaging"
	"github.com/pixil98/go-zuul/internal/metrics"
	"github.com/pixil98/go-zuul/internal/session"
	"github.com/prometheus/client_golang/prometheus"
)

// NewWorkerBuilder returns the worker builder for service.NewApp. stop is
// called when the console game ends so the process exits with it.
func NewWorkerBuilder(stop context.CancelFunc) func(config interface{}) (service.WorkerList, error) {
	return func(config interface{}) (service.WorkerList, error) {
		cfg, ok := config.(*Config)
		if !ok {
			return nil, fmt.Errorf("unable to cast config")
		}
		return buildWorkers(cfg, stop)
	}
}

func buildWorkers(cfg *Config, stop context.CancelFunc) (service.WorkerList, error) {
	cfg.Locale.apply()

	layout, err := cfg.World.BuildLayout()
	if err != nil {
		return nil, fmt.Errorf("loading world: %w", err)
	}
	slog.Info("world loaded", "rooms", len(layout.Rooms), "items", len(layout.Items), "start", layout.Start)

	workers := service.WorkerList{}

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	if cfg.Metrics.Port != 0 {
		workers["metrics"] = metrics.NewServer(cfg.Metrics.Port, reg)
	}

	handlerOpts := []commands.HandlerOpt{commands.WithRecorder(m)}
	if cfg.Nats.Enabled {
		natsServer, err := cfg.Nats.buildNatsServer()
		if err != nil {
			return nil, fmt.Errorf("creating nats server: %w", err)
		}
		workers["nats"] = natsServer
		workers["journal"] = messaging.NewJournalLogger(natsServer)
		handlerOpts = append(handlerOpts, commands.WithPublisher(natsServer))
	}

	cmdHandler, err := commands.NewHandler(handlerOpts...)
	if err != nil {
		return nil, fmt.Errorf("creating command handler: %w", err)
	}

	sessions := session.NewManager(layout, cmdHandler,
		session.WithSeed(cfg.Seed),
		session.WithRecorder(m),
	)

	if cfg.Console {
		workers["console"] = console.New(os.Stdin, os.Stdout, sessions, stop, display.IsTerminal(os.Stdout))
	}

	// Create Listeners
	cm := listener.NewConnectionManager(sessions)
	listeners := make(service.WorkerList, len(cfg.Listeners))
	for i, l := range cfg.Listeners {
		lw, err := l.BuildListener(cm)
		if err != nil {
			return nil, fmt.Errorf("creating listener %d: %w", i, err)
		}
		listeners[fmt.Sprintf("listener-%d", i)] = lw
	}
	if len(listeners) > 0 {
		workers["listeners"] = &listeners
	}

	return workers, nil
}
