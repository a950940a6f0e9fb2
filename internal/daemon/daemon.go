// Package daemon wires the event dispatch loop and the termination signal
// handler around two independent compositor connections.
package daemon

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"golang.org/x/sync/errgroup"

	"github.com/mj1618/persway/internal/layout"
	"github.com/mj1618/persway/internal/platform"
)

// Config is captured once at startup and never re-read.
type Config struct {
	// ExitCommand is run when the daemon is asked to terminate. Empty sends an
	// empty command.
	ExitCommand string
}

// Daemon owns the two long-running tasks of the process.
type Daemon struct {
	cfg    Config
	dial   platform.Dialer
	logger *slog.Logger

	// Overridable for tests.
	exit   func(code int)
	notify func(c chan<- os.Signal, sig ...os.Signal)
	stop   func(c chan<- os.Signal)
}

// New creates a daemon that dials through dial.
func New(cfg Config, dial platform.Dialer, logger *slog.Logger) *Daemon {
	return &Daemon{
		cfg:    cfg,
		dial:   dial,
		logger: logger,
		exit:   os.Exit,
		notify: signal.Notify,
		stop:   signal.Stop,
	}
}

// Run blocks until the event stream ends or fails. A termination signal ends
// the process from within the signal task instead.
func (d *Daemon) Run(ctx context.Context) error {
	sigs := make(chan os.Signal, 1)
	d.notify(sigs, Signals()...)
	defer d.stop(sigs)

	commands, err := d.dial(ctx)
	if err != nil {
		return fmt.Errorf("command connection: %w", err)
	}
	defer commands.Close()
	if v, ok := commands.(platform.Versioner); ok {
		if version, err := v.GetVersion(ctx); err == nil {
			d.logger.Info("connected", "compositor", version.HumanReadable)
		}
	}

	sub, err := d.dial(ctx)
	if err != nil {
		return fmt.Errorf("event connection: %w", err)
	}
	defer sub.Close()
	events, err := sub.Subscribe(ctx, Subscriptions...)
	if err != nil {
		return err
	}
	defer events.Close()

	handler := NewSignalHandler(d.cfg.ExitCommand, d.dial, d.exit, d.logger)
	dispatcher := NewDispatcher(commands, layout.New(d.logger), d.logger)

	sigCtx, cancelSignals := context.WithCancel(ctx)
	defer cancelSignals()

	var g errgroup.Group
	g.Go(func() error {
		return handler.Run(sigCtx, sigs)
	})
	g.Go(func() error {
		defer func() {
			// no more signal delivery needed; let the signal task wind down
			d.stop(sigs)
			cancelSignals()
		}()
		return dispatcher.Run(ctx, events)
	})
	if err := g.Wait(); err != nil {
		d.logger.Error("daemon stopped", "error", err)
		return err
	}
	d.logger.Info("daemon stopped")
	return nil
}
