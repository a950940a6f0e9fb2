package daemon

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mj1618/persway/internal/layout"
	"github.com/mj1618/persway/internal/model"
	"github.com/mj1618/persway/internal/platform"
)

// ErrUnexpectedEvent is returned for an event of a class that was never
// subscribed to.
var ErrUnexpectedEvent = errors.New("unexpected event on subscription stream")

// Subscriptions are the event classes the dispatcher consumes.
var Subscriptions = []model.EventType{model.EventWindow, model.EventWorkspace}

// Dispatcher consumes the event stream and reacts to window and workspace
// lifecycle events over its own command connection.
type Dispatcher struct {
	client platform.Client
	engine *layout.Engine
	logger *slog.Logger
}

// NewDispatcher creates a dispatcher issuing commands over client.
func NewDispatcher(client platform.Client, engine *layout.Engine, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{client: client, engine: engine, logger: logger}
}

// Run handles events one at a time, in delivery order, until the stream
// ends (nil) or fails, or handling an event fails.
func (d *Dispatcher) Run(ctx context.Context, events platform.EventStream) error {
	for {
		ev, err := events.Next(ctx)
		if errors.Is(err, io.EOF) {
			d.logger.Info("event stream closed")
			return nil
		}
		if err != nil {
			return fmt.Errorf("event stream: %w", err)
		}
		if err := d.Handle(ctx, ev); err != nil {
			return err
		}
	}
}

// Handle reacts to a single event.
func (d *Dispatcher) Handle(ctx context.Context, ev model.Event) error {
	switch ev := ev.(type) {
	case model.WindowEvent:
		d.logger.Debug("window event", "change", ev.Change, "id", ev.Container.ID)
		switch ev.Change {
		case model.WindowNew, model.WindowClose:
			return d.engine.Autolayout(ctx, d.client)
		}
	case model.WorkspaceEvent:
		d.logger.Debug("workspace event", "change", ev.Change)
		if ev.Change == model.WorkspaceInit {
			rejected, err := platform.RunCommand(ctx, d.client, layout.SetWorkspaceGapCommand)
			if err != nil {
				return fmt.Errorf("workspace init: %w", err)
			}
			for _, r := range rejected {
				d.logger.Warn("command not applied", "command", r.Command, "reason", r.Reason)
			}
		}
	case nil:
		return fmt.Errorf("%w: nil event", ErrUnexpectedEvent)
	default:
		return fmt.Errorf("%w: %s", ErrUnexpectedEvent, ev.Type())
	}
	return nil
}
