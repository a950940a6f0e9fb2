package platform

import (
	"context"

	"github.com/mj1618/persway/internal/model"
)

// Client issues requests over one control connection.
type Client interface {
	// GetTree returns a fresh snapshot of the layout tree.
	GetTree(ctx context.Context) (*model.Node, error)
	// GetWorkspaces lists the workspaces of all outputs.
	GetWorkspaces(ctx context.Context) ([]model.Workspace, error)
	// RunCommand sends a compositor command string and returns one result per clause.
	RunCommand(ctx context.Context, command string) ([]model.CommandResult, error)
}

// EventStream yields subscription events in delivery order.
type EventStream interface {
	// Next blocks until an event arrives. io.EOF marks the end of the stream.
	Next(ctx context.Context) (model.Event, error)
	Close() error
}

// Conn is a control connection that can also be turned into an event stream.
type Conn interface {
	Client
	Subscribe(ctx context.Context, kinds ...model.EventType) (EventStream, error)
	Close() error
}

// Dialer opens a new, independent control connection.
type Dialer func(ctx context.Context) (Conn, error)

// Versioner is implemented by connections that can report the compositor version.
type Versioner interface {
	GetVersion(ctx context.Context) (model.Version, error)
}
