// Package sway speaks the i3/sway IPC protocol over the compositor's Unix
// socket.
package sway

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"os"
	"sync"
	"time"

	"github.com/mj1618/persway/internal/model"
)

// ErrNoSocket is returned when neither SWAYSOCK nor I3SOCK is set.
var ErrNoSocket = errors.New("sway: SWAYSOCK and I3SOCK are unset; is sway running?")

// ErrSubscribed is returned for requests on a connection that carries an event stream.
var ErrSubscribed = errors.New("sway: connection is dedicated to an event stream")

// SocketPath returns the IPC socket of the running compositor.
func SocketPath() (string, error) {
	for _, env := range []string{"SWAYSOCK", "I3SOCK"} {
		if p := os.Getenv(env); p != "" {
			return p, nil
		}
	}
	return "", ErrNoSocket
}

// Conn is a single IPC connection. Requests are serialised; at most one is in
// flight at a time.
type Conn struct {
	mu         sync.Mutex
	conn       net.Conn
	r          *bufio.Reader
	subscribed bool
}

// Dial connects to the socket returned by SocketPath.
func Dial(ctx context.Context) (*Conn, error) {
	path, err := SocketPath()
	if err != nil {
		return nil, err
	}
	return DialPath(ctx, path)
}

// DialPath connects to the IPC socket at path.
func DialPath(ctx context.Context, path string) (*Conn, error) {
	var d net.Dialer
	c, err := d.DialContext(ctx, "unix", path)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to sway at %s: %w", path, err)
	}
	return NewConn(c), nil
}

// NewConn wraps an established connection.
func NewConn(c net.Conn) *Conn {
	return &Conn{conn: c, r: bufio.NewReader(c)}
}

// Close closes the underlying socket. It unblocks a pending EventStream.Next.
func (c *Conn) Close() error {
	return c.conn.Close()
}

// GetTree returns a fresh snapshot of the layout tree.
func (c *Conn) GetTree(ctx context.Context) (*model.Node, error) {
	var tree model.Node
	if err := c.request(ctx, msgGetTree, nil, &tree); err != nil {
		return nil, fmt.Errorf("get_tree: %w", err)
	}
	return &tree, nil
}

// GetWorkspaces lists all workspaces.
func (c *Conn) GetWorkspaces(ctx context.Context) ([]model.Workspace, error) {
	var ws []model.Workspace
	if err := c.request(ctx, msgGetWorkspaces, nil, &ws); err != nil {
		return nil, fmt.Errorf("get_workspaces: %w", err)
	}
	return ws, nil
}

// GetVersion returns the compositor version.
func (c *Conn) GetVersion(ctx context.Context) (model.Version, error) {
	var v model.Version
	if err := c.request(ctx, msgGetVersion, nil, &v); err != nil {
		return model.Version{}, fmt.Errorf("get_version: %w", err)
	}
	return v, nil
}

// RunCommand sends a command string. The compositor evaluates every clause
// on its own and reports one result per clause; a rejected clause is reported
// in the results, not as an error.
func (c *Conn) RunCommand(ctx context.Context, command string) ([]model.CommandResult, error) {
	var results []model.CommandResult
	if err := c.request(ctx, msgRunCommand, []byte(command), &results); err != nil {
		return nil, fmt.Errorf("run_command %q: %w", command, err)
	}
	return results, nil
}

func (c *Conn) request(ctx context.Context, t messageType, payload []byte, out any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.subscribed {
		return ErrSubscribed
	}

	reply, err := c.roundTrip(ctx, t, payload)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(reply, out); err != nil {
		return fmt.Errorf("decode reply: %w", err)
	}
	return nil
}

// roundTrip must be called with c.mu held.
func (c *Conn) roundTrip(ctx context.Context, t messageType, payload []byte) ([]byte, error) {
	defer c.watch(ctx)()

	if err := writeMessage(c.conn, t, payload); err != nil {
		return nil, c.ctxErr(ctx, fmt.Errorf("send: %w", err))
	}
	rt, reply, err := readMessage(c.r)
	if err != nil {
		return nil, c.ctxErr(ctx, fmt.Errorf("receive: %w", err))
	}
	if rt != t {
		return nil, fmt.Errorf("reply type %d does not match request type %d", rt, t)
	}
	return reply, nil
}

// watch unblocks socket I/O once ctx is done, for the duration of one
// exchange. The returned func restores a blocking socket.
func (c *Conn) watch(ctx context.Context) func() {
	stop := context.AfterFunc(ctx, func() {
		_ = c.conn.SetDeadline(time.Unix(1, 0))
	})
	return func() {
		stop()
		_ = c.conn.SetDeadline(time.Time{})
	}
}

func (c *Conn) ctxErr(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return err
}
