// Package platformtest provides in-memory control connections for tests.
package platformtest

import (
	"context"
	"io"
	"sync"

	"github.com/mj1618/persway/internal/model"
	"github.com/mj1618/persway/internal/platform"
)

// Conn is a scripted platform.Conn. It records every command it receives.
type Conn struct {
	mu sync.Mutex

	Tree       *model.Node
	Workspaces []model.Workspace
	// Trees, when set, are returned by successive GetTree calls. The last one repeats.
	Trees []*model.Node

	TreeErr       error
	WorkspacesErr error
	SubscribeErr  error

	// FailOn maps a command to the error RunCommand returns for it.
	FailOn map[string]error
	// Results maps a command to the per-clause reply RunCommand returns for it.
	Results map[string][]model.CommandResult

	Stream *Stream

	commands   []string
	subscribed []model.EventType
	treeReads  int
	closed     bool
}

var _ platform.Conn = (*Conn)(nil)

func (c *Conn) GetTree(context.Context) (*model.Node, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.treeReads++
	if c.TreeErr != nil {
		return nil, c.TreeErr
	}
	if n := len(c.Trees); n > 0 {
		return c.Trees[min(c.treeReads, n)-1], nil
	}
	return c.Tree, nil
}

func (c *Conn) GetWorkspaces(context.Context) ([]model.Workspace, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.WorkspacesErr != nil {
		return nil, c.WorkspacesErr
	}
	return c.Workspaces, nil
}

func (c *Conn) RunCommand(_ context.Context, command string) ([]model.CommandResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.commands = append(c.commands, command)
	if err, ok := c.FailOn[command]; ok {
		return nil, err
	}
	if res, ok := c.Results[command]; ok {
		return res, nil
	}
	return []model.CommandResult{{Success: true}}, nil
}

func (c *Conn) Subscribe(_ context.Context, kinds ...model.EventType) (platform.EventStream, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.SubscribeErr != nil {
		return nil, c.SubscribeErr
	}
	c.subscribed = append(c.subscribed, kinds...)
	if c.Stream == nil {
		c.Stream = NewStream()
	}
	return c.Stream, nil
}

func (c *Conn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

// Commands returns the commands received so far.
func (c *Conn) Commands() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.commands...)
}

// Subscribed returns the event classes passed to Subscribe.
func (c *Conn) Subscribed() []model.EventType {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]model.EventType(nil), c.subscribed...)
}

// TreeReads returns how many snapshots were fetched.
func (c *Conn) TreeReads() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.treeReads
}

// Closed reports whether Close was called.
func (c *Conn) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

type item struct {
	ev  model.Event
	err error
}

// Stream is a platform.EventStream fed by the test.
type Stream struct {
	items     chan item
	done      chan struct{}
	closeOnce sync.Once
}

var _ platform.EventStream = (*Stream)(nil)

// NewStream returns an empty stream.
func NewStream() *Stream {
	return &Stream{items: make(chan item, 64), done: make(chan struct{})}
}

// Events returns a stream that yields evs and then ends.
func Events(evs ...model.Event) *Stream {
	s := NewStream()
	for _, ev := range evs {
		s.Push(ev)
	}
	s.End()
	return s
}

// Push queues an event.
func (s *Stream) Push(ev model.Event) {
	s.items <- item{ev: ev}
}

// Fail queues a stream error.
func (s *Stream) Fail(err error) {
	s.items <- item{err: err}
}

// End queues the end of the stream.
func (s *Stream) End() {
	s.items <- item{err: io.EOF}
}

func (s *Stream) Next(ctx context.Context) (model.Event, error) {
	select {
	case it := <-s.items:
		return it.ev, it.err
	case <-s.done:
		return nil, io.EOF
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (s *Stream) Close() error {
	s.closeOnce.Do(func() { close(s.done) })
	return nil
}
