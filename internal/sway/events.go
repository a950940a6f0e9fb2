package sway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"

	"github.com/mj1618/persway/internal/model"
)

type subscribeReply struct {
	Success bool `json:"success"`
}

// EventStream yields events of a subscribed connection in delivery order.
type EventStream struct {
	conn *Conn
}

// Subscribe registers interest in the given event classes and turns c into an
// event stream. No further requests may be sent on c.
func (c *Conn) Subscribe(ctx context.Context, kinds ...model.EventType) (*EventStream, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.subscribed {
		return nil, ErrSubscribed
	}
	payload, err := json.Marshal(kinds)
	if err != nil {
		return nil, fmt.Errorf("subscribe: %w", err)
	}
	raw, err := c.roundTrip(ctx, msgSubscribe, payload)
	if err != nil {
		return nil, fmt.Errorf("subscribe: %w", err)
	}
	var reply subscribeReply
	if err := json.Unmarshal(raw, &reply); err != nil {
		return nil, fmt.Errorf("subscribe: decode reply: %w", err)
	}
	if !reply.Success {
		return nil, fmt.Errorf("subscribe to %v rejected by compositor", kinds)
	}
	c.subscribed = true
	return &EventStream{conn: c}, nil
}

// Next blocks until the next event arrives. It returns io.EOF once the
// compositor closes the socket.
func (s *EventStream) Next(ctx context.Context) (model.Event, error) {
	c := s.conn
	c.mu.Lock()
	defer c.mu.Unlock()
	defer c.watch(ctx)()

	t, payload, err := readMessage(c.r)
	if err != nil {
		if errors.Is(err, net.ErrClosed) || errors.Is(err, io.ErrClosedPipe) {
			return nil, io.EOF
		}
		return nil, c.ctxErr(ctx, err)
	}
	return decodeEvent(t, payload)
}

// Close closes the stream's connection.
func (s *EventStream) Close() error {
	return s.conn.Close()
}

func decodeEvent(t messageType, payload []byte) (model.Event, error) {
	if !t.isEvent() {
		return nil, fmt.Errorf("sway: unexpected reply type %d on event stream", t)
	}
	switch t {
	case evWindow:
		var ev model.WindowEvent
		if err := json.Unmarshal(payload, &ev); err != nil {
			return nil, fmt.Errorf("decode window event: %w", err)
		}
		return ev, nil
	case evWorkspace:
		var ev model.WorkspaceEvent
		if err := json.Unmarshal(payload, &ev); err != nil {
			return nil, fmt.Errorf("decode workspace event: %w", err)
		}
		return ev, nil
	default:
		return model.UnknownEvent{Code: uint32(t), Payload: payload}, nil
	}
}
