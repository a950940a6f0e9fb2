package sway

import (
	"context"

	"github.com/mj1618/persway/internal/model"
	"github.com/mj1618/persway/internal/platform"
)

func init() {
	platform.DialFunc = func(ctx context.Context) (platform.Conn, error) {
		c, err := Dial(ctx)
		if err != nil {
			return nil, err
		}
		return platformConn{c}, nil
	}
}

// platformConn adapts Conn to platform.Conn.
type platformConn struct {
	*Conn
}

func (p platformConn) Subscribe(ctx context.Context, kinds ...model.EventType) (platform.EventStream, error) {
	s, err := p.Conn.Subscribe(ctx, kinds...)
	if err != nil {
		return nil, err
	}
	return s, nil
}
