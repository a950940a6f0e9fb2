package platform

import (
	"context"
	"errors"
)

// ErrUnsupported is returned when no IPC backend has been registered.
var ErrUnsupported = errors.New("persway: no compositor IPC backend registered")

// DialFunc is set by the backend package via init().
// See internal/sway/register.go for the sway registration.
var DialFunc Dialer

// Dial opens a connection through the registered backend.
func Dial(ctx context.Context) (Conn, error) {
	if DialFunc == nil {
		return nil, ErrUnsupported
	}
	return DialFunc(ctx)
}
