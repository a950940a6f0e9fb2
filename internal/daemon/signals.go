package daemon

import (
	"context"
	"log/slog"
	"os"

	"golang.org/x/sys/unix"

	"github.com/mj1618/persway/internal/platform"
)

// Signals are the termination signals that trigger the exit command.
func Signals() []os.Signal {
	return []os.Signal{unix.SIGHUP, unix.SIGINT, unix.SIGQUIT, unix.SIGTERM}
}

// SignalHandler runs the exit command on the first termination signal and
// ends the process.
type SignalHandler struct {
	exitCommand string
	dial        platform.Dialer
	exit        func(code int)
	logger      *slog.Logger
}

// NewSignalHandler creates a handler. dial opens the connection used for the
// exit command; exit terminates the process.
func NewSignalHandler(exitCommand string, dial platform.Dialer, exit func(int), logger *slog.Logger) *SignalHandler {
	return &SignalHandler{exitCommand: exitCommand, dial: dial, exit: exit, logger: logger}
}

// Run waits for the first signal on sigs. It returns nil when ctx is done, or
// when sigs is closed, before any signal arrived.
func (h *SignalHandler) Run(ctx context.Context, sigs <-chan os.Signal) error {
	select {
	case <-ctx.Done():
		return nil
	case sig, ok := <-sigs:
		if !ok {
			return nil
		}
		h.logger.Info("received signal, running exit command", "signal", sig, "command", h.exitCommand)
		h.exit(h.runExitCommand())
		return nil
	}
}

// runExitCommand runs the exit command on a fresh connection and returns the
// process exit status.
func (h *SignalHandler) runExitCommand() int {
	ctx := context.Background()
	conn, err := h.dial(ctx)
	if err != nil {
		h.logger.Error("exit command: connect failed", "error", err)
		return 1
	}
	defer conn.Close()

	rejected, err := platform.RunCommand(ctx, conn, h.exitCommand)
	if err != nil {
		h.logger.Error("exit command failed", "error", err)
		return 1
	}
	for _, r := range rejected {
		h.logger.Warn("exit command not applied", "command", r.Command, "reason", r.Reason)
	}
	return 0
}
