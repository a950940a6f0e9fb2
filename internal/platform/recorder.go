package platform

import (
	"context"

	"github.com/mj1618/persway/internal/model"
)

// Recorder is a dry-run Client. Reads go to the wrapped client; commands are
// recorded and reported as successful without reaching the compositor.
type Recorder struct {
	Client   Client
	Commands []string
}

// NewRecorder wraps c.
func NewRecorder(c Client) *Recorder {
	return &Recorder{Client: c}
}

func (r *Recorder) GetTree(ctx context.Context) (*model.Node, error) {
	return r.Client.GetTree(ctx)
}

func (r *Recorder) GetWorkspaces(ctx context.Context) ([]model.Workspace, error) {
	return r.Client.GetWorkspaces(ctx)
}

func (r *Recorder) RunCommand(_ context.Context, command string) ([]model.CommandResult, error) {
	r.Commands = append(r.Commands, command)
	return []model.CommandResult{{Success: true}}, nil
}
