// Package layout decides which commands keep a workspace in master/stack
// shape after a window appears or disappears.
package layout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mj1618/persway/internal/model"
	"github.com/mj1618/persway/internal/platform"
)

var (
	ErrNoFocusedNode      = errors.New("no focused node")
	ErrNoParent           = errors.New("no parent")
	ErrNoFocusedWorkspace = errors.New("no focused workspace")
)

// Engine applies the master/stack policy. It keeps no state between calls;
// the main column is found again through its mark every time.
type Engine struct {
	logger *slog.Logger
}

// New creates an engine.
func New(logger *slog.Logger) *Engine {
	return &Engine{logger: logger}
}

// Autolayout reads a fresh tree through c and issues the commands the policy
// calls for. Commands are sent one by one; the first failure aborts the rest.
func (e *Engine) Autolayout(ctx context.Context, c platform.Client) error {
	tree, err := c.GetTree(ctx)
	if err != nil {
		return err
	}

	focused := tree.FocusedNode()
	if focused == nil {
		return ErrNoFocusedNode
	}
	if focused.IsFloating() || focused.PercentOrDefault() > 1.0 {
		e.logger.Debug("skipping non-tiled window", "id", focused.ID, "type", focused.Type)
		return nil
	}

	parent := tree.FocusedParent()
	if parent == nil {
		return ErrNoParent
	}
	if parent.Layout == model.LayoutStacked || parent.Layout == model.LayoutTabbed {
		e.logger.Debug("skipping stacked/tabbed parent", "id", parent.ID, "layout", parent.Layout)
		return nil
	}

	if !parent.IsWorkspace() || len(parent.Nodes) > 1 {
		return e.dockSecondary(ctx, c)
	}
	return e.markMain(ctx, c, parent.ID)
}

// dockSecondary docks the focused window beside the main column and restores
// the main column's width after sway re-flowed the workspace.
func (e *Engine) dockSecondary(ctx context.Context, c platform.Client) error {
	if err := e.run(ctx, c, DockGapCommand); err != nil {
		return err
	}
	workspaces, err := c.GetWorkspaces(ctx)
	if err != nil {
		return err
	}
	ws := model.FocusedWorkspace(workspaces)
	if ws == nil {
		return ErrNoFocusedWorkspace
	}
	return e.run(ctx, c, ResizeMainCommand(ws.ID))
}

// markMain frames the first window of a workspace and designates it as the
// main column.
func (e *Engine) markMain(ctx context.Context, c platform.Client, parentID int64) error {
	if err := e.run(ctx, c, SetWorkspaceGapCommand); err != nil {
		return err
	}
	return e.run(ctx, c, MarkMainCommand(parentID))
}

func (e *Engine) run(ctx context.Context, c platform.Client, command string) error {
	e.logger.Debug("run command", "command", command)
	rejected, err := platform.RunCommand(ctx, c, command)
	if err != nil {
		return fmt.Errorf("autolayout: %w", err)
	}
	for _, r := range rejected {
		e.logger.Warn("command not applied", "command", r.Command, "reason", r.Reason)
	}
	return nil
}
