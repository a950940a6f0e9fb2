package layout

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mj1618/persway/internal/logging"
	"github.com/mj1618/persway/internal/model"
	"github.com/mj1618/persway/internal/platform"
	"github.com/mj1618/persway/internal/platform/platformtest"
)

func newEngine() *Engine {
	return New(logging.NewNop())
}

// oneWindow is a workspace (id 1) holding its first window (id 10).
func oneWindow() *model.Node {
	return platformtest.Workspace(model.Node{
		ID: 1, Type: model.NodeWorkspace, Layout: model.LayoutSplitH, Focus: []int64{10},
		Nodes: []model.Node{platformtest.Window(10, true)},
	})
}

// twoWindows is the same workspace after a second window (id 11) appeared
// and took focus.
func twoWindows() *model.Node {
	return platformtest.Workspace(model.Node{
		ID: 1, Type: model.NodeWorkspace, Layout: model.LayoutSplitH, Focus: []int64{11, 10},
		Nodes: []model.Node{
			platformtest.Window(10, false),
			platformtest.Window(11, true),
		},
	})
}

func focusedWorkspace(id int64) []model.Workspace {
	return []model.Workspace{
		{ID: 7, Num: 2, Name: "2"},
		{ID: id, Num: 1, Name: "1", Focused: true},
	}
}

func TestAutolayout_FirstWindow(t *testing.T) {
	conn := &platformtest.Conn{Tree: oneWindow()}

	require.NoError(t, newEngine().Autolayout(context.Background(), conn))
	assert.Equal(t, []string{
		"gaps horizontal current set 752",
		"mark --add main_1",
	}, conn.Commands())
}

func TestAutolayout_SecondWindow(t *testing.T) {
	conn := &platformtest.Conn{Tree: twoWindows(), Workspaces: focusedWorkspace(3)}

	require.NoError(t, newEngine().Autolayout(context.Background(), conn))
	assert.Equal(t, []string{
		"gaps right current set 0",
		`[con_mark="main_3"] resize set 1920px`,
	}, conn.Commands())
}

func TestAutolayout_NestedSplitParent(t *testing.T) {
	// workspace 1 → splitv container 20 → windows 21, 22 (focused)
	tree := platformtest.Workspace(model.Node{
		ID: 1, Type: model.NodeWorkspace, Layout: model.LayoutSplitH, Focus: []int64{20},
		Nodes: []model.Node{{
			ID: 20, Type: model.NodeCon, Layout: model.LayoutSplitV, Focus: []int64{22, 21},
			Nodes: []model.Node{platformtest.Window(21, false), platformtest.Window(22, true)},
		}},
	})
	conn := &platformtest.Conn{Tree: tree, Workspaces: focusedWorkspace(1)}

	require.NoError(t, newEngine().Autolayout(context.Background(), conn))
	assert.Equal(t, []string{
		"gaps right current set 0",
		`[con_mark="main_1"] resize set 1920px`,
	}, conn.Commands())
}

func TestAutolayout_UsesFocusedWorkspaceNotParent(t *testing.T) {
	conn := &platformtest.Conn{Tree: twoWindows(), Workspaces: focusedWorkspace(42)}

	require.NoError(t, newEngine().Autolayout(context.Background(), conn))
	assert.Contains(t, conn.Commands(), `[con_mark="main_42"] resize set 1920px`)
}

func TestAutolayout_NoOps(t *testing.T) {
	floating := platformtest.Workspace(model.Node{
		ID: 1, Type: model.NodeWorkspace, Layout: model.LayoutSplitH, Focus: []int64{30},
		Nodes:         []model.Node{platformtest.Window(10, false)},
		FloatingNodes: []model.Node{{ID: 30, Type: model.NodeFloatingCon, Focused: true}},
	})
	oversized := twoWindows()
	oversized.Nodes[0].Nodes[0].Nodes[1].Percent = platformtest.Percent(1.2)

	tests := []struct {
		name string
		tree *model.Node
	}{
		{"floating", floating},
		{"percent above one", oversized},
		{"stacked parent", withLayout(twoWindows(), model.LayoutStacked)},
		{"tabbed parent", withLayout(twoWindows(), model.LayoutTabbed)},
		{"tabbed first window", withLayout(oneWindow(), model.LayoutTabbed)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn := &platformtest.Conn{Tree: tt.tree, Workspaces: focusedWorkspace(1)}
			require.NoError(t, newEngine().Autolayout(context.Background(), conn))
			assert.Empty(t, conn.Commands())
		})
	}
}

func withLayout(tree *model.Node, layout model.Layout) *model.Node {
	tree.Nodes[0].Nodes[0].Layout = layout
	return tree
}

func TestAutolayout_NoFocusedNode(t *testing.T) {
	tree := platformtest.Workspace(model.Node{
		ID: 1, Type: model.NodeWorkspace, Layout: model.LayoutSplitH,
		Nodes: []model.Node{platformtest.Window(10, false)},
	})
	conn := &platformtest.Conn{Tree: tree}

	err := newEngine().Autolayout(context.Background(), conn)
	assert.ErrorIs(t, err, ErrNoFocusedNode)
	assert.EqualError(t, err, "no focused node")
	assert.Empty(t, conn.Commands())
}

func TestAutolayout_NoParent(t *testing.T) {
	conn := &platformtest.Conn{Tree: &model.Node{ID: 1, Type: model.NodeRoot, Focused: true}}

	err := newEngine().Autolayout(context.Background(), conn)
	assert.ErrorIs(t, err, ErrNoParent)
	assert.Empty(t, conn.Commands())
}

func TestAutolayout_NoFocusedWorkspace(t *testing.T) {
	conn := &platformtest.Conn{Tree: twoWindows(), Workspaces: []model.Workspace{{ID: 3}}}

	err := newEngine().Autolayout(context.Background(), conn)
	assert.ErrorIs(t, err, ErrNoFocusedWorkspace)
	assert.Equal(t, []string{"gaps right current set 0"}, conn.Commands())
}

func TestAutolayout_FirstFailureAborts(t *testing.T) {
	boom := errors.New("broken pipe")

	t.Run("dock gap", func(t *testing.T) {
		conn := &platformtest.Conn{
			Tree:          twoWindows(),
			WorkspacesErr: errors.New("must not be queried"),
			FailOn:        map[string]error{DockGapCommand: boom},
		}
		err := newEngine().Autolayout(context.Background(), conn)
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, []string{"gaps right current set 0"}, conn.Commands())
	})

	t.Run("workspace gap", func(t *testing.T) {
		conn := &platformtest.Conn{
			Tree:   oneWindow(),
			FailOn: map[string]error{SetWorkspaceGapCommand: boom},
		}
		err := newEngine().Autolayout(context.Background(), conn)
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, []string{"gaps horizontal current set 752"}, conn.Commands())
	})

	t.Run("workspace listing", func(t *testing.T) {
		conn := &platformtest.Conn{Tree: twoWindows(), WorkspacesErr: boom}
		err := newEngine().Autolayout(context.Background(), conn)
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, []string{"gaps right current set 0"}, conn.Commands())
	})

	t.Run("tree", func(t *testing.T) {
		conn := &platformtest.Conn{TreeErr: boom}
		err := newEngine().Autolayout(context.Background(), conn)
		assert.ErrorIs(t, err, boom)
		assert.Empty(t, conn.Commands())
	})
}

func TestAutolayout_ParseErrorAborts(t *testing.T) {
	conn := &platformtest.Conn{
		Tree: oneWindow(),
		Results: map[string][]model.CommandResult{
			SetWorkspaceGapCommand: {{Success: false, ParseError: true, Error: "Unknown/invalid command"}},
		},
	}

	err := newEngine().Autolayout(context.Background(), conn)
	var cmdErr *platform.CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, SetWorkspaceGapCommand, cmdErr.Command)
	assert.Len(t, conn.Commands(), 1)
}

func TestAutolayout_UnmatchedMainMarkContinues(t *testing.T) {
	resize := ResizeMainCommand(3)
	conn := &platformtest.Conn{
		Tree:       twoWindows(),
		Workspaces: focusedWorkspace(3),
		Results: map[string][]model.CommandResult{
			resize: {{Success: false, Error: "No matching node"}},
		},
	}

	require.NoError(t, newEngine().Autolayout(context.Background(), conn))
	assert.Equal(t, []string{DockGapCommand, resize}, conn.Commands())
}

func TestAutolayout_Idempotent(t *testing.T) {
	conn := &platformtest.Conn{Tree: twoWindows(), Workspaces: focusedWorkspace(3)}
	engine := newEngine()

	require.NoError(t, engine.Autolayout(context.Background(), conn))
	require.NoError(t, engine.Autolayout(context.Background(), conn))

	cmds := conn.Commands()
	require.Len(t, cmds, 4)
	assert.Equal(t, cmds[:2], cmds[2:])
	assert.Equal(t, 2, conn.TreeReads(), "every decision must fetch a fresh tree")
}

func TestAutolayout_DoesNotMutateSnapshot(t *testing.T) {
	tree := twoWindows()
	before := *twoWindows()
	conn := &platformtest.Conn{Tree: tree, Workspaces: focusedWorkspace(3)}

	require.NoError(t, newEngine().Autolayout(context.Background(), conn))
	assert.Equal(t, before, *tree)
}

func TestAutolayout_DryRun(t *testing.T) {
	conn := &platformtest.Conn{Tree: oneWindow()}
	rec := platform.NewRecorder(conn)

	require.NoError(t, newEngine().Autolayout(context.Background(), rec))
	assert.Equal(t, []string{SetWorkspaceGapCommand, MarkMainCommand(1)}, rec.Commands)
	assert.Empty(t, conn.Commands())
}

func TestCommandLiterals(t *testing.T) {
	assert.Equal(t, "gaps horizontal current set 752", SetWorkspaceGapCommand)
	assert.Equal(t, "gaps right current set 0", DockGapCommand)
	assert.Equal(t, "main_5", MainMark(5))
	assert.Equal(t, "mark --add main_5", MarkMainCommand(5))
	assert.Equal(t, `[con_mark="main_5"] resize set 1920px`, ResizeMainCommand(5))
}
