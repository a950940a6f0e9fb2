package platformtest

import "github.com/mj1618/persway/internal/model"

// Percent returns a pointer to f, for model.Node.Percent.
func Percent(f float64) *float64 { return &f }

// Workspace wraps a workspace node in a root (id 101) and output (id 102)
// with a consistent focus stack, the way GET_TREE reports it.
func Workspace(ws model.Node) *model.Node {
	return &model.Node{
		ID: 101, Type: model.NodeRoot, Focus: []int64{102},
		Nodes: []model.Node{{
			ID: 102, Type: model.NodeOutput, Layout: model.LayoutOutput, Focus: []int64{ws.ID},
			Nodes: []model.Node{ws},
		}},
	}
}

// Window returns a focused or unfocused tiled window.
func Window(id int64, focused bool) model.Node {
	return model.Node{ID: id, Type: model.NodeCon, Layout: model.LayoutNone, Focused: focused, Percent: Percent(1.0)}
}
