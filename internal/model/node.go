package model

// NodeType is the kind of a node in the sway tree.
type NodeType string

const (
	NodeRoot        NodeType = "root"
	NodeOutput      NodeType = "output"
	NodeWorkspace   NodeType = "workspace"
	NodeCon         NodeType = "con"
	NodeFloatingCon NodeType = "floating_con"
	NodeDockArea    NodeType = "dockarea"
)

// Layout is the layout mode of a container.
type Layout string

const (
	LayoutSplitH  Layout = "splith"
	LayoutSplitV  Layout = "splitv"
	LayoutStacked Layout = "stacked"
	LayoutTabbed  Layout = "tabbed"
	LayoutOutput  Layout = "output"
	LayoutNone    Layout = "none"
)

// Node is one node of a GET_TREE snapshot.
type Node struct {
	ID            int64    `json:"id"                       yaml:"id"`
	Name          string   `json:"name,omitempty"           yaml:"name,omitempty"`
	Type          NodeType `json:"type"                     yaml:"type"`
	Layout        Layout   `json:"layout,omitempty"         yaml:"layout,omitempty"`
	Focused       bool     `json:"focused"                  yaml:"focused,omitempty"`
	Percent       *float64 `json:"percent,omitempty"        yaml:"percent,omitempty"`
	Focus         []int64  `json:"focus,omitempty"          yaml:"focus,omitempty"`
	Marks         []string `json:"marks,omitempty"          yaml:"marks,omitempty"`
	AppID         string   `json:"app_id,omitempty"         yaml:"app_id,omitempty"`
	Nodes         []Node   `json:"nodes,omitempty"          yaml:"nodes,omitempty"`
	FloatingNodes []Node   `json:"floating_nodes,omitempty" yaml:"floating_nodes,omitempty"`
}

// PercentOrDefault returns the size percentage, or 1.0 when sway omitted it.
func (n *Node) PercentOrDefault() float64 {
	if n.Percent == nil {
		return 1.0
	}
	return *n.Percent
}

// IsFloating reports whether n is a floating container.
func (n *Node) IsFloating() bool {
	return n.Type == NodeFloatingCon
}

// IsWorkspace reports whether n is a workspace.
func (n *Node) IsWorkspace() bool {
	return n.Type == NodeWorkspace
}

// HasMark reports whether mark is attached to n.
func (n *Node) HasMark(mark string) bool {
	for _, m := range n.Marks {
		if m == mark {
			return true
		}
	}
	return false
}

// Workspace is one entry of a GET_WORKSPACES reply.
type Workspace struct {
	ID      int64  `json:"id"      yaml:"id"`
	Num     int    `json:"num"     yaml:"num"`
	Name    string `json:"name"    yaml:"name"`
	Focused bool   `json:"focused" yaml:"focused"`
	Visible bool   `json:"visible" yaml:"visible"`
	Urgent  bool   `json:"urgent"  yaml:"urgent,omitempty"`
	Output  string `json:"output"  yaml:"output"`
}

// FocusedWorkspace returns the focused workspace of the list, or nil.
func FocusedWorkspace(workspaces []Workspace) *Workspace {
	for i := range workspaces {
		if workspaces[i].Focused {
			return &workspaces[i]
		}
	}
	return nil
}
