package model

import "fmt"

// EventType names a sway IPC subscription class.
type EventType string

const (
	EventWorkspace EventType = "workspace"
	EventWindow    EventType = "window"
)

// WindowChange is the change field of a window event.
type WindowChange string

const (
	WindowNew        WindowChange = "new"
	WindowClose      WindowChange = "close"
	WindowFocus      WindowChange = "focus"
	WindowTitle      WindowChange = "title"
	WindowFullscreen WindowChange = "fullscreen_mode"
	WindowMove       WindowChange = "move"
	WindowFloating   WindowChange = "floating"
	WindowUrgent     WindowChange = "urgent"
	WindowMark       WindowChange = "mark"
)

// WorkspaceChange is the change field of a workspace event.
type WorkspaceChange string

const (
	WorkspaceInit   WorkspaceChange = "init"
	WorkspaceEmpty  WorkspaceChange = "empty"
	WorkspaceFocus  WorkspaceChange = "focus"
	WorkspaceMove   WorkspaceChange = "move"
	WorkspaceRename WorkspaceChange = "rename"
	WorkspaceUrgent WorkspaceChange = "urgent"
	WorkspaceReload WorkspaceChange = "reload"
)

// Event is a decoded message of a subscription stream.
type Event interface {
	Type() EventType
}

// WindowEvent is delivered when a view is created, closed, focused, ...
type WindowEvent struct {
	Change    WindowChange `json:"change"`
	Container Node         `json:"container"`
}

func (WindowEvent) Type() EventType { return EventWindow }

// WorkspaceEvent is delivered when a workspace is initialised, focused, ...
type WorkspaceEvent struct {
	Change  WorkspaceChange `json:"change"`
	Current *Node           `json:"current"`
	Old     *Node           `json:"old"`
}

func (WorkspaceEvent) Type() EventType { return EventWorkspace }

// UnknownEvent carries an event of a class nobody subscribed to.
type UnknownEvent struct {
	Code    uint32
	Payload []byte
}

func (e UnknownEvent) Type() EventType { return EventType(fmt.Sprintf("unknown(%#x)", e.Code)) }

// CommandResult is the outcome of one clause of a RUN_COMMAND request.
type CommandResult struct {
	Success    bool   `json:"success"               yaml:"success"`
	ParseError bool   `json:"parse_error,omitempty" yaml:"parse_error,omitempty"`
	Error      string `json:"error,omitempty"       yaml:"error,omitempty"`
}

// Version is the GET_VERSION reply.
type Version struct {
	Major         int    `json:"major"`
	Minor         int    `json:"minor"`
	Patch         int    `json:"patch"`
	HumanReadable string `json:"human_readable"`
}
