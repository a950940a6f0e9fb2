package layout

import "fmt"

const (
	// MainGap is the horizontal workspace gap while a workspace holds only its main column.
	MainGap = 752
	// MainWidth is the width the main column is re-asserted to.
	MainWidth = 1920
)

var (
	// SetWorkspaceGapCommand frames a lone main window.
	SetWorkspaceGapCommand = fmt.Sprintf("gaps horizontal current set %d", MainGap)
	// DockGapCommand removes the right gap of a secondary window.
	DockGapCommand = "gaps right current set 0"
)

// MainMark is the mark designating the main column of container id.
func MainMark(id int64) string {
	return fmt.Sprintf("main_%d", id)
}

// MarkMainCommand attaches the main mark of id to the focused container.
func MarkMainCommand(id int64) string {
	return "mark --add " + MainMark(id)
}

// ResizeMainCommand resizes the container marked as main column of workspace id.
func ResizeMainCommand(id int64) string {
	return fmt.Sprintf("[con_mark=%q] resize set %dpx", MainMark(id), MainWidth)
}
