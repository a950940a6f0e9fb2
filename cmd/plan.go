package cmd

import (
	"context"
	"fmt"

	"github.com/mj1618/persway/internal/layout"
	"github.com/mj1618/persway/internal/logging"
	"github.com/mj1618/persway/internal/model"
	"github.com/mj1618/persway/internal/output"
	"github.com/mj1618/persway/internal/platform"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show the commands the layout policy would send now",
	Long: `Read the current sway tree once and print the commands persway would send
if a window had just appeared. Nothing is sent to sway.`,
	Args: cobra.NoArgs,
	RunE: runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)
	planCmd.Flags().String("format", "yaml", "Output format: yaml, json")
}

func runPlan(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	switch output.Format(format) {
	case output.FormatYAML, output.FormatJSON:
	default:
		return fmt.Errorf("unsupported format: %s (use yaml or json)", format)
	}

	ctx := cmd.Context()
	conn, err := platform.Dial(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	result, planErr := plan(ctx, conn)
	if err := output.Print(cmd.OutOrStdout(), output.Format(format), result); err != nil {
		return err
	}
	return planErr
}

// plan runs the engine against a recorder wrapping c and describes the
// snapshot it decided on.
func plan(ctx context.Context, c platform.Client) (output.PlanResult, error) {
	rec := platform.NewRecorder(c)
	err := layout.New(logging.NewNop()).Autolayout(ctx, rec)

	result := output.PlanResult{Commands: rec.Commands}
	if result.Commands == nil {
		result.Commands = []string{}
	}
	if err != nil {
		result.Error = err.Error()
	}

	tree, treeErr := c.GetTree(ctx)
	if treeErr != nil {
		return result, err
	}
	if focused := tree.FocusedNode(); focused != nil {
		result.Focused = focused.ID
	}
	if workspaces, wsErr := c.GetWorkspaces(ctx); wsErr == nil {
		if ws := model.FocusedWorkspace(workspaces); ws != nil {
			result.Workspace = ws.Name
			if main := tree.FindMarked(layout.MainMark(ws.ID)); main != nil {
				result.MainColumn = main.ID
			}
		}
	}
	return result, err
}
