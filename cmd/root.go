package cmd

import (
	"fmt"
	"os"

	"github.com/mj1618/persway/internal/daemon"
	"github.com/mj1618/persway/internal/logging"
	"github.com/mj1618/persway/internal/platform"
	"github.com/mj1618/persway/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "persway",
	Short: "Keep sway workspaces in a master/stack layout",
	Long: `persway talks to the sway compositor over its IPC socket and reacts to window
and workspace events: the first window of a workspace becomes the wide main
column, later windows dock beside it.

On SIGHUP, SIGINT, SIGQUIT or SIGTERM the --on-exit command is sent to sway
before persway exits. Use it to undo settings made while persway ran, e.g.

  persway --on-exit '[tiling] opacity 1'

Set PERSWAY_DEBUG=1 for debug logging.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runDaemon,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.Flags().StringP("on-exit", "e", "", "Command sent to sway when persway exits")
}

func runDaemon(cmd *cobra.Command, args []string) error {
	onExit, _ := cmd.Flags().GetString("on-exit")
	cfg := daemon.Config{ExitCommand: onExit}

	logger := logging.FromEnv()
	logger.Info("starting", "version", version.Version, "on_exit", cfg.ExitCommand)

	return daemon.New(cfg, platform.Dial, logger).Run(cmd.Context())
}
