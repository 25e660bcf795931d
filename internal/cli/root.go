package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version,
// typically injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the calibkit CLI and returns an error if any command
// fails. The caller translates a non-nil error into a non-zero exit.
func Execute() error {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:          "calibkit",
		Short:        "calibkit generates printable calibration artifacts",
		Long:         `calibkit produces dimensionally accurate calibration artifacts for printing: ChArUco boards, fiducial marker sheets, and a printing guide PDF, plus the staggered playback timeline for the acoustics rig.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("calibkit %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "TOML file with generator defaults")

	root.AddCommand(newBoardCmd(&configPath))
	root.AddCommand(newMarkersCmd(&configPath))
	root.AddCommand(newGuideCmd(&configPath))
	root.AddCommand(newTimelineCmd(&configPath))

	return root.ExecuteContext(context.Background())
}
