// calibkit — printable calibration artifact generator
//
// Generates dimensionally accurate ChArUco boards, fiducial marker
// sheets, and printing guides, plus the staggered playback timeline for
// the acoustics rig.
//
// Build:
//   go build -o calibkit ./cmd/calibkit
package main

import (
	"os"

	"github.com/Suke-go/technetope/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersion(version, commit, date)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
