package cli

import "github.com/spf13/cobra"

// Flag values win over the config file; the file wins over built-in
// defaults. Flags are declared with the built-in defaults, so a flag the
// user did not set falls back to the config value here.

func resolveInt(cmd *cobra.Command, name string, flagVal, cfgVal int) int {
	if cmd.Flags().Changed(name) {
		return flagVal
	}
	return cfgVal
}

func resolveFloat(cmd *cobra.Command, name string, flagVal, cfgVal float64) float64 {
	if cmd.Flags().Changed(name) {
		return flagVal
	}
	return cfgVal
}

func resolveString(cmd *cobra.Command, name string, flagVal, cfgVal string) string {
	if cmd.Flags().Changed(name) {
		return flagVal
	}
	return cfgVal
}
