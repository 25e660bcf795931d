package cli

import (
	"github.com/spf13/cobra"

	"github.com/Suke-go/technetope/internal/config"
	"github.com/Suke-go/technetope/internal/timeline"
)

func newTimelineCmd(configPath *string) *cobra.Command {
	d := config.Default()

	var (
		devicesPath string
		output      string
		preset      string
		gain        float64
		spacing     float64
		passes      int
		startOffset float64
		leadTime    float64
	)

	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Generate a staggered acoustics playback timeline",
		Long:  `Build a timeline JSON that triggers a preset on every device in the registry, one after another with a fixed spacing, for consumption by the acoustics scheduler.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			opts := timeline.Options{
				Preset:      resolveString(cmd, "preset", preset, cfg.Timeline.Preset),
				Gain:        resolveFloat(cmd, "gain", gain, cfg.Timeline.Gain),
				Spacing:     resolveFloat(cmd, "spacing", spacing, cfg.Timeline.Spacing),
				Passes:      resolveInt(cmd, "passes", passes, cfg.Timeline.Passes),
				StartOffset: resolveFloat(cmd, "start-offset", startOffset, cfg.Timeline.StartOffset),
				LeadTime:    resolveFloat(cmd, "lead-time", leadTime, cfg.Timeline.LeadTime),
			}

			ids, err := timeline.LoadDeviceIDs(devicesPath)
			if err != nil {
				return err
			}
			logger.Debugf("Loaded %d device(s) from %s", len(ids), devicesPath)

			tl, err := timeline.Build(ids, opts)
			if err != nil {
				return err
			}
			if err := timeline.Write(output, tl); err != nil {
				return err
			}
			logger.Infof("Wrote timeline for %d device(s), %d pass(es), to %s", len(ids), opts.Passes, output)
			return nil
		},
	}

	cmd.Flags().StringVar(&devicesPath, "devices", "state/devices.json", "device registry JSON path")
	cmd.Flags().StringVarP(&output, "output", "o", "timeline.json", "output timeline path")
	cmd.Flags().StringVar(&preset, "preset", d.Timeline.Preset, "preset id to trigger")
	cmd.Flags().Float64Var(&gain, "gain", d.Timeline.Gain, "gain multiplier passed to the play command")
	cmd.Flags().Float64Var(&spacing, "spacing", d.Timeline.Spacing, "seconds between consecutive triggers")
	cmd.Flags().IntVar(&passes, "passes", d.Timeline.Passes, "how many times to iterate over the device list")
	cmd.Flags().Float64Var(&startOffset, "start-offset", d.Timeline.StartOffset, "seconds before the first trigger")
	cmd.Flags().Float64Var(&leadTime, "lead-time", d.Timeline.LeadTime, "timeline default lead time in seconds")

	return cmd
}
