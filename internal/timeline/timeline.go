// Package timeline builds staggered playback schedules for the acoustics
// subsystem: one trigger per device at a fixed spacing, optionally
// repeated over several passes. The output JSON is consumed by the
// acoustics scheduler.
package timeline

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
)

// Version is the timeline schema version understood by the scheduler.
const Version = "1.2"

// playAddress is the OSC address the scheduler dispatches for preset playback.
const playAddress = "/acoustics/play"

// Event is a single scheduled trigger.
type Event struct {
	Offset  float64  `json:"offset"` // seconds from timeline start
	Address string   `json:"address"`
	Targets []string `json:"targets"`
	Args    []any    `json:"args"`
}

// Metadata describes the generated timeline for humans and tooling.
type Metadata struct {
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	DeviceCount    int     `json:"device_count"`
	Passes         int     `json:"passes"`
	SpacingSeconds float64 `json:"spacing_seconds"`
}

// Timeline is the full schedule document.
type Timeline struct {
	Version         string   `json:"version"`
	DefaultLeadTime float64  `json:"default_lead_time"`
	Metadata        Metadata `json:"metadata"`
	Events          []Event  `json:"events"`
}

// Options configures timeline generation.
type Options struct {
	Preset      string  // preset id triggered on each device
	Gain        float64 // gain multiplier passed to the play command
	Spacing     float64 // seconds between consecutive triggers
	Passes      int     // how many times to iterate over the device list
	StartOffset float64 // seconds before the first trigger
	LeadTime    float64 // scheduler default lead time
}

// Build creates a timeline that triggers opts.Preset once per device, in
// registry order, spaced opts.Spacing seconds apart, repeated for
// opts.Passes passes.
func Build(deviceIDs []string, opts Options) (*Timeline, error) {
	if len(deviceIDs) == 0 {
		return nil, fmt.Errorf("no devices to schedule")
	}
	if opts.Spacing <= 0 {
		return nil, fmt.Errorf("spacing must be > 0, got %g", opts.Spacing)
	}
	if opts.Passes < 1 {
		return nil, fmt.Errorf("passes must be >= 1, got %d", opts.Passes)
	}

	events := make([]Event, 0, opts.Passes*len(deviceIDs))
	for pass := 0; pass < opts.Passes; pass++ {
		for i, id := range deviceIDs {
			position := pass*len(deviceIDs) + i
			offset := opts.StartOffset + float64(position)*opts.Spacing
			events = append(events, Event{
				Offset:  roundMicro(offset),
				Address: playAddress,
				Targets: []string{id},
				Args:    []any{opts.Preset, 0, opts.Gain, 0},
			})
		}
	}

	return &Timeline{
		Version:         Version,
		DefaultLeadTime: opts.LeadTime,
		Metadata: Metadata{
			Title: fmt.Sprintf("%s staggered playback", opts.Preset),
			Description: fmt.Sprintf("Sequential playback with %gs spacing across %d device(s), %d pass(es).",
				opts.Spacing, len(deviceIDs), opts.Passes),
			DeviceCount:    len(deviceIDs),
			Passes:         opts.Passes,
			SpacingSeconds: opts.Spacing,
		},
		Events: events,
	}, nil
}

// Write saves the timeline as indented JSON with a trailing newline,
// creating parent directories as needed.
func Write(path string, tl *Timeline) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(tl, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

// roundMicro keeps offsets stable across platforms by clamping them to
// microsecond precision, the resolution the scheduler works at.
func roundMicro(s float64) float64 {
	return math.Round(s*1e6) / 1e6
}
