package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Suke-go/technetope/internal/export"
)

func runCommand(t *testing.T, cmd *cobra.Command, args ...string) error {
	t.Helper()
	cmd.SetArgs(args)
	return cmd.Execute()
}

func TestMarkersCommand_GeneratesArtifacts(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "markers.png")
	meta := filepath.Join(dir, "markers.json")
	inv := filepath.Join(dir, "inventory.xlsx")
	singles := filepath.Join(dir, "singles")

	configPath := ""
	cmd := newMarkersCmd(&configPath)
	err := runCommand(t, cmd,
		"--output", out,
		"--metadata", meta,
		"--inventory", inv,
		"--individual-dir", singles,
		"--start-id", "4",
	)
	require.NoError(t, err)

	assert.FileExists(t, out)
	assert.FileExists(t, inv)

	data, err := os.ReadFile(meta)
	require.NoError(t, err)
	var sheet export.SheetMetadata
	require.NoError(t, json.Unmarshal(data, &sheet))
	assert.Equal(t, 4, sheet.StartID)
	assert.Len(t, sheet.Markers, 8)
	assert.Equal(t, "DICT_4X4_50", sheet.Dictionary)

	// One PNG per marker, named by id.
	assert.FileExists(t, filepath.Join(singles, "marker_004.png"))
	assert.FileExists(t, filepath.Join(singles, "marker_011.png"))
}

func TestMarkersCommand_OverflowFails(t *testing.T) {
	dir := t.TempDir()
	configPath := ""
	cmd := newMarkersCmd(&configPath)
	err := runCommand(t, cmd,
		"--output", filepath.Join(dir, "markers.png"),
		"--rows", "8",
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not fit")
	assert.NoFileExists(t, filepath.Join(dir, "markers.png"), "no output on failure")
}

func TestBoardCommand_GeneratesArtifacts(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "board.png")
	meta := filepath.Join(dir, "board.json")
	dxf := filepath.Join(dir, "board.dxf")

	configPath := ""
	cmd := newBoardCmd(&configPath)
	err := runCommand(t, cmd, "--output", out, "--metadata", meta, "--dxf", dxf)
	require.NoError(t, err)

	assert.FileExists(t, out)
	assert.FileExists(t, dxf)

	data, err := os.ReadFile(meta)
	require.NoError(t, err)
	var board export.BoardMetadata
	require.NoError(t, json.Unmarshal(data, &board))
	assert.Equal(t, 2362, board.OutputWidthPx)
	assert.Equal(t, 3425, board.OutputHeightPx)
}

func TestBoardCommand_UnknownDictionary(t *testing.T) {
	configPath := ""
	cmd := newBoardCmd(&configPath)
	err := runCommand(t, cmd,
		"--output", filepath.Join(t.TempDir(), "board.png"),
		"--dictionary", "DICT_9X9_1000",
	)
	require.Error(t, err)
}

func TestGuideCommand_GeneratesPDF(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "guide.pdf")
	boardOut := filepath.Join(dir, "board.png")

	configPath := ""
	cmd := newGuideCmd(&configPath)
	err := runCommand(t, cmd, "--output", out, "--board-output", boardOut)
	require.NoError(t, err)

	assert.FileExists(t, out)
	assert.FileExists(t, boardOut)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestTimelineCommand(t *testing.T) {
	dir := t.TempDir()
	devices := filepath.Join(dir, "devices.json")
	require.NoError(t, os.WriteFile(devices,
		[]byte(`[{"id":"stick-01"},{"id":"stick-02"}]`), 0644))
	out := filepath.Join(dir, "timeline.json")

	configPath := ""
	cmd := newTimelineCmd(&configPath)
	err := runCommand(t, cmd, "--devices", devices, "--output", out, "--spacing", "10")
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var tl map[string]any
	require.NoError(t, json.Unmarshal(data, &tl))
	assert.Equal(t, "1.2", tl["version"])
	events := tl["events"].([]any)
	require.Len(t, events, 2)
	second := events[1].(map[string]any)
	assert.Equal(t, 10.0, second["offset"])
}

func TestConfigFileAndFlagPrecedence(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "calibkit.toml")
	require.NoError(t, os.WriteFile(configPath, []byte("dpi = 150\n"), 0644))

	// Config file overrides the built-in 300 dpi default.
	meta := filepath.Join(dir, "board.json")
	cmd := newBoardCmd(&configPath)
	err := runCommand(t, cmd, "--output", filepath.Join(dir, "board.png"), "--metadata", meta)
	require.NoError(t, err)

	data, err := os.ReadFile(meta)
	require.NoError(t, err)
	var board export.BoardMetadata
	require.NoError(t, json.Unmarshal(data, &board))
	assert.Equal(t, 150, board.DPI)

	// An explicit flag still wins over the config file.
	meta2 := filepath.Join(dir, "board2.json")
	cmd = newBoardCmd(&configPath)
	err = runCommand(t, cmd, "--output", filepath.Join(dir, "board2.png"), "--metadata", meta2, "--dpi", "300")
	require.NoError(t, err)

	data, err = os.ReadFile(meta2)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &board))
	assert.Equal(t, 300, board.DPI)
}
