package export

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteInventory(t *testing.T) {
	meta := buildTestSheetMetadata(t)
	path := filepath.Join(t.TempDir(), "inventory.xlsx")
	require.NoError(t, WriteInventory(path, meta))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Markers")
	require.NoError(t, err)
	require.Len(t, rows, 1+len(meta.Markers))

	assert.Equal(t, "ID", rows[0][0])
	assert.Equal(t, "Dictionary", rows[0][7])

	// First data row matches the first marker record.
	assert.Equal(t, "10", rows[1][0])
	assert.Equal(t, "DICT_4X4_50", rows[1][7])
	assert.Equal(t, meta.RunID, rows[1][8])
}

func TestWriteInventory_Empty(t *testing.T) {
	meta := buildTestSheetMetadata(t)
	meta.Markers = nil
	err := WriteInventory(filepath.Join(t.TempDir(), "inventory.xlsx"), meta)
	assert.ErrorContains(t, err, "no markers")
}
