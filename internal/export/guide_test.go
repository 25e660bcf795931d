package export

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Suke-go/technetope/internal/layout"
)

func buildGuideInfo(t *testing.T) GuideInfo {
	t.Helper()
	board := layout.BoardSpec{SquaresX: 5, SquaresY: 7, SquareLengthMM: 45, MarkerLengthMM: 33, MarginMM: 10}
	l, err := layout.PlanBoard(board, 300)
	require.NoError(t, err)

	// A small stand-in image is enough: the guide only embeds and scales it.
	img := image.NewGray(image.Rect(0, 0, 200, 290))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return GuideInfo{
		Board:    NewBoardMetadata("board.png", "DICT_4X4_50", board, l),
		BoardPNG: buf.Bytes(),
	}
}

func TestWriteGuide_CreatesPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guide.pdf")
	require.NoError(t, WriteGuide(path, buildGuideInfo(t)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "output must be a PDF document")
	assert.Greater(t, len(data), 1000, "guide should contain embedded images")
}

func TestWriteGuide_NoImage(t *testing.T) {
	info := buildGuideInfo(t)
	info.BoardPNG = nil
	err := WriteGuide(filepath.Join(t.TempDir(), "guide.pdf"), info)
	assert.ErrorContains(t, err, "no board image")
}
