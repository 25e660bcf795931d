package export

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, 20, 10))
	for i := range img.Pix {
		img.Pix[i] = uint8(i % 256)
	}
	return img
}

func TestWritePNG_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	src := testImage()
	require.NoError(t, WritePNG(path, src, 300))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	decoded, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, src.Bounds(), decoded.Bounds())

	gray, ok := decoded.(*image.Gray)
	require.True(t, ok)
	assert.Equal(t, src.Pix, gray.Pix)
}

func TestWritePNG_CarriesResolution(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, WritePNG(path, testImage(), 300))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	idx := bytes.Index(data, []byte("pHYs"))
	require.Positive(t, idx, "pHYs chunk missing")

	ppm := binary.BigEndian.Uint32(data[idx+4 : idx+8])
	assert.Equal(t, uint32(11811), ppm) // round(300 / 0.0254)
	assert.Equal(t, ppm, binary.BigEndian.Uint32(data[idx+8:idx+12]))
	assert.Equal(t, uint8(1), data[idx+12], "unit must be meters")
}

func TestWritePNG_ChunkBeforeImageData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, WritePNG(path, testImage(), 72))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	phys := bytes.Index(data, []byte("pHYs"))
	idat := bytes.Index(data, []byte("IDAT"))
	require.Positive(t, phys)
	require.Positive(t, idat)
	assert.Less(t, phys, idat, "pHYs must precede IDAT per the PNG spec")
}

func TestWritePNG_InvalidResolution(t *testing.T) {
	err := WritePNG(filepath.Join(t.TempDir(), "out.png"), testImage(), 0)
	assert.ErrorContains(t, err, "invalid resolution")
}
