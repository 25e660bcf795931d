// Package export writes calibration artifacts to disk: PNG images with
// physical resolution metadata, JSON metadata records, the printing guide
// PDF, a marker inventory spreadsheet, and a DXF outline of the board.
package export

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"image"
	"image/png"
	"math"
	"os"
)

// metersPerInch relates DPI to the pixels-per-meter unit used by PNG.
const metersPerInch = 0.0254

// WritePNG encodes img to path with a pHYs chunk carrying the print
// resolution. Print dialogs read this chunk to offer "actual size"
// printing; without it the artifact's physical dimensions are lost.
// The standard encoder does not emit pHYs, so the chunk is spliced in
// directly after IHDR.
func WritePNG(path string, img image.Image, dpi int) error {
	data, err := EncodePNG(img, dpi)
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return os.WriteFile(path, data, 0644)
}

// EncodePNG encodes img to PNG bytes with the pHYs resolution chunk.
func EncodePNG(img image.Image, dpi int) ([]byte, error) {
	if dpi <= 0 {
		return nil, fmt.Errorf("invalid resolution: %d dpi", dpi)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return injectPhys(buf.Bytes(), dpi)
}

// injectPhys inserts a pHYs chunk after the IHDR chunk of an encoded PNG.
func injectPhys(encoded []byte, dpi int) ([]byte, error) {
	// Signature (8) + IHDR length/type (8) + IHDR data (13) + CRC (4).
	const ihdrEnd = 33
	if len(encoded) < ihdrEnd {
		return nil, fmt.Errorf("encoded image too short (%d bytes)", len(encoded))
	}

	ppm := uint32(math.Round(float64(dpi) / metersPerInch))

	chunk := make([]byte, 0, 21)
	chunk = binary.BigEndian.AppendUint32(chunk, 9) // data length
	chunk = append(chunk, "pHYs"...)
	chunk = binary.BigEndian.AppendUint32(chunk, ppm)
	chunk = binary.BigEndian.AppendUint32(chunk, ppm)
	chunk = append(chunk, 1) // unit: meter
	crc := crc32.ChecksumIEEE(chunk[4:])
	chunk = binary.BigEndian.AppendUint32(chunk, crc)

	out := make([]byte, 0, len(encoded)+len(chunk))
	out = append(out, encoded[:ihdrEnd]...)
	out = append(out, chunk...)
	out = append(out, encoded[ihdrEnd:]...)
	return out, nil
}
