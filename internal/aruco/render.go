package aruco

import (
	"fmt"
	"image"
	"image/color"
)

// Render produces the bitmap for marker id at sizePx pixels per side. The
// image is a grayscale square: a one-module black border surrounding the
// GridSize x GridSize payload, scaled with nearest-neighbor so module
// edges stay sharp for printing. sizePx smaller than the module count
// cannot represent the marker and is rejected.
func (d *Dictionary) Render(id, sizePx int) (*image.Gray, error) {
	if id < 0 || id >= d.Size() {
		return nil, fmt.Errorf("marker id %d out of range for %s (0..%d)", id, d.Name, d.Size()-1)
	}
	modules := d.GridSize + 2 // payload plus border on both sides
	if sizePx < modules {
		return nil, fmt.Errorf("marker size %dpx too small: need at least %dpx for %s", sizePx, modules, d.Name)
	}

	img := image.NewGray(image.Rect(0, 0, sizePx, sizePx))
	for y := 0; y < sizePx; y++ {
		// Nearest-neighbor: map each pixel back to its module.
		my := y * modules / sizePx
		for x := 0; x < sizePx; x++ {
			mx := x * modules / sizePx
			img.SetGray(x, y, color.Gray{Y: d.moduleColor(id, my, mx)})
		}
	}
	return img, nil
}

// moduleColor returns the gray value of module (row, col) including the
// border ring, which is always black.
func (d *Dictionary) moduleColor(id, row, col int) uint8 {
	if row == 0 || col == 0 || row == d.GridSize+1 || col == d.GridSize+1 {
		return 0
	}
	if d.bit(id, row-1, col-1) {
		return 255
	}
	return 0
}
