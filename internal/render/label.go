package render

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// labelScale picks an integer upscale factor for caption text so labels
// stay legible at print resolutions. The base face is 13px tall, which is
// about 1mm at 300 dpi without scaling.
func labelScale(dpi int) int {
	scale := dpi / 100
	if scale < 1 {
		scale = 1
	}
	return scale
}

// drawLabel prints text with its top-left corner at (x, y). The glyphs
// are rasterized at base size and scaled up with nearest-neighbor, which
// is fine for captions that only need to be readable next to a marker.
func drawLabel(dst *image.Gray, text string, x, y, scale int) {
	face := basicfont.Face7x13

	w := font.MeasureString(face, text).Ceil()
	h := face.Metrics().Height.Ceil()
	if w == 0 {
		return
	}

	tmp := image.NewGray(image.Rect(0, 0, w, h))
	for i := range tmp.Pix {
		tmp.Pix[i] = 255
	}
	drawer := font.Drawer{
		Dst:  tmp,
		Src:  image.Black,
		Face: face,
		Dot:  fixed.P(0, face.Metrics().Ascent.Ceil()),
	}
	drawer.DrawString(text)

	for ty := 0; ty < h; ty++ {
		for tx := 0; tx < w; tx++ {
			v := tmp.GrayAt(tx, ty).Y
			if v == 255 {
				continue
			}
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					px := x + tx*scale + dx
					py := y + ty*scale + dy
					if image.Pt(px, py).In(dst.Bounds()) {
						dst.SetGray(px, py, tmp.GrayAt(tx, ty))
					}
				}
			}
		}
	}
}
