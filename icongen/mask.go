package icongen

import (
	"image"

	"github.com/fogleman/gg"
)

// Round returns a copy of the square image img with everything outside the
// inscribed circle made fully transparent. Pixels inside the circle keep
// their original color and alpha. Used for the Android ic_launcher_round
// variant.
func Round(img image.Image) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	dc := gg.NewContext(w, h)
	dc.DrawEllipse(float64(w)/2, float64(h)/2, float64(w)/2, float64(h)/2)
	dc.Clip()
	dc.DrawImage(img, 0, 0)
	return dc.Image()
}
