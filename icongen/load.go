package icongen

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// Load opens the source image at path and normalizes it to a four-channel
// NRGBA buffer. Every downstream rendition is derived from the returned
// copy, never from the decoder's native pixel format.
//
// Supported inputs are whatever imaging registers: PNG, JPEG, GIF, TIFF,
// and BMP.
func Load(path string) (*image.NRGBA, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	return imaging.Clone(img), nil
}

// Fit resizes img to exactly width x height using a Lanczos filter. The
// caller supplies square dimensions; no aspect-ratio correction happens
// here.
func Fit(img image.Image, width, height int) *image.NRGBA {
	return imaging.Resize(img, width, height, imaging.Lanczos)
}
