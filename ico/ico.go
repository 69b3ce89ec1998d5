// Package ico writes Windows icon containers with PNG-compressed entries.
package ico

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/png"
	"io"

	"github.com/pkg/errors"
)

const (
	headerSize = 6
	entrySize  = 16
)

// icondir is the ICONDIR file header.
// https://en.wikipedia.org/wiki/ICO_(file_format)
type icondir struct {
	Reserved  uint16
	ImageType uint16
	NumImages uint16
}

// icondirentry is one ICONDIRENTRY directory record.
type icondirentry struct {
	ImageWidth   uint8
	ImageHeight  uint8
	NumColors    uint8
	Reserved     uint8
	ColorPlanes  uint16
	BitsPerPixel uint16
	SizeInBytes  uint32
	Offset       uint32
}

// EncodeAll writes imgs into w as a single multi-resolution .ico file. Each
// image becomes one PNG-compressed entry; a width or height of 256 or more
// is recorded as 0 per the format. Fails on an empty slice or if any image
// cannot be PNG-encoded.
func EncodeAll(w io.Writer, imgs []image.Image) error {
	if len(imgs) == 0 {
		return errors.New("ico: no images to encode")
	}

	dir := icondir{ImageType: 1, NumImages: uint16(len(imgs))}
	entries := new(bytes.Buffer)
	pixels := new(bytes.Buffer)

	offset := uint32(headerSize + entrySize*len(imgs))
	for _, img := range imgs {
		var pngBuf bytes.Buffer
		if err := png.Encode(&pngBuf, img); err != nil {
			return errors.Wrap(err, "ico: encode entry")
		}

		ide := icondirentry{
			ColorPlanes:  1,  // 0 or 1 both accepted; 1 matches icons in the wild
			BitsPerPixel: 32, // PNG entries are stored as 32bpp RGBA
			SizeInBytes:  uint32(pngBuf.Len()),
			Offset:       offset,
		}
		bounds := img.Bounds()
		if bounds.Dx() < 256 {
			ide.ImageWidth = uint8(bounds.Dx())
		}
		if bounds.Dy() < 256 {
			ide.ImageHeight = uint8(bounds.Dy())
		}
		offset += ide.SizeInBytes

		if err := binary.Write(entries, binary.LittleEndian, ide); err != nil {
			return errors.Wrap(err, "ico: write directory entry")
		}
		pixels.Write(pngBuf.Bytes())
	}

	if err := binary.Write(w, binary.LittleEndian, dir); err != nil {
		return errors.Wrap(err, "ico: write header")
	}
	if _, err := w.Write(entries.Bytes()); err != nil {
		return errors.Wrap(err, "ico: write directory")
	}
	if _, err := w.Write(pixels.Bytes()); err != nil {
		return errors.Wrap(err, "ico: write image data")
	}
	return nil
}
