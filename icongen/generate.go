package icongen

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	"github.com/pkg/errors"

	"github.com/shekilrahman/tauri-icon-generator/ico"
)

// DefaultQuality is the PNG quality used when the caller does not override
// it.
const DefaultQuality = 90

// Generator runs the whole icon pipeline for one source image.
type Generator struct {
	// Out is the root output directory. The icons/, icons/ios/, and
	// android/ trees are created beneath it.
	Out string
	// Quality in 0..100 selects the PNG compression effort; values
	// outside that range behave as DefaultQuality.
	Quality int
	// Report receives progress events; nil discards them.
	Report Reporter
	// Bundlers overrides the .icns strategy chain. Nil means
	// DefaultBundlers().
	Bundlers []Bundler
}

// Generate loads the image at inputPath, normalizes it to four channels,
// and writes every planned output beneath g.Out: the PNG table, the
// Windows .ico, the macOS .icns (or its degrade-path stand-in), and the
// Android density buckets. The first error other than a bundle fallback
// aborts the run; partial output is left on disk.
func (g *Generator) Generate(inputPath string) error {
	src, err := Load(inputPath)
	if err != nil {
		return err
	}

	for _, spec := range BaseIcons {
		if err := g.savePNG(Fit(src, spec.Size, spec.Size), spec.RelPath); err != nil {
			return err
		}
		g.Report.wrote(spec.RelPath, spec.Size)
	}
	g.Report.stage("icons")

	if err := g.writeICO(src); err != nil {
		return err
	}
	g.Report.stage("ico")

	if err := g.bundleICNS(src); err != nil {
		return err
	}
	g.Report.stage("icns")

	if err := g.writeAndroid(src); err != nil {
		return err
	}
	g.Report.stage("android")

	return nil
}

// writeICO renders the six container sizes and packs them into
// icons/icon.ico.
func (g *Generator) writeICO(src image.Image) error {
	imgs := make([]image.Image, 0, len(IcoSizes))
	for _, size := range IcoSizes {
		imgs = append(imgs, resize.Resize(uint(size), uint(size), src, resize.Lanczos3))
	}

	rel := filepath.Join("icons", "icon.ico")
	path := filepath.Join(g.Out, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "create %s", filepath.Dir(path))
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer f.Close()
	if err := ico.EncodeAll(f, imgs); err != nil {
		return err
	}
	g.Report.wrote(rel, 0)
	return nil
}

// bundleICNS renders the iconset staging directory, then walks the
// strategy chain until one produces icons/icon.icns. The staging directory
// is removed whichever strategy wins.
func (g *Generator) bundleICNS(src image.Image) error {
	iconset := filepath.Join(g.Out, "icons", "icons.iconset")
	if err := os.MkdirAll(iconset, 0o755); err != nil {
		return errors.Wrapf(err, "create %s", iconset)
	}
	defer os.RemoveAll(iconset)

	for _, entry := range IconsetEntries {
		rendition := Fit(src, entry.Size, entry.Size)
		if err := imaging.Save(rendition, filepath.Join(iconset, entry.Filename), g.pngOption()); err != nil {
			return errors.Wrapf(err, "save iconset %s", entry.Filename)
		}
	}

	rel := filepath.Join("icons", "icon.icns")
	dest := filepath.Join(g.Out, rel)
	bundlers := g.Bundlers
	if len(bundlers) == 0 {
		bundlers = DefaultBundlers()
	}

	var lastErr error
	for _, b := range bundlers {
		if err := b.Bundle(src, iconset, dest); err != nil {
			g.Report.warn(fmt.Sprintf("%s: %v", b.Name(), err))
			lastErr = err
			continue
		}
		g.Report.wrote(rel, 0)
		return nil
	}
	return errors.Wrapf(lastErr, "no bundler produced %s", dest)
}

// writeAndroid produces the three launcher files for each density bucket.
func (g *Generator) writeAndroid(src image.Image) error {
	for _, d := range Densities {
		resized := Fit(src, d.Size, d.Size)

		for _, name := range []string{"ic_launcher.png", "ic_launcher_foreground.png"} {
			rel := filepath.Join("android", d.Dir, name)
			if err := g.savePNG(resized, rel); err != nil {
				return err
			}
			g.Report.wrote(rel, d.Size)
		}

		rel := filepath.Join("android", d.Dir, "ic_launcher_round.png")
		if err := g.savePNG(Round(resized), rel); err != nil {
			return err
		}
		g.Report.wrote(rel, d.Size)
	}
	return nil
}

func (g *Generator) savePNG(img image.Image, rel string) error {
	path := filepath.Join(g.Out, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "create %s", filepath.Dir(path))
	}
	if err := imaging.Save(img, path, g.pngOption()); err != nil {
		return errors.Wrapf(err, "save %s", path)
	}
	return nil
}

// compressionLevel maps the 0..100 quality knob onto PNG compression
// effort: 0-33 BestSpeed, 34-66 DefaultCompression, 67-100 BestCompression.
// PNG is lossless, so quality only trades encode time for file size.
// Out-of-range values behave as DefaultQuality.
func compressionLevel(q int) png.CompressionLevel {
	if q < 0 || q > 100 {
		q = DefaultQuality
	}
	switch {
	case q <= 33:
		return png.BestSpeed
	case q <= 66:
		return png.DefaultCompression
	default:
		return png.BestCompression
	}
}

func (g *Generator) pngOption() imaging.EncodeOption {
	return imaging.PNGCompressionLevel(compressionLevel(g.Quality))
}
