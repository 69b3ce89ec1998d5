// Package icongen turns one source image into the full set of resized
// PNG, ICO, and ICNS assets a Tauri application bundle expects.
package icongen

import "fmt"

// Spec is one planned output: a path relative to the output directory and
// the square pixel size to render there.
type Spec struct {
	RelPath string
	Size    int
}

// Density is one Android launcher-icon bucket. Each bucket receives a plain,
// a foreground, and a round rendition at the same size.
type Density struct {
	Dir  string
	Size int
}

// BaseIcons is the fixed PNG output table covering the Windows, macOS
// default, iOS, and Linux conventions. The macOS and Linux conventions
// both claim icons/128x128.png; it appears exactly once here.
var BaseIcons = buildBaseIcons()

// iosSizes is the flat icon catalog for the iOS bundle.
var iosSizes = []int{
	16, 20, 29, 32, 40, 50, 57, 58, 60, 64, 72, 76, 80, 87, 100,
	114, 120, 128, 144, 152, 167, 180, 192, 256, 512, 1024,
}

func buildBaseIcons() []Spec {
	specs := []Spec{
		{"icons/32x32.png", 32},
		{"icons/32x32@2x.png", 64},
		{"icons/128x128.png", 128},
		{"icons/128x128@2x.png", 256},
		{"icons/icon.png", 1024},
	}
	for _, size := range iosSizes {
		specs = append(specs, Spec{fmt.Sprintf("icons/ios/%d.png", size), size})
	}
	specs = append(specs,
		Spec{"icons/256x256.png", 256},
		Spec{"icons/512x512.png", 512},
		Spec{"icons/1024x1024.png", 1024},
	)
	return specs
}

// Densities lists the five Android density buckets and their launcher-icon
// pixel sizes.
var Densities = []Density{
	{"mipmap-mdpi", 48},
	{"mipmap-hdpi", 72},
	{"mipmap-xhdpi", 96},
	{"mipmap-xxhdpi", 144},
	{"mipmap-xxxhdpi", 192},
}

// IcoSizes are the renditions embedded in the Windows icon container.
var IcoSizes = []int{16, 32, 48, 64, 128, 256}

// IconsetEntry names one rendition inside a macOS .iconset staging
// directory. The @2x entries double the nominal point size.
type IconsetEntry struct {
	Size     int
	Filename string
}

// IconsetEntries are the ten renditions iconutil expects in an iconset.
var IconsetEntries = []IconsetEntry{
	{16, "16x16.png"},
	{32, "16x16@2x.png"},
	{32, "32x32.png"},
	{64, "32x32@2x.png"},
	{128, "128x128.png"},
	{256, "128x128@2x.png"},
	{256, "256x256.png"},
	{512, "256x256@2x.png"},
	{512, "512x512.png"},
	{1024, "512x512@2x.png"},
}
