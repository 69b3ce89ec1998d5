package icongen

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/jackmordaunt/icns/v3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gradientSquare(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 90, A: 255})
		}
	}
	return img
}

func TestLibraryBundler(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "icon.icns")

	err := libraryBundler{}.Bundle(gradientSquare(256), "", dest)
	require.NoError(t, err)

	f, err := os.Open(dest)
	require.NoError(t, err)
	defer f.Close()

	img, err := icns.Decode(f)
	require.NoError(t, err, "library bundler should write a decodable icns")
	assert.NotNil(t, img)
}

func TestPlaceholderBundler(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "icon.icns")

	err := placeholderBundler{}.Bundle(gradientSquare(100), "", dest)
	require.NoError(t, err)

	// The stand-in is a 1024x1024 PNG written twice: once under its own
	// name, once copied to the bundle path.
	png, err := Load(filepath.Join(dir, "icon.png"))
	require.NoError(t, err)
	assert.Equal(t, 1024, png.Bounds().Dx())
	assert.Equal(t, 1024, png.Bounds().Dy())

	want, err := os.ReadFile(filepath.Join(dir, "icon.png"))
	require.NoError(t, err)
	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, want, got, "bundle path should hold the same bytes as the PNG")
}

// brokenBundler always fails, standing in for a missing or crashing
// iconutil.
type brokenBundler struct{}

func (brokenBundler) Name() string { return "broken" }

func (brokenBundler) Bundle(image.Image, string, string) error {
	return errors.New("tool unavailable")
}

// TestBundleFallbackChain drives the generator's strategy walk: the failing
// bundler emits a warning and the next one still produces the output file.
func TestBundleFallbackChain(t *testing.T) {
	out := t.TempDir()
	var warnings []string
	g := &Generator{
		Out: out,
		Report: func(e Event) {
			if e.Kind == Warn {
				warnings = append(warnings, e.Message)
			}
		},
		Bundlers: []Bundler{brokenBundler{}, placeholderBundler{}},
	}

	require.NoError(t, g.bundleICNS(gradientSquare(100)))

	assert.FileExists(t, filepath.Join(out, "icons", "icon.icns"))
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "broken")
	assert.Contains(t, warnings[0], "tool unavailable")

	assert.NoDirExists(t, filepath.Join(out, "icons", "icons.iconset"),
		"staging directory should be removed on fallback too")
}

func TestBundleAllStrategiesFail(t *testing.T) {
	g := &Generator{
		Out:      t.TempDir(),
		Bundlers: []Bundler{brokenBundler{}, brokenBundler{}},
	}
	err := g.bundleICNS(gradientSquare(64))
	assert.Error(t, err, "exhausting the chain should abort")
}

func TestDefaultBundlersEndWithPlaceholder(t *testing.T) {
	chain := DefaultBundlers()
	require.NotEmpty(t, chain)
	assert.IsType(t, placeholderBundler{}, chain[len(chain)-1],
		"the placeholder must stay the strategy of last resort")
}
