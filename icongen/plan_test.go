package icongen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestBaseIconsUnique guards the table against the duplicate-path mistake:
// no two specs may claim the same output file.
func TestBaseIconsUnique(t *testing.T) {
	seen := map[string]int{}
	for _, spec := range BaseIcons {
		if prev, ok := seen[spec.RelPath]; ok {
			t.Errorf("duplicate path %s (%dpx and %dpx)", spec.RelPath, prev, spec.Size)
		}
		seen[spec.RelPath] = spec.Size
	}
}

func TestBaseIconsTable(t *testing.T) {
	byPath := map[string]int{}
	iosCount := 0
	for _, spec := range BaseIcons {
		byPath[spec.RelPath] = spec.Size
		if strings.HasPrefix(spec.RelPath, "icons/ios/") {
			iosCount++
		}
		assert.Positive(t, spec.Size)
	}

	assert.Equal(t, 26, iosCount, "iOS catalog holds 26 sizes")
	assert.Len(t, BaseIcons, 34)

	// Spot-check the fixed-size conventions.
	assert.Equal(t, 32, byPath["icons/32x32.png"])
	assert.Equal(t, 64, byPath["icons/32x32@2x.png"])
	assert.Equal(t, 128, byPath["icons/128x128.png"])
	assert.Equal(t, 256, byPath["icons/128x128@2x.png"])
	assert.Equal(t, 1024, byPath["icons/icon.png"])
	assert.Equal(t, 256, byPath["icons/256x256.png"])
	assert.Equal(t, 512, byPath["icons/512x512.png"])
	assert.Equal(t, 1024, byPath["icons/1024x1024.png"])
	assert.Equal(t, 16, byPath["icons/ios/16.png"])
	assert.Equal(t, 1024, byPath["icons/ios/1024.png"])
}

func TestDensities(t *testing.T) {
	want := map[string]int{
		"mipmap-mdpi":    48,
		"mipmap-hdpi":    72,
		"mipmap-xhdpi":   96,
		"mipmap-xxhdpi":  144,
		"mipmap-xxxhdpi": 192,
	}
	assert.Len(t, Densities, len(want))
	for _, d := range Densities {
		assert.Equal(t, want[d.Dir], d.Size, "bucket %s", d.Dir)
	}
}

func TestContainerSizes(t *testing.T) {
	assert.Equal(t, []int{16, 32, 48, 64, 128, 256}, IcoSizes)

	assert.Len(t, IconsetEntries, 10)
	names := map[string]int{}
	for _, e := range IconsetEntries {
		names[e.Filename] = e.Size
	}
	assert.Equal(t, 16, names["16x16.png"])
	assert.Equal(t, 32, names["16x16@2x.png"])
	assert.Equal(t, 1024, names["512x512@2x.png"])
	assert.Equal(t, names["32x32.png"], names["16x16@2x.png"], "@2x doubles the point size")
}
