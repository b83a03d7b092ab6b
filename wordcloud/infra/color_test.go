package infra

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"white", color.RGBA{255, 255, 255, 255}},
		{"SteelBlue", color.RGBA{70, 130, 180, 255}},
		{"#4682b4", color.RGBA{70, 130, 180, 255}},
		{" #fff ", color.RGBA{255, 255, 255, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseColor_Invalid(t *testing.T) {
	for _, in := range []string{"", "not-a-color", "#12", "#zzzzzz"} {
		_, err := ParseColor(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestPalette(t *testing.T) {
	colors, err := Palette("viridis")
	require.NoError(t, err)
	require.Len(t, colors, 11)
	assert.Equal(t, color.RGBA{0x44, 0x01, 0x54, 0xff}, colors[0])
	assert.Equal(t, color.RGBA{0xfd, 0xe7, 0x25, 0xff}, colors[10])

	_, err = Palette("jet")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "viridis")
}

func TestPaletteNames(t *testing.T) {
	assert.Equal(t, []string{"inferno", "magma", "plasma", "viridis"}, PaletteNames())
}
