package infra

import (
	"fmt"
	"image/color"
	"sort"
	"strings"
)

// Amostras de 11 pontos (0.0, 0.1 ... 1.0) dos colormaps do matplotlib.
var palettes = map[string][]string{
	"viridis": {"#440154", "#482475", "#414487", "#355f8d", "#2a788e", "#21918c", "#22a884", "#44bf70", "#7ad151", "#bddf26", "#fde725"},
	"plasma":  {"#0d0887", "#41049d", "#6a00a8", "#8f0da4", "#b12a90", "#cc4778", "#e16462", "#f2844b", "#fca636", "#fcce25", "#f0f921"},
	"inferno": {"#000004", "#160b39", "#420a68", "#6a176e", "#932667", "#bc3754", "#dd513a", "#f37819", "#fca50a", "#f6d746", "#fcffa4"},
	"magma":   {"#000004", "#140e36", "#3b0f70", "#641a80", "#8c2981", "#b73779", "#de4968", "#f7705c", "#fe9f6d", "#fecf92", "#fcfdbf"},
}

// Palette devolve as cores de um colormap pelo nome.
func Palette(name string) ([]color.Color, error) {
	hexes, ok := palettes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown colormap %q (available: %s)", name, strings.Join(PaletteNames(), ", "))
	}
	out := make([]color.Color, 0, len(hexes))
	for _, h := range hexes {
		c, err := ParseColor(h)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func PaletteNames() []string {
	names := make([]string, 0, len(palettes))
	for n := range palettes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
