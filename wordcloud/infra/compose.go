package infra

import (
	"fmt"
	"image"
	"math"
	"os"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"trends-wordcloud/wordcloud/domain"
)

// Composer monta a figura final: faixa de título, nuvem escalada para
// WidthInches*DPI pixels (bilinear) e contorno em volta da nuvem.
// Com DPI ou WidthInches zerados a nuvem mantém o tamanho original.
type Composer struct{}

func (Composer) Compose(cloud image.Image, style domain.Style, fig domain.Figure) (image.Image, error) {
	src := cloud.Bounds()
	if src.Empty() {
		return nil, fmt.Errorf("empty cloud image")
	}

	bg, err := ParseColor(style.Background)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}

	outW := src.Dx()
	px := 1.0 // pixels por ponto
	if fig.WidthInches > 0 && fig.DPI > 0 {
		outW = int(math.Round(fig.WidthInches * fig.DPI))
		px = fig.DPI / 72
	}
	outH := int(math.Round(float64(src.Dy()) * float64(outW) / float64(src.Dx())))

	var face font.Face
	band := 0
	if fig.Title != "" && fig.TitleSize > 0 {
		face, err = titleFace(style.FontFile, fig.TitleSize*px)
		if err != nil {
			return nil, err
		}
		defer face.Close()
		band = int(math.Ceil((fig.TitleSize + fig.TitlePad) * px))
	}

	scaled := image.NewRGBA(image.Rect(0, 0, outW, outH))
	draw.BiLinear.Scale(scaled, scaled.Bounds(), cloud, src, draw.Src, nil)

	dc := gg.NewContext(outW, outH+band)
	dc.SetColor(bg)
	dc.Clear()
	dc.DrawImage(scaled, 0, band)

	if style.ContourWidth > 0 {
		c, err := ParseColor(style.ContourColor)
		if err != nil {
			return nil, fmt.Errorf("contour: %w", err)
		}
		lw := float64(style.ContourWidth) * float64(outW) / float64(src.Dx())
		dc.SetColor(c)
		dc.SetLineWidth(lw)
		dc.DrawRectangle(lw/2, float64(band)+lw/2, float64(outW)-lw, float64(outH)-lw)
		dc.Stroke()
	}

	if face != nil {
		dc.SetFontFace(face)
		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(fig.Title, float64(outW)/2, fig.TitleSize*px/2+fig.TitlePad*px/4, 0.5, 0.5)
	}

	return dc.Image(), nil
}

func titleFace(fontFile string, size float64) (font.Face, error) {
	data := goregular.TTF
	if fontFile != "" {
		b, err := os.ReadFile(fontFile)
		if err != nil {
			return nil, fmt.Errorf("read font: %w", err)
		}
		data = b
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
}
