package domain

import (
	"context"
	"image"
)

// Style reúne os parâmetros visuais entregues ao motor de layout.
type Style struct {
	Width        int
	Height       int
	Background   string
	MaxWords     int
	ContourWidth int
	ContourColor string
	Colormap     string
	// FontFile vazio usa a fonte padrão do motor.
	FontFile string
}

func DefaultStyle() Style {
	return Style{
		Width:        1200,
		Height:       800,
		Background:   "white",
		MaxWords:     100,
		ContourWidth: 3,
		ContourColor: "steelblue",
		Colormap:     "viridis",
	}
}

// Figure descreve o enquadramento final da imagem salva: título acima da
// nuvem e resolução de saída.
type Figure struct {
	Title       string
	TitleSize   float64 // pontos
	TitlePad    float64 // pontos
	WidthInches float64
	DPI         float64
}

func DefaultFigure() Figure {
	return Figure{
		Title:       "Top Google Search Topics 2025",
		TitleSize:   24,
		TitlePad:    20,
		WidthInches: 14,
		DPI:         300,
	}
}

// Renderer é o motor de layout externo: transforma um mapa de frequências em
// uma imagem. Posicionamento, tamanho e colisão das palavras são
// responsabilidade da implementação.
type Renderer interface {
	Render(ctx context.Context, freq Frequencies, style Style) (image.Image, error)
}

// Composer aplica o enquadramento (título, contorno, escala) sobre a nuvem
// já renderizada.
type Composer interface {
	Compose(cloud image.Image, style Style, fig Figure) (image.Image, error)
}

// ImageWriter persiste a imagem final.
type ImageWriter interface {
	Write(path string, img image.Image) error
}

// FrequencyPublisher disponibiliza o mapa de frequências para outros
// consumidores (ex: Redis).
type FrequencyPublisher interface {
	Publish(ctx context.Context, freq Frequencies) error
}
