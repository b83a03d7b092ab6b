package infra

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"sync"

	"github.com/psykhi/wordclouds"
	"golang.org/x/image/font/gofont/goregular"

	"trends-wordcloud/wordcloud/domain"
)

const minFontSize = 10

// Engine implementa domain.Renderer delegando o layout para
// github.com/psykhi/wordclouds.
//
// O wordclouds só aceita fonte por caminho de arquivo; sem FontFile no Style
// a Go Regular é gravada em um arquivo temporário na primeira renderização.
// Close remove o arquivo; um Render posterior grava outro.
type Engine struct {
	mu       sync.Mutex
	fontPath string

	// layout é substituível nos testes.
	layout func(words map[string]int, opts ...wordclouds.Option) image.Image
}

func NewEngine() *Engine {
	return &Engine{layout: drawWordcloud}
}

func drawWordcloud(words map[string]int, opts ...wordclouds.Option) image.Image {
	return wordclouds.NewWordcloud(words, opts...).Draw()
}

func (e *Engine) Render(ctx context.Context, freq domain.Frequencies, style domain.Style) (img image.Image, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(freq) == 0 {
		return nil, errors.New("no words to render")
	}
	if style.Width <= 0 || style.Height <= 0 {
		return nil, fmt.Errorf("invalid canvas %dx%d", style.Width, style.Height)
	}

	bg, err := ParseColor(style.Background)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}
	colors, err := Palette(style.Colormap)
	if err != nil {
		return nil, err
	}
	fontFile := style.FontFile
	if fontFile == "" {
		fontFile, err = e.defaultFont()
		if err != nil {
			return nil, err
		}
	} else if _, err := os.Stat(fontFile); err != nil {
		return nil, fmt.Errorf("font: %w", err)
	}

	maxFont := style.Height / 4
	if maxFont < minFontSize {
		maxFont = minFontSize
	}

	// o wordclouds entra em pânico quando não consegue carregar a fonte.
	defer func() {
		if r := recover(); r != nil {
			img = nil
			err = fmt.Errorf("layout engine: %v", r)
		}
	}()

	layout := e.layout
	if layout == nil {
		layout = drawWordcloud
	}
	return layout(
		map[string]int(freq),
		wordclouds.FontFile(fontFile),
		wordclouds.Width(style.Width),
		wordclouds.Height(style.Height),
		wordclouds.BackgroundColor(bg),
		wordclouds.Colors(colors),
		wordclouds.FontMaxSize(maxFont),
		wordclouds.FontMinSize(minFontSize),
	), nil
}

func (e *Engine) defaultFont() (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.fontPath != "" {
		return e.fontPath, nil
	}

	f, err := os.CreateTemp("", "wordcloud-goregular-*.ttf")
	if err != nil {
		return "", fmt.Errorf("create font file: %w", err)
	}
	if _, err := f.Write(goregular.TTF); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("write font file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("close font file: %w", err)
	}
	e.fontPath = f.Name()
	return e.fontPath, nil
}

// Close remove a fonte temporária, se criada.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.fontPath == "" {
		return nil
	}
	err := os.Remove(e.fontPath)
	e.fontPath = ""
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
