package application

import (
	"context"
	"errors"
	"fmt"

	"trends-wordcloud/wordcloud/domain"
)

// Exporter concentra o fluxo de geração da imagem, sem saber nada sobre
// arquivos de configuração ou variáveis de ambiente.
type Exporter struct {
	Renderer domain.Renderer
	Writer   domain.ImageWriter
	// Composer é opcional; sem ele a nuvem é salva como veio do motor.
	Composer domain.Composer
	// Publisher é opcional.
	Publisher domain.FrequencyPublisher
	// Sidecar é opcional: grava o mapa de frequências ao lado da imagem.
	Sidecar func(path string, freq domain.Frequencies) error
}

type Request struct {
	Output      string
	Style       domain.Style
	Figure      domain.Figure
	SidecarPath string
}

type Result struct {
	Path        string
	Tokens      int
	Frequencies domain.Frequencies
}

// Export executa normalização, contagem, renderização e persistência.
// Erros do motor ou da escrita sobem para o chamador; não há retry nem
// limpeza de saída parcial.
func (e Exporter) Export(ctx context.Context, terms []string, req Request) (Result, error) {
	if e.Renderer == nil {
		return Result{}, errors.New("exporter: renderer is required")
	}
	if e.Writer == nil {
		return Result{}, errors.New("exporter: image writer is required")
	}
	if req.Output == "" {
		return Result{}, errors.New("exporter: output path is required")
	}

	tokens := Normalize(terms)
	freq := Tally(tokens)

	img, err := e.Renderer.Render(ctx, freq.Limit(req.Style.MaxWords), req.Style)
	if err != nil {
		return Result{}, fmt.Errorf("render word cloud: %w", err)
	}

	if e.Composer != nil {
		img, err = e.Composer.Compose(img, req.Style, req.Figure)
		if err != nil {
			return Result{}, fmt.Errorf("compose figure: %w", err)
		}
	}

	if err := e.Writer.Write(req.Output, img); err != nil {
		return Result{}, fmt.Errorf("write %s: %w", req.Output, err)
	}

	if e.Sidecar != nil && req.SidecarPath != "" {
		if err := e.Sidecar(req.SidecarPath, freq); err != nil {
			return Result{}, fmt.Errorf("write frequencies %s: %w", req.SidecarPath, err)
		}
	}

	if e.Publisher != nil {
		if err := e.Publisher.Publish(ctx, freq); err != nil {
			return Result{}, fmt.Errorf("publish frequencies: %w", err)
		}
	}

	return Result{Path: req.Output, Tokens: len(tokens), Frequencies: freq}, nil
}
