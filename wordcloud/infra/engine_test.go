package infra

import (
	"context"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/psykhi/wordclouds"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trends-wordcloud/wordcloud/application"
	"trends-wordcloud/wordcloud/domain"
)

func TestEngine_RendersDefaultTerms(t *testing.T) {
	e := NewEngine()
	defer e.Close()

	style := domain.DefaultStyle()
	style.Width, style.Height = 300, 200

	img, err := e.Render(context.Background(), application.Count(domain.DefaultTerms), style)
	require.NoError(t, err)
	require.NotNil(t, img)
	assert.Equal(t, image.Rect(0, 0, 300, 200), img.Bounds())
}

func TestEngine_MissingFontFileIsAnError(t *testing.T) {
	style := domain.DefaultStyle()
	style.FontFile = filepath.Join(t.TempDir(), "missing.ttf")

	var err error
	require.NotPanics(t, func() {
		_, err = NewEngine().Render(context.Background(), domain.Frequencies{"ai": 3}, style)
	})
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestEngine_LayoutPanicBecomesError(t *testing.T) {
	e := NewEngine()
	defer e.Close()
	e.layout = func(map[string]int, ...wordclouds.Option) image.Image {
		panic("font: invalid TTF")
	}

	var (
		img image.Image
		err error
	)
	require.NotPanics(t, func() {
		img, err = e.Render(context.Background(), domain.Frequencies{"ai": 3}, domain.DefaultStyle())
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "font: invalid TTF")
	assert.Nil(t, img)
}

func TestEngine_RenderAfterCloseRecreatesFont(t *testing.T) {
	e := NewEngine()
	var fonts []string
	e.layout = func(_ map[string]int, _ ...wordclouds.Option) image.Image {
		path, err := e.defaultFont()
		require.NoError(t, err)
		fonts = append(fonts, path)
		return image.NewRGBA(image.Rect(0, 0, 1, 1))
	}

	_, err := e.Render(context.Background(), domain.Frequencies{"ai": 1}, domain.DefaultStyle())
	require.NoError(t, err)
	require.NoError(t, e.Close())

	_, err = e.Render(context.Background(), domain.Frequencies{"ai": 1}, domain.DefaultStyle())
	require.NoError(t, err)
	defer e.Close()

	require.Len(t, fonts, 2)
	_, err = os.Stat(fonts[1])
	assert.NoError(t, err, "second render must have a font file on disk")
}

func TestEngine_RejectsEmptyFrequencies(t *testing.T) {
	_, err := NewEngine().Render(context.Background(), domain.Frequencies{}, domain.DefaultStyle())
	require.Error(t, err)
}

func TestEngine_RejectsBadStyle(t *testing.T) {
	freq := domain.Frequencies{"ai": 1}

	style := domain.DefaultStyle()
	style.Colormap = "rainbow"
	_, err := NewEngine().Render(context.Background(), freq, style)
	require.Error(t, err)

	style = domain.DefaultStyle()
	style.Width = 0
	_, err = NewEngine().Render(context.Background(), freq, style)
	require.Error(t, err)
}

func TestEngine_HonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewEngine().Render(ctx, domain.Frequencies{"ai": 1}, domain.DefaultStyle())
	require.ErrorIs(t, err, context.Canceled)
}

func TestEngine_DefaultFontLifecycle(t *testing.T) {
	e := NewEngine()
	path, err := e.defaultFont()
	require.NoError(t, err)

	_, err = os.Stat(path)
	require.NoError(t, err)

	require.NoError(t, e.Close())
	_, err = os.Stat(path)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.NoError(t, e.Close())
}
