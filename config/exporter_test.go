package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trends-wordcloud/wordcloud/domain"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadExporter_Defaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")

	cfg, err := LoadExporter()
	require.NoError(t, err)

	assert.Equal(t, DefaultOutputFile, cfg.OutputFile)
	assert.Equal(t, domain.DefaultStyle(), cfg.Style())
	assert.Equal(t, domain.DefaultFigure(), cfg.FigureSpec())
	assert.Empty(t, cfg.Redis.Addr)
	assert.Equal(t, "wordcloud:frequencies", cfg.Redis.Key)
}

func TestLoadExporter_YAMLFile(t *testing.T) {
	path := writeFile(t, "wordcloud.yaml", `
terms_file: terms.txt
output_file: cloud.png
canvas:
  width: 600
  height: 400
  max_words: 25
  contour_width: 0
  colormap: magma
figure:
  title: ""
  dpi: 150
redis:
  addr: localhost:6379
  ttl: 1h
`)
	t.Setenv("CONFIG_FILE", path)

	cfg, err := LoadExporter()
	require.NoError(t, err)

	assert.Equal(t, "terms.txt", cfg.TermsFile)
	assert.Equal(t, "cloud.png", cfg.OutputFile)
	style := cfg.Style()
	assert.Equal(t, 600, style.Width)
	assert.Equal(t, 400, style.Height)
	assert.Equal(t, 25, style.MaxWords)
	assert.Equal(t, 0, style.ContourWidth)
	assert.Equal(t, "magma", style.Colormap)
	assert.Equal(t, "white", style.Background)
	fig := cfg.FigureSpec()
	assert.Empty(t, fig.Title)
	assert.Equal(t, 150.0, fig.DPI)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, Duration(time.Hour), cfg.Redis.TTL)
}

func TestLoadExporter_TOMLFile(t *testing.T) {
	path := writeFile(t, "wordcloud.toml", `
output_file = "trends.png"
terms = ["AI Ethics", "ai ethics guidelines"]

[canvas]
width = 300
height = 200
background = "black"

[redis]
addr = "localhost:6379"
ttl = "1h"
`)
	t.Setenv("CONFIG_FILE", path)

	cfg, err := LoadExporter()
	require.NoError(t, err)

	assert.Equal(t, "trends.png", cfg.OutputFile)
	assert.Equal(t, []string{"AI Ethics", "ai ethics guidelines"}, cfg.Terms)
	assert.Equal(t, 300, cfg.Canvas.Width)
	assert.Equal(t, "black", cfg.Canvas.Background)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, Duration(time.Hour), cfg.Redis.TTL)
}

func TestLoadExporter_InvalidTTL(t *testing.T) {
	t.Setenv("CONFIG_FILE", writeFile(t, "wordcloud.toml", "[redis]\nttl = \"soon\"\n"))

	_, err := LoadExporter()
	require.Error(t, err)
}

func TestLoadExporter_EnvTTLOverridesFile(t *testing.T) {
	t.Setenv("CONFIG_FILE", writeFile(t, "wordcloud.yaml", "redis:\n  ttl: 1h\n"))
	t.Setenv("REDIS_TTL", "15m")

	cfg, err := LoadExporter()
	require.NoError(t, err)
	assert.Equal(t, Duration(15*time.Minute), cfg.Redis.TTL)
}

func TestLoadExporter_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "wordcloud.yaml", "output_file: from-file.png\ncanvas:\n  width: 600\n")
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("OUTPUT_FILE", "from-env.png")
	t.Setenv("CANVAS_WIDTH", "900")
	t.Setenv("TITLE", "Trends")

	cfg, err := LoadExporter()
	require.NoError(t, err)

	assert.Equal(t, "from-env.png", cfg.OutputFile)
	assert.Equal(t, 900, cfg.Canvas.Width)
	assert.Equal(t, "Trends", cfg.FigureSpec().Title)
}

func TestLoadExporter_ExplicitMissingFileFails(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := LoadExporter()
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadExporter_UnsupportedExtension(t *testing.T) {
	t.Setenv("CONFIG_FILE", writeFile(t, "wordcloud.ini", "x=1"))

	_, err := LoadExporter()
	require.Error(t, err)
}

func TestLoadExporter_Validation(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("CANVAS_HEIGHT", "-1")

	_, err := LoadExporter()
	require.Error(t, err)
}
