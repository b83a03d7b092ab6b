package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"trends-wordcloud/wordcloud/domain"
)

const DefaultOutputFile = "google_trends_2025_wordcloud.png"

// Exporter reúne a configuração do gerador (cmd/wordcloud).
//
// Ordem de precedência: variáveis de ambiente > arquivo (CONFIG_FILE) > padrões.
type Exporter struct {
	TermsFile       string       `yaml:"terms_file" toml:"terms_file"`
	Terms           []string     `yaml:"terms" toml:"terms"`
	OutputFile      string       `yaml:"output_file" toml:"output_file"`
	FrequenciesFile string       `yaml:"frequencies_file" toml:"frequencies_file"`
	Canvas          CanvasConfig `yaml:"canvas" toml:"canvas"`
	Figure          FigureConfig `yaml:"figure" toml:"figure"`
	Redis           RedisConfig  `yaml:"redis" toml:"redis"`
}

type CanvasConfig struct {
	Width        int    `yaml:"width" toml:"width"`
	Height       int    `yaml:"height" toml:"height"`
	Background   string `yaml:"background" toml:"background"`
	MaxWords     int    `yaml:"max_words" toml:"max_words"`
	ContourWidth *int   `yaml:"contour_width" toml:"contour_width"`
	ContourColor string `yaml:"contour_color" toml:"contour_color"`
	Colormap     string `yaml:"colormap" toml:"colormap"`
	FontFile     string `yaml:"font_file" toml:"font_file"`
}

type FigureConfig struct {
	Title       *string `yaml:"title" toml:"title"`
	TitleSize   float64 `yaml:"title_size" toml:"title_size"`
	WidthInches float64 `yaml:"width_inches" toml:"width_inches"`
	DPI         float64 `yaml:"dpi" toml:"dpi"`
}

// RedisConfig habilita a publicação do mapa de frequências quando Addr é
// informado.
type RedisConfig struct {
	Addr     string   `yaml:"addr" toml:"addr"`
	Password string   `yaml:"password" toml:"password"`
	DB       int      `yaml:"db" toml:"db"`
	Key      string   `yaml:"key" toml:"key"`
	TTL      Duration `yaml:"ttl" toml:"ttl"`
}

// LoadExporter lê o arquivo opcional e aplica as variáveis de ambiente.
// CONFIG_FILE ausente não é erro; um CONFIG_FILE explícito que não existe é.
func LoadExporter() (Exporter, error) {
	cfg := Exporter{}

	path := getenvDefault("CONFIG_FILE", "wordcloud.yaml")
	if err := loadFile(path, &cfg); err != nil {
		if !errors.Is(err, os.ErrNotExist) || getenvIsSet("CONFIG_FILE") {
			return Exporter{}, err
		}
	}

	cfg.TermsFile = getenvDefault("TERMS_FILE", cfg.TermsFile)
	cfg.OutputFile = getenvDefault("OUTPUT_FILE", orDefault(cfg.OutputFile, DefaultOutputFile))
	cfg.FrequenciesFile = getenvDefault("FREQUENCIES_FILE", cfg.FrequenciesFile)

	def := domain.DefaultStyle()
	c := &cfg.Canvas
	c.Width = getenvIntDefault("CANVAS_WIDTH", orDefaultInt(c.Width, def.Width))
	c.Height = getenvIntDefault("CANVAS_HEIGHT", orDefaultInt(c.Height, def.Height))
	c.Background = getenvDefault("BACKGROUND_COLOR", orDefault(c.Background, def.Background))
	c.MaxWords = getenvIntDefault("MAX_WORDS", orDefaultInt(c.MaxWords, def.MaxWords))
	contour := def.ContourWidth
	if c.ContourWidth != nil {
		contour = *c.ContourWidth
	}
	contour = getenvIntDefault("CONTOUR_WIDTH", contour)
	c.ContourWidth = &contour
	c.ContourColor = getenvDefault("CONTOUR_COLOR", orDefault(c.ContourColor, def.ContourColor))
	c.Colormap = getenvDefault("COLORMAP", orDefault(c.Colormap, def.Colormap))
	c.FontFile = getenvDefault("FONT_FILE", c.FontFile)

	defFig := domain.DefaultFigure()
	f := &cfg.Figure
	title := defFig.Title
	if f.Title != nil {
		title = *f.Title
	}
	if v, ok := os.LookupEnv("TITLE"); ok {
		title = v
	}
	f.Title = &title
	f.TitleSize = getenvFloatDefault("TITLE_SIZE", orDefaultFloat(f.TitleSize, defFig.TitleSize))
	f.WidthInches = getenvFloatDefault("FIGURE_WIDTH_INCHES", orDefaultFloat(f.WidthInches, defFig.WidthInches))
	f.DPI = getenvFloatDefault("DPI", orDefaultFloat(f.DPI, defFig.DPI))

	r := &cfg.Redis
	r.Addr = getenvDefault("REDIS_ADDR", r.Addr)
	r.Password = getenvDefault("REDIS_PASSWORD", r.Password)
	r.DB = getenvIntDefault("REDIS_DB", r.DB)
	r.Key = getenvDefault("REDIS_KEY", orDefault(r.Key, "wordcloud:frequencies"))
	r.TTL = Duration(getenvDurationDefault("REDIS_TTL", time.Duration(r.TTL)))

	if err := cfg.validate(); err != nil {
		return Exporter{}, err
	}
	return cfg, nil
}

func (c Exporter) validate() error {
	if strings.TrimSpace(c.OutputFile) == "" {
		return errors.New("OUTPUT_FILE must not be empty")
	}
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return errors.New("CANVAS_WIDTH and CANVAS_HEIGHT must be > 0")
	}
	if c.Canvas.MaxWords < 0 {
		return errors.New("MAX_WORDS must be >= 0")
	}
	if *c.Canvas.ContourWidth < 0 {
		return errors.New("CONTOUR_WIDTH must be >= 0")
	}
	if c.Figure.DPI < 0 || c.Figure.WidthInches < 0 {
		return errors.New("DPI and FIGURE_WIDTH_INCHES must be >= 0")
	}
	return nil
}

// Style converte a configuração para o tipo do domínio.
func (c Exporter) Style() domain.Style {
	return domain.Style{
		Width:        c.Canvas.Width,
		Height:       c.Canvas.Height,
		Background:   c.Canvas.Background,
		MaxWords:     c.Canvas.MaxWords,
		ContourWidth: *c.Canvas.ContourWidth,
		ContourColor: c.Canvas.ContourColor,
		Colormap:     c.Canvas.Colormap,
		FontFile:     c.Canvas.FontFile,
	}
}

func (c Exporter) FigureSpec() domain.Figure {
	fig := domain.DefaultFigure()
	fig.Title = *c.Figure.Title
	fig.TitleSize = c.Figure.TitleSize
	fig.WidthInches = c.Figure.WidthInches
	fig.DPI = c.Figure.DPI
	return fig
}

func loadFile(path string, out *Exporter) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, out)
	case ".toml":
		err = toml.Unmarshal(data, out)
	default:
		return fmt.Errorf("unsupported config file %q (want .yaml, .yml or .toml)", path)
	}
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func orDefault(v, def string) string {
	if v != "" {
		return v
	}
	return def
}

func orDefaultInt(v, def int) int {
	if v != 0 {
		return v
	}
	return def
}

func orDefaultFloat(v, def float64) float64 {
	if v != 0 {
		return v
	}
	return def
}
