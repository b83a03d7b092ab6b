package config

import (
	"errors"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// Server reúne a configuração do servidor de arquivos (cmd/server).
type Server struct {
	Host        string
	Port        int
	Page        string
	RootDir     string
	OpenBrowser bool

	// 1 reproduz o atendimento de uma requisição por vez.
	ConcurrencyMax     int
	ConcurrencyTimeout time.Duration

	RateEnabled bool
	RateRPS     float64
	RateBurst   int
	RateKeyHdr  string
	TrustXFF    bool
	RetryAfter  time.Duration
	RateHeaders bool

	AccessLog      bool
	MetricsEnabled bool
	MetricsPath    string

	StatsEnabled       bool
	StatsRedisAddr     string
	StatsRedisPassword string
	StatsRedisDB       int
	StatsPrefix        string
	StatsTTL           time.Duration
}

func (c Server) ListenAddr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func LoadServer() (Server, error) {
	cfg := Server{}
	cfg.Host = os.Getenv("HOST")
	cfg.Port = getenvIntDefault("PORT", 8000)
	cfg.Page = strings.TrimPrefix(getenvDefault("PAGE", "wordcloud.html"), "/")
	cfg.RootDir = os.Getenv("ROOT_DIR")
	cfg.OpenBrowser = getenvBoolDefault("OPEN_BROWSER", true)

	cfg.ConcurrencyMax = getenvIntDefault("CONCURRENCY_MAX", 1)
	cfg.ConcurrencyTimeout = getenvDurationDefault("CONCURRENCY_TIMEOUT", 0)

	cfg.RateEnabled = getenvBoolDefault("RATE_ENABLED", false)
	cfg.RateRPS = getenvFloatDefault("RATE_RPS", 10)
	// com RPS abaixo de 1 um burst de 20 deixa passar as primeiras 20
	// requisições e o limite parece não funcionar
	if burst, ok := getenvInt("RATE_BURST"); ok {
		cfg.RateBurst = burst
	} else {
		cfg.RateBurst = 20
		if getenvIsSet("RATE_RPS") && cfg.RateRPS > 0 && cfg.RateRPS < 1 {
			cfg.RateBurst = 1
		}
	}
	cfg.RateKeyHdr = os.Getenv("RATE_KEY_HEADER")
	cfg.TrustXFF = getenvBoolDefault("TRUST_XFF", false)
	cfg.RetryAfter = getenvDurationDefault("RETRY_AFTER", 1*time.Second)
	cfg.RateHeaders = getenvBoolDefault("ADD_RATELIMIT_HEADERS", false)

	cfg.AccessLog = getenvBoolDefault("ACCESS_LOG", true)
	cfg.MetricsEnabled = getenvBoolDefault("METRICS_ENABLED", false)
	cfg.MetricsPath = getenvDefault("METRICS_PATH", "/metrics")

	cfg.StatsEnabled = getenvBoolDefault("STATS_ENABLED", false)
	cfg.StatsRedisAddr = os.Getenv("STATS_REDIS_ADDR")
	cfg.StatsRedisPassword = os.Getenv("STATS_REDIS_PASSWORD")
	cfg.StatsRedisDB = getenvIntDefault("STATS_REDIS_DB", 0)
	cfg.StatsPrefix = getenvDefault("STATS_PREFIX", "wordcloud:access")
	cfg.StatsTTL = getenvDurationDefault("STATS_TTL", 24*time.Hour)

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Server{}, errors.New("PORT must be between 1 and 65535")
	}
	if cfg.Page == "" {
		return Server{}, errors.New("PAGE must not be empty")
	}
	if cfg.ConcurrencyMax < 0 {
		return Server{}, errors.New("CONCURRENCY_MAX must be >= 0")
	}
	if cfg.RateEnabled && cfg.RateRPS <= 0 {
		return Server{}, errors.New("RATE_RPS must be > 0")
	}
	if cfg.RateEnabled && cfg.RateBurst <= 0 {
		return Server{}, errors.New("RATE_BURST must be > 0")
	}
	if cfg.MetricsEnabled && !strings.HasPrefix(cfg.MetricsPath, "/") {
		return Server{}, errors.New("METRICS_PATH must start with /")
	}
	if cfg.StatsEnabled && strings.TrimSpace(cfg.StatsRedisAddr) == "" {
		return Server{}, errors.New("STATS_REDIS_ADDR is required when STATS_ENABLED=true")
	}
	return cfg, nil
}
