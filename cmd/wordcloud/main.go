package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"trends-wordcloud/config"
	"trends-wordcloud/wordcloud/application"
	"trends-wordcloud/wordcloud/domain"
	"trends-wordcloud/wordcloud/infra"
)

func main() {
	cfg, err := config.LoadExporter()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	terms, err := loadTerms(cfg)
	if err != nil {
		log.Fatalf("load terms: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	engine := infra.NewEngine()
	exp := application.Exporter{
		Renderer: engine,
		Composer: infra.Composer{},
		Writer:   infra.PNGWriter{},
		Sidecar:  infra.WriteFrequenciesJSON,
	}

	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer func() { _ = rdb.Close() }()

		pingCtx, pingCancel := context.WithTimeout(ctx, 2*time.Second)
		_, err := rdb.Ping(pingCtx).Result()
		pingCancel()
		if err != nil {
			log.Fatalf("redis ping error: %v", err)
		}
		exp.Publisher = infra.NewRedisPublisher(rdb, infra.WithPublishKey(cfg.Redis.Key), infra.WithPublishTTL(time.Duration(cfg.Redis.TTL)))
	}

	res, err := exp.Export(ctx, terms, application.Request{
		Output:      cfg.OutputFile,
		Style:       cfg.Style(),
		Figure:      cfg.FigureSpec(),
		SidecarPath: cfg.FrequenciesFile,
	})
	_ = engine.Close()
	if err != nil {
		log.Fatalf("export error: %v", err)
	}

	fmt.Printf("Word cloud generated and saved as: %s\n", res.Path)
}

// loadTerms escolhe a fonte das frases: TERMS_FILE, depois a lista do
// arquivo de configuração e por fim a lista embutida.
func loadTerms(cfg config.Exporter) ([]string, error) {
	if cfg.TermsFile != "" {
		return infra.LoadTermsFile(cfg.TermsFile)
	}
	if len(cfg.Terms) > 0 {
		return cfg.Terms, nil
	}
	return domain.DefaultTerms, nil
}
