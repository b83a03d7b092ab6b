package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"

	"trends-wordcloud/config"
	"trends-wordcloud/middleware/access"
	"trends-wordcloud/middleware/ratelimit"
	"trends-wordcloud/middleware/ratelimit/infra"
	"trends-wordcloud/staticserver"
)

func main() {
	cfg, err := config.LoadServer()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	root, err := staticserver.ResolveRoot(cfg.RootDir)
	if err != nil {
		log.Fatalf("resolve root: %v", err)
	}
	// os.Chdir para que http.Dir(".") resolva a partir do diretório do servidor
	if err := os.Chdir(root); err != nil {
		log.Fatalf("chdir %s: %v", root, err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := staticserver.Options{
		ConcurrencyMax:     cfg.ConcurrencyMax,
		ConcurrencyTimeout: cfg.ConcurrencyTimeout,
	}
	if cfg.AccessLog {
		opts.Logger = access.NewLogger(os.Stderr)
	}

	if cfg.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		opts.Metrics = access.NewMetrics(reg)
		opts.MetricsPath = cfg.MetricsPath
	}

	if cfg.RateEnabled {
		buckets := infra.NewBucketStore(cfg.RateRPS, cfg.RateBurst)
		buckets.StartSweeper(ctx)
		opts.Buckets = buckets
		opts.RateKeyFn = ratelimit.DefaultKeyFunc(cfg.RateKeyHdr, cfg.TrustXFF)
		opts.MinRetryAfter = cfg.RetryAfter
		opts.RateHeaders = cfg.RateHeaders
	}

	if cfg.StatsEnabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.StatsRedisAddr,
			Password: cfg.StatsRedisPassword,
			DB:       cfg.StatsRedisDB,
		})
		defer func() { _ = rdb.Close() }()

		pingCtx, pingCancel := context.WithTimeout(ctx, 2*time.Second)
		_, err := rdb.Ping(pingCtx).Result()
		pingCancel()
		if err != nil {
			log.Fatalf("redis stats ping error: %v", err)
		}
		opts.Recorder = access.NewRedisStore(rdb, access.WithPrefix(cfg.StatsPrefix), access.WithTTL(cfg.StatsTTL))
	}

	// porta ocupada encerra o processo aqui, antes de abrir o navegador
	ln, err := net.Listen("tcp", cfg.ListenAddr())
	if err != nil {
		log.Fatalf("listen %s: %v", cfg.ListenAddr(), err)
	}

	log.Printf("serving %s on %s", root, ln.Addr())
	log.Printf("concurrency: max=%d acquireTimeout=%s", cfg.ConcurrencyMax, cfg.ConcurrencyTimeout)
	log.Printf("rate: enabled=%v rps=%.3f burst=%d keyHeader=%q trustXFF=%v headers=%v", cfg.RateEnabled, cfg.RateRPS, cfg.RateBurst, cfg.RateKeyHdr, cfg.TrustXFF, cfg.RateHeaders)
	log.Printf("metrics: enabled=%v path=%q stats: enabled=%v redisAddr=%q", cfg.MetricsEnabled, cfg.MetricsPath, cfg.StatsEnabled, cfg.StatsRedisAddr)

	url := staticserver.PageURL(cfg.Port, cfg.Page)
	fmt.Printf("Server running at: %s\n", url)
	fmt.Println("Press Ctrl+C to stop the server")

	if cfg.OpenBrowser {
		if err := staticserver.OpenBrowser(url); err != nil {
			log.Printf("open browser: %v", err)
		}
	}

	if err := staticserver.Serve(ctx, ln, staticserver.NewHandler(opts)); err != nil {
		log.Fatalf("server error: %v", err)
	}
	fmt.Println("\nServer stopped.")
}
