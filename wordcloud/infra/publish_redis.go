package infra

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"trends-wordcloud/wordcloud/domain"
)

// RedisPublisher grava o mapa de frequências em um hash (token -> contagem).
// O hash é substituído por inteiro a cada publicação.
type RedisPublisher struct {
	rdb *redis.Client
	key string
	// ttl 0 significa sem expiração.
	ttl time.Duration
}

type RedisPublisherOption func(*RedisPublisher)

func WithPublishKey(key string) RedisPublisherOption {
	return func(p *RedisPublisher) {
		if k := strings.TrimSpace(key); k != "" {
			p.key = k
		}
	}
}

func WithPublishTTL(d time.Duration) RedisPublisherOption {
	return func(p *RedisPublisher) { p.ttl = d }
}

func NewRedisPublisher(rdb *redis.Client, opts ...RedisPublisherOption) *RedisPublisher {
	p := &RedisPublisher{
		rdb: rdb,
		key: "wordcloud:frequencies",
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *RedisPublisher) Publish(ctx context.Context, freq domain.Frequencies) error {
	if p == nil || p.rdb == nil {
		return nil
	}

	pipe := p.rdb.TxPipeline()
	pipe.Del(ctx, p.key)
	if len(freq) > 0 {
		values := make(map[string]interface{}, len(freq))
		for w, c := range freq {
			values[w] = c
		}
		pipe.HSet(ctx, p.key, values)
		if p.ttl > 0 {
			pipe.Expire(ctx, p.key, p.ttl)
		}
	}
	_, err := pipe.Exec(ctx)
	return err
}
