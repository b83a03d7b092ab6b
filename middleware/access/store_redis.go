package access

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore grava contadores de acesso em hashes do Redis:
//
//	<prefix>:total                 campos requests, bytes, 2xx, 4xx...
//	<prefix>:minute:200601021504   mesmo formato, expira após ttl
//	<prefix>:path                  campos "<path>:<classe>"
type RedisStore struct {
	rdb *redis.Client

	prefix string
	// ttl vale apenas para os buckets por minuto; o total é cumulativo.
	ttl time.Duration
}

type RedisStoreOption func(*RedisStore)

func WithPrefix(prefix string) RedisStoreOption {
	return func(s *RedisStore) {
		if p := strings.Trim(prefix, ":"); p != "" {
			s.prefix = p
		}
	}
}

func WithTTL(d time.Duration) RedisStoreOption {
	return func(s *RedisStore) { s.ttl = d }
}

func NewRedisStore(rdb *redis.Client, opts ...RedisStoreOption) *RedisStore {
	s := &RedisStore{
		rdb:    rdb,
		prefix: "wordcloud:access",
		ttl:    24 * time.Hour,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *RedisStore) Record(ctx context.Context, ev Event) error {
	if s == nil || s.rdb == nil {
		return nil
	}

	at := ev.At
	if at.IsZero() {
		at = time.Now()
	}
	class := ev.StatusClass()

	totalKey := s.prefix + ":total"
	bucketKey := fmt.Sprintf("%s:minute:%s", s.prefix, at.UTC().Format("200601021504"))

	pipe := s.rdb.Pipeline()
	for _, key := range []string{totalKey, bucketKey} {
		pipe.HIncrBy(ctx, key, "requests", 1)
		pipe.HIncrBy(ctx, key, "bytes", ev.Bytes)
		pipe.HIncrBy(ctx, key, class, 1)
	}
	if s.ttl > 0 {
		pipe.Expire(ctx, bucketKey, s.ttl)
	}
	if p := strings.TrimSpace(ev.Path); p != "" {
		pipe.HIncrBy(ctx, s.prefix+":path", p+":"+class, 1)
	}

	_, err := pipe.Exec(ctx)
	return err
}
