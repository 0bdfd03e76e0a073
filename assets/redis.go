package assets

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultRedisKey = "privatemsg:assets:css"

	registerTimeout = 2 * time.Second
)

// RedisRegistry shares the registered set between processes. Paths live in a
// sorted set scored by first-registration time, so ZADD NX gives both the
// dedup and the ordering.
type RedisRegistry struct {
	client *redis.Client
	key    string

	group singleflight.Group
	now   func() time.Time
}

// NewRedisRegistry pings the server before returning.
func NewRedisRegistry(ctx context.Context, client *redis.Client, key string) (*RedisRegistry, error) {
	if key == "" {
		key = DefaultRedisKey
	}
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Wrap(err, "redis ping")
	}
	return &RedisRegistry{
		client: client,
		key:    key,
		now:    time.Now,
	}, nil
}

// Connect returns a RedisRegistry when Redis answers, and a MemoryRegistry
// otherwise.
func Connect(ctx context.Context, opts *redis.Options, key string) Registry {
	if opts == nil || opts.Addr == "" || opts.Addr == ":" {
		log.Info("Redis not configured, using in-memory asset registry")
		return NewMemoryRegistry()
	}

	client := redis.NewClient(opts)
	reg, err := NewRedisRegistry(ctx, client, key)
	if err != nil {
		log.Warnf("❌ Redis connection failed, using in-memory asset registry: %v", err)
		client.Close()
		return NewMemoryRegistry()
	}

	log.WithField("key", reg.key).Info("✅ Redis asset registry connected")
	return reg
}

// Register always goes to Redis so a flushed or forgotten key is filled again
// on the next render. Concurrent calls for one path share a single ZADD, which
// runs detached from the caller's cancellation.
func (r *RedisRegistry) Register(ctx context.Context, p string) error {
	if err := validatePath(p); err != nil {
		return err
	}

	_, err, _ := r.group.Do(p, func() (interface{}, error) {
		zctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), registerTimeout)
		defer cancel()

		member := redis.Z{
			Score:  float64(r.now().UnixMicro()),
			Member: p,
		}
		added, err := r.client.ZAddNX(zctx, r.key, member).Result()
		if err != nil {
			return nil, errors.Wrapf(err, "zadd %s", r.key)
		}
		if added > 0 {
			log.WithField("path", p).Debug("🎨 Stylesheet registered")
		}
		return added, nil
	})
	return err
}

func (r *RedisRegistry) Paths(ctx context.Context) ([]string, error) {
	paths, err := r.client.ZRange(ctx, r.key, 0, -1).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "zrange %s", r.key)
	}
	return paths, nil
}

// Forget drops the registered set.
func (r *RedisRegistry) Forget(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		return errors.Wrapf(err, "del %s", r.key)
	}
	return nil
}

func (r *RedisRegistry) Close() error {
	return r.client.Close()
}
