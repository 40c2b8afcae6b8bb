package cache

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

// Store caches small serialized payloads such as the search status and schema responses.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, expiration time.Duration)
}

// Memory is a process-local Store.
type Memory struct {
	cache *gocache.Cache
}

func New() *Memory {
	return &Memory{
		cache: gocache.New(5*time.Minute, 10*time.Minute),
	}
}

func (c *Memory) Get(_ context.Context, key string) ([]byte, bool) {
	v, found := c.cache.Get(key)
	if !found {
		return nil, false
	}
	b, ok := v.([]byte)
	return b, ok
}

func (c *Memory) Set(_ context.Context, key string, value []byte, expiration time.Duration) {
	c.cache.Set(key, value, expiration)
}

// Redis is a Store shared between server replicas.
type Redis struct {
	client *redis.Client
	prefix string
}

// NewRedis connects to Redis and verifies the connection with a PING.
func NewRedis(host, port, username, password string) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Username: username,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Println("Connected to Redis")
	return &Redis{client: client, prefix: "employeehub:"}, nil
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool) {
	b, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("Warning: redis get %s: %v", key, err)
		}
		return nil, false
	}
	return b, true
}

func (r *Redis) Set(ctx context.Context, key string, value []byte, expiration time.Duration) {
	if err := r.client.Set(ctx, r.prefix+key, value, expiration).Err(); err != nil {
		log.Printf("Warning: redis set %s: %v", key, err)
	}
}

func (r *Redis) Close() error {
	return r.client.Close()
}
