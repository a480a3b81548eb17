package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/emrgen/portfolio/internal/content"
	redis "github.com/redis/go-redis/v9"
)

const (
	contentKey = "portfolio:content"
	contentTTL = time.Hour
)

var _ ContentCache = (*RedisContentCache)(nil)

type RedisContentCache struct {
	client *redis.Client
}

func NewRedisContentCache(addr, password string) *RedisContentCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
		Protocol: 2,
	})

	return &RedisContentCache{client: client}
}

func (r *RedisContentCache) GetDocument(ctx context.Context) (*content.Document, error) {
	res := r.client.Get(ctx, contentKey)
	if res.Err() != nil {
		if errors.Is(res.Err(), redis.Nil) {
			return nil, nil
		}
		return nil, res.Err()
	}

	buf, err := res.Bytes()
	if err != nil {
		return nil, err
	}

	doc := &content.Document{}
	if err := json.Unmarshal(buf, doc); err != nil {
		return nil, err
	}

	return doc, nil
}

func (r *RedisContentCache) SetDocument(ctx context.Context, doc *content.Document) error {
	marshal, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	return r.client.Set(ctx, contentKey, marshal, contentTTL).Err()
}

func (r *RedisContentCache) DeleteDocument(ctx context.Context) error {
	return r.client.Del(ctx, contentKey).Err()
}
