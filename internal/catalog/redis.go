package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisPrefix namespaces dataset keys.
const DefaultRedisPrefix = "admintables"

// RedisClient is the subset of *redis.Client the Redis source uses.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// RedisSource reads one JSON array per dataset from <prefix>:<dataset>.
// A missing key is an empty dataset.
type RedisSource struct {
	client RedisClient
	prefix string
}

// NewRedisSource wraps a client. An empty prefix uses DefaultRedisPrefix.
func NewRedisSource(client RedisClient, prefix string) *RedisSource {
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	return &RedisSource{client: client, prefix: prefix}
}

func (s *RedisSource) Name() string { return "redis:" + s.prefix }

// Key returns the Redis key holding a dataset.
func (s *RedisSource) Key(dataset string) string {
	return s.prefix + ":" + dataset
}

func (s *RedisSource) Load(ctx context.Context) (Datasets, error) {
	var d Datasets
	targets := map[string]any{
		DatasetCategories:    &d.Categories,
		DatasetSubcategories: &d.Subcategories,
		DatasetTags:          &d.Tags,
		DatasetSkills:        &d.Skills,
		DatasetTaxonomy:      &d.Taxonomy,
		DatasetChats:         &d.Chats,
		DatasetUsers:         &d.Users,
	}
	for _, name := range DatasetNames {
		raw, err := s.client.Get(ctx, s.Key(name)).Bytes()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return Datasets{}, fmt.Errorf("get %s: %w", s.Key(name), err)
		}
		if err := json.Unmarshal(raw, targets[name]); err != nil {
			return Datasets{}, fmt.Errorf("decode %s: %w", s.Key(name), err)
		}
	}
	return d, nil
}

// Publish writes every dataset of d under the source's keys, replacing
// what is there. Used to seed Redis from another source.
func (s *RedisSource) Publish(ctx context.Context, d Datasets) error {
	values := map[string]any{
		DatasetCategories:    d.Categories,
		DatasetSubcategories: d.Subcategories,
		DatasetTags:          d.Tags,
		DatasetSkills:        d.Skills,
		DatasetTaxonomy:      d.Taxonomy,
		DatasetChats:         d.Chats,
		DatasetUsers:         d.Users,
	}
	for _, name := range DatasetNames {
		raw, err := json.Marshal(values[name])
		if err != nil {
			return fmt.Errorf("encode %s: %w", name, err)
		}
		if err := s.client.Set(ctx, s.Key(name), raw, 0).Err(); err != nil {
			return fmt.Errorf("set %s: %w", s.Key(name), err)
		}
	}
	return nil
}
