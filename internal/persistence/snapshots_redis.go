package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/fit-training-service/internal/domain"
)

// RedisSnapshots persists the trainee collection as one JSON document under a
// fixed, versionless key.
type RedisSnapshots struct {
	client *redis.Client
	key    string
}

// NewRedisSnapshots builds a Redis-backed snapshot store.
func NewRedisSnapshots(r *Redis, key string) *RedisSnapshots {
	return &RedisSnapshots{client: r.Client, key: key}
}

// Load reads the snapshot document. A missing key is an empty collection.
func (r *RedisSnapshots) Load(ctx context.Context) ([]domain.Trainee, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("read snapshot %s: %w", r.key, err)
	}
	var trainees []domain.Trainee
	if err := json.Unmarshal(data, &trainees); err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", r.key, err)
	}
	return trainees, nil
}

// Save writes a complete replacement snapshot under the collection key.
func (r *RedisSnapshots) Save(ctx context.Context, trainees []domain.Trainee) error {
	data, err := json.Marshal(trainees)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("write snapshot %s: %w", r.key, err)
	}
	return nil
}
