package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/anshuchowdary926-eng/visamate/internal/models"
)

// redisStore keeps one JSON snapshot per session key. The TTL is refreshed
// on every save and read, so active sessions never expire mid-conversation.
type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func (s *redisStore) Save(ctx context.Context, key string, snap *models.Snapshot) error {
	val, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, "session:"+key, val, s.ttl).Err()
}

func (s *redisStore) Load(ctx context.Context, key string) (*models.Snapshot, error) {
	val, err := s.client.Get(ctx, "session:"+key).Result()
	if errors.Is(err, redis.Nil) {
		return emptySnapshot(), nil
	}
	if err != nil {
		return nil, err
	}

	var snap models.Snapshot
	if err := json.Unmarshal([]byte(val), &snap); err != nil {
		return emptySnapshot(), nil
	}
	if snap.Messages == nil {
		snap.Messages = []models.Message{}
	}
	if snap.Durations == nil {
		snap.Durations = map[string]int64{}
	}

	_ = s.client.Expire(ctx, "session:"+key, s.ttl).Err()

	return &snap, nil
}

func (s *redisStore) Close() error {
	return s.client.Close()
}
