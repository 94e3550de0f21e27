package db

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"hotpot-server/internal/entities"
)

// RedisStore keeps one key per table holding the serialized snapshot.
type RedisStore struct {
	client *redis.Client
}

func OpenRedis(addr, password string, dbNum int) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       dbNum,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	log.Info().Str("addr", addr).Msg("redis snapshot store ready")
	return &RedisStore{client: client}, nil
}

func snapshotKey(tableID string) string {
	return "hotpot:table:" + tableID
}

func (s *RedisStore) Load(ctx context.Context, tableID string) (*entities.GameState, error) {
	data, err := s.client.Get(ctx, snapshotKey(tableID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return decodeSnapshot(data)
}

func (s *RedisStore) Save(ctx context.Context, tableID string, state *entities.GameState) error {
	data, err := encodeSnapshot(state)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, snapshotKey(tableID), data, 0).Err()
}
