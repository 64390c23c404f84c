package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"WebHub/internal/domain/models"
	"WebHub/internal/domain/repository"
)

// RedisJournal keeps the newest maxLen events in a Redis list, newest at the head.
type RedisJournal struct {
	client *redis.Client
	key    string
	maxLen int64
}

func NewRedisJournal(client *redis.Client, key string, maxLen int) *RedisJournal {
	if maxLen <= 0 {
		maxLen = 500
	}
	return &RedisJournal{client: client, key: key, maxLen: int64(maxLen)}
}

// Append pushes e and trims the list in one round-trip.
func (j *RedisJournal) Append(ctx context.Context, e *models.LookupEvent) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal lookup event: %w", err)
	}

	_, err = j.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.LPush(ctx, j.key, data)
		p.LTrim(ctx, j.key, 0, j.maxLen-1)
		return nil
	})
	return err
}

func (j *RedisJournal) Recent(ctx context.Context, n int) ([]models.LookupEvent, error) {
	items, err := j.client.LRange(ctx, j.key, 0, int64(n)-1).Result()
	if err != nil {
		return nil, err
	}

	events := make([]models.LookupEvent, 0, len(items))
	for _, it := range items {
		var e models.LookupEvent
		if err := json.Unmarshal([]byte(it), &e); err != nil {
			return nil, fmt.Errorf("decode lookup event: %w", err)
		}
		events = append(events, e)
	}
	return events, nil
}

func (j *RedisJournal) Close() error {
	return j.client.Close()
}

var (
	_ repository.Journal       = (*RedisJournal)(nil)
	_ repository.JournalReader = (*RedisJournal)(nil)
)
