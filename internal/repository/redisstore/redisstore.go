package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/setsunaxe7/pokemart-fulfillment/internal/errorx"
	"github.com/setsunaxe7/pokemart-fulfillment/internal/models"
)

const keyPrefix = "external_grading:"

// GradingStore keeps the external grading worker's copy of each record.
// Entries have no expiry: a partner callback may arrive long after submission.
type GradingStore struct {
	client redis.Cmdable
}

func NewGradingStore(client redis.Cmdable) *GradingStore {
	return &GradingStore{client: client}
}

func key(gradingID string) string {
	return keyPrefix + gradingID
}

func (s *GradingStore) Save(ctx context.Context, record models.GradingRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("error marshaling grading %s: %w", record.GradingID, err)
	}
	if err := s.client.Set(ctx, key(record.GradingID), data, 0).Err(); err != nil {
		return fmt.Errorf("error saving grading %s: %w", record.GradingID, err)
	}
	return nil
}

func (s *GradingStore) Get(ctx context.Context, gradingID string) (*models.GradingRecord, error) {
	data, err := s.client.Get(ctx, key(gradingID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: external grading %s", errorx.ErrNotFound, gradingID)
	}
	if err != nil {
		return nil, fmt.Errorf("error loading grading %s: %w", gradingID, err)
	}

	var record models.GradingRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("error decoding grading %s: %w", gradingID, err)
	}
	return &record, nil
}
