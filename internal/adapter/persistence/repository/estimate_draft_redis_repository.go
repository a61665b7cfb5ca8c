package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"jiyajewellery/internal/domain/entities"
	"jiyajewellery/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const (
	draftKeyPrefix  = "draft:"
	defaultDraftTTL = 24 * time.Hour
)

// EstimateDraftRedisRepository keeps drafts as JSON under draft:{id}. Every
// save refreshes the TTL, so abandoned drafts expire on their own.
type EstimateDraftRedisRepository struct {
	rdb *redis.Client
	ttl time.Duration
}

var _ interfaces.IEstimateDraftRepository = (*EstimateDraftRedisRepository)(nil)

func NewEstimateDraftRedisRepository(rdb *redis.Client, ttl time.Duration) *EstimateDraftRedisRepository {
	if ttl <= 0 {
		ttl = defaultDraftTTL
	}
	return &EstimateDraftRedisRepository{rdb: rdb, ttl: ttl}
}

func draftKey(id string) string {
	return draftKeyPrefix + id
}

// Create stores a new draft. A colliding id yields a zero value.
func (r *EstimateDraftRedisRepository) Create(ctx context.Context, d entities.EstimateDraft) (entities.EstimateDraft, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return entities.EstimateDraft{}, err
	}
	ok, err := r.rdb.SetNX(ctx, draftKey(d.ID), data, r.ttl).Result()
	if err != nil {
		return entities.EstimateDraft{}, err
	}
	if !ok {
		return entities.EstimateDraft{}, nil
	}
	return d, nil
}

func (r *EstimateDraftRedisRepository) GetByID(ctx context.Context, id string) (entities.EstimateDraft, error) {
	data, err := r.rdb.Get(ctx, draftKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return entities.EstimateDraft{}, nil
		}
		return entities.EstimateDraft{}, err
	}
	return decodeDraft(data)
}

// Save writes d under WATCH so that only one writer can move the draft past
// expectedRevision. Losers, and drafts that expired meanwhile, get a zero value.
func (r *EstimateDraftRedisRepository) Save(ctx context.Context, d entities.EstimateDraft, expectedRevision int64) (entities.EstimateDraft, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return entities.EstimateDraft{}, err
	}

	key := draftKey(d.ID)
	saved := false
	err = r.rdb.Watch(ctx, func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, key).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return nil
			}
			return err
		}
		current, err := decodeDraft(raw)
		if err != nil {
			return err
		}
		if current.Revision != expectedRevision {
			return nil
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, r.ttl)
			return nil
		})
		if err != nil {
			return err
		}
		saved = true
		return nil
	}, key)
	if err != nil {
		if errors.Is(err, redis.TxFailedErr) {
			return entities.EstimateDraft{}, nil
		}
		return entities.EstimateDraft{}, err
	}
	if !saved {
		return entities.EstimateDraft{}, nil
	}
	return d, nil
}

func decodeDraft(data []byte) (entities.EstimateDraft, error) {
	var d entities.EstimateDraft
	if err := json.Unmarshal(data, &d); err != nil {
		return entities.EstimateDraft{}, err
	}
	return d, nil
}
