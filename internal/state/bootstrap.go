package state

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
)

// SampleDataFlag gates the one-time seeding of the store.
const SampleDataFlag = "touchpay:sample-data-loaded"

// FlagStore is the durable boolean marker the bootstrap loader checks.
type FlagStore interface {
	IsSet(ctx context.Context, key string) (bool, error)
	Set(ctx context.Context, key string) error
}

// LoadSampleData seeds categories, products, tables and users exactly once
// per flag-store lifetime. Returns whether seeding actually ran.
func LoadSampleData(ctx context.Context, store *Store, flags FlagStore) (bool, error) {
	loaded, err := flags.IsSet(ctx, SampleDataFlag)
	if err != nil {
		return false, errors.Wrap(err, "check sample data flag")
	}
	if loaded {
		return false, nil
	}

	store.SetCategories(SampleCategories())
	store.SetProducts(SampleProducts())
	store.SetTables(SampleTables())
	store.SetUsers(SampleUsers())

	if err := flags.Set(ctx, SampleDataFlag); err != nil {
		return false, errors.Wrap(err, "set sample data flag")
	}
	return true, nil
}

// RedisFlagStore keeps bootstrap flags in redis, the one durable side
// effect the core is allowed outside its own snapshot.
type RedisFlagStore struct {
	rdb *redis.Client
}

func NewRedisFlagStore(rdb *redis.Client) *RedisFlagStore {
	return &RedisFlagStore{rdb: rdb}
}

func (f *RedisFlagStore) IsSet(ctx context.Context, key string) (bool, error) {
	n, err := f.rdb.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (f *RedisFlagStore) Set(ctx context.Context, key string) error {
	return f.rdb.Set(ctx, key, time.Now().Format(time.RFC3339), 0).Err()
}
