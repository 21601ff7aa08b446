package note

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type redisDB struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedis creates the remote-cache backend. The client connects lazily,
// so construction never fails on an unreachable server; connectivity
// errors surface from Get/Set/Keys as ErrBackendUnavailable instead. A
// ttl of zero stores notes without expiry.
func NewRedis(redisOptions *redis.Options, ttl time.Duration) Backend {
	return &redisDB{rdb: redis.NewClient(redisOptions), ttl: ttl}
}

func (r *redisDB) Name() string {
	return "remote-cache"
}

func (r *redisDB) Get(ctx context.Context, id string) (*Note, error) {
	vjs, err := r.rdb.Get(ctx, id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: unable to read note %s: %v", ErrBackendUnavailable, id, err)
	}
	n, err := fromJSON(id, vjs)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed payload for note %s: %v", ErrBackendUnavailable, id, err)
	}
	return n, nil
}

func (r *redisDB) Set(ctx context.Context, id string, req *CreateNoteRequest) error {
	value, err := toJSON(req)
	if err != nil {
		return err
	}
	if err := r.rdb.Set(ctx, id, value, r.ttl).Err(); err != nil {
		return fmt.Errorf("%w: unable to write note %s: %v", ErrBackendUnavailable, id, err)
	}
	return nil
}

// Keys scans the whole keyspace. The scan is as large as the dataset;
// the API has no pagination to bound it.
func (r *redisDB) Keys(ctx context.Context) ([]string, error) {
	ids, err := r.rdb.Keys(ctx, "*").Result()
	if err != nil {
		return nil, fmt.Errorf("%w: unable to list notes: %v", ErrBackendUnavailable, err)
	}
	return ids, nil
}
