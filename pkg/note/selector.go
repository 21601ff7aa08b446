package note

import (
	"context"
	"sync"

	"github.com/redis/go-redis/v9"

	"notesapi/utils/logging"
	"notesapi/utils/options"
)

// Selector owns the process-wide backend instance. The first call to
// Backend reads the configured selection and constructs exactly one
// variant; every later call returns the cached instance without touching
// configuration again. There is no teardown and no way back to the
// unconstructed state: whatever the first construction produced, error
// included, is cached for the process lifetime.
type Selector struct {
	conf *options.Config

	once    sync.Once
	backend Backend
	err     error

	// build is a seam for tests that count constructions.
	build func(ctx context.Context) (Backend, error)
}

// NewSelector creates an unconstructed Selector. The backend is not
// built until the first Backend call.
func NewSelector(conf *options.Config) *Selector {
	s := &Selector{conf: conf}
	s.build = s.construct
	return s
}

// Backend returns the selected backend, constructing it on first use.
// Concurrent first-time callers still construct a single instance.
func (s *Selector) Backend(ctx context.Context) (Backend, error) {
	s.once.Do(func() {
		s.backend, s.err = s.build(ctx)
		if s.err == nil {
			logging.Info("backend selected:", s.backend.Name())
		}
	})
	return s.backend, s.err
}

func (s *Selector) construct(ctx context.Context) (Backend, error) {
	switch s.conf.Backend {
	case options.BackendRemoteCache:
		return NewRedis(&redis.Options{
			Addr:        s.conf.Redis.Addr,
			Password:    s.conf.Redis.Password,
			DB:          s.conf.Redis.DB,
			DialTimeout: s.conf.Redis.DialTimeout,
		}, s.conf.Redis.TTL), nil
	case options.BackendObjectStore:
		return NewGCS(ctx, s.conf.GCS.Bucket)
	case options.BackendMemory:
		return NewMemory(), nil
	default:
		// Unrecognized or unset selection falls back to memory. A
		// permissive default, not an error path.
		logging.Info("unknown backend selection, using memory:", s.conf.Backend)
		return NewMemory(), nil
	}
}
