package store

import (
	"context"

	"github.com/jonwraymond/bypass/observe"
)

// Observed wraps a Cache with per-operation tracing, metrics and logging.
// Context parameters carry telemetry only; the wrapped operations remain
// synchronous and non-cancelable.
type Observed struct {
	cache Cache
	name  string
	mw    *observe.Middleware
}

// NewObserved wraps cache under the given store name.
func NewObserved(cache Cache, name string, mw *observe.Middleware) *Observed {
	return &Observed{
		cache: cache,
		name:  name,
		mw:    mw,
	}
}

// ObservedFromObserver wraps cache using telemetry from obs.
func ObservedFromObserver(cache Cache, name string, obs observe.Observer) (*Observed, error) {
	mw, err := observe.MiddlewareFromObserver(obs)
	if err != nil {
		return nil, err
	}
	return NewObserved(cache, name, mw), nil
}

// Set stores a deep copy of v at key, replacing any prior entry.
func (o *Observed) Set(ctx context.Context, key int64, v any) {
	o.mw.Do(ctx, o.meta("set"), func(ctx context.Context) bool {
		o.cache.Set(key, v)
		return false
	})
}

// Get materializes a fresh value from the entry at key.
// Returns (nil, false) on miss.
func (o *Observed) Get(ctx context.Context, key int64) (any, bool) {
	var (
		v  any
		ok bool
	)
	o.mw.Do(ctx, o.meta("get"), func(ctx context.Context) bool {
		v, ok = o.cache.Get(key)
		return !ok
	})
	return v, ok
}

// Del removes the entry at key. Idempotent - no error on miss.
func (o *Observed) Del(ctx context.Context, key int64) {
	o.mw.Do(ctx, o.meta("del"), func(ctx context.Context) bool {
		o.cache.Del(key)
		return false
	})
}

// List returns every present key in ascending order.
func (o *Observed) List(ctx context.Context) []int64 {
	var keys []int64
	o.mw.Do(ctx, o.meta("list"), func(ctx context.Context) bool {
		keys = o.cache.List()
		return false
	})
	return keys
}

func (o *Observed) meta(op string) observe.StoreMeta {
	return observe.StoreMeta{Store: o.name, Op: op}
}
