// Package store persists codec-encoded values in a pluggable byte Provider.
// It is the storage pipeline the codec was built for: values are serialized
// by a Codec, wrapped in a checksummed frame, and namespaced per store, so a
// shared provider can never hand corrupt or foreign bytes back to a caller.
//
// Corrupt entries self-heal: a frame or codec failure on read deletes the
// entry and reports a miss.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/shinyes/poculum-go/codec"
	"github.com/shinyes/poculum-go/internal/frame"
	"github.com/shinyes/poculum-go/provider"
)

// Store is a typed key-value view over a byte Provider.
type Store[V any] interface {
	Enabled() bool

	// Get returns (value, true, nil) on hit and (zero, false, nil) on miss
	// or on a self-healed corrupt entry.
	Get(ctx context.Context, key string) (v V, ok bool, err error)

	// Set encodes and stores value. ttl = 0 uses the store default.
	Set(ctx context.Context, key string, value V, ttl time.Duration) error

	// Del removes a key (best-effort).
	Del(ctx context.Context, key string) error

	Close(ctx context.Context) error
}

// Options tune a Store. Name, Provider, and Codec are required; the rest
// have defaults.
type Options[V any] struct {
	// Required
	Name     string // logical namespace, e.g. "session", "document"
	Provider provider.Provider
	Codec    codec.Codec[V]

	Logger        Logger        // nil => NopLogger
	DefaultTTL    time.Duration // 0 => 10m
	MaxEntryBytes int           // framed entry size cap; 0 => unlimited
	Disabled      bool          // default false (enabled)
}

func New[V any](opts Options[V]) (Store[V], error) {
	if opts.Name == "" {
		return nil, fmt.Errorf("store: name is required")
	}
	if opts.Provider == nil {
		return nil, fmt.Errorf("store: provider is required")
	}
	if opts.Codec == nil {
		return nil, fmt.Errorf("store: codec is required")
	}
	return &store[V]{
		name:     opts.Name,
		provider: opts.Provider,
		codec:    opts.Codec,
		log:      coalesce[Logger](opts.Logger, NopLogger{}),
		ttl:      coalesce[time.Duration](opts.DefaultTTL, 10*time.Minute),
		maxEntry: opts.MaxEntryBytes,
		enabled:  !opts.Disabled,
	}, nil
}

type store[V any] struct {
	name     string
	provider provider.Provider
	codec    codec.Codec[V]
	log      Logger
	ttl      time.Duration
	maxEntry int
	enabled  bool
}

func (s *store[V]) Enabled() bool { return s.enabled }

func (s *store[V]) Close(ctx context.Context) error {
	if s.provider != nil {
		return s.provider.Close(ctx)
	}
	return nil
}

func (s *store[V]) Get(ctx context.Context, key string) (V, bool, error) {
	var zero V
	if !s.enabled {
		return zero, false, nil
	}
	k := s.key(key)
	raw, ok, err := s.provider.Get(ctx, k)
	if err != nil || !ok {
		return zero, false, err
	}
	payload, err := frame.Decode(raw)
	if err != nil {
		s.heal(ctx, k, "bad frame", err)
		return zero, false, nil
	}
	v, err := s.codec.Decode(payload)
	if err != nil {
		s.heal(ctx, k, "codec decode", err)
		return zero, false, nil
	}
	return v, true, nil
}

func (s *store[V]) Set(ctx context.Context, key string, value V, ttl time.Duration) error {
	if !s.enabled {
		return nil
	}
	if ttl == 0 {
		ttl = s.ttl
	}
	payload, err := s.codec.Encode(value)
	if err != nil {
		return err
	}
	entry := frame.Encode(payload)
	if s.maxEntry > 0 && len(entry) > s.maxEntry {
		return fmt.Errorf("store: entry %q too large: %d > %d bytes", key, len(entry), s.maxEntry)
	}
	k := s.key(key)
	ok, err := s.provider.Set(ctx, k, entry, ttl)
	if err != nil {
		return err
	}
	if !ok {
		s.log.Debug("set rejected by provider (pressure)", Fields{"key": key})
	}
	return nil
}

func (s *store[V]) Del(ctx context.Context, key string) error {
	if !s.enabled {
		return nil
	}
	return s.provider.Del(ctx, s.key(key))
}

// heal deletes an entry that failed validation so the next read is a clean
// miss instead of a repeated failure.
func (s *store[V]) heal(ctx context.Context, storageKey, reason string, err error) {
	_ = s.provider.Del(ctx, storageKey)
	s.log.Debug("self-healed corrupt entry", Fields{"key": storageKey, "reason": reason, "err": err})
}

func (s *store[V]) key(userKey string) string {
	// isolate by store name
	return "poculum:" + s.name + ":" + userKey
}
