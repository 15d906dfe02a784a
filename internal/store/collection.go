package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rs/zerolog/log"

	"stockbook/internal/storage"
)

// Record is anything the store can persist in a collection.
type Record interface {
	RecordID() string
}

// Collection provides CRUD-style access to one named, identity-scoped list of
// records. Each collection is one JSON document in the KV; every mutation is
// a full read-modify-rewrite. premigrate runs the lazy one-time legacy
// migration before any read (see Store.migrate).
type Collection[T Record] struct {
	kv         storage.KV
	keys       Keyspace
	name       string
	seed       []T
	premigrate func(ctx context.Context, identity string) error
}

// GetAll reads and decodes the collection for the given identity. A missing
// document yields the seed (a copy, never persisted until first mutation). A
// document that exists but does not parse returns a *storage.DecodeError.
func (c *Collection[T]) GetAll(ctx context.Context, identity string) ([]T, error) {
	if err := c.premigrate(ctx, identity); err != nil {
		return nil, err
	}
	data, err := c.kv.Get(ctx, c.keys.Scoped(identity, c.name))
	if errors.Is(err, storage.ErrNotFound) {
		return append([]T(nil), c.seed...), nil
	}
	if err != nil {
		return nil, err
	}
	var recs []T
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, &storage.DecodeError{Key: c.keys.Scoped(identity, c.name), Err: err}
	}
	return recs, nil
}

// GetAllOrEmpty is GetAll with a lenient corruption policy: a document that
// fails to parse is treated as absent, logged, and replaced by the seed.
func (c *Collection[T]) GetAllOrEmpty(ctx context.Context, identity string) ([]T, error) {
	recs, err := c.GetAll(ctx, identity)
	var de *storage.DecodeError
	if errors.As(err, &de) {
		log.Warn().Str("key", de.Key).Err(de.Err).Msg("corrupt collection document, using default")
		return append([]T(nil), c.seed...), nil
	}
	return recs, err
}

// Append adds a record (id already assigned by the caller) and rewrites the
// whole collection.
func (c *Collection[T]) Append(ctx context.Context, identity string, rec T) error {
	recs, err := c.GetAllOrEmpty(ctx, identity)
	if err != nil {
		return err
	}
	return c.save(ctx, identity, append(recs, rec))
}

// Update applies mutate to the record matching id and rewrites the
// collection. Returns false without error when the id is absent — callers
// decide whether that is a no-op or a 404.
func (c *Collection[T]) Update(ctx context.Context, identity, id string, mutate func(*T)) (bool, error) {
	recs, err := c.GetAllOrEmpty(ctx, identity)
	if err != nil {
		return false, err
	}
	found := false
	for i := range recs {
		if recs[i].RecordID() == id {
			mutate(&recs[i])
			found = true
		}
	}
	if !found {
		return false, nil
	}
	return true, c.save(ctx, identity, recs)
}

// Delete removes the record with the given id. Deleting an absent id is a
// no-op and returns false.
func (c *Collection[T]) Delete(ctx context.Context, identity, id string) (bool, error) {
	recs, err := c.GetAllOrEmpty(ctx, identity)
	if err != nil {
		return false, err
	}
	kept := recs[:0]
	removed := false
	for _, r := range recs {
		if r.RecordID() == id {
			removed = true
			continue
		}
		kept = append(kept, r)
	}
	if !removed {
		return false, nil
	}
	return true, c.save(ctx, identity, kept)
}

// Replace overwrites the whole collection — used by import and cloud pull.
func (c *Collection[T]) Replace(ctx context.Context, identity string, recs []T) error {
	if recs == nil {
		recs = []T{}
	}
	return c.save(ctx, identity, recs)
}

func (c *Collection[T]) save(ctx context.Context, identity string, recs []T) error {
	data, err := json.Marshal(recs)
	if err != nil {
		return err
	}
	return c.kv.Set(ctx, c.keys.Scoped(identity, c.name), data)
}
