// Package store is the entity store: identity-scoped persistence of the three
// business collections (customers, products, movement logs) plus sync state
// and local accounts, on top of a pluggable KV backend.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"stockbook/internal/model"
	"stockbook/internal/storage"
)

// Store aggregates the three entity collections over one KV backend.
//
// The mutex serializes read-modify-rewrite cycles within this process; the
// KV itself has no transactions, so cross-process writers can still lose
// updates (accepted: single-server deployment).
type Store struct {
	kv   storage.KV
	keys Keyspace
	mu   sync.Mutex

	Customers *Collection[model.Customer]
	Products  *Collection[model.Product]
	Logs      *Collection[model.StockLog]
}

func New(kv storage.KV, keys Keyspace) *Store {
	s := &Store{kv: kv, keys: keys}
	s.Customers = &Collection[model.Customer]{
		kv: kv, keys: keys, name: nameCustomers, premigrate: s.migrate,
	}
	s.Products = &Collection[model.Product]{
		kv: kv, keys: keys, name: nameProducts, premigrate: s.migrate,
		seed: []model.Product{{
			ID:        "1",
			Name:      "Sample Item",
			Category:  "General",
			CostPrice: decimal.NewFromInt(80),
			UnitPrice: decimal.NewFromInt(120),
			MinStock:  5,
		}},
	}
	s.Logs = &Collection[model.StockLog]{
		kv: kv, keys: keys, name: nameLogs, premigrate: s.migrate,
	}
	return s
}

// Lock serializes a read-modify-write sequence. Callers that derive a value
// from one collection before mutating another (e.g. balance check before an
// OUT movement) hold the lock across both steps.
func (s *Store) Lock()   { s.mu.Lock() }
func (s *Store) Unlock() { s.mu.Unlock() }

// migrate copies pre-multi-tenant legacy data into the identity-scoped keys,
// at most once per identity, gated by a marker key. A scoped collection that
// already has data is never overwritten. Guest data is never migrated.
func (s *Store) migrate(ctx context.Context, identity string) error {
	if identity == GuestIdentity {
		return nil
	}
	done, err := s.kv.Exists(ctx, s.keys.MigratedMarker(identity))
	if err != nil || done {
		return err
	}
	for _, name := range []string{nameCustomers, nameProducts, nameLogs} {
		scoped := s.keys.Scoped(identity, name)
		if exists, err := s.kv.Exists(ctx, scoped); err != nil {
			return err
		} else if exists {
			continue
		}
		data, err := s.kv.Get(ctx, s.keys.Legacy(name))
		if errors.Is(err, storage.ErrNotFound) {
			continue
		}
		if err != nil {
			return err
		}
		if err := s.kv.Set(ctx, scoped, data); err != nil {
			return err
		}
		log.Info().Str("identity", identity).Str("collection", name).Msg("migrated legacy collection")
	}
	return s.kv.Set(ctx, s.keys.MigratedMarker(identity), []byte("true"))
}

// ── Sync state ───────────────────────────────────────────────────────────────

func (s *Store) SyncState(ctx context.Context, identity string) (model.SyncState, error) {
	var st model.SyncState
	data, err := s.kv.Get(ctx, s.keys.Scoped(identity, nameSyncState))
	if errors.Is(err, storage.ErrNotFound) {
		return st, nil
	}
	if err != nil {
		return st, err
	}
	if err := json.Unmarshal(data, &st); err != nil {
		// Same policy as collections: corrupt state reads as empty.
		return model.SyncState{}, nil
	}
	return st, nil
}

func (s *Store) SetSyncState(ctx context.Context, identity string, st model.SyncState) error {
	data, err := json.Marshal(st)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, s.keys.Scoped(identity, nameSyncState), data)
}

// ── Accounts ─────────────────────────────────────────────────────────────────

func (s *Store) FindAccount(ctx context.Context, email string) (*model.Account, error) {
	data, err := s.kv.Get(ctx, s.keys.Account(email))
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var acc model.Account
	if err := json.Unmarshal(data, &acc); err != nil {
		return nil, &storage.DecodeError{Key: s.keys.Account(email), Err: err}
	}
	return &acc, nil
}

func (s *Store) SaveAccount(ctx context.Context, acc model.Account) error {
	data, err := json.Marshal(acc)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, s.keys.Account(acc.Email), data)
}
