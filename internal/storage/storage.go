// Package storage provides the key-value persistence contract the entity
// store is built on: whole-document reads and rewrites keyed by namespaced
// strings. Backends are interchangeable (file, redis, memory).
package storage

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound is returned by Get when the key has never been written.
var ErrNotFound = errors.New("storage: key not found")

// KV is the minimal contract the entity store needs. Values are opaque byte
// documents; every mutation is a full-value rewrite.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// DecodeError reports a stored document that exists but does not parse.
// Callers decide whether to surface it or fall back to an empty collection.
type DecodeError struct {
	Key string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("storage: decode %s: %v", e.Key, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
