// Package store caches finished colorings keyed by a digest of the graph
// they color, so repeated runs on the same input skip the search.
//
// The package includes a BadgerDB-backed implementation for the command line
// tool and an in-memory implementation for testing. Values are msgpack
// encoded in both.
//
// Only completed colorings are stored; callers verify a cached coloring
// against the graph before trusting it.
package store

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/katalvlaran/fivecolor/coloring"
)

// Sentinel errors.
var (
	// ErrNotFound is returned when no coloring is cached for a digest.
	ErrNotFound = errors.New("store: not found")

	// ErrClosed is returned by operations on a closed store.
	ErrClosed = errors.New("store: closed")
)

// Record is one cached result.
type Record struct {
	Coloring coloring.Coloring `msgpack:"coloring"`
	Stats    coloring.Stats    `msgpack:"stats"`
	RunID    string            `msgpack:"run_id,omitempty"`
	Created  time.Time         `msgpack:"created"`
}

// Store is the interface for a coloring cache.
type Store interface {
	// Get returns the record for d, or ErrNotFound.
	Get(ctx context.Context, d Digest) (*Record, error)

	// Put stores rec under d, replacing any previous record.
	Put(ctx context.Context, d Digest, rec *Record) error

	// Delete removes d. No error if it is absent.
	Delete(ctx context.Context, d Digest) error

	// Close releases resources.
	Close() error
}

const keyPrefix = "coloring/"

func key(d Digest) []byte { return []byte(keyPrefix + d.String()) }

func encode(rec *Record) ([]byte, error) {
	data, err := msgpack.Marshal(rec)
	return data, errors.Wrap(err, "store: encode record")
}

func decode(data []byte) (*Record, error) {
	var rec Record
	if err := msgpack.Unmarshal(data, &rec); err != nil {
		return nil, errors.Wrap(err, "store: decode record")
	}
	return &rec, nil
}
