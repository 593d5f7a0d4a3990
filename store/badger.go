package store

import (
	"context"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
)

// Badger is a Store backed by BadgerDB v4.
type Badger struct {
	db *badger.DB
}

// BadgerOptions configures the BadgerDB store.
type BadgerOptions struct {
	// Dir is the directory for BadgerDB data files.
	// Required unless InMemory is set.
	Dir string

	// InMemory runs BadgerDB without disk persistence.
	InMemory bool

	// Logger sets the badger logger. If nil, badger output goes to klog.
	Logger badger.Logger
}

// NewBadger opens a BadgerDB-backed Store.
func NewBadger(bopts BadgerOptions) (*Badger, error) {
	if !bopts.InMemory && bopts.Dir == "" {
		return nil, errors.New("store: BadgerOptions.Dir is required for on-disk mode")
	}
	dbOpts := badger.DefaultOptions(bopts.Dir)
	if bopts.InMemory {
		dbOpts = badger.DefaultOptions("").WithInMemory(true)
	}
	if bopts.Logger != nil {
		dbOpts = dbOpts.WithLogger(bopts.Logger)
	} else {
		dbOpts = dbOpts.WithLogger(klogLogger{})
	}
	db, err := badger.Open(dbOpts)
	if err != nil {
		return nil, errors.Wrapf(err, "store: open badger at %q", bopts.Dir)
	}
	return &Badger{db: db}, nil
}

func (b *Badger) Get(_ context.Context, d Digest) (*Record, error) {
	var val []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(d))
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	switch {
	case errors.Is(err, badger.ErrKeyNotFound):
		return nil, ErrNotFound
	case errors.Is(err, badger.ErrDBClosed):
		return nil, ErrClosed
	case err != nil:
		return nil, errors.Wrapf(err, "store: get %s", d)
	}
	return decode(val)
}

func (b *Badger) Put(_ context.Context, d Digest, rec *Record) error {
	val, err := encode(rec)
	if err != nil {
		return err
	}
	err = b.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(d), val)
	})
	if errors.Is(err, badger.ErrDBClosed) {
		return ErrClosed
	}
	return errors.Wrapf(err, "store: put %s", d)
}

func (b *Badger) Delete(_ context.Context, d Digest) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key(d))
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil
	}
	return errors.Wrapf(err, "store: delete %s", d)
}

func (b *Badger) Close() error {
	return b.db.Close()
}

// klogLogger routes badger output to klog; info and debug only show at -v=3
// and above.
type klogLogger struct{}

func (klogLogger) Errorf(f string, v ...interface{})   { klog.Errorf("[badger] "+f, v...) }
func (klogLogger) Warningf(f string, v ...interface{}) { klog.Warningf("[badger] "+f, v...) }
func (klogLogger) Infof(f string, v ...interface{})    { klog.V(3).Infof("[badger] "+f, v...) }
func (klogLogger) Debugf(f string, v ...interface{})   { klog.V(4).Infof("[badger] "+f, v...) }
