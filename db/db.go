package db

import (
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"employeehub/models"

	"github.com/dgraph-io/badger/v4"
)

const (
	changePrefix  = "change:"
	failurePrefix = "failure:"
)

// DB is the local audit trail: employee changes and recorded failures.
type DB struct {
	badgerDB *badger.DB
	seq      atomic.Uint64
}

func New(dbPath string) (*DB, error) {
	opts := badger.DefaultOptions(dbPath)
	opts.Logger = nil // Disable badger logging for cleaner output

	return open(opts)
}

// NewInMemory opens a non-persistent store, used by tests and the one-shot CLI.
func NewInMemory() (*DB, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil

	return open(opts)
}

func open(opts badger.Options) (*DB, error) {
	badgerDB, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &DB{badgerDB: badgerDB}, nil
}

func (d *DB) Close() error {
	return d.badgerDB.Close()
}

func (d *DB) StoreChange(action models.ChangeAction, user string, data map[string]interface{}) error {
	if user == "" {
		user = "System"
	}
	event := models.ChangeEvent{
		Action:    action,
		User:      user,
		Data:      data,
		Timestamp: time.Now().Format(time.RFC3339),
	}
	return d.put(changePrefix, event)
}

func (d *DB) StoreFailure(context string, message string) error {
	if context == "" {
		context = "GENERAL"
	}
	event := models.FailureEvent{
		Context:   context,
		Message:   message,
		Timestamp: time.Now().Format(time.RFC3339),
	}
	return d.put(failurePrefix, event)
}

// ListChanges returns up to limit change events, newest first.
func (d *DB) ListChanges(limit int) ([]models.ChangeEvent, error) {
	changes := []models.ChangeEvent{}
	err := d.scan(changePrefix, limit, func(val []byte) error {
		var event models.ChangeEvent
		if err := json.Unmarshal(val, &event); err != nil {
			return err
		}
		changes = append(changes, event)
		return nil
	})
	return changes, err
}

// ListFailures returns up to limit failure events, newest first.
func (d *DB) ListFailures(limit int) ([]models.FailureEvent, error) {
	failures := []models.FailureEvent{}
	err := d.scan(failurePrefix, limit, func(val []byte) error {
		var event models.FailureEvent
		if err := json.Unmarshal(val, &event); err != nil {
			return err
		}
		failures = append(failures, event)
		return nil
	})
	return failures, err
}

func (d *DB) put(prefix string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	return d.badgerDB.Update(func(txn *badger.Txn) error {
		// Zero padded fields keep keys in chronological byte order.
		key := []byte(fmt.Sprintf("%s%020d:%010d", prefix, time.Now().UnixNano(), d.seq.Add(1)))
		return txn.Set(key, data)
	})
}

func (d *DB) scan(prefix string, limit int, fn func(val []byte) error) error {
	return d.badgerDB.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true
		opts.Prefix = []byte(prefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		// Reverse iteration must start past the last key carrying the prefix.
		seek := append([]byte(prefix), 0xFF)
		count := 0
		for it.Seek(seek); it.ValidForPrefix(opts.Prefix); it.Next() {
			if limit > 0 && count >= limit {
				break
			}
			if err := it.Item().Value(fn); err != nil {
				return err
			}
			count++
		}
		return nil
	})
}
