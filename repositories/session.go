package repositories

import (
	"context"
	"errors"
	"fmt"
	"social-client/contract"
	apperrors "social-client/errors"
	"strings"

	"github.com/dgraph-io/badger/v4"
)

const sessionPrefix = "session:"

// SessionRepository keeps the client's session keys in BadgerDB.
type SessionRepository struct {
	db *badger.DB
}

func NewSessionRepository(db *badger.DB) contract.IKeyValueStore {
	return &SessionRepository{db: db}
}

// Get returns found=false when the key was never written or has been deleted.
func (s SessionRepository) Get(ctx context.Context, key string) (string, bool, error) {
	if err := checkKey(ctx, key); err != nil {
		return "", false, err
	}

	var value string
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(sessionKey(key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			value = string(val)
			return nil
		})
	})

	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read %q failed: %w", key, err)
	}
	return value, true, nil
}

func (s SessionRepository) Set(ctx context.Context, key, value string) error {
	if err := checkKey(ctx, key); err != nil {
		return err
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(sessionKey(key), []byte(value))
	})
	if err != nil {
		return fmt.Errorf("write %q failed: %w", key, err)
	}
	return nil
}

// Delete succeeds whether or not the key exists.
func (s SessionRepository) Delete(ctx context.Context, key string) error {
	if err := checkKey(ctx, key); err != nil {
		return err
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(sessionKey(key))
	})
	if err != nil {
		return fmt.Errorf("delete %q failed: %w", key, err)
	}
	return nil
}

func checkKey(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if key == "" {
		return apperrors.ErrEmptyKey
	}
	return nil
}

func sessionKey(key string) []byte {
	return []byte(sessionPrefix + key)
}

// Entry is one stored session key, without its storage prefix.
type Entry struct {
	Key   string
	Value string
}

// ListSession returns every stored session key in key order.
func ListSession(db *badger.DB) ([]Entry, error) {
	var entries []Entry
	err := db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(sessionPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			err := item.Value(func(val []byte) error {
				entries = append(entries, Entry{
					Key:   strings.TrimPrefix(string(item.Key()), sessionPrefix),
					Value: string(val),
				})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return entries, err
}
