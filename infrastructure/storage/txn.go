package storage

import (
	"fmt"
	"time"

	"line-relay/domain"
	"line-relay/errors"

	"github.com/dgraph-io/badger/v4"
)

const (
	linePrefix    = "line:"
	mailboxPrefix = "mailbox:"

	// Every attempt that loses a conflict means another writer committed,
	// so the bound only has to exceed the number of concurrent writers on one key.
	maxConflictRetries = 128
)

func lineKey(line domain.LineID) []byte {
	return []byte(fmt.Sprintf("%s%05d", linePrefix, line))
}

func mailboxKey(line domain.LineID, token domain.Token) []byte {
	return []byte(fmt.Sprintf("%s%05d:%x", mailboxPrefix, line, token[:]))
}

// update runs fn in a read-write transaction and replays it when badger
// reports that a concurrent commit touched the keys it read.
// fn must be idempotent: it is re-executed from scratch on conflict.
func update(db *badger.DB, fn func(txn *badger.Txn) error) error {
	var err error
	for attempt := 0; attempt < maxConflictRetries; attempt++ {
		err = db.Update(fn)
		if !errors.Is(err, badger.ErrConflict) {
			return err
		}
	}
	return err
}

// storeError wraps a badger failure. Domain sentinels pass through untouched.
func storeError(err error) error {
	if err == nil {
		return nil
	}
	for _, domainErr := range []error{errors.ErrNotPresent, errors.ErrMailboxEmpty, errors.ErrMailboxFull} {
		if errors.Is(err, domainErr) {
			return err
		}
	}
	return fmt.Errorf("%w: %v", errors.ErrStoreUnavailable, err)
}

// remainingTTL converts badger's absolute expiry into the duration left,
// zero meaning the key never expires.
func remainingTTL(expiresAt uint64) time.Duration {
	if expiresAt == 0 {
		return 0
	}
	left := time.Until(time.Unix(int64(expiresAt), 0))
	if left < time.Second {
		return time.Second
	}
	return left
}

func newEntry(key, value []byte, ttl time.Duration) *badger.Entry {
	entry := badger.NewEntry(key, value)
	if ttl > 0 {
		entry = entry.WithTTL(ttl)
	}
	return entry
}
