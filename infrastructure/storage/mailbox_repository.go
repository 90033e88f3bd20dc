package storage

import (
	"fmt"
	"log/slog"
	"time"

	"line-relay/contract"
	"line-relay/domain"
	"line-relay/errors"

	"github.com/dgraph-io/badger/v4"
)

var _ contract.IMailboxStore = (*MailboxRepository)(nil)

// MailboxRepository stores, per (line, sender), the messages waiting for the partner.
// The whole list lives under one key so that append and drain conflict with each
// other inside badger instead of interleaving.
type MailboxRepository struct {
	db        *badger.DB
	log       *slog.Logger
	retention time.Duration
	limit     *int
}

// NewMailboxRepository builds the repository. A zero retention disables expiry,
// a nil limit leaves mailboxes unbounded.
func NewMailboxRepository(db *badger.DB, log *slog.Logger, retention time.Duration, limit *int) *MailboxRepository {
	return &MailboxRepository{db: db, log: log, retention: retention, limit: limit}
}

// Append adds message at the tail of its sender's mailbox and re-applies the
// retention window to the whole mailbox.
func (r *MailboxRepository) Append(message domain.Message) error {
	key := mailboxKey(message.Line, message.Sender)
	var size int
	err := update(r.db, func(txn *badger.Txn) error {
		record, err := readMailbox(txn, key)
		if err != nil {
			return err
		}
		if r.limit != nil && len(record.Entries) >= *r.limit {
			return fmt.Errorf("line %d: %w", message.Line, errors.ErrMailboxFull)
		}
		record.Entries = append(record.Entries, toMailboxEntry(message))
		size = len(record.Entries)
		data, err := encodeMailbox(record)
		if err != nil {
			return err
		}
		return txn.SetEntry(newEntry(key, data, r.retention))
	})
	if err != nil {
		return storeError(err)
	}
	r.log.Debug("Message queued",
		"line", message.Line,
		"sender", message.Sender.Fingerprint(),
		"size", size)
	return nil
}

// DrainAll removes and returns every message of the mailbox, oldest first.
// A missing or expired mailbox drains to an empty slice.
func (r *MailboxRepository) DrainAll(line domain.LineID, token domain.Token) ([]domain.Message, error) {
	key := mailboxKey(line, token)
	var record mailboxRecord
	err := update(r.db, func(txn *badger.Txn) error {
		var err error
		record, err = readMailbox(txn, key)
		if err != nil {
			return err
		}
		if len(record.Entries) == 0 {
			return nil
		}
		return txn.Delete(key)
	})
	if err != nil {
		return nil, storeError(err)
	}

	messages := make([]domain.Message, 0, len(record.Entries))
	for _, entry := range record.Entries {
		message, err := fromMailboxEntry(line, token, entry)
		if err != nil {
			// The entry is already gone from the store, skipping it is all we can do.
			r.log.Error("Dropping unreadable mailbox entry", "line", line, "error", err)
			continue
		}
		messages = append(messages, message)
	}
	if len(messages) > 0 {
		r.log.Debug("Mailbox drained", "line", line, "sender", token.Fingerprint(), "count", len(messages))
	}
	return messages, nil
}

// PeekHead returns the oldest message of the mailbox without removing it.
func (r *MailboxRepository) PeekHead(line domain.LineID, token domain.Token) (domain.Message, error) {
	var record mailboxRecord
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		record, err = readMailbox(txn, mailboxKey(line, token))
		return err
	})
	if err != nil {
		return domain.Message{}, storeError(err)
	}
	if len(record.Entries) == 0 {
		return domain.Message{}, errors.ErrMailboxEmpty
	}
	message, err := fromMailboxEntry(line, token, record.Entries[0])
	if err != nil {
		return domain.Message{}, storeError(err)
	}
	return message, nil
}

func readMailbox(txn *badger.Txn, key []byte) (mailboxRecord, error) {
	item, err := txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return mailboxRecord{}, nil
	}
	if err != nil {
		return mailboxRecord{}, err
	}
	var record mailboxRecord
	err = item.Value(func(val []byte) error {
		record, err = decodeMailbox(val)
		return err
	})
	return record, err
}
