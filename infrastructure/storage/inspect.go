package storage

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"line-relay/domain"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
)

const (
	RecordLine    = "LINE"
	RecordMailbox = "MAILBOX"
	RecordRaw     = "RAW"
)

// Prefixes lists the key prefixes owned by the relay.
var Prefixes = []string{linePrefix, mailboxPrefix}

// Describe turns a raw key/value pair into a record type and a human readable
// summary. Tokens are only ever shown as fingerprints.
func Describe(key string, val []byte) (string, string) {
	switch {
	case strings.HasPrefix(key, linePrefix):
		occupants, err := decodeLine(val)
		if err != nil {
			return RecordLine, "Error: unmarshal failed"
		}
		fingerprints := lo.Map(occupants, func(t domain.Token, _ int) string {
			return t.Fingerprint()
		})
		return RecordLine, fmt.Sprintf("%d/%d [%s]", len(occupants), domain.LineCapacity, strings.Join(fingerprints, ", "))
	case strings.HasPrefix(key, mailboxPrefix):
		record, err := decodeMailbox(val)
		if err != nil {
			return RecordMailbox, "Error: unmarshal failed"
		}
		return RecordMailbox, fmt.Sprintf("%d pending", len(record.Entries))
	default:
		return RecordRaw, fmt.Sprintf("Size: %d bytes", len(val))
	}
}

// RedactKey replaces the hex encoded token of a mailbox key by its fingerprint.
func RedactKey(key string) string {
	if !strings.HasPrefix(key, mailboxPrefix) {
		return key
	}
	parts := strings.Split(key, ":")
	if len(parts) != 3 {
		return key
	}
	raw, err := hex.DecodeString(parts[2])
	if err != nil {
		return key
	}
	token, err := domain.TokenFromBytes(raw)
	if err != nil {
		return key
	}
	return strings.Join([]string{parts[0], parts[1], token.Fingerprint()}, ":")
}

// Row is one record of the store as shown by the inspection tools.
type Row struct {
	Key       string
	Type      string
	ExpiresAt time.Time
	Detail    string
}

// Dump reads every record under the given prefixes, keys redacted.
// A zero ExpiresAt means the record never expires.
func Dump(db *badger.DB, prefixes ...string) ([]Row, error) {
	var rows []Row
	err := db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for _, prefix := range prefixes {
			prefixBytes := []byte(prefix)
			for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
				item := it.Item()
				key := string(item.KeyCopy(nil))
				err := item.Value(func(val []byte) error {
					recordType, detail := Describe(key, val)
					row := Row{Key: RedactKey(key), Type: recordType, Detail: detail}
					if expiresAt := item.ExpiresAt(); expiresAt > 0 {
						row.ExpiresAt = time.Unix(int64(expiresAt), 0).UTC()
					}
					rows = append(rows, row)
					return nil
				})
				if err != nil {
					return err
				}
			}
		}
		return nil
	})
	return rows, err
}
