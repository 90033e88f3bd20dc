package storage

import (
	"fmt"
	"time"

	"line-relay/domain"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"
)

// encMode uses Core Deterministic Encoding so the same record always
// produces the same bytes.
var encMode cbor.EncMode

var decMode cbor.DecMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("storage: CBOR encoder initialization failed: " + err.Error())
	}
	decMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("storage: CBOR decoder initialization failed: " + err.Error())
	}
}

// lineRecord is the value stored under a line key.
type lineRecord struct {
	Occupants [][]byte `cbor:"1,keyasint"`
}

// mailboxRecord is the value stored under a mailbox key, oldest entry first.
type mailboxRecord struct {
	Entries []mailboxEntry `cbor:"1,keyasint"`
}

type mailboxEntry struct {
	ID      []byte `cbor:"1,keyasint"`
	Content string `cbor:"2,keyasint"`
	At      int64  `cbor:"3,keyasint"`
}

func encodeLine(occupants []domain.Token) ([]byte, error) {
	record := lineRecord{Occupants: make([][]byte, 0, len(occupants))}
	for _, occupant := range occupants {
		record.Occupants = append(record.Occupants, occupant[:])
	}
	return encMode.Marshal(record)
}

func decodeLine(data []byte) ([]domain.Token, error) {
	var record lineRecord
	if err := decMode.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal line: %w", err)
	}
	occupants := make([]domain.Token, 0, len(record.Occupants))
	for _, raw := range record.Occupants {
		token, err := domain.TokenFromBytes(raw)
		if err != nil {
			return nil, fmt.Errorf("corrupted occupant: %w", err)
		}
		occupants = append(occupants, token)
	}
	return occupants, nil
}

func encodeMailbox(record mailboxRecord) ([]byte, error) {
	return encMode.Marshal(record)
}

func decodeMailbox(data []byte) (mailboxRecord, error) {
	var record mailboxRecord
	if err := decMode.Unmarshal(data, &record); err != nil {
		return mailboxRecord{}, fmt.Errorf("failed to unmarshal mailbox: %w", err)
	}
	return record, nil
}

func toMailboxEntry(message domain.Message) mailboxEntry {
	return mailboxEntry{
		ID:      message.ID[:],
		Content: message.Content,
		At:      message.At.UnixNano(),
	}
}

func fromMailboxEntry(line domain.LineID, sender domain.Token, entry mailboxEntry) (domain.Message, error) {
	id, err := uuid.FromBytes(entry.ID)
	if err != nil {
		return domain.Message{}, fmt.Errorf("corrupted mailbox entry: %w", err)
	}
	return domain.Message{
		ID:      id,
		Line:    line,
		Sender:  sender,
		Content: entry.Content,
		At:      time.Unix(0, entry.At).UTC(),
	}, nil
}
