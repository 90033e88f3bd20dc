package storage

import (
	"encoding/hex"
	"log/slog"
	"strings"
	"testing"
	"time"

	"line-relay/domain"

	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	req := require.New(t)
	t1, t2 := token("a"), token("b")

	lineValue, err := encodeLine([]domain.Token{t1, t2})
	req.NoError(err)
	recordType, detail := Describe(string(lineKey(3)), lineValue)
	req.Equal(RecordLine, recordType)
	req.Contains(detail, "2/2")
	req.Contains(detail, t1.Fingerprint())
	req.NotContains(detail, t1.String())

	mailboxValue, err := encodeMailbox(mailboxRecord{Entries: []mailboxEntry{
		toMailboxEntry(domain.NewMessage(3, t1, "secret")),
	}})
	req.NoError(err)
	recordType, detail = Describe(string(mailboxKey(3, t1)), mailboxValue)
	req.Equal(RecordMailbox, recordType)
	req.Equal("1 pending", detail)
	req.NotContains(detail, "secret")

	recordType, detail = Describe(string(lineKey(3)), []byte{0xff})
	req.Equal(RecordLine, recordType)
	req.Contains(detail, "unmarshal failed")

	recordType, _ = Describe("other:1", []byte("x"))
	req.Equal(RecordRaw, recordType)
}

func TestRedactKey(t *testing.T) {
	req := require.New(t)
	t1 := token("a")

	redacted := RedactKey(string(mailboxKey(12, t1)))

	req.Equal("mailbox:00012:"+t1.Fingerprint(), redacted)
	req.Equal("line:00012", RedactKey("line:00012"))
	req.Equal("mailbox:broken", RedactKey("mailbox:broken"))
}

func TestDump(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()
	pairing := NewPairingRepository(db, slog.Default(), time.Hour)
	mailbox := NewMailboxRepository(db, slog.Default(), 0, nil)
	t1 := token("a")

	_, err := pairing.Join(1, t1)
	req.NoError(err)
	req.NoError(mailbox.Append(domain.NewMessage(1, t1, "hello")))

	rows, err := Dump(db, Prefixes...)
	req.NoError(err)
	req.Len(rows, 2)

	req.Equal("line:00001", rows[0].Key)
	req.Equal(RecordLine, rows[0].Type)
	req.False(rows[0].ExpiresAt.IsZero())

	req.Equal(RecordMailbox, rows[1].Type)
	req.True(rows[1].ExpiresAt.IsZero())
	req.False(strings.Contains(rows[1].Key, hex.EncodeToString(t1[:])))
}
