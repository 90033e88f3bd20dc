package storage

import (
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"line-relay/domain"
	"line-relay/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func TestMailboxRepository_AppendThenDrain(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()
	repo := NewMailboxRepository(db, slog.Default(), time.Hour, nil)
	sender := token("a")
	line := domain.LineID(7)

	var sent []domain.Message
	for i := 0; i < 5; i++ {
		message := domain.NewMessage(line, sender, fmt.Sprintf("message %d", i))
		sent = append(sent, message)
		req.NoError(repo.Append(message))
	}

	// Drain returns every message in append order
	drained, err := repo.DrainAll(line, sender)
	req.NoError(err)
	req.Len(drained, len(sent))
	for i := range sent {
		req.Equal(sent[i].ID, drained[i].ID)
		req.Equal(sent[i].Content, drained[i].Content)
		req.Equal(line, drained[i].Line)
		req.Equal(sender, drained[i].Sender)
		req.True(sent[i].At.Equal(drained[i].At))
	}

	// A second drain before any new append is empty
	drained, err = repo.DrainAll(line, sender)
	req.NoError(err)
	req.Empty(drained)
}

func TestMailboxRepository_MailboxesAreKeyedByLineAndSender(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()
	repo := NewMailboxRepository(db, slog.Default(), 0, nil)

	req.NoError(repo.Append(domain.NewMessage(1, token("a"), "a on 1")))
	req.NoError(repo.Append(domain.NewMessage(2, token("a"), "a on 2")))
	req.NoError(repo.Append(domain.NewMessage(1, token("b"), "b on 1")))

	drained, err := repo.DrainAll(1, token("a"))
	req.NoError(err)
	req.Len(drained, 1)
	req.Equal("a on 1", drained[0].Content)

	drained, err = repo.DrainAll(1, token("b"))
	req.NoError(err)
	req.Len(drained, 1)
	req.Equal("b on 1", drained[0].Content)
}

func TestMailboxRepository_DrainMissingMailbox(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()
	repo := NewMailboxRepository(db, slog.Default(), 0, nil)

	drained, err := repo.DrainAll(3, token("z"))

	req.NoError(err)
	req.Empty(drained)
}

func TestMailboxRepository_PeekHead(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()
	repo := NewMailboxRepository(db, slog.Default(), 0, nil)
	sender := token("a")

	_, err := repo.PeekHead(1, sender)
	req.ErrorIs(err, errors.ErrMailboxEmpty)

	first := domain.NewMessage(1, sender, "first")
	req.NoError(repo.Append(first))
	req.NoError(repo.Append(domain.NewMessage(1, sender, "second")))

	head, err := repo.PeekHead(1, sender)
	req.NoError(err)
	req.Equal(first.ID, head.ID)
	req.Equal("first", head.Content)

	// Peeking does not consume
	drained, err := repo.DrainAll(1, sender)
	req.NoError(err)
	req.Len(drained, 2)
}

func TestMailboxRepository_AppendRefreshesRetention(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()
	repo := NewMailboxRepository(db, slog.Default(), time.Hour, nil)
	sender := token("a")

	req.NoError(repo.Append(domain.NewMessage(1, sender, "hi")))

	err := db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(mailboxKey(1, sender))
		if err != nil {
			return err
		}
		req.NotZero(item.ExpiresAt())
		return nil
	})
	req.NoError(err)
}

func TestMailboxRepository_ExpiredMailboxDrainsEmpty(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()
	repo := NewMailboxRepository(db, slog.Default(), time.Second, nil)
	sender := token("a")

	req.NoError(repo.Append(domain.NewMessage(1, sender, "self destruct")))
	time.Sleep(2100 * time.Millisecond)

	drained, err := repo.DrainAll(1, sender)
	req.NoError(err)
	req.Empty(drained)
}

func TestMailboxRepository_Limit(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()
	repo := NewMailboxRepository(db, slog.Default(), 0, lo.ToPtr(2))
	sender := token("a")

	req.NoError(repo.Append(domain.NewMessage(1, sender, "one")))
	req.NoError(repo.Append(domain.NewMessage(1, sender, "two")))
	req.ErrorIs(repo.Append(domain.NewMessage(1, sender, "three")), errors.ErrMailboxFull)

	drained, err := repo.DrainAll(1, sender)
	req.NoError(err)
	req.Len(drained, 2)

	// Draining frees the room again
	req.NoError(repo.Append(domain.NewMessage(1, sender, "four")))
}

func TestMailboxRepository_ConcurrentAppendAndDrainLoseNothing(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()
	repo := NewMailboxRepository(db, slog.Default(), time.Hour, nil)
	sender := token("a")
	line := domain.LineID(11)
	writers, perWriter := 2, 50

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				req.NoError(repo.Append(domain.NewMessage(line, sender, fmt.Sprintf("%d-%03d", w, i))))
			}
		}(w)
	}

	writersDone := ctxDone(&wg)
	done := make(chan struct{})
	var collected []domain.Message
	go func() {
		defer close(done)
		for {
			drained, err := repo.DrainAll(line, sender)
			req.NoError(err)
			collected = append(collected, drained...)
			select {
			case <-writersDone:
				return
			default:
			}
		}
	}()
	<-done

	drained, err := repo.DrainAll(line, sender)
	req.NoError(err)
	collected = append(collected, drained...)

	req.Len(collected, writers*perWriter)
	seen := lo.Uniq(lo.Map(collected, func(m domain.Message, _ int) string { return m.Content }))
	req.Len(seen, writers*perWriter)

	// Messages of one writer keep their relative order across drains
	for w := 0; w < writers; w++ {
		prefix := fmt.Sprintf("%d-", w)
		own := lo.Filter(collected, func(m domain.Message, _ int) bool { return m.Content[:2] == prefix })
		for i := range own {
			req.Equal(fmt.Sprintf("%d-%03d", w, i), own[i].Content)
		}
	}
}

func TestMailboxRepository_ClosedStore(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	repo := NewMailboxRepository(db, slog.Default(), 0, nil)
	cleanup()

	req.ErrorIs(repo.Append(domain.NewMessage(1, token("a"), "x")), errors.ErrStoreUnavailable)
	_, err := repo.DrainAll(1, token("a"))
	req.ErrorIs(err, errors.ErrStoreUnavailable)
	_, err = repo.PeekHead(1, token("a"))
	req.ErrorIs(err, errors.ErrStoreUnavailable)
}

// ctxDone turns a WaitGroup into a channel closed once every writer returned.
func ctxDone(wg *sync.WaitGroup) <-chan struct{} {
	ch := make(chan struct{})
	go func() {
		wg.Wait()
		close(ch)
	}()
	return ch
}
