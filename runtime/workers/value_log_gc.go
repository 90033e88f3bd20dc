package workers

import (
	"context"
	"log/slog"
	"time"

	"line-relay/errors"

	"github.com/dgraph-io/badger/v4"
)

// ValueLogGCWorker reclaims the value log space left behind by expired lines
// and drained mailboxes. Badger never does it on its own.
type ValueLogGCWorker struct {
	db           *badger.DB
	log          *slog.Logger
	interval     time.Duration
	discardRatio float64
}

func NewValueLogGCWorker(db *badger.DB, log *slog.Logger, interval time.Duration, discardRatio float64) *ValueLogGCWorker {
	return &ValueLogGCWorker{db: db, log: log, interval: interval, discardRatio: discardRatio}
}

func (w *ValueLogGCWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			w.Collect()
		}
	}
}

// Collect rewrites value log files until badger finds nothing left worth
// rewriting, and returns how many were rewritten.
func (w *ValueLogGCWorker) Collect() int {
	rewritten := 0
	for {
		err := w.db.RunValueLogGC(w.discardRatio)
		switch {
		case err == nil:
			rewritten++
			continue
		case errors.Is(err, badger.ErrNoRewrite), errors.Is(err, badger.ErrRejected):
		case errors.Is(err, badger.ErrGCInMemoryMode):
			w.log.Debug("Value log GC skipped, store is in memory")
		default:
			w.log.Error("Value log GC failed", "error", err)
		}
		if rewritten > 0 {
			w.log.Info("Value log GC done", "rewritten", rewritten)
		}
		return rewritten
	}
}
