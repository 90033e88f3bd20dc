package workers

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"line-relay/contract"

	"github.com/shirou/gopsutil/process"
)

type Stats struct {
	Online     int
	CPUPercent float64
	RSSBytes   uint64
}

// StatsWorker periodically logs how many tokens are online together with
// the resource usage of the relay process.
type StatsWorker struct {
	log      *slog.Logger
	presence contract.IPresence
	interval time.Duration
	pid      int32
}

func NewStatsWorker(log *slog.Logger, presence contract.IPresence, interval time.Duration) *StatsWorker {
	return &StatsWorker{
		log:      log,
		presence: presence,
		interval: interval,
		pid:      int32(os.Getpid()),
	}
}

func (w *StatsWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			stats, err := w.Snapshot()
			if err != nil {
				return err
			}
			w.log.Info("Relay stats",
				"online", stats.Online,
				"cpu_percent", fmt.Sprintf("%.2f", stats.CPUPercent),
				"rss_bytes", stats.RSSBytes)
		}
	}
}

func (w *StatsWorker) Snapshot() (Stats, error) {
	p, err := process.NewProcess(w.pid)
	if err != nil {
		return Stats{}, fmt.Errorf("error while retrieving process %d: %w", w.pid, err)
	}
	cpu, err := p.CPUPercent()
	if err != nil {
		return Stats{}, fmt.Errorf("error while finding process cpu usage: %w", err)
	}
	memory, err := p.MemoryInfo()
	if err != nil {
		return Stats{}, fmt.Errorf("error while finding process ram usage: %w", err)
	}
	return Stats{
		Online:     w.presence.Count(),
		CPUPercent: cpu,
		RSSBytes:   memory.RSS,
	}, nil
}
