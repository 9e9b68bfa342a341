package jobs

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"

	"faqsite/internal/faq"
	"faqsite/internal/metrics"
)

// Reloader polls the FAQ file and swaps in a fresh index when it changes.
type Reloader struct {
	store    *faq.Store
	path     string
	interval time.Duration
	log      zerolog.Logger

	modTime time.Time
	size    int64
}

// NewReloader creates a reloader for path. The current file state is taken
// as already loaded.
func NewReloader(store *faq.Store, path string, interval time.Duration, log zerolog.Logger) *Reloader {
	r := &Reloader{
		store:    store,
		path:     path,
		interval: interval,
		log:      log.With().Str("job", "reloader").Logger(),
	}
	if info, err := os.Stat(path); err == nil {
		r.modTime = info.ModTime()
		r.size = info.Size()
	}
	return r
}

// Start runs the polling loop until ctx is cancelled.
func (r *Reloader) Start(ctx context.Context) {
	r.log.Info().Dur("interval", r.interval).Str("path", r.path).Msg("reloader started")

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.log.Info().Msg("reloader stopped")
			return
		case <-ticker.C:
			r.Check()
		}
	}
}

// Check reloads the file if its modification time or size changed. It
// reports whether a new index was installed.
func (r *Reloader) Check() bool {
	info, err := os.Stat(r.path)
	if err != nil {
		r.log.Warn().Err(err).Msg("failed to stat FAQ file")
		return false
	}
	if info.ModTime().Equal(r.modTime) && info.Size() == r.size {
		return false
	}

	records, err := faq.LoadFile(r.path)
	if err != nil {
		metrics.RecordReload(false)
		r.log.Error().Err(err).Msg("failed to reload FAQ file")
		return false
	}

	r.modTime = info.ModTime()
	r.size = info.Size()
	r.store.Swap(faq.NewIndex(records))
	metrics.RecordReload(true)
	r.log.Info().Int("records", len(records)).Msg("FAQ file reloaded")
	return true
}
