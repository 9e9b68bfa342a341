package jobs

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"faqsite/internal/faq"
	"faqsite/internal/testutil"
)

func TestReloader_Check(t *testing.T) {
	base := time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)
	path := testutil.WriteFAQFile(t, `[{"id":1}]`, base)

	records, err := faq.LoadFile(path)
	require.NoError(t, err)
	store := faq.NewStore(faq.NewIndex(records))

	r := NewReloader(store, path, time.Minute, zerolog.Nop())

	assert.False(t, r.Check(), "unchanged file should not reload")
	assert.Equal(t, 1, store.Index().Len())

	testutil.RewriteFAQFile(t, path, `{"default":[{"id":1},{"id":2}]}`, base.Add(time.Minute))
	assert.True(t, r.Check())
	assert.Equal(t, 2, store.Index().Len())

	// malformed content degrades to an empty index
	testutil.RewriteFAQFile(t, path, `not json`, base.Add(2*time.Minute))
	assert.True(t, r.Check())
	assert.Equal(t, 0, store.Index().Len())

	require.NoError(t, os.Remove(path))
	assert.False(t, r.Check())
	assert.Equal(t, 0, store.Index().Len())
}

func TestReloader_StartStops(t *testing.T) {
	path := testutil.WriteFAQFile(t, `[]`, time.Now())

	r := NewReloader(faq.NewStore(nil), path, 10*time.Millisecond, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.Start(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("reloader did not stop after cancel")
	}
}
