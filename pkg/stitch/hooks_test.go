package stitch

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/spritestitch/pkg/cache"
	"github.com/matzehuels/spritestitch/pkg/errors"
	"github.com/matzehuels/spritestitch/pkg/observability"
)

type recordingHooks struct {
	observability.NoopStitchHooks
	mu        sync.Mutex
	events    []string
	lastErr   error
	lastSize  [2]int
	cacheSets int
}

func (h *recordingHooks) record(e string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, e)
}

func (h *recordingHooks) OnStitchStart(context.Context, int) { h.record("stitch-start") }

func (h *recordingHooks) OnStitchComplete(_ context.Context, _, w, hh int, _ time.Duration, err error) {
	h.record("stitch-complete")
	h.lastErr = err
	h.lastSize = [2]int{w, hh}
}

func (h *recordingHooks) OnCacheHit(context.Context, string)  { h.record("hit") }
func (h *recordingHooks) OnCacheMiss(context.Context, string) { h.record("miss") }
func (h *recordingHooks) OnCacheSet(context.Context, string, int) {
	h.record("set")
	h.cacheSets++
}

func TestStitchEmitsHooks(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetStitchHooks(hooks)
	observability.SetCacheHooks(hooks)
	t.Cleanup(observability.Reset)

	fc, err := cache.NewFileCache(t.TempDir())
	require.NoError(t, err)
	s := newTestStitcher(fc)
	opts := Options{Padding: 2, MaxWidth: 64, OutputDir: t.TempDir()}
	sprites := randomSprites(2, 4)

	res, err := s.Stitch(context.Background(), sprites, opts)
	require.NoError(t, err)
	_, err = s.Stitch(context.Background(), sprites, opts)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"stitch-start", "miss", "set", "stitch-complete",
		"stitch-start", "hit", "stitch-complete",
	}, hooks.events)
	assert.Equal(t, [2]int{res.Width(), res.Height()}, hooks.lastSize)
	assert.Equal(t, 1, hooks.cacheSets)

	_, err = s.Stitch(context.Background(), nil, opts)
	require.Error(t, err)
	assert.True(t, errors.Is(hooks.lastErr, errors.ErrCodeEmptyInput))
	assert.Equal(t, [2]int{0, 0}, hooks.lastSize)
}
