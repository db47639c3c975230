package content

import (
	"context"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebouncer_CoalescesTriggers(t *testing.T) {
	d := newDebouncer(20 * time.Millisecond)
	var calls atomic.Int32

	for k := 0; k < 5; k++ {
		d.Trigger(func() { calls.Add(1) })
	}

	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}

func TestDebouncer_Cancel(t *testing.T) {
	d := newDebouncer(20 * time.Millisecond)
	var calls atomic.Int32

	d.Trigger(func() { calls.Add(1) })
	d.Cancel()

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())
}

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	path := writeFile(t, "site.json", siteJSON)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := NewWatcher(path, "solutionsSlider", nil)
	updates, err := w.Run(ctx)
	require.NoError(t, err)

	next := `{"solutionsSlider": {"title": "Shrunk", "items": [{"id": 1, "title": "Only"}]}}`
	require.NoError(t, os.WriteFile(path, []byte(next), 0o600))

	select {
	case u := <-updates:
		require.NoError(t, u.Err)
		assert.Equal(t, "Shrunk", u.Section.Title)
		assert.Equal(t, 1, u.Section.Len())
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after write")
	}
}

func TestWatcher_ClosesOnCancel(t *testing.T) {
	path := writeFile(t, "site.json", siteJSON)

	ctx, cancel := context.WithCancel(context.Background())
	updates, err := NewWatcher(path, "solutionsSlider", nil).Run(ctx)
	require.NoError(t, err)

	cancel()

	select {
	case _, ok := <-updates:
		assert.False(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("channel not closed after cancel")
	}
}
