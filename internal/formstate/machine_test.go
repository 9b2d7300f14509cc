package formstate

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wigconnect/wigconnect/internal/contact"
	"github.com/wigconnect/wigconnect/internal/settings"
)

func snapshotWithDelay(ms int) *settings.Snapshot {
	doc := settings.Defaults()
	doc.Settings.LoadingDelay = ms
	return &settings.Snapshot{Document: doc}
}

func TestSubmitInvalidStaysIdle(t *testing.T) {
	m := NewMachine()
	ch, err := m.Submit("123", snapshotWithDelay(1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, contact.ErrTooShort))
	assert.Nil(t, ch)
	assert.Equal(t, Idle, m.State())
}

func TestSubmitRevealsAfterDelay(t *testing.T) {
	m := NewMachine()
	start := time.Now()

	ch, err := m.Submit("0801 234 5678", snapshotWithDelay(30))
	require.NoError(t, err)
	assert.Equal(t, Pending, m.State())

	_, err = m.Submit("0801 234 5678", snapshotWithDelay(30))
	assert.ErrorIs(t, err, ErrBusy)

	select {
	case link, ok := <-ch:
		require.True(t, ok)
		assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
		assert.Equal(t, "2348012345678", link.Canonical)
	case <-time.After(2 * time.Second):
		t.Fatal("result not revealed")
	}

	assert.Equal(t, Result, m.State())
	link, ok := m.Link()
	require.True(t, ok)
	assert.Contains(t, link.URL, "https://wa.me/")

	_, err = m.Submit("0801 234 5678", snapshotWithDelay(30))
	assert.ErrorIs(t, err, ErrBusy)

	m.Reset()
	assert.Equal(t, Idle, m.State())
	_, ok = m.Link()
	assert.False(t, ok)
}

func TestResetCancelsPendingReveal(t *testing.T) {
	m := NewMachine()
	ch, err := m.Submit("8012345678", snapshotWithDelay(50))
	require.NoError(t, err)

	m.Reset()
	assert.Equal(t, Idle, m.State())

	select {
	case _, ok := <-ch:
		assert.False(t, ok, "cancelled submission must not yield a link")
	case <-time.After(time.Second):
		t.Fatal("channel not closed on reset")
	}

	// Past the first deadline the machine is still idle.
	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, Idle, m.State())

	// And a new submission works normally.
	ch, err = m.Submit("8012345678", snapshotWithDelay(1))
	require.NoError(t, err)
	_, ok := <-ch
	assert.True(t, ok)
	assert.Equal(t, Result, m.State())
}

func TestDefaultDelay(t *testing.T) {
	m := NewMachine()
	_, err := m.Submit("8012345678", &settings.Snapshot{})
	require.NoError(t, err)
	assert.Equal(t, Pending, m.State())
	m.Reset()
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	a := r.Get("a")
	assert.Same(t, a, r.Get("a"))
	assert.NotSame(t, a, r.Get("b"))
	assert.Equal(t, 2, r.Len())

	_, err := a.Submit("8012345678", snapshotWithDelay(10_000))
	require.NoError(t, err)

	assert.Equal(t, 0, r.Evict(time.Now().Add(-time.Minute)))
	assert.Equal(t, 2, r.Evict(time.Now().Add(time.Minute)))
	assert.Equal(t, 0, r.Len())
	assert.Equal(t, Idle, a.State())
}
