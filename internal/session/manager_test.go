package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerCreateAndGet(t *testing.T) {
	m := NewManager()

	id := m.Create()
	require.NotEmpty(t, id)

	store := m.Get(id)
	require.NotNil(t, store)
	assert.Len(t, store.Invoice().LineItems, 1)

	// Each session owns its own invoice.
	other := m.Get(m.Create())
	store.AddLineItem()
	assert.Len(t, other.Invoice().LineItems, 1)
}

func TestManagerUnknownSession(t *testing.T) {
	m := NewManager()
	assert.Nil(t, m.Get("nope"))
}

func TestManagerEvictsIdleSessions(t *testing.T) {
	m := NewManager()
	current := time.Now()
	m.now = func() time.Time { return current }

	id := m.Create()
	require.NotNil(t, m.Get(id))

	current = current.Add(idleTimeout + time.Minute)
	assert.Nil(t, m.Get(id), "idle session should be gone")
	assert.Equal(t, 0, m.Len())
}

func TestManagerTouchKeepsSessionAlive(t *testing.T) {
	m := NewManager()
	current := time.Now()
	m.now = func() time.Time { return current }

	id := m.Create()

	// Keep poking the session just inside the timeout.
	for i := 0; i < 3; i++ {
		current = current.Add(idleTimeout - time.Hour)
		require.NotNil(t, m.Get(id))
	}
}
