package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionStore(t *testing.T) {
	store := NewSessionStore()

	assert.Empty(t, store.UserID(), "fresh store has no session")

	store.Set(Session{UserID: "uid-1", Email: "a@b.c"})
	assert.Equal(t, "uid-1", store.UserID())

	store.Set(Session{UserID: "uid-2"})
	assert.Equal(t, "uid-2", store.UserID(), "a new login replaces the session")

	store.Clear()
	assert.Empty(t, store.UserID())

	// clearing with no active session is a no-op, not an error
	store.Clear()
	assert.Empty(t, store.UserID())
}
