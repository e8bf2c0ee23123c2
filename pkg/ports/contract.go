package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/hanoi/pkg/domain"
)

// RunSessionStoreContract runs a suite of tests to verify that a
// SessionStore implementation adheres to the defined interface contract.
func RunSessionStoreContract(t *testing.T, store SessionStore) {
	ctx := context.Background()
	sessionID := "contract-test-session-" + time.Now().Format("20060102150405")

	newSession := func(t *testing.T) *domain.Session {
		t.Helper()
		sess, err := domain.NewSession(4, domain.PegA, domain.PegB, domain.PegC, domain.ModeAuto)
		require.NoError(t, err)
		return sess
	}

	t.Run("Save and Load", func(t *testing.T) {
		sess := newSession(t)
		sess.Cursor = 7

		err := store.Save(ctx, sessionID, sess)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, sessionID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, sess.Disks, loaded.Disks)
		assert.Equal(t, sess.Cursor, loaded.Cursor)
		assert.Equal(t, domain.ModeAuto, loaded.Mode)
		assert.True(t, sess.Board.Equal(loaded.Board), "board should round-trip")
	})

	t.Run("Load Isolation", func(t *testing.T) {
		sess := newSession(t)
		require.NoError(t, store.Save(ctx, sessionID, sess))

		loaded, err := store.Load(ctx, sessionID)
		require.NoError(t, err)
		loaded.Cursor = 99

		again, err := store.Load(ctx, sessionID)
		require.NoError(t, err)
		assert.Zero(t, again.Cursor, "mutating a loaded session must not affect the store")
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+sessionID)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, sessionID, newSession(t)))

		err := store.Delete(ctx, sessionID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, sessionID)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound, "Load after Delete should return ErrSessionNotFound")
	})

	t.Run("List", func(t *testing.T) {
		idA := sessionID + "-list-a"
		idB := sessionID + "-list-b"
		require.NoError(t, store.Save(ctx, idA, newSession(t)))
		require.NoError(t, store.Save(ctx, idB, newSession(t)))

		ids, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, ids, idA)
		assert.Contains(t, ids, idB)
	})
}
