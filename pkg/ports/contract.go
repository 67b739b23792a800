package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/submittals/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunStateStoreContract runs a suite of tests to verify that a StateStore implementation
// adheres to the defined interface contract.
func RunStateStoreContract(t *testing.T, store StateStore) {
	ctx := context.Background()
	sessionID := "contract-test-session-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		state := domain.NewState(sessionID)
		state.Cursor = 2
		state.History = []int{0, 1, 2}
		state.Answers.Set("project_name", "Acme Tower")
		state.Answers.Set("systems", []string{"UMS", "Upsolut"})
		state.Answers.Set("drawings", []domain.FileRef{{ID: "f1", Name: "l1.pdf", Size: 10}})

		err := store.Save(ctx, sessionID, state)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, sessionID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, sessionID, loaded.SessionID)
		assert.Equal(t, 2, loaded.Cursor)
		assert.Equal(t, []int{0, 1, 2}, loaded.History)
		assert.Equal(t, "Acme Tower", loaded.Answers.Text("project_name"))
		// Stores that serialize hand back []any; the accessors normalize it.
		assert.Equal(t, []string{"UMS", "Upsolut"}, loaded.Answers.Choices("systems"))
		require.Len(t, loaded.Answers.Files("drawings"), 1)
		assert.Equal(t, "f1", loaded.Answers.Files("drawings")[0].ID)
	})

	t.Run("Isolation", func(t *testing.T) {
		state := domain.NewState(sessionID)
		state.Answers.Set("project_name", "Before")
		require.NoError(t, store.Save(ctx, sessionID, state))

		state.Answers.Set("project_name", "After")
		loaded, err := store.Load(ctx, sessionID)
		require.NoError(t, err)
		assert.Equal(t, "Before", loaded.Answers.Text("project_name"), "mutating the saved pointer must not leak")
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+sessionID)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		err := store.Save(ctx, sessionID, domain.NewState(sessionID))
		require.NoError(t, err)

		err = store.Delete(ctx, sessionID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, sessionID)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound, "Load after Delete should return ErrSessionNotFound")
	})

	t.Run("List", func(t *testing.T) {
		id1 := sessionID + "-1"
		id2 := sessionID + "-2"
		_ = store.Save(ctx, id1, domain.NewState(id1))
		_ = store.Save(ctx, id2, domain.NewState(id2))

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		sessions, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, sessions, id1)
		assert.Contains(t, sessions, id2)
	})
}

// RunBlobStoreContract verifies that a BlobStore implementation adheres to
// the defined interface contract.
func RunBlobStoreContract(t *testing.T, store BlobStore) {
	ctx := context.Background()
	sessionID := "contract-blob-" + time.Now().Format("20060102150405")

	t.Run("Put and Get", func(t *testing.T) {
		data := []byte{0x89, 'P', 'N', 'G', 0x00, 0xff}
		require.NoError(t, store.Put(ctx, sessionID, "logo", data))

		got, err := store.Get(ctx, sessionID, "logo")
		require.NoError(t, err)
		assert.Equal(t, data, got)

		data[0] = 0
		got, err = store.Get(ctx, sessionID, "logo")
		require.NoError(t, err)
		assert.Equal(t, byte(0x89), got[0], "stored bytes are copied")
	})

	t.Run("Get Non-Existent", func(t *testing.T) {
		_, err := store.Get(ctx, sessionID, "missing")
		assert.ErrorIs(t, err, domain.ErrBlobNotFound)

		_, err = store.Get(ctx, "other-"+sessionID, "logo")
		assert.ErrorIs(t, err, domain.ErrBlobNotFound, "blobs are scoped to their session")
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, sessionID, "tmp", []byte("x")))
		require.NoError(t, store.Delete(ctx, sessionID, "tmp"))
		require.NoError(t, store.Delete(ctx, sessionID, "tmp"), "deleting twice is fine")

		_, err := store.Get(ctx, sessionID, "tmp")
		assert.ErrorIs(t, err, domain.ErrBlobNotFound)
	})

	t.Run("Purge", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, sessionID, "a", []byte("a")))
		require.NoError(t, store.Put(ctx, sessionID, "b", []byte("b")))
		require.NoError(t, store.Purge(ctx, sessionID))

		_, err := store.Get(ctx, sessionID, "a")
		assert.ErrorIs(t, err, domain.ErrBlobNotFound)
		_, err = store.Get(ctx, sessionID, "b")
		assert.ErrorIs(t, err, domain.ErrBlobNotFound)
	})
}
