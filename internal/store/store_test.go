package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlowery2/blockpuzzle/internal/puzzle"
)

func TestMemoryStoreSaveAndGet(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	sess := &Session{ID: "abc", OwnerID: "anon-1", Game: puzzle.New(puzzle.Config{})}
	require.NoError(t, st.Save(ctx, sess))

	got, err := st.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Same(t, sess, got)

	_, err = st.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionMarkRecordedOnce(t *testing.T) {
	sess := &Session{ID: "abc"}
	assert.True(t, sess.MarkRecorded())
	assert.False(t, sess.MarkRecorded())

	sess.ResetRecorded()
	assert.True(t, sess.MarkRecorded())
}

func TestMemoryBestIsMonotone(t *testing.T) {
	b := NewMemoryBest(10)
	assert.Equal(t, 10, b.ReadBest())

	b.WriteBest(25)
	assert.Equal(t, 25, b.ReadBest())

	b.WriteBest(5)
	assert.Equal(t, 25, b.ReadBest(), "lower write must not regress the best")
}
