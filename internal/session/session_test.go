package session

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/revise/internal/store"
)

func TestNewSession(t *testing.T) {
	s := New()
	_, err := uuid.Parse(s.ID)
	require.NoError(t, err)

	_, ok := s.SelectedID()
	assert.False(t, ok)
}

func TestSelectAndClear(t *testing.T) {
	s := New()
	s.Select(1700000000000)

	id, ok := s.SelectedID()
	require.True(t, ok)
	assert.Equal(t, int64(1700000000000), id)

	s.Clear()
	_, ok = s.SelectedID()
	assert.False(t, ok)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	kv := store.NewMemoryKV()
	ctx := context.Background()

	s := New()
	s.Select(42)
	require.NoError(t, s.Save(ctx, kv))

	got, err := Load(ctx, kv)
	require.NoError(t, err)
	assert.Equal(t, s.ID, got.ID)
	id, ok := got.SelectedID()
	require.True(t, ok)
	assert.Equal(t, int64(42), id)
}

func TestLoadMissingOrCorrupt(t *testing.T) {
	kv := store.NewMemoryKV()
	ctx := context.Background()

	s, err := Load(ctx, kv)
	require.NoError(t, err)
	assert.NotEmpty(t, s.ID)

	require.NoError(t, kv.Set(ctx, Key, []byte("not json")))
	s, err = Load(ctx, kv)
	require.NoError(t, err)
	assert.NotEmpty(t, s.ID)
	_, ok := s.SelectedID()
	assert.False(t, ok)
}
