package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/careercoin/internal/kv"
	"github.com/MrJamesThe3rd/careercoin/internal/skills"
	"github.com/MrJamesThe3rd/careercoin/internal/skills/store"
)

func TestStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty", func(t *testing.T) {
		p, err := store.New(kv.NewMemory()).Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, skills.Profile{}, p)
	})

	t.Run("RoundTrip", func(t *testing.T) {
		storage := kv.NewMemory()
		s := store.New(storage)

		want := skills.Profile{Skills: []string{"Python", "SQL"}, DreamJob: "Data Scientist"}
		require.NoError(t, s.Save(ctx, want))

		raw, err := storage.Get(ctx, store.KeySkills)
		require.NoError(t, err)
		assert.JSONEq(t, `["Python","SQL"]`, raw)

		got, err := s.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("ClearingDreamJobDeletesKey", func(t *testing.T) {
		storage := kv.NewMemory()
		s := store.New(storage)

		require.NoError(t, s.Save(ctx, skills.Profile{DreamJob: "UX Designer"}))
		require.NoError(t, s.Save(ctx, skills.Profile{}))

		_, err := storage.Get(ctx, store.KeyDreamJob)
		assert.ErrorIs(t, err, kv.ErrNotFound)

		raw, err := storage.Get(ctx, store.KeySkills)
		require.NoError(t, err)
		assert.Equal(t, "[]", raw)
	})

	t.Run("MalformedSkillsAreDropped", func(t *testing.T) {
		storage := kv.NewMemory()
		require.NoError(t, storage.Set(ctx, store.KeySkills, "Python, SQL"))
		require.NoError(t, storage.Set(ctx, store.KeyDreamJob, "Data Scientist"))

		got, err := store.New(storage).Load(ctx)
		require.NoError(t, err)
		assert.Nil(t, got.Skills)
		assert.Equal(t, "Data Scientist", got.DreamJob)
	})
}
