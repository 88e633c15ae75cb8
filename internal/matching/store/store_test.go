package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/careercoin/internal/kv"
	"github.com/MrJamesThe3rd/careercoin/internal/matching/store"
)

func TestStore_LearnedCareers(t *testing.T) {
	ctx := context.Background()

	t.Run("EmptyWhenAbsent", func(t *testing.T) {
		got, err := store.New(kv.NewMemory()).LearnedCareers(ctx)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("RoundTrip", func(t *testing.T) {
		s := store.New(kv.NewMemory())
		learned := map[string][]string{"figma": {"UX Designer", "Product Designer"}}

		require.NoError(t, s.SaveLearned(ctx, learned))

		got, err := s.LearnedCareers(ctx)
		require.NoError(t, err)
		assert.Equal(t, learned, got)
	})

	t.Run("MalformedIsEmpty", func(t *testing.T) {
		storage := kv.NewMemory()
		require.NoError(t, storage.Set(ctx, store.KeyLearnedCareers, "{nope"))

		got, err := store.New(storage).LearnedCareers(ctx)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("StorageError", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		storage := kv.NewMockStorage(ctrl)
		boom := errors.New("boom")

		storage.EXPECT().Get(gomock.Any(), store.KeyLearnedCareers).Return("", boom)
		storage.EXPECT().Set(gomock.Any(), store.KeyLearnedCareers, gomock.Any()).Return(boom)

		s := store.New(storage)

		_, err := s.LearnedCareers(ctx)
		assert.ErrorIs(t, err, boom)

		err = s.SaveLearned(ctx, map[string][]string{})
		assert.ErrorIs(t, err, boom)
	})
}
