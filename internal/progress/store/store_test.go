package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/careercoin/internal/kv"
	"github.com/MrJamesThe3rd/careercoin/internal/progress"
	"github.com/MrJamesThe3rd/careercoin/internal/progress/store"
	"github.com/MrJamesThe3rd/careercoin/internal/roadmap"
)

func TestStore_Empty(t *testing.T) {
	ctx := context.Background()
	s := store.New(kv.NewMemory())

	r, err := s.LoadRoadmap(ctx)
	require.NoError(t, err)
	assert.Nil(t, r)

	streak, err := s.LoadStreak(ctx)
	require.NoError(t, err)
	assert.Equal(t, progress.Streak{}, streak)
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := store.New(kv.NewMemory())

	r := roadmap.Generate("Product Manager")
	r.Step(3).Completed = true
	require.NoError(t, s.SaveRoadmap(ctx, r))

	got, err := s.LoadRoadmap(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, r, *got)

	last := time.Date(2025, 3, 4, 9, 30, 0, 0, time.UTC)
	require.NoError(t, s.SaveStreak(ctx, progress.Streak{Days: 4, LastCheckIn: last}))

	streak, err := s.LoadStreak(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, streak.Days)
	assert.True(t, streak.LastCheckIn.Equal(last))
}

func TestStore_MalformedValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"Roadmap", store.KeyRoadmap, "[broken"},
		{"StreakNotNumber", store.KeyDailyStreak, "many"},
		{"StreakNegative", store.KeyDailyStreak, "-3"},
		{"LastCheckIn", store.KeyLastCheckIn, "yesterday"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			storage := kv.NewMemory()
			require.NoError(t, storage.Set(ctx, tt.key, tt.value))

			s := store.New(storage)

			r, err := s.LoadRoadmap(ctx)
			require.NoError(t, err)
			if tt.key == store.KeyRoadmap {
				assert.Nil(t, r)
			}

			streak, err := s.LoadStreak(ctx)
			require.NoError(t, err)
			assert.Zero(t, streak.Days)
		})
	}
}

func TestStore_StorageErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	storage := kv.NewMockStorage(ctrl)
	boom := errors.New("boom")

	storage.EXPECT().Get(gomock.Any(), store.KeyRoadmap).Return("", boom)
	storage.EXPECT().Get(gomock.Any(), store.KeyDailyStreak).Return("", boom)
	storage.EXPECT().Set(gomock.Any(), store.KeyDailyStreak, "0").Return(boom)

	s := store.New(storage)

	_, err := s.LoadRoadmap(ctx)
	assert.ErrorIs(t, err, boom)

	_, err = s.LoadStreak(ctx)
	assert.ErrorIs(t, err, boom)

	assert.ErrorIs(t, s.SaveStreak(ctx, progress.Streak{}), boom)
}
