package matching_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/careercoin/internal/kv"
	"github.com/MrJamesThe3rd/careercoin/internal/matching"
	"github.com/MrJamesThe3rd/careercoin/internal/matching/store"
)

func TestService_SuggestSkills(t *testing.T) {
	svc := matching.NewService(nil)

	tests := []struct {
		name string
		job  string
		want string
	}{
		{"Exact", "Data Scientist", "Python"},
		{"PartialContainsKnown", "Senior Web Developer", "HTML"},
		{"PartialContainedInKnown", "ux", "User Research"},
		{"Unknown", "Astronaut", "Communication"},
		{"Empty", "", "Communication"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.SuggestSkills(tt.job)
			require.NotEmpty(t, got)
			assert.Equal(t, tt.want, got[0])
		})
	}
}

func TestService_SuggestCareers(t *testing.T) {
	ctx := context.Background()
	svc := matching.NewService(store.New(kv.NewMemory()))

	tests := []struct {
		name   string
		skills []string
		want   []string
	}{
		{
			name:   "NoSkills",
			skills: nil,
			want:   nil,
		},
		{
			name:   "Frontend",
			skills: []string{"HTML", "css", "JavaScript"},
			want:   []string{"Web Developer", "Frontend Developer", "UI Developer", "Full Stack Developer"},
		},
		{
			name:   "DataCappedAtFive",
			skills: []string{"Python", "SQL", "Machine Learning", "Statistics", "R"},
			want:   []string{"Data Scientist", "Machine Learning Engineer", "Data Analyst", "Backend Developer", "Database Administrator"},
		},
		{
			name:   "UnknownSkill",
			skills: []string{"Juggling"},
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.SuggestCareers(ctx, tt.skills)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_Learn(t *testing.T) {
	ctx := context.Background()
	storage := kv.NewMemory()
	svc := matching.NewService(store.New(storage))

	require.NoError(t, svc.Learn(ctx, "Juggling", "Circus Performer"))
	require.NoError(t, svc.Learn(ctx, "juggling", "Circus Performer"))
	require.NoError(t, svc.Learn(ctx, "HTML", "Web Developer"))
	assert.ErrorIs(t, svc.Learn(ctx, " ", "x"), matching.ErrInvalidMapping)

	got, err := matching.NewService(store.New(storage)).SuggestCareers(ctx, []string{"Juggling"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Circus Performer"}, got)

	learned, err := store.New(storage).LearnedCareers(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{"juggling": {"Circus Performer"}}, learned)
}

func TestService_RepositoryErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := matching.NewMockRepository(ctrl)
	repo.EXPECT().LearnedCareers(gomock.Any()).Return(nil, errors.New("boom")).Times(2)

	svc := matching.NewService(repo)

	_, err := svc.SuggestCareers(context.Background(), []string{"HTML"})
	assert.Error(t, err)
	assert.Error(t, svc.Learn(context.Background(), "HTML", "Hacker"))
}

func TestStore_MalformedValueIsEmpty(t *testing.T) {
	ctx := context.Background()
	storage := kv.NewMemory()
	require.NoError(t, storage.Set(ctx, store.KeyLearnedCareers, "{not json"))

	learned, err := store.New(storage).LearnedCareers(ctx)
	require.NoError(t, err)
	assert.Empty(t, learned)
}
