package scheduler_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/careercoin/internal/scheduler"
)

func TestScheduler_Sweep(t *testing.T) {
	tests := []struct {
		name    string
		expired bool
		err     error
	}{
		{"Expired", true, nil},
		{"Nothing", false, nil},
		{"Failure", false, errors.New("db down")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			expirer := scheduler.NewMockExpirer(ctrl)
			expirer.EXPECT().ExpireStreak(gomock.Any()).Return(tt.expired, tt.err)

			scheduler.New(expirer, time.UTC).Sweep(context.Background())
		})
	}
}

func TestScheduler_SweepSkipsWhenCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// No ExpireStreak expectation: a call would fail the test.
	scheduler.New(scheduler.NewMockExpirer(ctrl), time.UTC).Sweep(ctx)
}

func TestScheduler_StartRejectsBadTime(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := scheduler.New(scheduler.NewMockExpirer(ctrl), time.UTC)
	assert.Error(t, s.Start(context.Background(), "25:99"))
}

func TestScheduler_StartAndStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	expirer := scheduler.NewMockExpirer(ctrl)
	expirer.EXPECT().ExpireStreak(gomock.Any()).Return(false, nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := scheduler.New(expirer, time.UTC)
	assert.NoError(t, s.Start(ctx, "00:05"))
	s.Stop()
}
