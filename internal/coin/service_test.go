package coin_test

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/careercoin/internal/coin"
	"github.com/MrJamesThe3rd/careercoin/internal/kv"
	"github.com/MrJamesThe3rd/careercoin/internal/ledger"
	ledgerStore "github.com/MrJamesThe3rd/careercoin/internal/ledger/store"
	"github.com/MrJamesThe3rd/careercoin/internal/metrics"
	"github.com/MrJamesThe3rd/careercoin/internal/reward"
	"github.com/MrJamesThe3rd/careercoin/internal/settlement"
)

// stepClock advances one second per call so transactions get distinct timestamps.
func stepClock() func() time.Time {
	var mu sync.Mutex

	t := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()

		t = t.Add(time.Second)

		return t
	}
}

func testCatalog(t *testing.T) *reward.Catalog {
	t.Helper()

	c, err := reward.NewCatalog([]reward.Item{
		{ID: "cheap", Title: "Resume Review", Cost: 80, Category: reward.CategoryReview, Available: true},
		{ID: "pricey", Title: "Bootcamp", Cost: 150, Category: reward.CategoryCourse, Available: true},
		{ID: "gone", Title: "Mentorship", Cost: 10, Category: reward.CategoryMentorship, Available: false},
	})
	require.NoError(t, err)

	return c
}

func newService(t *testing.T, storage kv.Storage) *coin.Service {
	t.Helper()

	svc := coin.NewService(
		ledgerStore.New(storage),
		testCatalog(t),
		settlement.NewSimulated(rand.New(rand.NewPCG(1, 1))),
		coin.WithClock(stepClock()),
	)
	require.NoError(t, svc.Load(context.Background()))

	return svc
}

func redemptions(outcome string) float64 {
	return testutil.ToFloat64(metrics.Redemptions.WithLabelValues(outcome))
}

func TestService_Scenario(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, kv.NewMemory())

	earned := testutil.ToFloat64(metrics.CoinsEarned)
	spent := testutil.ToFloat64(metrics.CoinsRedeemed)
	redeemed := redemptions(metrics.OutcomeRedeemed)
	short := redemptions(metrics.OutcomeInsufficient)

	assert.Zero(t, svc.Balance())
	assert.Zero(t, svc.TotalEarned())

	tx, err := svc.EarnCoins(ctx, 100, "step1")
	require.NoError(t, err)
	assert.Equal(t, ledger.KindEarned, tx.Kind)
	assert.NotEmpty(t, tx.ID)
	assert.Regexp(t, `^ALGO[0-9A-Z]{13}$`, tx.Reference)
	assert.Equal(t, int64(100), svc.Balance())
	assert.Equal(t, int64(100), svc.TotalEarned())
	assert.Len(t, svc.TransactionHistory(), 1)

	ok, err := svc.RedeemCoins(ctx, "pricey")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, int64(100), svc.Balance())
	assert.Len(t, svc.TransactionHistory(), 1)

	ok, err = svc.RedeemCoins(ctx, "cheap")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(20), svc.Balance())
	assert.Equal(t, int64(100), svc.TotalEarned())

	history := svc.TransactionHistory()
	require.Len(t, history, 2)
	assert.Equal(t, ledger.KindRedeemed, history[0].Kind)
	assert.Equal(t, int64(80), history[0].Amount)
	assert.Equal(t, "Redeemed: Resume Review", history[0].Description)
	assert.Equal(t, ledger.KindEarned, history[1].Kind)

	assert.InDelta(t, 100, testutil.ToFloat64(metrics.CoinsEarned)-earned, 0)
	assert.InDelta(t, 80, testutil.ToFloat64(metrics.CoinsRedeemed)-spent, 0)
	assert.InDelta(t, 1, redemptions(metrics.OutcomeRedeemed)-redeemed, 0)
	assert.InDelta(t, 1, redemptions(metrics.OutcomeInsufficient)-short, 0)
	assert.InDelta(t, 20, testutil.ToFloat64(metrics.Balance), 0)
}

func TestService_RedeemReasons(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, kv.NewMemory())

	_, err := svc.EarnCoins(ctx, 100, "seed")
	require.NoError(t, err)

	tests := []struct {
		name    string
		itemID  string
		wantErr error
		outcome string
	}{
		{"Unknown", "nope", coin.ErrItemNotFound, metrics.OutcomeNotFound},
		{"Unavailable", "gone", coin.ErrItemUnavailable, metrics.OutcomeUnavailable},
		{"TooExpensive", "pricey", coin.ErrInsufficientBalance, metrics.OutcomeInsufficient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := svc.Snapshot()
			counted := redemptions(tt.outcome)
			spent := testutil.ToFloat64(metrics.CoinsRedeemed)

			tx, err := svc.Redeem(ctx, tt.itemID)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, tx)
			assert.Equal(t, before, svc.Snapshot())

			ok, err := svc.RedeemCoins(ctx, tt.itemID)
			assert.NoError(t, err)
			assert.False(t, ok)

			assert.InDelta(t, 2, redemptions(tt.outcome)-counted, 0)
			assert.InDelta(t, 0, testutil.ToFloat64(metrics.CoinsRedeemed)-spent, 0)
		})
	}
}

func TestService_EarnRejectsNonPositive(t *testing.T) {
	svc := newService(t, kv.NewMemory())

	for _, amount := range []int64{0, -5} {
		tx, err := svc.EarnCoins(context.Background(), amount, "bad")
		assert.ErrorIs(t, err, coin.ErrInvalidAmount)
		assert.Nil(t, tx)
	}

	assert.Zero(t, svc.Snapshot().Transactions)
}

func TestService_InvariantHoldsForRandomSequences(t *testing.T) {
	ctx := context.Background()
	rnd := rand.New(rand.NewPCG(42, 42))
	svc := newService(t, kv.NewMemory())
	items := []string{"cheap", "pricey", "gone", "nope"}

	for range 300 {
		if rnd.IntN(2) == 0 {
			_, err := svc.EarnCoins(ctx, int64(rnd.IntN(120)+1), "random")
			require.NoError(t, err)
		} else {
			_, err := svc.RedeemCoins(ctx, items[rnd.IntN(len(items))])
			require.NoError(t, err)
		}

		snap := svc.Snapshot()
		require.GreaterOrEqual(t, snap.Balance, int64(0))
		require.Equal(t, snap.TotalEarned-snap.TotalRedeemed, snap.Balance)
	}
}

func TestService_ConcurrentEarnsKeepHistoryOrder(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, kv.NewMemory())

	var wg sync.WaitGroup

	for i := range 100 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, err := svc.EarnCoins(ctx, int64(i+1), "parallel")
			assert.NoError(t, err)
		}()
	}

	wg.Wait()

	history := svc.TransactionHistory()
	require.Len(t, history, 100)

	for i := 1; i < len(history); i++ {
		assert.True(t, history[i-1].Timestamp.After(history[i].Timestamp), "entry %d", i)
		assert.Greater(t, history[i-1].ID, history[i].ID, "entry %d", i)
	}
}

func TestService_ConcurrentRedeemNeverOverdraws(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, kv.NewMemory())

	_, err := svc.EarnCoins(ctx, 800, "seed")
	require.NoError(t, err)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		redeemed int
	)

	for range 50 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			ok, err := svc.RedeemCoins(ctx, "cheap")
			assert.NoError(t, err)

			if ok {
				mu.Lock()
				redeemed++
				mu.Unlock()
			}
		}()
	}

	wg.Wait()

	assert.Equal(t, 10, redeemed)
	assert.Zero(t, svc.Balance())
}

func TestService_HistoryIsStableAcrossReads(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, kv.NewMemory())

	for i := range 5 {
		_, err := svc.EarnCoins(ctx, int64(10*(i+1)), "earn")
		require.NoError(t, err)
	}

	first := svc.TransactionHistory()
	second := svc.TransactionHistory()
	assert.Equal(t, first, second)

	for i := 1; i < len(first); i++ {
		assert.False(t, first[i].Timestamp.After(first[i-1].Timestamp))
	}
}

func TestService_HistoryFilter(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, kv.NewMemory())

	_, err := svc.EarnCoins(ctx, 100, "a")
	require.NoError(t, err)
	_, err = svc.Redeem(ctx, "cheap")
	require.NoError(t, err)
	_, err = svc.EarnCoins(ctx, 30, "b")
	require.NoError(t, err)

	kind := ledger.KindEarned
	assert.Len(t, svc.History(coin.HistoryFilter{Kind: &kind}), 2)

	all := svc.TransactionHistory()
	start := all[1].Timestamp
	assert.Len(t, svc.History(coin.HistoryFilter{StartDate: &start}), 2)

	end := all[2].Timestamp
	assert.Len(t, svc.History(coin.HistoryFilter{EndDate: &end}), 1)
}

func TestService_PersistenceRoundTrip(t *testing.T) {
	ctx := context.Background()
	storage := kv.NewMemory()
	svc := newService(t, storage)

	_, err := svc.EarnCoins(ctx, 50, "x")
	require.NoError(t, err)

	reloaded := newService(t, storage)
	assert.Equal(t, int64(50), reloaded.Balance())
	assert.Equal(t, int64(50), reloaded.TotalEarned())
	assert.Len(t, reloaded.TransactionHistory(), 1)
}

func TestService_Wallet(t *testing.T) {
	ctx := context.Background()
	storage := kv.NewMemory()
	svc := newService(t, storage)

	assert.False(t, svc.Wallet().Connected)

	w, err := svc.ConnectWallet(ctx)
	require.NoError(t, err)
	assert.True(t, w.Connected)
	assert.Regexp(t, `^ALGO`, w.Address)

	reloaded := newService(t, storage)
	assert.Equal(t, w, reloaded.Wallet())

	require.NoError(t, reloaded.DisconnectWallet(ctx))
	assert.False(t, reloaded.Wallet().Connected)
	assert.False(t, newService(t, storage).Wallet().Connected)
}

func TestService_ConnectWalletFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := coin.NewMockRepository(ctrl)
	settler := settlement.NewMockProvider(ctrl)
	svc := coin.NewService(repo, testCatalog(t), settler)

	settler.EXPECT().Connect(gomock.Any()).Return("", errors.New("signature rejected"))

	w, err := svc.ConnectWallet(context.Background())
	assert.Error(t, err)
	assert.False(t, w.Connected)
	assert.False(t, svc.Wallet().Connected)
}

func TestService_PersistFailureLeavesLedgerUnchanged(t *testing.T) {
	type testCase struct {
		name      string
		setupMock func(repo *coin.MockRepository, settler *settlement.MockProvider)
		act       func(svc *coin.Service) error
	}

	tests := []testCase{
		{
			name: "Earn",
			setupMock: func(repo *coin.MockRepository, settler *settlement.MockProvider) {
				settler.EXPECT().Reference(gomock.Any()).Return("ALGOREF", nil)
				repo.EXPECT().Persist(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))
			},
			act: func(svc *coin.Service) error {
				_, err := svc.EarnCoins(context.Background(), 10, "x")
				return err
			},
		},
		{
			name: "Redeem",
			setupMock: func(repo *coin.MockRepository, settler *settlement.MockProvider) {
				settler.EXPECT().Reference(gomock.Any()).Return("ALGOREF", nil)
				repo.EXPECT().Persist(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))
			},
			act: func(svc *coin.Service) error {
				_, err := svc.RedeemCoins(context.Background(), "cheap")
				return err
			},
		},
		{
			name: "SettlementDown",
			setupMock: func(_ *coin.MockRepository, settler *settlement.MockProvider) {
				settler.EXPECT().Reference(gomock.Any()).Return("", errors.New("node unreachable"))
			},
			act: func(svc *coin.Service) error {
				_, err := svc.EarnCoins(context.Background(), 10, "x")
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := coin.NewMockRepository(ctrl)
			settler := settlement.NewMockProvider(ctrl)

			seeded := ledger.State{}.Earn(ledger.Transaction{ID: "seed", Kind: ledger.KindEarned, Amount: 100})
			repo.EXPECT().Load(gomock.Any()).Return(seeded, ledger.Wallet{}, nil)

			svc := coin.NewService(repo, testCatalog(t), settler)
			require.NoError(t, svc.Load(context.Background()))

			tt.setupMock(repo, settler)

			before := svc.Snapshot()
			assert.Error(t, tt.act(svc))
			assert.Equal(t, before, svc.Snapshot())
		})
	}
}

func TestService_LoadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := coin.NewMockRepository(ctrl)
	repo.EXPECT().Load(gomock.Any()).Return(ledger.State{}, ledger.Wallet{}, errors.New("db down"))

	svc := coin.NewService(repo, reward.DefaultCatalog(), settlement.NewSimulated(nil))
	assert.Error(t, svc.Load(context.Background()))
}
