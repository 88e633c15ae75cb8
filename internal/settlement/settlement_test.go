package settlement_test

import (
	"context"
	"math/rand/v2"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/careercoin/internal/settlement"
)

var idPattern = regexp.MustCompile(`^ALGO[0-9A-Z]{13}$`)

func TestSimulated_Identifiers(t *testing.T) {
	s := settlement.NewSimulated(rand.New(rand.NewPCG(1, 2)))

	ref, err := s.Reference(context.Background())
	require.NoError(t, err)
	assert.Regexp(t, idPattern, ref)

	addr, err := s.Connect(context.Background())
	require.NoError(t, err)
	assert.Regexp(t, idPattern, addr)
	assert.NotEqual(t, ref, addr)
}

func TestSimulated_DeterministicWithSeed(t *testing.T) {
	a := settlement.NewSimulated(rand.New(rand.NewPCG(7, 7)))
	b := settlement.NewSimulated(rand.New(rand.NewPCG(7, 7)))

	ra, _ := a.Reference(context.Background())
	rb, _ := b.Reference(context.Background())
	assert.Equal(t, ra, rb)
}

func TestSimulated_CanceledContext(t *testing.T) {
	s := settlement.NewSimulated(nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Connect(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
