// Package settlement is the boundary to the external coin network. Only a
// simulated provider exists today; a real wallet handshake plugs in behind Provider.
package settlement

import (
	"context"
	"math/rand/v2"
	"strings"
	"sync"
)

//go:generate mockgen -source=settlement.go -destination=provider_mock.go -package=settlement
type Provider interface {
	// Reference returns an opaque settlement reference for a new transaction.
	Reference(ctx context.Context) (string, error)
	// Connect performs the wallet handshake and returns the wallet address.
	Connect(ctx context.Context) (string, error)
}

const (
	addressPrefix = "ALGO"
	suffixLen     = 13
	alphabet      = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// Simulated produces random ALGO-prefixed identifiers and never fails.
type Simulated struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewSimulated(rnd *rand.Rand) *Simulated {
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return &Simulated{rnd: rnd}
}

func (s *Simulated) Reference(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	return s.identifier(), nil
}

func (s *Simulated) Connect(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	return s.identifier(), nil
}

func (s *Simulated) identifier() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sb strings.Builder

	sb.Grow(len(addressPrefix) + suffixLen)
	sb.WriteString(addressPrefix)

	for range suffixLen {
		sb.WriteByte(alphabet[s.rnd.IntN(len(alphabet))])
	}

	return sb.String()
}
