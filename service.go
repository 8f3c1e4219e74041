package drills

import (
	"fmt"
	"math/rand/v2"
	"sync"
)

// DrillsService implements the operations served over HTTP.
// It is safe for concurrent use.
type DrillsService struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewDrillsService creates a service that draws lottery numbers from rng.
// rng must not be nil; use NewRand for a seeded source.
func NewDrillsService(rng *rand.Rand) (*DrillsService, error) {
	if rng == nil {
		return nil, fmt.Errorf("random source cannot be nil: %w", ErrInvalidInput)
	}

	return &DrillsService{rng: rng}, nil
}

func (s *DrillsService) Greet(req GreetingRequest) string {
	return Greet(req)
}

func (s *DrillsService) Sum(req SumRequest) SumResult {
	return Sum(req)
}

func (s *DrillsService) Cipher(req CipherRequest) string {
	return Encode(req.Text, req.Shift)
}

// Lotto draws a fresh set of winning numbers and checks req against it.
func (s *DrillsService) Lotto(req LottoRequest) LottoResult {
	s.mu.Lock()
	winning := DrawWinningNumbers(s.rng)
	s.mu.Unlock()

	return CheckLotto(req.Guesses, winning)
}
