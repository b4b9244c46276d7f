package dealer

import (
	"math/rand"
	"sync"
	"time"
)

// Picker chooses which seat deals first in a new match
//
//go:generate mockgen -package=mocks -destination=mocks/mock_picker.go github.com/KirkDiggler/tysiac/internal/dealer Picker
type Picker interface {
	// PickSeat returns a seat index in [0, playerCount)
	PickSeat(playerCount int) int
}

// Random picks seats uniformly at random
type Random struct {
	mu     sync.Mutex
	random *rand.Rand
}

// Config for the random picker
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new random seat picker
func New(cfg *Config) *Random {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)
	random := rand.New(source)

	return &Random{
		random: random,
	}
}

// PickSeat returns a uniformly distributed seat index in [0, playerCount)
func (r *Random) PickSeat(playerCount int) int {
	if playerCount < 1 {
		return 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.random.Intn(playerCount)
}
