package random

import (
	"math/rand"
	"sync"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_random.go github.com/KirkDiggler/flip7/internal/common/random Picker

// Picker picks random indexes
type Picker interface {
	// Intn returns an index in [0, n)
	Intn(n int) int
}

// Config for the default picker
type Config struct {
	// Optional seed for testing
	Seed int64
}

// DefaultPicker implements the Picker interface with math/rand
type DefaultPicker struct {
	mu     sync.Mutex
	random *rand.Rand
}

// New creates a new picker
func New(cfg *Config) *DefaultPicker {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &DefaultPicker{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Intn returns an index in [0, n), 0 when n is not positive
func (p *DefaultPicker) Intn(n int) int {
	if n < 1 {
		return 0
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.random.Intn(n)
}
