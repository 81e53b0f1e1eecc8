package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/recgo/model"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Float32 returns, as a float32, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float32() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float32()
}

// UniformVectors generates num vectors with values uniform in [0, 1).
func (r *RNG) UniformVectors(num, dimension int) [][]float32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	vectors := make([][]float32, num)
	for i := range vectors {
		vectors[i] = make([]float32, dimension)
		for j := range vectors[i] {
			vectors[i][j] = r.rand.Float32()
		}
	}

	return vectors
}

// UniformItems generates num items with uniform feature vectors and
// sequential IDs starting at 1.
func (r *RNG) UniformItems(num, dimension int) []model.Item {
	vectors := r.UniformVectors(num, dimension)

	items := make([]model.Item, num)
	for i, v := range vectors {
		items[i] = model.NewItem(model.ItemID(i+1), v)
	}

	return items
}
