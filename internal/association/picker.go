package association

import (
	"math/rand/v2"
	"sync"
)

// AdjectivePicker chooses an index in [0, n). n is always positive.
type AdjectivePicker interface {
	Pick(n int) int
}

// RandomPicker draws from a seeded PCG source. Safe for concurrent use.
type RandomPicker struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomPicker creates a picker. The same seed yields the same sequence.
func NewRandomPicker(seed uint64) *RandomPicker {
	return &RandomPicker{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (p *RandomPicker) Pick(n int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rng.IntN(n)
}

// FixedPicker always picks the same index, wrapped into range.
type FixedPicker int

func (f FixedPicker) Pick(n int) int {
	i := int(f) % n
	if i < 0 {
		i += n
	}
	return i
}

// PickerFunc adapts a function to AdjectivePicker.
type PickerFunc func(n int) int

func (f PickerFunc) Pick(n int) int { return f(n) }
