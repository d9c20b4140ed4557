package maze

import (
	"math/rand"
)

// Picker chooses one of n candidates. Pick must return a value in [0, n) for n > 0.
type Picker interface {
	Pick(n int) int
}

var _ Picker = &RandPicker{}

// RandPicker is a Picker backed by a seeded math/rand source.
type RandPicker struct {
	seed int64
	rnd  *rand.Rand
}

// NewRandPicker returns a picker whose sequence is fully determined by seed.
func NewRandPicker(seed int64) *RandPicker {
	return &RandPicker{
		seed: seed,
		rnd:  rand.New(rand.NewSource(seed)),
	}
}

// Pick implements Picker.
func (r *RandPicker) Pick(n int) int {
	return r.rnd.Intn(n)
}

// Seed returns the seed the picker was created with.
func (r *RandPicker) Seed() int64 {
	return r.seed
}
