package main

import (
	"math/rand/v2"
	"time"
)

// NewSceneRand returns the random source used by the generation pass and
// the gallery solver. A zero seed picks a time based one; any other seed
// makes both fully reproducible.
func NewSceneRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
}
