package sim

import (
	"hash/fnv"
	"math/rand"
)

// RNG subsystem names
const (
	SubsystemField    = "field"
	SubsystemObjects  = "objects"
	SubsystemRecorder = "recorder"
)

// PartitionedRNG hands out one deterministic *rand.Rand per subsystem so that,
// for a fixed seed, spawning objects never shifts the field lattice or the
// measurement samples.
//
// Derived seed: masterSeed XOR fnv1a64(subsystem).
type PartitionedRNG struct {
	seed       int64
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a master seed.
func NewPartitionedRNG(seed int64) *PartitionedRNG {
	return &PartitionedRNG{
		seed:       seed,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns the cached RNG for name, creating it on first use.
// Never returns nil.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}
	rng := rand.New(rand.NewSource(p.seed ^ fnv1a64(name)))
	p.subsystems[name] = rng
	return rng
}

func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
