package perturb

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// NoiseScale is the upper bound of a Noise draw.
const NoiseScale = 0.01

// Generator produces reproducible draws. It is not safe for concurrent use.
type Generator struct {
	rng   *rand.Rand
	unit  distuv.Uniform
	noise distuv.Uniform
}

// New creates a Generator seeded with seed.
func New(seed uint64) *Generator {
	src := rand.NewSource(seed)
	return &Generator{
		rng:   rand.New(src),
		unit:  distuv.Uniform{Min: 0, Max: 1, Src: src},
		noise: distuv.Uniform{Min: 0, Max: NoiseScale, Src: src},
	}
}

// SeedFor derives a unit seed from the run seed and the unit's kind and id.
func SeedFor(base uint64, kind, id string) uint64 {
	d := xxhash.New()
	d.WriteString(strconv.FormatUint(base, 10))
	d.WriteString("/")
	d.WriteString(kind)
	d.WriteString("/")
	d.WriteString(id)
	return d.Sum64()
}

// Unit draws uniformly from [0, 1).
func (g *Generator) Unit() float64 {
	return g.unit.Rand()
}

// Noise draws uniformly from [0, NoiseScale).
func (g *Generator) Noise() float64 {
	return g.noise.Rand()
}

// Choice reports whether a fresh unit draw exceeds threshold.
func (g *Generator) Choice(threshold float64) bool {
	return g.Unit() > threshold
}

// IntRange draws an integer from [min, max], both inclusive.
func (g *Generator) IntRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + g.rng.Intn(max-min+1)
}
