package mhsio

import (
	"math/rand"
	"sort"
)

// GeneratorOption customizes the RNG a random generator draws from.
type GeneratorOption func(*generatorConfig)

type generatorConfig struct {
	rng *rand.Rand
}

// WithSeed seeds the generator's RNG deterministically.
func WithSeed(seed int64) GeneratorOption {
	return func(cfg *generatorConfig) { cfg.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand supplies an explicit RNG, overriding WithSeed if both are given.
func WithRand(r *rand.Rand) GeneratorOption {
	if r == nil {
		panic("mhsio: WithRand(nil)")
	}
	return func(cfg *generatorConfig) { cfg.rng = r }
}

func newGeneratorConfig(opts ...GeneratorOption) generatorConfig {
	cfg := generatorConfig{rng: rand.New(rand.NewSource(1))}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// GenerateRandom draws amountConflicts conflict sets, each up to
// maxCardinality elements chosen (with repetition, deduplicated by set
// semantics) from [1, maxCardinality]. A draw can land on the same element
// more than once, so the resulting set may be smaller than maxCardinality —
// this mirrors the reference generator exactly, favoring small dense
// conflicts over uniform-cardinality ones.
func GenerateRandom(amountConflicts, maxCardinality int, opts ...GeneratorOption) [][]int {
	cfg := newGeneratorConfig(opts...)

	conflicts := make([][]int, amountConflicts)
	for i := 0; i < amountConflicts; i++ {
		seen := make(map[int]struct{}, maxCardinality)
		for j := 0; j < maxCardinality; j++ {
			seen[cfg.rng.Intn(maxCardinality)+1] = struct{}{}
		}
		set := make([]int, 0, len(seen))
		for e := range seen {
			set = append(set, e)
		}
		sort.Ints(set)
		conflicts[i] = set
	}
	return conflicts
}

// GenerateLinear builds the linear(n, step) conflict family: n overlapping
// windows of step consecutive integers over a shared numbering, e.g.
// GenerateLinear(4, 3) = [{1,2,3},{3,4,5},{5,6,7},{7,8,9}]. Each window
// shares its first element with the previous window's last, chaining every
// conflict to its neighbor and stressing node reuse and pruning.
func GenerateLinear(n, step int) [][]int {
	conflicts := make([][]int, n)
	for i := 0; i < n; i++ {
		start := i*(step-1) + 1
		window := make([]int, step)
		for j := 0; j < step; j++ {
			window[j] = start + j
		}
		conflicts[i] = window
	}
	return conflicts
}
