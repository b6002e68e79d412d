// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRNGOptions verifies that RNG options configure the rng field correctly,
// including reproducibility with WithSeed and the nil panic of WithRand.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	// 1. By default, rng should be nil (deterministic behavior)
	require.Nil(t, newBuilderConfig().rng)

	// 2. WithRand should set rng
	expRNG := rand.New(rand.NewSource(123))
	require.Same(t, expRNG, newBuilderConfig(WithRand(expRNG)).rng)

	// 3. WithRand(nil) is a programmer error
	require.Panics(t, func() { WithRand(nil) })

	// 4. WithSeed should produce reproducible RNG
	cfgSeed1 := newBuilderConfig(WithSeed(42))
	cfgSeed2 := newBuilderConfig(WithSeed(42))
	assert.Equal(t, cfgSeed1.rng.Int63(), cfgSeed2.rng.Int63())
	assert.Equal(t, cfgSeed1.rng.Int63(), cfgSeed2.rng.Int63())
}

// TestWeightFnOptions verifies that weight function options apply correctly
// and override in order.
func TestWeightFnOptions(t *testing.T) {
	t.Parallel()

	const constVal = 9.0
	const min, max = 2.0, 4.0
	rng := rand.New(rand.NewSource(1))

	// 1. Default configuration: weightFn should be DefaultWeightFn
	assert.Equal(t, DefaultEdgeWeight, newBuilderConfig().weightFn(nil))

	// 2. WithConstantWeight should override to constant value
	cfgConst := newBuilderConfig(WithConstantWeight(constVal))
	assert.Equal(t, constVal, cfgConst.weightFn(nil))
	assert.Equal(t, constVal, cfgConst.weightFn(rng))

	// 3. WithUniformWeight: nil rng yields default, seeded rng yields [min,max)
	cfgUni := newBuilderConfig(WithUniformWeight(min, max))
	assert.Equal(t, DefaultEdgeWeight, cfgUni.weightFn(nil))
	val := cfgUni.weightFn(rng)
	assert.GreaterOrEqual(t, val, min)
	assert.Less(t, val, max)

	// 4. Override order: last option wins
	cfgOverride := newBuilderConfig(WithUniformWeight(min, max), WithConstantWeight(1))
	assert.Equal(t, 1.0, cfgOverride.weightFn(rng))

	// 5. Nil WeightFn is a programmer error
	require.Panics(t, func() { WithWeightFn(nil) })
}
