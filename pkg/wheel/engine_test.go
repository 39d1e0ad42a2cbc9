// pkg/wheel/engine_test.go

package wheel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_IndexInRange(t *testing.T) {
	options := OptionList{"Pizza", "Sushi", "Tacos"}
	engine := NewEngine()

	for i := 0; i < 100; i++ {
		sel, err := engine.Select(options)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, sel.Index, 0)
		assert.Less(t, sel.Index, len(options))
		assert.Equal(t, options[sel.Index], sel.Text)
	}
}

func TestSelect_TooFewOptions(t *testing.T) {
	engine := NewEngine()

	_, err := engine.Select(OptionList{"only one"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 2")

	_, err = engine.Select(nil)
	assert.Error(t, err)
}

func TestSpin_SeedReproducibility(t *testing.T) {
	options := OptionList{"Pizza", "Sushi", "Tacos", "Ramen"}

	first, err := NewEngine(WithSeed(42)).Spin(options)
	require.NoError(t, err)
	second, err := NewEngine(WithSeed(42)).Spin(options)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSpin_DrawSequence(t *testing.T) {
	options := OptionList{"Pizza", "Sushi", "Tacos"}

	result, err := NewEngine(WithSeed(7)).Spin(options)
	require.NoError(t, err)
	require.Len(t, result.Phases, DefaultPhases)

	// Spin draws phases then the final selection from one generator, so a
	// fresh engine with the same seed replays the identical sequence.
	replay := NewEngine(WithSeed(7))
	for i := 0; i < DefaultPhases; i++ {
		sel, err := replay.Select(options)
		require.NoError(t, err)
		assert.Equal(t, result.Phases[i], sel)
	}
	sel, err := replay.Select(options)
	require.NoError(t, err)
	assert.Equal(t, result.Final, sel)
}

func TestSpin_WithPhases(t *testing.T) {
	options := OptionList{"Yes", "No"}

	result, err := NewEngine(WithSeed(1), WithPhases(0)).Spin(options)
	require.NoError(t, err)
	assert.Empty(t, result.Phases)
	assert.Contains(t, []string{"Yes", "No"}, result.Final.Text)

	result, err = NewEngine(WithSeed(1), WithPhases(9)).Spin(options)
	require.NoError(t, err)
	assert.Len(t, result.Phases, 9)
}

// TestSelect_UniformDistribution runs a chi-square goodness-of-fit test over
// a fixed-seed sample. Critical value 16.266 is the 0.999 quantile for 3
// degrees of freedom.
func TestSelect_UniformDistribution(t *testing.T) {
	options := OptionList{"A", "B", "C", "D"}
	engine := NewEngine(WithSeed(1))

	const trials = 10000
	counts := make([]int, len(options))
	for i := 0; i < trials; i++ {
		sel, err := engine.Select(options)
		require.NoError(t, err)
		counts[sel.Index]++
	}

	expected := float64(trials) / float64(len(options))
	var chiSquare float64
	for i, observed := range counts {
		assert.Positive(t, observed, "index %d never selected", i)
		diff := float64(observed) - expected
		chiSquare += diff * diff / expected
	}
	assert.Less(t, chiSquare, 16.266, "selection frequencies deviate from uniform: %v", counts)
}
