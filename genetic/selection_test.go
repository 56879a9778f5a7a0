package genetic

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitnessProportionalPick(t *testing.T) {
	sel := &fitnessProportionalSelector{}
	rng := rand.New(rand.NewSource(10))

	// All fitness mass on the last slot: every draw must land there.
	fitness := []float64{0, 0, 5}
	sel.prepare(fitness)
	for i := 0; i < 50; i++ {
		idx, err := sel.pick(fitness, rng)
		require.NoError(t, err)
		assert.Equal(t, 2, idx)
	}
}

func TestFitnessProportionalDistribution(t *testing.T) {
	sel := &fitnessProportionalSelector{}
	rng := rand.New(rand.NewSource(11))

	fitness := []float64{1, 3, 6}
	sel.prepare(fitness)
	counts := make([]int, 3)
	for i := 0; i < 6000; i++ {
		idx, err := sel.pick(fitness, rng)
		require.NoError(t, err)
		counts[idx]++
	}
	assert.Greater(t, counts[2], counts[1])
	assert.Greater(t, counts[1], counts[0])
	assert.InDelta(t, 600, counts[0], 150, "slot 0 carries a tenth of the fitness mass")
}

func TestFitnessProportionalRejectsDegenerateAggregate(t *testing.T) {
	cases := []struct {
		name    string
		fitness []float64
	}{
		{"all zero", []float64{0, 0, 0}},
		{"negative sum", []float64{1, -3}},
		{"nan", []float64{1, math.NaN()}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sel := &fitnessProportionalSelector{}
			rng := rand.New(rand.NewSource(12))
			sel.prepare(tc.fitness)

			_, err := sel.pick(tc.fitness, rng)
			var serr *SelectionError
			require.ErrorAs(t, err, &serr)
		})
	}
}

func TestFitnessProportionalInfiniteAggregate(t *testing.T) {
	sel := &fitnessProportionalSelector{}
	rng := rand.New(rand.NewSource(13))

	// An infinite aggregate is positive, so selection proceeds; the
	// cumulative walk never exceeds the draw and the final slot absorbs it.
	fitness := []float64{1, math.Inf(1), 1}
	sel.prepare(fitness)
	for i := 0; i < 20; i++ {
		idx, err := sel.pick(fitness, rng)
		require.NoError(t, err)
		assert.Equal(t, 2, idx)
	}
}

func TestRankTable(t *testing.T) {
	sel := &rankProportionalSelector{}
	sel.prepare([]float64{5, 1, 3})

	// Ranks ascend with fitness: slot 1 is least fit.
	assert.Equal(t, []int{2, 0, 1}, sel.rank)
	assert.Equal(t, 6.0, sel.total)
}

func TestRankTableTiesKeepSlotOrder(t *testing.T) {
	sel := &rankProportionalSelector{}
	sel.prepare([]float64{2, 2, 1})

	// The tied slots 0 and 1 keep their relative order.
	assert.Equal(t, []int{1, 2, 0}, sel.rank)
}

func TestRankProportionalDistribution(t *testing.T) {
	sel := &rankProportionalSelector{}
	rng := rand.New(rand.NewSource(14))

	// Weights are rank+1: slot 0 carries 3/6, slot 2 carries 2/6, slot 1
	// carries 1/6 of the mass.
	fitness := []float64{5, 1, 3}
	sel.prepare(fitness)
	counts := make([]int, 3)
	for i := 0; i < 6000; i++ {
		idx, err := sel.pick(fitness, rng)
		require.NoError(t, err)
		counts[idx]++
	}
	assert.Greater(t, counts[0], counts[2])
	assert.Greater(t, counts[2], counts[1])
	assert.InDelta(t, 3000, counts[0], 300)
	assert.InDelta(t, 1000, counts[1], 200)
}

func TestRankProportionalFlattensFitnessGaps(t *testing.T) {
	sel := &rankProportionalSelector{}
	rng := rand.New(rand.NewSource(15))

	// A huge fitness outlier still only gets the top rank's share.
	fitness := []float64{1e12, 1, 2}
	sel.prepare(fitness)
	counts := make([]int, 3)
	for i := 0; i < 6000; i++ {
		idx, err := sel.pick(fitness, rng)
		require.NoError(t, err)
		counts[idx]++
	}
	assert.InDelta(t, 3000, counts[0], 300, "the outlier draws rank weight, not raw-fitness weight")
}

func TestTournamentPick(t *testing.T) {
	sel := &tournamentSelector{size: 3}
	rng := rand.New(rand.NewSource(16))

	fitness := []float64{1, 2, 3}
	sel.prepare(fitness)
	counts := make([]int, 3)
	for i := 0; i < 3000; i++ {
		idx, err := sel.pick(fitness, rng)
		require.NoError(t, err)
		counts[idx]++
	}
	assert.Greater(t, counts[2], counts[1])
	assert.Greater(t, counts[1], counts[0])
}

func TestTournamentSizeOneIsUniform(t *testing.T) {
	sel := &tournamentSelector{size: 1}
	rng := rand.New(rand.NewSource(17))

	fitness := []float64{1, 100, 10000}
	counts := make([]int, 3)
	for i := 0; i < 3000; i++ {
		idx, err := sel.pick(fitness, rng)
		require.NoError(t, err)
		counts[idx]++
	}
	for i, c := range counts {
		assert.InDelta(t, 1000, c, 200, "slot %d", i)
	}
}

func TestTournamentToleratesDegenerateFitness(t *testing.T) {
	sel := &tournamentSelector{size: 2}
	rng := rand.New(rand.NewSource(18))

	// Tournament selection only compares, so zero or negative aggregates
	// are fine.
	fitness := []float64{0, 0, -1}
	for i := 0; i < 20; i++ {
		idx, err := sel.pick(fitness, rng)
		require.NoError(t, err)
		assert.Less(t, idx, 3)
	}
}

// The mate-redraw direction differs per strategy: fitness-proportional pairs
// must be distinct, while rank-proportional and tournament pairs redraw
// until both picks agree.
func TestMateRedrawDirections(t *testing.T) {
	fp := &fitnessProportionalSelector{}
	assert.True(t, fp.rejectMate(1, 1))
	assert.False(t, fp.rejectMate(1, 2))

	rp := &rankProportionalSelector{}
	assert.True(t, rp.rejectMate(1, 2))
	assert.False(t, rp.rejectMate(1, 1))

	ts := &tournamentSelector{size: 2}
	assert.True(t, ts.rejectMate(1, 2))
	assert.False(t, ts.rejectMate(1, 1))
}

func TestNewSelector(t *testing.T) {
	sel, err := newSelector(SelectionTournament, 5)
	require.NoError(t, err)
	tourn, ok := sel.(*tournamentSelector)
	require.True(t, ok)
	assert.Equal(t, 5, tourn.size)

	_, err = newSelector("lottery", 5)
	var cerr *ConfigError
	require.ErrorAs(t, err, &cerr)
}
