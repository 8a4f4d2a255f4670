package coinchange_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dsakit/coinchange"
)

func TestSolve_Feasible(t *testing.T) {
	res, err := coinchange.Solve([]int{1, 2, 5}, 11)
	require.NoError(t, err)
	assert.True(t, res.Feasible)
	assert.Equal(t, 3, res.Count)
	assert.Equal(t, map[int]int{1: 1, 2: 0, 5: 2}, res.Usage)
	assert.Equal(t, 11, res.Total())
	assert.Nil(t, res.Table, "table is only kept on request")
}

func TestSolve_Infeasible(t *testing.T) {
	res, err := coinchange.Solve([]int{2}, 3)
	require.NoError(t, err, "infeasible is a result, not an error")
	assert.False(t, res.Feasible)
	assert.Equal(t, coinchange.Infeasible, res.Count)
	assert.Empty(t, res.Usage)
}

func TestSolve_ZeroTarget(t *testing.T) {
	res, err := coinchange.Solve([]int{5, 10}, 0)
	require.NoError(t, err)
	assert.True(t, res.Feasible)
	assert.Equal(t, 0, res.Count)
	assert.Equal(t, map[int]int{5: 0, 10: 0}, res.Usage)
}

func TestSolve_Validation(t *testing.T) {
	_, err := coinchange.Solve(nil, 5)
	assert.ErrorIs(t, err, coinchange.ErrNoDenominations)

	_, err = coinchange.Solve([]int{1, 0, 5}, 5)
	assert.ErrorIs(t, err, coinchange.ErrInvalidDenomination)

	_, err = coinchange.Solve([]int{-2}, 5)
	assert.ErrorIs(t, err, coinchange.ErrInvalidDenomination)

	_, err = coinchange.Solve([]int{1}, -1)
	assert.ErrorIs(t, err, coinchange.ErrNegativeTarget)

	_, err = coinchange.Solve([]int{1}, math.MaxInt)
	assert.ErrorIs(t, err, coinchange.ErrTargetTooLarge)

	_, err = coinchange.Solve([]int{1}, coinchange.MaxTarget+1)
	assert.ErrorIs(t, err, coinchange.ErrTargetTooLarge)

	_, err = coinchange.MinCoins([]int{1}, math.MaxInt)
	assert.ErrorIs(t, err, coinchange.ErrTargetTooLarge)
}

func TestSolve_GreedyFails(t *testing.T) {
	// Greedy would take 4+1+1; the optimum is 3+3.
	res, err := coinchange.Solve([]int{1, 3, 4}, 6)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Count)
	assert.Equal(t, map[int]int{1: 0, 3: 2, 4: 0}, res.Usage)
}

func TestSolve_DuplicatesAndOrder(t *testing.T) {
	res, err := coinchange.Solve([]int{5, 1, 5, 2}, 12)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 1, 2}, res.Denominations)
	assert.Equal(t, 3, res.Count)
	assert.Equal(t, []coinchange.CoinCount{{Coin: 5, Count: 2}, {Coin: 1, Count: 0}, {Coin: 2, Count: 1}}, res.Breakdown())
}

func TestSolve_WithTable(t *testing.T) {
	res, err := coinchange.Solve([]int{2, 3}, 7, coinchange.WithTable())
	require.NoError(t, err)
	// amount:                 0  1   2  3  4  5  6  7
	assert.Equal(t, []int{0, -1, 1, 1, 2, 2, 2, 3}, res.Table)
	require.Len(t, res.Parent, 8)
	assert.Equal(t, 0, res.Parent[0])
	assert.Equal(t, 0, res.Parent[1], "unreachable amounts have no parent")
	assert.Equal(t, 3, res.Count)
}

// TestSolve_ReconstructionConsistency checks Σ coin·count == target and
// Σ count == Count on every feasible pair of a small grid, and compares the
// count against a memoized top-down recursion.
func TestSolve_ReconstructionConsistency(t *testing.T) {
	sets := [][]int{
		{1}, {2}, {3, 7}, {1, 2, 5}, {2, 5, 10}, {1, 3, 4}, {4, 6, 9}, {7, 5, 3, 1},
	}
	for _, coins := range sets {
		for target := 0; target <= 40; target++ {
			res, err := coinchange.Solve(coins, target)
			require.NoError(t, err)

			want := topDown(coins, target, map[int]int{})
			require.Equal(t, want, res.Count, "coins=%v target=%d", coins, target)
			if !res.Feasible {
				continue
			}

			value, count := 0, 0
			for c, n := range res.Usage {
				value += c * n
				count += n
			}
			assert.Equal(t, target, value, "coins=%v target=%d", coins, target)
			assert.Equal(t, res.Count, count, "coins=%v target=%d", coins, target)
		}
	}
}

// topDown returns the minimum coin count by memoized recursion, or Infeasible.
// It is an independent formulation used to cross-check the tabulation.
func topDown(coins []int, target int, memo map[int]int) int {
	if target == 0 {
		return 0
	}
	if v, ok := memo[target]; ok {
		return v
	}
	best := math.MaxInt
	for _, c := range coins {
		if c > target {
			continue
		}
		if sub := topDown(coins, target-c, memo); sub != coinchange.Infeasible && sub+1 < best {
			best = sub + 1
		}
	}
	if best == math.MaxInt {
		best = coinchange.Infeasible
	}
	memo[target] = best

	return best
}

func TestMinCoins(t *testing.T) {
	n, err := coinchange.MinCoins([]int{1, 2, 5}, 11)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = coinchange.MinCoins([]int{2}, 3)
	require.NoError(t, err)
	assert.Equal(t, coinchange.Infeasible, n)

	_, err = coinchange.MinCoins([]int{0}, 3)
	assert.ErrorIs(t, err, coinchange.ErrInvalidDenomination)
}

func TestDefaultDenominations(t *testing.T) {
	cents, err := coinchange.ToCents(5.75)
	require.NoError(t, err)
	assert.Equal(t, 575, cents)

	res, err := coinchange.Solve(coinchange.DefaultDenominations, cents)
	require.NoError(t, err)
	// $5 + 50¢ + 20¢ + 5¢
	assert.Equal(t, 4, res.Count)
	assert.Equal(t, 1, res.Usage[500])
	assert.Equal(t, 1, res.Usage[50])
	assert.Equal(t, 1, res.Usage[20])
	assert.Equal(t, 1, res.Usage[5])
	assert.Len(t, res.Breakdown(), len(coinchange.DefaultDenominations))
}

func TestToCents(t *testing.T) {
	cases := []struct {
		in   float64
		want int
	}{
		{0, 0},
		{0.01, 1},
		{1.1, 110},
		{19.99, 1999},
		{0.125, 13},
	}
	for _, tc := range cases {
		got, err := coinchange.ToCents(tc.in)
		require.NoError(t, err, "%v", tc.in)
		assert.Equal(t, tc.want, got, "%v", tc.in)
	}

	for _, bad := range []float64{-0.01, math.NaN(), math.Inf(1), 1e12} {
		_, err := coinchange.ToCents(bad)
		assert.ErrorIs(t, err, coinchange.ErrBadAmount, "%v", bad)
	}
}
