package coinchange

import (
	"fmt"
	"math"
)

// unreachable marks a table cell no combination of coins can form.
const unreachable = math.MaxInt

// Solve computes the minimum number of coins from coins (unlimited supply of each)
// that sum to target, and one optimal breakdown.
//
// Validation happens before any table is allocated:
//   - len(coins) == 0 → ErrNoDenominations
//   - any coin <= 0   → ErrInvalidDenomination
//   - target < 0      → ErrNegativeTarget
//   - target > MaxTarget → ErrTargetTooLarge
//
// An unreachable target returns a Result with Feasible == false and Count == Infeasible.
// Duplicate denominations are accepted and treated as one.
//
// Example:
//
//	res, err := Solve([]int{1, 2, 5}, 11)
//	// res.Count == 3, res.Usage == map[int]int{1: 1, 2: 0, 5: 2}
func Solve(coins []int, target int, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	denoms, err := validate(coins, target)
	if err != nil {
		return Result{}, err
	}

	// 1) dp[0] = 0, everything else unreachable until proven otherwise.
	dp := make([]int, target+1)
	parent := make([]int, target+1)
	for a := 1; a <= target; a++ {
		dp[a] = unreachable
	}

	// 2) Unbounded sweep: dp[a-c] may already include c, so each coin can repeat.
	for _, c := range denoms {
		for a := c; a <= target; a++ {
			if dp[a-c] == unreachable {
				continue
			}
			if dp[a-c]+1 < dp[a] {
				dp[a] = dp[a-c] + 1
				parent[a] = c
			}
		}
	}

	res := Result{
		Target:        target,
		Denominations: denoms,
		Usage:         make(map[int]int, len(denoms)),
	}
	if cfg.ReturnTable {
		res.Table = make([]int, len(dp))
		for a, n := range dp {
			if n == unreachable {
				n = Infeasible
			}
			res.Table[a] = n
		}
		res.Parent = parent
	}

	// 3) Unreachable target is a normal outcome.
	if dp[target] == unreachable {
		res.Count = Infeasible
		return res, nil
	}

	// 4) Walk the parent pointers back to zero.
	for _, c := range denoms {
		res.Usage[c] = 0
	}
	for cur := target; cur > 0; {
		c := parent[cur]
		if c <= 0 {
			panic(fmt.Sprintf("coinchange: no parent recorded for reachable amount %d", cur))
		}
		res.Usage[c]++
		cur -= c
	}
	res.Count = dp[target]
	res.Feasible = true

	return res, nil
}

// MinCoins returns only the minimum coin count, or Infeasible.
func MinCoins(coins []int, target int) (int, error) {
	res, err := Solve(coins, target)
	if err != nil {
		return 0, err
	}

	return res.Count, nil
}

// validate checks the inputs and returns the distinct denominations in input order.
func validate(coins []int, target int) ([]int, error) {
	if len(coins) == 0 {
		return nil, ErrNoDenominations
	}
	seen := make(map[int]bool, len(coins))
	denoms := make([]int, 0, len(coins))
	for i, c := range coins {
		if c <= 0 {
			return nil, fmt.Errorf("%w: coins[%d] = %d", ErrInvalidDenomination, i, c)
		}
		if !seen[c] {
			seen[c] = true
			denoms = append(denoms, c)
		}
	}
	if target < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeTarget, target)
	}
	if target > MaxTarget {
		return nil, fmt.Errorf("%w: %d exceeds %d", ErrTargetTooLarge, target, MaxTarget)
	}

	return denoms, nil
}

// ToCents converts a currency amount to whole cents, rounding half away from zero
// (5.75 → 575). Negative, NaN, infinite and absurdly large amounts fail with ErrBadAmount.
func ToCents(amount float64) (int, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return 0, fmt.Errorf("%w: %v", ErrBadAmount, amount)
	}
	cents := math.Round(amount * 100)
	if cents > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %v is too large", ErrBadAmount, amount)
	}

	return int(cents), nil
}
