package coinchange

import (
	"errors"
)

// Infeasible is the Count reported when the target cannot be formed.
const Infeasible = -1

// MaxTarget is the largest target Solve accepts. The DP keeps two int slices
// of length target+1, so this bounds memory at about 256 MiB.
const MaxTarget = 1 << 24

// Sentinel errors for invalid input. An unreachable target is not an error.
var (
	// ErrInvalidDenomination indicates a zero or negative coin value.
	ErrInvalidDenomination = errors.New("coinchange: denomination must be positive")

	// ErrNoDenominations indicates an empty denomination set.
	ErrNoDenominations = errors.New("coinchange: no denominations")

	// ErrNegativeTarget indicates a target below zero.
	ErrNegativeTarget = errors.New("coinchange: target must be non-negative")

	// ErrTargetTooLarge indicates a target above MaxTarget.
	ErrTargetTooLarge = errors.New("coinchange: target too large")

	// ErrBadAmount indicates a currency amount that cannot be converted to cents.
	ErrBadAmount = errors.New("coinchange: invalid amount")
)

// DefaultDenominations is a common currency set in cents:
// 1¢, 5¢, 10¢, 20¢, 50¢, $1, $5, $10, $20, $50, $100.
var DefaultDenominations = []int{1, 5, 10, 20, 50, 100, 500, 1000, 2000, 5000, 10000}

// Options configures Solve.
//
// Fields:
//   - ReturnTable — if true, Result.Table and Result.Parent hold the filled DP arrays.
type Options struct {
	ReturnTable bool
}

// Option represents a functional option for Solve.
type Option func(*Options)

// WithTable keeps the DP and parent arrays in the result.
func WithTable() Option {
	return func(o *Options) {
		o.ReturnTable = true
	}
}

// DefaultOptions returns Options with ReturnTable disabled.
func DefaultOptions() Options {
	return Options{ReturnTable: false}
}

// CoinCount is how many times one denomination is used.
type CoinCount struct {
	Coin  int
	Count int
}

// Result is the outcome of Solve.
type Result struct {
	// Target is the amount that was asked for.
	Target int

	// Count is the minimum number of coins, or Infeasible.
	Count int

	// Feasible reports whether Target can be formed at all.
	Feasible bool

	// Usage maps every distinct denomination to the number of times it is used
	// in one optimal answer. Unused denominations map to 0. Empty when infeasible.
	Usage map[int]int

	// Denominations lists the distinct denominations in input order.
	Denominations []int

	// Table[a] is the minimum coin count for amount a (Infeasible when impossible)
	// and Parent[a] the last coin applied to reach it (0 for none).
	// Both are nil unless WithTable was given.
	Table  []int
	Parent []int
}

// Breakdown returns the usage counts in denomination order, unused coins included.
func (r Result) Breakdown() []CoinCount {
	out := make([]CoinCount, 0, len(r.Denominations))
	for _, c := range r.Denominations {
		out = append(out, CoinCount{Coin: c, Count: r.Usage[c]})
	}

	return out
}

// Total returns Σ coin·count over Usage. For feasible results it equals Target.
func (r Result) Total() int {
	sum := 0
	for c, n := range r.Usage {
		sum += c * n
	}

	return sum
}
