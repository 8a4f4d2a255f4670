// Package coinchange solves the unbounded minimum-coin change problem with
// bottom-up tabulation and reconstructs one optimal multiset of coins.
//
// 💰 What:
//
//	Given positive denominations (unlimited supply of each) and a target amount,
//	find the fewest coins that sum exactly to the target and how many of each
//	denomination an optimal answer uses.
//
// Algorithm:
//  1. dp[0] = 0, dp[a] = impossible for a = 1..target.
//  2. For each denomination c, for a = c..target ascending:
//     if dp[a-c] is possible and dp[a-c]+1 < dp[a], set dp[a] = dp[a-c]+1 and parent[a] = c.
//  3. dp[target] impossible → the result is infeasible (not an error).
//  4. Otherwise walk parent[] from target down to 0, counting each coin used.
//
// Guarantees for feasible results:
//
//	Σ coin·Usage[coin] == target and Σ Usage[coin] == Count.
//
// Denominations must be strictly positive. A zero or negative coin is rejected with
// ErrInvalidDenomination before any table is built.
//
// Complexity:
//
//   - Time:   O(target · len(coins))
//   - Memory: O(target); targets above MaxTarget are rejected with ErrTargetTooLarge.
package coinchange
