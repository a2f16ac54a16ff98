// Package twosum finds two distinct positions in a numeric sequence whose
// values add up to a target.
//
// 🚀 What is Two-Sum?
//
//	Given nums and target, return indices (i, j), i < j, such that
//	nums[i] + nums[j] == target. The classic hash-lookup solution scans
//	the input once and remembers every value it has already seen.
//
// ✨ Key features:
//   - single pass: O(n) time, O(n) extra memory
//   - deterministic: the first satisfying pair in scan order wins
//   - duplicates handled ([3,3], 6 → (0,1)): the earliest index of a
//     repeated value is kept
//   - generic over every Go integer and float kind (Number)
//   - dynamic boundary (FindAny) for values of unknown shape, e.g. decoded JSON
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/algokit/twosum"
//
//	p, ok := twosum.Find([]int{2, 7, 11, 15}, 9)
//	if ok {
//	  fmt.Println(p.I, p.J) // 0 1
//	}
//
//	p, ok, err := twosum.FindAny(decoded, 9)
//	if errors.Is(err, twosum.ErrInvalidArgument) {
//	  // decoded was not a slice or array
//	}
//
// Invalid elements:
//
//	NaN and ±Inf are not valid finite numbers; FindAny additionally treats
//	any element that is not an integer or float as invalid, and so is an
//	integer that float64 cannot represent exactly (|x| > 2^53 in general).
//	FindAny accepts a pair only when its sum equals target exactly, while
//	Find sums in the element type, where integers wrap. Invalid elements
//	are skipped without aborting the scan and keep their position, so
//	returned indices always refer to the original input.
//
// Performance:
//
//   - Time:   O(n)
//   - Memory: O(n) worst case (no pair, or pair closed by the last element)
package twosum
