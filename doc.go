// Package algokit is a small, dependency-light collection of classic
// algorithm exercises, written as plain pure-Go functions.
//
// 🚀 What is in algokit?
//
//	• Two-Sum: first pair of positions whose values add up to a target
//	• Palindrome: case- and punctuation-insensitive palindrome check
//
// ✨ Why algokit?
//
//   - Linear time, single pass, no hidden state
//   - Deterministic: identical input → identical result
//   - Safe for concurrent use: every call owns its working storage
//   - Typed generic APIs plus `any`-typed entry points that reject
//     ill-typed input with errors.Is-matchable sentinels
//
// Packages:
//
//	twosum/      — Find (generic), FindAny (dynamic boundary), Pair
//	palindrome/  — IsPalindrome, Normalize, Check (dynamic boundary)
//	cmd/algokit/ — command-line front-end (twosum, palindrome)
//
// Quick example:
//
//	p, ok := twosum.Find([]int{2, 7, 11, 15}, 9)   // {0 1}, true
//	palindrome.IsPalindrome("No 'x' in Nixon")      // true
//
//	go get github.com/katalvlaran/algokit
package algokit
