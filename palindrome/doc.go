// Package palindrome reports whether text reads the same forwards and
// backwards once case and punctuation are ignored.
//
// 🚀 What counts as a palindrome here?
//
//	The input is normalized first: lower-cased, then reduced to the ASCII
//	letters a–z and digits 0–9 in their original order. Everything else
//	(spaces, punctuation, accented letters, emoji) is dropped.
//	  "A man, a plan, a canal: Panama" → "amanaplanacanalpanama" → true
//	  "café"                           → "caf"                   → false
//
// ✨ Key features:
//   - two-pointer scan with early exit on the first mismatch
//   - empty and single-character normalized strings are palindromes
//   - Normalize is exported and idempotent
//   - dynamic boundary (Check) rejects non-string values with ErrInvalidArgument
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/algokit/palindrome"
//
//	palindrome.IsPalindrome("Was it a car or a cat I saw?") // true
//
//	ok, err := palindrome.Check(v)
//	if errors.Is(err, palindrome.ErrInvalidArgument) {
//	  // v was not a string
//	}
//
// Performance:
//
//   - Time:   O(n)
//   - Memory: O(n) for the normalized copy
package palindrome
