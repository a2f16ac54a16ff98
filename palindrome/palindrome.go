package palindrome

import (
	"fmt"
	"reflect"
	"strings"
)

// IsPalindrome — two-pointer check over the normalized input.
//
// Algorithm Outline:
//  1. s' := Normalize(s).
//  2. If len(s') <= 1 → true.
//  3. l, r := 0, len(s')-1; while l < r:
//     if s'[l] != s'[r] → false; l++, r--.
//  4. → true.
//
// s' is pure ASCII, so byte indexing is rune indexing.
//
// Complexity:
//
//	Time   = O(n)
//	Memory = O(n)
func IsPalindrome(s string) bool {
	cleaned := Normalize(s)
	if len(cleaned) <= 1 {
		return true
	}

	for l, r := 0, len(cleaned)-1; l < r; l, r = l+1, r-1 {
		if cleaned[l] != cleaned[r] {
			return false
		}
	}

	return true
}

// Check is the dynamically typed counterpart of IsPalindrome.
// Values whose underlying kind is string (including named string types) are
// accepted; anything else, nil included, yields ErrInvalidArgument.
func Check(v any) (bool, error) {
	if s, ok := v.(string); ok {
		return IsPalindrome(s), nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.String {
		return false, fmt.Errorf("%w: input must be a string, got %T", ErrInvalidArgument, v)
	}

	return IsPalindrome(rv.String()), nil
}

// Normalize lower-cases s and keeps only ASCII letters and digits.
//
// Lower-casing runs before filtering, so a non-ASCII rune whose lower-case
// form is ASCII survives as that letter (KELVIN SIGN U+212A → 'k').
// Normalize(Normalize(s)) == Normalize(s) for every s.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if ('a' <= r && r <= 'z') || ('0' <= r && r <= '9') {
			b.WriteByte(byte(r))
		}
	}

	return b.String()
}
