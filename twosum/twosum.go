package twosum

import (
	"fmt"
	"math"
	"reflect"
)

// Find — single-pass hash lookup for two values summing to target.
//
// Algorithm Outline:
//  1. seen := empty map value → first index.
//  2. For i, v in nums (skipping NaN/±Inf):
//     if k, ok := seen[target-v]; ok && nums[k]+v == target → return (k, i).
//     if v not in seen → seen[v] = i.
//  3. Return (Pair{}, false).
//
// seen is filled strictly after the lookup for index i, so k < i always
// holds and an element is never paired with itself.
//
// The sum is T arithmetic. Integer types wrap: Find([]uint8{200, 60}, 4)
// returns (0, 1) because 200+60 overflows to 4. For floats a complement hit
// is confirmed by the addition, since target-v may round onto a value that
// does not add back to target.
//
// Complexity:
//
//	Time   = O(n)
//	Memory = O(n)
func Find[T Number](nums []T, target T) (Pair, bool) {
	if len(nums) == 0 {
		return Pair{}, false
	}

	seen := make(map[T]int, len(nums))
	for i, v := range nums {
		if !finite(v) {
			continue
		}
		if k, ok := seen[target-v]; ok && nums[k]+v == target {
			return Pair{I: k, J: i}, true
		}
		if _, dup := seen[v]; !dup {
			seen[v] = i
		}
	}

	return Pair{}, false
}

// FindAny is the dynamically typed counterpart of Find.
//
// seq must be a slice or array; its elements may have any dynamic type.
// Integer and float elements take part in the scan as float64; every other
// element is skipped. Integers that float64 cannot hold exactly (magnitude
// above 2^53, unless the value happens to be representable) are skipped as
// invalid, and a complement hit counts only when the two values add up to
// target without rounding. Any non-sequence seq yields ErrInvalidArgument
// before the scan starts.
//
// Example:
//
//	var decoded any
//	_ = json.Unmarshal([]byte(`[2, "x", 7]`), &decoded)
//	p, ok, err := FindAny(decoded, 9) // p = {0 2}, ok = true, err = nil
func FindAny(seq any, target float64) (Pair, bool, error) {
	rv := reflect.ValueOf(seq)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
	default:
		return Pair{}, false, fmt.Errorf("%w: sequence must be a slice or array, got %T", ErrInvalidArgument, seq)
	}

	n := rv.Len()
	if n == 0 {
		return Pair{}, false, nil
	}

	seen := make(map[float64]int, n)
	vals := make([]float64, n)
	for i := 0; i < n; i++ {
		v, ok := numeric(rv.Index(i))
		if !ok || !finite(v) {
			continue
		}
		vals[i] = v
		if k, hit := seen[target-v]; hit && exactSum(vals[k], v, target) {
			return Pair{I: k, J: i}, true, nil
		}
		if _, dup := seen[v]; !dup {
			seen[v] = i
		}
	}

	return Pair{}, false, nil
}

// numeric extracts a float64 from an integer or float reflect.Value,
// looking through interface and pointer wrappers ([]any, []*int).
func numeric(v reflect.Value) (float64, bool) {
	for v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return 0, false
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		x := v.Int()
		f := float64(x)
		if f >= 0x1p63 || int64(f) != x {
			return 0, false
		}
		return f, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		x := v.Uint()
		f := float64(x)
		if f >= 0x1p64 || uint64(f) != x {
			return 0, false
		}
		return f, true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	default:
		return 0, false
	}
}

// exactSum reports whether a + b equals t with no rounding error, using the
// error-free two-sum transformation (Knuth): a + b == s + e exactly.
func exactSum(a, b, t float64) bool {
	s := a + b
	if s != t {
		return false
	}
	bv := s - a
	av := s - bv

	return (a-av)+(b-bv) == 0
}

// finite reports whether v is neither NaN nor ±Inf. Always true for integers.
func finite[T Number](v T) bool {
	f := float64(v)

	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
