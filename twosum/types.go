package twosum

// Number is the set of element types accepted by Find.
// Named types (e.g. `type Cents int64`) are accepted through the ~ terms.
// Sums follow Go arithmetic for the type, so integer sums wrap on overflow.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Pair is an ordered index pair (I, J) with I < J.
// The zero Pair is only meaningful together with ok == false.
type Pair struct {
	I int
	J int
}

// Indices returns the pair as a two-element array.
func (p Pair) Indices() [2]int {
	return [2]int{p.I, p.J}
}
