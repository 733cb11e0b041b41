package util

// Slab is a scratch arena for the match functions. Each worker owns exactly
// one and reuses it across haystacks; the backing slices only ever grow.
type Slab struct {
	I16 []int16
	I32 []int32
}

// MakeSlab returns a new Slab
func MakeSlab(size16 int, size32 int) *Slab {
	return &Slab{
		I16: make([]int16, size16),
		I32: make([]int32, size32)}
}
