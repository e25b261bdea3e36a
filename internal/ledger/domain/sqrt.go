package domain

// FloorSqrt returns the largest r such that r*r <= x. It refines a
// Babylonian estimate with integer division; the sequence decreases
// monotonically once it passes the root, so the loop stops at the floor.
//
// The first estimate is x/2+1 rather than (x+1)/2 so the computation cannot
// overflow at the top of the uint64 range; both start at or above the root.
func FloorSqrt(x uint64) uint64 {
	if x == 0 {
		return 0
	}
	z := x/2 + 1
	for {
		y := (x/z + z) / 2
		if y >= z {
			return z
		}
		z = y
	}
}
