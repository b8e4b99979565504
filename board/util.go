package board

// AllBitsSet reports whether bm is a contiguous run of set bits starting at
// position 0 (including the full Bitmap).
func AllBitsSet(bm Bitmap) bool {
	return ((bm+1)&bm == 0) && (bm != 0)
}

func ShiftNW(bm Bitmap) Bitmap {
	return bm << 7
}

func ShiftN(bm Bitmap) Bitmap {
	return bm << 8
}

func ShiftNE(bm Bitmap) Bitmap {
	return bm << 9
}

func ShiftE(bm Bitmap) Bitmap {
	return bm << 1
}

func ShiftSE(bm Bitmap) Bitmap {
	return bm >> 7
}

func ShiftS(bm Bitmap) Bitmap {
	return bm >> 8
}

func ShiftSW(bm Bitmap) Bitmap {
	return bm >> 9
}

func ShiftW(bm Bitmap) Bitmap {
	return bm >> 1
}

// Union is the bitwise or of all given Bitmaps. With no arguments it returns
// the empty Bitmap, the identity of union.
func Union(bms ...Bitmap) Bitmap {
	var u Bitmap
	for _, bm := range bms {
		u |= bm
	}
	return u
}

// Intersect is the bitwise and of all given Bitmaps. With no arguments it
// returns the full Bitmap, the identity of intersection.
func Intersect(bms ...Bitmap) Bitmap {
	u := ^Bitmap(0)
	for _, bm := range bms {
		u &= bm
	}
	return u
}

// SymmetricDifference is the set of positions occupied in exactly one of a
// and b.
func SymmetricDifference(a, b Bitmap) Bitmap {
	return a ^ b
}
