// Package board provides the bit-packed representation of sets of board
// positions that move generation, attack tables, and game state are built on.
//
// A Bitmap holds one bit per square using the little-endian rank-file (LERF)
// ordering, matching position.Pos:
//
//	8 | 56 57 58 59 60 61 62 63
//	7 | 48 49 50 51 52 53 54 55
//	6 | 40 41 42 43 44 45 46 47
//	5 | 32 33 34 35 36 37 38 39
//	4 | 24 25 26 27 28 29 30 31
//	3 | 16 17 18 19 20 21 22 23
//	2 | 08 09 10 11 12 13 14 15
//	1 | 00 01 02 03 04 05 06 07
//	    -----------------------
//	     a  b  c  d  e  f  g  h
package board

import (
	"math/bits"

	"github.com/daystram/bitboard/position"
)

// Bitmap is a set of board positions. The zero value is the empty set; every
// 64-bit pattern is a valid Bitmap. Values copy freely and combinations
// produce new values.
//
// All operations taking a position.Pos require it to be in [0, 64); feeding an
// out-of-range index is a programming error in the caller. Obtain indices from
// the validated constructors in package position.
type Bitmap uint64

// Set sets the bit at pos.
func (bm *Bitmap) Set(pos position.Pos) {
	*bm |= maskCell[pos]
}

// Unset clears the bit at pos.
func (bm *Bitmap) Unset(pos position.Pos) {
	*bm &^= maskCell[pos]
}

// With returns a copy of the Bitmap with the bit at pos set.
func (bm Bitmap) With(pos position.Pos) Bitmap {
	bm.Set(pos)
	return bm
}

// Without returns a copy of the Bitmap with the bit at pos cleared.
func (bm Bitmap) Without(pos position.Pos) Bitmap {
	bm.Unset(pos)
	return bm
}

// Occupied reports whether the bit at pos is set.
func (bm Bitmap) Occupied(pos position.Pos) bool {
	return bm&maskCell[pos] != 0
}

// BitCount is the population count of the Bitmap.
func (bm Bitmap) BitCount() uint8 {
	return uint8(bits.OnesCount64(uint64(bm)))
}

// LS1B is the position of the least significant set bit. For the empty
// Bitmap it returns 64, one past the last valid position.
func (bm Bitmap) LS1B() position.Pos {
	return position.Pos(bits.TrailingZeros64(uint64(bm)))
}

// Complement flips every bit, yielding the set of vacant positions.
func (bm Bitmap) Complement() Bitmap {
	return ^bm
}

// ShiftLeft shifts every bit n positions up the LERF ordering. Bits pushed
// past position 63 are discarded, and any n of 64 or more yields the empty
// Bitmap, never a wrap to the low end.
func (bm Bitmap) ShiftLeft(n uint8) Bitmap {
	return bm << n
}

// ShiftRight shifts every bit n positions down the LERF ordering, discarding
// bits pushed past position 0. Any n of 64 or more yields the empty Bitmap.
func (bm Bitmap) ShiftRight(n uint8) Bitmap {
	return bm >> n
}

// Multiply is 64-bit unsigned multiplication with silent wraparound on
// overflow. The truncation is intentional: multiply-shift magic hashing
// depends on it.
func (bm Bitmap) Multiply(rhs Bitmap) Bitmap {
	return bm * rhs
}
