package position

import (
	"fmt"
)

const (
	// MaxComponentScalar is the maximum component scalar the position system supports.
	MaxComponentScalar = 8
	// TotalSquares is the number of addressable positions.
	TotalSquares = MaxComponentScalar * MaxComponentScalar
)

// Pos is the canonical bit index of a Square, in [0, 64). It is the only
// currency accepted by the bitmap operations in package board; produce it
// through Square.Pos, NewPos, or NewPosFromNotation rather than casting raw
// integers.
type Pos int8

// NewPos validates i as a bit index.
func NewPos(i int) (Pos, error) {
	if i < 0 || i >= TotalSquares {
		return 0, fmt.Errorf("%w: index %d", ErrOutOfRange, i)
	}
	return Pos(i), nil
}

// NewPosFromNotation parses algebraic notation straight to a bit index.
func NewPosFromNotation(n string) (Pos, error) {
	sq, err := ParseSquare(n)
	if err != nil {
		return 0, err
	}
	return sq.Pos(), nil
}

func (p Pos) String() string {
	return p.Notation()
}

func (p Pos) Notation() string {
	if p < 0 || p >= TotalSquares {
		return ""
	}
	return string(rune('a'+p.X())) + string(rune('1'+p.Y()))
}

// X is the zero-based file offset of the position.
func (p Pos) X() Pos {
	return p % MaxComponentScalar
}

// Y is the zero-based rank offset of the position.
func (p Pos) Y() Pos {
	return p / MaxComponentScalar
}

func (p Pos) File() File {
	return File(p.X() + 1)
}

func (p Pos) Rank() Rank {
	return Rank(p.Y() + 1)
}

// Square is the inverse of Square.Pos.
func (p Pos) Square() Square {
	return Square{File: p.File(), Rank: p.Rank()}
}

func (p Pos) NotationComponentX() string {
	if p < 0 || MaxComponentScalar < p {
		return ""
	}
	return string(rune('a' + p))
}

func (p Pos) NotationComponentY() string {
	if p < 0 || MaxComponentScalar < p {
		return ""
	}
	return string(rune('0' + p + 1))
}
