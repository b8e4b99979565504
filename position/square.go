package position

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidNotation represents a malformed square notation error.
	ErrInvalidNotation = errors.New("invalid notation")
	// ErrOutOfRange represents a rank or file component outside its valid range.
	ErrOutOfRange = errors.New("out of range")
)

// Rank is a row of the board, numbered 1 through 8 starting from White's side.
type Rank int8

const (
	Rank1 Rank = iota + 1
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

// NewRank validates n as a rank ordinal. Only 1 through 8 are constructible.
func NewRank(n int) (Rank, error) {
	if n < 1 || n > MaxComponentScalar {
		return 0, fmt.Errorf("%w: rank %d", ErrOutOfRange, n)
	}
	return Rank(n), nil
}

// NewRankFromChar maps the digits '1' through '8' to their rank.
func NewRankFromChar(c byte) (Rank, error) {
	if c < '1' || c > '8' {
		return 0, fmt.Errorf("%w: rank character %q", ErrOutOfRange, c)
	}
	return Rank(c - '0'), nil
}

func (r Rank) String() string {
	if r < Rank1 || r > Rank8 {
		return ""
	}
	return string(rune('0' + r))
}

// File is a column of the board, lettered a through h, numerically 1 through 8.
type File int8

const (
	FileA File = iota + 1
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

// NewFile validates n as a file ordinal. Only 1 through 8 are constructible.
func NewFile(n int) (File, error) {
	if n < 1 || n > MaxComponentScalar {
		return 0, fmt.Errorf("%w: file %d", ErrOutOfRange, n)
	}
	return File(n), nil
}

// NewFileFromChar maps the letters 'a' through 'h' to their file,
// ignoring case.
func NewFileFromChar(c byte) (File, error) {
	lower := c | 0x20 // lowercase is +32 uppercase
	if lower < 'a' || lower > 'h' {
		return 0, fmt.Errorf("%w: file character %q", ErrOutOfRange, c)
	}
	return File(lower - 'a' + 1), nil
}

func (f File) String() string {
	if f < FileA || f > FileH {
		return ""
	}
	return string(rune('a' + f - 1))
}

// Square is a (File, Rank) pair identifying exactly one of the 64 board
// positions. Construction through NewSquare or ParseSquare guarantees both
// components are in range.
type Square struct {
	File File
	Rank Rank
}

func NewSquare(f File, r Rank) Square {
	return Square{File: f, Rank: r}
}

// ParseSquare parses two-character algebraic notation, file letter first,
// e.g. "e4". The file letter is case-insensitive. No trimming is performed.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return Square{}, fmt.Errorf("%w: length is not 2: len=%d input=%q", ErrInvalidNotation, len(s), s)
	}
	if s[0] >= 0x80 || s[1] >= 0x80 {
		return Square{}, fmt.Errorf("%w: non-ASCII input %q", ErrInvalidNotation, s)
	}
	f, err := NewFileFromChar(s[0])
	if err != nil {
		return Square{}, err
	}
	r, err := NewRankFromChar(s[1])
	if err != nil {
		return Square{}, err
	}
	return Square{File: f, Rank: r}, nil
}

// Pos maps the Square to its bit index using the little-endian rank-file
// ordering: a1 is 0, h1 is 7, a8 is 56, h8 is 63.
func (sq Square) Pos() Pos {
	return Pos(sq.Rank-1)*MaxComponentScalar + Pos(sq.File-1)
}

func (sq Square) Notation() string {
	return sq.File.String() + sq.Rank.String()
}

func (sq Square) String() string {
	return sq.Notation()
}
