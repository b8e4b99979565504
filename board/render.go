package board

import (
	"strings"

	"github.com/fatih/color"

	"github.com/daystram/bitboard/position"
)

var (
	drawLegend    = color.New(color.Bold)
	drawLightCell = color.New(color.FgBlack, color.BgHiWhite)
	drawDarkCell  = color.New(color.FgBlack, color.BgGreen)
)

// String renders the Bitmap as an 8x8 grid, rank 8 at the top, file a at the
// left, with `x` marking set bits and `.` clear ones:
//
//	8 . . . . . . . .
//	7 . . . . . . . .
//	6 . . . . . . . .
//	5 . . . . . . . .
//	4 . . . . x . . .
//	3 . . . . . . . .
//	2 . . . . . . . .
//	1 . . . . . . . .
//	  a b c d e f g h
//
// The layout is fixed: a rank-digit gutter, single-space separated cells, a
// newline after the eighth cell of each row, and a file legend with no
// trailing newline. Tooling diffs against it byte-for-byte.
func (bm Bitmap) String() string {
	builder := strings.Builder{}
	for y := position.Pos(Height) - 1; y >= 0; y-- {
		_, _ = builder.WriteString(y.NotationComponentY())
		for x := position.Pos(0); x < Width; x++ {
			if bm.Occupied(y*Width + x) {
				_, _ = builder.WriteString(" x")
			} else {
				_, _ = builder.WriteString(" .")
			}
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString(" ")
	for x := position.Pos(0); x < Width; x++ {
		_, _ = builder.WriteString(" " + x.NotationComponentX())
	}
	return builder.String()
}

// Draw renders the Bitmap as a colorized checkerboard for terminal
// inspection. Unlike String, the output carries ANSI escapes and is not
// meant for diffing.
func (bm Bitmap) Draw() string {
	builder := strings.Builder{}
	for y := position.Pos(Height) - 1; y >= 0; y-- {
		_, _ = builder.WriteString(drawLegend.Sprintf(" %s ", y.NotationComponentY()))
		for x := position.Pos(0); x < Width; x++ {
			sym := " "
			if bm.Occupied(y*Width + x) {
				sym = "x"
			}
			cell := drawLightCell
			if x%2^y%2 == 0 {
				cell = drawDarkCell
			}
			_, _ = builder.WriteString(cell.Sprintf(" %s ", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   ")
	for x := position.Pos(0); x < Width; x++ {
		_, _ = builder.WriteString(drawLegend.Sprintf(" %s ", x.NotationComponentX()))
	}
	return builder.String()
}
