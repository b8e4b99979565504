package board

import (
	"strings"
	"testing"

	"github.com/daystram/bitboard/position"
)

func TestStringEmpty(t *testing.T) {
	t.Parallel()
	want := strings.Join([]string{
		"8 . . . . . . . .",
		"7 . . . . . . . .",
		"6 . . . . . . . .",
		"5 . . . . . . . .",
		"4 . . . . . . . .",
		"3 . . . . . . . .",
		"2 . . . . . . . .",
		"1 . . . . . . . .",
		"  a b c d e f g h",
	}, "\n")
	if got := Bitmap(0).String(); got != want {
		t.Errorf("unexpected render:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestStringSingleBit(t *testing.T) {
	t.Parallel()
	e4, err := position.NewPosFromNotation("e4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := strings.Join([]string{
		"8 . . . . . . . .",
		"7 . . . . . . . .",
		"6 . . . . . . . .",
		"5 . . . . . . . .",
		"4 . . . . x . . .",
		"3 . . . . . . . .",
		"2 . . . . . . . .",
		"1 . . . . . . . .",
		"  a b c d e f g h",
	}, "\n")
	if got := Bitmap(0).With(e4).String(); got != want {
		t.Errorf("unexpected render:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestStringCorners(t *testing.T) {
	t.Parallel()
	var bm Bitmap
	for _, n := range []string{"a1", "h1", "a8", "h8"} {
		pos, err := position.NewPosFromNotation(n)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		bm.Set(pos)
	}
	want := strings.Join([]string{
		"8 x . . . . . . x",
		"7 . . . . . . . .",
		"6 . . . . . . . .",
		"5 . . . . . . . .",
		"4 . . . . . . . .",
		"3 . . . . . . . .",
		"2 . . . . . . . .",
		"1 x . . . . . . x",
		"  a b c d e f g h",
	}, "\n")
	if got := bm.String(); got != want {
		t.Errorf("unexpected render:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestStringNoTrailingNewline(t *testing.T) {
	t.Parallel()
	if got := (^Bitmap(0)).String(); strings.HasSuffix(got, "\n") {
		t.Error("render has a trailing newline")
	}
}

func TestDrawCellCount(t *testing.T) {
	t.Parallel()
	e4, err := position.NewPosFromNotation("e4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := Bitmap(0).With(e4).Draw()
	if n := strings.Count(got, "x"); n != 1 {
		t.Errorf("unexpected number of set cells drawn: got=%d want=1", n)
	}
	if n := strings.Count(got, "\n"); n != Height {
		t.Errorf("unexpected number of rows drawn: got=%d want=%d", n, Height)
	}
}
