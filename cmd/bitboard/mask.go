package main

import (
	"fmt"

	"github.com/daystram/bitboard/board"
	"github.com/daystram/bitboard/position"
)

// printMask builds a bitmap from the square notations in args and prints it.
// The first malformed token aborts the run; no partially built bitmap is ever
// rendered.
func printMask(args []string, draw bool) error {
	bm, err := buildMask(args)
	if err != nil {
		return err
	}

	if draw {
		fmt.Println(bm.Draw())
	} else {
		fmt.Println(bm.String())
	}
	fmt.Printf("population=%d\n", bm.BitCount())
	return nil
}

func buildMask(args []string) (board.Bitmap, error) {
	var bm board.Bitmap
	for _, arg := range args {
		pos, err := position.NewPosFromNotation(arg)
		if err != nil {
			return 0, fmt.Errorf("bad square %q: %w", arg, err)
		}
		bm.Set(pos)
	}
	return bm, nil
}
