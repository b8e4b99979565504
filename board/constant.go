package board

import (
	"github.com/daystram/bitboard/position"
)

const (
	Width      = position.MaxComponentScalar
	Height     = position.MaxComponentScalar
	TotalCells = Width * Height
)

var (
	maskCol = [Width]Bitmap{
		position.FileA - 1: 0x_01_01_01_01_01_01_01_01,
		position.FileB - 1: 0x_02_02_02_02_02_02_02_02,
		position.FileC - 1: 0x_04_04_04_04_04_04_04_04,
		position.FileD - 1: 0x_08_08_08_08_08_08_08_08,
		position.FileE - 1: 0x_10_10_10_10_10_10_10_10,
		position.FileF - 1: 0x_20_20_20_20_20_20_20_20,
		position.FileG - 1: 0x_40_40_40_40_40_40_40_40,
		position.FileH - 1: 0x_80_80_80_80_80_80_80_80,
	}
	maskRow = [Height]Bitmap{
		position.Rank1 - 1: 0x_00_00_00_00_00_00_00_FF,
		position.Rank2 - 1: 0x_00_00_00_00_00_00_FF_00,
		position.Rank3 - 1: 0x_00_00_00_00_00_FF_00_00,
		position.Rank4 - 1: 0x_00_00_00_00_FF_00_00_00,
		position.Rank5 - 1: 0x_00_00_00_FF_00_00_00_00,
		position.Rank6 - 1: 0x_00_00_FF_00_00_00_00_00,
		position.Rank7 - 1: 0x_00_FF_00_00_00_00_00_00,
		position.Rank8 - 1: 0x_FF_00_00_00_00_00_00_00,
	}
	maskCell [TotalCells]Bitmap
)

func init() {
	initMask()
}

func initMask() {
	for pos := position.Pos(0); pos < TotalCells; pos++ {
		maskCell[pos] = 1 << pos
	}
}

// CellMask is the Bitmap with only pos set.
func CellMask(pos position.Pos) Bitmap {
	return maskCell[pos]
}

// FileMask is the Bitmap with every position on file f set.
func FileMask(f position.File) Bitmap {
	return maskCol[f-1]
}

// RankMask is the Bitmap with every position on rank r set.
func RankMask(r position.Rank) Bitmap {
	return maskRow[r-1]
}
