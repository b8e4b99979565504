// Package bench measures the throughput of the bitmap hot paths. Consumers
// generating moves or probing attack tables lean on these operations in tight
// loops, so regressions here show up directly in their node rates.
package bench

import (
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/bitboard/board"
	"github.com/daystram/bitboard/position"
)

const sampleSize = 1 << 12

type opFunc func(i int) uint64

// Ops runs each benchmarked operation for the given number of iterations and
// reports one throughput line per operation on out.
func Ops(iterations int, parallel bool, out chan string) error {
	r := rand.New(rand.NewSource(7))

	masks := make([]board.Bitmap, sampleSize)
	positions := make([]position.Pos, sampleSize)
	notations := make([]string, sampleSize)
	for i := range masks {
		masks[i] = board.Bitmap(r.Uint64())
		positions[i] = position.Pos(r.Intn(position.TotalSquares))
		notations[i] = positions[i].Notation()
	}
	magic := board.Magic{
		Magic: board.Bitmap(r.Uint64()),
		Mask:  board.Bitmap(r.Uint64()),
		Shift: 52,
	}

	// sink defeats dead-code elimination of the measured loops.
	var sink uint64
	ops := []struct {
		name string
		f    opFunc
	}{
		{name: "parse", f: func(i int) uint64 {
			pos, err := position.NewPosFromNotation(notations[i%sampleSize])
			if err != nil {
				return 0
			}
			return uint64(pos)
		}},
		{name: "set/unset", f: func(i int) uint64 {
			bm := masks[i%sampleSize]
			bm.Set(positions[i%sampleSize])
			bm.Unset(positions[(i+1)%sampleSize])
			return uint64(bm)
		}},
		{name: "algebra", f: func(i int) uint64 {
			a, b := masks[i%sampleSize], masks[(i+1)%sampleSize]
			return uint64(board.SymmetricDifference(board.Union(a, b), board.Intersect(a, b.Complement())))
		}},
		{name: "popcount", f: func(i int) uint64 {
			return uint64(masks[i%sampleSize].BitCount())
		}},
		{name: "shift", f: func(i int) uint64 {
			return uint64(masks[i%sampleSize].ShiftLeft(uint8(i & 0x3F)))
		}},
		{name: "magic index", f: func(i int) uint64 {
			return uint64(magic.Index(masks[i%sampleSize]))
		}},
	}

	run := runSerial
	if parallel {
		run = runParallel
	}

	printer := message.NewPrinter(language.English)
	for _, op := range ops {
		start := time.Now()
		run(iterations, op.f, &sink)
		elapsed := time.Since(start)

		out <- printer.Sprintf("op=%s n=%d rate=%dop/s (%.3fs elapsed)",
			op.name, iterations, int(float64(iterations)/elapsed.Seconds()), elapsed.Seconds())
	}
	_ = atomic.LoadUint64(&sink)
	return nil
}

func runSerial(iterations int, f opFunc, sink *uint64) {
	var acc uint64
	for i := 0; i < iterations; i++ {
		acc ^= f(i)
	}
	atomic.AddUint64(sink, acc)
}

func runParallel(iterations int, f opFunc, sink *uint64) {
	workers := runtime.NumCPU()
	chunk := (iterations + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		w := w
		wg.Add(1)
		go func() {
			defer wg.Done()
			lo, hi := w*chunk, (w+1)*chunk
			if hi > iterations {
				hi = iterations
			}
			var acc uint64
			for i := lo; i < hi; i++ {
				acc ^= f(i)
			}
			atomic.AddUint64(sink, acc)
		}()
	}
	wg.Wait()
}
