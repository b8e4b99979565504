package main

import (
	"log"
	"sync"

	"github.com/daystram/bitboard/bench"
)

func runBench(iterations int, parallel bool) error {
	log.Printf("============ bench(%d)\n", iterations)

	out := make(chan string)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for line := range out {
			log.Println(line)
		}
	}()
	defer wg.Wait()
	defer close(out)

	return bench.Ops(iterations, parallel, out)
}
