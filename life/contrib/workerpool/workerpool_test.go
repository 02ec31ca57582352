// Copyright 2025 go-highway Authors. Adapted.

package workerpool

import (
	"runtime"
	"sync/atomic"
	"testing"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	if pool.NumWorkers() != 4 {
		t.Errorf("NumWorkers() = %d, want 4", pool.NumWorkers())
	}
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	if pool.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers() = %d, want %d", pool.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

func TestRunChunksCoversEveryRow(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	total := 1000
	chunkLength := 37 // deliberately does not divide total evenly
	touched := make([]int32, total)

	pool.RunChunks(total, chunkLength, func(start, end int) {
		if end-start > chunkLength {
			t.Errorf("chunk [%d,%d) longer than chunkLength %d", start, end, chunkLength)
		}
		for i := start; i < end; i++ {
			atomic.AddInt32(&touched[i], 1)
		}
	})

	for i, v := range touched {
		if v != 1 {
			t.Fatalf("row %d touched %d times, want 1", i, v)
		}
	}
}

func TestRunChunksSmallTotal(t *testing.T) {
	pool := New(8)
	defer pool.Close()

	var calls int32
	pool.RunChunks(3, 64, func(start, end int) {
		atomic.AddInt32(&calls, 1)
		if start != 0 || end != 3 {
			t.Errorf("got [%d,%d), want [0,3)", start, end)
		}
	})
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestRunChunksAfterClose(t *testing.T) {
	pool := New(4)
	pool.Close()

	total := 200
	touched := make([]bool, total)
	pool.RunChunks(total, 50, func(start, end int) {
		for i := start; i < end; i++ {
			touched[i] = true
		}
	})
	for i, v := range touched {
		if !v {
			t.Fatalf("row %d not touched after pool closed", i)
		}
	}
}

func TestParallelForAtomic(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 100
	results := make([]int, n)

	pool.ParallelForAtomic(n, func(i int) {
		results[i] = i * 2
	})

	for i := 0; i < n; i++ {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func TestCloseIdempotent(t *testing.T) {
	pool := New(2)
	pool.Close()
	pool.Close() // must not panic
}
