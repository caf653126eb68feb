package atomx

import (
	"sync"
	"testing"
	"unsafe"
)

func TestPaddedInt64Size(t *testing.T) {
	var p PaddedInt64
	size := unsafe.Sizeof(p)
	if size%CacheLineSize != 0 {
		t.Errorf("PaddedInt64 size = %d, not a multiple of cache line %d", size, CacheLineSize)
	}
	var arr [2]PaddedInt64
	a := uintptr(unsafe.Pointer(&arr[0]))
	b := uintptr(unsafe.Pointer(&arr[1]))
	if b-a < CacheLineSize {
		t.Errorf("adjacent PaddedInt64s %d bytes apart, want >= %d", b-a, CacheLineSize)
	}
}

func TestPaddedInt64Ops(t *testing.T) {
	var p PaddedInt64
	p.Store(5)
	if v := p.Inc(); v != 6 {
		t.Fatalf("Inc = %d, want 6", v)
	}
	if !p.CompareAndSwap(6, 9) {
		t.Fatalf("CAS failed")
	}
	if v := p.Load(); v != 9 {
		t.Fatalf("Load = %d, want 9", v)
	}
}

func TestPaddedInt64Concurrent(t *testing.T) {
	const goroutines = 8
	const perG = 10000

	var stripes [4]PaddedInt64
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := range goroutines {
		go func(idx int) {
			defer wg.Done()
			for range perG {
				stripes[idx%len(stripes)].Inc()
			}
		}(i)
	}
	wg.Wait()

	var sum int64
	for i := range stripes {
		sum += stripes[i].Load()
	}
	if sum != goroutines*perG {
		t.Fatalf("sum = %d, want %d", sum, goroutines*perG)
	}
}
