package atomx

import (
	"testing"

	"golang.org/x/sync/errgroup"
)

func TestAdderSequential(t *testing.T) {
	a := NewAdder()
	if v := a.Sum(); v != 0 {
		t.Fatalf("fresh Sum = %d, want 0", v)
	}
	a.Add(10)
	a.Inc()
	a.Dec()
	a.Add(-3)
	if v := a.Sum(); v != 7 {
		t.Fatalf("Sum = %d, want 7", v)
	}
	if s := a.String(); s != "7" {
		t.Fatalf("String = %q, want 7", s)
	}
}

func TestAdderConcurrent(t *testing.T) {
	const goroutines = 8
	const perG = 10000

	a := NewAdder()
	var g errgroup.Group
	for range goroutines {
		g.Go(func() error {
			for range perG {
				a.Inc()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
	if v := a.Sum(); v != goroutines*perG {
		t.Fatalf("lost updates: %d, want %d", v, goroutines*perG)
	}
}

func TestAdderReset(t *testing.T) {
	a := NewAdder()
	for range 100 {
		a.Inc()
	}
	if v := a.Reset(); v != 100 {
		t.Fatalf("Reset drained %d, want 100", v)
	}
	if v := a.Sum(); v != 0 {
		t.Fatalf("Sum after Reset = %d, want 0", v)
	}
}

func TestNextPowOf2(t *testing.T) {
	cases := []struct {
		in   uint32
		want uint32
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 4},
		{5, 8},
		{8, 8},
		{9, 16},
	}
	for _, c := range cases {
		if got := nextPowOf2(c.in); got != c.want {
			t.Fatalf("nextPowOf2(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}
