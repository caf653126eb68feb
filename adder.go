package atomx

import (
	"runtime"
	"strconv"
	"sync"
	"sync/atomic"
)

// Adder is a striped counter optimized for write-heavy contention.
//
// A single [Int64] serializes every Add on one cache line; under many
// writers the CAS/XADD traffic on that line becomes the bottleneck. Adder
// spreads increments across a fixed set of cache-line padded stripes and
// sums them on read, trading read cost for near-linear write scaling.
//
// Trade-offs:
//   - Add/Inc/Dec scale with the number of cores.
//   - Sum is a moving snapshot: it is exact when no writer is concurrent,
//     and otherwise reflects some subset of in-flight updates. It is NOT
//     a linearizable read of a single cell; use [Int64] when reads must
//     be exact under concurrency.
//
// Use NewAdder to create one; the stripe array is sized to the
// parallelism of the process at creation time.
type Adder struct {
	_       noCopy
	stripes []PaddedInt64
	mask    uint32
}

// NewAdder returns an Adder with one stripe per processor,
// rounded up to a power of two.
func NewAdder() *Adder {
	n := nextPowOf2(uint32(runtime.GOMAXPROCS(0)))
	return &Adder{
		stripes: make([]PaddedInt64, n),
		mask:    n - 1,
	}
}

// adderToken pins a goroutine to a stripe. Tokens are recycled through a
// sync.Pool, so a goroutine keeps hitting the same stripe across calls
// while parked tokens migrate to whoever allocates next.
type adderToken struct {
	idx uint32
}

var adderTokenPool = sync.Pool{
	New: func() any {
		return &adderToken{idx: adderTokenSeq.Add(1)}
	},
}

var adderTokenSeq atomic.Uint32

// Add adds delta to the counter.
func (a *Adder) Add(delta int64) {
	t := adderTokenPool.Get().(*adderToken)
	a.stripes[t.idx&a.mask].Add(delta)
	adderTokenPool.Put(t)
}

// Inc increments the counter by one.
func (a *Adder) Inc() {
	a.Add(1)
}

// Dec decrements the counter by one.
func (a *Adder) Dec() {
	a.Add(-1)
}

// Sum returns the sum of all stripes. See the type comment for the
// snapshot semantics under concurrent writers.
func (a *Adder) Sum() int64 {
	var sum int64
	for i := range a.stripes {
		sum += a.stripes[i].Load()
	}
	return sum
}

// Reset zeroes the counter and returns the sum that was drained. Like
// Sum, the drain is per-stripe atomic but not global: updates racing with
// Reset land either in the returned sum or in the fresh count, never
// both, never neither.
func (a *Adder) Reset() int64 {
	var sum int64
	for i := range a.stripes {
		sum += a.stripes[i].Swap(0)
	}
	return sum
}

// String returns the decimal form of Sum, implementing fmt.Stringer.
func (a *Adder) String() string {
	return strconv.FormatInt(a.Sum(), 10)
}

func nextPowOf2(v uint32) uint32 {
	if v == 0 {
		return 1
	}
	v--
	v |= v >> 1
	v |= v >> 2
	v |= v >> 4
	v |= v >> 8
	v |= v >> 16
	return v + 1
}
