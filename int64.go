package atomx

import (
	"strconv"
	"sync/atomic"
)

// Int64 is a lock-free atomic 64-bit signed counter.
//
// The zero value is valid and holds 0. An Int64 must not be copied after
// first use: a copy duplicates the underlying storage, so updates to the
// copy are invisible to holders of the original and vice versa. Embed it
// by value in an exclusively owned struct, or share one instance by
// pointer (see [NewInt64]) when multiple owners are required. `go vet`'s
// copylocks check flags accidental copies.
//
// All operations are linearizable: concurrent calls behave as if executed
// in some single global order, and no reader ever observes a torn value.
// Loads carry acquire semantics and stores carry release semantics per the
// Go memory model's rules for sync/atomic.
//
// The retrying operations (StoreIfGreater, StoreIfLess, Update,
// Accumulate) are lock-free but not wait-free: some contending caller
// always makes progress, but an individual attempt can in principle be
// starved under pathological contention. They never block on a lock.
//
// Size: 8 bytes.
type Int64 struct {
	_ noCopy
	v atomic.Int64
}

// NewInt64 returns an Int64 holding initial, allocated for the
// shared-by-pointer ownership shape.
func NewInt64(initial int64) *Int64 {
	c := &Int64{}
	c.v.Store(initial)
	return c
}

// Load atomically returns the current value.
//
//go:nosplit
func (x *Int64) Load() int64 {
	return x.v.Load()
}

// Store atomically sets the value to v.
//
//go:nosplit
func (x *Int64) Store(v int64) {
	x.v.Store(v)
}

// Swap atomically sets the value to v and returns the previous value.
// No observer can see any value other than the previous or v.
func (x *Int64) Swap(v int64) int64 {
	return x.v.Swap(v)
}

// CompareAndSwap atomically sets the value to new if it currently equals
// old, reporting whether the swap happened.
func (x *Int64) CompareAndSwap(old, new int64) bool {
	return x.v.CompareAndSwap(old, new)
}

// CompareAndExchange atomically sets the value to new if it currently
// equals old. It returns the value observed at the attempt: old on
// success, the differing current value on failure. Callers can test
// success with `CompareAndExchange(old, new) == old`.
func (x *Int64) CompareAndExchange(old, new int64) int64 {
	// sync/atomic reports only CAS success, so a failed swap re-reads.
	// The linearization point is the failing load or the winning CAS.
	for {
		cur := x.v.Load()
		if cur != old {
			return cur
		}
		if x.v.CompareAndSwap(old, new) {
			return old
		}
	}
}

// Add atomically adds delta and returns the new value.
// Overflow wraps around per two's-complement arithmetic.
func (x *Int64) Add(delta int64) int64 {
	return x.v.Add(delta)
}

// Inc atomically increments by one and returns the new value.
func (x *Int64) Inc() int64 {
	return x.v.Add(1)
}

// Dec atomically decrements by one and returns the new value.
func (x *Int64) Dec() int64 {
	return x.v.Add(-1)
}

// GetAndAdd atomically adds delta and returns the value before the add.
func (x *Int64) GetAndAdd(delta int64) int64 {
	return x.v.Add(delta) - delta
}

// GetAndInc atomically increments by one and returns the previous value.
func (x *Int64) GetAndInc() int64 {
	return x.v.Add(1) - 1
}

// GetAndDec atomically decrements by one and returns the previous value.
func (x *Int64) GetAndDec() int64 {
	return x.v.Add(-1) + 1
}

// TryStoreIfGreater sets the value to v if v is strictly greater than the
// current value, using a single compare-and-swap anchored to the value
// read at entry. It reports whether the swap happened; a false return may
// mean either that v was not greater or that a concurrent writer won the
// race. The caller may re-check and retry, or use [Int64.StoreIfGreater].
func (x *Int64) TryStoreIfGreater(v int64) bool {
	cur := x.v.Load()
	return v > cur && x.v.CompareAndSwap(cur, v)
}

// TryStoreIfLess sets the value to v if v is strictly less than the
// current value, using a single compare-and-swap anchored to the value
// read at entry. See [Int64.TryStoreIfGreater] for the failure contract.
func (x *Int64) TryStoreIfLess(v int64) bool {
	cur := x.v.Load()
	return v < cur && x.v.CompareAndSwap(cur, v)
}

// StoreIfGreater raises the value to v if v is strictly greater than the
// current value, retrying with spin backoff until the swap lands or the
// current value is observed to be >= v already. It returns the value in
// effect at exit: v after a successful swap, otherwise the greater or
// equal value that made the swap unnecessary. The value never decreases.
func (x *Int64) StoreIfGreater(v int64) int64 {
	return x.casLoop(func(cur int64) (int64, bool) {
		return v, v > cur
	})
}

// StoreIfLess lowers the value to v if v is strictly less than the
// current value. Mirror of [Int64.StoreIfGreater]; the value never
// increases.
func (x *Int64) StoreIfLess(v int64) int64 {
	return x.casLoop(func(cur int64) (int64, bool) {
		return v, v < cur
	})
}

// Update atomically replaces the value with f(current), retrying with
// spin backoff until the compare-and-swap anchored to the snapshot f saw
// succeeds. It returns the installed value.
//
// f must be a pure function of its argument: under contention it is
// re-invoked with fresh snapshots, so side effects would repeat.
//
// Update panics if f is nil, before any atomic operation.
func (x *Int64) Update(f func(int64) int64) int64 {
	if f == nil {
		panic("atomx: nil transform")
	}
	return x.casLoop(func(cur int64) (int64, bool) {
		return f(cur), true
	})
}

// TryUpdate computes updated = f(original) from a single snapshot and
// attempts exactly one compare-and-swap. It returns the snapshot, the
// computed value and whether the swap happened; on failure the caller can
// inspect both and decide whether to retry. f runs exactly once.
//
// TryUpdate panics if f is nil, before any atomic operation.
func (x *Int64) TryUpdate(f func(int64) int64) (original, updated int64, ok bool) {
	if f == nil {
		panic("atomx: nil transform")
	}
	original = x.v.Load()
	updated = f(original)
	ok = x.v.CompareAndSwap(original, updated)
	return original, updated, ok
}

// Accumulate atomically replaces the value with f(current, v), under the
// same retry discipline and purity requirement as [Int64.Update]. It
// returns the installed value. Accumulate(v, add) is equivalent to
// Add(v) for a commutative add combiner.
//
// Accumulate panics if f is nil, before any atomic operation.
func (x *Int64) Accumulate(v int64, f func(cur, v int64) int64) int64 {
	if f == nil {
		panic("atomx: nil combiner")
	}
	return x.casLoop(func(cur int64) (int64, bool) {
		return f(cur, v), true
	})
}

// String returns the decimal form of a single atomic load,
// implementing fmt.Stringer.
func (x *Int64) String() string {
	return strconv.FormatInt(x.v.Load(), 10)
}

// casLoop is the shared read-compute-compareAndSwap retry loop behind
// every compound update. f receives a fresh snapshot per attempt and
// returns the candidate value plus whether to attempt the swap at all;
// when swap is false the loop exits immediately with the snapshot
// (early-exit for already-satisfied bounds). Failed swaps back off via
// delay before re-reading.
func (x *Int64) casLoop(f func(cur int64) (next int64, swap bool)) int64 {
	var spins int
	for {
		cur := x.v.Load()
		next, swap := f(cur)
		if !swap {
			return cur
		}
		if x.v.CompareAndSwap(cur, next) {
			return next
		}
		delay(&spins)
	}
}
