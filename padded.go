package atomx

import (
	"unsafe"

	"github.com/llxisdsh/atomx/internal/opt"
)

// CacheLineSize is the cache line size assumed for padding. It is derived
// from golang.org/x/sys at build time and can be overridden with the
// atomx_cachelinesize_{32,64,128,256} build tags.
const CacheLineSize = opt.CacheLineSize_

// PaddedInt64 is an [Int64] padded out to a full cache line, so that
// adjacent instances in an array or struct never share a line. Use it for
// dense groups of independently hot counters where false sharing would
// dominate; a lone counter does not need it.
//
// It exposes the full Int64 API through embedding and carries the same
// no-copy constraint.
type PaddedInt64 struct {
	Int64
	_ [(CacheLineSize - unsafe.Sizeof(Int64{})%CacheLineSize) % CacheLineSize]byte
}
