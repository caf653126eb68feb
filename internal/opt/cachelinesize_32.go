//go:build atomx_cachelinesize_32

package opt

// CacheLineSize_ is force-set to 32 bytes via the atomx_cachelinesize_32
// build tag. Use: go build -tags=atomx_cachelinesize_32
const CacheLineSize_ = 32
