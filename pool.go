package sdf

import "sync"

// edtScratch holds the working arrays of one distance-transform sweep: the
// feature vector f, the output line d, the parabola index stack v and the
// breakpoint array z. Every sweep fully writes f before transforming and
// the transform writes d and the used prefix of v/z before reading them,
// so a scratch carries no state between sweeps and needs no reset. It must
// not be shared between concurrently running sweeps.
type edtScratch struct {
	f []float64
	d []float64
	v []int
	z []float64
}

// grow ensures the scratch can serve sweep lines of up to n elements.
func (s *edtScratch) grow(n int) {
	if cap(s.f) < n {
		s.f = make([]float64, n)
		s.d = make([]float64, n)
		s.v = make([]int, n)
		s.z = make([]float64, n+1)
	}
	s.f = s.f[:n]
	s.d = s.d[:n]
	s.v = s.v[:n]
	s.z = s.z[:n+1]
}

// scratchPool recycles transform scratch across calls and workers to avoid
// per-sweep allocation pressure.
var scratchPool = sync.Pool{
	New: func() interface{} {
		return &edtScratch{}
	},
}

// getScratch retrieves a scratch sized for sweep lines of up to n elements.
func getScratch(n int) *edtScratch {
	s := scratchPool.Get().(*edtScratch)
	s.grow(n)
	return s
}

// putScratch returns a scratch to the pool for reuse.
func putScratch(s *edtScratch) {
	scratchPool.Put(s)
}
