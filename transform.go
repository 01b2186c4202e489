package sdf

import (
	"math"
	"sync"
)

// distInf seeds sweep lines that contain no feature cell. It is finite so
// arithmetic on it stays well-defined, yet exceeds any achievable squared
// distance (bounded by max(width, height)^2) by many orders of magnitude.
const distInf = 1e20

// distanceTransform1D computes the 1D squared Euclidean distance transform
// of f into d using the Felzenszwalb-Huttenlocher lower-envelope method.
//
// Each index j contributes an upward parabola (i-j)^2 + f[j]; d[i] is the
// lower envelope of all parabolas evaluated at i. v holds the indices of
// the envelope-owning parabolas and z the boundaries between their
// segments (z[0] = -inf, z[k+1] = +inf). Construction scans left to right
// popping parabolas dominated by each new candidate; a second scan walks
// the envelope once to evaluate it. Both scans are linear in len(f), which
// is what makes the 2D transform linear overall.
//
// v must hold at least len(f) elements and z at least len(f)+1.
func distanceTransform1D(f, d []float64, v []int, z []float64) {
	n := len(f)
	k := 0
	v[0] = 0
	z[0] = math.Inf(-1)
	z[1] = math.Inf(1)

	for q := 1; q < n; q++ {
		var s float64
		for k >= 0 {
			// Intersection of parabola q with the current envelope top.
			// q > v[k] always, so the division is well-defined.
			s = ((f[q] + float64(q*q)) - (f[v[k]] + float64(v[k]*v[k]))) /
				(2.0 * float64(q-v[k]))
			if s <= z[k] {
				k--
			} else {
				break
			}
		}
		k++
		v[k] = q
		z[k] = s
		z[k+1] = math.Inf(1)
	}

	k = 0
	for q := 0; q < n; q++ {
		for z[k+1] < float64(q) {
			k++
		}
		dx := float64(q - v[k])
		d[q] = dx*dx + f[v[k]]
	}
}

// squaredDistanceField fills dist with the squared Euclidean distance from
// every cell of the width x height grid to its nearest cell satisfying
// inside[cell] == feature. Feature cells get 0. If the grid holds no
// feature cell at all, every cell keeps a distInf-magnitude value rather
// than a false zero.
//
// The 2D transform is separable: vertical sweeps first produce, per cell,
// the squared distance to the nearest feature row within its column;
// horizontal sweeps then minimize (x-q)^2 + columnResult[q] across each
// row, which equals the full 2D minimum. dist doubles as the intermediate
// grid between the passes.
func squaredDistanceField(inside []bool, width, height int, feature bool, dist []float64, workers int) {
	if workers > 1 {
		squaredDistanceFieldParallel(inside, width, height, feature, dist, workers)
		return
	}

	s := getScratch(max(width, height))
	defer putScratch(s)

	for x := 0; x < width; x++ {
		sweepColumn(inside, width, height, feature, dist, x, s)
	}
	for y := 0; y < height; y++ {
		sweepRow(dist, width, y, s)
	}
}

// squaredDistanceFieldParallel partitions the column sweeps, then the row
// sweeps, across workers goroutines. Sweeps within a pass touch disjoint
// cells and the inside mask is read-only, so the only synchronization
// needed is the barrier between the passes. Each goroutine takes its own
// scratch; sharing one across concurrent sweeps would corrupt the envelope
// state.
func squaredDistanceFieldParallel(inside []bool, width, height int, feature bool, dist []float64, workers int) {
	var wg sync.WaitGroup

	columnsPerWorker := (width + workers - 1) / workers
	for w := 0; w < workers; w++ {
		start := w * columnsPerWorker
		end := start + columnsPerWorker
		if end > width {
			end = width
		}
		if start >= end {
			continue
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			s := getScratch(max(width, height))
			defer putScratch(s)
			for x := start; x < end; x++ {
				sweepColumn(inside, width, height, feature, dist, x, s)
			}
		}(start, end)
	}
	wg.Wait()

	rowsPerWorker := (height + workers - 1) / workers
	for w := 0; w < workers; w++ {
		start := w * rowsPerWorker
		end := start + rowsPerWorker
		if end > height {
			end = height
		}
		if start >= end {
			continue
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			s := getScratch(max(width, height))
			defer putScratch(s)
			for y := start; y < end; y++ {
				sweepRow(dist, width, y, s)
			}
		}(start, end)
	}
	wg.Wait()
}

// sweepColumn runs pass 1 for column x: squared distance to the nearest
// feature row within the column, written into dist.
func sweepColumn(inside []bool, width, height int, feature bool, dist []float64, x int, s *edtScratch) {
	f := s.f[:height]
	d := s.d[:height]
	for y := 0; y < height; y++ {
		if inside[y*width+x] == feature {
			f[y] = 0
		} else {
			f[y] = distInf
		}
	}
	distanceTransform1D(f, d, s.v, s.z)
	for y := 0; y < height; y++ {
		dist[y*width+x] = d[y]
	}
}

// sweepRow runs pass 2 for row y, transforming the pass-1 results in place.
func sweepRow(dist []float64, width, y int, s *edtScratch) {
	f := s.f[:width]
	d := s.d[:width]
	row := dist[y*width : (y+1)*width]
	copy(f, row)
	distanceTransform1D(f, d, s.v, s.z)
	copy(row, d)
}
