package atlas

// ShelfAllocator packs variable-size rectangles into a fixed area using
// horizontal shelves. Rectangles go left to right on a shelf; when none
// of the existing shelves can take a rectangle, a new shelf opens below
// the last one. The last shelf may still grow in height to accept a
// rectangle taller than anything placed on it so far.
//
// Shelf packing wastes some vertical space on mixed heights but
// allocates in O(shelves) and never moves placed rectangles, which is
// what an incrementally filled glyph page needs.
type ShelfAllocator struct {
	width   int
	height  int
	padding int
	shelves []shelf

	// used is the total unpadded area of placed rectangles.
	used int
}

// shelf is one horizontal strip. x is the next free position on the
// strip; height only grows while the strip is the last one.
type shelf struct {
	y      int
	height int
	x      int
}

// NewShelfAllocator creates an allocator covering a width x height area.
// padding is reserved to the right of and below every placed rectangle.
func NewShelfAllocator(width, height, padding int) *ShelfAllocator {
	return &ShelfAllocator{
		width:   width,
		height:  height,
		padding: padding,
		shelves: make([]shelf, 0, 16),
	}
}

// Allocate reserves space for a w x h rectangle and returns its top-left
// position. ok is false when no shelf can take the rectangle and there
// is no room left for a new one; the allocator is unchanged in that case.
func (a *ShelfAllocator) Allocate(w, h int) (x, y int, ok bool) {
	paddedW := w + a.padding
	paddedH := h + a.padding

	for i := range a.shelves {
		s := &a.shelves[i]
		if s.x+paddedW > a.width {
			continue
		}
		if h <= s.height {
			x, y = s.x, s.y
			s.x += paddedW
			a.used += w * h
			return x, y, true
		}
		// Too tall for this strip. The last strip may grow downward
		// while the area below it is still unclaimed.
		if i == len(a.shelves)-1 && s.y+paddedH <= a.height {
			s.height = h
			x, y = s.x, s.y
			s.x += paddedW
			a.used += w * h
			return x, y, true
		}
	}

	y = 0
	if n := len(a.shelves); n > 0 {
		last := &a.shelves[n-1]
		y = last.y + last.height + a.padding
	}
	if y+paddedH > a.height {
		return -1, -1, false
	}
	a.shelves = append(a.shelves, shelf{y: y, height: h, x: paddedW})
	a.used += w * h
	return 0, y, true
}

// CanFit reports whether a w x h rectangle could currently be placed,
// without placing it.
func (a *ShelfAllocator) CanFit(w, h int) bool {
	paddedW := w + a.padding
	paddedH := h + a.padding
	if paddedW > a.width || paddedH > a.height {
		return false
	}

	for i := range a.shelves {
		s := &a.shelves[i]
		if s.x+paddedW > a.width {
			continue
		}
		if h <= s.height {
			return true
		}
		if i == len(a.shelves)-1 && s.y+paddedH <= a.height {
			return true
		}
	}

	y := 0
	if n := len(a.shelves); n > 0 {
		last := a.shelves[n-1]
		y = last.y + last.height + a.padding
	}
	return y+paddedH <= a.height
}

// Reset clears all allocations, allowing the allocator to be reused.
func (a *ShelfAllocator) Reset() {
	a.shelves = a.shelves[:0] // keep capacity
	a.used = 0
}

// ShelfCount returns the number of shelves currently in use.
func (a *ShelfAllocator) ShelfCount() int {
	return len(a.shelves)
}

// UsedArea returns the total unpadded area of placed rectangles.
func (a *ShelfAllocator) UsedArea() int {
	return a.used
}

// Utilization returns the fraction of the area covered by placed
// rectangles (0.0 to 1.0).
func (a *ShelfAllocator) Utilization() float64 {
	if a.width <= 0 || a.height <= 0 {
		return 0
	}
	return float64(a.used) / float64(a.width*a.height)
}

// RemainingHeight returns the vertical space still available for new
// shelves.
func (a *ShelfAllocator) RemainingHeight() int {
	if len(a.shelves) == 0 {
		return a.height
	}
	last := a.shelves[len(a.shelves)-1]
	used := last.y + last.height + a.padding
	if used >= a.height {
		return 0
	}
	return a.height - used
}
