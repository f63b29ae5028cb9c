package pack

import (
	"fmt"
	"sort"
)

// Segment is one horizontal span of the packing frontier. It starts at
// StartX and runs until the next segment's StartX (or the skyline limit for
// the last segment). Height is the occupied height across that span.
type Segment struct {
	StartX int
	Height int
}

// Skyline is the packing frontier: an ordered, gap-free sequence of
// segments covering [0, limit). It is owned by a single packing run.
//
// Invariants (checked by Validate):
//   - the first segment starts at X=0
//   - StartX is strictly increasing
//   - every StartX is below the limit
type Skyline struct {
	limit int
	segs  []Segment
}

// NewSkyline returns a flat skyline of height 0 spanning [0, limit).
func NewSkyline(limit int) *Skyline {
	s := &Skyline{limit: limit, segs: make([]Segment, 0, 16)}
	s.Reset(0)
	return s
}

// Reset collapses the skyline to a single segment at the given height.
func (s *Skyline) Reset(height int) {
	s.segs = append(s.segs[:0], Segment{StartX: 0, Height: height})
}

// Limit returns the exclusive right edge of the skyline.
func (s *Skyline) Limit() int { return s.limit }

// Segments returns a copy of the current profile.
func (s *Skyline) Segments() []Segment {
	out := make([]Segment, len(s.segs))
	copy(out, s.segs)
	return out
}

// end returns the exclusive right edge of segment i.
func (s *Skyline) end(i int) int {
	if i+1 < len(s.segs) {
		return s.segs[i+1].StartX
	}
	return s.limit
}

// HeightAt returns the height of the segment covering x.
func (s *Skyline) HeightAt(x int) int {
	i := sort.Search(len(s.segs), func(i int) bool { return s.segs[i].StartX > x }) - 1
	if i < 0 {
		i = 0
	}
	return s.segs[i].Height
}

// HeightOver returns the highest segment intersecting [x, x+width). A
// rectangle placed at x has to sit at least this high to clear everything
// already placed below it.
func (s *Skyline) HeightOver(x, width int) int {
	right := x + width
	top := 0
	for i, seg := range s.segs {
		if seg.StartX >= right {
			break
		}
		if s.end(i) <= x {
			continue
		}
		top = max(top, seg.Height)
	}
	return top
}

// Fit finds the lowest position for a rectangle of the given width. Every
// segment start is a candidate left edge; candidates whose right edge would
// pass the limit are skipped. Among the rest the lowest resting height wins,
// and ties go to the smallest x.
func (s *Skyline) Fit(width int) (x, y int, ok bool) {
	for _, seg := range s.segs {
		if seg.StartX+width > s.limit {
			continue
		}
		h := s.HeightOver(seg.StartX, width)
		if !ok || h < y {
			x, y, ok = seg.StartX, h, true
		}
	}
	return x, y, ok
}

// Place raises the span [x, x+width) to height top. Segments starting
// inside the span are removed, one segment covering the span is inserted,
// and a boundary segment continues the old profile from x+width onward.
func (s *Skyline) Place(x, width, top int) {
	right := x + width
	below := s.HeightAt(right)

	kept := s.segs[:0]
	hasBoundary := false
	for _, seg := range s.segs {
		if seg.StartX >= x && seg.StartX < right {
			continue
		}
		if seg.StartX == right {
			hasBoundary = true
		}
		kept = append(kept, seg)
	}
	s.segs = append(kept, Segment{StartX: x, Height: top})
	if right < s.limit && !hasBoundary {
		s.segs = append(s.segs, Segment{StartX: right, Height: below})
	}

	sort.Slice(s.segs, func(i, j int) bool { return s.segs[i].StartX < s.segs[j].StartX })
}

// MaxHeight returns the tallest segment.
func (s *Skyline) MaxHeight() int {
	top := 0
	for _, seg := range s.segs {
		top = max(top, seg.Height)
	}
	return top
}

// Validate checks the no-gap, no-overlap invariants.
func (s *Skyline) Validate() error {
	if len(s.segs) == 0 {
		return fmt.Errorf("skyline: no segments")
	}
	if s.segs[0].StartX != 0 {
		return fmt.Errorf("skyline: first segment starts at %d, want 0", s.segs[0].StartX)
	}
	for i, seg := range s.segs {
		if seg.StartX >= s.limit {
			return fmt.Errorf("skyline: segment %d starts at %d, past limit %d", i, seg.StartX, s.limit)
		}
		if seg.Height < 0 {
			return fmt.Errorf("skyline: segment %d has negative height %d", i, seg.Height)
		}
		if i > 0 && seg.StartX <= s.segs[i-1].StartX {
			return fmt.Errorf("skyline: segment %d starts at %d, not after %d", i, seg.StartX, s.segs[i-1].StartX)
		}
	}
	return nil
}
