package pack

import (
	"github.com/matzehuels/spritestitch/pkg/errors"
	"github.com/matzehuels/spritestitch/pkg/sprite"
)

// Result is the outcome of a packing run.
type Result struct {
	Placements map[string]sprite.Rect `json:"placements"`
	Width      int                    `json:"width"`
	Height     int                    `json:"height"`
}

// Utilization returns the fraction of the canvas covered by sprites
// (0.0 to 1.0). Padding counts as unused space.
func (r *Result) Utilization() float64 {
	if r.Width <= 0 || r.Height <= 0 {
		return 0
	}
	used := 0
	for _, rect := range r.Placements {
		used += rect.Width * rect.Height
	}
	return float64(used) / float64(r.Width*r.Height)
}

// Pack places sprites on a canvas no wider than maxWidth using a best-fit
// skyline with the bottom-left rule.
//
// Sprites are placed in the order given; a different order can give a
// different (still valid) packing. Each sprite occupies a cell of
// (width+padding) x (height+padding) and is centred in it, so the recorded
// rectangle is offset by padding/2 from the cell's corner.
//
// The whole batch is rejected with SPRITE_TOO_WIDE before anything is
// placed if any sprite's padded width exceeds maxWidth. An empty batch
// yields a 0x0 canvas and no error.
func Pack(sprites []sprite.Descriptor, padding, maxWidth int) (*Result, error) {
	if padding < 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "padding must be non-negative, got %d", padding)
	}
	if maxWidth <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "max width must be positive, got %d", maxWidth)
	}
	if err := sprite.ValidateSet(sprites); err != nil {
		return nil, err
	}
	for _, s := range sprites {
		if s.Width+padding > maxWidth {
			return nil, errors.New(errors.ErrCodeSpriteTooWide,
				"sprite %q is %dpx wide (%dpx with padding), atlas max width is %dpx",
				s.Name, s.Width, s.Width+padding, maxWidth)
		}
	}

	res := &Result{Placements: make(map[string]sprite.Rect, len(sprites))}
	sky := NewSkyline(maxWidth)
	half := padding / 2

	for _, s := range sprites {
		cellW := s.Width + padding
		cellH := s.Height + padding

		x, y, ok := sky.Fit(cellW)
		if !ok {
			// Start a fresh row below everything placed so far.
			sky.Reset(res.Height)
			x, y = 0, res.Height
		}

		res.Placements[s.Name] = sprite.Rect{
			X:      x + half,
			Y:      y + half,
			Width:  s.Width,
			Height: s.Height,
		}
		sky.Place(x, cellW, y+cellH)

		res.Width = max(res.Width, x+cellW)
		res.Height = max(res.Height, y+cellH)
	}

	return res, nil
}
