// Package sprite defines the input and output records of a packing run.
//
// A [Descriptor] names one sprite and gives its pixel size. A batch of
// descriptors is the only thing the packer looks at: it never sees pixels.
// A [Rect] is where a sprite ended up inside the atlas.
package sprite

import (
	"fmt"
	"image"

	"github.com/matzehuels/spritestitch/pkg/errors"
)

// Descriptor is the immutable description of one sprite in a batch.
type Descriptor struct {
	Name   string // unique within a batch; the original file name including extension
	Width  int
	Height int
}

// Validate checks that the sprite has a name and a positive size.
func (d Descriptor) Validate() error {
	if d.Name == "" {
		return errors.New(errors.ErrCodeInvalidSprite, "sprite name cannot be empty")
	}
	if d.Width <= 0 || d.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidSprite, "sprite %q has invalid size %dx%d", d.Name, d.Width, d.Height)
	}
	return nil
}

// Area returns Width*Height.
func (d Descriptor) Area() int { return d.Width * d.Height }

// Rect is a sprite's top-left position and original (un-padded) size
// within the atlas.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Bounds converts r to an image.Rectangle.
func (r Rect) Bounds() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// Expand returns r grown by n pixels on every side.
func (r Rect) Expand(n int) Rect {
	return Rect{X: r.X - n, Y: r.Y - n, Width: r.Width + 2*n, Height: r.Height + 2*n}
}

// Overlaps reports whether r and o share any pixel.
func (r Rect) Overlaps(o Rect) bool {
	return r.Bounds().Overlaps(o.Bounds())
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

func (r Rect) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.Width, r.Height, r.X, r.Y)
}

// ValidateSet checks a batch: every descriptor must be valid and names must
// be unique. An empty batch is valid; whether that is an error is up to the
// caller.
func ValidateSet(set []Descriptor) error {
	seen := make(map[string]struct{}, len(set))
	for _, d := range set {
		if err := d.Validate(); err != nil {
			return err
		}
		if _, dup := seen[d.Name]; dup {
			return errors.New(errors.ErrCodeNameCollision, "duplicate sprite name %q", d.Name)
		}
		seen[d.Name] = struct{}{}
	}
	return nil
}

// TotalArea sums the area of every sprite in set.
func TotalArea(set []Descriptor) int {
	total := 0
	for _, d := range set {
		total += d.Area()
	}
	return total
}
