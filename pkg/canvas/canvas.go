// Package canvas composites sprites into an atlas image and crops them
// back out.
//
// All pixel work happens on *image.NRGBA (8-bit, non-premultiplied RGBA).
// Sprites are copied row by row with no blending or resampling, so a
// sprite cropped from the canvas at its rectangle is identical to the
// NRGBA form of the original. Sources in other color models are converted
// to NRGBA once on the way in; 16-bit sources are reduced to 8 bits per
// channel.
package canvas

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/matzehuels/spritestitch/pkg/errors"
	"github.com/matzehuels/spritestitch/pkg/sprite"
)

// Layer is one sprite to draw onto the canvas.
type Layer struct {
	Name  string
	Image image.Image
	Rect  sprite.Rect
}

// Compose creates a transparent width x height canvas and copies every
// layer into its rectangle. The rectangle size must match the layer's
// image size and lie inside the canvas.
func Compose(width, height int, layers []Layer) (*image.NRGBA, error) {
	if width < 0 || height < 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "invalid canvas size %dx%d", width, height)
	}
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))

	for _, l := range layers {
		size := l.Image.Bounds().Size()
		if size.X != l.Rect.Width || size.Y != l.Rect.Height {
			return nil, errors.New(errors.ErrCodeInvalidSprite,
				"sprite %q is %dx%d but its placement is %dx%d",
				l.Name, size.X, size.Y, l.Rect.Width, l.Rect.Height)
		}
		if !l.Rect.Bounds().In(dst.Bounds()) {
			return nil, errors.New(errors.ErrCodeInternal,
				"placement %v of sprite %q is outside the %dx%d canvas", l.Rect, l.Name, width, height)
		}
		blit(dst, image.Pt(l.Rect.X, l.Rect.Y), ToNRGBA(l.Image))
	}
	return dst, nil
}

// Crop copies r out of src into a new image whose bounds start at (0, 0).
// r is in src's coordinate space. Only the pixels inside r are read.
func Crop(src image.Image, r sprite.Rect) (*image.NRGBA, error) {
	if r.Empty() || !r.Bounds().In(src.Bounds()) {
		return nil, errors.New(errors.ErrCodeCropFailed,
			"rectangle %v is outside the %v atlas", r, src.Bounds().Size())
	}
	dst := image.NewNRGBA(image.Rect(0, 0, r.Width, r.Height))
	if n, ok := src.(*image.NRGBA); ok {
		blit(dst, image.Point{}, n.SubImage(r.Bounds()).(*image.NRGBA))
		return dst, nil
	}
	draw.Draw(dst, dst.Bounds(), src, r.Bounds().Min, draw.Src)
	return dst, nil
}

// ToNRGBA returns img as *image.NRGBA, converting if necessary. The
// result keeps img's bounds.
func ToNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok {
		return n
	}
	b := img.Bounds()
	dst := image.NewNRGBA(b)
	draw.Draw(dst, b, img, b.Min, draw.Src)
	return dst
}

// blit copies all of src into dst with src's top-left corner at at.
// The caller guarantees the destination rectangle is inside dst.
func blit(dst *image.NRGBA, at image.Point, src *image.NRGBA) {
	b := src.Bounds()
	rowBytes := b.Dx() * 4
	for y := 0; y < b.Dy(); y++ {
		si := src.PixOffset(b.Min.X, b.Min.Y+y)
		di := dst.PixOffset(at.X, at.Y+y)
		copy(dst.Pix[di:di+rowBytes], src.Pix[si:si+rowBytes])
	}
}

// Equal reports whether a and b have the same size and the same NRGBA
// pixel values. Bounds offsets are ignored.
func Equal(a, b image.Image) bool {
	ab, bb := a.Bounds(), b.Bounds()
	if ab.Size() != bb.Size() {
		return false
	}
	for y := 0; y < ab.Dy(); y++ {
		for x := 0; x < ab.Dx(); x++ {
			ca := color.NRGBAModel.Convert(a.At(ab.Min.X+x, ab.Min.Y+y))
			cb := color.NRGBAModel.Convert(b.At(bb.Min.X+x, bb.Min.Y+y))
			if ca != cb {
				return false
			}
		}
	}
	return true
}
