package sprite

import (
	"testing"

	"github.com/matzehuels/spritestitch/pkg/errors"
)

func TestDescriptorValidate(t *testing.T) {
	tests := []struct {
		name string
		d    Descriptor
		code errors.Code
	}{
		{"valid", Descriptor{Name: "a.png", Width: 1, Height: 1}, ""},
		{"empty name", Descriptor{Width: 1, Height: 1}, errors.ErrCodeInvalidSprite},
		{"zero width", Descriptor{Name: "a.png", Height: 1}, errors.ErrCodeInvalidSprite},
		{"negative height", Descriptor{Name: "a.png", Width: 1, Height: -4}, errors.ErrCodeInvalidSprite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.d.Validate()
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("Validate() code = %q, want %q (err=%v)", got, tt.code, err)
			}
		})
	}
}

func TestValidateSet(t *testing.T) {
	tests := []struct {
		name string
		set  []Descriptor
		code errors.Code
	}{
		{"empty", nil, ""},
		{"unique", []Descriptor{{"a.png", 1, 1}, {"b.png", 2, 2}}, ""},
		{"duplicate", []Descriptor{{"a.png", 1, 1}, {"a.png", 2, 2}}, errors.ErrCodeNameCollision},
		{"invalid member", []Descriptor{{"a.png", 1, 1}, {"b.png", 0, 2}}, errors.ErrCodeInvalidSprite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.GetCode(ValidateSet(tt.set)); got != tt.code {
				t.Errorf("ValidateSet() code = %q, want %q", got, tt.code)
			}
		})
	}
}

func TestRectOverlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}

	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"identical", a, true},
		{"touching right edge", Rect{X: 10, Y: 0, Width: 5, Height: 5}, false},
		{"touching bottom edge", Rect{X: 0, Y: 10, Width: 5, Height: 5}, false},
		{"one pixel inside", Rect{X: 9, Y: 9, Width: 5, Height: 5}, true},
		{"far away", Rect{X: 100, Y: 100, Width: 1, Height: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectExpand(t *testing.T) {
	got := Rect{X: 1, Y: 1, Width: 10, Height: 10}.Expand(1)
	want := Rect{X: 0, Y: 0, Width: 12, Height: 12}
	if got != want {
		t.Errorf("Expand() = %v, want %v", got, want)
	}
}

func TestTotalArea(t *testing.T) {
	set := []Descriptor{{"a", 2, 3}, {"b", 4, 5}}
	if got := TotalArea(set); got != 26 {
		t.Errorf("TotalArea() = %d, want 26", got)
	}
}
