package errors

import (
	"strings"
	"testing"
)

func TestValidateSpriteName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid png", "hero.png", false},
		{"valid with dash", "hero-idle_01.png", false},
		{"valid no extension", "hero", false},
		{"valid dotted", "ui.button.hover.png", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 300), true},
		{"dot", ".", true},
		{"dot dot", "..", true},
		{"traversal", "../hero.png", true},
		{"slash", "sub/hero.png", true},
		{"backslash", "sub\\hero.png", true},
		{"null byte", "hero\x00.png", true},
		{"newline", "hero\n.png", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSpriteName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSpriteName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("ValidateSpriteName(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidPath)
			}
		})
	}
}

func TestValidateAtlasName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", "atlas.png", false},
		{"valid upper ext", "atlas.PNG", false},
		{"valid dotted", "ui.atlas.png", false},

		{"empty", "", true},
		{"only extension", ".png", true},
		{"jpg", "atlas.jpg", true},
		{"no extension", "atlas", true},
		{"path", "out/atlas.png", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAtlasName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAtlasName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
