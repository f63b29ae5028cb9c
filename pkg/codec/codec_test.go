package codec

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestSupported(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"a.png", true},
		{"a.PNG", true},
		{"dir/a.jpeg", true},
		{"a.webp", true},
		{"a.bmp", true},
		{"a.tiff", true},
		{"a.json", false},
		{"a", false},
	}
	for _, tt := range tests {
		if got := Supported(tt.path); got != tt.want {
			t.Errorf("Supported(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestCompressionLevel(t *testing.T) {
	for _, c := range []Compression{"", CompressionDefault, CompressionNone, CompressionSpeed, CompressionBest} {
		if _, err := c.Level(); err != nil {
			t.Errorf("Level(%q) error: %v", c, err)
		}
	}
	if _, err := Compression("ultra").Level(); err == nil {
		t.Error("Level(ultra) error = nil, want error")
	}
	if _, err := New("ultra"); err == nil {
		t.Error("New(ultra) error = nil, want error")
	}
}

func TestEncodeDecodeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sprite.png")

	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 40})
	img.SetNRGBA(2, 1, color.NRGBA{R: 255, A: 255})

	c, err := New(CompressionBest)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.EncodeFile(path, img); err != nil {
		t.Fatalf("EncodeFile() error: %v", err)
	}

	got, format, err := c.Decode(path)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if format != "png" {
		t.Errorf("format = %q, want png", format)
	}
	if got.Bounds() != img.Bounds() {
		t.Fatalf("bounds = %v, want %v", got.Bounds(), img.Bounds())
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			want := img.NRGBAAt(x, y)
			if c := color.NRGBAModel.Convert(got.At(x, y)); c != want {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, c, want)
			}
		}
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want only the PNG (temp file leaked?)", len(entries))
	}
}

func TestDecodeJPEG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "photo.jpg")
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 8, 4)), nil); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}

	img, format, err := Default().Decode(path)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if format != "jpeg" || img.Bounds().Dx() != 8 || img.Bounds().Dy() != 4 {
		t.Errorf("Decode() = %s %v, want jpeg 8x4", format, img.Bounds())
	}
}

func TestDecodeMissing(t *testing.T) {
	_, _, err := Default().Decode(filepath.Join(t.TempDir(), "missing.png"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Decode() error = %v, want fs.ErrNotExist", err)
	}
}

func TestDecodeGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.png")
	if err := os.WriteFile(path, []byte("definitely not a png"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Default().Decode(path); err == nil {
		t.Error("Decode() error = nil, want decode error")
	}
}

func TestWriteFileAtomicFailureKeepsOriginal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "atlas.json")
	if err := os.WriteFile(path, []byte("original"), 0644); err != nil {
		t.Fatal(err)
	}

	boom := errors.New("boom")
	err := WriteFileAtomic(path, func(w io.Writer) error {
		_, _ = w.Write([]byte("partial"))
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("WriteFileAtomic() error = %v, want %v", err, boom)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "original" {
		t.Errorf("file content = %q, want original", data)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want 1 (temp file leaked?)", len(entries))
	}
}

func TestWriteTemp(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "atlas.png")

	tmp, err := WriteTemp(path, func(w io.Writer) error {
		_, err := w.Write([]byte("staged"))
		return err
	})
	if err != nil {
		t.Fatalf("WriteTemp() error: %v", err)
	}
	if filepath.Dir(tmp) != dir || tmp == path {
		t.Errorf("WriteTemp() = %q, want a sibling of %q", tmp, path)
	}
	if data, _ := os.ReadFile(tmp); string(data) != "staged" {
		t.Errorf("temp content = %q, want staged", data)
	}
	if _, err := os.Stat(path); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("target exists before rename: %v", err)
	}

	if _, err := WriteTemp(path, func(io.Writer) error { return errors.New("boom") }); err == nil {
		t.Error("WriteTemp() error = nil, want error")
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want only the first temp file", len(entries))
	}
}
