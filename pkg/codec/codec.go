// Package codec decodes sprite images and encodes atlases.
//
// Decoding accepts PNG, JPEG, GIF, BMP, TIFF and WebP. Atlases and
// extracted sprites are always encoded as PNG, which is lossless, so pixel
// data survives a stitch/unstitch round trip unchanged.
package codec

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Extensions lists the file extensions Decode understands, lower-case with
// the leading dot.
var Extensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".webp"}

// Supported reports whether path has an extension Decode understands.
func Supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// Compression selects the PNG compression level.
type Compression string

// Compression levels.
const (
	CompressionDefault Compression = "default"
	CompressionNone    Compression = "none"
	CompressionSpeed   Compression = "speed"
	CompressionBest    Compression = "best"
)

// Level maps c to the png package's compression level.
func (c Compression) Level() (png.CompressionLevel, error) {
	switch c {
	case "", CompressionDefault:
		return png.DefaultCompression, nil
	case CompressionNone:
		return png.NoCompression, nil
	case CompressionSpeed:
		return png.BestSpeed, nil
	case CompressionBest:
		return png.BestCompression, nil
	}
	return 0, fmt.Errorf("unknown compression %q (must be default, none, speed or best)", c)
}

// Codec decodes source images and encodes PNG output.
type Codec struct {
	encoder png.Encoder
}

// New returns a codec writing PNGs at the given compression.
func New(c Compression) (*Codec, error) {
	level, err := c.Level()
	if err != nil {
		return nil, err
	}
	return &Codec{encoder: png.Encoder{CompressionLevel: level}}, nil
}

// Default returns a codec with default PNG compression.
func Default() *Codec {
	return &Codec{encoder: png.Encoder{CompressionLevel: png.DefaultCompression}}
}

// Decode reads the image at path and returns it with its format name.
// A missing file yields an error matching fs.ErrNotExist.
func (c *Codec) Decode(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("decode %s: %w", path, err)
	}
	return img, format, nil
}

// Encode writes img to w as PNG.
func (c *Codec) Encode(w io.Writer, img image.Image) error {
	if err := c.encoder.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// EncodeFile writes img as a PNG file at path. The file appears atomically:
// readers see either the previous content or the complete new image.
func (c *Codec) EncodeFile(path string, img image.Image) error {
	return WriteFileAtomic(path, func(w io.Writer) error {
		return c.Encode(w, img)
	})
}
