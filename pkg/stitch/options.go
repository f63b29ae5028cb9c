package stitch

import (
	"path/filepath"

	"github.com/matzehuels/spritestitch/pkg/atlas"
	"github.com/matzehuels/spritestitch/pkg/codec"
	"github.com/matzehuels/spritestitch/pkg/errors"
)

// =============================================================================
// Default Values - shared by the CLI and the configuration file
// =============================================================================

const (
	// DefaultPadding is the transparent border, in pixels, kept between
	// neighbouring sprites.
	DefaultPadding = 2

	// DefaultMaxWidth is the maximum atlas width in pixels.
	DefaultMaxWidth = 4096

	// DefaultAtlasName is the file name of the atlas image.
	DefaultAtlasName = "atlas.png"

	// DefaultStitchedDir is the output directory, relative to the input
	// directory, for stitched atlases.
	DefaultStitchedDir = "stitched"

	// DefaultUnstitchedDir is the output directory, relative to the atlas
	// directory, for extracted sprites.
	DefaultUnstitchedDir = "unstitched"
)

// Options configures a stitch.
type Options struct {
	// Padding is the number of transparent pixels between sprites.
	// Zero packs sprites edge to edge.
	Padding int

	// MaxWidth bounds the atlas width. Zero means DefaultMaxWidth.
	MaxWidth int

	// OutputDir receives the atlas and its metadata. Required.
	OutputDir string

	// AtlasName is the atlas file name. Empty means DefaultAtlasName.
	// The metadata file takes the same name with a .json extension.
	AtlasName string

	// LogicalPath, when set, replaces the atlas path recorded in the
	// metadata "image" field (for example an engine asset path). The file
	// is still written to OutputDir.
	LogicalPath string

	// Compression selects the PNG compression level of the atlas.
	Compression codec.Compression

	// Refresh bypasses the pack cache and recomputes the layout.
	Refresh bool
}

// DefaultOptions returns options with default padding and width that
// write into the "stitched" subdirectory of inputDir.
func DefaultOptions(inputDir string) Options {
	return Options{
		Padding:   DefaultPadding,
		MaxWidth:  DefaultMaxWidth,
		OutputDir: filepath.Join(inputDir, DefaultStitchedDir),
		AtlasName: DefaultAtlasName,
	}
}

// ValidateAndSetDefaults fills empty fields and checks the rest.
func (o *Options) ValidateAndSetDefaults() error {
	if o.MaxWidth == 0 {
		o.MaxWidth = DefaultMaxWidth
	}
	if o.AtlasName == "" {
		o.AtlasName = DefaultAtlasName
	}
	if o.Padding < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "padding must be non-negative, got %d", o.Padding)
	}
	if o.MaxWidth < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "max width must be positive, got %d", o.MaxWidth)
	}
	if o.OutputDir == "" {
		return errors.New(errors.ErrCodeInvalidInput, "output directory is required")
	}
	if err := errors.ValidateAtlasName(o.AtlasName); err != nil {
		return err
	}
	if _, err := o.Compression.Level(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid compression")
	}
	return nil
}

// AtlasPath returns the path the atlas image is written to.
func (o Options) AtlasPath() string {
	name := o.AtlasName
	if name == "" {
		name = DefaultAtlasName
	}
	return filepath.Join(o.OutputDir, name)
}

// OutputPaths returns the output directory and the atlas and metadata
// files a stitch with o writes. Pass them as ScanOptions.Exclude so a
// re-stitch never reads its own output.
func (o Options) OutputPaths() []string {
	atlasPath := o.AtlasPath()
	return []string{o.OutputDir, atlasPath, atlas.MetadataPath(atlasPath)}
}

// UnstitchOptions configures an unstitch.
type UnstitchOptions struct {
	// AtlasPath is the atlas image. Its metadata is expected next to it
	// with a .json extension.
	AtlasPath string

	// OutputDir receives the extracted sprites. Empty means the
	// "unstitched" subdirectory next to the atlas.
	OutputDir string

	// Compression selects the PNG compression level of extracted sprites.
	Compression codec.Compression
}

// ValidateAndSetDefaults fills empty fields and checks the rest.
func (o *UnstitchOptions) ValidateAndSetDefaults() error {
	if o.AtlasPath == "" {
		return errors.New(errors.ErrCodeInvalidInput, "atlas path is required")
	}
	if o.OutputDir == "" {
		o.OutputDir = filepath.Join(filepath.Dir(o.AtlasPath), DefaultUnstitchedDir)
	}
	if _, err := o.Compression.Level(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid compression")
	}
	return nil
}

// ScanOptions selects the sprite files LoadSprites reads.
type ScanOptions struct {
	// Recursive descends into subdirectories. Sprite names are always the
	// base file name, so two files with the same name in different
	// directories collide.
	Recursive bool

	// Extensions limits the files read. Empty means ".png".
	Extensions []string

	// SkipDirs names directories never scanned.
	SkipDirs []string

	// Exclude lists files and directories, by path, that are never read.
	// See [Options.OutputPaths].
	Exclude []string
}
