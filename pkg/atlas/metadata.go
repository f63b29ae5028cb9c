package atlas

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/matzehuels/spritestitch/pkg/errors"
	"github.com/matzehuels/spritestitch/pkg/sprite"
)

// Metadata binds every sprite name to its rectangle in the atlas image.
// It is the only record needed to reverse a stitch.
type Metadata struct {
	// Image is the atlas path written at stitch time, or a logical
	// reference (for example an engine asset path) supplied by the caller.
	Image string `json:"image"`

	// Sprites maps the original file name (with extension) to its placement.
	Sprites map[string]sprite.Rect `json:"sprites"`
}

// New returns empty metadata referencing image.
func New(image string) *Metadata {
	return &Metadata{Image: image, Sprites: make(map[string]sprite.Rect)}
}

// Names returns the sprite names in lexical order.
func (m *Metadata) Names() []string {
	names := make([]string, 0, len(m.Sprites))
	for name := range m.Sprites {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Bounds returns the smallest width and height that contain every sprite.
func (m *Metadata) Bounds() (width, height int) {
	for _, r := range m.Sprites {
		width = max(width, r.X+r.Width)
		height = max(height, r.Y+r.Height)
	}
	return width, height
}

// Validate checks that the metadata describes at least one sprite and that
// every rectangle is non-negative with a positive size.
func (m *Metadata) Validate() error {
	if len(m.Sprites) == 0 {
		return errors.New(errors.ErrCodeMetadataCorrupt, "metadata contains no sprites")
	}
	for _, name := range m.Names() {
		r := m.Sprites[name]
		if name == "" {
			return errors.New(errors.ErrCodeMetadataCorrupt, "metadata contains a sprite with an empty name")
		}
		if r.X < 0 || r.Y < 0 || r.Empty() {
			return errors.New(errors.ErrCodeMetadataCorrupt, "sprite %q has invalid rectangle %v", name, r)
		}
	}
	return nil
}

// Write encodes m as indented JSON:
//
//	{
//	  "image": "stitched/atlas.png",
//	  "sprites": {
//	    "coin.png": {"x": 35, "y": 1, "width": 16, "height": 16}
//	  }
//	}
//
// Sprite keys are emitted in sorted order. HTML characters in names are not
// escaped, so names round-trip byte for byte.
func Write(w io.Writer, m *Metadata) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Read decodes metadata from r and validates it. Malformed JSON, a missing
// or empty sprite map and invalid rectangles are all METADATA_CORRUPT.
// Read does not close r.
func Read(r io.Reader) (*Metadata, error) {
	var m Metadata
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, errors.Wrap(errors.ErrCodeMetadataCorrupt, err, "decode metadata")
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Load reads the metadata file at path. A file that does not exist is
// METADATA_MISSING; everything else follows [Read].
func Load(path string) (*Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeMetadataMissing, err, "metadata file %s not found", path)
		}
		return nil, errors.Wrap(errors.ErrCodeMetadataMissing, err, "open %s", path)
	}
	defer f.Close()

	m, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Save writes m to a file at path.
func Save(path string, m *Metadata) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(f, m); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// MetadataPath returns the metadata file that belongs to an atlas image:
// the same path with a .json extension.
func MetadataPath(atlasPath string) string {
	return strings.TrimSuffix(atlasPath, filepath.Ext(atlasPath)) + ".json"
}
