package stitch

import (
	"context"
	"encoding/json"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/spritestitch/pkg/atlas"
	"github.com/matzehuels/spritestitch/pkg/cache"
	"github.com/matzehuels/spritestitch/pkg/canvas"
	"github.com/matzehuels/spritestitch/pkg/codec"
	"github.com/matzehuels/spritestitch/pkg/errors"
	"github.com/matzehuels/spritestitch/pkg/observability"
	"github.com/matzehuels/spritestitch/pkg/pack"
	"github.com/matzehuels/spritestitch/pkg/scan"
	"github.com/matzehuels/spritestitch/pkg/sprite"
)

// Sprite is one decoded source image.
type Sprite struct {
	Name  string // file name including extension; the key in the metadata
	Path  string // source path, empty for sprites built in memory
	Image image.Image
}

// Descriptor returns the name and pixel size of s.
func (s Sprite) Descriptor() sprite.Descriptor {
	d := sprite.Descriptor{Name: s.Name}
	if s.Image != nil {
		size := s.Image.Bounds().Size()
		d.Width, d.Height = size.X, size.Y
	}
	return d
}

// Result is a finished stitch held in memory. Nothing is on disk until
// [Stitcher.Write] is called.
type Result struct {
	Canvas       *image.NRGBA
	Metadata     *atlas.Metadata
	AtlasPath    string // where the atlas will be written
	MetadataPath string // where the metadata will be written
	Utilization  float64
	CacheHit     bool // the layout came from the pack cache

	compression codec.Compression
}

// Width returns the atlas width in pixels.
func (r *Result) Width() int { return r.Canvas.Bounds().Dx() }

// Height returns the atlas height in pixels.
func (r *Result) Height() int { return r.Canvas.Bounds().Dy() }

// Stitcher runs stitch and unstitch operations.
//
// The Stitcher holds no per-run state: only the pack cache and the
// logger. Both directions may be called repeatedly with the same value.
type Stitcher struct {
	Cache    cache.Cache
	CacheTTL time.Duration // lifetime of cached layouts; zero never expires
	Logger   *log.Logger
}

// New creates a stitcher. A nil cache disables layout caching and a nil
// logger uses log.Default().
func New(c cache.Cache, logger *log.Logger) *Stitcher {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Stitcher{Cache: c, CacheTTL: cache.TTLPack, Logger: logger}
}

// LoadSprites decodes every sprite file in dir, in lexical path order.
// A directory without matching files is EMPTY_INPUT; a file that cannot
// be decoded is UNREADABLE_SOURCE.
func (s *Stitcher) LoadSprites(ctx context.Context, dir string, opts ScanOptions) ([]Sprite, error) {
	paths, err := scan.Dir(dir, scan.Options{
		Recursive:  opts.Recursive,
		Extensions: opts.Extensions,
		SkipDirs:   opts.SkipDirs,
		Exclude:    opts.Exclude,
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnreadableSource, err, "read input directory %s", dir)
	}
	if len(paths) == 0 {
		return nil, errors.New(errors.ErrCodeEmptyInput, "no sprites found in %s", dir)
	}

	c := codec.Default()
	sprites := make([]Sprite, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		img, format, err := c.Decode(path)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeUnreadableSource, err, "read sprite %s", path)
		}
		size := img.Bounds().Size()
		s.Logger.Debug("loaded sprite", "path", path, "format", format, "size", fmt.Sprintf("%dx%d", size.X, size.Y))
		sprites = append(sprites, Sprite{Name: filepath.Base(path), Path: path, Image: img})
	}
	return sprites, nil
}

// Stitch packs sprites, in the order given, into one canvas and builds the
// metadata describing it. Nothing is written to disk.
//
// An empty batch is EMPTY_INPUT. Duplicate names are NAME_COLLISION and a
// missing or zero-sized image is INVALID_SPRITE. A sprite wider than the
// atlas allows is SPRITE_TOO_WIDE and the batch is rejected before any
// canvas is allocated.
func (s *Stitcher) Stitch(ctx context.Context, sprites []Sprite, opts Options) (*Result, error) {
	start := time.Now()
	observability.Stitch().OnStitchStart(ctx, len(sprites))

	res, err := s.stitch(ctx, sprites, opts)

	var w, h int
	if res != nil {
		w, h = res.Width(), res.Height()
	}
	observability.Stitch().OnStitchComplete(ctx, len(sprites), w, h, time.Since(start), err)
	return res, err
}

func (s *Stitcher) stitch(ctx context.Context, sprites []Sprite, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if len(sprites) == 0 {
		return nil, errors.New(errors.ErrCodeEmptyInput, "no sprites to stitch")
	}

	descs := make([]sprite.Descriptor, len(sprites))
	for i, sp := range sprites {
		if sp.Image == nil {
			return nil, errors.New(errors.ErrCodeInvalidSprite, "sprite %q has no image", sp.Name)
		}
		if err := errors.ValidateSpriteName(sp.Name); err != nil {
			return nil, err
		}
		descs[i] = sp.Descriptor()
	}
	if err := sprite.ValidateSet(descs); err != nil {
		return nil, err
	}

	start := time.Now()
	layout, hit, err := s.packWithCache(ctx, descs, opts)
	if err != nil {
		return nil, err
	}
	s.Logger.Info("packed sprites",
		"sprites", len(descs),
		"size", fmt.Sprintf("%dx%d", layout.Width, layout.Height),
		"utilization", fmt.Sprintf("%.1f%%", layout.Utilization()*100),
		"cached", hit,
		"duration", time.Since(start))

	layers := make([]canvas.Layer, 0, len(sprites))
	for _, sp := range sprites {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		layers = append(layers, canvas.Layer{
			Name:  sp.Name,
			Image: sp.Image,
			Rect:  layout.Placements[sp.Name],
		})
	}
	img, err := canvas.Compose(layout.Width, layout.Height, layers)
	if err != nil {
		return nil, err
	}

	atlasPath := opts.AtlasPath()
	ref := atlasPath
	if opts.LogicalPath != "" {
		ref = opts.LogicalPath
	}
	md := atlas.New(filepath.ToSlash(ref))
	for name, r := range layout.Placements {
		md.Sprites[name] = r
	}

	return &Result{
		Canvas:       img,
		Metadata:     md,
		AtlasPath:    atlasPath,
		MetadataPath: atlas.MetadataPath(atlasPath),
		Utilization:  layout.Utilization(),
		CacheHit:     hit,
		compression:  opts.Compression,
	}, nil
}

// packWithCache packs descs, reusing a cached layout for the same batch,
// padding and width. Packing is deterministic, so a cached layout is
// always the layout Pack would compute.
func (s *Stitcher) packWithCache(ctx context.Context, descs []sprite.Descriptor, opts Options) (*pack.Result, bool, error) {
	key := cache.PackKey(descs, opts.Padding, opts.MaxWidth)

	if !opts.Refresh {
		if data, hit, err := s.Cache.Get(ctx, key); err == nil && hit {
			var cached pack.Result
			if err := json.Unmarshal(data, &cached); err == nil && coversAll(&cached, descs) {
				observability.Cache().OnCacheHit(ctx, "pack")
				return &cached, true, nil
			}
			s.Logger.Debug("discarding unusable cached layout", "key", key)
		}
	}

	observability.Cache().OnCacheMiss(ctx, "pack")

	res, err := pack.Pack(descs, opts.Padding, opts.MaxWidth)
	if err != nil {
		return nil, false, err
	}

	if data, err := json.Marshal(res); err == nil {
		if err := s.Cache.Set(ctx, key, data, s.CacheTTL); err != nil {
			s.Logger.Debug("cache write failed", "error", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "pack", len(data))
		}
	}
	return res, false, nil
}

// coversAll reports whether res places exactly the sprites in descs at
// their sizes.
func coversAll(res *pack.Result, descs []sprite.Descriptor) bool {
	if len(res.Placements) != len(descs) {
		return false
	}
	for _, d := range descs {
		r, ok := res.Placements[d.Name]
		if !ok || r.Width != d.Width || r.Height != d.Height {
			return false
		}
	}
	return true
}

// Write stores the atlas image and then its metadata. Both files are
// encoded to temporary files first, so an encoding failure leaves any
// previous pair untouched. If the metadata cannot be moved into place the
// new atlas is removed and a previous atlas is restored, so a run leaves
// either both new files or the files that were there before.
func (s *Stitcher) Write(ctx context.Context, res *Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	dir := filepath.Dir(res.AtlasPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "create output directory %s", dir)
	}

	c, err := codec.New(res.compression)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid compression")
	}

	atlasTmp, err := codec.WriteTemp(res.AtlasPath, func(w io.Writer) error {
		return c.Encode(w, res.Canvas)
	})
	if err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "write atlas")
	}
	defer os.Remove(atlasTmp)

	mdTmp, err := codec.WriteTemp(res.MetadataPath, func(w io.Writer) error {
		return atlas.Write(w, res.Metadata)
	})
	if err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "write metadata")
	}
	defer os.Remove(mdTmp)

	backup := ""
	if _, err := os.Lstat(res.AtlasPath); err == nil {
		backup = codec.TempName(res.AtlasPath, ".bak")
		if err := os.Rename(res.AtlasPath, backup); err != nil {
			return errors.Wrap(errors.ErrCodeWriteFailed, err, "move previous atlas aside")
		}
	}
	restore := func() {
		if backup == "" {
			return
		}
		if err := os.Rename(backup, res.AtlasPath); err != nil {
			s.Logger.Warn("could not restore previous atlas", "path", res.AtlasPath, "backup", backup, "error", err)
		}
	}

	if err := os.Rename(atlasTmp, res.AtlasPath); err != nil {
		restore()
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "write atlas")
	}
	if err := os.Rename(mdTmp, res.MetadataPath); err != nil {
		if rmErr := os.Remove(res.AtlasPath); rmErr != nil {
			s.Logger.Warn("could not remove atlas after failed metadata write", "path", res.AtlasPath, "error", rmErr)
		}
		restore()
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "write metadata")
	}
	if backup != "" {
		os.Remove(backup)
	}

	s.Logger.Info("wrote atlas", "atlas", res.AtlasPath, "metadata", res.MetadataPath)
	return nil
}
