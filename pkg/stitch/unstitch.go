package stitch

import (
	"context"
	stderrors "errors"
	"image"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/matzehuels/spritestitch/pkg/atlas"
	"github.com/matzehuels/spritestitch/pkg/canvas"
	"github.com/matzehuels/spritestitch/pkg/codec"
	"github.com/matzehuels/spritestitch/pkg/errors"
	"github.com/matzehuels/spritestitch/pkg/observability"
)

// Failure records one sprite that could not be extracted.
type Failure struct {
	Name string
	Err  error
}

// UnstitchResult summarizes an unstitch.
type UnstitchResult struct {
	Metadata  *atlas.Metadata
	OutputDir string
	Written   []string  // paths of the extracted sprites, in name order
	Failed    []Failure // sprites that were skipped, in name order
}

// Extract crops every sprite named in md out of img. Sprites whose
// rectangle does not lie inside img are skipped and reported as
// CROP_FAILED errors; the rest are still returned.
func Extract(img image.Image, md *atlas.Metadata) (map[string]image.Image, []error) {
	out := make(map[string]image.Image, len(md.Sprites))
	var errs []error
	src := canvas.ToNRGBA(img)
	for _, name := range md.Names() {
		crop, err := canvas.Crop(src, md.Sprites[name])
		if err != nil {
			errs = append(errs, errors.Wrap(errors.ErrCodeCropFailed, err, "extract %q", name))
			continue
		}
		out[name] = crop
	}
	return out, errs
}

// Unstitch restores the sprites of an atlas.
//
// The metadata next to the atlas is read and validated before the atlas
// image is opened: a missing file is METADATA_MISSING and a malformed or
// empty one is METADATA_CORRUPT. An atlas image that does not exist is
// IMAGE_MISSING and one that cannot be decoded is IMAGE_CORRUPT. After
// that every sprite is cropped and written to the output directory under
// its original name; a sprite that fails is logged, recorded in the result
// and skipped.
func (s *Stitcher) Unstitch(ctx context.Context, opts UnstitchOptions) (*UnstitchResult, error) {
	start := time.Now()
	observability.Stitch().OnUnstitchStart(ctx, opts.AtlasPath)

	res, err := s.unstitch(ctx, opts)

	var written, failed int
	if res != nil {
		written, failed = len(res.Written), len(res.Failed)
	}
	observability.Stitch().OnUnstitchComplete(ctx, written, failed, time.Since(start), err)
	return res, err
}

func (s *Stitcher) unstitch(ctx context.Context, opts UnstitchOptions) (*UnstitchResult, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	start := time.Now()

	md, err := atlas.Load(atlas.MetadataPath(opts.AtlasPath))
	if err != nil {
		return nil, err
	}
	s.Logger.Debug("loaded metadata", "sprites", len(md.Sprites), "image", md.Image)

	c, err := codec.New(opts.Compression)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid compression")
	}

	img, _, err := c.Decode(opts.AtlasPath)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(errors.ErrCodeImageMissing, err, "atlas image %s not found", opts.AtlasPath)
		}
		var pathErr *fs.PathError
		if stderrors.As(err, &pathErr) {
			return nil, errors.Wrap(errors.ErrCodeImageMissing, err, "open atlas image %s", opts.AtlasPath)
		}
		return nil, errors.Wrap(errors.ErrCodeImageCorrupt, err, "atlas image %s cannot be decoded", opts.AtlasPath)
	}
	atlasImg := canvas.ToNRGBA(img)

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeWriteFailed, err, "create output directory %s", opts.OutputDir)
	}

	res := &UnstitchResult{Metadata: md, OutputDir: opts.OutputDir}
	fail := func(name string, err error) {
		s.Logger.Warn("skipping sprite", "name", name, "error", errors.UserMessage(err))
		res.Failed = append(res.Failed, Failure{Name: name, Err: err})
	}

	for _, name := range md.Names() {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if err := errors.ValidateSpriteName(name); err != nil {
			fail(name, errors.Wrap(errors.ErrCodeCropFailed, err, "unsafe sprite name %q", name))
			continue
		}
		crop, err := canvas.Crop(atlasImg, md.Sprites[name])
		if err != nil {
			fail(name, errors.Wrap(errors.ErrCodeCropFailed, err, "extract %q", name))
			continue
		}
		path := filepath.Join(opts.OutputDir, name)
		if err := c.EncodeFile(path, crop); err != nil {
			fail(name, errors.Wrap(errors.ErrCodeCropFailed, err, "write %q", name))
			continue
		}
		res.Written = append(res.Written, path)
	}

	s.Logger.Info("extracted sprites",
		"written", len(res.Written),
		"failed", len(res.Failed),
		"output", opts.OutputDir,
		"duration", time.Since(start))
	return res, nil
}
