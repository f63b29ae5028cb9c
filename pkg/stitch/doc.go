// Package stitch coordinates the sprite atlas round trip.
//
// Stitching loads a directory of sprite images, packs them with the
// skyline packer, composites them onto one transparent canvas and writes
// the canvas together with a JSON metadata file that records every
// sprite's rectangle. Unstitching reads that metadata, crops each sprite
// back out of the canvas and writes it under its original name.
//
// The two directions are exact inverses: for any valid batch S,
// Unstitch(Stitch(S)) yields every sprite with its original name,
// dimensions and pixel values.
//
// # Usage
//
//	s := stitch.New(cache, logger)
//
//	sprites, err := s.LoadSprites(ctx, "assets/icons", stitch.ScanOptions{})
//	if err != nil {
//	    return err
//	}
//	res, err := s.Stitch(ctx, sprites, stitch.DefaultOptions("assets/icons"))
//	if err != nil {
//	    return err
//	}
//	if err := s.Write(ctx, res); err != nil {
//	    return err
//	}
//
//	out, err := s.Unstitch(ctx, stitch.UnstitchOptions{AtlasPath: res.AtlasPath})
//
// # Failure model
//
// Errors carry a code from [github.com/matzehuels/spritestitch/pkg/errors].
// Input, packing, metadata and image errors abort the operation before
// anything is written. A sprite that cannot be cropped or written during
// unstitch is recorded in [UnstitchResult.Failed] and the remaining sprites
// are still extracted. Deleting the original atlas after an unstitch only
// happens when a [Confirmer] agrees, and a failure to delete is returned
// to the caller rather than ignored.
package stitch
