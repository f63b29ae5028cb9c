// Package atlas reads and writes atlas metadata.
//
// # Overview
//
// Stitching produces two artifacts: the atlas image and a JSON metadata file
// next to it (same base name, .json extension). The metadata is the only
// durable record of where each sprite went, so it is what makes unstitching
// possible.
//
// # JSON Format
//
// The field names are fixed and must stay compatible with existing files:
//
//	{
//	  "image": "sprites/stitched/atlas.png",
//	  "sprites": {
//	    "hero.png": {"x": 1, "y": 1, "width": 32, "height": 48},
//	    "coin.png": {"x": 35, "y": 1, "width": 16, "height": 16}
//	  }
//	}
//
//   - image: the atlas path, or a logical path supplied at stitch time
//   - sprites: original file name (with extension) to placement rectangle
//
// Rectangles exclude padding: x and y are the sprite's top-left pixel, width
// and height its original size.
//
// # Reading
//
// Use [Load] for a file path or [Read] for any io.Reader. A missing file is
// METADATA_MISSING; malformed JSON or an empty sprite map is
// METADATA_CORRUPT (see package errors).
//
// # Writing
//
// Use [Save] or [Write]. Output is indented with two spaces and sprite keys
// are sorted, so the same atlas always serializes identically.
package atlas
