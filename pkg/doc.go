// Package pkg provides the core libraries of spritestitch.
//
// # Overview
//
// Spritestitch packs many small sprite images into one atlas image plus a
// JSON metadata file, and reverses the process. The pkg directory is
// organized bottom-up:
//
//  1. [sprite] - Descriptors and placement rectangles
//  2. [pack] - Skyline bin packer (pure geometry, no pixels)
//  3. [atlas] - Metadata model and JSON format
//  4. [canvas] - Pixel-exact compositing and cropping
//  5. [codec] - Image decoding, PNG encoding, atomic file writes
//  6. [scan] - Sprite file discovery
//  7. [cache] - Layout cache
//  8. [stitch] - Round-trip coordinator used by the CLI
//
// # Architecture
//
// The typical data flow through a stitch:
//
//	sprite directory
//	       ↓
//	  [scan] + [codec] (find and decode sprites)
//	       ↓
//	  [pack] (place rectangles, cached in [cache])
//	       ↓
//	  [canvas] (copy pixels into the atlas)
//	       ↓
//	  atlas.png + [atlas] atlas.json
//
// Unstitch walks the same path backwards: metadata first, then the atlas
// image, then one crop per sprite.
package pkg
