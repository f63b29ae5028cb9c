// Package pack places sprites on an atlas canvas.
//
// # Algorithm
//
// [Pack] is a greedy best-fit skyline packer. The [Skyline] records, for
// every horizontal span of the canvas, how high it is already filled. For
// each sprite (in input order) every segment start is tried as the left
// edge; the sprite rests on the highest segment beneath it, and the
// position with the lowest resting height wins. Ties go to the leftmost
// candidate.
//
// Padding is reserved around every sprite: a sprite of w x h occupies a
// (w+padding) x (h+padding) cell and is drawn padding/2 pixels in from the
// cell's top-left corner.
//
// # Invariants
//
//   - padded cells never overlap
//   - every cell's right edge is within the max width
//   - the same ordered batch always packs identically
//
// # Example
//
//	res, err := pack.Pack([]sprite.Descriptor{
//	    {Name: "a.png", Width: 10, Height: 10},
//	    {Name: "b.png", Width: 10, Height: 10},
//	}, 2, 100)
//	// res.Placements["b.png"] == sprite.Rect{X: 13, Y: 1, Width: 10, Height: 10}
package pack
