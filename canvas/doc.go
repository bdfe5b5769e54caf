// Package canvas provides the 2-D pixel surface the renderer draws onto
// and its serialization boundary.
//
// A Canvas is a dense H×W grid of tuple.Color, initialized to black and
// exclusively owned: no aliasing between canvases, no external handles to
// the pixel storage. Coordinates are 0-based with x ∈ [0, W) and
// y ∈ [0, H); out-of-range access (including negatives) returns
// ErrOutOfRange rather than panicking or silently clipping.
//
// Two output boundaries exist:
//
//   - PPM: the byte-exact "P3" plain-text image format, the module's one
//     wire contract. Output is deterministic and golden-file friendly;
//     body lines never exceed 70 characters.
//   - image bridge: an image.Image adapter plus PNG encoding and an
//     integer-factor preview upscale for eyeballing small renders.
//
// The canvas has no internal locking. A future parallel renderer must
// partition pixel writes by disjoint ranges or serialize them externally.
package canvas
