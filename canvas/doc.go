// Package canvas turns decoded images into the binary pixel-presence grids
// the scoring engine consumes. It is the engine's image-facing collaborator:
// no scoring logic lives here, and no image parsing lives in the engine.
//
// What:
//
//   - Sheet wraps one decoded drawing sheet: a single extracted channel
//     (luma for white-background sheets, alpha for transparent ones) over
//     the full image.
//   - A sheet carries two 500×500 regions side by side: the reference
//     drawing on the left and the user's observation on the right, with a
//     10-column gutter between them.
//   - Grid is one region reduced to "drawn vs background", with a per-value
//     channel histogram kept for drawing statistics.
//
// Supported formats: PNG, JPEG, GIF via the standard library, plus BMP,
// TIFF, and WebP through golang.org/x/image registrations.
//
// Errors:
//
//   - ErrBadDimensions: the decoded image is smaller than the 1010×500
//     sheet layout requires.
package canvas
