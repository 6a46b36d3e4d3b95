// Package filter implements the blur and sharpen passes of the renderer.
//
// [GaussianBlur] softens a single layer, typically a drop shadow or an inner
// shadow, so that it reads as a depth cue rather than a hard edge.
// [UnsharpMask] increases local contrast along edges and is meant for the
// final composite only.
//
// Both are pure: they never modify their input and always return a new
// buffer. A non-positive radius is rejected with an INVALID_RADIUS error.
package filter
