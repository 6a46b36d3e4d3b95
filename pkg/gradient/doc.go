// Package gradient implements linear RGB color interpolation between anchor
// colors.
//
// A [Gradient] is an ordered list of two or more anchor colors spread evenly
// over the unit interval. Evaluating it at a ratio t in [0, 1] picks the
// segment containing t and interpolates its two endpoints with [Interpolate].
// With three anchors A, B, C the split is at the midpoint:
//
//	t in [0, 0.5)  → Interpolate(A, B, 2t)
//	t in [0.5, 1]  → Interpolate(B, C, 2(t-0.5))
//
// Interpolation is exact at the anchors: t == 0 and t == 1 return the anchor
// colors unchanged.
//
// Anchors are usually written as "#rrggbb" strings in configuration and
// converted with [ParseHex].
package gradient
