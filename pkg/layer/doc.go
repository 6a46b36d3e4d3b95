// Package layer provides transparent drawing layers and the compositor that
// stacks them into one image.
//
// A [Layer] is a full-canvas straight-alpha RGBA buffer holding a single
// visual element: a background gradient, a radial glow, a drop shadow, a
// silhouette fill or an inner shadow. Drawing functions in this package
// each return a fresh layer; nothing draws onto a shared canvas.
//
// The [Compositor] owns one accumulator image. Layers are folded into it with
// the "over" operator in the order they are added:
//
//	result = layer·αl + accumulator·(1 − αl)
//
// Order is significant. The icon pipeline always adds background, glow,
// drop shadow, silhouette, inner shadow, in that order.
package layer
