// Package curve evaluates closed parametric curves into polygon vertex lists.
//
// The only curve the renderer needs is the classic heart:
//
//	x(θ) = 16·sin³θ
//	y(θ) = −(13·cosθ − 5·cos2θ − 2·cos3θ − cos4θ)
//
// sampled at whole degrees θ = 0°, 1°, …, 359°. The raw curve spans roughly
// 32×29 units, so x is scaled by width/35 and y by height/35 before being
// translated to the center and rounded to integer pixels.
//
// Samples are produced in monotonic angular order, which makes the resulting
// polygon simple (non-self-intersecting) and closed: the vertex at 359°
// connects back to the vertex at 0°.
package curve
