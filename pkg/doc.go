// Package pkg holds the libraries behind iconforge.
//
// Images flow leaf-first through the packages:
//
//	[gradient]  colors and anchor interpolation
//	[curve]     parametric heart polygon
//	[layer]     drawing stages and the "over" compositor
//	[filter]    Gaussian blur and unsharp mask
//	[export]    manifest, resampling, PNG and ICO files
//	[pipeline]  configuration and the Runner tying the stages together
//
// [fonts] resolves text faces for the social preview, [errors] carries the
// coded error taxonomy and [observability] exposes stage and export hooks.
package pkg
