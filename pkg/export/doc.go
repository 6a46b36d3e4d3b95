// Package export writes a canonical image and its resampled derivatives.
//
// A [Manifest] is static configuration: the canonical file plus a list of
// derivative entries, each naming a target size, a file name and an encoding.
// [Manifest.Validate] rejects configurations that cannot be honored, most
// importantly any derivative larger than the canonical source: the exporter
// never upsamples.
//
// [Exporter.Export] resamples once per distinct target size with a Lanczos
// filter and encodes every entry into the output directory, creating the
// directory if needed. Any I/O failure aborts the export; there is no retry.
//
// Encodings:
//   - png: PNG at best compression
//   - ico: single-image ICO container (the legacy favicon.ico)
package export
