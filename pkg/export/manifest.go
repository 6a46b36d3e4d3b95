package export

import (
	"fmt"
	"sort"

	"github.com/ourjourney/iconforge/pkg/errors"
)

// Encoding names an output file format.
type Encoding string

// Supported encodings.
const (
	PNG Encoding = "png"
	ICO Encoding = "ico"
)

// MaxICOSize is the largest edge an ICO directory entry can describe.
const MaxICOSize = 256

// ValidEncodings is the set of supported encodings.
var ValidEncodings = map[Encoding]bool{
	PNG: true,
	ICO: true,
}

// Entry is one output file.
type Entry struct {
	Name     string   `toml:"name"`     // logical name, e.g. "icon-180"
	Size     int      `toml:"size"`     // edge length in pixels; ignored for the canonical entry
	File     string   `toml:"file"`     // file name inside the output directory
	Encoding Encoding `toml:"encoding"` // png or ico
}

// Manifest describes everything one export writes.
type Manifest struct {
	Canonical   Entry   `toml:"canonical"`
	Derivatives []Entry `toml:"derivatives"`
}

// Sizes returns the distinct derivative sizes in ascending order.
func (m Manifest) Sizes() []int {
	seen := map[int]bool{}
	var sizes []int
	for _, e := range m.Derivatives {
		if !seen[e.Size] {
			seen[e.Size] = true
			sizes = append(sizes, e.Size)
		}
	}
	sort.Ints(sizes)
	return sizes
}

// Len returns the number of files the manifest writes, canonical included.
func (m Manifest) Len() int {
	return 1 + len(m.Derivatives)
}

// Validate checks the manifest against a canonical image of w×h pixels.
func (m Manifest) Validate(w, h int) error {
	if err := errors.ValidateSize("canonical image", w, h); err != nil {
		return err
	}
	if err := validateEntry(m.Canonical, true); err != nil {
		return err
	}
	if m.Canonical.Encoding == ICO && (w > MaxICOSize || h > MaxICOSize) {
		return errors.New(errors.ErrCodeInvalidManifest,
			"canonical %q: ico cannot hold %dx%d", m.Canonical.Name, w, h)
	}

	names := map[string]bool{m.Canonical.Name: true}
	files := map[string]bool{m.Canonical.File: true}
	for _, e := range m.Derivatives {
		if err := validateEntry(e, false); err != nil {
			return err
		}
		if names[e.Name] {
			return errors.New(errors.ErrCodeInvalidManifest, "duplicate entry name %q", e.Name)
		}
		if files[e.File] {
			return errors.New(errors.ErrCodeInvalidManifest, "duplicate file name %q", e.File)
		}
		names[e.Name] = true
		files[e.File] = true

		if w != h {
			return errors.New(errors.ErrCodeInvalidManifest,
				"entry %q: derivatives need a square canonical image, got %dx%d", e.Name, w, h)
		}
		if e.Size > w {
			return errors.New(errors.ErrCodeInvalidManifest,
				"entry %q: %dpx would upsample the %dpx canonical image", e.Name, e.Size, w)
		}
	}
	return nil
}

func validateEntry(e Entry, canonical bool) error {
	label := e.Name
	if label == "" {
		return errors.New(errors.ErrCodeInvalidManifest, "entry for %q has no name", e.File)
	}
	if err := errors.ValidateFileName(e.File); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidManifest, err, "entry %q", label)
	}
	if !ValidEncodings[e.Encoding] {
		return errors.New(errors.ErrCodeInvalidManifest,
			"entry %q: invalid encoding %q (must be one of: png, ico)", label, e.Encoding)
	}
	if canonical {
		return nil
	}
	if e.Size <= 0 {
		return errors.New(errors.ErrCodeInvalidManifest, "entry %q: size must be positive, got %d", label, e.Size)
	}
	if e.Encoding == ICO && e.Size > MaxICOSize {
		return errors.New(errors.ErrCodeInvalidManifest,
			"entry %q: ico entries must be at most %dpx, got %d", label, MaxICOSize, e.Size)
	}
	return nil
}

// String renders the entry as "name (WxH file)".
func (e Entry) String() string {
	return fmt.Sprintf("%s (%dx%d %s)", e.Name, e.Size, e.Size, e.File)
}
