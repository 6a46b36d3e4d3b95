// Package fonts resolves font faces for text drawn onto rendered images.
//
// Preferred fonts are looked up by file name in the current directory and the
// platform's user and system font directories. Lookup is best effort: if no
// candidate can be found or parsed, [Resolve] falls back to the built-in
// 7x13 bitmap face instead of failing, so a render never aborts because a
// font is missing.
package fonts

import (
	"os"
	"sync"

	findfont "github.com/flopp/go-findfont"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Fallback is the face used when no preferred font is available.
var Fallback font.Face = basicfont.Face7x13

// DefaultCandidates lists preferred sans-serif fonts, most wanted first.
var DefaultCandidates = []string{
	"Helvetica.ttf",
	"Arial.ttf",
	"DejaVuSans.ttf",
	"LiberationSans-Regular.ttf",
}

// Parsed fonts, keyed by resolved path (parsed once per process).
var (
	parsedMu sync.Mutex
	parsed   = map[string]*truetype.Font{}
)

// Face is a resolved font face and where it came from.
type Face struct {
	font.Face
	Path     string // empty when Fallback is used
	Fallback bool
}

// Resolve returns a face at the given point size for the first candidate
// that can be located and parsed. It never fails.
func Resolve(candidates []string, points float64) Face {
	for _, name := range candidates {
		f, path, err := load(name)
		if err != nil {
			continue
		}
		return Face{
			Face: truetype.NewFace(f, &truetype.Options{Size: points, Hinting: font.HintingFull}),
			Path: path,
		}
	}
	return Face{Face: Fallback, Fallback: true}
}

func load(name string) (*truetype.Font, string, error) {
	path, err := findfont.Find(name)
	if err != nil {
		return nil, "", err
	}

	parsedMu.Lock()
	defer parsedMu.Unlock()
	if f, ok := parsed[path]; ok {
		return f, path, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, "", err
	}
	parsed[path] = f
	return f, path, nil
}
