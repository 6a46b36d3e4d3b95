package export

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	ico "github.com/sergeymakinen/go-ico"

	"github.com/ourjourney/iconforge/pkg/errors"
	"github.com/ourjourney/iconforge/pkg/observability"
)

// File describes one written artifact.
type File struct {
	Name     string
	Path     string
	Width    int
	Height   int
	Encoding Encoding
	Bytes    int
}

// Exporter writes a manifest's files into Dir.
type Exporter struct {
	Dir      string
	Manifest Manifest
}

// New creates an exporter for the given directory and manifest.
func New(dir string, m Manifest) *Exporter {
	return &Exporter{Dir: dir, Manifest: m}
}

// Export writes the canonical image and every derivative, in manifest
// order, and returns the files written. It stops at the first failure.
func (e *Exporter) Export(ctx context.Context, img image.Image) ([]File, error) {
	b := img.Bounds()
	if err := e.Manifest.Validate(b.Dx(), b.Dy()); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(e.Dir, 0o755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "create output directory %s", e.Dir)
	}

	files := make([]File, 0, e.Manifest.Len())

	f, err := e.write(ctx, e.Manifest.Canonical, img)
	if err != nil {
		return files, err
	}
	files = append(files, f)

	resized := map[int]image.Image{}
	for _, entry := range e.Manifest.Derivatives {
		small, ok := resized[entry.Size]
		if !ok {
			small = Resample(img, entry.Size)
			resized[entry.Size] = small
		}
		f, err := e.write(ctx, entry, small)
		if err != nil {
			return files, err
		}
		files = append(files, f)
	}
	return files, nil
}

func (e *Exporter) write(ctx context.Context, entry Entry, img image.Image) (File, error) {
	path := filepath.Join(e.Dir, entry.File)
	n, err := WriteFile(path, img, entry.Encoding)
	if err != nil {
		observability.Export().OnExportError(ctx, entry.Name, err)
		return File{}, err
	}
	observability.Export().OnFileWritten(ctx, entry.Name, path, n)

	b := img.Bounds()
	return File{
		Name:     entry.Name,
		Path:     path,
		Width:    b.Dx(),
		Height:   b.Dy(),
		Encoding: entry.Encoding,
		Bytes:    n,
	}, nil
}

// Resample scales img to size×size with a Lanczos filter.
func Resample(img image.Image, size int) *image.NRGBA {
	return imaging.Resize(img, size, size, imaging.Lanczos)
}

// Encode writes img to w in the given encoding.
func Encode(w io.Writer, img image.Image, enc Encoding) error {
	switch enc {
	case PNG:
		return imaging.Encode(w, img, imaging.PNG, imaging.PNGCompressionLevel(png.BestCompression))
	case ICO:
		return ico.Encode(w, img)
	default:
		return errors.New(errors.ErrCodeInvalidManifest, "unsupported encoding %q", enc)
	}
}

// WriteFile encodes img and writes it to path, returning the byte count.
// The image is fully encoded before the file is created.
func WriteFile(path string, img image.Image, enc Encoding) (int, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, img, enc); err != nil {
		return 0, errors.Wrap(errors.ErrCodeInternal, err, "encode %s", filepath.Base(path))
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return 0, errors.Wrap(errors.ErrCodeIO, err, "write %s", path)
	}
	return buf.Len(), nil
}
