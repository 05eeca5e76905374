// Package container provides access to the entries of an FLA document.
//
// An FLA file is a zip archive whose root holds DOMDocument.xml. The same
// entries may also be stored uncompressed in a folder (the XFL layout), which
// is accepted wherever a path is.
package container

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/klauspost/compress/flate"
)

// DefaultEntry is the canonical entry holding the document XML.
const DefaultEntry = "DOMDocument.xml"

// Container errors.
var (
	ErrNotArchive   = errors.New("container: not a zip archive")
	ErrMissingEntry = errors.New("container: entry not found")
)

// Archive is an opened container. It must be closed when done.
type Archive struct {
	fsys   fs.FS
	closer io.Closer
	folder bool
}

// markerExt is the extension of the marker file an XFL folder carries.
const markerExt = ".xfl"

// Open opens the container at path, which may be a zip archive, an XFL
// folder, or the .xfl marker file inside one.
func Open(path string) (*Archive, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	if info.IsDir() {
		return &Archive{fsys: os.DirFS(path), folder: true}, nil
	}
	if strings.EqualFold(filepath.Ext(path), markerExt) {
		return &Archive{fsys: os.DirFS(filepath.Dir(path)), folder: true}, nil
	}

	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotArchive, err)
	}
	registerDecompressors(&zr.Reader)

	return &Archive{fsys: &zr.Reader, closer: zr}, nil
}

// NewReader opens a zip container held in ra.
func NewReader(ra io.ReaderAt, size int64) (*Archive, error) {
	zr, err := zip.NewReader(ra, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotArchive, err)
	}
	registerDecompressors(zr)

	return &Archive{fsys: zr}, nil
}

// registerDecompressors swaps the standard DEFLATE reader for klauspost's,
// which inflates large DOMDocument entries noticeably faster.
func registerDecompressors(zr *zip.Reader) {
	zr.RegisterDecompressor(zip.Deflate, func(r io.Reader) io.ReadCloser {
		return flate.NewReader(r)
	})
}

// IsFolder reports whether the container is an uncompressed XFL folder.
func (a *Archive) IsFolder() bool {
	return a.folder
}

// ReadEntry returns the full contents of the named entry.
func (a *Archive) ReadEntry(name string) ([]byte, error) {
	data, err := fs.ReadFile(a.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingEntry, name)
		}
		return nil, err
	}
	return data, nil
}

// Entries returns the names of all regular files in the container, sorted.
func (a *Archive) Entries() ([]string, error) {
	var names []string
	err := fs.WalkDir(a.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			names = append(names, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

// Close releases resources associated with the Archive.
// It is safe to call Close multiple times.
func (a *Archive) Close() error {
	if a.closer != nil {
		err := a.closer.Close()
		a.closer = nil
		return err
	}
	return nil
}
