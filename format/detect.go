// Package format provides input format detection for FLA documents.
package format

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DocumentEntry is the entry an FLA/XFL container carries by default.
const DocumentEntry = "DOMDocument.xml"

// Format represents a supported container format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// FLA indicates a zip-packaged document (.fla).
	FLA
	// XFL indicates an uncompressed document folder (marked by a .xfl file).
	XFL
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FLA:
		return "FLA"
	case XFL:
		return "XFL"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case FLA:
		return ".fla"
	case XFL:
		return ".xfl"
	default:
		return ""
	}
}

// Detect determines format from the filename extension.
func Detect(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".fla":
		return FLA
	case ".xfl":
		return XFL
	default:
		return Unknown
	}
}

// DetectPath inspects the file system entry at path. A directory holding
// DOMDocument.xml is XFL, a .xfl marker resolves to its folder, and any
// other file is probed as a zip archive.
func DetectPath(path string) (Format, error) {
	return DetectPathEntry(path, DocumentEntry)
}

// DetectPathEntry is DetectPath for containers whose document is stored
// under entry. An empty entry means DocumentEntry.
func DetectPathEntry(path, entry string) (Format, error) {
	if entry == "" {
		entry = DocumentEntry
	}

	info, err := os.Stat(path)
	if err != nil {
		return Unknown, err
	}

	if info.IsDir() {
		if fileExists(filepath.Join(path, entry)) {
			return XFL, nil
		}
		return Unknown, nil
	}

	if Detect(path) == XFL {
		if fileExists(filepath.Join(filepath.Dir(path), entry)) {
			return XFL, nil
		}
		return Unknown, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return Unknown, err
	}
	defer f.Close()

	return DetectFromReaderEntry(f, info.Size(), entry)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// DetectFromMagic reports whether data starts with a zip signature. FLA
// cannot be confirmed from magic bytes alone; use DetectFromReader for that.
func DetectFromMagic(data []byte) bool {
	return len(data) >= 4 && data[0] == 0x50 && data[1] == 0x4B && data[2] == 0x03 && data[3] == 0x04
}

// DetectFromReader inspects the content to determine format. A zip archive
// is FLA only when it carries DOMDocument.xml at its root.
func DetectFromReader(r io.ReaderAt, size int64) (Format, error) {
	return DetectFromReaderEntry(r, size, DocumentEntry)
}

// DetectFromReaderEntry is DetectFromReader for archives whose document is
// stored under entry. An empty entry means DocumentEntry.
func DetectFromReaderEntry(r io.ReaderAt, size int64, entry string) (Format, error) {
	if entry == "" {
		entry = DocumentEntry
	}

	magic := make([]byte, 4)
	n, err := r.ReadAt(magic, 0)
	if err != nil && err != io.EOF {
		return Unknown, err
	}
	if !DetectFromMagic(magic[:n]) {
		return Unknown, nil
	}

	zr, err := zip.NewReader(r, size)
	if err != nil {
		return Unknown, err
	}
	for _, f := range zr.File {
		if f.Name == entry {
			return FLA, nil
		}
	}
	return Unknown, nil
}
