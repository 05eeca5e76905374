// Package fla provides a fluent API for loading FLA and XFL vector animation
// documents into a typed object graph.
//
// Basic usage:
//
//	doc, warnings, err := fla.Open("movie.fla").Document()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Skipped:", fla.FormatWarnings(warnings))
//	}
//
// With options:
//
//	doc, _, err := fla.Open("movie.fla").
//	    Concurrency(4).
//	    Logger(logger).
//	    Document()
//
// For lower-level control the domdoc package is also available.
package fla

import (
	"io"

	"github.com/tsawler/fla/domdoc"
	"github.com/tsawler/fla/model"
)

// Error kinds. Every load error matches exactly one of them via errors.Is.
var (
	ErrContainer = domdoc.ErrContainer
	ErrFormat    = domdoc.ErrFormat
)

// Warning describes a well-formed construct left out of the model.
type Warning = domdoc.Warning

// Open returns a Loader for the FLA archive or XFL folder at filename.
// Nothing is read until a terminal operation such as Document is called.
//
// Example:
//
//	doc, warnings, err := fla.Open("movie.fla").Document()
func Open(filename string) *Loader {
	return &Loader{
		filename: filename,
		options:  domdoc.DefaultOptions(),
	}
}

// OpenReader returns a Loader for an FLA archive held in r.
// The caller keeps ownership of r.
//
// Example:
//
//	data, _ := os.ReadFile("movie.fla")
//	doc, _, err := fla.OpenReader(bytes.NewReader(data), int64(len(data))).Document()
func OpenReader(r io.ReaderAt, size int64) *Loader {
	return &Loader{
		reader:  r,
		size:    size,
		options: domdoc.DefaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	f := fla.Must(fla.Open("movie.fla").Format())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustDocument is a helper that wraps a call to Document() and panics if the
// error is non-nil. It discards warnings and returns just the document.
//
// Example:
//
//	doc := fla.MustDocument(fla.Open("movie.fla").Document())
func MustDocument(doc *model.Document, _ []Warning, err error) *model.Document {
	if err != nil {
		panic(err)
	}
	return doc
}
