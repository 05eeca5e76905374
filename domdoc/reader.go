// Package domdoc loads the DOMDocument.xml of an FLA container into the
// model object graph.
//
// Loading is a single pass: the container is opened, the document entry is
// read and the container is closed again before any XML is decoded. The
// namespace used for every child lookup is taken from the root element, so
// documents from different producers load alike.
//
// Well-formed constructs the model has no place for (non-shape elements,
// bitmap fills, curve segments, edges described only by cubics) are omitted
// and reported as warnings. Malformed input fails the whole load with a
// *ContainerError or *FormatError.
package domdoc

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/tsawler/fla/container"
	"github.com/tsawler/fla/metrics"
	"github.com/tsawler/fla/model"
	"github.com/tsawler/fla/xmltree"
)

// rootElement is the local name of the document's root element.
const rootElement = "DOMDocument"

// loader holds the per-load state shared by the builders.
type loader struct {
	ns      string
	opts    Options
	log     *zap.Logger
	metrics *metrics.Metrics
	// warn collects warnings raised outside shapes.
	warn collector
}

// Load reads the document stored in the FLA archive or XFL folder at path.
func Load(path string, opts Options) (*model.Document, []Warning, error) {
	opts = opts.normalize()
	timer := metrics.NewTimer()

	doc, warnings, err := loadPath(path, opts)
	finish(opts, path, doc, warnings, err, timer)
	if err != nil {
		return nil, nil, err
	}
	return doc, warnings, nil
}

// LoadReader reads the document stored in the zip archive held by ra.
func LoadReader(ra io.ReaderAt, size int64, opts Options) (*model.Document, []Warning, error) {
	opts = opts.normalize()
	timer := metrics.NewTimer()

	doc, warnings, err := loadArchive("", opts, func() (*container.Archive, error) {
		return container.NewReader(ra, size)
	})
	finish(opts, "", doc, warnings, err, timer)
	if err != nil {
		return nil, nil, err
	}
	return doc, warnings, nil
}

// Decode builds a document from the raw DOMDocument XML.
func Decode(data []byte, opts Options) (*model.Document, []Warning, error) {
	return decode(data, opts.normalize())
}

func loadPath(path string, opts Options) (*model.Document, []Warning, error) {
	doc, warnings, err := loadArchive(path, opts, func() (*container.Archive, error) {
		return container.Open(path)
	})
	if err != nil {
		return nil, nil, err
	}
	doc.Path = path
	return doc, warnings, nil
}

func loadArchive(path string, opts Options, open func() (*container.Archive, error)) (*model.Document, []Warning, error) {
	a, err := open()
	if err != nil {
		return nil, nil, &ContainerError{Path: path, Err: err}
	}
	opts.Logger.Debug("container opened", zap.String("path", path), zap.Bool("folder", a.IsFolder()))

	data, err := readEntry(a, opts.EntryName)
	if err != nil {
		return nil, nil, &ContainerError{Path: path, Err: err}
	}

	return decode(data, opts)
}

// readEntry reads name and closes the archive on every path. A missing
// entry is reported with what the container does hold.
func readEntry(a *container.Archive, name string) (data []byte, err error) {
	defer func() {
		if cerr := a.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	data, err = a.ReadEntry(name)
	if errors.Is(err, container.ErrMissingEntry) {
		if names, lerr := a.Entries(); lerr == nil {
			err = fmt.Errorf("%w (container holds %s)", err, describeEntries(names))
		}
	}
	return data, err
}

// maxListedEntries bounds the entry names quoted in an error.
const maxListedEntries = 5

func describeEntries(names []string) string {
	switch {
	case len(names) == 0:
		return "no entries"
	case len(names) <= maxListedEntries:
		return strings.Join(names, ", ")
	default:
		return fmt.Sprintf("%s and %d more", strings.Join(names[:maxListedEntries], ", "), len(names)-maxListedEntries)
	}
}

func decode(data []byte, opts Options) (*model.Document, []Warning, error) {
	root, err := xmltree.ParseBytes(data)
	if err != nil {
		return nil, nil, &FormatError{Element: opts.EntryName, Err: err}
	}

	ns, err := xmltree.Namespace(root, rootElement)
	if err != nil {
		return nil, nil, &FormatError{Element: root.Name.Local, Err: err}
	}

	l := &loader{
		ns:      ns,
		opts:    opts,
		log:     opts.Logger,
		metrics: opts.Metrics,
	}
	l.warn = collector{log: l.log, metrics: l.metrics}

	return l.document(root)
}

func (l *loader) document(root *xmltree.Node) (*model.Document, []Warning, error) {
	a := newAttrReader(root, rootElement, documentDefaults)
	doc := &model.Document{
		Width:             a.Int("width"),
		Height:            a.Int("height"),
		BackgroundColor:   a.String("backgroundColor"),
		FrameRate:         a.Int("frameRate"),
		CurrentTimeline:   a.Int("currentTimeline"),
		CreatorInfo:       a.String("creatorInfo"),
		Platform:          a.String("platform"),
		VersionInfo:       a.String("versionInfo"),
		MajorVersion:      a.Int("majorVersion"),
		BuildNumber:       a.Int("buildNumber"),
		ViewAngle3D:       a.Float("viewAngle3D"),
		VanishingPoint3DX: a.Float("vanishingPoint3DX"),
		VanishingPoint3DY: a.Float("vanishingPoint3DY"),
		RulerUnitType:     a.String("rulerUnitType"),
		NextSceneID:       a.Int("nextSceneIdentifier"),
		FileTypeGUID:      a.String("filetypeGUID"),
		FileGUID:          a.String("fileGUID"),
		PlayOptions: model.PlayOptions{
			Loop:         a.Bool("playOptionsPlayLoop"),
			Pages:        a.Bool("playOptionsPlayPages"),
			FrameActions: a.Bool("playOptionsPlayFrameActions"),
		},
	}
	if err := a.Err(); err != nil {
		return nil, nil, err
	}

	as := &assembler{loader: l}
	timelines, err := as.timelines(root, rootElement)
	if err != nil {
		// Shapes queued so far precede the failing element.
		if serr := as.buildShapes(); serr != nil {
			return nil, nil, serr
		}
		return nil, nil, err
	}
	if err := as.buildShapes(); err != nil {
		return nil, nil, err
	}
	doc.Timelines = timelines

	return doc, as.warnings(), nil
}

// finish logs and records the outcome of a load.
func finish(opts Options, path string, doc *model.Document, warnings []Warning, err error, timer *metrics.Timer) {
	duration := timer.Duration()

	if err != nil {
		status := metrics.StatusFormatError
		if errors.Is(err, ErrContainer) {
			status = metrics.StatusContainerError
		}
		opts.Metrics.RecordLoad(status, duration)
		opts.Logger.Debug("document load failed", zap.String("path", path), zap.Error(err))
		return
	}

	opts.Metrics.RecordLoad(metrics.StatusOK, duration)
	opts.Logger.Info("document loaded",
		zap.String("path", path),
		zap.Int("timelines", len(doc.Timelines)),
		zap.Int("warnings", len(warnings)),
		zap.Duration("duration", duration),
	)
}
