package csvload

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/guiguan/caster"
	"github.com/npillmayer/courseindex"
)

// ErrMalformedRecord is flagged for lines which do not carry at least a
// course identifier and a course name.
var ErrMalformedRecord = errors.New("csvload: malformed course record")

// ErrOpen is flagged if a course file cannot be opened for reading.
var ErrOpen = errors.New("csvload: cannot open course file")

// LoadEvent is published for every line of input which has been processed.
// Err is set for rejected lines, Course is set for inserted ones. The last
// event of a load has Done set.
type LoadEvent struct {
	Line   int
	Course courseindex.Course
	Err    error
	Done   bool
}

// Option configures a load.
type Option func(*loader)

// WithEvents lets the loader publish a LoadEvent for every line to cast.
// The caster is not closed by the loader.
func WithEvents(cast *caster.Caster) Option {
	return func(l *loader) {
		l.cast = cast
	}
}

type loader struct {
	cast     *caster.Caster // broadcaster for load events, may be nil
	rejected []error        // remember rejected lines
}

// LoadFile opens the file at path and loads its course records into idx.
// If the file cannot be opened, the error wraps ErrOpen. See Load.
func LoadFile(path string, idx *courseindex.Index, opts ...Option) (int, error) {
	l := newLoader(opts)
	file, err := openFile(path)
	if err != nil {
		l.publish(LoadEvent{Err: err, Done: true})
		return 0, err
	}
	defer file.Close()
	tracer().Infof("loading course file %s", path)
	return l.load(file, idx)
}

// openFile opens an OS file for reading, checking for error conditions.
func openFile(path string) (*os.File, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s is not a regular file", ErrOpen, path)
	}
	file, err := os.Open(path) // just open for read access
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	return file, nil
}

// Load reads course records from r and inserts every well-formed record into
// idx. It returns the number of courses inserted.
//
// Blank lines are skipped. Fields are trimmed, and empty prerequisite fields
// are dropped (trailing commas are common in spreadsheet exports). Lines with
// fewer than two fields or an empty identifier are rejected without touching
// idx; loading continues with the next line, and the rejections are reported
// as a joined error wrapping ErrMalformedRecord after the input has been
// consumed.
//
// An I/O error aborts loading. Courses inserted up to that point stay in idx.
func Load(r io.Reader, idx *courseindex.Index, opts ...Option) (int, error) {
	l := newLoader(opts)
	return l.load(r, idx)
}

func newLoader(opts []Option) *loader {
	l := &loader{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *loader) load(r io.Reader, idx *courseindex.Index) (int, error) {
	if r == nil || idx == nil {
		l.publish(LoadEvent{Err: courseindex.ErrIllegalArguments, Done: true})
		return 0, courseindex.ErrIllegalArguments
	}
	defer l.publish(LoadEvent{Done: true})
	//
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // variable number of prerequisites
	csvr.LazyQuotes = true
	csvr.ReuseRecord = true
	count := 0
	for {
		record, err := csvr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				l.reject(perr.StartLine, fmt.Errorf("%w: %w", ErrMalformedRecord, perr.Err))
				continue
			}
			tracer().Errorf("course file: input failure after %d courses: %v", count, err)
			return count, fmt.Errorf("csvload: input failure after %d courses: %w", count, err)
		}
		line, _ := csvr.FieldPos(0)
		if isBlank(record) {
			continue
		}
		course, err := parseRecord(record)
		if err != nil {
			l.reject(line, err)
			continue
		}
		idx.Insert(course)
		count++
		l.publish(LoadEvent{Line: line, Course: course})
	}
	tracer().Infof("course file: %d courses loaded, %d lines rejected", count, len(l.rejected))
	if len(l.rejected) > 0 {
		return count, errors.Join(l.rejected...)
	}
	return count, nil
}

// parseRecord creates a course from the fields of one line. The record slice
// is re-used by the CSV reader and must not be retained.
func parseRecord(record []string) (courseindex.Course, error) {
	if len(record) < 2 {
		return courseindex.Course{}, fmt.Errorf("%w: %d field(s), need at least 2", ErrMalformedRecord, len(record))
	}
	id := strings.TrimSpace(record[0])
	if id == "" {
		return courseindex.Course{}, fmt.Errorf("%w: empty course identifier", ErrMalformedRecord)
	}
	course := courseindex.Course{
		ID:   id,
		Name: strings.TrimSpace(record[1]),
	}
	for _, field := range record[2:] {
		if p := strings.TrimSpace(field); p != "" {
			course.Prerequisites = append(course.Prerequisites, p)
		}
	}
	return course, nil
}

// isBlank is true for lines consisting of white space only. Empty lines are
// skipped by the CSV reader itself.
func isBlank(record []string) bool {
	return len(record) == 1 && strings.TrimSpace(record[0]) == ""
}

func (l *loader) reject(line int, err error) {
	err = fmt.Errorf("line %d: %w", line, err)
	tracer().Errorf("course file: %v", err)
	l.rejected = append(l.rejected, err)
	l.publish(LoadEvent{Line: line, Err: err})
}

func (l *loader) publish(event LoadEvent) {
	if l.cast == nil {
		return
	}
	if !l.cast.Pub(event) {
		tracer().Debugf("course file: event for line %d not published, caster closed", event.Line)
	}
}
