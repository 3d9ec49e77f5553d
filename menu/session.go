package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"strconv"

	"github.com/guiguan/caster"
	"github.com/npillmayer/courseindex"
	"github.com/npillmayer/courseindex/csvload"
	"github.com/npillmayer/courseindex/present"
	"github.com/npillmayer/courseindex/prompt"
)

// Menu choices.
const (
	ChoiceLoad    = 1
	ChoiceList    = 2
	ChoiceDetails = 3
	ChoiceExit    = 9
)

// DefaultDataFile is the course file loaded if a session does not name one.
const DefaultDataFile = "Course_Data.csv"

// Presenter renders courses. present.Plain and present.Console serve as a
// Presenter.
type Presenter interface {
	Course(w io.Writer, c courseindex.Course) error
	Catalog(w io.Writer, courses iter.Seq[courseindex.Course]) error
}

// Session is an interactive advising session.
//
// Index is owned by the session; In and Out are the operator's terminal.
type Session struct {
	Index       *courseindex.Index
	In          io.Reader
	Out         io.Writer
	DataFile    string    // course file, DefaultDataFile if empty
	Presenter   Presenter // plain output if nil
	ResetOnLoad bool      // drop all courses before loading
	Verbose     bool      // report every loaded line

	sc *bufio.Scanner
}

// NewSession creates a session with a fresh index.
func NewSession(in io.Reader, out io.Writer) *Session {
	return &Session{
		Index: courseindex.New(),
		In:    in,
		Out:   out,
	}
}

// Run executes the menu loop until the operator chooses to exit or input is
// exhausted.
func (s *Session) Run() error {
	if s.Index == nil || s.In == nil || s.Out == nil {
		return courseindex.ErrIllegalArguments
	}
	s.sc = prompt.NewScanner(s.In)
	fmt.Fprintln(s.Out, "Welcome to the course planner.")
	defer fmt.Fprintln(s.Out, "Thank you for using the course planner.")
	for {
		choice, err := s.readChoice()
		if err == io.EOF {
			fmt.Fprintln(s.Out)
			return nil
		} else if err != nil {
			return err
		}
		fmt.Fprintln(s.Out)
		switch choice {
		case ChoiceLoad:
			s.Load()
		case ChoiceList:
			s.DisplayCourses()
		case ChoiceDetails:
			if err := s.ShowCourse(); err == io.EOF {
				return nil
			} else if err != nil {
				return err
			}
		case ChoiceExit:
			return nil
		default:
			fmt.Fprintf(s.Out, "%d is not a valid option.\n", choice)
		}
	}
}

func (s *Session) readChoice() (int, error) {
	for {
		fmt.Fprint(s.Out, "\nMenu:\n")
		fmt.Fprint(s.Out, "  1. Load Courses\n")
		fmt.Fprint(s.Out, "  2. Display Course List\n")
		fmt.Fprint(s.Out, "  3. Print Course Details\n")
		fmt.Fprint(s.Out, "  9. Exit\n")
		fmt.Fprint(s.Out, "Enter choice: ")
		if !s.sc.Scan() {
			if err := s.sc.Err(); err != nil {
				return 0, err
			}
			return 0, io.EOF
		}
		choice, err := strconv.Atoi(s.sc.Text())
		if err != nil {
			fmt.Fprintf(s.Out, "\nInvalid input %q. Please enter a number.\n", s.sc.Text())
			continue
		}
		return choice, nil
	}
}

// Load loads the session's course file into the index and sweeps the index
// with Clean afterwards. Clean runs once per load, even if loading failed
// part-way.
func (s *Session) Load() {
	path := s.DataFile
	if path == "" {
		path = DefaultDataFile
	}
	fmt.Fprintf(s.Out, "Loading CSV file %s\n", path)
	if s.ResetOnLoad {
		s.Index.Reset()
	}
	var opts []csvload.Option
	var reported chan struct{}
	if s.Verbose {
		ctx := context.Background()
		cast := caster.New(ctx)
		defer cast.Close()
		if sub, ok := cast.Sub(ctx, 32); ok {
			reported = make(chan struct{})
			go s.report(sub, reported)
			opts = append(opts, csvload.WithEvents(cast))
		}
	}
	n, err := csvload.LoadFile(path, s.Index, opts...)
	if reported != nil {
		<-reported
	}
	switch {
	case errors.Is(err, csvload.ErrOpen):
		fmt.Fprintln(s.Out, "Failed to open file.")
	case errors.Is(err, csvload.ErrMalformedRecord):
		fmt.Fprintf(s.Out, "Some lines have been skipped:\n%v\n", err)
	case err != nil:
		fmt.Fprintln(s.Out, "Input failure.")
	}
	removed := s.Index.Clean()
	tracer().Infof("session: %d courses loaded, %d removed by clean", n, removed)
	fmt.Fprintf(s.Out, "%d courses loaded, %d in catalog.\n", n, s.Index.Len())
}

// report prints load events until the final one arrives.
func (s *Session) report(sub <-chan interface{}, done chan<- struct{}) {
	defer close(done)
	for m := range sub {
		event, ok := m.(csvload.LoadEvent)
		if !ok {
			continue
		}
		if event.Done {
			return
		}
		if event.Err != nil {
			fmt.Fprintf(s.Out, "  skipped: %v\n", event.Err)
		} else {
			fmt.Fprintf(s.Out, "  %4d: %s\n", event.Line, event.Course.ID)
		}
	}
}

// DisplayCourses prints all courses in ascending order.
func (s *Session) DisplayCourses() {
	if err := s.presenter().Catalog(s.Out, s.Index.Enumerate()); err != nil {
		tracer().Errorf("session: cannot display course list: %v", err)
	}
}

// ShowCourse asks the operator for a course identifier and prints the
// course's details.
func (s *Session) ShowCourse() error {
	if s.sc == nil {
		s.sc = prompt.NewScanner(s.In)
	}
	id, err := prompt.ReadCourseID(s.sc, s.Out, "Enter the course ID to see more information: ")
	if err != nil {
		return err
	}
	course, found := s.Index.Search(id)
	if !found {
		fmt.Fprintln(s.Out, "Course does not exist. Please try again.")
		return nil
	}
	return s.presenter().Course(s.Out, course)
}

func (s *Session) presenter() Presenter {
	if s.Presenter == nil {
		return present.Plain{}
	}
	return s.Presenter
}
