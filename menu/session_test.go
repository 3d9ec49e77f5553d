package menu

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func runSession(t *testing.T, input string, setup func(*Session)) (*Session, string) {
	t.Helper()
	var out bytes.Buffer
	s := NewSession(strings.NewReader(input), &out)
	s.DataFile = "testdata/Course_Data.csv"
	if setup != nil {
		setup(s)
	}
	if err := s.Run(); err != nil {
		t.Fatalf("session failed: %v", err)
	}
	return s, out.String()
}

func TestSessionLoadAndList(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	s, out := runSession(t, "1\n2\n9\n", nil)
	t.Logf("\n%s", out)
	if s.Index.Len() != 8 {
		t.Errorf("expected 8 courses, got %d", s.Index.Len())
	}
	if !strings.HasPrefix(out, "Welcome to the course planner.\n") {
		t.Errorf("missing greeting")
	}
	if !strings.Contains(out, "Loading CSV file testdata/Course_Data.csv\n") {
		t.Errorf("missing load message")
	}
	list := "CSCI100, Introduction to Computer Science\n" +
		"CSCI101, Introduction to Programming in C++\n" +
		"CSCI200, Data Structures\n" +
		"CSCI300, Introduction to Algorithms\n" +
		"CSCI301, Advanced Programming in C++\n" +
		"CSCI350, Operating Systems\n" +
		"CSCI400, Large Software Development\n" +
		"MATH201, Discrete Mathematics\n"
	if !strings.Contains(out, list) {
		t.Errorf("expected ordered course list")
	}
	if !strings.HasSuffix(out, "Thank you for using the course planner.\n") {
		t.Errorf("missing farewell")
	}
}

func TestSessionShowCourse(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	_, out := runSession(t, "1\n3\ncsci300\n3\nCS300 ABCD999\n9\n", nil)
	t.Logf("\n%s", out)
	details := "CSCI300, Introduction to Algorithms\n" +
		"Prerequisites:\n" +
		"    CSCI200\n" +
		"    MATH201\n"
	if !strings.Contains(out, details) {
		t.Errorf("expected details of CSCI300")
	}
	if !strings.Contains(out, "Invalid input. Please ensure input looks similar to 'CSCI100'.") {
		t.Errorf("expected hint for short course ID")
	}
	if !strings.Contains(out, "Course does not exist. Please try again.") {
		t.Errorf("expected not-found message for ABCD999")
	}
}

func TestSessionInvalidChoices(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	_, out := runSession(t, "x 7 2", nil)
	if !strings.Contains(out, `Invalid input "x"`) {
		t.Errorf("expected message for non-numeric choice")
	}
	if !strings.Contains(out, "7 is not a valid option.") {
		t.Errorf("expected message for unknown option")
	}
	// input exhausted without exit: farewell anyway
	if !strings.HasSuffix(out, "Thank you for using the course planner.\n") {
		t.Errorf("missing farewell")
	}
}

func TestSessionReload(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	s, _ := runSession(t, "1 1 9", nil)
	if s.Index.Len() != 16 {
		t.Errorf("expected reload to insert duplicates, len=%d", s.Index.Len())
	}
	if err := s.Index.Check(); err != nil {
		t.Error(err)
	}
	s, _ = runSession(t, "1 1 9", func(s *Session) { s.ResetOnLoad = true })
	if s.Index.Len() != 8 {
		t.Errorf("expected reset before reload, len=%d", s.Index.Len())
	}
}

func TestSessionLoadFailures(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	s, out := runSession(t, "1 9", func(s *Session) { s.DataFile = "testdata/missing.csv" })
	if !strings.Contains(out, "Failed to open file.") {
		t.Errorf("expected open failure message")
	}
	if !s.Index.IsEmpty() {
		t.Errorf("expected empty index")
	}
	s, out = runSession(t, "1 9", func(s *Session) {
		s.DataFile = "testdata/broken.csv"
		s.Verbose = true
	})
	t.Logf("\n%s", out)
	if !strings.Contains(out, "Some lines have been skipped") {
		t.Errorf("expected message for skipped lines")
	}
	if !strings.Contains(out, "     1: CSCI100\n") || !strings.Contains(out, "  skipped: line 2") {
		t.Errorf("expected verbose load report")
	}
	if s.Index.Len() != 1 {
		t.Errorf("expected 1 course, got %d", s.Index.Len())
	}
}
