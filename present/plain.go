package present

import (
	"bufio"
	"io"
	"iter"

	"github.com/npillmayer/courseindex"
)

// Indent precedes every prerequisite line of a course.
const Indent = "    "

// Course writes the details of a course to w:
//
//	CSCI300, Introduction to Algorithms
//	Prerequisites:
//	    CSCI200
//	    MATH201
func Course(w io.Writer, c courseindex.Course) error {
	bw := bufio.NewWriter(w)
	writeCourse(bw, c, func(s string) string { return s })
	return bw.Flush()
}

func writeCourse(bw *bufio.Writer, c courseindex.Course, id func(string) string) {
	bw.WriteString(id(c.ID))
	bw.WriteString(", ")
	bw.WriteString(c.Name)
	bw.WriteString("\nPrerequisites:\n")
	if !c.HasPrerequisites() {
		bw.WriteString(Indent + "No prerequisites\n")
		return
	}
	for _, p := range c.Prerequisites {
		bw.WriteString(Indent)
		bw.WriteString(id(p))
		bw.WriteByte('\n')
	}
}

// Catalog writes one line per course to w, in the order of courses.
func Catalog(w io.Writer, courses iter.Seq[courseindex.Course]) error {
	bw := bufio.NewWriter(w)
	for c := range courses {
		bw.WriteString(c.ID)
		bw.WriteString(", ")
		bw.WriteString(c.Name)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Plain renders courses with the package level functions Course and Catalog.
type Plain struct{}

// Course calls the package level function Course.
func (Plain) Course(w io.Writer, c courseindex.Course) error { return Course(w, c) }

// Catalog calls the package level function Catalog.
func (Plain) Catalog(w io.Writer, courses iter.Seq[courseindex.Course]) error {
	return Catalog(w, courses)
}
