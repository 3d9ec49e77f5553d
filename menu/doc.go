/*
Package menu implements the interactive advising session.

A Session owns one course index and offers a small text menu:

	Menu:
	  1. Load Courses
	  2. Display Course List
	  3. Print Course Details
	  9. Exit

Loading reads the session's course file and sweeps the index with Clean
afterwards, once per load.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package menu

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
