/*
Package csvload reads course records from comma-separated text and inserts
them into a course index.

Every non-blank line describes one course:

	CSCI300,Introduction to Algorithms,CSCI200,MATH201

Field 1 is the course identifier, field 2 the course name, all remaining
fields are identifiers of prerequisite courses. Lines with fewer than two
fields are rejected.

Loading may be observed by subscribing to a broadcaster (see WithEvents).

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package csvload

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
