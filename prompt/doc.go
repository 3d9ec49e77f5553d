/*
Package prompt asks an operator for course identifiers.

Course identifiers of the catalog consist of a four letter subject code and a
three digit course number, e.g. "CSCI100". The prompt insists on tokens of
exactly seven characters and upper-cases them, so operators may type
"csci100" as well.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package prompt

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
