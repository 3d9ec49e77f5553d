/*
Package courseindex keeps course records of a study program in key order.

Index

An Index is a plain binary search tree, keyed by course identifier. It offers
insertion, exact lookup, deletion with structural repair and in-order
enumeration. No balancing is done: feeding a strictly increasing sequence of
identifiers will degrade the tree to a list. For catalogs of a study program
(a few hundred courses at most) this has never been a problem, and all
traversals are iterative, so deep trees will not exhaust the stack.

Keys are compared as Go strings. The index does not normalize identifiers;
clients are expected to upper-case them before insertion (the prompt package
does this for interactive input).

Ties are routed to the right:

	key(left subtree) < key(node) <= key(right subtree)

Inserting a course with an identifier already present is legal. The new
record ends up in the right subtree of the existing one and will be shadowed
by it for Search and Delete until the first one is gone.

Clean

Clean is a sweep over the whole catalog, run by the menu driver once after
every load. It collects courses for removal in a first, read-only pass and
deletes them in a second pass. Please refer to the documentation of Clean for
the (somewhat surprising) selection rule.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package courseindex

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// IndexError is an error type for the courseindex module.
type IndexError string

func (e IndexError) Error() string {
	return string(e)
}

// ErrStructure is flagged by Check whenever the tree violates the ordering
// invariant or a node is reachable more than once.
const ErrStructure = IndexError("course index: structural invariant violated")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = IndexError("illegal arguments")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
