package courseindex

import (
	"bytes"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestIndex2Dot(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	idx := indexOf("CSCI200", "CSCI100", "MATH201")
	idx.Insert(Course{ID: "CSCI300", Prerequisites: []string{"CSCI200", "MATH201"}})
	var buf bytes.Buffer
	if err := Index2Dot(idx, &buf); err != nil {
		t.Fatal(err)
	}
	dot := buf.String()
	t.Logf("\n%s", dot)
	if !strings.HasPrefix(dot, "strict digraph {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("output is not a DOT digraph")
	}
	for _, id := range []string{"CSCI100", "CSCI200", "CSCI300", "MATH201"} {
		if !strings.Contains(dot, id) {
			t.Errorf("expected node %s in output", id)
		}
	}
	if !strings.Contains(dot, "CSCI300\\n2 prereq") {
		t.Errorf("expected prerequisite count in label of CSCI300")
	}
	// root with two children, MATH201 with one child and one empty slot
	if n := strings.Count(dot, "->"); n != 4 {
		t.Errorf("expected 4 edges, got %d", n)
	}
}

func TestIndex2DotEmpty(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	var buf bytes.Buffer
	if err := Index2Dot(New(), &buf); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "->") {
		t.Errorf("empty index should not produce edges")
	}
	if err := Index2Dot(New(), nil); err != ErrIllegalArguments {
		t.Errorf("expected ErrIllegalArguments for nil writer, got %v", err)
	}
}

func TestIndex2DotDistinctNodeIDs(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	const n = 10050
	idx := New()
	for _, i := range rand.New(rand.NewSource(4711)).Perm(n) {
		idx.Insert(Course{ID: fmt.Sprintf("C%06d", i)})
	}
	var buf bytes.Buffer
	if err := Index2Dot(idx, &buf); err != nil {
		t.Fatal(err)
	}
	declared := make(map[string]bool)
	decls, courses := 0, 0
	for _, line := range strings.Split(buf.String(), "\n") {
		if !strings.HasPrefix(line, `"`) || strings.Contains(line, "->") {
			continue
		}
		id := line[1 : 1+strings.Index(line[1:], `"`)]
		declared[id] = true
		decls++
		if !strings.Contains(line, `label=""`) {
			courses++
		}
	}
	if courses != n {
		t.Errorf("expected %d course nodes, got %d", n, courses)
	}
	if len(declared) != decls {
		t.Errorf("%d node declarations share an id with another one", decls-len(declared))
	}
}
