package present

import (
	"bytes"
	"slices"
	"strings"
	"testing"

	"github.com/npillmayer/courseindex"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var catalog = []courseindex.Course{
	{ID: "CSCI100", Name: "Introduction to Computer Science"},
	{ID: "CSCI300", Name: "Introduction to Algorithms", Prerequisites: []string{"CSCI200", "MATH201"}},
	{ID: "MATH201", Name: "Discrete Mathematics"},
}

func TestCourse(t *testing.T) {
	var buf bytes.Buffer
	if err := Course(&buf, catalog[1]); err != nil {
		t.Fatal(err)
	}
	want := "CSCI300, Introduction to Algorithms\n" +
		"Prerequisites:\n" +
		"    CSCI200\n" +
		"    MATH201\n"
	if buf.String() != want {
		t.Errorf("expected\n%s\ngot\n%s", want, buf.String())
	}
	buf.Reset()
	Course(&buf, catalog[0])
	if !strings.HasSuffix(buf.String(), "Prerequisites:\n    No prerequisites\n") {
		t.Errorf("expected 'No prerequisites', got\n%s", buf.String())
	}
}

func TestCatalog(t *testing.T) {
	var buf bytes.Buffer
	if err := Catalog(&buf, slices.Values(catalog)); err != nil {
		t.Fatal(err)
	}
	want := "CSCI100, Introduction to Computer Science\n" +
		"CSCI300, Introduction to Algorithms\n" +
		"MATH201, Discrete Mathematics\n"
	if buf.String() != want {
		t.Errorf("expected\n%s\ngot\n%s", want, buf.String())
	}
	buf.Reset()
	Catalog(&buf, slices.Values([]courseindex.Course{}))
	if buf.Len() != 0 {
		t.Errorf("expected no output for empty catalog, got %q", buf.String())
	}
}

func TestConsoleCatalog(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	con := NewConsole(nil, 30)
	con.DisableColor()
	courses := []courseindex.Course{
		{ID: "CS1", Name: "Short"},
		{ID: "CSCI100", Name: "Introduction to Computer Science"},
	}
	var buf bytes.Buffer
	if err := con.Catalog(&buf, slices.Values(courses)); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	t.Logf("\n%s", buf.String())
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "CS1,     Short" {
		t.Errorf("expected aligned name column, got %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "CSCI100, Introduction") || !strings.HasSuffix(lines[1], "…") {
		t.Errorf("expected shortened name, got %q", lines[1])
	}
	if w := con.width(lines[1]); w > 30 {
		t.Errorf("line exceeds line width: %d ens", w)
	}
}

func TestConsoleWidth(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	con := NewConsole(nil, 80)
	for _, tt := range []struct {
		s     string
		width int
	}{
		{"", 0},
		{"CS1", 3},
		{"CSCI100", 7},
		{"0123456789", 10},
		{"CSCI100, Intro", 14},
		{"漢字", 4},
	} {
		if w := con.width(tt.s); w != tt.width {
			t.Errorf("expected width of %q to be %d, got %d", tt.s, tt.width, w)
		}
	}
	if s := con.shorten("MATH2010 Discrete", 8); s != "MATH201…" {
		t.Errorf("expected digits to count as narrow when shortening, got %q", s)
	}
}

func TestConsoleCourse(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	con := NewConsole(nil, 80)
	con.DisableColor()
	var plain, colored bytes.Buffer
	Course(&plain, catalog[1])
	if err := con.Course(&colored, catalog[1]); err != nil {
		t.Fatal(err)
	}
	if plain.String() != colored.String() {
		t.Errorf("console without colors should equal plain output, got\n%s", colored.String())
	}
}

func TestCatalogHTML(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	courses := append(slices.Clone(catalog), courseindex.Course{ID: "X<1>", Name: "A & B"})
	var buf bytes.Buffer
	if err := CatalogHTML(&buf, slices.Values(courses)); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	t.Logf("\n%s", out)
	if !strings.HasPrefix(out, `<table class="course-catalog">`) {
		t.Errorf("expected table element, got %q", out)
	}
	if !strings.Contains(out, "<td>CSCI200, MATH201</td>") {
		t.Errorf("expected prerequisites cell for CSCI300")
	}
	if !strings.Contains(out, "A &amp; B") || strings.Contains(out, "X<1>") {
		t.Errorf("expected text to be escaped")
	}
	nodes, err := html.ParseFragment(strings.NewReader(out), &html.Node{
		Type: html.ElementNode, Data: "body", DataAtom: atom.Body,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(nodes) != 1 {
		t.Fatalf("expected a single table node, got %d", len(nodes))
	}
	text := innerText(nodes[0])
	if !strings.Contains(text, "Discrete Mathematics") {
		t.Errorf("inner text misses course name: %q", text)
	}
}

// innerText collects the textual content of an HTML element and all its
// descendents.
func innerText(n *html.Node) string {
	var b strings.Builder
	collectText(n, &b)
	return b.String()
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}
