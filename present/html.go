package present

import (
	"io"
	"iter"
	"strings"

	"github.com/npillmayer/courseindex"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// CatalogHTML writes the courses as an HTML table to w. Every row carries the
// course identifier (as the row's id attribute, too), the name and the
// prerequisites, separated by commas.
func CatalogHTML(w io.Writer, courses iter.Seq[courseindex.Course]) error {
	return html.Render(w, CatalogTable(courses))
}

// CatalogTable creates the HTML table element for a catalog of courses.
func CatalogTable(courses iter.Seq[courseindex.Course]) *html.Node {
	table := element(atom.Table, html.Attribute{Key: "class", Val: "course-catalog"})
	head := element(atom.Thead)
	row := element(atom.Tr)
	for _, title := range []string{"Course", "Name", "Prerequisites"} {
		row.AppendChild(textElement(atom.Th, title))
	}
	head.AppendChild(row)
	table.AppendChild(head)
	body := element(atom.Tbody)
	n := 0
	for c := range courses {
		row := element(atom.Tr, html.Attribute{Key: "id", Val: c.ID})
		row.AppendChild(textElement(atom.Td, c.ID))
		row.AppendChild(textElement(atom.Td, c.Name))
		row.AppendChild(textElement(atom.Td, strings.Join(c.Prerequisites, ", ")))
		body.AppendChild(row)
		n++
	}
	table.AppendChild(body)
	T().Debugf("html: catalog table with %d rows", n)
	return table
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

func textElement(a atom.Atom, text string) *html.Node {
	n := element(a)
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return n
}
