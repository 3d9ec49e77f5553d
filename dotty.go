package courseindex

import (
	"fmt"
	"io"
	"strings"
)

type nodeids struct {
	idTable map[*node]int
	max     int
}

func newtable() nodeids {
	return nodeids{
		idTable: make(map[*node]int),
		max:     1,
	}
}

func (ids nodeids) find(n *node) int {
	return ids.idTable[n]
}

func (ids *nodeids) alloc(n *node) int {
	if id := ids.find(n); id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// placeholder allocates an id for an empty child slot, drawn from the same
// sequence as node ids.
func (ids *nodeids) placeholder() int {
	ids.max++
	return ids.max - 1
}

// Index2Dot outputs the internal structure of an Index in Graphviz DOT format
// (for debugging purposes).
func Index2Dot(idx *Index, w io.Writer) error {
	if w == nil {
		return ErrIllegalArguments
	}
	var b strings.Builder
	b.WriteString("strict digraph {\n")
	b.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable()
	var nodelist, edgelist strings.Builder
	idx.walk(func(n *node) bool {
		ID := ids.alloc(n)
		label := fmt.Sprintf("%s\\n%d prereq", escapeDot(n.course.ID), len(n.course.Prerequisites))
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", ID, label, nodeDotStyles(n))
		if n.left == nil && n.right == nil {
			return true
		}
		for _, child := range [2]*node{n.left, n.right} {
			if child == nil {
				nilid := ids.placeholder()
				fmt.Fprintf(&nodelist, "\"%d\" %s;\n", nilid, emptyNode())
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, nilid)
			} else {
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
			}
		}
		return true
	})
	b.WriteString(nodelist.String())
	b.WriteString(edgelist.String())
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	if err != nil {
		T().Errorf("index DOT: %s", err.Error())
	}
	return err
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles(n *node) string {
	s := ",style=filled"
	if n.left == nil && n.right == nil {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=ellipse"
	}
	return s
}

func escapeDot(s string) string {
	return strings.ReplaceAll(s, "\"", "\\\"")
}
