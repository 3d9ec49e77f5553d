package courseindex

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"iter"
	"slices"
)

// Index is an ordered container of courses, keyed by course identifier.
//
// An index created by
//
//	Index{}
//
// is a valid object and behaves like an empty catalog.
//
// Operations and their costs, with h being the height of the tree:
//
//	Operation     |   Cost
//	--------------+--------
//	Insert        |   O(h)
//	Search        |   O(h)
//	Delete        |   O(h)
//	Enumerate     |   O(n)
//	Clean         |   O(n·h)
//
// The tree is not balanced, thus h may become n for pathological insertion
// orders.
//
// Index is not safe for concurrent use. Clients sharing an index between
// goroutines have to guard every call with a single mutex.
type Index struct {
	root *node
	size int
}

// node is a tree node holding one course. left holds keys strictly less than
// the node's key, right holds keys greater or equal.
type node struct {
	course Course
	left   *node
	right  *node
}

// New creates an empty index.
func New() *Index {
	return &Index{}
}

// Len returns the number of courses stored, including shadowed duplicates.
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return idx.size
}

// IsEmpty is true for an index without any courses.
func (idx *Index) IsEmpty() bool {
	return idx == nil || idx.root == nil
}

// Insert stores a course. It never replaces an existing course: a course with
// an identifier already present is placed in the right subtree of the existing
// one. Insert stores a copy of the prerequisite list.
func (idx *Index) Insert(course Course) {
	assert(idx != nil, "Insert called on nil index")
	leaf := &node{course: course.Clone()}
	idx.size++
	if idx.root == nil {
		idx.root = leaf
		T().Debugf("course index: %s is new root", course.ID)
		return
	}
	n := idx.root
	for {
		if course.ID < n.course.ID {
			if n.left == nil {
				n.left = leaf
				T().Debugf("course index: %s inserted left of %s", course.ID, n.course.ID)
				return
			}
			n = n.left
		} else {
			if n.right == nil {
				n.right = leaf
				T().Debugf("course index: %s inserted right of %s", course.ID, n.course.ID)
				return
			}
			n = n.right
		}
	}
}

// Search looks up a course by identifier. If the identifier is not present,
// found will be false.
//
// With duplicate identifiers, the course nearest to the root is returned.
func (idx *Index) Search(id string) (course Course, found bool) {
	if n := idx.find(id); n != nil {
		return n.course.Clone(), true
	}
	return Course{}, false
}

// Contains is true if a course with identifier id is present.
func (idx *Index) Contains(id string) bool {
	return idx.find(id) != nil
}

func (idx *Index) find(id string) *node {
	if idx == nil {
		return nil
	}
	n := idx.root
	for n != nil {
		if n.course.ID == id {
			return n
		} else if id < n.course.ID {
			n = n.left
		} else {
			n = n.right
		}
	}
	return nil
}

// Delete removes the course with identifier id and reports whether a course
// has been removed. Deleting an identifier which is not present is a no-op.
//
// With duplicate identifiers, the course nearest to the root is removed, which
// is not necessarily the one inserted last.
func (idx *Index) Delete(id string) bool {
	if idx == nil {
		return false
	}
	var parent *node
	n := idx.root
	for n != nil && n.course.ID != id {
		parent = n
		if id < n.course.ID {
			n = n.left
		} else {
			n = n.right
		}
	}
	if n == nil {
		T().Debugf("course index: delete of %s is a no-op", id)
		return false
	}
	switch {
	case n.left == nil && n.right == nil:
		T().Debugf("course index: delete leaf %s", id)
		idx.replaceChild(parent, n, nil)
	case n.left == nil:
		T().Debugf("course index: delete %s, splicing right child", id)
		idx.replaceChild(parent, n, n.right)
	case n.right == nil:
		T().Debugf("course index: delete %s, splicing left child", id)
		idx.replaceChild(parent, n, n.left)
	default:
		// in-order successor: one step right, then left as far as possible
		succParent, succ := n, n.right
		for succ.left != nil {
			succParent, succ = succ, succ.left
		}
		T().Debugf("course index: delete %s, successor is %s", id, succ.course.ID)
		n.course = succ.course
		// succ is a leaf or has a right child only
		assert(succ.left == nil, "in-order successor has a left child")
		idx.replaceChild(succParent, succ, succ.right)
	}
	idx.size--
	return true
}

// replaceChild puts child into the slot of parent which currently holds n.
// A nil parent denotes the root slot.
func (idx *Index) replaceChild(parent, n, child *node) {
	switch {
	case parent == nil:
		assert(idx.root == n, "node without parent is not the root")
		idx.root = child
	case parent.left == n:
		parent.left = child
	default:
		assert(parent.right == n, "node is not a child of its parent")
		parent.right = child
	}
}

// Enumerate returns an iterator over all courses in ascending order of their
// identifiers. The iterator reflects the index at the time of the call to
// Enumerate; later modifications of the index do not show up.
func (idx *Index) Enumerate() iter.Seq[Course] {
	courses := make([]Course, 0, idx.Len())
	idx.walk(func(n *node) bool {
		courses = append(courses, n.course.Clone())
		return true
	})
	return slices.Values(courses)
}

// ForEach walks the courses in-order.
//
// Iteration stops early if fn returns false. fn must not modify the index.
func (idx *Index) ForEach(fn func(course Course) bool) {
	if fn == nil {
		return
	}
	idx.walk(func(n *node) bool {
		return fn(n.course.Clone())
	})
}

// walk visits nodes in-order, using an explicit stack. It stops as soon as
// fn returns false.
func (idx *Index) walk(fn func(n *node) bool) {
	if idx == nil {
		return
	}
	var stack []*node
	n := idx.root
	for n != nil || len(stack) > 0 {
		for n != nil {
			stack = append(stack, n)
			n = n.left
		}
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(n) {
			return
		}
		n = n.right
	}
}

// Height returns the number of nodes on the longest path from the root to a
// leaf. An empty index has height 0.
func (idx *Index) Height() int {
	if idx.IsEmpty() {
		return 0
	}
	height := 0
	level := []*node{idx.root}
	for len(level) > 0 {
		height++
		var next []*node
		for _, n := range level {
			if n.left != nil {
				next = append(next, n.left)
			}
			if n.right != nil {
				next = append(next, n.right)
			}
		}
		level = next
	}
	return height
}

// Clean sweeps the catalog for courses to remove and deletes them. It returns
// the number of identifiers selected for removal.
//
// Selection is done in a first, read-only in-order pass. For every prerequisite
// of a course, the course's own identifier is looked up in the index; if that
// lookup fails and the identifier has not been selected before, it is selected.
// Prerequisite identifiers themselves are never resolved, so courses naming
// prerequisites outside of the catalog are kept. In a structurally intact tree
// the self-lookup cannot fail and Clean removes nothing.
//
// The second pass calls Delete for every selected identifier, in selection
// order.
func (idx *Index) Clean() int {
	if idx.IsEmpty() {
		return 0
	}
	var removals []string
	idx.walk(func(n *node) bool {
		for range n.course.Prerequisites {
			if !idx.Contains(n.course.ID) && !slices.Contains(removals, n.course.ID) {
				removals = append(removals, n.course.ID)
			}
		}
		return true
	})
	for _, id := range removals {
		idx.Delete(id)
	}
	if len(removals) > 0 {
		T().Infof("course index: clean removed %d course(s): %v", len(removals), removals)
	}
	return len(removals)
}

// Reset drops all courses from the index.
func (idx *Index) Reset() {
	if idx == nil {
		return
	}
	idx.root = nil
	idx.size = 0
}
