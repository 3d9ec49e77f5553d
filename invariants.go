package courseindex

import "fmt"

// Check validates structural tree invariants.
//
// Every key in a left subtree has to be less than the key of its subtree root,
// every key in a right subtree greater or equal. No node may be reachable
// twice, and the number of reachable nodes must match Len().
//
// This checker is intended to be used in tests.
func (idx *Index) Check() error {
	if idx == nil {
		return fmt.Errorf("%w: nil index", ErrIllegalArguments)
	}
	if idx.root == nil {
		if idx.size != 0 {
			return fmt.Errorf("%w: empty tree must have size 0, has %d", ErrStructure, idx.size)
		}
		return nil
	}
	// bounds are carried along with every pending node: lo <= key < hi
	type pending struct {
		n      *node
		lo, hi *string
	}
	seen := make(map[*node]bool, idx.size)
	stack := []pending{{n: idx.root}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[p.n] {
			return fmt.Errorf("%w: node %s reachable more than once", ErrStructure, p.n.course.ID)
		}
		seen[p.n] = true
		key := p.n.course.ID
		if p.lo != nil && key < *p.lo {
			return fmt.Errorf("%w: key %s in right subtree of %s", ErrStructure, key, *p.lo)
		}
		if p.hi != nil && key >= *p.hi {
			return fmt.Errorf("%w: key %s in left subtree of %s", ErrStructure, key, *p.hi)
		}
		if p.n.left != nil {
			stack = append(stack, pending{n: p.n.left, lo: p.lo, hi: &key})
		}
		if p.n.right != nil {
			stack = append(stack, pending{n: p.n.right, lo: &key, hi: p.hi})
		}
	}
	if len(seen) != idx.size {
		return fmt.Errorf("%w: size mismatch (%d != %d)", ErrStructure, len(seen), idx.size)
	}
	return nil
}
