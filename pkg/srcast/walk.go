package srcast

import "iter"

// Flatten returns a lazy pre-order sequence of every node under root,
// root included. The sequence can be ranged over any number of times.
func Flatten(root *Node) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		visit(root, yield)
	}
}

func visit(node *Node, yield func(*Node) bool) bool {
	if node == nil {
		return true
	}
	if !yield(node) {
		return false
	}
	for child := node.FirstChild; child != nil; child = child.Next {
		if !visit(child, yield) {
			return false
		}
	}
	return true
}

// FindAll returns all nodes matching the predicate in pre-order.
func FindAll(root *Node, predicate func(n *Node) bool) []*Node {
	var result []*Node
	for node := range Flatten(root) {
		if predicate(node) {
			result = append(result, node)
		}
	}
	return result
}

// FindFirst returns the first node matching the predicate, or nil if none found.
func FindFirst(root *Node, predicate func(n *Node) bool) *Node {
	for node := range Flatten(root) {
		if predicate(node) {
			return node
		}
	}
	return nil
}

// FindByKind returns all nodes of the specified kind.
func FindByKind(root *Node, kind Kind) []*Node {
	return FindAll(root, func(n *Node) bool {
		return n.Kind == kind
	})
}
