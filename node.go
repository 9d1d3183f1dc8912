package formtree

// Node is the sealed variant over the two tree shapes, *Leaf[V] and *Group.
// The path engine discriminates with a *Group assertion and the type-erased
// leafNode view below; no other implementations exist.
type Node interface {
	// validateNode runs the node's own validation tier(s) and reports the
	// first failure as Issues with paths relative to this node.
	validateNode() error
	sealedNode()
}

// LeafValue returns the value stored in n when n is a Leaf of any type.
// It reports false for a Group.
func LeafValue(n Node) (any, bool) {
	if l, ok := n.(leafNode); ok {
		return l.leafValue(), true
	}
	return nil, false
}

// leafNode is the type-erased view of *Leaf[V] used during traversal, where
// the concrete value type is unknown.
type leafNode interface {
	Node
	leafValue() any
	// leafWithValue builds the replacement leaf for a path write. The value
	// must fit the leaf's static type; the returned PathError has its
	// Path/Segment filled in by the caller.
	leafWithValue(v any) (Node, error)
}
