package formtree

import (
	"fmt"
	"strings"
)

// Field pairs a key with its node for ordered Tree construction.
type Field struct {
	Key  string
	Node Node
}

// F is shorthand for a Field literal.
func F(key string, n Node) Field { return Field{Key: key, Node: n} }

// Tree is an ordered, immutable mapping from key to child Node. Iteration
// and validation follow insertion order; that order decides which failure
// surfaces first when several children are invalid.
type Tree struct {
	keys  []string
	nodes map[string]Node
}

// NewTree builds a Tree from fields in declaration order. Keys must be
// non-empty, free of '.', and unique.
func NewTree(fields ...Field) (Tree, error) {
	keys := make([]string, 0, len(fields))
	nodes := make(map[string]Node, len(fields))
	for _, f := range fields {
		if f.Key == "" {
			return Tree{}, fmt.Errorf("formtree: empty key")
		}
		if strings.Contains(f.Key, ".") {
			return Tree{}, fmt.Errorf("formtree: key %q must not contain '.'", f.Key)
		}
		if f.Node == nil {
			return Tree{}, fmt.Errorf("formtree: nil node for key %q", f.Key)
		}
		if _, dup := nodes[f.Key]; dup {
			return Tree{}, fmt.Errorf("formtree: duplicate key %q", f.Key)
		}
		keys = append(keys, f.Key)
		nodes[f.Key] = f.Node
	}
	return Tree{keys: keys, nodes: nodes}, nil
}

// MustTree is like NewTree but panics on error.
func MustTree(fields ...Field) Tree {
	t, err := NewTree(fields...)
	if err != nil {
		panic(err)
	}
	return t
}

// Len returns the number of children.
func (t Tree) Len() int { return len(t.keys) }

// Keys returns the child keys in declaration order.
func (t Tree) Keys() []string {
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}

// Get returns the child node for key.
func (t Tree) Get(key string) (Node, bool) {
	n, ok := t.nodes[key]
	return n, ok
}

// with returns a copy of the mapping with the single entry for key replaced.
// The key order is shared with the receiver and every other child node is
// reused by reference.
func (t Tree) with(key string, n Node) Tree {
	nodes := make(map[string]Node, len(t.nodes))
	for k, v := range t.nodes {
		nodes[k] = v
	}
	nodes[key] = n
	return Tree{keys: t.keys, nodes: nodes}
}
