package formtree

import (
	"fmt"

	"github.com/reoring/formtree/i18n"
)

// Form is the addressable root of a tree. It validates exactly like a Group
// whose validators carry the form-wide rules, and it is the entry point for
// the dot-path operations.
type Form struct {
	root *Group
}

// NewForm builds a Form over children with the given form-tier validators.
func NewForm(children Tree, validators ...GroupValidator) *Form {
	return &Form{root: NewGroup(children, validators...)}
}

// Children returns the root children mapping.
func (f *Form) Children() Tree { return f.root.Children() }

// Validate runs the three tiers strictly in order: every leaf chain, every
// group chain on the way up, then the form-wide validators — each tier only
// when the previous one fully succeeded.
func (f *Form) Validate() (Tree, error) { return f.root.Validate() }

// Value resolves a dot path from the root. The final segment yields a
// Leaf's value or, for a Group, its full children mapping as a Tree.
func (f *Form) Value(path string) (any, error) {
	segs, err := splitPath(path)
	if err != nil {
		return nil, err
	}
	return valueAt(f.root, path, segs)
}

// SetValue replaces the Leaf value at path and returns an updated root. The
// receiver is never mutated: every ancestor along the path is rebuilt with
// its validators intact and every other branch is shared by reference. The
// write is unconditional; no validation runs.
func (f *Form) SetValue(path string, v any) (*Form, error) {
	segs, err := splitPath(path)
	if err != nil {
		return nil, err
	}
	root, err := setAt(f.root, path, segs, v)
	if err != nil {
		return nil, err
	}
	return &Form{root: root}, nil
}

// ValueAt reads the value at path with its static type. Reading a Group
// yields its children Tree, so ValueAt[formtree.Tree] works there too.
func ValueAt[V any](f *Form, path string) (V, error) {
	var zero V
	raw, err := f.Value(path)
	if err != nil {
		return zero, err
	}
	v, ok := raw.(V)
	if !ok {
		return zero, &PathError{
			Path:    path,
			Segment: lastSegment(path),
			Code:    CodeTypeMismatch,
			Message: i18n.T(CodeTypeMismatch, nil),
			Hint:    fmt.Sprintf("%T cannot be read as %T", raw, zero),
		}
	}
	return v, nil
}
