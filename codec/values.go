// Package codec binds form trees to plain value documents. Values snapshots
// a form's current values as nested maps; Apply performs the reverse,
// writing a document onto a form path by path and returning a new root.
// JSON (goccy/go-json) and YAML (yaml.v3) front ends build on the same pair.
package codec

import (
	"sort"

	formtree "github.com/reoring/formtree"
	"github.com/reoring/formtree/i18n"
)

// Values snapshots the form's current leaf values as nested maps, one map
// per group. Declaration order is not observable through a Go map; use the
// form itself when order matters.
func Values(f *formtree.Form) map[string]any {
	return treeValues(f.Children())
}

func treeValues(t formtree.Tree) map[string]any {
	out := make(map[string]any, t.Len())
	for _, k := range t.Keys() {
		n, _ := t.Get(k)
		if g, ok := n.(*formtree.Group); ok {
			out[k] = treeValues(g.Children())
			continue
		}
		if v, ok := formtree.LeafValue(n); ok {
			out[k] = v
		}
	}
	return out
}

// Apply writes values onto f and returns the updated root; f itself is
// untouched. Keys are applied in the form's declaration order, nested maps
// recurse into groups, and unknown keys are rejected. Any failure returns
// before a new form is observable. Value types must fit the target leaves:
// documents decoded from JSON carry float64 numbers, so numeric leaves
// intended for JSON binding should hold float64.
func Apply(f *formtree.Form, values map[string]any) (*formtree.Form, error) {
	writes, err := flatten(f.Children(), "", values)
	if err != nil {
		return nil, err
	}
	cur := f
	for _, w := range writes {
		next, err := cur.SetValue(w.path, w.value)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

type write struct {
	path  string
	value any
}

func flatten(t formtree.Tree, prefix string, values map[string]any) ([]write, error) {
	var out []write
	for _, k := range t.Keys() {
		v, present := values[k]
		if !present {
			continue
		}
		n, _ := t.Get(k)
		path := k
		if prefix != "" {
			path = prefix + "." + k
		}
		if g, ok := n.(*formtree.Group); ok {
			sub, ok := v.(map[string]any)
			if !ok {
				return nil, &formtree.PathError{Path: path, Segment: k, Code: formtree.CodeNotALeaf, Message: i18n.T(formtree.CodeNotALeaf, nil), Hint: "group value must be a map"}
			}
			more, err := flatten(g.Children(), path, sub)
			if err != nil {
				return nil, err
			}
			out = append(out, more...)
			continue
		}
		out = append(out, write{path: path, value: v})
	}
	// unknown keys in key-sorted order for deterministic error selection
	unknown := make([]string, 0, len(values))
	for k := range values {
		if _, ok := t.Get(k); !ok {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		k := unknown[0]
		path := k
		if prefix != "" {
			path = prefix + "." + k
		}
		return nil, &formtree.PathError{Path: path, Segment: k, Code: formtree.CodeKeyNotFound, Message: i18n.T(formtree.CodeKeyNotFound, nil)}
	}
	return out, nil
}
