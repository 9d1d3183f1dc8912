package formtree

import (
	"strings"

	"github.com/reoring/formtree/i18n"
)

// splitPath breaks a dot path into segments. The empty path and paths with
// empty segments ("a..b", trailing dot) are structural errors.
func splitPath(path string) ([]string, error) {
	if path == "" {
		return nil, &PathError{Path: path, Code: CodeEmptyPath, Message: i18n.T(CodeEmptyPath, nil)}
	}
	segs := strings.Split(path, ".")
	for _, s := range segs {
		if s == "" {
			return nil, &PathError{Path: path, Code: CodeEmptyPath, Message: i18n.T(CodeEmptyPath, nil), Hint: "empty segment"}
		}
	}
	return segs, nil
}

func lastSegment(path string) string {
	if i := strings.LastIndexByte(path, '.'); i >= 0 {
		return path[i+1:]
	}
	return path
}

// valueAt walks segments recursively. Every non-final segment must resolve
// to a Group; the final one may be a Leaf (its value) or a Group (its
// children mapping).
func valueAt(g *Group, path string, segs []string) (any, error) {
	seg := segs[0]
	child, ok := g.children.Get(seg)
	if !ok {
		return nil, &PathError{Path: path, Segment: seg, Code: CodeKeyNotFound, Message: i18n.T(CodeKeyNotFound, nil)}
	}
	if len(segs) == 1 {
		if grp, ok := child.(*Group); ok {
			return grp.Children(), nil
		}
		return child.(leafNode).leafValue(), nil
	}
	grp, ok := child.(*Group)
	if !ok {
		return nil, &PathError{Path: path, Segment: seg, Code: CodeNotAGroup, Message: i18n.T(CodeNotAGroup, nil), Hint: "cannot traverse into a leaf"}
	}
	return valueAt(grp, path, segs[1:])
}

// setAt rebuilds the spine from the target leaf up to the root. Each
// ancestor keeps its validators and shares all untouched children; the
// original tree is left intact. A failure returns before any new group is
// observable.
func setAt(g *Group, path string, segs []string, v any) (*Group, error) {
	seg := segs[0]
	child, ok := g.children.Get(seg)
	if !ok {
		return nil, &PathError{Path: path, Segment: seg, Code: CodeKeyNotFound, Message: i18n.T(CodeKeyNotFound, nil)}
	}
	if len(segs) == 1 {
		leaf, ok := child.(leafNode)
		if !ok {
			return nil, &PathError{Path: path, Segment: seg, Code: CodeNotALeaf, Message: i18n.T(CodeNotALeaf, nil), Hint: "cannot assign a value to a group"}
		}
		repl, err := leaf.leafWithValue(v)
		if err != nil {
			if pe, ok := AsPathError(err); ok {
				pe.Path, pe.Segment = path, seg
			}
			return nil, err
		}
		return &Group{children: g.children.with(seg, repl), validators: g.validators}, nil
	}
	grp, ok := child.(*Group)
	if !ok {
		return nil, &PathError{Path: path, Segment: seg, Code: CodeNotAGroup, Message: i18n.T(CodeNotAGroup, nil), Hint: "cannot traverse into a leaf"}
	}
	sub, err := setAt(grp, path, segs[1:], v)
	if err != nil {
		return nil, err
	}
	return &Group{children: g.children.with(seg, sub), validators: g.validators}, nil
}
