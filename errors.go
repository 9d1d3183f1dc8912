package formtree

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeRequired    = "required"
	CodeTooShort    = "too_short"
	CodeTooLong     = "too_long"
	CodePattern     = "pattern"
	CodeOutOfRange  = "out_of_range"
	CodeInvalidEnum = "invalid_enum"
	// Custom wraps validator errors that are not already Issues.
	CodeCustom = "custom"
	// Structural codes carried by PathError, never by Issues.
	CodeEmptyPath    = "empty_path"
	CodeKeyNotFound  = "key_not_found"
	CodeNotAGroup    = "not_a_group"
	CodeNotALeaf     = "not_a_leaf"
	CodeTypeMismatch = "type_mismatch"
)

// Issue represents a single validation entry.
type Issue struct {
	Path    string // Dot path from the root (for example: security.password). Empty at the failing node itself.
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints, expected shapes, etc.
	Cause   error  // Optional: underlying error.
	Rule    string // Optionally records the rule name that produced this issue.
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. Passwords must match at security
		if it.Path == "" {
			b.WriteString(it.Message)
			continue
		}
		fmt.Fprintf(b, "%s at %s", it.Message, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// PathError reports a structural failure of a path operation: an empty path,
// a missing key, traversal through a Leaf, or a write that does not fit the
// target Leaf's value type. It is a distinct class from Issues; a PathError
// indicates a caller/schema mismatch, not a data-quality problem. Path
// operations return it rather than panicking, and they do so uniformly.
type PathError struct {
	Path    string // The full path handed to the operation.
	Segment string // The segment that failed, empty for empty-path errors.
	Code    string // One of the structural codes above.
	Message string
	Hint    string // Optional: expected shape, offending type, etc.
}

func (e *PathError) Error() string {
	if e.Segment == "" {
		return fmt.Sprintf("formtree: %s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("formtree: %s at %q in %q: %s", e.Code, e.Segment, e.Path, e.Message)
}

// AsPathError extracts a *PathError from an error using errors.As internally.
func AsPathError(err error) (*PathError, bool) {
	if err == nil {
		return nil, false
	}
	var pe *PathError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// issuesFromErr converts an error into Issues, wrapping non-Issues with CodeCustom.
// The original message is preserved verbatim.
func issuesFromErr(err error) Issues {
	if err == nil {
		return nil
	}
	if iss, ok := AsIssues(err); ok {
		return iss
	}
	return Issues{{Code: CodeCustom, Message: err.Error(), Cause: err}}
}

// rebaseIssues prefixes a child key onto every issue path so errors surface
// with their full location from the root. Messages are never rewritten.
func rebaseIssues(key string, iss Issues) Issues {
	out := make(Issues, 0, len(iss))
	for _, it := range iss {
		p := key
		if it.Path != "" {
			p = key + "." + it.Path
		}
		out = append(out, Issue{Path: p, Code: it.Code, Message: it.Message, Hint: it.Hint, Cause: it.Cause, Rule: it.Rule})
	}
	return out
}
