package formtree_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	formtree "github.com/reoring/formtree"
)

func TestIssues_ErrorSummary(t *testing.T) {
	iss := formtree.Issues{
		{Path: "a", Message: "first"},
		{Path: "b", Message: "second"},
		{Path: "c", Message: "third"},
		{Path: "d", Message: "fourth"},
	}
	msg := iss.Error()
	if !strings.Contains(msg, "first at a") {
		t.Fatalf("summary missing first issue: %q", msg)
	}
	if !strings.Contains(msg, "total 4") {
		t.Fatalf("summary missing overflow marker: %q", msg)
	}
	if strings.Contains(msg, "fourth") {
		t.Fatalf("summary must cap shown issues: %q", msg)
	}

	if (formtree.Issues{}).Error() != "" {
		t.Fatalf("empty Issues must stringify empty")
	}
}

func TestAsIssues_Wrapped(t *testing.T) {
	err := fmt.Errorf("outer: %w", formtree.Issues{{Message: "inner"}})
	iss, ok := formtree.AsIssues(err)
	if !ok || iss[0].Message != "inner" {
		t.Fatalf("expected unwrap to Issues, got %v", err)
	}
	if _, ok := formtree.AsIssues(errors.New("plain")); ok {
		t.Fatalf("plain error must not read as Issues")
	}
	if _, ok := formtree.AsIssues(nil); ok {
		t.Fatalf("nil must not read as Issues")
	}
}

func TestPathError_ErrorString(t *testing.T) {
	pe := &formtree.PathError{Path: "a.b", Segment: "b", Code: formtree.CodeKeyNotFound, Message: "key not found"}
	msg := pe.Error()
	if !strings.Contains(msg, formtree.CodeKeyNotFound) || !strings.Contains(msg, `"a.b"`) {
		t.Fatalf("unexpected rendering: %q", msg)
	}

	if _, ok := formtree.AsPathError(errors.New("plain")); ok {
		t.Fatalf("plain error must not read as PathError")
	}
	wrapped := fmt.Errorf("outer: %w", pe)
	if got, ok := formtree.AsPathError(wrapped); !ok || got != pe {
		t.Fatalf("expected unwrap to the original PathError")
	}
}
