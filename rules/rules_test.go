package rules_test

import (
	"testing"

	formtree "github.com/reoring/formtree"
	"github.com/reoring/formtree/rules"
)

func mustFailWith(t *testing.T, err error, code, rule string) {
	t.Helper()
	iss, ok := formtree.AsIssues(err)
	if !ok {
		t.Fatalf("expected Issues, got %v", err)
	}
	if iss[0].Code != code {
		t.Fatalf("code: got %q want %q", iss[0].Code, code)
	}
	if iss[0].Rule != rule {
		t.Fatalf("rule: got %q want %q", iss[0].Rule, rule)
	}
}

func TestNonEmpty(t *testing.T) {
	v := rules.NonEmpty()
	if _, err := v("ok"); err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	_, err := v("")
	mustFailWith(t, err, formtree.CodeRequired, "non_empty")
}

func TestMinMaxLen(t *testing.T) {
	if _, err := rules.MinLen(3)("ab"); err == nil {
		t.Fatalf("expected too_short")
	} else {
		mustFailWith(t, err, formtree.CodeTooShort, "min_len")
	}
	if _, err := rules.MinLen(3)("abc"); err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	if _, err := rules.MaxLen(3)("abcd"); err == nil {
		t.Fatalf("expected too_long")
	} else {
		mustFailWith(t, err, formtree.CodeTooLong, "max_len")
	}
}

func TestPattern(t *testing.T) {
	email := rules.Pattern(`^[^@\s]+@[^@\s]+$`)
	if _, err := email("a@b"); err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	_, err := email("not-an-email")
	mustFailWith(t, err, formtree.CodePattern, "match")
}

func TestMinMax(t *testing.T) {
	if _, err := rules.Min(18)(17); err == nil {
		t.Fatalf("expected out_of_range")
	} else {
		mustFailWith(t, err, formtree.CodeOutOfRange, "min")
	}
	if _, err := rules.Max(99.5)(100.2); err == nil {
		t.Fatalf("expected out_of_range")
	} else {
		mustFailWith(t, err, formtree.CodeOutOfRange, "max")
	}
	if _, err := rules.Min(0)(0); err != nil {
		t.Fatalf("boundary must pass: %v", err)
	}
}

func TestOneOf(t *testing.T) {
	role := rules.OneOf("admin", "editor", "viewer")
	if _, err := role("editor"); err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	_, err := role("root")
	mustFailWith(t, err, formtree.CodeInvalidEnum, "one_of")
}

func TestRules_OnLeaves(t *testing.T) {
	f := formtree.NewForm(formtree.MustTree(
		formtree.F("name", formtree.NewLeaf("", rules.NonEmpty(), rules.MaxLen(64))),
		formtree.F("age", formtree.NewLeaf(0, rules.Min(18))),
	))
	_, err := f.Validate()
	iss, ok := formtree.AsIssues(err)
	if !ok {
		t.Fatalf("expected Issues, got %v", err)
	}
	// name declares first, so its failure wins
	if iss[0].Path != "name" || iss[0].Code != formtree.CodeRequired {
		t.Fatalf("got path=%q code=%q", iss[0].Path, iss[0].Code)
	}

	f2, err := f.SetValue("name", "Ada")
	if err != nil {
		t.Fatalf("set: %v", err)
	}
	_, err = f2.Validate()
	iss, _ = formtree.AsIssues(err)
	if iss[0].Path != "age" || iss[0].Code != formtree.CodeOutOfRange {
		t.Fatalf("got path=%q code=%q", iss[0].Path, iss[0].Code)
	}
}
