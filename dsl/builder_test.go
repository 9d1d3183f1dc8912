package dsl_test

import (
	"errors"
	"testing"

	formtree "github.com/reoring/formtree"
	"github.com/reoring/formtree/dsl"
)

func TestBuilder_DeclarationOrder(t *testing.T) {
	f := dsl.Form().
		Field("zeta", dsl.String("")).
		Field("alpha", dsl.String("")).
		Field("mid", dsl.String("")).
		MustBuild()

	got := f.Children().Keys()
	want := []string{"zeta", "alpha", "mid"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("keys[%d]: got %q want %q", i, got[i], want[i])
		}
	}
}

func TestBuilder_RedeclareKeepsPosition(t *testing.T) {
	f := dsl.Form().
		Field("a", dsl.String("old")).
		Field("b", dsl.String("")).
		Field("a", dsl.String("new")).
		MustBuild()

	keys := f.Children().Keys()
	if keys[0] != "a" || keys[1] != "b" || len(keys) != 2 {
		t.Fatalf("redeclared field must keep its slot, keys=%v", keys)
	}
	v, err := f.Value("a")
	if err != nil || v != "new" {
		t.Fatalf("redeclared field must carry the new node, got %v, %v", v, err)
	}
}

func TestBuilder_RefineTagsRuleName(t *testing.T) {
	f := dsl.Form().
		Field("password", dsl.String("a")).
		Field("confirmPassword", dsl.String("b")).
		Refine("passwords_match", func(tr formtree.Tree) (formtree.Tree, error) {
			pn, _ := tr.Get("password")
			cn, _ := tr.Get("confirmPassword")
			p, _ := formtree.LeafValue(pn)
			c, _ := formtree.LeafValue(cn)
			if p != c {
				return tr, errors.New("Passwords must match")
			}
			return tr, nil
		}).
		MustBuild()

	_, err := f.Validate()
	iss, ok := formtree.AsIssues(err)
	if !ok {
		t.Fatalf("expected Issues, got %v", err)
	}
	if iss[0].Rule != "passwords_match" {
		t.Fatalf("rule: got %q want passwords_match", iss[0].Rule)
	}
	if iss[0].Message != "Passwords must match" {
		t.Fatalf("message must stay verbatim, got %q", iss[0].Message)
	}
	if iss[0].Code != formtree.CodeCustom {
		t.Fatalf("plain errors wrap as custom, got %q", iss[0].Code)
	}
}

func TestBuilder_BuildRejectsBadKeys(t *testing.T) {
	if _, err := dsl.Form().Field("a.b", dsl.String("")).Build(); err == nil {
		t.Fatalf("dotted field name must fail Build")
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("MustBuild must panic on a bad field name")
		}
	}()
	dsl.Group().Field("", dsl.Bool(false)).MustBuild()
}

func TestPrimitives(t *testing.T) {
	f := dsl.Form().
		Field("s", dsl.String("x")).
		Field("b", dsl.Bool(true)).
		Field("i", dsl.Int(7)).
		Field("f", dsl.Float(1.5)).
		MustBuild()

	if v, _ := f.Value("s"); v != "x" {
		t.Fatalf("string: %v", v)
	}
	if v, _ := f.Value("b"); v != true {
		t.Fatalf("bool: %v", v)
	}
	if v, _ := f.Value("i"); v != 7 {
		t.Fatalf("int: %v", v)
	}
	if v, _ := f.Value("f"); v != 1.5 {
		t.Fatalf("float: %v", v)
	}
}

func TestGroupBuilder_NestedForm(t *testing.T) {
	f := dsl.Form().
		Field("security", dsl.Group().
			Field("password", dsl.String("")).
			Field("confirmPassword", dsl.String("")).
			MustBuild()).
		MustBuild()

	f2, err := f.SetValue("security.password", "hunter2")
	if err != nil {
		t.Fatalf("set: %v", err)
	}
	v, err := f2.Value("security.password")
	if err != nil || v != "hunter2" {
		t.Fatalf("got %v, %v", v, err)
	}
}
