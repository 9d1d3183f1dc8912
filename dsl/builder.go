package dsl

import (
	formtree "github.com/reoring/formtree"
)

type groupBuilder struct {
	fields     []formtree.Field
	index      map[string]int
	validators []formtree.GroupValidator
}

// Group creates a builder for a nested group.
func Group() *groupBuilder {
	return &groupBuilder{index: map[string]int{}}
}

// Field registers a child node under name. Redeclaring a name replaces the
// node but keeps the original declaration position.
func (b *groupBuilder) Field(name string, n formtree.Node) *groupBuilder {
	if i, ok := b.index[name]; ok {
		b.fields[i].Node = n
		return b
	}
	b.index[name] = len(b.fields)
	b.fields = append(b.fields, formtree.F(name, n))
	return b
}

// Refine adds a named group-tier validator. It runs after every child
// validated successfully; the name is recorded as Issue.Rule on failure.
func (b *groupBuilder) Refine(name string, fn formtree.GroupValidator) *groupBuilder {
	if fn == nil {
		return b
	}
	b.validators = append(b.validators, named(name, fn))
	return b
}

// Build validates the builder and returns the Group.
func (b *groupBuilder) Build() (*formtree.Group, error) {
	t, err := formtree.NewTree(b.fields...)
	if err != nil {
		return nil, err
	}
	return formtree.NewGroup(t, b.validators...), nil
}

// MustBuild is like Build but panics on error.
func (b *groupBuilder) MustBuild() *formtree.Group {
	g, err := b.Build()
	if err != nil {
		panic(err)
	}
	return g
}

type formBuilder struct {
	g groupBuilder
}

// Form creates a builder for the addressable root.
func Form() *formBuilder {
	return &formBuilder{g: groupBuilder{index: map[string]int{}}}
}

// Field registers a child node under name. Redeclaring a name replaces the
// node but keeps the original declaration position.
func (b *formBuilder) Field(name string, n formtree.Node) *formBuilder {
	b.g.Field(name, n)
	return b
}

// Refine adds a named form-tier validator, executed only after every leaf
// and group tier succeeded.
func (b *formBuilder) Refine(name string, fn formtree.GroupValidator) *formBuilder {
	b.g.Refine(name, fn)
	return b
}

// Build validates the builder and returns the Form.
func (b *formBuilder) Build() (*formtree.Form, error) {
	t, err := formtree.NewTree(b.g.fields...)
	if err != nil {
		return nil, err
	}
	return formtree.NewForm(t, b.g.validators...), nil
}

// MustBuild is like Build but panics on error.
func (b *formBuilder) MustBuild() *formtree.Form {
	f, err := b.Build()
	if err != nil {
		panic(err)
	}
	return f
}

// named tags failures from fn with the rule name. Issues that already carry
// a rule name keep it; plain errors are wrapped once with code "custom" and
// the message preserved verbatim.
func named(name string, fn formtree.GroupValidator) formtree.GroupValidator {
	return func(t formtree.Tree) (formtree.Tree, error) {
		out, err := fn(t)
		if err == nil {
			return out, nil
		}
		if iss, ok := formtree.AsIssues(err); ok {
			tagged := make(formtree.Issues, len(iss))
			for i, it := range iss {
				if it.Rule == "" {
					it.Rule = name
				}
				tagged[i] = it
			}
			return out, tagged
		}
		return out, formtree.Issues{{Code: formtree.CodeCustom, Message: err.Error(), Cause: err, Rule: name}}
	}
}
