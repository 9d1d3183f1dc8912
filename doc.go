package formtree

// Package formtree provides:
//
// - An immutable tree model for form state: Leaf values, ordered Groups, and an addressable Form root
// - Dot-path reads and copy-on-write writes (a write returns a new root and shares untouched branches)
// - Three-tier validation (leaf, group, form) with first-failure ordering and a stable Issues error model
//
// Design policy:
// - Keep only public APIs in the root package.
// - Place the builder DSL under dsl/, reusable validators under rules/, and value binding under codec/.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	f := buildForm()
//	f2, err := f.SetValue("account.email", "a@example.com")
//	if _, err := f2.Validate(); err != nil { ... }
//
//	name, err := formtree.ValueAt[string](f2, "account.name")
