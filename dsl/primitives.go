package dsl

import (
	formtree "github.com/reoring/formtree"
)

// String returns a Leaf over a string value.
func String(v string, validators ...formtree.Validator[string]) *formtree.Leaf[string] {
	return formtree.NewLeaf(v, validators...)
}

// Bool returns a Leaf over a bool value.
func Bool(v bool, validators ...formtree.Validator[bool]) *formtree.Leaf[bool] {
	return formtree.NewLeaf(v, validators...)
}

// Int returns a Leaf over an int value.
func Int(v int, validators ...formtree.Validator[int]) *formtree.Leaf[int] {
	return formtree.NewLeaf(v, validators...)
}

// Float returns a Leaf over a float64 value.
func Float(v float64, validators ...formtree.Validator[float64]) *formtree.Leaf[float64] {
	return formtree.NewLeaf(v, validators...)
}
