package formtree

import (
	"fmt"

	"github.com/reoring/formtree/i18n"
)

// Leaf is a single validated value. It is immutable: WithValue produces a
// replacement leaf and the validator chain is fixed at construction.
type Leaf[V any] struct {
	value      V
	validators []Validator[V]
}

// NewLeaf builds a Leaf holding value, checked by the given validators in
// declaration order.
func NewLeaf[V any](value V, validators ...Validator[V]) *Leaf[V] {
	vs := make([]Validator[V], len(validators))
	copy(vs, validators)
	return &Leaf[V]{value: value, validators: vs}
}

// Value returns the stored value.
func (l *Leaf[V]) Value() V { return l.value }

// WithValue returns a new Leaf carrying v and the same validator chain. The
// receiver is untouched. No validation runs on a write; validity is only
// checked by an explicit Validate call.
func (l *Leaf[V]) WithValue(v V) *Leaf[V] {
	return &Leaf[V]{value: v, validators: l.validators}
}

// Validate runs the validator chain against the current value, stopping at
// the first failure. A leaf with no validators always succeeds with its
// value unchanged.
func (l *Leaf[V]) Validate() (V, error) {
	return runChain(l.value, l.validators)
}

func (l *Leaf[V]) validateNode() error {
	_, err := l.Validate()
	return err
}

func (l *Leaf[V]) leafValue() any { return l.value }

func (l *Leaf[V]) leafWithValue(v any) (Node, error) {
	vv, ok := v.(V)
	if !ok {
		return nil, &PathError{
			Code:    CodeTypeMismatch,
			Message: i18n.T(CodeTypeMismatch, nil),
			Hint:    fmt.Sprintf("%T does not fit leaf of %T", v, l.value),
		}
	}
	return l.WithValue(vv), nil
}

func (*Leaf[V]) sealedNode() {}
