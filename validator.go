package formtree

// Validator is a single pure validation step over a value. On success it
// returns the value handed to the next step in the chain; on failure the
// chain stops and the error becomes the terminal outcome. Validators must be
// side-effect free.
type Validator[V any] func(V) (V, error)

// GroupValidator is the group/form tier of the same shape: it sees the full
// children mapping of the node it is attached to.
type GroupValidator = Validator[Tree]

// runChain applies validators in declaration order and stops at the first
// failure; validators after a failure are never invoked. An empty chain
// succeeds with the value unchanged. Failures are normalized to Issues with
// the original message preserved verbatim.
func runChain[V any](v V, validators []Validator[V]) (V, error) {
	cur := v
	for _, fn := range validators {
		next, err := fn(cur)
		if err != nil {
			return cur, issuesFromErr(err)
		}
		cur = next
	}
	return cur, nil
}
