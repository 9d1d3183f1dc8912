package formtree

// Group is an ordered collection of named children plus group-tier
// validators that see the whole children mapping. Immutable after
// construction; a write anywhere inside it yields a new Group that shares
// every untouched child by reference.
type Group struct {
	children   Tree
	validators []GroupValidator
}

// NewGroup builds a Group over children with the given group-tier validators.
func NewGroup(children Tree, validators ...GroupValidator) *Group {
	vs := make([]GroupValidator, len(validators))
	copy(vs, validators)
	return &Group{children: children, validators: vs}
}

// Children returns the current children mapping.
func (g *Group) Children() Tree { return g.children }

// Validate runs the two phases in order. Child phase: every child in
// declaration order, leaves via their chain and groups recursively; the
// first failing child wins and its error propagates with the child key
// prefixed onto issue paths, suppressing the group phase entirely. Group
// phase: this group's own validator chain over the full children mapping.
func (g *Group) Validate() (Tree, error) {
	for _, k := range g.children.keys {
		if err := g.children.nodes[k].validateNode(); err != nil {
			return Tree{}, rebaseIssues(k, issuesFromErr(err))
		}
	}
	return runChain(g.children, g.validators)
}

func (g *Group) validateNode() error {
	_, err := g.Validate()
	return err
}

func (*Group) sealedNode() {}
