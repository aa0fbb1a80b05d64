package rdf

// Resource is a subject in a loaded graph. Property returns objects in the
// order their triples were loaded and nil when the predicate is unset.
type Resource interface {
	ID() string
	Property(predicate string) []Term
	Follow(t Term) (Resource, bool)
}

type resource struct {
	graph *Graph
	node  *node
}

func (r *resource) ID() string { return r.node.id }

func (r *resource) Property(predicate string) []Term {
	return r.node.objects[predicate]
}

// Follow resolves an object term to the resource it names in the same graph.
func (r *resource) Follow(t Term) (Resource, bool) {
	if !t.IsResource() {
		return nil, false
	}
	return r.graph.Resource(t.Key())
}
