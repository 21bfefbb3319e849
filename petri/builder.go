package petri

// Builder provides a fluent API for constructing nets in code, mostly
// useful in tests and examples.
//
// Example:
//
//	net := petri.Build().
//	    Place("p1", 1).
//	    Place("p2", 0).
//	    Transition("t1").
//	    Arc("p1", "t1").
//	    Arc("t1", "p2").
//	    Done()
type Builder struct {
	net *Net
}

// Build creates a new Builder wrapping an empty net.
func Build() *Builder {
	return &Builder{net: NewNet()}
}

// Place adds a place with the given id and initial token count.
func (b *Builder) Place(id string, tokens int) *Builder {
	b.net.AddPlace(id, tokens)
	return b
}

// Transition adds a transition with the given id.
func (b *Builder) Transition(id string) *Builder {
	b.net.AddTransition(id)
	return b
}

// Arc adds an arc from source to target with no id.
func (b *Builder) Arc(source, target string) *Builder {
	b.net.AddArc("", source, target)
	return b
}

// ArcWithID adds an arc carrying an explicit id.
func (b *Builder) ArcWithID(id, source, target string) *Builder {
	b.net.AddArc(id, source, target)
	return b
}

// Done commits the net: derived registry, preset/postset lists, and
// incidence matrix are all current on the returned value.
func (b *Builder) Done() *Net {
	b.net.BuildRelationships()
	return b.net
}
