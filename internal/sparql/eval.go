package sparql

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kailas-cloud/heritagegraph/internal/rdf"
)

const xsdBoolean = "http://www.w3.org/2001/XMLSchema#boolean"

// ErrUnsupported is returned by Eval for constructs it cannot evaluate.
var ErrUnsupported = errors.New("sparql: unsupported in memory evaluation")

// Eval runs q over an in-memory graph with SPARQL 1.1 group semantics:
// every group is evaluated on its own and joined with its neighbours, so a
// pattern only sees the bindings its own group produces. It backs fixture
// graphs in tests and offline checks of generated queries.
func (q Construct) Eval(g *rdf.Graph) (*rdf.Graph, error) {
	e := newEvaluator(g)
	sols, err := e.group(q.Where)
	if err != nil {
		return nil, err
	}
	out := rdf.NewGraph()
	for _, sol := range sols {
		for _, t := range q.Template {
			if err := instantiate(out, t, sol); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

type solution map[Var]rdf.Term

type edge struct {
	s, o rdf.Term
}

type fact struct {
	s rdf.Term
	p string
	o rdf.Term
}

type evaluator struct {
	triples []fact
	nodes   []rdf.Term
}

func newEvaluator(g *rdf.Graph) *evaluator {
	e := &evaluator{}
	seen := map[rdf.Term]bool{}
	addNode := func(t rdf.Term) {
		if !seen[t] {
			seen[t] = true
			e.nodes = append(e.nodes, t)
		}
	}
	g.Each(func(s rdf.Term, p string, o rdf.Term) {
		e.triples = append(e.triples, fact{s, p, o})
		addNode(s)
		addNode(o)
	})
	return e
}

func (e *evaluator) group(ps []Pattern) ([]solution, error) {
	rest, filters := splitFilters(ps)
	sols, err := e.joinAll(rest)
	if err != nil {
		return nil, err
	}
	return e.filter(sols, filters)
}

func splitFilters(ps []Pattern) ([]Pattern, []Expr) {
	var rest []Pattern
	var filters []Expr
	for _, p := range ps {
		if f, ok := p.(filter); ok {
			filters = append(filters, f.expr)
			continue
		}
		rest = append(rest, p)
	}
	return rest, filters
}

func (e *evaluator) joinAll(ps []Pattern) ([]solution, error) {
	sols := []solution{{}}
	for _, p := range ps {
		var err error
		switch p := p.(type) {
		case Triple:
			var r []solution
			if r, err = e.triple(p); err == nil {
				sols = join(sols, r)
			}
		case group:
			var r []solution
			if r, err = e.group(p); err == nil {
				sols = join(sols, r)
			}
		case union:
			var r []solution
			for _, branch := range p {
				var br []solution
				if br, err = e.group(branch); err != nil {
					break
				}
				r = append(r, br...)
			}
			sols = join(sols, r)
		case optional:
			rest, filters := splitFilters(p)
			var r []solution
			if r, err = e.joinAll(rest); err == nil {
				sols, err = e.leftJoin(sols, r, filters)
			}
		case ValuesPattern:
			sols = join(sols, values(p))
		case bind:
			sols, err = e.extend(sols, p)
		default:
			err = fmt.Errorf("%w: pattern %T", ErrUnsupported, p)
		}
		if err != nil {
			return nil, err
		}
	}
	return sols, nil
}

func values(vp ValuesPattern) []solution {
	sols := make([]solution, 0, len(vp.Rows))
	for _, row := range vp.Rows {
		sol := solution{}
		for i, t := range row {
			if c, _, isVar := constant(t); !isVar {
				sol[vp.Vars[i]] = c
			}
		}
		sols = append(sols, sol)
	}
	return sols
}

func (e *evaluator) extend(sols []solution, b bind) ([]solution, error) {
	out := make([]solution, 0, len(sols))
	for _, sol := range sols {
		v, ok, err := e.value(b.expr, sol)
		if err != nil {
			return nil, err
		}
		if ok {
			sol = merge(sol, solution{b.as: v})
		}
		out = append(out, sol)
	}
	return out, nil
}

func (e *evaluator) triple(t Triple) ([]solution, error) {
	var pairs []edge
	var predVar Var
	if v, ok := t.P.(Var); ok {
		predVar = v
	} else {
		var err error
		if pairs, err = e.path(t.P); err != nil {
			return nil, err
		}
	}

	var sols []solution
	match := func(s, o rdf.Term, p string) {
		sol := solution{}
		if !bindTerm(sol, t.S, s) || !bindTerm(sol, t.O, o) {
			return
		}
		if predVar != "" && !bindTerm(sol, predVar, rdf.IRI(p)) {
			return
		}
		sols = append(sols, sol)
	}
	if predVar != "" {
		for _, tr := range e.triples {
			match(tr.s, tr.o, tr.p)
		}
		return sols, nil
	}
	for _, p := range pairs {
		match(p.s, p.o, "")
	}
	return sols, nil
}

// bindTerm matches value against a pattern term, binding it when the
// pattern is a variable.
func bindTerm(sol solution, pattern Term, value rdf.Term) bool {
	c, v, isVar := constant(pattern)
	if !isVar {
		return c == value
	}
	if bound, ok := sol[v]; ok {
		return bound == value
	}
	sol[v] = value
	return true
}

func constant(t Term) (rdf.Term, Var, bool) {
	switch t := t.(type) {
	case Var:
		return rdf.Term{}, t, true
	case IRI:
		return rdf.IRI(string(t)), "", false
	case Literal:
		return rdf.Term{Kind: rdf.KindLiteral, Value: t.Value, Language: t.Lang, Datatype: string(t.Datatype)}, "", false
	}
	return rdf.Term{}, "", false
}

func (e *evaluator) path(p Path) ([]edge, error) {
	switch p := p.(type) {
	case IRI:
		var out []edge
		for _, tr := range e.triples {
			if tr.p == string(p) {
				out = append(out, edge{tr.s, tr.o})
			}
		}
		return out, nil
	case seqPath:
		if len(p) == 0 {
			return nil, fmt.Errorf("%w: empty sequence", ErrUnsupported)
		}
		out, err := e.path(p[0])
		if err != nil {
			return nil, err
		}
		for _, step := range p[1:] {
			next, err := e.path(step)
			if err != nil {
				return nil, err
			}
			var joined []edge
			for _, a := range out {
				for _, b := range next {
					if a.o == b.s {
						joined = append(joined, edge{a.s, b.o})
					}
				}
			}
			out = joined
		}
		return out, nil
	case altPath:
		var out []edge
		for _, alt := range p {
			r, err := e.path(alt)
			if err != nil {
				return nil, err
			}
			out = append(out, r...)
		}
		return out, nil
	case inversePath:
		r, err := e.path(p.path)
		if err != nil {
			return nil, err
		}
		out := make([]edge, len(r))
		for i, x := range r {
			out[i] = edge{x.o, x.s}
		}
		return out, nil
	case modPath:
		step, err := e.path(p.path)
		if err != nil {
			return nil, err
		}
		return e.closure(step, p.mod), nil
	}
	return nil, fmt.Errorf("%w: path %T", ErrUnsupported, p)
}

// closure applies a path modifier. Results are distinct pairs.
func (e *evaluator) closure(step []edge, mod string) []edge {
	next := map[rdf.Term][]rdf.Term{}
	for _, x := range step {
		next[x.s] = append(next[x.s], x.o)
	}
	var out []edge
	for _, start := range e.nodes {
		seen := map[rdf.Term]bool{}
		if mod != "+" {
			seen[start] = true
			out = append(out, edge{start, start})
		}
		frontier := []rdf.Term{start}
		for len(frontier) > 0 {
			var more []rdf.Term
			for _, n := range frontier {
				for _, o := range next[n] {
					if seen[o] {
						continue
					}
					seen[o] = true
					out = append(out, edge{start, o})
					more = append(more, o)
				}
			}
			if mod == "?" {
				break
			}
			frontier = more
		}
	}
	return out
}

func (e *evaluator) filter(sols []solution, filters []Expr) ([]solution, error) {
	if len(filters) == 0 {
		return sols, nil
	}
	var out []solution
	for _, sol := range sols {
		keep, err := e.all(filters, sol)
		if err != nil {
			return nil, err
		}
		if keep {
			out = append(out, sol)
		}
	}
	return out, nil
}

func (e *evaluator) leftJoin(left, right []solution, filters []Expr) ([]solution, error) {
	var out []solution
	for _, l := range left {
		matched := false
		for _, r := range right {
			if !compatible(l, r) {
				continue
			}
			m := merge(l, r)
			ok, err := e.all(filters, m)
			if err != nil {
				return nil, err
			}
			if ok {
				out = append(out, m)
				matched = true
			}
		}
		if !matched {
			out = append(out, l)
		}
	}
	return out, nil
}

func (e *evaluator) all(filters []Expr, sol solution) (bool, error) {
	for _, f := range filters {
		ok, err := e.truth(f, sol)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

// truth is the effective boolean value of x. Expression errors count as
// false.
func (e *evaluator) truth(x Expr, sol solution) (bool, error) {
	v, ok, err := e.value(x, sol)
	if err != nil || !ok {
		return false, err
	}
	if v.Datatype == xsdBoolean {
		return v.Value == "true", nil
	}
	return v.Kind == rdf.KindLiteral && v.Value != "", nil
}

func boolean(b bool) rdf.Term {
	return rdf.Term{Kind: rdf.KindLiteral, Value: fmt.Sprint(b), Datatype: xsdBoolean}
}

// value computes x. The second result is false on an expression error such
// as an unbound variable.
func (e *evaluator) value(x Expr, sol solution) (rdf.Term, bool, error) {
	switch x := x.(type) {
	case termExpr:
		c, v, isVar := constant(x.t)
		if !isVar {
			return c, true, nil
		}
		t, ok := sol[v]
		return t, ok, nil
	case callExpr:
		return e.call(x, sol)
	case binaryExpr:
		switch strings.TrimSpace(x.op) {
		case "=":
			a, okA, err := e.value(x.args[0], sol)
			if err != nil || !okA {
				return rdf.Term{}, false, err
			}
			b, okB, err := e.value(x.args[1], sol)
			if err != nil || !okB {
				return rdf.Term{}, false, err
			}
			return boolean(a == b), true, nil
		case "||":
			for _, a := range x.args {
				ok, err := e.truth(a, sol)
				if err != nil {
					return rdf.Term{}, false, err
				}
				if ok {
					return boolean(true), true, nil
				}
			}
			return boolean(false), true, nil
		case "&&":
			ok, err := e.all(x.args, sol)
			if err != nil {
				return rdf.Term{}, false, err
			}
			return boolean(ok), true, nil
		}
	case notExpr:
		ok, err := e.truth(x.e, sol)
		if err != nil {
			return rdf.Term{}, false, err
		}
		return boolean(!ok), true, nil
	case existsExpr:
		r, err := e.group(x.patterns)
		if err != nil {
			return rdf.Term{}, false, err
		}
		found := len(join([]solution{sol}, r)) > 0
		return boolean(found != x.negate), true, nil
	}
	return rdf.Term{}, false, fmt.Errorf("%w: expression %T", ErrUnsupported, x)
}

func (e *evaluator) call(x callExpr, sol solution) (rdf.Term, bool, error) {
	args := make([]rdf.Term, len(x.args))
	for i, a := range x.args {
		if x.name == "BOUND" {
			break
		}
		v, ok, err := e.value(a, sol)
		if err != nil || !ok {
			return rdf.Term{}, false, err
		}
		args[i] = v
	}
	switch x.name {
	case "BOUND":
		te, ok := x.args[0].(termExpr)
		if !ok {
			return rdf.Term{}, false, nil
		}
		_, v, isVar := constant(te.t)
		_, bound := sol[v]
		return boolean(isVar && bound), true, nil
	case "LANG":
		if args[0].Kind != rdf.KindLiteral {
			return rdf.Term{}, false, nil
		}
		return rdf.Literal(args[0].Language), true, nil
	case "isIRI":
		return boolean(args[0].Kind == rdf.KindIRI), true, nil
	case "langMatches":
		return boolean(langMatches(args[0].Value, args[1].Value)), true, nil
	}
	return rdf.Term{}, false, fmt.Errorf("%w: function %s", ErrUnsupported, x.name)
}

// langMatches is RFC 4647 basic filtering.
func langMatches(tag, rng string) bool {
	if rng == "*" {
		return tag != ""
	}
	if len(tag) < len(rng) || !strings.EqualFold(tag[:len(rng)], rng) {
		return false
	}
	return len(tag) == len(rng) || tag[len(rng)] == '-'
}

func compatible(a, b solution) bool {
	for v, t := range a {
		if u, ok := b[v]; ok && u != t {
			return false
		}
	}
	return true
}

func merge(a, b solution) solution {
	m := make(solution, len(a)+len(b))
	for v, t := range a {
		m[v] = t
	}
	for v, t := range b {
		m[v] = t
	}
	return m
}

func join(left, right []solution) []solution {
	var out []solution
	for _, l := range left {
		for _, r := range right {
			if compatible(l, r) {
				out = append(out, merge(l, r))
			}
		}
	}
	return out
}

func instantiate(out *rdf.Graph, t Triple, sol solution) error {
	p, ok := t.P.(IRI)
	if !ok {
		return fmt.Errorf("%w: template predicate %T", ErrUnsupported, t.P)
	}
	s, ok := resolve(t.S, sol)
	if !ok || !s.IsResource() {
		return nil
	}
	o, ok := resolve(t.O, sol)
	if !ok {
		return nil
	}
	out.Add(s, string(p), o)
	return nil
}

func resolve(t Term, sol solution) (rdf.Term, bool) {
	c, v, isVar := constant(t)
	if !isVar {
		return c, true
	}
	b, ok := sol[v]
	return b, ok
}
