package graph

import (
	"errors"
	"fmt"

	"github.com/kailas-cloud/heritagegraph/internal/domain"
	"github.com/kailas-cloud/heritagegraph/internal/sparql"
	"github.com/kailas-cloud/heritagegraph/internal/vocab"
)

// Variables shared by every by-identifier query.
const (
	Subject = sparql.Var("s")
	Root    = sparql.Var("root")

	classVar = sparql.Var("class")
	kindVar  = sparql.Var("kind")
)

// Paths shared by the entity queries.
var (
	NamePath        = sparql.Alt(sparql.IRI(vocab.RDFSLabel), sparql.IRI(vocab.SchemaName))
	DescriptionPath = sparql.Alt(sparql.IRI(vocab.CRMHasNote), sparql.IRI(vocab.SchemaDescription))
	PlaceParentPath = sparql.Alt(sparql.IRI(vocab.CRMFallsWithin), sparql.IRI(vocab.SchemaContainedInPlace))
)

// Kind maps a class of the source ontology to the internal class written
// for resources of that class.
type Kind struct {
	Source string
	Target string
}

var agentKinds = []Kind{
	{Source: vocab.CRMPerson, Target: vocab.Person},
	{Source: vocab.SchemaPerson, Target: vocab.Person},
	{Source: vocab.CRMGroup, Target: vocab.Organization},
	{Source: vocab.SchemaOrganization, Target: vocab.Organization},
}

// Query assembles the CONSTRUCT that loads a batch of resources of one
// entity family. Fields are added in independent branches so that a
// resource with many values in one field does not multiply the solutions of
// another.
type Query struct {
	ids      []string
	locale   domain.Locale
	target   string
	kinds    []Kind
	expand   sparql.Path
	template []sparql.Triple
	branches [][]sparql.Pattern
	vars     int
}

// NewQuery starts a query for ids. Only resources typed with one of the
// source classes of kinds match; they are written with the target class and
// the target of their kind.
func NewQuery(ids []string, locale domain.Locale, target string, kinds ...Kind) *Query {
	return &Query{ids: ids, locale: locale.OrDefault(), target: target, kinds: kinds}
}

// Expand treats ids as roots and loads every matching resource reachable
// from a root over path.
func (q *Query) Expand(path sparql.Path) *Query {
	q.expand = path
	return q
}

// Branch adds an independent group of fields. fn receives the branch to
// fill in.
func (q *Query) Branch(fn func(b *Branch)) *Query {
	b := &Branch{q: q}
	fn(b)
	if len(b.where) > 0 {
		q.branches = append(q.branches, b.where)
	}
	return q
}

// Build renders the query.
func (q *Query) Build() (string, error) {
	c, err := q.Construct()
	if err != nil {
		return "", err
	}
	return c.Build()
}

// Construct assembles the query without rendering it.
//
// Each branch restates the class triple so that its optional groups are
// joined to a bound subject; an empty branch keeps resources that match no
// other branch.
func (q *Query) Construct() (sparql.Construct, error) {
	if len(q.ids) == 0 {
		return sparql.Construct{}, errors.New("query without identifiers")
	}
	if len(q.kinds) == 0 {
		return sparql.Construct{}, errors.New("query without classes")
	}

	input := Subject
	if q.expand != nil {
		input = Root
	}
	ids := make([]sparql.Term, len(q.ids))
	for i, id := range q.ids {
		ids[i] = sparql.IRI(id)
	}
	kinds := sparql.ValuesPattern{Vars: []sparql.Var{classVar, kindVar}}
	for _, k := range q.kinds {
		kinds.Rows = append(kinds.Rows, []sparql.Term{sparql.IRI(k.Source), sparql.IRI(k.Target)})
	}

	where := []sparql.Pattern{sparql.Values(input, ids...)}
	if q.expand != nil {
		where = append(where, sparql.T(Root, q.expand, Subject))
	}
	typed := sparql.T(Subject, sparql.IRI(vocab.RDFType), classVar)
	where = append(where, typed, kinds)
	if len(q.branches) > 0 {
		branches := make([][]sparql.Pattern, 0, len(q.branches)+1)
		branches = append(branches, []sparql.Pattern{})
		for _, b := range q.branches {
			branches = append(branches, append([]sparql.Pattern{typed}, b...))
		}
		where = append(where, sparql.Union(branches...))
	}

	template := append([]sparql.Triple{
		sparql.T(Subject, sparql.IRI(vocab.RDFType), sparql.IRI(q.target)),
		sparql.T(Subject, sparql.IRI(vocab.RDFType), kindVar),
	}, q.template...)

	return sparql.Construct{Template: template, Where: where}, nil
}

func (q *Query) fresh(prefix string) sparql.Var {
	q.vars++
	return sparql.Var(fmt.Sprintf("%s%d", prefix, q.vars))
}

func (q *Query) emit(s sparql.Var, out string, o sparql.Var) {
	q.template = append(q.template, sparql.T(s, sparql.IRI(out), o))
}

// Branch is a group of patterns joined on the subject.
type Branch struct {
	q     *Query
	where []sparql.Pattern
}

// Link requires s to reach a resource over path and writes it as out.
// Inside Optional the requirement only applies to that optional group.
func (b *Branch) Link(s sparql.Var, path sparql.Path, out string) sparql.Var {
	o := b.q.fresh("o")
	b.where = append(b.where, sparql.T(s, path, o))
	b.q.emit(s, out, o)
	return o
}

// Optional adds a group that may fail to match without dropping the branch.
func (b *Branch) Optional(fn func(b *Branch)) {
	nb := &Branch{q: b.q}
	fn(nb)
	if len(nb.where) > 0 {
		b.where = append(b.where, sparql.Optional(nb.where...))
	}
}

// Filter restricts the branch.
func (b *Branch) Filter(e sparql.Expr) {
	b.where = append(b.where, sparql.Filter(e))
}

// Value writes every value of path on s as out.
func (b *Branch) Value(s sparql.Var, path sparql.Path, out string) {
	v := b.q.fresh("v")
	b.where = append(b.where, sparql.Optional(sparql.T(s, path, v)))
	b.q.emit(s, out, v)
}

// Label writes the literal of path on s in the query locale, falling back
// to a literal without language tag when there is none in that locale.
func (b *Branch) Label(s sparql.Var, path sparql.Path, out string) {
	v := b.q.fresh("l")
	b.where = append(b.where,
		sparql.Optional(
			sparql.T(s, path, v),
			sparql.Filter(sparql.LangMatches(sparql.Lang(v), string(b.q.locale))),
		),
		sparql.Optional(
			sparql.T(s, path, v),
			sparql.Filter(sparql.Eq(sparql.Lang(v), sparql.TermExpr(sparql.String("")))),
		),
	)
	b.q.emit(s, out, v)
}

// Classify writes the internal class of s for every matching kind.
func (b *Branch) Classify(s sparql.Var, kinds []Kind) {
	class, kind := b.q.fresh("c"), b.q.fresh("k")
	rows := make([][]sparql.Term, len(kinds))
	for i, k := range kinds {
		rows[i] = []sparql.Term{sparql.IRI(k.Source), sparql.IRI(k.Target)}
	}
	b.where = append(b.where, sparql.Optional(
		sparql.T(s, sparql.IRI(vocab.RDFType), class),
		sparql.ValuesPattern{Vars: []sparql.Var{class, kind}, Rows: rows},
	))
	b.q.emit(s, vocab.RDFType, kind)
}

// Thing writes the name and sameAs links of s.
func (b *Branch) Thing(s sparql.Var) {
	b.Label(s, NamePath, vocab.Name)
	b.Value(s, sparql.IRI(vocab.OWLSameAs), vocab.SameAs)
}

// Agent writes the name and person/organization class of a.
func (b *Branch) Agent(a sparql.Var) {
	b.Thing(a)
	b.Classify(a, agentKinds)
}

// Place writes p and all of its parents. The projector truncates the chain
// at its place depth.
func (b *Branch) Place(p sparql.Var) {
	b.Optional(func(b *Branch) {
		anc := b.q.fresh("p")
		b.where = append(b.where, sparql.T(p, sparql.ZeroOrMore(PlaceParentPath), anc))
		b.Thing(anc)
		b.Optional(func(b *Branch) {
			b.Link(anc, PlaceParentPath, vocab.IsPartOf)
		})
	})
}

// TimeSpan writes the begin and end expressions of ts.
func (b *Branch) TimeSpan(ts sparql.Var) {
	b.Value(ts, sparql.IRI(vocab.CRMBeginOfTheBegin), vocab.StartDate)
	b.Value(ts, sparql.IRI(vocab.CRMEndOfTheEnd), vocab.EndDate)
}

// Dataset writes the fields of a dataset.
func (b *Branch) Dataset(d sparql.Var) {
	b.Thing(d)
	b.Label(d, sparql.IRI(vocab.SchemaDescription), vocab.Description)
	b.Optional(func(b *Branch) {
		b.Agent(b.Link(d, sparql.IRI(vocab.SchemaPublisher), vocab.Publisher))
	})
	b.Optional(func(b *Branch) {
		b.Thing(b.Link(d, sparql.IRI(vocab.SchemaLicense), vocab.License))
	})
	b.Value(d, sparql.IRI(vocab.SchemaKeywords), vocab.Keyword)
	b.Value(d, sparql.IRI(vocab.SchemaDateCreated), vocab.DateCreated)
	b.Value(d, sparql.IRI(vocab.SchemaDateModified), vocab.DateModified)
	b.Value(d, sparql.IRI(vocab.SchemaDatePublished), vocab.DatePublished)
}
