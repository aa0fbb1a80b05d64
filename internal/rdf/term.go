// Package rdf loads triple streams into an addressable in-memory resource graph.
package rdf

// Kind is the lexical category of a term.
type Kind uint8

// Term kinds.
const (
	KindIRI Kind = iota + 1
	KindBlank
	KindLiteral
)

// Term is a node or literal in object position.
type Term struct {
	Kind     Kind
	Value    string
	Language string
	Datatype string
}

// IsResource reports whether the term can be looked up as a subject.
func (t Term) IsResource() bool {
	return t.Kind == KindIRI || t.Kind == KindBlank
}

// Key returns the graph key of a resource term. Blank nodes are prefixed with
// "_:" so they never collide with IRIs.
func (t Term) Key() string {
	if t.Kind == KindBlank {
		return "_:" + t.Value
	}
	return t.Value
}

// IRI builds an IRI term.
func IRI(v string) Term { return Term{Kind: KindIRI, Value: v} }

// Blank builds a blank node term.
func Blank(label string) Term { return Term{Kind: KindBlank, Value: label} }

// Literal builds a plain literal term.
func Literal(v string) Term { return Term{Kind: KindLiteral, Value: v} }

// LangLiteral builds a language-tagged literal term.
func LangLiteral(v, lang string) Term { return Term{Kind: KindLiteral, Value: v, Language: lang} }
