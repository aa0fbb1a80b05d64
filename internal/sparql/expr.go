package sparql

// Expr is a filter or bind expression.
type Expr interface {
	writeExpr(w *writer)
}

type termExpr struct{ t Term }

// TermExpr lifts a term (variable, IRI or literal) into an expression.
func TermExpr(t Term) Expr { return termExpr{t: t} }

func (e termExpr) writeExpr(w *writer) { e.t.writeTerm(w) }

type callExpr struct {
	name string
	args []Expr
}

// Lang is LANG(v).
func Lang(v Var) Expr { return callExpr{name: "LANG", args: []Expr{TermExpr(v)}} }

// Bound is BOUND(v).
func Bound(v Var) Expr { return callExpr{name: "BOUND", args: []Expr{TermExpr(v)}} }

// IsIRI is isIRI(v).
func IsIRI(v Var) Expr { return callExpr{name: "isIRI", args: []Expr{TermExpr(v)}} }

// LangMatches is langMatches(tag, "lang"): tag equals lang or extends it
// with a subtag, ignoring case.
func LangMatches(tag Expr, lang string) Expr {
	return callExpr{name: "langMatches", args: []Expr{tag, TermExpr(String(lang))}}
}

func (e callExpr) writeExpr(w *writer) {
	w.WriteString(e.name)
	w.WriteByte('(')
	for i, a := range e.args {
		if i > 0 {
			w.WriteString(", ")
		}
		a.writeExpr(w)
	}
	w.WriteByte(')')
}

type binaryExpr struct {
	op   string
	args []Expr
}

// Eq is a = b.
func Eq(a, b Expr) Expr { return binaryExpr{op: " = ", args: []Expr{a, b}} }

// Or joins expressions with ||.
func Or(es ...Expr) Expr { return binaryExpr{op: " || ", args: es} }

// And joins expressions with &&.
func And(es ...Expr) Expr { return binaryExpr{op: " && ", args: es} }

func (e binaryExpr) writeExpr(w *writer) {
	w.WriteByte('(')
	for i, a := range e.args {
		if i > 0 {
			w.WriteString(e.op)
		}
		a.writeExpr(w)
	}
	w.WriteByte(')')
}

type notExpr struct{ e Expr }

// Not negates e.
func Not(e Expr) Expr { return notExpr{e: e} }

func (n notExpr) writeExpr(w *writer) {
	w.WriteString("!")
	n.e.writeExpr(w)
}

type existsExpr struct {
	negate   bool
	patterns []Pattern
}

// NotExists is true when patterns have no match.
func NotExists(ps ...Pattern) Expr { return existsExpr{negate: true, patterns: ps} }

// Exists is true when patterns have a match.
func Exists(ps ...Pattern) Expr { return existsExpr{patterns: ps} }

func (e existsExpr) writeExpr(w *writer) {
	if e.negate {
		w.WriteString("NOT ")
	}
	w.WriteString("EXISTS {")
	w.newline()
	w.indent++
	for _, p := range e.patterns {
		p.writePattern(w)
	}
	w.indent--
	w.line("}")
}
