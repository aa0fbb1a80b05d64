package sparql

import "fmt"

// Pattern is one element of a group graph pattern.
type Pattern interface {
	writePattern(w *writer)
}

// Triple is a triple pattern.
type Triple struct {
	S Term
	P Path
	O Term
}

// T builds a triple pattern.
func T(s Term, p Path, o Term) Triple { return Triple{S: s, P: p, O: o} }

func (t Triple) writePattern(w *writer) {
	w.line("")
	t.writeInline(w)
	w.WriteString(" .")
	w.newline()
}

func (t Triple) writeInline(w *writer) {
	if t.S == nil || t.P == nil || t.O == nil {
		w.fail(fmt.Errorf("incomplete triple pattern"))
		return
	}
	t.S.writeTerm(w)
	w.WriteByte(' ')
	t.P.writePath(w)
	w.WriteByte(' ')
	t.O.writeTerm(w)
}

type optional []Pattern

// Optional wraps patterns so that a missing match keeps the solution.
func Optional(ps ...Pattern) Pattern { return optional(ps) }

func (o optional) writePattern(w *writer) {
	writeBlock(w, "OPTIONAL {", o)
}

type group []Pattern

// Group wraps patterns in braces.
func Group(ps ...Pattern) Pattern { return group(ps) }

func (g group) writePattern(w *writer) {
	writeBlock(w, "{", g)
}

type union [][]Pattern

// Union combines alternative groups. Each branch is evaluated independently,
// which keeps unrelated optional fields from multiplying solutions.
func Union(branches ...[]Pattern) Pattern { return union(branches) }

func (u union) writePattern(w *writer) {
	if len(u) == 0 {
		w.fail(fmt.Errorf("empty union"))
		return
	}
	for i, branch := range u {
		if i > 0 {
			w.line("UNION")
			w.newline()
		}
		writeBlock(w, "{", branch)
	}
}

// ValuesPattern binds variables to a fixed table of rows.
type ValuesPattern struct {
	Vars []Var
	Rows [][]Term
}

// Values binds a single variable to each of terms.
func Values(v Var, terms ...Term) ValuesPattern {
	rows := make([][]Term, len(terms))
	for i, t := range terms {
		rows[i] = []Term{t}
	}
	return ValuesPattern{Vars: []Var{v}, Rows: rows}
}

func (vp ValuesPattern) writePattern(w *writer) {
	if len(vp.Vars) == 0 {
		w.fail(fmt.Errorf("VALUES without variables"))
		return
	}
	w.line("VALUES (")
	for i, v := range vp.Vars {
		if i > 0 {
			w.WriteByte(' ')
		}
		v.writeTerm(w)
	}
	w.WriteString(") {")
	w.newline()
	w.indent++
	for _, row := range vp.Rows {
		if len(row) != len(vp.Vars) {
			w.fail(fmt.Errorf("VALUES row has %d terms, want %d", len(row), len(vp.Vars)))
			return
		}
		w.line("(")
		for i, t := range row {
			if i > 0 {
				w.WriteByte(' ')
			}
			t.writeTerm(w)
		}
		w.WriteByte(')')
		w.newline()
	}
	w.indent--
	w.line("}")
	w.newline()
}

type filter struct{ expr Expr }

// Filter restricts solutions to those where expr is true.
func Filter(e Expr) Pattern { return filter{expr: e} }

func (f filter) writePattern(w *writer) {
	w.line("FILTER(")
	f.expr.writeExpr(w)
	w.WriteByte(')')
	w.newline()
}

type bind struct {
	expr Expr
	as   Var
}

// Bind assigns the value of expr to v.
func Bind(e Expr, v Var) Pattern { return bind{expr: e, as: v} }

func (b bind) writePattern(w *writer) {
	w.line("BIND(")
	b.expr.writeExpr(w)
	w.WriteString(" AS ")
	b.as.writeTerm(w)
	w.WriteByte(')')
	w.newline()
}

func writeBlock(w *writer, open string, ps []Pattern) {
	w.line(open)
	w.newline()
	w.indent++
	for _, p := range ps {
		p.writePattern(w)
	}
	w.indent--
	w.line("}")
	w.newline()
}
