package sparql

import (
	"errors"
	"fmt"
)

// Construct is a CONSTRUCT query: Where solutions instantiate Template.
type Construct struct {
	Template []Triple
	Where    []Pattern
}

// Build renders the query text.
func (q Construct) Build() (string, error) {
	if len(q.Template) == 0 {
		return "", errors.New("construct query without template")
	}
	w := &writer{}
	w.line("CONSTRUCT {")
	w.newline()
	w.indent++
	for _, t := range q.Template {
		t.writePattern(w)
	}
	w.indent--
	w.line("}")
	w.newline()
	writeWhere(w, q.Where)
	if w.err != nil {
		return "", fmt.Errorf("build construct: %w", w.err)
	}
	return w.String(), nil
}

// Select is a SELECT query.
type Select struct {
	Distinct bool
	Vars     []Var
	Where    []Pattern
	OrderBy  []Var
	Limit    int
}

// Build renders the query text.
func (q Select) Build() (string, error) {
	if len(q.Vars) == 0 {
		return "", errors.New("select query without variables")
	}
	w := &writer{}
	w.WriteString("SELECT ")
	if q.Distinct {
		w.WriteString("DISTINCT ")
	}
	for i, v := range q.Vars {
		if i > 0 {
			w.WriteByte(' ')
		}
		v.writeTerm(w)
	}
	w.newline()
	writeWhere(w, q.Where)
	if len(q.OrderBy) > 0 {
		w.WriteString("ORDER BY")
		for _, v := range q.OrderBy {
			w.WriteByte(' ')
			v.writeTerm(w)
		}
		w.newline()
	}
	if q.Limit > 0 {
		fmt.Fprintf(w, "LIMIT %d\n", q.Limit)
	}
	if w.err != nil {
		return "", fmt.Errorf("build select: %w", w.err)
	}
	return w.String(), nil
}

func writeWhere(w *writer, ps []Pattern) {
	if len(ps) == 0 {
		w.fail(errors.New("empty WHERE clause"))
		return
	}
	writeBlock(w, "WHERE {", ps)
}
