// Package sparql composes SPARQL queries as data. Identifiers, variables and
// literals are validated and escaped at render time, so values taken from
// callers can never change the structure of a query.
package sparql

import (
	"fmt"
	"regexp"
	"strings"
)

// Term is anything that can appear in subject or object position.
type Term interface {
	writeTerm(w *writer)
}

// Path is anything that can appear in predicate position.
type Path interface {
	writePath(w *writer)
}

// IRI is an absolute IRI reference.
type IRI string

// Var is a query variable, written without the leading "?".
type Var string

// Literal is an RDF literal with an optional language tag or datatype.
type Literal struct {
	Value    string
	Lang     string
	Datatype IRI
}

// String builds a plain literal.
func String(v string) Literal { return Literal{Value: v} }

// LangString builds a language-tagged literal.
func LangString(v, lang string) Literal { return Literal{Value: v, Lang: lang} }

var (
	varPattern  = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	langPattern = regexp.MustCompile(`^[A-Za-z]{1,8}(-[A-Za-z0-9]{1,8})*$`)
	schemeStart = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.\-]*:`)
)

func (i IRI) writeTerm(w *writer) {
	s := string(i)
	if !schemeStart.MatchString(s) || strings.ContainsAny(s, "<>\"{}|^`\\") || strings.IndexFunc(s, isSpaceOrControl) >= 0 {
		w.fail(fmt.Errorf("invalid IRI %q", s))
		return
	}
	w.WriteByte('<')
	w.WriteString(s)
	w.WriteByte('>')
}

func (i IRI) writePath(w *writer) { i.writeTerm(w) }

func (v Var) writeTerm(w *writer) {
	if !varPattern.MatchString(string(v)) {
		w.fail(fmt.Errorf("invalid variable name %q", string(v)))
		return
	}
	w.WriteByte('?')
	w.WriteString(string(v))
}

func (v Var) writePath(w *writer) { v.writeTerm(w) }

func (l Literal) writeTerm(w *writer) {
	w.WriteByte('"')
	w.WriteString(escapeString(l.Value))
	w.WriteByte('"')
	switch {
	case l.Lang != "":
		if !langPattern.MatchString(l.Lang) {
			w.fail(fmt.Errorf("invalid language tag %q", l.Lang))
			return
		}
		w.WriteByte('@')
		w.WriteString(l.Lang)
	case l.Datatype != "":
		w.WriteString("^^")
		l.Datatype.writeTerm(w)
	}
}

func isSpaceOrControl(r rune) bool {
	return r <= 0x20 || r == 0x7f
}

var stringEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

func escapeString(s string) string {
	return stringEscaper.Replace(s)
}

// Path composition.

type seqPath []Path

// Seq joins paths with "/".
func Seq(paths ...Path) Path { return seqPath(paths) }

func (p seqPath) writePath(w *writer) { writeJoined(w, p, "/") }

type altPath []Path

// Alt joins alternative paths with "|".
func Alt(paths ...Path) Path { return altPath(paths) }

func (p altPath) writePath(w *writer) { writeJoined(w, p, "|") }

type modPath struct {
	path Path
	mod  string
}

// ZeroOrMore matches path repeated any number of times.
func ZeroOrMore(p Path) Path { return modPath{path: p, mod: "*"} }

// ZeroOrOne matches path at most once.
func ZeroOrOne(p Path) Path { return modPath{path: p, mod: "?"} }

// OneOrMore matches path repeated at least once.
func OneOrMore(p Path) Path { return modPath{path: p, mod: "+"} }

func (p modPath) writePath(w *writer) {
	w.WriteByte('(')
	p.path.writePath(w)
	w.WriteByte(')')
	w.WriteString(p.mod)
}

type inversePath struct{ path Path }

// Inverse traverses path from object to subject.
func Inverse(p Path) Path { return inversePath{path: p} }

func (p inversePath) writePath(w *writer) {
	w.WriteString("^(")
	p.path.writePath(w)
	w.WriteByte(')')
}

func writeJoined(w *writer, paths []Path, sep string) {
	if len(paths) == 0 {
		w.fail(fmt.Errorf("empty path"))
		return
	}
	w.WriteByte('(')
	for i, p := range paths {
		if i > 0 {
			w.WriteString(sep)
		}
		p.writePath(w)
	}
	w.WriteByte(')')
}
