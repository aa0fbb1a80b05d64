package sparql

import "strings"

// writer accumulates query text and the first rendering error.
type writer struct {
	strings.Builder
	err    error
	indent int
}

func (w *writer) fail(err error) {
	if w.err == nil {
		w.err = err
	}
}

func (w *writer) line(s string) {
	for range w.indent {
		w.WriteString("  ")
	}
	w.WriteString(s)
}

func (w *writer) newline() { w.WriteByte('\n') }
