package db

// Op constants name the collaborator operation for error context.
const (
	OpConstruct = "SPARQL.CONSTRUCT"
	OpAsk       = "SPARQL.ASK"
	OpSearch    = "ES.SEARCH"
	OpPing      = "ES.PING"
)

// Error wraps an underlying error with the operation name for diagnostics.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }
