package diag

import (
	"mua/internal/source"
)

// Note is a secondary location attached to a diagnostic, typically the
// previous definition in a redefinition error.
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is one reported problem with a primary location.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}
