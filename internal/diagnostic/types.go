// Package diagnostic collects the per-declaration failures and notices the
// generator reports to the user, tied to the source position of the
// offending declaration.
package diagnostic

import (
	"errors"
	"fmt"
	"go/token"
	"io"
	"strings"
)

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Diagnostic is a single message attached to one type declaration.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Pos is the source position of the declaration this relates to.
	Pos token.Position
	// TypeName identifies the declaration (if any).
	TypeName string
	// Message is the human-readable description.
	Message string
}

// String formats the diagnostic as file:line:col: severity: message.
func (d Diagnostic) String() string {
	var b strings.Builder
	if d.Pos.IsValid() {
		b.WriteString(d.Pos.String())
		b.WriteString(": ")
	}
	b.WriteString(d.Severity.String())
	b.WriteString(": ")
	b.WriteString(d.Message)
	return b.String()
}

// List aggregates diagnostics across declarations. Declarations are
// processed independently, so one error never suppresses another
// declaration's diagnostics.
type List struct {
	All []Diagnostic
}

// AddError records an error diagnostic for the named declaration.
func (l *List) AddError(pos token.Position, typeName string, err error) {
	l.All = append(l.All, Diagnostic{
		Severity: SeverityError,
		Pos:      pos,
		TypeName: typeName,
		Message:  err.Error(),
	})
}

// AddWarning records a warning diagnostic.
func (l *List) AddWarning(pos token.Position, typeName, message string) {
	l.All = append(l.All, Diagnostic{
		Severity: SeverityWarning,
		Pos:      pos,
		TypeName: typeName,
		Message:  message,
	})
}

// Merge appends another list's diagnostics to this one.
func (l *List) Merge(other *List) {
	l.All = append(l.All, other.All...)
}

// HasErrors reports whether any diagnostic has error severity.
func (l *List) HasErrors() bool {
	for _, d := range l.All {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Error returns a combined error from all error diagnostics, or nil.
func (l *List) Error() error {
	var parts []string
	for _, d := range l.All {
		if d.Severity == SeverityError {
			parts = append(parts, d.String())
		}
	}
	if len(parts) == 0 {
		return nil
	}
	return errors.New(strings.Join(parts, "; "))
}

// Fprint writes every diagnostic to w, one per line.
func (l *List) Fprint(w io.Writer) {
	for _, d := range l.All {
		fmt.Fprintln(w, d.String())
	}
}
