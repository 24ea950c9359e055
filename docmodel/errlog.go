package docmodel

import (
	"fmt"
	"sync"
)

// Severity of a diagnostic.
type Severity int

// Diagnostic severities.
const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
	SeverityFatal
)

var severityNames = [...]string{"info", "warning", "error", "fatal"}

// String implements fmt.Stringer.
func (s Severity) String() string {
	if s >= 0 && int(s) < len(severityNames) {
		return severityNames[s]
	}
	return fmt.Sprintf("severity(%d)", int(s))
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(b []byte) error {
	for i, n := range severityNames {
		if n == string(b) {
			*s = Severity(i)
			return nil
		}
	}
	return fmt.Errorf("docmodel: unknown severity %q", b)
}

// Diagnostic is one problem found while reading or validating a document.
type Diagnostic struct {
	Code     int
	Name     string
	Package  string
	Category string
	Severity Severity
	Message  string
	Line     int
	Column   int
}

// String returns a single-line representation of the diagnostic.
func (d Diagnostic) String() string {
	pos := ""
	if d.Line > 0 {
		pos = fmt.Sprintf("%d:%d: ", d.Line, d.Column)
	}
	return fmt.Sprintf("%s%s %d (%s): %s", pos, d.Severity, d.Code, d.Name, d.Message)
}

// ErrorSink receives diagnostics. Generated code never reaches for global
// state: every read and validation entry point takes a sink.
type ErrorSink interface {
	Log(d Diagnostic)
}

// Discard is an ErrorSink that drops every diagnostic.
var Discard ErrorSink = discard{}

type discard struct{}

func (discard) Log(Diagnostic) {}

// OrDiscard returns s, or Discard when s is nil.
func OrDiscard(s ErrorSink) ErrorSink {
	if s == nil {
		return Discard
	}
	return s
}

// Log is an ErrorSink that keeps every diagnostic in arrival order. It is
// safe for concurrent use.
type Log struct {
	mu    sync.Mutex
	diags []Diagnostic
}

// Log implements ErrorSink.
func (l *Log) Log(d Diagnostic) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.diags = append(l.diags, d)
}

// Diagnostics returns a copy of the collected diagnostics.
func (l *Log) Diagnostics() []Diagnostic {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Diagnostic(nil), l.diags...)
}

// Len returns the number of collected diagnostics.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.diags)
}

// Contains reports whether a diagnostic with the given code was logged.
func (l *Log) Contains(code int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, d := range l.diags {
		if d.Code == code {
			return true
		}
	}
	return false
}

// NumSeverity returns the number of diagnostics with severity >= s.
func (l *Log) NumSeverity(s Severity) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	var n int
	for _, d := range l.diags {
		if d.Severity >= s {
			n++
		}
	}
	return n
}

// Reset drops every collected diagnostic.
func (l *Log) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.diags = nil
}

// ErrorInfo is one row of a package error-code table.
type ErrorInfo struct {
	ID       int      `json:"id" yaml:"id" msgpack:"id"`
	Name     string   `json:"name" yaml:"name" msgpack:"name"`
	Category string   `json:"category" yaml:"category" msgpack:"category"`
	Severity Severity `json:"severity" yaml:"severity" msgpack:"severity"`
	Message  string   `json:"message" yaml:"message" msgpack:"message"`
}

// ErrorTable is the error-code table of a generated package.
type ErrorTable struct {
	Package string
	Infos   []ErrorInfo
}

// Lookup returns the row with the given ID.
func (t *ErrorTable) Lookup(id int) (ErrorInfo, bool) {
	for _, e := range t.Infos {
		if e.ID == id {
			return e, true
		}
	}
	return ErrorInfo{}, false
}

// Diagnostic builds a diagnostic for the given code, positioned at attrs
// when attrs is not nil. Detail is appended to the table message.
func (t *ErrorTable) Diagnostic(id int, attrs *Attributes, detail string) Diagnostic {
	d := Diagnostic{Code: id, Package: t.Package, Severity: SeverityError, Message: detail}
	if e, ok := t.Lookup(id); ok {
		d.Name = e.Name
		d.Category = e.Category
		d.Severity = e.Severity
		d.Message = e.Message
		if detail != "" {
			d.Message += " " + detail
		}
	}
	if attrs != nil {
		d.Line, d.Column = attrs.Line, attrs.Column
	}
	return d
}

// DiagnosticAt is like Diagnostic but positioned at the element n was read
// from.
func (t *ErrorTable) DiagnosticAt(id int, n *Node, detail string) Diagnostic {
	d := t.Diagnostic(id, nil, detail)
	if n != nil {
		d.Line, d.Column = n.Position()
	}
	return d
}
