// Package diagnostics defines the classified errors reported while resolving
// dialect names and symbols.
//
// Every failure carries an ErrorCode, the category of the thing being
// resolved, the offending name exactly as supplied, and, when known, the
// token that named it. The sentinel errors make the classes testable with
// errors.Is; the Is* helpers do the same through errors.As.
package diagnostics

import (
	"errors"
	"fmt"
	"strings"

	"github.com/funvibe/fclsem/internal/token"
)

type ErrorCode string

const (
	ErrU001 ErrorCode = "U001" // unsupported feature: no resolution for a dialect name
	ErrS001 ErrorCode = "S001" // scope error: no variable or rule under a label
	ErrC001 ErrorCode = "C001" // capability violation: entity is not variable-like or rule-like
	ErrV001 ErrorCode = "V001" // invalid vocabulary definition
)

// Category names the kind of thing that failed to resolve.
type Category string

const (
	CategoryShape    Category = "membership function"
	CategoryDefuzz   Category = "defuzzify method"
	CategoryAnd      Category = "and method"
	CategoryOr       Category = "or method"
	CategoryHedge    Category = "hedge"
	CategoryVariable Category = "variable"
	CategoryRule     Category = "rule"
	CategorySymbol   Category = "variable or rule"
)

var (
	ErrUnsupportedFeature  = errors.New("unsupported feature")
	ErrScope               = errors.New("scope error")
	ErrCapabilityViolation = errors.New("capability violation")
	ErrInvalidVocabulary   = errors.New("invalid vocabulary")
)

var sentinels = map[ErrorCode]error{
	ErrU001: ErrUnsupportedFeature,
	ErrS001: ErrScope,
	ErrC001: ErrCapabilityViolation,
	ErrV001: ErrInvalidVocabulary,
}

type DiagnosticError struct {
	Code     ErrorCode
	Category Category
	// Name is the offending identifier as the caller supplied it.
	Name  string
	Token token.Token
	File  string
	msg   string
}

// NewError builds a diagnostic whose message is fmt.Sprint(args...).
func NewError(code ErrorCode, tok token.Token, args ...interface{}) *DiagnosticError {
	return &DiagnosticError{Code: code, Token: tok, msg: fmt.Sprint(args...)}
}

// NewErrorf builds a diagnostic with a formatted message.
func NewErrorf(code ErrorCode, tok token.Token, format string, args ...interface{}) *DiagnosticError {
	return &DiagnosticError{Code: code, Token: tok, msg: fmt.Sprintf(format, args...)}
}

// Unsupported reports a dialect name with no registered resolution.
func Unsupported(category Category, name string) *DiagnosticError {
	e := NewErrorf(ErrU001, token.Token{}, "%s %q", category, name)
	e.Category = category
	e.Name = name
	return e
}

// VariableNotFound reports a failed variable lookup.
func VariableNotFound(name string) *DiagnosticError {
	e := NewErrorf(ErrS001, token.Token{}, "Variable %q not found", name)
	e.Category = CategoryVariable
	e.Name = name
	return e
}

// RuleNotFound reports a failed rule lookup.
func RuleNotFound(name string) *DiagnosticError {
	e := NewErrorf(ErrS001, token.Token{}, "Rule %q not found", name)
	e.Category = CategoryRule
	e.Name = name
	return e
}

// UnknownSymbol reports a name that is neither a variable nor a rule.
func UnknownSymbol(name string) *DiagnosticError {
	e := NewErrorf(ErrS001, token.Token{}, "%q is not a known variable or rule name", name)
	e.Category = CategorySymbol
	e.Name = name
	return e
}

// CapabilityViolation reports an entity that does not satisfy the
// variable or rule contract.
func CapabilityViolation(category Category, what string) *DiagnosticError {
	e := NewErrorf(ErrC001, token.Token{}, "%s should be a %s", what, category)
	e.Category = category
	e.Name = what
	return e
}

// InvalidVocabulary reports a malformed vocabulary definition.
func InvalidVocabulary(path string, format string, args ...interface{}) *DiagnosticError {
	e := NewErrorf(ErrV001, token.Token{}, format, args...)
	e.File = path
	return e
}

// At returns a copy of e positioned at tok.
func (e *DiagnosticError) At(tok token.Token) *DiagnosticError {
	c := *e
	c.Token = tok
	return &c
}

// Kind is the human-readable class of the error.
func (e *DiagnosticError) Kind() string {
	if s, ok := sentinels[e.Code]; ok {
		return s.Error()
	}
	return "error"
}

// Message is the detail text without class or position.
func (e *DiagnosticError) Message() string {
	return e.msg
}

func (e *DiagnosticError) Error() string {
	var b strings.Builder
	if e.File != "" {
		b.WriteString(e.File)
		b.WriteString(":")
	}
	if p := e.Token.Pos(); p != "" {
		b.WriteString(p)
		b.WriteString(":")
	}
	if b.Len() > 0 {
		b.WriteString(" ")
	}
	b.WriteString(e.Kind())
	if e.msg != "" {
		b.WriteString(": ")
		b.WriteString(e.msg)
	}
	return b.String()
}

// Unwrap exposes the class sentinel so errors.Is works on the code.
func (e *DiagnosticError) Unwrap() error {
	return sentinels[e.Code]
}

// Fatal reports whether the error is a contract violation by the caller
// rather than a problem in the input being processed.
func (e *DiagnosticError) Fatal() bool {
	return e.Code == ErrC001
}

func hasCode(err error, code ErrorCode) bool {
	var de *DiagnosticError
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

func IsUnsupported(err error) bool { return hasCode(err, ErrU001) }
func IsScope(err error) bool       { return hasCode(err, ErrS001) }
func IsCapability(err error) bool  { return hasCode(err, ErrC001) }
func IsVocabulary(err error) bool  { return hasCode(err, ErrV001) }

// IsFatal reports whether err, or anything it wraps, is a fatal diagnostic.
func IsFatal(err error) bool {
	var de *DiagnosticError
	return errors.As(err, &de) && de.Fatal()
}

// As extracts the diagnostic from err, if there is one.
func As(err error) (*DiagnosticError, bool) {
	var de *DiagnosticError
	ok := errors.As(err, &de)
	return de, ok
}
