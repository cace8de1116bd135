package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies the errors produced while evaluating an expression.
type Kind string

const (
	KindNone                Kind = ""
	KindUnknownSymbol       Kind = "unknown_symbol"
	KindMalformedExpression Kind = "malformed_expression"
	KindArithmetic          Kind = "arithmetic"
	KindValidation          Kind = "validation"
	KindNotFound            Kind = "not_found"
	KindInternal            Kind = "internal"
)

// ParseKind accepts the kind names used in suite files and API responses.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindUnknownSymbol, KindMalformedExpression, KindArithmetic:
		return k, nil
	default:
		return KindNone, fmt.Errorf("unknown error kind %q", s)
	}
}

// KindOf finds the first classified error in err's chain.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}

	var se *SymbolError
	if errors.As(err, &se) {
		return KindUnknownSymbol
	}
	var xe *SyntaxError
	if errors.As(err, &xe) {
		return KindMalformedExpression
	}
	var ae *ArithmeticError
	if errors.As(err, &ae) {
		return KindArithmetic
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return KindValidation
	}
	var ne *NotFoundError
	if errors.As(err, &ne) {
		return KindNotFound
	}
	return KindInternal
}

// IsExpressionError reports whether err was caused by the expression text itself.
func IsExpressionError(err error) bool {
	switch KindOf(err) {
	case KindUnknownSymbol, KindMalformedExpression, KindArithmetic:
		return true
	default:
		return false
	}
}

// SymbolError is raised for a character or word that is not part of the grammar.
// Pos is a rune offset, -1 when unknown.
type SymbolError struct {
	Symbol string
	Pos    int
}

func (e *SymbolError) Error() string {
	if e.Pos < 0 {
		return "unknown symbol " + quote(e.Symbol)
	}
	return fmt.Sprintf("unknown symbol %s at position %d", quote(e.Symbol), e.Pos)
}

func NewSymbol(symbol string, pos int) *SymbolError {
	return &SymbolError{Symbol: symbol, Pos: pos}
}

// SyntaxError is raised when the token sequence does not form an expression.
type SyntaxError struct {
	Message string
	Pos     int
}

func (e *SyntaxError) Error() string {
	if e.Pos < 0 {
		return "malformed expression: " + e.Message
	}
	return fmt.Sprintf("malformed expression: %s at position %d", e.Message, e.Pos)
}

func NewSyntax(msg string, pos int) *SyntaxError {
	return &SyntaxError{Message: msg, Pos: pos}
}

// ArithmeticError is raised during evaluation, e.g. on division by zero.
type ArithmeticError struct {
	Op      string
	Message string
}

func (e *ArithmeticError) Error() string {
	return "arithmetic error: " + e.Op + ": " + e.Message
}

func NewArithmetic(op, msg string) *ArithmeticError {
	return &ArithmeticError{Op: op, Message: msg}
}

type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}

type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " " + e.ID + " not found"
}

func NewNotFound(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

func quote(s string) string {
	return fmt.Sprintf("%q", s)
}
