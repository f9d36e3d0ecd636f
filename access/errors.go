/*
Copyright 2026 Gravitational, Inc.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package access

import (
	"errors"
	"fmt"

	"github.com/gravitational/trace"
)

// Kind identifies why an access expression failed to validate.
type Kind int

const (
	// KindUnexpectedEnd means the input ended where a byte was required.
	KindUnexpectedEnd Kind = iota
	// KindUnexpectedCharacter means a byte not permitted at that position
	// was encountered.
	KindUnexpectedCharacter
	// KindMissingCloseParen means a "(" was never matched by a ")".
	KindMissingCloseParen
	// KindUnbalancedParen means a ")" appeared with no matching "(".
	KindUnbalancedParen
	// KindMixedOperators means "&" and "|" both appeared at the same
	// nesting level without parenthesization.
	KindMixedOperators
	// KindEmptyAuthorization means a quoted authorization unescaped to
	// zero bytes.
	KindEmptyAuthorization
	// KindBadEscape means a backslash was followed by a byte other than
	// '"' or '\\' inside a quoted authorization.
	KindBadEscape
	// KindUnterminatedQuote means a quoted authorization had no matching
	// closing quote.
	KindUnterminatedQuote
	// KindNestingTooDeep means parenthesis nesting exceeded the
	// evaluator's configured limit.
	KindNestingTooDeep
)

func (k Kind) String() string {
	switch k {
	case KindUnexpectedEnd:
		return "unexpected end"
	case KindUnexpectedCharacter:
		return "unexpected character"
	case KindMissingCloseParen:
		return "missing close paren"
	case KindUnbalancedParen:
		return "unbalanced paren"
	case KindMixedOperators:
		return "mixed operators"
	case KindEmptyAuthorization:
		return "empty authorization"
	case KindBadEscape:
		return "bad escape"
	case KindUnterminatedQuote:
		return "unterminated quote"
	case KindNestingTooDeep:
		return "nesting too deep"
	default:
		return "invalid access expression"
	}
}

// Error reports why an access expression failed to validate, parse, or
// evaluate. Every failure in this package is reported through this single
// type, matching the "one error category with subkinds" contract the
// expression grammar specifies: the library never fails in a way that is
// a defect rather than a malformed caller input.
//
// Error wraps a *trace.BadParameterError so that trace.IsBadParameter and
// errors.As both recognize it, the convention this package's surrounding
// code base uses for user-facing validation failures.
type Error struct {
	// Kind is the machine-readable failure category.
	Kind Kind
	// Offset is the byte offset into the original expression where the
	// failure was detected, or -1 when not applicable (e.g. unexpected
	// end of input).
	Offset int

	err error
}

// Error implements error.
func (e *Error) Error() string { return e.err.Error() }

// Unwrap exposes the underlying *trace.BadParameterError so that
// trace.IsBadParameter(err) and errors.Is/As chains through it.
func (e *Error) Unwrap() error { return e.err }

func newError(kind Kind, offset int, format string, args ...any) *Error {
	return &Error{
		Kind:   kind,
		Offset: offset,
		err:    trace.BadParameter(fmt.Sprintf(format, args...)+" at offset %d", offset),
	}
}

func newErrorNoOffset(kind Kind, format string, args ...any) *Error {
	return &Error{
		Kind:   kind,
		Offset: -1,
		err:    trace.BadParameter(format, args...),
	}
}

// IsInvalidExpression reports whether err is (or wraps) an *Error produced
// by this package.
func IsInvalidExpression(err error) bool {
	var e *Error
	return errors.As(err, &e)
}
