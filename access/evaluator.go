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

// Evaluator decides whether a holder of one or more authorization sets
// can access data tagged with a given access expression. An Evaluator is
// immutable after construction and safe for concurrent use.
//
// Caching the result of repeated CanAccess calls for the same expression
// bytes against the same Evaluator, which is what package access/cache
// does, is safe only when evaluating the same expression bytes always
// yields the same result. An Evaluator built from fixed Sets always does;
// one built with NewEvaluatorFromAuthorizer does only as long as its
// Authorizer keeps giving the same answers.
type Evaluator struct {
	matchers []matcher
	maxDepth int
}

// Option configures an Evaluator at construction time.
type Option func(*Evaluator)

// WithMaxNestingDepth overrides DefaultMaxNestingDepth for the parens an
// expression evaluated by this Evaluator may nest.
func WithMaxNestingDepth(n int) Option {
	return func(e *Evaluator) { e.maxDepth = n }
}

// NewEvaluator builds an Evaluator over an ordered collection of
// authorization sets, S_1 .. S_k. CanAccess evaluates an expression
// independently against each set and returns true only if every set
// finds it accessible; see (*Evaluator).CanAccess. A nil or empty sets
// slice is treated as a single, empty authorization set.
func NewEvaluator(sets []Set, opts ...Option) *Evaluator {
	if len(sets) == 0 {
		sets = []Set{Authorizations()}
	}
	e := &Evaluator{
		matchers: make([]matcher, len(sets)),
		maxDepth: DefaultMaxNestingDepth,
	}
	for i, s := range sets {
		e.matchers[i] = s.matcher()
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewEvaluatorFromAuthorizer builds an Evaluator backed by a single
// authorization set whose membership test delegates to auth, rather than
// to a fixed Set.
func NewEvaluatorFromAuthorizer(auth Authorizer, opts ...Option) *Evaluator {
	e := &Evaluator{
		matchers: []matcher{auth.matcher()},
		maxDepth: DefaultMaxNestingDepth,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// CanAccess reports whether expr is accessible to the holder of every
// authorization set this Evaluator was built with. For the empty
// expression it returns true regardless of authorizations held.
//
// CanAccess never reports a malformed expression as merely inaccessible
// (false with a nil error): a malformed expression always returns a
// non-nil error, and the accompanying bool is false and meaningless.
func (e *Evaluator) CanAccess(expr []byte) (bool, error) {
	for _, m := range e.matchers {
		pred := func(tok authToken) bool { return matchToken(tok, m) }
		ok, err := parseAccessExpression(expr, pred, e.maxDepth)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// CanAccessString is CanAccess for UTF-8 text.
func (e *Evaluator) CanAccessString(expr string) (bool, error) {
	return e.CanAccess([]byte(expr))
}
