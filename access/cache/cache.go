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

// Package cache wraps an access.Evaluator with an LRU cache keyed on the
// expression bytes being evaluated. It trades a bounded amount of memory
// for skipping repeated parses of access expressions that recur across
// calls, such as the same resource label expression evaluated against
// many callers.
package cache

import (
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/gravitational/accessexpr/access"
)

// DefaultCapacity is the number of distinct expressions an Evaluator
// remembers when no WithCapacity option is given.
const DefaultCapacity = 4096

type result struct {
	ok  bool
	err error
}

// Evaluator wraps an *access.Evaluator with an LRU cache of CanAccess
// results keyed on the expression bytes. It is safe for concurrent use,
// and it caches errors as well as successful results: a malformed
// expression is just as much a function of its bytes as a well-formed
// one, so re-validating it on every call would defeat the point of the
// cache.
type Evaluator struct {
	inner *access.Evaluator
	cache *lru.Cache[string, result]
	log   *slog.Logger
}

// Option configures an Evaluator at construction time.
type Option func(*Evaluator)

// WithCapacity overrides DefaultCapacity.
func WithCapacity(n int) Option {
	return func(e *Evaluator) {
		c, err := lru.New[string, result](n)
		if err != nil {
			panic(err)
		}
		e.cache = c
	}
}

// WithLogger attaches a logger. Cache fills and evictions are logged at
// slog.LevelDebug. With no logger attached, nothing is logged.
func WithLogger(log *slog.Logger) Option {
	return func(e *Evaluator) { e.log = log }
}

// New wraps inner with an LRU cache of DefaultCapacity entries, or of the
// capacity given by a WithCapacity option.
func New(inner *access.Evaluator, opts ...Option) *Evaluator {
	e := &Evaluator{inner: inner}
	for _, opt := range opts {
		opt(e)
	}
	if e.cache == nil {
		c, err := lru.New[string, result](DefaultCapacity)
		if err != nil {
			panic(err)
		}
		e.cache = c
	}
	return e
}

// CanAccess is access.Evaluator.CanAccess with the result memoized by the
// exact bytes of expr. The returned error, if any, is the same *access.Error
// (or other error) the wrapped Evaluator would have returned, replayed from
// cache.
func (e *Evaluator) CanAccess(expr []byte) (bool, error) {
	key := string(expr)
	if r, ok := e.cache.Get(key); ok {
		return r.ok, r.err
	}

	ok, err := e.inner.CanAccess(expr)
	evicted := e.cache.Add(key, result{ok: ok, err: err})
	if e.log != nil {
		if evicted {
			e.log.Debug("access expression cache evicted an entry", "len", e.cache.Len())
		}
		e.log.Debug("access expression cache miss", "len", e.cache.Len())
	}
	return ok, err
}

// CanAccessString is the string form of CanAccess.
func (e *Evaluator) CanAccessString(expr string) (bool, error) {
	return e.CanAccess([]byte(expr))
}

// Len returns the number of expressions currently cached.
func (e *Evaluator) Len() int { return e.cache.Len() }

// Purge drops every cached entry.
func (e *Evaluator) Purge() { e.cache.Purge() }
