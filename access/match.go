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

// Set is a collection of authorizations held by one principal, with set
// semantics: duplicates passed to the constructors are silently folded
// together. Membership is always tested against the unescaped, unquoted
// form of a token.
type Set struct {
	held map[string]struct{}
}

// Authorizations builds a Set from UTF-8 text authorizations.
func Authorizations(auths ...string) Set {
	held := make(map[string]struct{}, len(auths))
	for _, a := range auths {
		held[a] = struct{}{}
	}
	return Set{held: held}
}

// AuthorizationsBytes builds a Set from raw byte authorizations, useful
// when an authorization is not valid UTF-8.
func AuthorizationsBytes(auths ...[]byte) Set {
	held := make(map[string]struct{}, len(auths))
	for _, a := range auths {
		held[string(a)] = struct{}{}
	}
	return Set{held: held}
}

// contains reports whether b, already unescaped, is a member of the set.
// The string(b) conversion below does not allocate: the compiler
// recognizes map[string]struct{} lookups keyed by a converted []byte and
// avoids copying the bytes.
func (s Set) contains(b []byte) bool {
	_, ok := s.held[string(b)]
	return ok
}

// Authorizer decides whether a given, already-unescaped, authorization is
// held. It lets a caller back an evaluator with a dynamic membership
// check (a database lookup, a role policy, etc.) instead of a fixed Set.
type Authorizer func(auth string) bool

// matcher decides, given the unescaped bytes of an authorization token,
// whether it is held. Every evaluator matches authorization tokens
// through one matcher per authorization set it was constructed with.
type matcher func(unescaped []byte) bool

func (s Set) matcher() matcher {
	return func(b []byte) bool { return s.contains(b) }
}

func (a Authorizer) matcher() matcher {
	return func(b []byte) bool { return a(string(b)) }
}

// matchToken decides whether tok is held according to m, unescaping the
// token's bytes first when it was written in quoted form. When the
// quoted token contains no backslash, the comparison reads directly from
// the input buffer with no allocation, per the matcher's allocation-free
// requirement for the common case.
func matchToken(tok authToken, m matcher) bool {
	raw := tok.bytes()
	if !tok.quoted || !containsBackslash(raw) {
		return m(raw)
	}
	return m(unescapeBytes(raw))
}

func containsBackslash(b []byte) bool {
	for _, c := range b {
		if c == '\\' {
			return true
		}
	}
	return false
}

// unescapeBytes replaces \" with " and \\ with \. It assumes its input
// has already been validated (by the tokenizer, which rejects any other
// escape sequence) and is lenient with arbitrary input: an unrecognized
// escape is passed through as the byte following the backslash, so that
// UnquoteString never fails on anything but an empty term.
func unescapeBytes(b []byte) []byte {
	if !containsBackslash(b) {
		return b
	}
	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); i++ {
		c := b[i]
		if c == '\\' && i+1 < len(b) {
			i++
			out = append(out, b[i])
			continue
		}
		out = append(out, c)
	}
	return out
}
