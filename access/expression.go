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

// Validate reports whether expr is a syntactically valid access
// expression. An empty expr is always valid.
func Validate(expr []byte) error {
	_, err := parseAccessExpression(expr, func(authToken) bool { return true }, DefaultMaxNestingDepth)
	return err
}

// ValidateString is Validate for UTF-8 text.
func ValidateString(expr string) error {
	return Validate([]byte(expr))
}

// FindAuthorizations validates expr and delivers the unescaped bytes of
// every authorization in it to sink, in left-to-right order, including
// duplicates. It walks the grammar directly rather than building a parse
// tree, so it is substantially cheaper than Parse followed by a walk
// when only the authorizations are needed.
//
// sink's argument may alias expr and is only valid for the duration of
// the call; copy it if it needs to outlive the call to FindAuthorizations.
func FindAuthorizations(expr []byte, sink func([]byte)) error {
	pred := func(tok authToken) bool {
		raw := tok.bytes()
		if tok.quoted && containsBackslash(raw) {
			raw = unescapeBytes(raw)
		}
		sink(raw)
		return true
	}
	_, err := parseAccessExpression(expr, pred, DefaultMaxNestingDepth)
	return err
}

// FindAuthorizationsString is FindAuthorizations for UTF-8 text.
func FindAuthorizationsString(expr string, sink func(string)) error {
	return FindAuthorizations([]byte(expr), func(b []byte) { sink(string(b)) })
}
