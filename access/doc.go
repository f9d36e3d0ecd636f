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

// Package access validates, parses, and evaluates access expressions: boolean
// formulas over authorization tokens combined with & and | operators and
// parenthesization.
//
// An access expression decides whether a holder of one or more authorization
// sets may see data tagged with that expression. Validation, parsing, and
// evaluation all follow one recursive-descent grammar over the raw byte
// representation of an expression and share its tokenizer. Validation and
// evaluation walk it without building nodes; a parse tree is built only
// when Parse is called explicitly.
//
// The following example mirrors the canonical usage: quoting authorizations
// that contain bytes outside the bare character set, building an
// expression, and evaluating it against an Evaluator.
//
//	auth1, _ := access.QuoteString("CAT")
//	auth2, _ := access.QuoteString("🦕")
//	auth3, _ := access.QuoteString("🦖")
//
//	expr := "(" + auth1 + "&" + auth3 + ")|(" + auth1 + "&" + auth2 + ")"
//
//	if err := access.ValidateString(expr); err != nil {
//		log.Fatal(err)
//	}
//
//	eval := access.NewEvaluator([]access.Set{access.Authorizations("CAT", "🦕")})
//	can, err := eval.CanAccessString(expr)
package access
