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

// Quote makes term safe to embed as an authorization in an access
// expression, quoting it only if it needs quoting. An empty term is not
// a legal authorization.
func Quote(term []byte) ([]byte, error) {
	if len(term) == 0 {
		return nil, newErrorNoOffset(KindEmptyAuthorization, "empty term is not a legal authorization")
	}
	needsQuote := false
	for _, b := range term {
		if !isValidAuthChar(b) {
			needsQuote = true
			break
		}
	}
	if !needsQuote {
		return term, nil
	}
	out := make([]byte, 0, len(term)+2)
	out = append(out, '"')
	for _, b := range term {
		if b == '"' || b == '\\' {
			out = append(out, '\\')
		}
		out = append(out, b)
	}
	out = append(out, '"')
	return out, nil
}

// QuoteString is Quote for UTF-8 text.
func QuoteString(term string) (string, error) {
	quoted, err := Quote([]byte(term))
	if err != nil {
		return "", err
	}
	return string(quoted), nil
}

// UnquoteString reverses QuoteString: it strips and unescapes a quoted
// term, or returns a bare term unchanged. An empty term, or the literal
// "", is not a legal authorization.
func UnquoteString(term string) (string, error) {
	if term == "" || term == `""` {
		return "", newErrorNoOffset(KindEmptyAuthorization, "empty term is not a legal authorization")
	}
	if len(term) >= 2 && term[0] == '"' && term[len(term)-1] == '"' {
		inner := term[1 : len(term)-1]
		return string(unescapeBytes([]byte(inner))), nil
	}
	return term, nil
}
