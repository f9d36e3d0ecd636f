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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSingleAuthorization(t *testing.T) {
	t.Parallel()
	n, err := ParseString("CAT")
	require.NoError(t, err)
	require.Equal(t, Authorization, n.Type())
	require.Equal(t, "CAT", string(n.Bytes()))
	require.False(t, n.Quoted())
	require.Equal(t, "CAT", n.String())
}

func TestParseFlattensSameOperator(t *testing.T) {
	t.Parallel()
	n, err := ParseString("A&B&C")
	require.NoError(t, err)
	require.Equal(t, And, n.Type())
	require.Len(t, n.Children(), 3)
	for i, want := range []string{"A", "B", "C"} {
		require.Equal(t, want, string(n.Children()[i].Bytes()))
	}
}

func TestParseDoesNotWrapSingleChild(t *testing.T) {
	t.Parallel()
	n, err := ParseString("(A)")
	require.NoError(t, err)
	require.Equal(t, Authorization, n.Type())
	require.Equal(t, "A", string(n.Bytes()))
}

func TestParseNoAndChildOfAnd(t *testing.T) {
	t.Parallel()
	n, err := ParseString("(A&B)&C")
	require.NoError(t, err)
	require.Equal(t, And, n.Type())
	require.Len(t, n.Children(), 3)
	for _, c := range n.Children() {
		require.NotEqual(t, And, c.Type())
	}
}

func TestParseQuotedLeafUnescapes(t *testing.T) {
	t.Parallel()
	n, err := ParseString(`"a\"b\\c"`)
	require.NoError(t, err)
	require.Equal(t, Authorization, n.Type())
	require.True(t, n.Quoted())
	require.Equal(t, `a"b\c`, string(n.Bytes()))
}

func TestNodeExpressionMinimalForm(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want string
	}{
		{"A", "A"},
		{"A&B", "A&B"},
		{"(A&B)|C", "(A&B)|C"},
		{"A&(B|C)", "A&(B|C)"},
		{"(A|B)&(C|D)", "(A|B)&(C|D)"},
		{`"🦕"`, `"🦕"`},
	}
	for _, tt := range tests {
		n, err := ParseString(tt.in)
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.want, n.String(), tt.in)
	}
}

func TestParseRejectsMixedOperatorsAtSameLevel(t *testing.T) {
	t.Parallel()
	_, err := ParseString("A&B|C")
	require.Error(t, err)
	var accessErr *Error
	require.ErrorAs(t, err, &accessErr)
	require.Equal(t, KindMixedOperators, accessErr.Kind)
}

func TestParseNestingTooDeep(t *testing.T) {
	t.Parallel()
	expr := "A"
	for i := 0; i < DefaultMaxNestingDepth+1; i++ {
		expr = "(" + expr + ")"
	}
	_, err := ParseString(expr)
	require.Error(t, err)
	var accessErr *Error
	require.ErrorAs(t, err, &accessErr)
	require.Equal(t, KindNestingTooDeep, accessErr.Kind)
}

func TestParseUnbalancedParens(t *testing.T) {
	t.Parallel()
	for _, expr := range []string{"(A", "A)", "((A)", "(A))"} {
		_, err := ParseString(expr)
		require.Error(t, err, expr)
	}
}
