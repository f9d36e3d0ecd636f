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

// Package wire marshals access expression parse trees to and from a
// compact CBOR representation, so a tree built once can be stored or sent
// over the wire instead of re-parsed from its text form.
package wire

import (
	"github.com/fxamacker/cbor/v2"
	"github.com/gravitational/trace"

	"github.com/gravitational/accessexpr/access"
)

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error

	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("wire: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("wire: CBOR decoder initialization failed: " + err.Error())
	}
}

// tag identifies a node's shape on the wire. It mirrors access.NodeType
// but is pinned to stable numeric values independent of that type's
// internal ordering.
type tag uint8

const (
	tagAuthorization tag = 0
	tagAnd           tag = 1
	tagOr            tag = 2
	tagEmpty         tag = 3
)

// wireNode is the CBOR record shape for one parse tree node. A leaf
// populates Bytes/Quoted and leaves Children nil; an internal node
// populates Children and leaves Bytes/Quoted zero.
type wireNode struct {
	Tag      tag        `cbor:"1,keyasint"`
	Bytes    []byte     `cbor:"2,keyasint,omitempty"`
	Quoted   bool       `cbor:"3,keyasint,omitempty"`
	Children []wireNode `cbor:"4,keyasint,omitempty"`
}

func toWire(n *access.Node) wireNode {
	switch n.Type() {
	case access.Authorization:
		return wireNode{Tag: tagAuthorization, Bytes: n.Bytes(), Quoted: n.Quoted()}
	case access.And, access.Or:
		t := tagAnd
		if n.Type() == access.Or {
			t = tagOr
		}
		children := make([]wireNode, len(n.Children()))
		for i, c := range n.Children() {
			children[i] = toWire(c)
		}
		return wireNode{Tag: t, Children: children}
	default:
		return wireNode{Tag: tagEmpty}
	}
}

// Marshal encodes a parse tree to its CBOR wire form.
func Marshal(n *access.Node) ([]byte, error) {
	return encMode.Marshal(toWire(n))
}

// Unmarshal decodes a parse tree produced by Marshal. It does not
// re-validate the decoded expression grammar; data produced by Marshal
// from a valid *access.Node always decodes to an equivalent tree.
func Unmarshal(data []byte) (*access.Node, error) {
	var w wireNode
	if err := decMode.Unmarshal(data, &w); err != nil {
		return nil, err
	}
	return fromWire(w)
}

func fromWire(w wireNode) (*access.Node, error) {
	switch w.Tag {
	case tagEmpty:
		return access.ParseString("")
	case tagAuthorization:
		return access.NewAuthorizationNode(w.Bytes, w.Quoted)
	case tagAnd, tagOr:
		children := make([]*access.Node, len(w.Children))
		for i, c := range w.Children {
			n, err := fromWire(c)
			if err != nil {
				return nil, err
			}
			children[i] = n
		}
		if w.Tag == tagAnd {
			return access.NewAndNode(children)
		}
		return access.NewOrNode(children)
	default:
		return nil, trace.BadParameter("wire: unknown node tag %d", w.Tag)
	}
}
