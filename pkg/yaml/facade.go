// Package yaml is the public surface of a streaming YAML 1.2 reader: a
// lazy, forward-only Stream of Documents whose nodes are materialized only
// as they are walked. It wraps internal/scanner and internal/node, adding
// diagnostics, per-document identity, and scalar value decoding.
//
// # Thread Safety
//
// A Stream is not safe for concurrent use: it pulls tokens from a single
// underlying scanner shared by all of its documents. Give each
// goroutine its own Stream over its own buffer.
//
// # Example usage
//
//	s := yaml.NewStream([]byte("name: Alice\nage: 30\n"), nil)
//	for doc := range s.Documents() {
//		m := doc.Root().(*yaml.MappingNode)
//		for kv, ok := m.Next(); ok; kv, ok = m.Next() {
//			key := kv.Key().(*yaml.ScalarNode)
//			name, _ := key.GetValue()
//			_ = name
//		}
//	}
//	if err := s.Err(); err != nil {
//		// handle error
//	}
package yaml

import "github.com/shapestone/shape-yamlreader/internal/node"

// Node, and the concrete node types below, are re-exported from
// internal/node so callers never need to import an internal package to
// name a type returned from this one.
type Node = node.Node

type Kind = node.Kind

const (
	NullKind     = node.NullKind
	ScalarKind   = node.ScalarKind
	MappingKind  = node.MappingKind
	SequenceKind = node.SequenceKind
	KeyValueKind = node.KeyValueKind
	AliasKind    = node.AliasKind
)

type NullNode = node.NullNode
type ScalarNode = node.ScalarNode
type MappingNode = node.MappingNode
type SequenceNode = node.SequenceNode
type KeyValueNode = node.KeyValueNode
type AliasNode = node.AliasNode

type MappingStyle = node.MappingStyle

const (
	BlockMapping  = node.BlockMapping
	FlowMapping   = node.FlowMapping
	InlineMapping = node.InlineMapping
)

type SequenceStyle = node.SequenceStyle

const (
	BlockSequence      = node.BlockSequence
	FlowSequence       = node.FlowSequence
	IndentlessSequence = node.IndentlessSequence
)
