// Package node implements the lazy node tree and document parser layered
// on internal/scanner: Null, Scalar, Mapping, Sequence, KeyValue, and Alias
// nodes materialized just-in-time as a Document is walked.
package node

import "github.com/shapestone/shape-yamlreader/internal/token"

// Kind identifies a Node's concrete type.
type Kind int

const (
	NullKind Kind = iota
	ScalarKind
	MappingKind
	SequenceKind
	KeyValueKind
	AliasKind
)

// Node is the common interface implemented by every node in the tree.
// skip() is the lazy-materialization contract: every node must consume
// exactly the tokens it owns from the document's scanner before control
// returns to its parent, regardless of whether any of its children were
// ever visited.
type Node interface {
	Kind() Kind
	Anchor() string
	Tag() string
	Range() token.Range
	skip()
	doc() *Document
}

type base struct {
	d      *Document
	anchor string
	tag    string
	rng    token.Range
}

func (b *base) Anchor() string     { return b.anchor }
func (b *base) Tag() string        { return b.tag }
func (b *base) Range() token.Range { return b.rng }
func (b *base) doc() *Document     { return b.d }

// NullNode represents an implicit or explicit null value ("~", "null", or
// an omitted mapping value/key).
type NullNode struct{ base }

func (n *NullNode) Kind() Kind { return NullKind }
func (n *NullNode) skip()      {}

// ScalarNode represents a plain, single-quoted, double-quoted, or block
// scalar. The raw, still-escaped text is in Range(); decode it with
// GetValue (scalar.go), which owns the escape table.
type ScalarNode struct {
	base
	single bool // single-quoted, for callers deciding how to unescape
	double bool // double-quoted
}

func (n *ScalarNode) Kind() Kind      { return ScalarKind }
func (n *ScalarNode) skip()           {}
func (n *ScalarNode) SingleQuoted() bool { return n.single }
func (n *ScalarNode) DoubleQuoted() bool { return n.double }

// AliasNode represents a "*name" reference to a previously anchored node.
type AliasNode struct {
	base
	name string
}

func (n *AliasNode) Kind() Kind { return AliasKind }
func (n *AliasNode) skip()      {}
func (n *AliasNode) Name() string { return n.name }

// Target resolves the alias against the owning document's anchor table.
// Because the reader is forward-only, an alias referencing an anchor not
// yet visited cannot be resolved and returns (nil, false) rather than
// blocking — see DESIGN.md's alias-resolution decision.
func (n *AliasNode) Target() (Node, bool) {
	target, ok := n.d.anchors[n.name]
	return target, ok
}
