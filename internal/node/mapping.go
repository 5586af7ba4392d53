package node

import "github.com/shapestone/shape-yamlreader/internal/token"

// MappingStyle distinguishes how a mapping was written.
type MappingStyle int

const (
	BlockMapping MappingStyle = iota
	FlowMapping
	// InlineMapping wraps exactly one KeyValueNode: the {key: value}
	// shorthand reached when a simple key is promoted in flow context (or
	// anywhere else parseBlockNode meets a bare Key token) with no
	// enclosing Block/FlowMappingStart of its own.
	InlineMapping
)

// MappingNode is a sequence of KeyValueNode entries. Entries are
// materialized one at a time as Next is called; a mapping whose entries
// are never walked still costs only the work done finding its end via
// skip().
type MappingNode struct {
	base
	style  MappingStyle
	done   bool
	cur    *KeyValueNode
	curIdx int
}

func (n *MappingNode) Kind() Kind          { return MappingKind }
func (n *MappingNode) Style() MappingStyle { return n.style }

// Next returns the next entry, or (nil, false) once the mapping is
// exhausted. Calling Next again after false is a no-op returning (nil,
// false). Entries must be visited in order; skipping Value() reads on an
// entry is fine, the scanner position is advanced by KeyValueNode.skip
// when the entry is superseded by the next Next() call.
func (n *MappingNode) Next() (*KeyValueNode, bool) {
	if n.done {
		return nil, false
	}
	if n.cur != nil {
		n.cur.skip()
	}
	d := n.d
	tok := d.peek()

	switch n.style {
	case InlineMapping:
		if n.curIdx > 0 {
			n.done = true
			n.cur = nil
			return nil, false
		}
	case BlockMapping:
		if tok.Kind == token.BlockEnd {
			d.pop()
			n.done = true
			n.cur = nil
			return nil, false
		}
		if tok.Kind != token.Key && tok.Kind != token.Scalar {
			d.fail(tok.Range.Start, "Expected Key or Block End")
			n.done = true
			n.cur = nil
			return nil, false
		}
	case FlowMapping:
		if tok.Kind == token.FlowMappingEnd {
			d.pop()
			n.done = true
			n.cur = nil
			return nil, false
		}
		if n.curIdx > 0 {
			if tok.Kind == token.FlowEntry {
				d.pop()
				tok = d.peek()
			}
			if tok.Kind == token.FlowMappingEnd {
				d.pop()
				n.done = true
				n.cur = nil
				return nil, false
			}
		}
	}

	if tok.Kind == token.Key {
		d.pop()
	}
	kv := &KeyValueNode{base: base{d: d, rng: tok.Range}}
	n.cur = kv
	n.curIdx++
	return kv, true
}

// skip drains every remaining entry without returning them, leaving the
// scanner positioned just past this mapping's closing token.
func (n *MappingNode) skip() {
	for {
		if _, ok := n.Next(); !ok {
			return
		}
	}
}
