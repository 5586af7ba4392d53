package node

import "github.com/shapestone/shape-yamlreader/internal/token"

// SequenceStyle distinguishes how a sequence was written.
type SequenceStyle int

const (
	BlockSequence SequenceStyle = iota
	FlowSequence
	IndentlessSequence // a sequence of "- x" entries with no BlockSequenceStart, nested directly under a mapping value
)

// SequenceNode is an ordered list of entries, materialized lazily like
// MappingNode.
type SequenceNode struct {
	base
	style    SequenceStyle
	indent   int // not set by the parser; Next does not check entry columns
	done     bool
	cur      Node
	curIdx   int
	sawComma bool // Flow only: previous token was a FlowEntry
}

func (n *SequenceNode) Kind() Kind           { return SequenceKind }
func (n *SequenceNode) Style() SequenceStyle { return n.style }

// Next returns the next entry, or (nil, false) once the sequence is
// exhausted.
func (n *SequenceNode) Next() (Node, bool) {
	if n.done {
		return nil, false
	}
	if n.cur != nil {
		n.cur.skip()
	}
	d := n.d
	tok := d.peek()

	switch n.style {
	case BlockSequence, IndentlessSequence:
		if tok.Kind == token.BlockEnd && n.style == BlockSequence {
			d.pop()
			n.done = true
			n.cur = nil
			return nil, false
		}
		if tok.Kind != token.BlockEntry {
			if n.style != IndentlessSequence {
				d.fail(tok.Range.Start, "expected BlockEntry or Block End")
			}
			n.done = true
			n.cur = nil
			return nil, false
		}
		d.pop()
	case FlowSequence:
		switch tok.Kind {
		case token.FlowSequenceEnd:
			d.pop()
			n.done = true
			n.cur = nil
			return nil, false
		case token.StreamEnd, token.DocumentEnd, token.DocumentStart:
			d.fail(tok.Range.Start, "Could not find closing ]")
			n.done = true
			n.cur = nil
			return nil, false
		case token.FlowEntry:
			d.pop()
			n.sawComma = true
			tok = d.peek()
			if tok.Kind == token.FlowSequenceEnd {
				d.pop()
				n.done = true
				n.cur = nil
				return nil, false
			}
		default:
			if n.curIdx > 0 && !n.sawComma {
				d.fail(tok.Range.Start, "Expected ',' between entries")
			}
		}
		n.sawComma = false
	}

	child := d.parseBlockNode()
	if child == nil {
		child = d.newNull(tok.Range)
	}
	n.cur = child
	n.curIdx++
	return child, true
}

func (n *SequenceNode) skip() {
	for {
		if _, ok := n.Next(); !ok {
			return
		}
	}
}
