package node

import (
	"fmt"

	"github.com/shapestone/shape-yamlreader/internal/scanner"
	"github.com/shapestone/shape-yamlreader/internal/token"
)

// Document owns one document's worth of tokens pulled from a shared
// Scanner: its directives, its lazily-materialized root node, and the
// anchor table nodes register themselves in as they are visited.
//
// A Document must be fully skipped (via Skip) before the next one is
// constructed from the same Scanner; Stream in pkg/yaml enforces this.
type Document struct {
	s         *scanner.Scanner
	buf       []byte
	lookahead *token.Token
	sink      scanner.DiagnosticSink

	arena    arena
	anchors  map[string]Node
	root     Node
	rootRead bool
}

// NewDocument consumes leading directives and an optional "---" marker
// from s, returning (nil, false) if the stream has already ended (there is
// no document to construct). Parse-level diagnostics (a duplicate anchor,
// an unterminated flow collection, an out-of-place token during mapping or
// sequence iteration) are reported to sink; a nil sink silently discards
// them.
func NewDocument(s *scanner.Scanner, buf []byte, sink scanner.DiagnosticSink) (*Document, bool) {
	if sink == nil {
		sink = discardSink{}
	}
	d := &Document{s: s, buf: buf, sink: sink, anchors: make(map[string]Node)}
	if !d.parseDirectives() {
		return nil, false
	}
	return d, true
}

type discardSink struct{}

func (discardSink) Report(int, string) {}

// fail reports a parse-level diagnostic at pos. Unlike the scanner, the
// document parser doesn't latch a permanent failure flag: each call site
// that reports one also terminates the node it was parsing, so there's
// nothing further for a blocking flag to protect against, and the rest of
// the document (or stream, in a multi-document Stream) still parses.
func (d *Document) fail(pos int, msg string) {
	d.sink.Report(pos, msg)
}

func (d *Document) parseDirectives() bool {
	for {
		tok := d.peek()
		switch tok.Kind {
		case token.StreamStart:
			d.pop()
		case token.VersionDirective, token.TagDirective:
			d.pop()
		case token.DocumentStart:
			d.pop()
			return true
		case token.StreamEnd:
			return false
		default:
			return true
		}
	}
}

func (d *Document) peek() token.Token {
	if d.lookahead == nil {
		t := d.s.Scan()
		d.lookahead = &t
	}
	return *d.lookahead
}

func (d *Document) pop() token.Token {
	t := d.peek()
	d.lookahead = nil
	return t
}

func (d *Document) newNull(rng token.Range) Node {
	return d.arena.track(&NullNode{base: base{d: d, rng: rng}})
}

// Root returns the document's root node, parsing it on first access.
func (d *Document) Root() Node {
	if !d.rootRead {
		d.rootRead = true
		d.root = d.parseBlockNode()
		if d.root == nil {
			d.root = d.newNull(d.peek().Range)
		}
	}
	return d.root
}

// Skip drains every token belonging to this document (materializing and
// discarding its tree if Root was never walked) and consumes the trailing
// "..." marker if present, leaving the scanner positioned for the next
// Document's directives.
func (d *Document) Skip() {
	d.Root().skip()
	d.arena.release()
	for d.peek().Kind == token.DocumentEnd {
		d.pop()
	}
}

// taggable is implemented by every concrete node type via the promoted
// pointer-receiver methods on base.
type taggable interface {
	setAnchor(string)
	setTag(string)
}

func (b *base) setAnchor(s string) { b.anchor = s }
func (b *base) setTag(s string)    { b.tag = s }

// parseBlockNode dispatches on the next token to materialize exactly one
// node, consuming any leading anchor/tag properties along the way. It
// returns nil for an implicit null (a Value/BlockEnd/DocumentEnd/StreamEnd
// token with no node of its own) — callers substitute a NullNode.
func (d *Document) parseBlockNode() Node {
	tok := d.peek()
	switch tok.Kind {
	case token.Anchor:
		d.pop()
		name := tok.Range.Text(d.buf)[1:]
		if _, exists := d.anchors[name]; exists {
			d.fail(tok.Range.Start, fmt.Sprintf("duplicate anchor %q", name))
		}
		inner := d.parseBlockNode()
		if inner == nil {
			inner = d.newNull(tok.Range)
		}
		if t, ok := inner.(taggable); ok {
			t.setAnchor(name)
		}
		d.anchors[name] = inner
		return inner

	case token.Tag:
		d.pop()
		tag := tok.Range.Text(d.buf)
		inner := d.parseBlockNode()
		if inner == nil {
			inner = d.newNull(tok.Range)
		}
		if t, ok := inner.(taggable); ok {
			t.setTag(tag)
		}
		return inner

	case token.Alias:
		d.pop()
		name := tok.Range.Text(d.buf)[1:]
		return d.arena.track(&AliasNode{base: base{d: d, rng: tok.Range}, name: name})

	case token.Scalar:
		d.pop()
		text := tok.Range.Text(d.buf)
		single := len(text) > 0 && text[0] == '\''
		double := len(text) > 0 && text[0] == '"'
		return d.arena.track(&ScalarNode{base: base{d: d, rng: tok.Range}, single: single, double: double})

	case token.BlockMappingStart:
		d.pop()
		return d.arena.track(&MappingNode{base: base{d: d, rng: tok.Range}, style: BlockMapping})

	case token.FlowMappingStart:
		d.pop()
		return d.arena.track(&MappingNode{base: base{d: d, rng: tok.Range}, style: FlowMapping})

	case token.BlockSequenceStart:
		d.pop()
		return d.arena.track(&SequenceNode{base: base{d: d, rng: tok.Range}, style: BlockSequence})

	case token.FlowSequenceStart:
		d.pop()
		return d.arena.track(&SequenceNode{base: base{d: d, rng: tok.Range}, style: FlowSequence})

	case token.BlockEntry:
		// No BlockSequenceStart precedes this entry: the sequence sits at
		// the same indent as its parent mapping value, the one case the
		// scanner's indent stack can't resolve on its own.
		return d.arena.track(&SequenceNode{base: base{d: d, rng: tok.Range}, style: IndentlessSequence})

	case token.Key:
		// A simple key promoted in a context with no enclosing
		// Block/FlowMappingStart of its own (e.g. a bare "a: 1" flow
		// sequence entry). Left unconsumed: KeyValueNode/MappingNode pop
		// the Key token themselves, same as inside an ordinary mapping.
		return d.arena.track(&MappingNode{base: base{d: d, rng: tok.Range}, style: InlineMapping})

	default:
		return nil
	}
}
