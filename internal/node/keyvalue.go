package node

import "github.com/shapestone/shape-yamlreader/internal/token"

// KeyValueNode is one entry of a MappingNode: a key and a value, either of
// which may be implicit null (an omitted "? key" with no ": value", or a
// bare ": value" with no key).
type KeyValueNode struct {
	base
	key       Node
	value     Node
	keyRead   bool
	valueRead bool
}

func (n *KeyValueNode) Kind() Kind { return KeyValueKind }

// Key returns the entry's key, parsing it on first access.
func (n *KeyValueNode) Key() Node {
	if !n.keyRead {
		n.keyRead = true
		n.key = n.d.parseBlockNode()
		if n.key == nil {
			n.key = n.d.newNull(n.rng)
		}
	}
	return n.key
}

// Value returns the entry's value, parsing it on first access. Key() must
// have been consumed (directly or via skip) before Value() is valid, since
// the scanner is forward-only.
//
// A BlockEnd/FlowMappingEnd/Key/FlowEntry in value position means the value
// was omitted entirely (no ':' for this entry). A Key immediately after the
// consumed ':' means the scanner promoted the *next* sibling's simple key
// right behind this one with no blank value token in between (e.g. "a:\nb:
// 2"); parseBlockNode would otherwise read that Key as the start of an
// InlineMapping, swallowing the next entry into this one's value, so both
// cases are treated as this entry's value being Null without consuming the
// token that belongs to what follows.
func (n *KeyValueNode) Value() Node {
	n.Key().skip()
	if !n.valueRead {
		n.valueRead = true
		tok := n.d.peek()
		switch tok.Kind {
		case token.BlockEnd, token.FlowMappingEnd, token.Key, token.FlowEntry:
			// implicit null, nothing to consume
		case token.Value:
			n.d.pop()
			next := n.d.peek()
			if next.Kind != token.BlockEnd && next.Kind != token.Key {
				n.value = n.d.parseBlockNode()
			}
		}
		if n.value == nil {
			n.value = n.d.newNull(n.rng)
		}
	}
	return n.value
}

func (n *KeyValueNode) skip() {
	n.Value().skip()
}
