package scanner

import "github.com/shapestone/shape-yamlreader/internal/token"

// rollIndent opens a new block collection level when column is further
// indented than the current level, inserting a synthetic start token
// (BlockSequenceStart or BlockMappingStart) immediately before the token
// identified by beforeID — normally the Key or BlockEntry token that
// revealed the new indentation. Flow context never rolls indent: block
// structure is irrelevant once '[' or '{' has been seen.
func (s *Scanner) rollIndent(column int, kind token.Kind, beforeID uint64) {
	if s.flowLevel > 0 {
		return
	}
	if s.indent >= column {
		return
	}
	s.indents = append(s.indents, s.indent)
	s.indent = column
	s.queue.insertBefore(beforeID, token.Token{
		ID:     s.nextTokenID(),
		Kind:   kind,
		Range:  token.Range{Start: s.pos, End: s.pos},
		Line:   s.line,
		Column: column,
		Indent: column,
	})
}

// unrollIndent closes every open block collection level deeper than
// column, emitting one BlockEnd per level.
func (s *Scanner) unrollIndent(column int) {
	if s.flowLevel > 0 {
		return
	}
	for s.indent > column {
		s.pushToken(token.Token{
			ID:     s.nextTokenID(),
			Kind:   token.BlockEnd,
			Range:  token.Range{Start: s.pos, End: s.pos},
			Line:   s.line,
			Column: s.column,
		})
		n := len(s.indents) - 1
		s.indent = s.indents[n]
		s.indents = s.indents[:n]
	}
}
