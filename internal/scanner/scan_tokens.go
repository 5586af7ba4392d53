package scanner

import "github.com/shapestone/shape-yamlreader/internal/token"

func (s *Scanner) scanStreamStart() {
	s.pushToken(token.Token{ID: s.nextTokenID(), Kind: token.StreamStart, Range: token.Range{Start: 0, End: 0}, Line: 1, Column: 0})
}

func (s *Scanner) scanStreamEnd() {
	if s.streamed {
		return
	}
	s.streamed = true
	s.unrollIndent(-1)
	s.removeSimpleKeyOnFlowLevel(0)
	s.simpleKeyAllowed = false
	s.pushToken(token.Token{ID: s.nextTokenID(), Kind: token.StreamEnd, Range: token.Range{Start: s.pos, End: s.pos}, Line: s.line, Column: s.column})
}

func (s *Scanner) scanDocumentIndicator(kind token.Kind) {
	start := s.pos
	s.unrollIndent(-1)
	s.removeSimpleKeyOnFlowLevel(0)
	s.simpleKeyAllowed = false
	s.advance(3)
	s.pushToken(token.Token{ID: s.nextTokenID(), Kind: kind, Range: token.Range{Start: start, End: s.pos}, Line: s.line, Column: 0})
}

// scanDirective handles "%YAML 1.2" and "%TAG ..." lines. A "%YAML" line
// becomes a VersionDirective token; any other directive line is consumed
// without producing a token. The payload is not parsed.
func (s *Scanner) scanDirective() {
	start := s.pos
	for !s.atEnd() && !isBreak(s.peekByte()) {
		s.advance(1)
	}
	word := string(s.buf[start:s.pos])
	s.simpleKeyAllowed = false
	if len(word) < 6 || word[:6] != "%YAML " {
		return
	}
	s.pushToken(token.Token{ID: s.nextTokenID(), Kind: token.VersionDirective, Range: token.Range{Start: start, End: s.pos}, Line: s.line, Column: 0})
}

func (s *Scanner) scanFlowCollectionStart(kind token.Kind) {
	start := s.pos
	s.saveSimpleKeyCandidate(s.nextID+1, s.line, s.column)
	s.flowLevel++
	s.advance(1)
	s.simpleKeyAllowed = true
	s.pushToken(token.Token{ID: s.nextTokenID(), Kind: kind, Range: token.Range{Start: start, End: s.pos}, Line: s.line, Column: s.column - 1})
}

func (s *Scanner) scanFlowCollectionEnd(kind token.Kind) {
	start := s.pos
	s.removeSimpleKeyOnFlowLevel(s.flowLevel)
	if s.flowLevel > 0 {
		s.flowLevel--
	}
	s.advance(1)
	s.simpleKeyAllowed = false
	s.pushToken(token.Token{ID: s.nextTokenID(), Kind: kind, Range: token.Range{Start: start, End: s.pos}, Line: s.line, Column: s.column - 1})
}

func (s *Scanner) scanFlowEntry() {
	start := s.pos
	s.removeSimpleKeyOnFlowLevel(s.flowLevel)
	s.advance(1)
	s.simpleKeyAllowed = true
	s.pushToken(token.Token{ID: s.nextTokenID(), Kind: token.FlowEntry, Range: token.Range{Start: start, End: s.pos}, Line: s.line, Column: s.column - 1})
}

func (s *Scanner) scanBlockEntry() {
	start := s.pos
	id := s.nextID + 1
	if s.flowLevel == 0 {
		if !s.simpleKeyAllowed {
			s.fail(start, "block sequence entries are not allowed in this context")
		}
		s.rollIndent(s.column, token.BlockSequenceStart, id)
	}
	s.removeSimpleKeyOnFlowLevel(s.flowLevel)
	s.simpleKeyAllowed = true
	s.advance(1)
	s.pushToken(token.Token{ID: s.nextTokenID(), Kind: token.BlockEntry, Range: token.Range{Start: start, End: s.pos}, Line: s.line, Column: s.column - 1})
}

func (s *Scanner) scanKey() {
	start := s.pos
	id := s.nextID + 1
	if s.flowLevel == 0 {
		if !s.simpleKeyAllowed {
			s.fail(start, "mapping keys are not allowed in this context")
		}
		s.rollIndent(s.column, token.BlockMappingStart, id)
	}
	s.removeSimpleKeyOnFlowLevel(s.flowLevel)
	s.simpleKeyAllowed = s.flowLevel == 0
	s.advance(1)
	s.pushToken(token.Token{ID: s.nextTokenID(), Kind: token.Key, Range: token.Range{Start: start, End: s.pos}, Line: s.line, Column: s.column - 1})
}

// scanValue handles ':'. If a simple-key candidate is pending at the
// current flow level, it is promoted: a synthetic Key token is spliced in
// before the candidate's token, rolling block-mapping indent first.
func (s *Scanner) scanValue() {
	start := s.pos
	if cand, ok := s.candidateAtFlowLevel(s.flowLevel); ok {
		s.removeSimpleKeyOnFlowLevel(s.flowLevel)
		if s.flowLevel == 0 {
			s.rollIndent(cand.column, token.BlockMappingStart, cand.tokenID)
		}
		s.queue.insertBefore(cand.tokenID, token.Token{
			ID:     s.nextTokenID(),
			Kind:   token.Key,
			Range:  token.Range{Start: start, End: start},
			Line:   cand.line,
			Column: cand.column,
		})
		s.simpleKeyAllowed = false
	} else {
		if s.flowLevel == 0 {
			if !s.simpleKeyAllowed {
				s.fail(start, "mapping values are not allowed in this context")
			}
			s.rollIndent(s.column, token.BlockMappingStart, s.nextID+1)
		}
		s.simpleKeyAllowed = s.flowLevel == 0
	}
	s.advance(1)
	s.pushToken(token.Token{ID: s.nextTokenID(), Kind: token.Value, Range: token.Range{Start: start, End: s.pos}, Line: s.line, Column: s.column - 1})
}

func (s *Scanner) scanAliasOrAnchor(kind token.Kind) {
	start := s.pos
	startLine, startCol := s.line, s.column
	s.advance(1)
	nameStart := s.pos
	for !s.atEnd() && isPlainSafe(s.peekByte(), s.flowLevel) && !isBlankOrBreak(s.peekByte()) && !isIndicator(s.peekByte()) {
		s.advance(1)
	}
	if s.pos == nameStart {
		s.fail(start, "expected alphanumeric character while scanning anchor or alias")
	}
	s.saveSimpleKeyCandidate(s.nextID+1, startLine, startCol)
	s.simpleKeyAllowed = false
	s.pushToken(token.Token{ID: s.nextTokenID(), Kind: kind, Range: token.Range{Start: start, End: s.pos}, Line: startLine, Column: startCol})
}

func (s *Scanner) scanTag() {
	start := s.pos
	startLine, startCol := s.line, s.column
	s.advance(1)
	if s.peekByte() == '<' {
		s.advance(1)
		for !s.atEnd() && s.peekByte() != '>' && !isBlankOrBreak(s.peekByte()) {
			s.advance(1)
		}
		if s.peekByte() == '>' {
			s.advance(1)
		} else {
			s.fail(start, "expected '>' while scanning verbatim tag")
		}
	} else {
		if s.peekByte() == '!' {
			s.advance(1)
		}
		for !s.atEnd() && !isBlankOrBreak(s.peekByte()) && !isIndicator(s.peekByte()) {
			s.advance(1)
		}
	}
	s.saveSimpleKeyCandidate(s.nextID+1, startLine, startCol)
	s.simpleKeyAllowed = false
	s.pushToken(token.Token{ID: s.nextTokenID(), Kind: token.Tag, Range: token.Range{Start: start, End: s.pos}, Line: startLine, Column: startCol})
}
