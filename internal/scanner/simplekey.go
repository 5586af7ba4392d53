package scanner

// simpleKeyMaxDistance bounds how many columns may separate a simple-key
// candidate from the ':' that would promote it, per the YAML spec's limit
// on implicit keys (1024 characters in the reference grammar; approximated
// here in columns, which is exact for the common case of keys and values
// on a single line and conservative otherwise).
const simpleKeyMaxDistance = 1024

// simpleKey is a plain scalar (or '[' / '{' flow start) that might
// retroactively turn out to be a mapping key, pending the scanner seeing a
// ':' before the candidate goes stale.
type simpleKey struct {
	tokenID   uint64
	line      int
	column    int
	flowLevel int
	required  bool
}

// saveSimpleKeyCandidate records a just-queued token as a possible simple
// key, replacing any existing candidate at the same flow level (a flow
// level can have at most one open candidate at a time). line/column are
// the position where the candidate's token started, not the scanner's
// current position — the two differ for any multi-byte token (a plain
// scalar, a quoted scalar, an anchor/alias/tag name).
func (s *Scanner) saveSimpleKeyCandidate(id uint64, line, column int) {
	if !s.simpleKeyAllowed {
		return
	}
	s.removeSimpleKeyOnFlowLevel(s.flowLevel)
	s.simpleKeys = append(s.simpleKeys, simpleKey{
		tokenID:   id,
		line:      line,
		column:    column,
		flowLevel: s.flowLevel,
		required:  s.flowLevel == 0 && s.indent == column,
	})
}

// removeStaleSimpleKeyCandidates drops candidates that can no longer be
// promoted: the scanner has moved to a different line, or drifted more
// than simpleKeyMaxDistance columns away. A required candidate going stale
// is a syntax error (a mapping key with no ':').
func (s *Scanner) removeStaleSimpleKeyCandidates() {
	kept := s.simpleKeys[:0]
	for _, k := range s.simpleKeys {
		stale := k.line != s.line || (s.column-k.column) > simpleKeyMaxDistance
		if stale {
			if k.required {
				s.fail(s.pos, "could not find expected ':' for simple key")
			}
			continue
		}
		kept = append(kept, k)
	}
	s.simpleKeys = kept
}

// removeSimpleKeyOnFlowLevel discards the candidate (if any) belonging to
// level. Called both when a flow level closes and, more commonly, when the
// candidate is being promoted by a ':' — a successful promotion is also a
// removal, so unlike removeStaleSimpleKeyCandidates this never treats a
// required candidate's removal as an error (matching
// removeSimpleKeyCandidatesOnFlowLevel in the reference scanner, which
// doesn't check IsRequired at all). Only a candidate going stale without
// ever being promoted is a syntax error.
func (s *Scanner) removeSimpleKeyOnFlowLevel(level int) {
	for i, k := range s.simpleKeys {
		if k.flowLevel == level {
			s.simpleKeys = append(s.simpleKeys[:i], s.simpleKeys[i+1:]...)
			return
		}
	}
}

// candidateAtFlowLevel returns the pending candidate at level, if any.
func (s *Scanner) candidateAtFlowLevel(level int) (simpleKey, bool) {
	for _, k := range s.simpleKeys {
		if k.flowLevel == level {
			return k, true
		}
	}
	return simpleKey{}, false
}
