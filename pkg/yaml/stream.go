package yaml

import (
	"iter"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/shapestone/shape-yamlreader/internal/encoding"
	"github.com/shapestone/shape-yamlreader/internal/node"
	"github.com/shapestone/shape-yamlreader/internal/scanner"
)

// Stream reads a sequence of documents from a single byte buffer. It is
// single-threaded and forward-only: once a Document has been produced,
// advancing to the next one (via Next, or by a Documents loop continuing)
// invalidates any node still being held from the previous one, mirroring
// the reference reader's single-pass, non-rewindable contract.
type Stream struct {
	buf     []byte
	scanner *scanner.Scanner
	err     *errCapture

	cur     *Document
	started bool
}

// NewStream constructs a Stream over buf, stripping any leading byte-order
// mark. Diagnostics are reported to sink in addition to being captured for
// Err(); sink may be nil.
func NewStream(buf []byte, sink DiagnosticSink) *Stream {
	info := encoding.Detect(buf)
	body := buf[info.BOMSize:]
	capture := &errCapture{buf: body, inner: sink}
	return &Stream{
		buf:     body,
		scanner: scanner.New(body, capture),
		err:     capture,
	}
}

// Err returns the first diagnostic reported during scanning or parsing,
// wrapped with a stack trace at the point it crossed into this package, or
// nil if nothing has failed (yet — Err reflects only what has been
// observed so far in a forward-only read).
func (s *Stream) Err() error {
	if err := s.err.asError(); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

// Next advances to and returns the next document, or (nil, false) once the
// stream is exhausted. Calling Next again after a prior Document has not
// been fully consumed implicitly skips its remainder.
func (s *Stream) Next() (*Document, bool) {
	if s.cur != nil {
		s.cur.skip()
		s.cur = nil
	}
	inner, ok := node.NewDocument(s.scanner, s.buf, s.err)
	if !ok {
		return nil, false
	}
	s.cur = &Document{inner: inner, id: newDocumentID()}
	return s.cur, true
}

// Documents returns a single-pass iterator over the stream's documents,
// the idiomatic range-over-func rendering of the reference reader's
// forward-only document_iterator.
func (s *Stream) Documents() iter.Seq[*Document] {
	return func(yield func(*Document) bool) {
		for {
			d, ok := s.Next()
			if !ok {
				return
			}
			if !yield(d) {
				return
			}
		}
	}
}

func newDocumentID() uuid.UUID {
	return uuid.New()
}
