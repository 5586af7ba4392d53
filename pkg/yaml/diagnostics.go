package yaml

import (
	"fmt"
	"io"

	"github.com/shapestone/shape-yamlreader/internal/scanner"
)

// DiagnosticSink receives scan/parse errors as a byte offset into the
// original buffer plus a message. It is the narrow collaborator the
// scanner talks to; this package supplies TextSink as the default concrete
// implementation.
type DiagnosticSink = scanner.DiagnosticSink

// TextSink formats diagnostics as "line:column: message" against the
// buffer it was built from, writing each to w.
type TextSink struct {
	buf []byte
	w   io.Writer
}

// NewTextSink returns a sink that resolves byte offsets against buf and
// writes formatted diagnostics to w.
func NewTextSink(buf []byte, w io.Writer) *TextSink {
	return &TextSink{buf: buf, w: w}
}

func (t *TextSink) Report(pos int, msg string) {
	line, col := resolvePosition(t.buf, pos)
	fmt.Fprintf(t.w, "%d:%d: %s\n", line, col, msg)
}

// resolvePosition walks buf up to pos counting line breaks, independent of
// any scanner state, so it can be reused to format a diagnostic after the
// fact from just a byte offset and the original bytes.
func resolvePosition(buf []byte, pos int) (line, col int) {
	line, col = 1, 1
	if pos > len(buf) {
		pos = len(buf)
	}
	for i := 0; i < pos; i++ {
		if buf[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

// errCapture records the first diagnostic reported and optionally forwards
// every diagnostic to a wrapped sink, so Stream.Err() can surface the
// first failure as a Go error while a caller-supplied sink still sees
// every message.
type errCapture struct {
	buf   []byte
	inner DiagnosticSink
	pos   int
	msg   string
	has   bool
}

func (e *errCapture) Report(pos int, msg string) {
	if !e.has {
		e.has = true
		e.pos = pos
		e.msg = msg
	}
	if e.inner != nil {
		e.inner.Report(pos, msg)
	}
}

func (e *errCapture) asError() error {
	if !e.has {
		return nil
	}
	line, col := resolvePosition(e.buf, e.pos)
	return fmt.Errorf("%d:%d: %s", line, col, e.msg)
}
