package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/shapestone/shape-yamlreader/internal/encoding"
	"github.com/shapestone/shape-yamlreader/internal/scanner"
	"github.com/shapestone/shape-yamlreader/internal/token"
)

// dumpTokens prints one line per token: "<Kind>: <literal text>", matching
// yaml-bench's -tokens flag. Scanning runs to completion even on error, so
// a malformed document still shows every token produced before the
// failure.
func dumpTokens(w, errw io.Writer, buf []byte) {
	info := encoding.Detect(buf)
	body := buf[info.BOMSize:]
	sink := &lineSink{buf: body, w: errw}
	sc := scanner.New(body, sink)

	for {
		tok := sc.Scan()
		fmt.Fprintf(w, "%s: %s\n", tok.Kind, dumpRange(tok, body))
		if tok.Kind == token.StreamEnd {
			break
		}
	}
}

func dumpRange(tok token.Token, buf []byte) string {
	text := tok.Range.Text(buf)
	if text == "" {
		return "\"\""
	}
	for i := 0; i < len(text); i++ {
		if text[i] < 0x20 || text[i] == 0x7f {
			return strconv.Quote(text)
		}
	}
	return text
}

// lineSink reports scan errors straight to w without the line/column
// resolution pkg/yaml.TextSink does, since -tokens operates below that
// facade.
type lineSink struct {
	buf []byte
	w   io.Writer
}

func (s *lineSink) Report(pos int, msg string) {
	fmt.Fprintf(s.w, "%d: %s\n", pos, msg)
}
