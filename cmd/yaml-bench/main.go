// Command yaml-bench dumps scanner tokens, a canonical node tree, or runs
// a timed self-benchmark against a YAML document, for exercising and
// inspecting the reader from the command line.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/shapestone/shape-yamlreader/internal/scanner"
	"github.com/shapestone/shape-yamlreader/internal/token"
	yaml "github.com/shapestone/shape-yamlreader/pkg/yaml"
)

func main() {
	tokens := flag.Bool("tokens", false, "dump scanner tokens instead of the canonical node tree")
	canonical := flag.Bool("canonical", false, "dump the canonical node tree (default if no flag given)")
	verify := flag.Bool("verify", false, "run a timed scan+parse self-benchmark and exit")
	flag.Parse()

	if *verify {
		runVerify()
		return
	}

	buf, err := readInput(flag.Arg(0))
	if err != nil {
		fatal("%v", err)
	}

	switch {
	case *tokens:
		dumpTokens(os.Stdout, os.Stderr, buf)
	default:
		_ = canonical
		s := yaml.NewStream(buf, yaml.NewTextSink(buf, os.Stderr))
		dumpStream(os.Stdout, s)
		if err := s.Err(); err != nil {
			fatal("%v", err)
		}
	}
}

// readInput reads path, or stdin if path is empty or "-".
func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// runVerify scans and parses a synthetic multi-megabyte document, printing
// elapsed durations for each pass — a Go rendering of yaml-bench's
// TimerGroup-based benchmark using stdlib time, the tool this corpus
// actually has on hand for it.
func runVerify() {
	buf := []byte(syntheticDocument(50000))

	scanStart := time.Now()
	tokenCount := 0
	{
		sc := scanner.New(buf, nil)
		for sc.Scan().Kind != token.StreamEnd {
		}
	}
	scanElapsed := time.Since(scanStart)

	parseStart := time.Now()
	s := yaml.NewStream(buf, nil)
	for doc := range s.Documents() {
		tokenCount += countNodes(doc.Root())
	}
	parseElapsed := time.Since(parseStart)

	fmt.Printf("scan:  %v\n", scanElapsed)
	fmt.Printf("parse: %v (%d nodes)\n", parseElapsed, tokenCount)
}

func countNodes(n yaml.Node) int {
	if n == nil {
		return 1
	}
	switch v := n.(type) {
	case *yaml.SequenceNode:
		count := 1
		for item, ok := v.Next(); ok; item, ok = v.Next() {
			count += countNodes(item)
		}
		return count
	case *yaml.MappingNode:
		count := 1
		for kv, ok := v.Next(); ok; kv, ok = v.Next() {
			count += countNodes(kv.Key())
			count += countNodes(kv.Value())
		}
		return count
	default:
		return 1
	}
}

func syntheticDocument(entries int) string {
	doc := "items:\n"
	for i := 0; i < entries; i++ {
		doc += fmt.Sprintf("  - name: item%d\n    value: %d\n", i, i)
	}
	return doc
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
