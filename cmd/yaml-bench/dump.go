package main

import (
	"fmt"
	"io"
	"strconv"

	yaml "github.com/shapestone/shape-yamlreader/pkg/yaml"
)

// dumpNode prints n in the same canonical form yaml-bench's -canonical
// flag produces in the reference tool: "!!str \"...\"", "!!seq [ ... ]",
// "!!map { ? k : v, }", "!!null null", "*alias", with a leading "&anchor "
// whenever the node carries one.
func dumpNode(w io.Writer, n yaml.Node) {
	if n == nil {
		fmt.Fprint(w, "!!null null")
		return
	}
	if a := n.Anchor(); a != "" {
		fmt.Fprintf(w, "&%s ", a)
	}

	switch v := n.(type) {
	case *yaml.NullNode:
		fmt.Fprint(w, "!!null null")

	case *yaml.ScalarNode:
		text, err := v.GetValue()
		if err != nil {
			fmt.Fprintf(w, "!!error %q", err.Error())
			return
		}
		fmt.Fprintf(w, "!!str %s", strconv.Quote(text))

	case *yaml.AliasNode:
		fmt.Fprintf(w, "*%s", v.Name())

	case *yaml.SequenceNode:
		fmt.Fprint(w, "!!seq [ ")
		for item, ok := v.Next(); ok; item, ok = v.Next() {
			dumpNode(w, item)
			fmt.Fprint(w, ", ")
		}
		fmt.Fprint(w, "]")

	case *yaml.MappingNode:
		fmt.Fprint(w, "!!map { ")
		for kv, ok := v.Next(); ok; kv, ok = v.Next() {
			fmt.Fprint(w, "? ")
			dumpNode(w, kv.Key())
			fmt.Fprint(w, " : ")
			dumpNode(w, kv.Value())
			fmt.Fprint(w, ", ")
		}
		fmt.Fprint(w, "}")

	default:
		fmt.Fprint(w, "!!null null")
	}
}

// dumpStream prints every document in s, each framed by the "%YAML 1.2",
// "---" and "..." lines yaml-bench's reference dumper emits.
func dumpStream(w io.Writer, s *yaml.Stream) {
	for doc := range s.Documents() {
		fmt.Fprint(w, "%YAML 1.2\n---\n")
		dumpNode(w, doc.Root())
		fmt.Fprint(w, "\n...\n")
	}
}
