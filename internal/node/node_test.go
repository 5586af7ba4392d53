package node

import (
	"testing"

	"github.com/shapestone/shape-yamlreader/internal/scanner"
)

func parseDoc(t *testing.T, src string) *Document {
	t.Helper()
	sc := scanner.New([]byte(src), nil)
	d, ok := NewDocument(sc, []byte(src), nil)
	if !ok {
		t.Fatal("expected a document")
	}
	return d
}

func TestScalarRoot(t *testing.T) {
	d := parseDoc(t, "hello\n")
	root := d.Root()
	sc, ok := root.(*ScalarNode)
	if !ok {
		t.Fatalf("root is %T, want *ScalarNode", root)
	}
	v, err := sc.GetValue()
	if err != nil {
		t.Fatal(err)
	}
	if v != "hello" {
		t.Errorf("GetValue() = %q, want %q", v, "hello")
	}
}

func TestMappingRoot(t *testing.T) {
	d := parseDoc(t, "a: 1\nb: 2\n")
	m, ok := d.Root().(*MappingNode)
	if !ok {
		t.Fatalf("root is %T, want *MappingNode", d.Root())
	}
	var keys []string
	for kv, ok := m.Next(); ok; kv, ok = m.Next() {
		k := kv.Key().(*ScalarNode)
		v, err := k.GetValue()
		if err != nil {
			t.Fatal(err)
		}
		keys = append(keys, v)
	}
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Errorf("keys = %v, want [a b]", keys)
	}
}

func TestSequenceRoot(t *testing.T) {
	d := parseDoc(t, "- x\n- y\n- z\n")
	seq, ok := d.Root().(*SequenceNode)
	if !ok {
		t.Fatalf("root is %T, want *SequenceNode", d.Root())
	}
	var items []string
	for item, ok := seq.Next(); ok; item, ok = seq.Next() {
		v, err := item.(*ScalarNode).GetValue()
		if err != nil {
			t.Fatal(err)
		}
		items = append(items, v)
	}
	if len(items) != 3 {
		t.Errorf("len(items) = %d, want 3", len(items))
	}
}

func TestAnchorAlias(t *testing.T) {
	d := parseDoc(t, "a: &x hi\nb: *x\n")
	m := d.Root().(*MappingNode)
	kv, _ := m.Next()
	first := kv.Value().(*ScalarNode)
	if first.Anchor() != "x" {
		t.Errorf("Anchor() = %q, want %q", first.Anchor(), "x")
	}
	kv2, _ := m.Next()
	alias := kv2.Value().(*AliasNode)
	target, ok := alias.Target()
	if !ok {
		t.Fatal("expected alias to resolve")
	}
	v, _ := target.(*ScalarNode).GetValue()
	if v != "hi" {
		t.Errorf("alias target value = %q, want %q", v, "hi")
	}
}

func TestImplicitNullValue(t *testing.T) {
	d := parseDoc(t, "a:\nb: 2\n")
	m := d.Root().(*MappingNode)
	kv, _ := m.Next()
	if _, ok := kv.Value().(*NullNode); !ok {
		t.Errorf("value is %T, want *NullNode", kv.Value())
	}
}

func TestSkipUnvisitedNestedStructure(t *testing.T) {
	d := parseDoc(t, "a:\n  nested:\n    - 1\n    - 2\nb: done\n")
	m := d.Root().(*MappingNode)
	kv, _ := m.Next() // "a" — never walk its value
	_ = kv
	kv2, ok := m.Next()
	if !ok {
		t.Fatal("expected second entry after skip")
	}
	v, _ := kv2.Key().(*ScalarNode).GetValue()
	if v != "b" {
		t.Errorf("key = %q, want %q", v, "b")
	}
}
