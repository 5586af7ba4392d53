package scanner

import (
	"testing"

	"github.com/shapestone/shape-yamlreader/internal/token"
)

func scanAll(t *testing.T, src string) []token.Kind {
	t.Helper()
	sc := New([]byte(src), nil)
	var kinds []token.Kind
	for {
		tok := sc.Scan()
		kinds = append(kinds, tok.Kind)
		if tok.Kind == token.StreamEnd {
			return kinds
		}
		if len(kinds) > 10000 {
			t.Fatal("scanner did not terminate")
		}
	}
}

func contains(kinds []token.Kind, k token.Kind) bool {
	for _, kk := range kinds {
		if kk == k {
			return true
		}
	}
	return false
}

func TestScanPlainScalar(t *testing.T) {
	kinds := scanAll(t, "hello\n")
	if !contains(kinds, token.Scalar) {
		t.Errorf("expected a Scalar token, got %v", kinds)
	}
	if kinds[0] != token.StreamStart {
		t.Errorf("expected StreamStart first, got %v", kinds[0])
	}
	if kinds[len(kinds)-1] != token.StreamEnd {
		t.Errorf("expected StreamEnd last, got %v", kinds[len(kinds)-1])
	}
}

func TestScanBlockMapping(t *testing.T) {
	kinds := scanAll(t, "a: 1\nb: 2\n")
	want := []token.Kind{
		token.StreamStart,
		token.BlockMappingStart,
		token.Key, token.Scalar, token.Value, token.Scalar,
		token.Key, token.Scalar, token.Value, token.Scalar,
		token.BlockEnd,
		token.StreamEnd,
	}
	if !equalKinds(kinds, want) {
		t.Errorf("got %v, want %v", kinds, want)
	}
}

func TestScanBlockSequence(t *testing.T) {
	kinds := scanAll(t, "- a\n- b\n")
	want := []token.Kind{
		token.StreamStart,
		token.BlockSequenceStart,
		token.BlockEntry, token.Scalar,
		token.BlockEntry, token.Scalar,
		token.BlockEnd,
		token.StreamEnd,
	}
	if !equalKinds(kinds, want) {
		t.Errorf("got %v, want %v", kinds, want)
	}
}

func TestScanFlowMapping(t *testing.T) {
	kinds := scanAll(t, "{a: 1, b: 2}\n")
	if !contains(kinds, token.FlowMappingStart) || !contains(kinds, token.FlowMappingEnd) {
		t.Errorf("expected flow mapping tokens, got %v", kinds)
	}
}

func TestScanQuotedScalars(t *testing.T) {
	kinds := scanAll(t, "a: 'it''s', b: \"x\\ny\"\n")
	if !contains(kinds, token.Scalar) {
		t.Errorf("expected scalars, got %v", kinds)
	}
}

func TestScanAnchorAliasTag(t *testing.T) {
	kinds := scanAll(t, "a: &x !!str foo\nb: *x\n")
	for _, want := range []token.Kind{token.Anchor, token.Tag, token.Alias} {
		if !contains(kinds, want) {
			t.Errorf("expected %v in %v", want, kinds)
		}
	}
}

func equalKinds(got, want []token.Kind) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
