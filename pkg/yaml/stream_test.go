package yaml_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	yaml "github.com/shapestone/shape-yamlreader/pkg/yaml"
)

func collectMapping(t *testing.T, m *yaml.MappingNode) map[string]string {
	t.Helper()
	out := map[string]string{}
	for kv, ok := m.Next(); ok; kv, ok = m.Next() {
		k, err := kv.Key().(*yaml.ScalarNode).GetValue()
		require.NoError(t, err)
		v, err := kv.Value().(*yaml.ScalarNode).GetValue()
		require.NoError(t, err)
		out[k] = v
	}
	return out
}

func TestStreamSingleDocument(t *testing.T) {
	s := yaml.NewStream([]byte("name: Alice\nage: '30'\n"), nil)
	docs := []*yaml.Document{}
	var got map[string]string
	for d := range s.Documents() {
		docs = append(docs, d)
		got = collectMapping(t, d.Root().(*yaml.MappingNode))
	}
	require.Len(t, docs, 1)
	require.NoError(t, s.Err())

	want := map[string]string{"name": "Alice", "age": "30"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mapping mismatch (-want +got):\n%s", diff)
	}
}

func TestStreamMultiDocument(t *testing.T) {
	s := yaml.NewStream([]byte("---\na: 1\n---\nb: 2\n...\n"), nil)
	var count int
	for range s.Documents() {
		count++
	}
	assert.Equal(t, 2, count)
	assert.NoError(t, s.Err())
}

func TestStreamDocumentIDsAreDistinct(t *testing.T) {
	s := yaml.NewStream([]byte("---\na: 1\n---\nb: 2\n"), nil)
	var ids []string
	for d := range s.Documents() {
		ids = append(ids, d.ID().String())
	}
	require.Len(t, ids, 2)
	assert.NotEqual(t, ids[0], ids[1])
}

func TestStreamBytesRoundTripThroughScalar(t *testing.T) {
	s := yaml.NewStream([]byte("greeting: \"hello\\nworld\"\n"), nil)
	d, ok := s.Next()
	require.True(t, ok)
	m := d.Root().(*yaml.MappingNode)
	kv, ok := m.Next()
	require.True(t, ok)
	v, err := kv.Value().(*yaml.ScalarNode).GetValue()
	require.NoError(t, err)
	assert.Equal(t, "hello\nworld", v)
}

func TestStreamFlowSequence(t *testing.T) {
	s := yaml.NewStream([]byte("[1, 2, 3]\n"), nil)
	d, ok := s.Next()
	require.True(t, ok)
	seq := d.Root().(*yaml.SequenceNode)
	var got []string
	for item, ok := seq.Next(); ok; item, ok = seq.Next() {
		v, err := item.(*yaml.ScalarNode).GetValue()
		require.NoError(t, err)
		got = append(got, v)
	}
	assert.Equal(t, []string{"1", "2", "3"}, got)
}
