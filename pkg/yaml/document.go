package yaml

import (
	"github.com/google/uuid"

	"github.com/shapestone/shape-yamlreader/internal/node"
)

// Document is one document within a Stream: a lazily-parsed root Node plus
// a unique identifier. Each document gets its own storage; it is not reused
// in place for the next document.
type Document struct {
	inner *node.Document
	id    uuid.UUID
}

// ID returns a unique identifier minted when the document was constructed,
// stable for the document's lifetime. Useful for correlating
// diagnostics or traces against one document in a multi-document stream.
func (d *Document) ID() uuid.UUID { return d.id }

// Root returns the document's root node, parsing it on first access.
func (d *Document) Root() Node { return d.inner.Root() }

func (d *Document) skip() { d.inner.Skip() }
