package node

// arena tracks every Node allocated while parsing one Document. It does no
// allocation itself — Go's garbage collector owns that — its only job is
// to let a Document release every node it produced in one step when the
// document is replaced by the next one in the stream, making the "nodes
// don't outlive their document" invariant explicit instead of relying on
// callers not to hold stale references.
type arena struct {
	nodes []Node
}

func (a *arena) track(n Node) Node {
	a.nodes = append(a.nodes, n)
	return n
}

func (a *arena) release() {
	a.nodes = nil
}
