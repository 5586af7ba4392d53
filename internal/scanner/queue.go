package scanner

import "github.com/shapestone/shape-yamlreader/internal/token"

// tokenQueue is a FIFO of pending tokens that supports inserting a token
// before one already in the queue, addressed by its stable ID rather than
// by pointer or index — see the token.Token doc comment for why a plain
// slice index can't serve as that address once the queue grows.
type tokenQueue struct {
	items []token.Token
}

func (q *tokenQueue) push(t token.Token) {
	q.items = append(q.items, t)
}

func (q *tokenQueue) empty() bool {
	return len(q.items) == 0
}

func (q *tokenQueue) front() token.Token {
	return q.items[0]
}

func (q *tokenQueue) popFront() token.Token {
	t := q.items[0]
	q.items = q.items[1:]
	return t
}

// insertBefore splices t into the queue immediately before the token
// carrying id. If no such token is queued (it was already popped, or this
// is called before the referenced token was ever pushed) t is appended,
// which matches fetchMoreTokens always enqueuing the synthetic token
// before pushing the token that triggered it.
func (q *tokenQueue) insertBefore(id uint64, t token.Token) {
	for i := range q.items {
		if q.items[i].ID == id {
			q.items = append(q.items, token.Token{})
			copy(q.items[i+1:], q.items[i:])
			q.items[i] = t
			return
		}
	}
	q.items = append(q.items, t)
}
