package sortedlist

type node[T any] struct {
	data T
	prev *node[T]
	next *node[T]
}

func newNode[T any](v T) *node[T] {
	return &node[T]{data: v}
}

// detach drops the links of a node that no longer belongs to a list.
func (n *node[T]) detach() {
	n.prev = nil
	n.next = nil
}
