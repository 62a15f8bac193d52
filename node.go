package linkedlist

// Node holds one payload and the link to its successor. It is exported so
// allocation hooks can hand out storage for it; its fields belong to the
// list that links it.
type Node struct {
	next *Node
	data uint32
}

// Data returns the node's payload.
func (n *Node) Data() uint32 {
	return n.data
}
