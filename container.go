package linkedlist

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/containers"
)

var _ containers.Container = (*List)(nil)

// Empty reports whether the list holds no nodes.
func (l *List) Empty() bool {
	return l.isEmpty()
}

// Values returns the payloads in index order.
func (l *List) Values() []interface{} {
	values := make([]interface{}, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		values = append(values, n.data)
	}
	return values
}

func (l *List) String() string {
	var b strings.Builder
	b.WriteString("LinkedList\n")
	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d", n.data)
	}
	return b.String()
}
