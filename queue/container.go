package queue

import (
	"fmt"
	"strings"
)

// Empty reports whether the queue holds no elements.
func (q *Queue) Empty() bool {
	return !q.HasNext()
}

// Clear drops every queued element. The queue stays usable.
func (q *Queue) Clear() {
	q.list.Clear()
}

// Values returns the queued elements from head to tail. It returns nil when
// the backing cannot enumerate its elements.
func (q *Queue) Values() []interface{} {
	if v, ok := q.list.(interface{ Values() []interface{} }); ok {
		return v.Values()
	}
	return nil
}

func (q *Queue) String() string {
	var b strings.Builder
	b.WriteString("Queue\n")
	for i, v := range q.Values() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", v)
	}
	return b.String()
}
