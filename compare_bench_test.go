package linkedlist

import (
	"container/list"
	"fmt"
	"testing"

	"github.com/emirpasic/gods/lists/singlylinkedlist"

	"github.com/metailurini/linkedlist/alloc"
)

// BenchmarkCompareFIFO pushes at the back and pops from the front, the
// access pattern the queue package puts on a list.
func BenchmarkCompareFIFO(b *testing.B) {
	depths := []int{1, 64, 1024}

	for _, depth := range depths {
		b.Run(fmt.Sprintf("LinkedList_D%d", depth), func(b *testing.B) {
			l, _ := New(WithAllocator(alloc.NewPool[Node]()))
			for i := range depth {
				l.InsertEnd(uint32(i))
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				l.InsertEnd(uint32(i))
				l.RemoveFront()
			}
		})

		b.Run(fmt.Sprintf("Gods_D%d", depth), func(b *testing.B) {
			l := singlylinkedlist.New()
			for i := range depth {
				l.Append(uint32(i))
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				l.Append(uint32(i))
				l.Remove(0)
			}
		})

		b.Run(fmt.Sprintf("ContainerList_D%d", depth), func(b *testing.B) {
			l := list.New()
			for i := range depth {
				l.PushBack(uint32(i))
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				l.PushBack(uint32(i))
				l.Remove(l.Front())
			}
		})
	}
}
