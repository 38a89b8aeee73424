package util

import (
	"testing"
)

func TestPriorityQueueOrder(t *testing.T) {
	heap := NewPriorityQueue[string, float64](10)
	heap.Enqueue("c", 3)
	heap.Enqueue("a", 1)
	heap.Enqueue("b", 2)

	want := []string{"a", "b", "c"}
	for _, w := range want {
		item, ok := heap.Dequeue()
		if !ok {
			t.Fatalf("queue exhausted early")
		}
		if item != w {
			t.Errorf("Dequeue = %v; want %v", item, w)
		}
	}
	if _, ok := heap.Dequeue(); ok {
		t.Errorf("expected empty queue")
	}
}

func TestPriorityQueueTieBreak(t *testing.T) {
	// equal priorities leave the queue in insertion order
	heap := NewPriorityQueue[int, int](10)
	heap.Enqueue(1, 5)
	heap.Enqueue(2, 5)
	heap.Enqueue(3, 5)
	heap.Enqueue(4, 1)

	first, _ := heap.Dequeue()
	if first != 4 {
		t.Errorf("Dequeue = %v; want 4", first)
	}
	for _, w := range []int{1, 2, 3} {
		item, _ := heap.Dequeue()
		if item != w {
			t.Errorf("Dequeue = %v; want %v", item, w)
		}
	}
}
