package util

import (
	"golang.org/x/exp/constraints"
)

//*******************************************
// priority queue
//*******************************************

type pq_entry[T any, P constraints.Ordered] struct {
	item     T
	priority P
	seq      int64
}

// Binary-heap priority queue.
//
// Entries with equal priority are dequeued in insertion order.
type PriorityQueue[T any, P constraints.Ordered] struct {
	entries List[pq_entry[T, P]]
	count   int64
}

func NewPriorityQueue[T any, P constraints.Ordered](cap int) PriorityQueue[T, P] {
	return PriorityQueue[T, P]{
		entries: NewList[pq_entry[T, P]](cap),
	}
}

func (self *PriorityQueue[T, P]) Length() int {
	return self.entries.Length()
}

func (self *PriorityQueue[T, P]) Enqueue(item T, priority P) {
	self.count += 1
	self.entries.Add(pq_entry[T, P]{item: item, priority: priority, seq: self.count})
	index := self.entries.Length() - 1
	for index > 0 {
		parent := (index - 1) / 2
		if !self.less(index, parent) {
			break
		}
		self.entries[index], self.entries[parent] = self.entries[parent], self.entries[index]
		index = parent
	}
}

func (self *PriorityQueue[T, P]) Dequeue() (T, bool) {
	if self.entries.Length() == 0 {
		var t T
		return t, false
	}
	root := self.entries[0]
	last := self.entries.Length() - 1
	self.entries[0] = self.entries[last]
	self.entries = self.entries[:last]
	index := 0
	for {
		left := 2*index + 1
		right := 2*index + 2
		smallest := index
		if left < self.entries.Length() && self.less(left, smallest) {
			smallest = left
		}
		if right < self.entries.Length() && self.less(right, smallest) {
			smallest = right
		}
		if smallest == index {
			break
		}
		self.entries[index], self.entries[smallest] = self.entries[smallest], self.entries[index]
		index = smallest
	}
	return root.item, true
}

func (self *PriorityQueue[T, P]) less(a, b int) bool {
	ea := self.entries[a]
	eb := self.entries[b]
	if ea.priority != eb.priority {
		return ea.priority < eb.priority
	}
	return ea.seq < eb.seq
}
