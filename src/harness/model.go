package harness

import (
	"linear_collections/src/collections"

	"golang.org/x/exp/slices"
	"gopkg.in/dnaeon/go-priorityqueue.v1"
)

// StackModel is a reference LIFO implementation used as an oracle.
//
// Each pushed value gets an increasing sequence number, and the queue hands
// back the largest one first.
type StackModel struct {
	order  *priorityqueue.PriorityQueue[int, int64]
	values map[int]int
	seq    int
}

var _ collections.StackADT[int] = (*StackModel)(nil)

func NewStackModel() *StackModel {
	return &StackModel{
		order:  priorityqueue.New[int, int64](priorityqueue.MinHeap),
		values: map[int]int{},
	}
}

func (m *StackModel) Push(v int) {
	m.seq++
	m.values[m.seq] = v
	m.order.Put(m.seq, -int64(m.seq))
}

func (m *StackModel) Pop() (int, bool) {
	if m.order.Len() == 0 {
		return 0, false
	}
	item := m.order.Get()
	v := m.values[item.Value]
	delete(m.values, item.Value)
	return v, true
}

func (m *StackModel) Peek() (int, bool) {
	if m.order.Len() == 0 {
		return 0, false
	}
	item := m.order.Get()
	m.order.Put(item.Value, item.Priority)
	return m.values[item.Value], true
}

func (m *StackModel) Size() int {
	return m.order.Len()
}

// DequeModel is a reference double-ended implementation used as an oracle.
type DequeModel struct {
	items []int
}

var _ collections.DequeADT[int] = (*DequeModel)(nil)

func NewDequeModel() *DequeModel {
	return &DequeModel{items: []int{}}
}

func (m *DequeModel) AddFront(v int) {
	m.items = slices.Insert(m.items, 0, v)
}

func (m *DequeModel) AddTail(v int) {
	m.items = append(m.items, v)
}

func (m *DequeModel) RemoveFront() (int, bool) {
	if len(m.items) == 0 {
		return 0, false
	}
	v := m.items[0]
	m.items = slices.Delete(m.items, 0, 1)
	return v, true
}

func (m *DequeModel) RemoveTail() (int, bool) {
	if len(m.items) == 0 {
		return 0, false
	}
	last := len(m.items) - 1
	v := m.items[last]
	m.items = slices.Delete(m.items, last, last+1)
	return v, true
}

func (m *DequeModel) Size() int {
	return len(m.items)
}

// Items returns a copy of the modelled elements from front to tail.
func (m *DequeModel) Items() []int {
	return slices.Clone(m.items)
}
