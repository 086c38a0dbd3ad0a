package collections

// DequeADT is the abstract double-ended container contract.
//
// The front is index 0 and the tail is the last index.
type DequeADT[T any] interface {
	// AddFront inserts value before the current front.
	AddFront(value T)

	// AddTail appends value after the current tail.
	AddTail(value T)

	// RemoveFront removes the front element and returns it.
	//
	// If the deque is empty, it returns (zero-value, false) and the deque is not modified.
	RemoveFront() (T, bool)

	// RemoveTail removes the tail element and returns it.
	//
	// If the deque is empty, it returns (zero-value, false) and the deque is not modified.
	RemoveTail() (T, bool)

	// Size returns the number of elements held.
	Size() int
}

// Deque is a DequeADT backed by a doubly linked list.
//
// The zero value is an empty deque ready to use.
type Deque[T any] struct {
	list linkedList[T]
}

var _ DequeADT[int] = (*Deque[int])(nil)

func NewDeque[T any]() *Deque[T] {
	return &Deque[T]{}
}

func (d *Deque[T]) AddFront(e T) {
	d.list.pushFront(e)
}

func (d *Deque[T]) AddTail(e T) {
	d.list.pushBack(e)
}

func (d *Deque[T]) RemoveFront() (T, bool) {
	return d.list.popFront()
}

func (d *Deque[T]) RemoveTail() (T, bool) {
	return d.list.popBack()
}

func (d *Deque[T]) Size() int {
	return d.list.len()
}

// Items returns a copy of the elements from front to tail.
func (d *Deque[T]) Items() []T {
	return d.list.values()
}

func (d *Deque[T]) String() string {
	return format("Deque", d.Items())
}
