package collections

type linkedListNode[T any] struct {
	value T
	prev  *linkedListNode[T]
	next  *linkedListNode[T]
}

// linkedList is the storage shared by Stack and Deque.
// The zero value is an empty list.
type linkedList[T any] struct {
	head *linkedListNode[T]
	tail *linkedListNode[T]
	size int
}

func (l *linkedList[T]) len() int {
	return l.size
}

func (l *linkedList[T]) pushFront(e T) {
	newNode := &linkedListNode[T]{value: e}
	if l.size == 0 {
		l.head = newNode
		l.tail = newNode
	} else {
		newNode.next = l.head
		l.head.prev = newNode
		l.head = newNode
	}
	l.size++
}

func (l *linkedList[T]) pushBack(e T) {
	newNode := &linkedListNode[T]{value: e}
	if l.size == 0 {
		l.head = newNode
		l.tail = newNode
	} else {
		newNode.prev = l.tail
		l.tail.next = newNode
		l.tail = newNode
	}
	l.size++
}

func (l *linkedList[T]) popFront() (T, bool) {
	if l.size == 0 {
		var zero T
		return zero, false
	}
	node := l.head
	l.head = node.next
	l.size--
	if l.size == 0 {
		l.tail = nil
	} else {
		l.head.prev = nil
	}
	node.next = nil
	return node.value, true
}

func (l *linkedList[T]) popBack() (T, bool) {
	if l.size == 0 {
		var zero T
		return zero, false
	}
	node := l.tail
	l.tail = node.prev
	l.size--
	if l.size == 0 {
		l.head = nil
	} else {
		l.tail.next = nil
	}
	node.prev = nil
	return node.value, true
}

func (l *linkedList[T]) front() (T, bool) {
	if l.size == 0 {
		var zero T
		return zero, false
	}
	return l.head.value, true
}

// values returns the elements from head to tail in a new slice.
func (l *linkedList[T]) values() []T {
	vs := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		vs = append(vs, n.value)
	}
	return vs
}

// reversed returns the elements from tail to head in a new slice.
func (l *linkedList[T]) reversed() []T {
	vs := make([]T, 0, l.size)
	for n := l.tail; n != nil; n = n.prev {
		vs = append(vs, n.value)
	}
	return vs
}
