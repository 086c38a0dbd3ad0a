package collections

import (
	"fmt"
	"strings"
)

// StackADT is the abstract last-in-first-out contract.
type StackADT[T any] interface {
	// Push places value on top of the stack.
	Push(value T)

	// Pop removes the top element and returns it.
	//
	// If the stack is empty, it returns (zero-value, false) and the stack is not modified.
	Pop() (T, bool)

	// Peek returns the top element without removing it.
	//
	// If the stack is empty, it returns (zero-value, false).
	Peek() (T, bool)

	// Size returns the number of elements held.
	Size() int
}

// Stack is a StackADT backed by a linked list.
//
// The zero value is an empty stack ready to use.
type Stack[T any] struct {
	list linkedList[T]
}

var _ StackADT[int] = (*Stack[int])(nil)

func NewStack[T any]() *Stack[T] {
	return &Stack[T]{}
}

func (s *Stack[T]) Push(e T) {
	s.list.pushFront(e)
}

func (s *Stack[T]) Pop() (T, bool) {
	return s.list.popFront()
}

func (s *Stack[T]) Peek() (T, bool) {
	return s.list.front()
}

func (s *Stack[T]) Size() int {
	return s.list.len()
}

// Items returns a copy of the elements from bottom to top.
// The last element is the one Peek returns.
func (s *Stack[T]) Items() []T {
	return s.list.reversed()
}

func (s *Stack[T]) String() string {
	return format("Stack", s.Items())
}

func format[T any](name string, items []T) string {
	b := new(strings.Builder)
	b.WriteString(name)
	b.WriteRune('[')
	for i, v := range items {
		if i > 0 {
			b.WriteRune(' ')
		}
		fmt.Fprint(b, v)
	}
	b.WriteRune(']')
	return b.String()
}
