package harness

import (
	"fmt"

	"linear_collections/src/collections"
)

// outcome is what a single step observed: the returned value, if any, and
// the size right after the step.
type outcome struct {
	value   int
	present bool
	size    int
}

func (o outcome) String() string {
	if !o.present {
		return fmt.Sprintf("absent (size %d)", o.size)
	}
	return fmt.Sprintf("%d (size %d)", o.value, o.size)
}

// target applies validated steps to a container.
type target interface {
	apply(Step) outcome
}

type stackTarget struct {
	stack collections.StackADT[int]
}

func (t stackTarget) apply(st Step) outcome {
	var o outcome
	switch st.Op {
	case OpPush:
		t.stack.Push(*st.Value)
	case OpPop:
		o.value, o.present = t.stack.Pop()
	case OpPeek:
		o.value, o.present = t.stack.Peek()
	case OpSize:
		o.value, o.present = t.stack.Size(), true
	}
	o.size = t.stack.Size()
	return o
}

type dequeTarget struct {
	deque collections.DequeADT[int]
}

func (t dequeTarget) apply(st Step) outcome {
	var o outcome
	switch st.Op {
	case OpAddFront:
		t.deque.AddFront(*st.Value)
	case OpAddTail:
		t.deque.AddTail(*st.Value)
	case OpRemoveFront:
		o.value, o.present = t.deque.RemoveFront()
	case OpRemoveTail:
		o.value, o.present = t.deque.RemoveTail()
	case OpSize:
		o.value, o.present = t.deque.Size(), true
	}
	o.size = t.deque.Size()
	return o
}

// newTargets returns a fresh container of the kind and its reference model.
func newTargets(kind Kind) (subject target, model target, err error) {
	switch kind {
	case KindStack:
		return stackTarget{collections.NewStack[int]()}, stackTarget{NewStackModel()}, nil
	case KindDeque:
		return dequeTarget{collections.NewDeque[int]()}, dequeTarget{NewDequeModel()}, nil
	}
	return nil, nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}
