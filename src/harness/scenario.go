package harness

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownKind            = errors.New("unknown container kind")
	ErrUnknownOp              = errors.New("unknown operation")
	ErrMissingValue           = errors.New("operation requires a value")
	ErrUnexpectedValue        = errors.New("operation takes no value")
	ErrConflictingExpectation = errors.New("conflicting expectation")
)

// Kind names the container a scenario is played against.
type Kind string

const (
	KindStack Kind = "stack"
	KindDeque Kind = "deque"
)

type Op string

const (
	OpPush        Op = "push"
	OpPop         Op = "pop"
	OpPeek        Op = "peek"
	OpAddFront    Op = "addFront"
	OpAddTail     Op = "addTail"
	OpRemoveFront Op = "removeFront"
	OpRemoveTail  Op = "removeTail"
	OpSize        Op = "size"
)

var opsByKind = map[Kind][]Op{
	KindStack: {OpPush, OpPop, OpPeek, OpSize},
	KindDeque: {OpAddFront, OpAddTail, OpRemoveFront, OpRemoveTail, OpSize},
}

// Ops returns the operations allowed for the kind, or nil for an unknown kind.
func (k Kind) Ops() []Op {
	return slices.Clone(opsByKind[k])
}

func (k Kind) allows(op Op) bool {
	return slices.Contains(opsByKind[k], op)
}

// adds reports whether op inserts a value.
func (op Op) adds() bool {
	switch op {
	case OpPush, OpAddFront, OpAddTail:
		return true
	}
	return false
}

// Step is one operation of a scenario.
type Step struct {
	Op Op `yaml:"op"`

	// argument of push, addFront and addTail
	Value *int `yaml:"value,omitempty"`

	// expected returned value, or the expected size for the size operation
	Expect *int `yaml:"expect,omitempty"`

	// expects the operation to find the container empty
	Empty bool `yaml:"empty,omitempty"`
}

// Scenario is a scripted sequence of operations against one container.
type Scenario struct {
	Name  string `yaml:"name"`
	Kind  Kind   `yaml:"kind"`
	Steps []Step `yaml:"steps"`
}

func (sc *Scenario) Validate() error {
	if _, ok := opsByKind[sc.Kind]; !ok {
		return fmt.Errorf("scenario %q: %w: %q", sc.Name, ErrUnknownKind, sc.Kind)
	}
	for i, st := range sc.Steps {
		if err := st.validate(sc.Kind); err != nil {
			return fmt.Errorf("scenario %q: step %d: %w", sc.Name, i, err)
		}
	}
	return nil
}

func (st Step) validate(kind Kind) error {
	if !kind.allows(st.Op) {
		return fmt.Errorf("%w: %q for %s", ErrUnknownOp, st.Op, kind)
	}
	if st.Op.adds() {
		if st.Value == nil {
			return fmt.Errorf("%w: %s", ErrMissingValue, st.Op)
		}
		if st.Expect != nil || st.Empty {
			return fmt.Errorf("%w: %s returns nothing", ErrConflictingExpectation, st.Op)
		}
		return nil
	}
	if st.Value != nil {
		return fmt.Errorf("%w: %s", ErrUnexpectedValue, st.Op)
	}
	if st.Expect != nil && st.Empty {
		return fmt.Errorf("%w: both expect and empty are set", ErrConflictingExpectation)
	}
	if st.Op == OpSize && st.Empty {
		return fmt.Errorf("%w: size always has a value", ErrConflictingExpectation)
	}
	return nil
}

// LoadScenario decodes a YAML scenario and validates it.
func LoadScenario(r io.Reader) (*Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	sc := new(Scenario)
	if err := dec.Decode(sc); err != nil {
		return nil, fmt.Errorf("decode scenario: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return sc, nil
}

func LoadScenarioFile(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sc, err := LoadScenario(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// Write encodes the scenario as YAML.
func (sc *Scenario) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(sc); err != nil {
		return err
	}
	return enc.Close()
}
