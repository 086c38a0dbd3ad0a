package harness

import (
	"fmt"

	"go.uber.org/zap"
)

// Failure describes a step whose outcome was wrong.
type Failure struct {
	Step   int    `yaml:"step"`
	Op     Op     `yaml:"op"`
	Reason string `yaml:"reason"`
}

func (f Failure) String() string {
	return fmt.Sprintf("step %d (%s): %s", f.Step, f.Op, f.Reason)
}

type Report struct {
	Scenario string    `yaml:"scenario"`
	Kind     Kind      `yaml:"kind"`
	Steps    int       `yaml:"steps"`
	Failures []Failure `yaml:"failures,omitempty"`
}

func (r *Report) OK() bool {
	return len(r.Failures) == 0
}

// Replay plays the scenario against a new container of its kind and, in
// lockstep, against the reference model.
//
// A step fails when its declared expectation is not met, or when the
// container and the model observe different outcomes.
// The returned error is non-nil only when the scenario is invalid.
func Replay(sc *Scenario, logger *zap.Logger) (*Report, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	subject, model, err := newTargets(sc.Kind)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("scenario", sc.Name), zap.String("kind", string(sc.Kind)))

	report := &Report{Scenario: sc.Name, Kind: sc.Kind, Steps: len(sc.Steps)}
	for i, st := range sc.Steps {
		got := subject.apply(st)
		want := model.apply(st)
		logger.Debug(
			"step",
			zap.Int("index", i),
			zap.String("op", string(st.Op)),
			zap.Stringer("outcome", got),
		)

		for _, reason := range check(st, got, want) {
			report.Failures = append(report.Failures, Failure{Step: i, Op: st.Op, Reason: reason})
		}
	}
	return report, nil
}

func check(st Step, got, want outcome) []string {
	var reasons []string
	if st.Empty && got.present {
		reasons = append(reasons, fmt.Sprintf("expected no value, got %d", got.value))
	}
	if st.Expect != nil {
		if !got.present {
			reasons = append(reasons, fmt.Sprintf("expected %d, got no value", *st.Expect))
		} else if got.value != *st.Expect {
			reasons = append(reasons, fmt.Sprintf("expected %d, got %d", *st.Expect, got.value))
		}
	}
	if got != want {
		reasons = append(reasons, fmt.Sprintf("diverges from model: got %s, model %s", got, want))
	}
	return reasons
}
