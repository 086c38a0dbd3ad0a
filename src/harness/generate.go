package harness

import "fmt"

// Generate builds a random valid scenario of the given length.
//
// Operations are drawn uniformly from the kind's operations and added values
// from [0, 100]. Expectations are taken from the reference model, so every
// conforming container passes the result. Removals that hit an empty model
// become `empty: true` steps.
func Generate(rng *Rand, kind Kind, name string, steps int) (*Scenario, error) {
	ops := kind.Ops()
	_, model, err := newTargets(kind)
	if err != nil {
		return nil, err
	}
	if steps < 0 {
		return nil, fmt.Errorf("negative step count: %d", steps)
	}

	sc := &Scenario{Name: name, Kind: kind, Steps: make([]Step, 0, steps)}
	for range steps {
		st := Step{Op: ops[rng.Count(0, len(ops))]}
		if st.Op.adds() {
			v := rng.Int(0, 100)
			st.Value = &v
		}

		o := model.apply(st)
		if !st.Op.adds() {
			if o.present {
				v := o.value
				st.Expect = &v
			} else {
				st.Empty = true
			}
		}
		sc.Steps = append(sc.Steps, st)
	}
	return sc, nil
}
