package sched

import (
	"fmt"
	"strings"

	"github.com/nxtools/m68kemit/insts"
)

// ModelIncompleteError reports the templates a scheduling model fails to
// cover. It is build-time fatal: the toolchain must not compile anything
// against a rejected model.
type ModelIncompleteError struct {
	Model   string
	Missing []string
}

func (e *ModelIncompleteError) Error() string {
	return fmt.Sprintf(
		"scheduling model %s is incomplete: %d unclassified template(s): %s",
		e.Model, len(e.Missing), strings.Join(e.Missing, ", "))
}

// Validate proves the model total over the given template set and moves
// it to Complete, or to Rejected with every offending template named.
// It also checks that each class the templates map to has at least one
// occupancy stage with a positive cycle count.
//
// Validate runs once per model; re-validating a decided model is a
// programming error and panics.
func Validate(m *Model, templates []insts.Template) error {
	if m.state != StateUnvalidated {
		panic(fmt.Sprintf("model %s already validated (%s)", m.name, m.state))
	}
	m.state = StateValidating

	var missing []string
	for _, t := range templates {
		c := Classify(t)
		if c == ClassNone {
			missing = append(missing, t.Name)
			continue
		}
		if !stagesValid(m.table.Stages(c)) {
			missing = append(missing, t.Name)
		}
	}

	if len(missing) > 0 {
		m.state = StateRejected
		return &ModelIncompleteError{Model: m.name, Missing: missing}
	}

	m.state = StateComplete
	return nil
}

func stagesValid(stages []Stage) bool {
	if len(stages) == 0 {
		return false
	}
	for _, s := range stages {
		if s.Cycles == 0 {
			return false
		}
	}
	return true
}
