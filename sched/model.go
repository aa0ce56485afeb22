package sched

import (
	"fmt"

	"github.com/nxtools/m68kemit/insts"
)

// State is the validation state of a processor model's scheduling table.
type State uint8

// Validation states. A model moves Unvalidated -> Validating ->
// Complete or Rejected, exactly once.
const (
	StateUnvalidated State = iota
	StateValidating
	StateComplete
	StateRejected
)

var stateNames = map[State]string{
	StateUnvalidated: "Unvalidated",
	StateValidating:  "Validating",
	StateComplete:    "Complete",
	StateRejected:    "Rejected",
}

func (s State) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return "invalid"
}

// Model is one processor variant: its tuning parameters and the itinerary
// table built from them. A model must validate Complete before any
// instruction stream may be scheduled against it.
type Model struct {
	name   string
	params Params
	table  *Table
	state  State
}

// variant is one shipped processor definition.
type variant struct {
	kind   tableKind
	params Params
}

// Shipped variants. The generic model is the conservative default used
// when no -mcpu is given; the named ones match the 680x0 parts the
// target supports.
var variants = map[string]variant{
	"generic": {tableUnified, Params{IssueWidth: 1, LoadLatency: 4, MispredictPenalty: 4}},
	"68030":   {tableUnified, Params{IssueWidth: 1, LoadLatency: 3, MispredictPenalty: 3}},
	"68040":   {tableSplit, Params{IssueWidth: 1, LoadLatency: 2, MispredictPenalty: 5}},
	"68060":   {tableSplit, Params{IssueWidth: 2, LoadLatency: 2, MispredictPenalty: 7}},
}

// ModelNames returns the shipped variant names in a fixed order.
func ModelNames() []string {
	return []string{"generic", "68030", "68040", "68060"}
}

// NewModel builds the model for a shipped variant name.
func NewModel(name string) (*Model, error) {
	v, ok := variants[name]
	if !ok {
		return nil, fmt.Errorf("unknown processor model %q", name)
	}
	return newModel(name, v.kind, v.params)
}

// NewModelWithParams builds a shipped variant with overridden tuning
// parameters (typically loaded via LoadParams).
func NewModelWithParams(name string, p Params) (*Model, error) {
	v, ok := variants[name]
	if !ok {
		return nil, fmt.Errorf("unknown processor model %q", name)
	}
	return newModel(name, v.kind, p)
}

func newModel(name string, kind tableKind, p Params) (*Model, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("model %s: %w", name, err)
	}
	return &Model{
		name:   name,
		params: p,
		table:  buildTable(kind, p),
		state:  StateUnvalidated,
	}, nil
}

// Name returns the variant name.
func (m *Model) Name() string { return m.name }

// Params returns the variant's tuning parameters.
func (m *Model) Params() Params { return m.params }

// State returns the model's validation state.
func (m *Model) State() State { return m.state }

// Ready reports whether the model may be handed to a scheduler.
func (m *Model) Ready() bool { return m.state == StateComplete }

// Itinerary returns the occupancy stages for an instruction template.
// Calling it on a model that has not validated Complete is a programming
// error in the toolchain build, not a recoverable condition, and panics.
func (m *Model) Itinerary(t insts.Template) []Stage {
	if m.state != StateComplete {
		panic(fmt.Sprintf(
			"scheduling model %s is %s, not Complete; validate before scheduling",
			m.name, m.state))
	}
	return m.table.Stages(Classify(t))
}

// ClassItinerary returns the occupancy stages for a class directly.
// Same completeness requirement as Itinerary.
func (m *Model) ClassItinerary(c Class) []Stage {
	if m.state != StateComplete {
		panic(fmt.Sprintf(
			"scheduling model %s is %s, not Complete; validate before scheduling",
			m.name, m.state))
	}
	return m.table.Stages(c)
}
