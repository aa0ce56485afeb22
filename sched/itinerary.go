package sched

import "fmt"

// Unit names a functional execution resource of the modeled pipeline.
type Unit uint8

// Functional units.
const (
	UnitALU Unit = iota
	UnitMem
	UnitMulDiv
	UnitBranch
	UnitFPU
)

var unitNames = map[Unit]string{
	UnitALU:    "ALU",
	UnitMem:    "MEM",
	UnitMulDiv: "MULDIV",
	UnitBranch: "BRANCH",
	UnitFPU:    "FPU",
}

func (u Unit) String() string {
	if n, ok := unitNames[u]; ok {
		return n
	}
	return "invalid"
}

// Stage is one occupancy step of an itinerary: the instruction holds Unit
// for Cycles consecutive cycles. Cycles is always positive in a valid
// table.
type Stage struct {
	Unit   Unit
	Cycles uint32
}

func (s Stage) String() string {
	return fmt.Sprintf("(%s,%d)", s.Unit, s.Cycles)
}

// Table holds the per-class occupancy stages for one processor variant.
// Tables are built once from the variant's parameters and are read-only
// afterwards; validation state lives on the owning Model.
type Table struct {
	stages map[Class][]Stage
}

// Stages returns the occupancy stages for a class, or nil when the class
// has no itinerary in this table.
func (t *Table) Stages(c Class) []Stage {
	return t.stages[c]
}

// buildTable constructs the itinerary table for a variant from its tuning
// parameters. Memory-touching classes (LOAD, STORE, ALU_MEM, and the
// stack pop in RETURN) take their memory-stage cycle count from
// p.LoadLatency; every other count is fixed per variant kind.
func buildTable(kind tableKind, p Params) *Table {
	ll := p.LoadLatency

	t := &Table{stages: make(map[Class][]Stage, int(numClasses))}

	switch kind {
	case tableUnified:
		// Single-stage model: each class occupies its dominant unit
		// once. This is the conservative shape used for the generic
		// variant and the 68030.
		t.stages[ClassALU] = []Stage{{UnitALU, 1}}
		t.stages[ClassALUMem] = []Stage{{UnitMem, ll}}
		t.stages[ClassLoad] = []Stage{{UnitMem, ll}}
		t.stages[ClassStore] = []Stage{{UnitMem, ll}}
		t.stages[ClassShift] = []Stage{{UnitALU, 2}}
		t.stages[ClassMultiply] = []Stage{{UnitMulDiv, 28}}
		t.stages[ClassDivide] = []Stage{{UnitMulDiv, 90}}
		t.stages[ClassBranch] = []Stage{{UnitBranch, 2}}
		t.stages[ClassCall] = []Stage{{UnitBranch, 3}}
		t.stages[ClassReturn] = []Stage{{UnitBranch, 3}}
		t.stages[ClassFPU] = []Stage{{UnitFPU, 35}}
		t.stages[ClassDefault] = []Stage{{UnitALU, 1}}

	case tableSplit:
		// Split model for the 68040/68060 pipelines: memory-touching
		// ALU work occupies the ALU and the memory port as separate
		// stages, and control flow that pops the stack does the same.
		t.stages[ClassALU] = []Stage{{UnitALU, 1}}
		t.stages[ClassALUMem] = []Stage{{UnitALU, 1}, {UnitMem, ll}}
		t.stages[ClassLoad] = []Stage{{UnitMem, ll}}
		t.stages[ClassStore] = []Stage{{UnitMem, ll}}
		t.stages[ClassShift] = []Stage{{UnitALU, 1}}
		t.stages[ClassMultiply] = []Stage{{UnitMulDiv, 16}}
		t.stages[ClassDivide] = []Stage{{UnitMulDiv, 38}}
		t.stages[ClassBranch] = []Stage{{UnitBranch, 1}}
		t.stages[ClassCall] = []Stage{{UnitBranch, 1}, {UnitMem, ll}}
		t.stages[ClassReturn] = []Stage{{UnitMem, ll}, {UnitBranch, 1}}
		t.stages[ClassFPU] = []Stage{{UnitFPU, 3}}
		t.stages[ClassDefault] = []Stage{{UnitALU, 1}}
	}

	return t
}

// tableKind selects which itinerary shape a variant uses.
type tableKind uint8

const (
	tableUnified tableKind = iota
	tableSplit
)
