// Package sched provides the instruction-scheduling model for the m68k
// backend: the itinerary class of every instruction template, the
// functional-unit occupancy of every class under each processor variant,
// and the validator that proves the model total before a scheduler may
// consume it.
package sched

// Class is the itinerary class of an instruction template. Every template
// in the target description maps to exactly one class; ClassNone marks a
// template the classifier does not cover and is what validation hunts for.
type Class uint8

// Itinerary classes.
const (
	ClassNone Class = iota
	ClassALU
	ClassALUMem
	ClassLoad
	ClassStore
	ClassShift
	ClassMultiply
	ClassDivide
	ClassBranch
	ClassCall
	ClassReturn
	ClassFPU
	ClassDefault

	numClasses
)

var classNames = map[Class]string{
	ClassNone:     "None",
	ClassALU:      "ALU",
	ClassALUMem:   "ALU_MEM",
	ClassLoad:     "LOAD",
	ClassStore:    "STORE",
	ClassShift:    "SHIFT",
	ClassMultiply: "MULTIPLY",
	ClassDivide:   "DIVIDE",
	ClassBranch:   "BRANCH",
	ClassCall:     "CALL",
	ClassReturn:   "RETURN",
	ClassFPU:      "FPU",
	ClassDefault:  "DEFAULT",
}

func (c Class) String() string {
	if n, ok := classNames[c]; ok {
		return n
	}
	return "invalid"
}

// Classes returns every real itinerary class, in declaration order.
// ClassNone is excluded: it is the absence of a classification.
func Classes() []Class {
	cs := make([]Class, 0, numClasses-1)
	for c := ClassALU; c < numClasses; c++ {
		cs = append(cs, c)
	}
	return cs
}
