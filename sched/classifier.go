package sched

import (
	"github.com/nxtools/m68kemit/insts"
)

// Classify maps one instruction template to its itinerary class. It is a
// pure function of the template's op and operand shape, and is total over
// the shipped template table once a model validates Complete.
//
// When a template could belong to two classes, the slower resource wins:
// an ALU or shift op with a memory operand classifies ALU_MEM, never ALU.
// Under-counting latency makes schedulers emit invalid orderings;
// over-counting only costs cycles.
func Classify(t insts.Template) Class {
	base := baseClass(t.Op)

	switch base {
	case ClassALU, ClassShift:
		if t.Shape.TouchesMemory() {
			return ClassALUMem
		}
	case ClassLoad:
		// Data movement splits on direction: loads read memory, stores
		// write it. A memory-to-memory move ends on the write port.
		if t.Shape.WritesMemory() {
			return ClassStore
		}
		if !t.Shape.ReadsMemory() {
			return ClassALU
		}
	}
	return base
}

// baseClass gives the class implied by the op alone, before the operand
// shape is consulted. Ops missing here come back ClassNone and fail
// validation by name.
func baseClass(op insts.Op) Class {
	switch op {
	case insts.OpMOVE, insts.OpMOVEA, insts.OpMOVEM:
		return ClassLoad

	case insts.OpMOVEQ, insts.OpEXG, insts.OpSWAP,
		insts.OpADD, insts.OpADDA, insts.OpADDI, insts.OpADDQ,
		insts.OpSUB, insts.OpSUBA, insts.OpSUBI, insts.OpSUBQ,
		insts.OpNEG, insts.OpEXT,
		insts.OpCMP, insts.OpCMPA, insts.OpCMPI, insts.OpTST, insts.OpCLR,
		insts.OpAND, insts.OpANDI, insts.OpOR, insts.OpORI,
		insts.OpEOR, insts.OpEORI, insts.OpNOT,
		insts.OpBTST, insts.OpBSET, insts.OpBCLR, insts.OpBCHG, insts.OpTAS,
		insts.OpScc, insts.OpCHK:
		return ClassALU

	case insts.OpLEA, insts.OpPEA:
		// Effective-address computation only; no data access, but PEA
		// pushes the result, so shape-based refinement still applies.
		return ClassALU

	case insts.OpLSL, insts.OpLSR, insts.OpASL, insts.OpASR,
		insts.OpROL, insts.OpROR:
		return ClassShift

	case insts.OpMULS, insts.OpMULU:
		return ClassMultiply

	case insts.OpDIVS, insts.OpDIVU:
		return ClassDivide

	case insts.OpBRA, insts.OpBcc, insts.OpDBcc, insts.OpJMP:
		return ClassBranch

	case insts.OpBSR, insts.OpJSR:
		return ClassCall

	case insts.OpRTS, insts.OpRTE:
		return ClassReturn

	case insts.OpFMOVE, insts.OpFADD, insts.OpFSUB, insts.OpFMUL,
		insts.OpFDIV, insts.OpFCMP, insts.OpFNEG, insts.OpFABS:
		return ClassFPU

	case insts.OpNOP, insts.OpLINK, insts.OpUNLK, insts.OpTRAP:
		return ClassDefault

	default:
		return ClassNone
	}
}
