// Package insts describes the m68k instruction set at the template level.
//
// A template is one parameterized instruction pattern (opcode, operand
// shape, operation width); all concrete encodings produced from a template
// share its scheduling classification. The table returned by Templates is
// built once at toolchain-build time and treated as read-only afterwards.
package insts

// Op identifies an m68k operation mnemonic.
type Op uint16

// m68k operations.
const (
	OpUnknown Op = iota

	// Data movement
	OpMOVE
	OpMOVEA
	OpMOVEQ
	OpMOVEM
	OpLEA
	OpPEA
	OpEXG
	OpSWAP

	// Integer arithmetic
	OpADD
	OpADDA
	OpADDI
	OpADDQ
	OpSUB
	OpSUBA
	OpSUBI
	OpSUBQ
	OpNEG
	OpEXT
	OpCMP
	OpCMPA
	OpCMPI
	OpTST
	OpCLR

	// Logic
	OpAND
	OpANDI
	OpOR
	OpORI
	OpEOR
	OpEORI
	OpNOT

	// Shifts and rotates
	OpLSL
	OpLSR
	OpASL
	OpASR
	OpROL
	OpROR

	// Bit manipulation
	OpBTST
	OpBSET
	OpBCLR
	OpBCHG
	OpTAS

	// Multiply / divide
	OpMULS
	OpMULU
	OpDIVS
	OpDIVU

	// Control flow
	OpBRA
	OpBcc
	OpDBcc
	OpJMP
	OpBSR
	OpJSR
	OpRTS
	OpRTE
	OpScc

	// Stack frames and misc
	OpLINK
	OpUNLK
	OpNOP
	OpTRAP
	OpCHK

	// 68881/68882 floating point
	OpFMOVE
	OpFADD
	OpFSUB
	OpFMUL
	OpFDIV
	OpFCMP
	OpFNEG
	OpFABS
)

// Width is the operation size in bytes (the .b/.w/.l suffix).
type Width uint8

// Operation widths. WidthNone marks operations without a size suffix
// (RTS, NOP, LEA and friends).
const (
	WidthNone Width = 0
	WidthByte Width = 1
	WidthWord Width = 2
	WidthLong Width = 4
)

// Shape describes a template's operand pattern. The scheduling classifier
// only cares whether a shape reads or writes memory, so shapes are kept
// coarse: register, immediate, memory effective address, and label.
type Shape uint8

// Operand shapes.
const (
	ShapeNone   Shape = iota
	ShapeReg          // single register operand
	ShapeImm          // single immediate operand
	ShapeMem          // single memory effective-address operand
	ShapeRegReg       // register to register
	ShapeImmReg       // immediate to register
	ShapeRegMem       // register source, memory destination
	ShapeMemReg       // memory source, register destination
	ShapeImmMem       // immediate source, memory destination
	ShapeMemMem       // memory to memory (MOVE allows this)
	ShapeLabel        // branch or call target
)

var shapeNames = map[Shape]string{
	ShapeNone:   "none",
	ShapeReg:    "r",
	ShapeImm:    "i",
	ShapeMem:    "m",
	ShapeRegReg: "rr",
	ShapeImmReg: "ir",
	ShapeRegMem: "rm",
	ShapeMemReg: "mr",
	ShapeImmMem: "im",
	ShapeMemMem: "mm",
	ShapeLabel:  "l",
}

func (s Shape) String() string {
	if n, ok := shapeNames[s]; ok {
		return n
	}
	return "invalid"
}

// TouchesMemory reports whether the shape reads or writes a memory operand.
func (s Shape) TouchesMemory() bool {
	switch s {
	case ShapeMem, ShapeRegMem, ShapeMemReg, ShapeImmMem, ShapeMemMem:
		return true
	default:
		return false
	}
}

// ReadsMemory reports whether the shape reads from a memory operand.
func (s Shape) ReadsMemory() bool {
	switch s {
	case ShapeMem, ShapeMemReg, ShapeMemMem:
		return true
	default:
		return false
	}
}

// WritesMemory reports whether the shape writes to a memory operand.
func (s Shape) WritesMemory() bool {
	switch s {
	case ShapeRegMem, ShapeImmMem, ShapeMemMem:
		return true
	default:
		return false
	}
}

// Template is one instruction pattern from the target description.
// Name follows the backend's convention: mnemonic, width in bits, then
// one letter per operand position (d = data register, a = address
// register, i/q = immediate, j = memory effective address, l = label),
// e.g. ADD32dj is add.l from a memory operand into a data register.
type Template struct {
	Name  string
	Op    Op
	Shape Shape
	Width Width
}

// Templates returns the full instruction-template table for the target.
// The returned slice is shared; callers must not mutate it.
func Templates() []Template {
	return templates
}
