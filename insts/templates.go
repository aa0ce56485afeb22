package insts

// templates is the target's instruction-descriptor table. One entry per
// instruction template; width and addressing-mode variants that share a
// template inherit its scheduling classification, so a gap here is a gap
// for every concrete opcode the template generates.
var templates = []Template{
	// MOVE family
	{"MOV8dd", OpMOVE, ShapeRegReg, WidthByte},
	{"MOV16dd", OpMOVE, ShapeRegReg, WidthWord},
	{"MOV32dd", OpMOVE, ShapeRegReg, WidthLong},
	{"MOV8dj", OpMOVE, ShapeMemReg, WidthByte},
	{"MOV16dj", OpMOVE, ShapeMemReg, WidthWord},
	{"MOV32dj", OpMOVE, ShapeMemReg, WidthLong},
	{"MOV8jd", OpMOVE, ShapeRegMem, WidthByte},
	{"MOV16jd", OpMOVE, ShapeRegMem, WidthWord},
	{"MOV32jd", OpMOVE, ShapeRegMem, WidthLong},
	{"MOV8ji", OpMOVE, ShapeImmMem, WidthByte},
	{"MOV16ji", OpMOVE, ShapeImmMem, WidthWord},
	{"MOV32ji", OpMOVE, ShapeImmMem, WidthLong},
	{"MOV8di", OpMOVE, ShapeImmReg, WidthByte},
	{"MOV16di", OpMOVE, ShapeImmReg, WidthWord},
	{"MOV32di", OpMOVE, ShapeImmReg, WidthLong},
	{"MOV8jj", OpMOVE, ShapeMemMem, WidthByte},
	{"MOV16jj", OpMOVE, ShapeMemMem, WidthWord},
	{"MOV32jj", OpMOVE, ShapeMemMem, WidthLong},
	{"MOVA16aa", OpMOVEA, ShapeRegReg, WidthWord},
	{"MOVA32aa", OpMOVEA, ShapeRegReg, WidthLong},
	{"MOVA32aj", OpMOVEA, ShapeMemReg, WidthLong},
	{"MOVQ", OpMOVEQ, ShapeImmReg, WidthLong},
	{"MOVM32jm", OpMOVEM, ShapeRegMem, WidthLong},
	{"MOVM32mj", OpMOVEM, ShapeMemReg, WidthLong},
	{"LEA32aj", OpLEA, ShapeMemReg, WidthLong},
	{"PEA32j", OpPEA, ShapeMem, WidthLong},
	{"EXG32dd", OpEXG, ShapeRegReg, WidthLong},
	{"SWAP32d", OpSWAP, ShapeReg, WidthLong},

	// Integer arithmetic
	{"ADD8dd", OpADD, ShapeRegReg, WidthByte},
	{"ADD16dd", OpADD, ShapeRegReg, WidthWord},
	{"ADD32dd", OpADD, ShapeRegReg, WidthLong},
	{"ADD8dj", OpADD, ShapeMemReg, WidthByte},
	{"ADD16dj", OpADD, ShapeMemReg, WidthWord},
	{"ADD32dj", OpADD, ShapeMemReg, WidthLong},
	{"ADD8jd", OpADD, ShapeRegMem, WidthByte},
	{"ADD16jd", OpADD, ShapeRegMem, WidthWord},
	{"ADD32jd", OpADD, ShapeRegMem, WidthLong},
	{"ADDA32aa", OpADDA, ShapeRegReg, WidthLong},
	{"ADDI8di", OpADDI, ShapeImmReg, WidthByte},
	{"ADDI16di", OpADDI, ShapeImmReg, WidthWord},
	{"ADDI32di", OpADDI, ShapeImmReg, WidthLong},
	{"ADDI32ji", OpADDI, ShapeImmMem, WidthLong},
	{"ADDQ32dq", OpADDQ, ShapeImmReg, WidthLong},
	{"ADDQ32jq", OpADDQ, ShapeImmMem, WidthLong},
	{"SUB8dd", OpSUB, ShapeRegReg, WidthByte},
	{"SUB16dd", OpSUB, ShapeRegReg, WidthWord},
	{"SUB32dd", OpSUB, ShapeRegReg, WidthLong},
	{"SUB32dj", OpSUB, ShapeMemReg, WidthLong},
	{"SUB32jd", OpSUB, ShapeRegMem, WidthLong},
	{"SUBA32aa", OpSUBA, ShapeRegReg, WidthLong},
	{"SUBI32di", OpSUBI, ShapeImmReg, WidthLong},
	{"SUBQ32dq", OpSUBQ, ShapeImmReg, WidthLong},
	{"SUBQ32jq", OpSUBQ, ShapeImmMem, WidthLong},
	{"NEG32d", OpNEG, ShapeReg, WidthLong},
	{"NEG32j", OpNEG, ShapeMem, WidthLong},
	{"EXT16d", OpEXT, ShapeReg, WidthWord},
	{"EXT32d", OpEXT, ShapeReg, WidthLong},
	{"CMP8dd", OpCMP, ShapeRegReg, WidthByte},
	{"CMP16dd", OpCMP, ShapeRegReg, WidthWord},
	{"CMP32dd", OpCMP, ShapeRegReg, WidthLong},
	{"CMP32dj", OpCMP, ShapeMemReg, WidthLong},
	{"CMPA32aa", OpCMPA, ShapeRegReg, WidthLong},
	{"CMPI32di", OpCMPI, ShapeImmReg, WidthLong},
	{"CMPI32ji", OpCMPI, ShapeImmMem, WidthLong},
	{"TST8d", OpTST, ShapeReg, WidthByte},
	{"TST16d", OpTST, ShapeReg, WidthWord},
	{"TST32d", OpTST, ShapeReg, WidthLong},
	{"TST32j", OpTST, ShapeMem, WidthLong},
	{"CLR8d", OpCLR, ShapeReg, WidthByte},
	{"CLR16d", OpCLR, ShapeReg, WidthWord},
	{"CLR32d", OpCLR, ShapeReg, WidthLong},
	{"CLR32j", OpCLR, ShapeMem, WidthLong},

	// Logic
	{"AND8dd", OpAND, ShapeRegReg, WidthByte},
	{"AND16dd", OpAND, ShapeRegReg, WidthWord},
	{"AND32dd", OpAND, ShapeRegReg, WidthLong},
	{"AND32dj", OpAND, ShapeMemReg, WidthLong},
	{"AND32jd", OpAND, ShapeRegMem, WidthLong},
	{"ANDI32di", OpANDI, ShapeImmReg, WidthLong},
	{"OR8dd", OpOR, ShapeRegReg, WidthByte},
	{"OR16dd", OpOR, ShapeRegReg, WidthWord},
	{"OR32dd", OpOR, ShapeRegReg, WidthLong},
	{"OR32dj", OpOR, ShapeMemReg, WidthLong},
	{"OR32jd", OpOR, ShapeRegMem, WidthLong},
	{"ORI32di", OpORI, ShapeImmReg, WidthLong},
	{"EOR8dd", OpEOR, ShapeRegReg, WidthByte},
	{"EOR16dd", OpEOR, ShapeRegReg, WidthWord},
	{"EOR32dd", OpEOR, ShapeRegReg, WidthLong},
	{"EOR32jd", OpEOR, ShapeRegMem, WidthLong},
	{"EORI32di", OpEORI, ShapeImmReg, WidthLong},
	{"NOT32d", OpNOT, ShapeReg, WidthLong},
	{"NOT32j", OpNOT, ShapeMem, WidthLong},

	// Shifts and rotates (register form shifts by count or register;
	// memory form shifts the operand by one)
	{"LSL8dd", OpLSL, ShapeRegReg, WidthByte},
	{"LSL16dd", OpLSL, ShapeRegReg, WidthWord},
	{"LSL32dd", OpLSL, ShapeRegReg, WidthLong},
	{"LSL32di", OpLSL, ShapeImmReg, WidthLong},
	{"LSL16j", OpLSL, ShapeMem, WidthWord},
	{"LSR32dd", OpLSR, ShapeRegReg, WidthLong},
	{"LSR32di", OpLSR, ShapeImmReg, WidthLong},
	{"LSR16j", OpLSR, ShapeMem, WidthWord},
	{"ASL32dd", OpASL, ShapeRegReg, WidthLong},
	{"ASL32di", OpASL, ShapeImmReg, WidthLong},
	{"ASR32dd", OpASR, ShapeRegReg, WidthLong},
	{"ASR32di", OpASR, ShapeImmReg, WidthLong},
	{"ASR16j", OpASR, ShapeMem, WidthWord},
	{"ROL32dd", OpROL, ShapeRegReg, WidthLong},
	{"ROL32di", OpROL, ShapeImmReg, WidthLong},
	{"ROR32dd", OpROR, ShapeRegReg, WidthLong},
	{"ROR32di", OpROR, ShapeImmReg, WidthLong},

	// Bit manipulation
	{"BTST32dd", OpBTST, ShapeRegReg, WidthLong},
	{"BTST32di", OpBTST, ShapeImmReg, WidthLong},
	{"BTST8ji", OpBTST, ShapeImmMem, WidthByte},
	{"BSET32di", OpBSET, ShapeImmReg, WidthLong},
	{"BSET8ji", OpBSET, ShapeImmMem, WidthByte},
	{"BCLR32di", OpBCLR, ShapeImmReg, WidthLong},
	{"BCLR8ji", OpBCLR, ShapeImmMem, WidthByte},
	{"BCHG32di", OpBCHG, ShapeImmReg, WidthLong},
	{"TAS8j", OpTAS, ShapeMem, WidthByte},

	// Multiply / divide
	{"MULS16dd", OpMULS, ShapeRegReg, WidthWord},
	{"MULS32dd", OpMULS, ShapeRegReg, WidthLong},
	{"MULS32dj", OpMULS, ShapeMemReg, WidthLong},
	{"MULU16dd", OpMULU, ShapeRegReg, WidthWord},
	{"MULU32dd", OpMULU, ShapeRegReg, WidthLong},
	{"DIVS16dd", OpDIVS, ShapeRegReg, WidthWord},
	{"DIVS32dd", OpDIVS, ShapeRegReg, WidthLong},
	{"DIVS32dj", OpDIVS, ShapeMemReg, WidthLong},
	{"DIVU16dd", OpDIVU, ShapeRegReg, WidthWord},
	{"DIVU32dd", OpDIVU, ShapeRegReg, WidthLong},

	// Control flow
	{"BRA8", OpBRA, ShapeLabel, WidthByte},
	{"BRA16", OpBRA, ShapeLabel, WidthWord},
	{"Bcc8", OpBcc, ShapeLabel, WidthByte},
	{"Bcc16", OpBcc, ShapeLabel, WidthWord},
	{"DBcc16", OpDBcc, ShapeLabel, WidthWord},
	{"JMP32j", OpJMP, ShapeMem, WidthNone},
	{"BSR16", OpBSR, ShapeLabel, WidthWord},
	{"BSR32", OpBSR, ShapeLabel, WidthLong},
	{"JSR32j", OpJSR, ShapeMem, WidthNone},
	{"RTS", OpRTS, ShapeNone, WidthNone},
	{"RTE", OpRTE, ShapeNone, WidthNone},
	{"Scc8d", OpScc, ShapeReg, WidthByte},
	{"Scc8j", OpScc, ShapeMem, WidthByte},

	// Stack frames and misc
	{"LINK16", OpLINK, ShapeImmReg, WidthWord},
	{"UNLK", OpUNLK, ShapeReg, WidthNone},
	{"NOP", OpNOP, ShapeNone, WidthNone},
	{"TRAP", OpTRAP, ShapeImm, WidthNone},
	{"CHK16dd", OpCHK, ShapeRegReg, WidthWord},

	// Floating point (68881/68882)
	{"FMOV32ff", OpFMOVE, ShapeRegReg, WidthLong},
	{"FMOV32fj", OpFMOVE, ShapeMemReg, WidthLong},
	{"FMOV32jf", OpFMOVE, ShapeRegMem, WidthLong},
	{"FADD32ff", OpFADD, ShapeRegReg, WidthLong},
	{"FADD32fj", OpFADD, ShapeMemReg, WidthLong},
	{"FSUB32ff", OpFSUB, ShapeRegReg, WidthLong},
	{"FMUL32ff", OpFMUL, ShapeRegReg, WidthLong},
	{"FMUL32fj", OpFMUL, ShapeMemReg, WidthLong},
	{"FDIV32ff", OpFDIV, ShapeRegReg, WidthLong},
	{"FCMP32ff", OpFCMP, ShapeRegReg, WidthLong},
	{"FNEG32f", OpFNEG, ShapeReg, WidthLong},
	{"FABS32f", OpFABS, ShapeReg, WidthLong},
}
