// Package obj emits relocatable Mach-O object files for the m68k target:
// it collects fixups alongside generated code, translates them into
// vanilla or scattered relocation records, and serializes segments,
// sections, relocations and the symbol table into the 32-bit big-endian
// object format the NeXTSTEP linker consumes.
package obj

import "fmt"

// UnsupportedRelocationError reports a fixup kind/width combination with
// no target-format mapping. It signals a gap in the target description,
// not a user error, and is fatal for the compilation unit.
type UnsupportedRelocationError struct {
	Kind  FixupKind
	Width uint8
}

func (e *UnsupportedRelocationError) Error() string {
	return fmt.Sprintf("no m68k relocation for %s fixup of width %d",
		e.Kind, e.Width)
}

// UnresolvedSymbolError reports a fixup referencing a symbol absent from
// the symbol table. Fatal for the compilation unit.
type UnresolvedSymbolError struct {
	Name string
}

func (e *UnresolvedSymbolError) Error() string {
	return fmt.Sprintf("fixup references symbol %q not in symbol table", e.Name)
}

// LayoutOverflowError reports a computed offset or size exceeding the
// format's addressable range. Fatal for the compilation unit; no object
// is emitted.
type LayoutOverflowError struct {
	What  string
	Value uint64
	Limit uint64
}

func (e *LayoutOverflowError) Error() string {
	return fmt.Sprintf("%s 0x%x exceeds format limit 0x%x", e.What, e.Value, e.Limit)
}
