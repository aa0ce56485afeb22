package obj

import (
	"encoding/binary"
	"fmt"
)

// FixupKind is how a fixup's final value is computed.
type FixupKind uint8

// Fixup kinds.
const (
	// FixupAbsolute patches the absolute address of one symbol.
	FixupAbsolute FixupKind = iota
	// FixupPCRel patches the distance from the fixup site to one symbol.
	FixupPCRel
	// FixupDifference patches Symbol1 - Symbol2 + Addend. The format has
	// no single-record encoding for symbol arithmetic, so this becomes a
	// scattered SECTDIFF/PAIR record pair.
	FixupDifference
)

var fixupKindNames = map[FixupKind]string{
	FixupAbsolute:   "absolute",
	FixupPCRel:      "pc-relative",
	FixupDifference: "difference",
}

func (k FixupKind) String() string {
	if n, ok := fixupKindNames[k]; ok {
		return n
	}
	return "invalid"
}

// Fixup is one pending relocation recorded during code emission. It is
// created by the code generator, consumed exactly once by the relocation
// translator, and never mutated. Symbol2 and Addend are meaningful only
// for FixupDifference.
type Fixup struct {
	Offset  uint32 // byte offset of the patched field within the section
	Width   uint8  // patched field width: 1, 2 or 4 bytes
	Kind    FixupKind
	Symbol1 string
	Symbol2 string
	Addend  int32
}

// Section is one named sub-region of a segment: a byte buffer, an
// alignment requirement (log2), and the fixups recorded against it.
// Sections are created once per compilation unit, filled incrementally,
// then frozen and serialized by the writer.
type Section struct {
	Segment  string // owning segment name, e.g. "__TEXT"
	Name     string // section name, e.g. "__text"
	Align    uint32 // log2 of the required alignment
	Flags    uint32 // Mach-O section type/attribute flags
	ZeroFill bool   // occupies vm space but no file bytes (__bss)

	data   []byte
	fixups []Fixup

	// filled in by the writer during layout/translation
	relocs     []Relocation
	translated bool
}

// NewSection creates a section in the named segment.
func NewSection(segment, name string, align, flags uint32) *Section {
	return &Section{Segment: segment, Name: name, Align: align, Flags: flags}
}

// Append adds raw bytes to the section.
func (s *Section) Append(b []byte) {
	s.data = append(s.data, b...)
}

// AppendWord adds one 16-bit big-endian word (the m68k instruction unit).
func (s *Section) AppendWord(w uint16) {
	s.data = binary.BigEndian.AppendUint16(s.data, w)
}

// AppendLong adds one 32-bit big-endian long.
func (s *Section) AppendLong(l uint32) {
	s.data = binary.BigEndian.AppendUint32(s.data, l)
}

// Reserve extends the section by n zero bytes. For a zero-fill section
// this sets the vm size; the writer emits no file bytes for it.
func (s *Section) Reserve(n uint32) {
	s.data = append(s.data, make([]byte, n)...)
}

// Size returns the current byte size of the section.
func (s *Section) Size() uint32 { return uint32(len(s.data)) }

// Bytes returns the section contents. Callers must not mutate it.
func (s *Section) Bytes() []byte { return s.data }

// AddFixup records a pending relocation against this section. The patched
// field must lie within the bytes emitted so far.
func (s *Section) AddFixup(f Fixup) error {
	switch f.Width {
	case 1, 2, 4:
	default:
		return fmt.Errorf("fixup width must be 1, 2 or 4 bytes, got %d", f.Width)
	}
	if uint64(f.Offset)+uint64(f.Width) > uint64(len(s.data)) {
		return fmt.Errorf("fixup at 0x%x/%d past end of section %s (%d bytes)",
			f.Offset, f.Width, s.Name, len(s.data))
	}
	s.fixups = append(s.fixups, f)
	return nil
}

// Fixups returns the fixups recorded so far, in emission order.
func (s *Section) Fixups() []Fixup { return s.fixups }

// Relocations returns the translated relocation records, in fixup order
// with scattered pairs adjacent. Empty until the section is translated.
func (s *Section) Relocations() []Relocation { return s.relocs }

// Translate converts every fixup into relocation records. Each fixup is
// consumed exactly once: translating a section twice is an error.
func (s *Section) Translate(tr *Translator) error {
	if s.translated {
		return fmt.Errorf("section %s,%s already translated", s.Segment, s.Name)
	}
	for _, f := range s.fixups {
		recs, err := tr.Translate(f)
		if err != nil {
			return fmt.Errorf("section %s,%s: %w", s.Segment, s.Name, err)
		}
		s.relocs = append(s.relocs, recs...)
	}
	s.translated = true
	return nil
}

// Segment is a named group of sections laid out together.
type Segment struct {
	Name     string
	Sections []*Section
}

// NewSegment creates an empty segment.
func NewSegment(name string) *Segment {
	return &Segment{Name: name}
}

// AddSection appends a section to the segment and returns it.
func (g *Segment) AddSection(s *Section) *Section {
	g.Sections = append(g.Sections, s)
	return s
}

// Standard section constructors for the layouts the code generator uses.

// NewTextSection returns a __TEXT,__text section for machine code.
func NewTextSection() *Section {
	return NewSection("__TEXT", "__text", 1,
		sAttrPureInstructions|sAttrSomeInstructions)
}

// NewDataSection returns a __DATA,__data section.
func NewDataSection() *Section {
	return NewSection("__DATA", "__data", 2, sRegular)
}

// NewBSSSection returns a __DATA,__bss zero-fill section.
func NewBSSSection() *Section {
	s := NewSection("__DATA", "__bss", 2, sZerofill)
	s.ZeroFill = true
	return s
}
