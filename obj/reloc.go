package obj

// Generic m68k Mach-O relocation type tags. The linker depends on these
// exact values.
const (
	RelocVanilla       = 0 // direct symbol reference
	RelocPair          = 1 // second half of a scattered pair
	RelocSectDiff      = 2 // first half: difference of two section offsets
	RelocPBLAPtr       = 3 // prebound lazy pointer (unused by this backend)
	RelocLocalSectDiff = 4 // SECTDIFF between local symbols
)

// rScattered is the high bit of the first word of a scattered relocation.
const rScattered = 0x80000000

// scatteredAddrLimit bounds the 24-bit address field of a scattered
// relocation record.
const scatteredAddrLimit = 1 << 24

// Relocation is one target-format relocation record. Vanilla records
// reference a symbol-table entry by index; scattered records (SECTDIFF
// and its trailing PAIR) carry a resolved section offset in Value
// instead. A SECTDIFF is only meaningful with its PAIR immediately after
// it; the writer preserves that adjacency.
type Relocation struct {
	Scattered   bool
	Type        uint8
	Address     uint32 // fixup offset within the section (PAIR: the addend)
	Value       uint32 // scattered only: the referenced symbol's offset
	SymbolIndex uint32 // vanilla only
	PCRel       bool
	Length      uint8 // log2 of the patched width: 0=byte 1=word 2=long
	Extern      bool  // vanilla only: SymbolIndex is a symtab index
}

// relocShape is the target-format encoding chosen for a (kind, width)
// pair: the type tag and the log2 length field.
type relocShape struct {
	typ       uint8
	length    uint8
	pcRel     bool
	scattered bool
}

type relocKey struct {
	kind  FixupKind
	width uint8
}

// relocShapes is the fixed (kind, width) -> encoding table. A missing
// entry means the target description has no way to express the fixup and
// translation must fail, not improvise.
var relocShapes = map[relocKey]relocShape{
	{FixupAbsolute, 1}: {RelocVanilla, 0, false, false},
	{FixupAbsolute, 2}: {RelocVanilla, 1, false, false},
	{FixupAbsolute, 4}: {RelocVanilla, 2, false, false},

	{FixupPCRel, 1}: {RelocVanilla, 0, true, false},
	{FixupPCRel, 2}: {RelocVanilla, 1, true, false},
	{FixupPCRel, 4}: {RelocVanilla, 2, true, false},

	// Byte-wide section differences have no encoding on this target.
	{FixupDifference, 2}: {RelocSectDiff, 1, false, true},
	{FixupDifference, 4}: {RelocSectDiff, 2, false, true},
}

// Translator turns fixups into relocation records against one symbol
// table.
type Translator struct {
	symtab *SymbolTable
}

// NewTranslator creates a translator over the compilation unit's symbol
// table. Every symbol a fixup references must already be in the table,
// possibly as undefined.
func NewTranslator(st *SymbolTable) *Translator {
	return &Translator{symtab: st}
}

// Translate maps one fixup to its relocation records: exactly one vanilla
// record for a direct reference, or a SECTDIFF record immediately
// followed by its PAIR for a symbol difference.
//
// A difference is never folded to a constant here, even when both symbols
// are already defined: folding requires both to land in the same section,
// which is not decidable at emission time, and the scattered form is
// always correct. Only the linker folds.
func (tr *Translator) Translate(f Fixup) ([]Relocation, error) {
	shape, ok := relocShapes[relocKey{f.Kind, f.Width}]
	if !ok {
		return nil, &UnsupportedRelocationError{Kind: f.Kind, Width: f.Width}
	}

	if !shape.scattered {
		i, ok := tr.symtab.Lookup(f.Symbol1)
		if !ok {
			return nil, &UnresolvedSymbolError{Name: f.Symbol1}
		}
		return []Relocation{{
			Type:        shape.typ,
			Address:     f.Offset,
			SymbolIndex: uint32(i),
			PCRel:       shape.pcRel,
			Length:      shape.length,
			Extern:      true,
		}}, nil
	}

	i1, ok := tr.symtab.Lookup(f.Symbol1)
	if !ok {
		return nil, &UnresolvedSymbolError{Name: f.Symbol1}
	}
	i2, ok := tr.symtab.Lookup(f.Symbol2)
	if !ok {
		return nil, &UnresolvedSymbolError{Name: f.Symbol2}
	}

	if uint64(f.Offset) >= scatteredAddrLimit {
		return nil, &LayoutOverflowError{
			What:  "scattered relocation address",
			Value: uint64(f.Offset),
			Limit: scatteredAddrLimit - 1,
		}
	}
	addend := uint32(f.Addend)
	if f.Addend < 0 {
		addend = uint32(f.Addend) & (scatteredAddrLimit - 1)
	}
	if uint64(addend) >= scatteredAddrLimit {
		return nil, &LayoutOverflowError{
			What:  "scattered relocation addend",
			Value: uint64(addend),
			Limit: scatteredAddrLimit - 1,
		}
	}

	// The SECTDIFF record carries the subtrahend's offset at the fixup
	// address; the PAIR that must follow it carries the minuend's offset
	// and the addend. The pair is indivisible: a consumer that splits
	// them reads a corrupt object.
	sectDiff := Relocation{
		Scattered: true,
		Type:      RelocSectDiff,
		Address:   f.Offset,
		Value:     tr.symtab.At(i2).Offset,
		Length:    shape.length,
	}
	pair := Relocation{
		Scattered: true,
		Type:      RelocPair,
		Address:   addend,
		Value:     tr.symtab.At(i1).Offset,
		Length:    shape.length,
	}
	return []Relocation{sectDiff, pair}, nil
}
