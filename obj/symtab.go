package obj

// Symbol is one symbol-table entry. Section is the 1-based ordinal of the
// defining section across all segments in layout order; 0 means the
// symbol is undefined here and resolved by the linker. Offset is relative
// to the start of the defining section.
type Symbol struct {
	Name     string
	Section  int
	Offset   uint32
	External bool
}

// Defined reports whether the symbol is defined in this compilation unit.
func (s Symbol) Defined() bool { return s.Section != 0 }

// SymbolTable owns a compilation unit's symbols. Fixups and relocation
// records reference entries by index; indices are stable once assigned.
// Insertion order is the serialization order, which keeps output
// deterministic.
type SymbolTable struct {
	syms  []Symbol
	index map[string]int
}

// NewSymbolTable creates an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{index: make(map[string]int)}
}

// AddDefined records a symbol defined at offset within the section with
// the given 1-based ordinal, and returns its index. Re-adding a name
// updates the existing entry in place (a forward reference being
// resolved) and keeps its index.
func (st *SymbolTable) AddDefined(name string, section int, offset uint32, external bool) int {
	if i, ok := st.index[name]; ok {
		st.syms[i].Section = section
		st.syms[i].Offset = offset
		st.syms[i].External = external
		return i
	}
	st.syms = append(st.syms, Symbol{name, section, offset, external})
	st.index[name] = len(st.syms) - 1
	return len(st.syms) - 1
}

// AddUndefined records an external symbol resolved by the linker and
// returns its index. A name already in the table keeps its entry.
func (st *SymbolTable) AddUndefined(name string) int {
	if i, ok := st.index[name]; ok {
		return i
	}
	st.syms = append(st.syms, Symbol{Name: name, External: true})
	st.index[name] = len(st.syms) - 1
	return len(st.syms) - 1
}

// Lookup returns the index of a symbol by name.
func (st *SymbolTable) Lookup(name string) (int, bool) {
	i, ok := st.index[name]
	return i, ok
}

// At returns the symbol at index i.
func (st *SymbolTable) At(i int) Symbol { return st.syms[i] }

// Len returns the number of symbols.
func (st *SymbolTable) Len() int { return len(st.syms) }
