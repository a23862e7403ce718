package main

// SymbolTable is the ordered, duplicate-free set of variables declared by a
// program. Every symbol is a C++ int.
type SymbolTable struct {
	names []string
	index map[string]int
}

// NewSymbolTable creates an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		index: make(map[string]int),
	}
}

// Contains reports whether name has been registered.
func (st *SymbolTable) Contains(name string) bool {
	_, ok := st.index[name]
	return ok
}

// Register appends name unless it is already present. It reports whether the
// name was new.
func (st *SymbolTable) Register(name string) bool {
	if st.Contains(name) {
		return false
	}
	st.index[name] = len(st.names)
	st.names = append(st.names, name)
	return true
}

// Names returns the registered names in first-occurrence order.
func (st *SymbolTable) Names() []string {
	names := make([]string, len(st.names))
	copy(names, st.names)
	return names
}

// Len returns the number of registered names.
func (st *SymbolTable) Len() int {
	return len(st.names)
}
