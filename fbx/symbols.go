package fbx

// symbol is an interned string, comparable in O(1).
type symbol uint32

// symbolTable is only written while a document loads.
type symbolTable struct {
	ids   map[string]symbol
	names []string
}

func newSymbolTable() *symbolTable {
	return &symbolTable{ids: make(map[string]symbol)}
}

func (t *symbolTable) intern(s string) symbol {
	if sym, ok := t.ids[s]; ok {
		return sym
	}
	sym := symbol(len(t.names))
	t.names = append(t.names, s)
	t.ids[s] = sym
	return sym
}

func (t *symbolTable) lookup(s string) (symbol, bool) {
	sym, ok := t.ids[s]
	return sym, ok
}

func (t *symbolTable) resolve(sym symbol) string {
	return t.names[sym]
}
