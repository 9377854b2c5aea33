package internal

import (
	"sort"
)

type SymbolKind int

const (
	IntSymbolKind SymbolKind = iota
	ConstIntSymbolKind
	StaticIntSymbolKind
	IntArraySymbolKind
	ConstIntArraySymbolKind
	StaticIntArraySymbolKind
	IntFuncSymbolKind
	VoidFuncSymbolKind
	// UnknownSymbolKind is the type of an expression whose type cannot be determined.
	UnknownSymbolKind
)

var symbolKindNames = [...]string{
	IntSymbolKind:            "Int",
	ConstIntSymbolKind:       "ConstInt",
	StaticIntSymbolKind:      "StaticInt",
	IntArraySymbolKind:       "IntArray",
	ConstIntArraySymbolKind:  "ConstIntArray",
	StaticIntArraySymbolKind: "StaticIntArray",
	IntFuncSymbolKind:        "IntFunc",
	VoidFuncSymbolKind:       "VoidFunc",
	UnknownSymbolKind:        "Unknown",
}

func (kind SymbolKind) String() string {
	if kind >= 0 && int(kind) < len(symbolKindNames) {
		return symbolKindNames[kind]
	}
	return symbolKindNames[UnknownSymbolKind]
}

func (kind SymbolKind) IsArray() bool {
	return kind == IntArraySymbolKind || kind == ConstIntArraySymbolKind || kind == StaticIntArraySymbolKind
}

func (kind SymbolKind) IsConst() bool {
	return kind == ConstIntSymbolKind || kind == ConstIntArraySymbolKind
}

func (kind SymbolKind) IsFunc() bool {
	return kind == IntFuncSymbolKind || kind == VoidFuncSymbolKind
}

// valueSymbolKind returns the kind of a declared variable.
func valueSymbolKind(isConst, isStatic, isArray bool) SymbolKind {
	switch {
	case isConst && isArray:
		return ConstIntArraySymbolKind
	case isConst:
		return ConstIntSymbolKind
	case isStatic && isArray:
		return StaticIntArraySymbolKind
	case isStatic:
		return StaticIntSymbolKind
	case isArray:
		return IntArraySymbolKind
	}
	return IntSymbolKind
}

type Symbol struct {
	Name    string
	Kind    SymbolKind
	ScopeID int
	// Params are the formal parameters of a function symbol, in declaration order.
	Params []*Symbol
	// builtin symbols (getint, main) never appear in the symbol listing.
	builtin bool
}

func NewSymbol(name string, kind SymbolKind) *Symbol {
	return &Symbol{Name: name, Kind: kind}
}

func (symbol *Symbol) IsBuiltin() bool {
	return symbol.builtin
}

type scope struct {
	id      int
	symbols map[string]*Symbol
}

// SymbolTable is a stack of nested scopes. Every successfully added symbol is also appended to a log,
// which outlives the scopes and is the source of the final symbol listing.
type SymbolTable struct {
	scopes      []*scope
	nextScopeID int
	log         []*Symbol
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{nextScopeID: 1}
}

// EnterScope pushes a new scope with the next unused id. Ids start at 1 and are never reused.
func (table *SymbolTable) EnterScope() int {
	id := table.nextScopeID
	table.nextScopeID++
	table.scopes = append(table.scopes, &scope{id: id, symbols: map[string]*Symbol{}})
	return id
}

// ExitScope pops the innermost scope. Logged symbols are kept.
func (table *SymbolTable) ExitScope() {
	if len(table.scopes) == 0 {
		return
	}
	table.scopes = table.scopes[:len(table.scopes)-1]
}

// AddSymbol adds symbol to the innermost scope and stamps its scope id. It returns false, adding
// nothing, when the name is already declared in that same scope.
func (table *SymbolTable) AddSymbol(symbol *Symbol) bool {
	if len(table.scopes) == 0 {
		return false
	}
	current := table.scopes[len(table.scopes)-1]
	if _, exist := current.symbols[symbol.Name]; exist {
		return false
	}
	symbol.ScopeID = current.id
	current.symbols[symbol.Name] = symbol
	table.log = append(table.log, symbol)
	return true
}

// Lookup searches from the innermost scope outwards and returns the first match, nil if none.
func (table *SymbolTable) Lookup(name string) *Symbol {
	for i := len(table.scopes) - 1; i >= 0; i-- {
		if symbol, exist := table.scopes[i].symbols[name]; exist {
			return symbol
		}
	}
	return nil
}

// LookupCurrentScope only searches the innermost scope.
func (table *SymbolTable) LookupCurrentScope(name string) *Symbol {
	if len(table.scopes) == 0 {
		return nil
	}
	return table.scopes[len(table.scopes)-1].symbols[name]
}

// CurrentScopeID returns the id of the innermost scope, 0 when no scope is open.
func (table *SymbolTable) CurrentScopeID() int {
	if len(table.scopes) == 0 {
		return 0
	}
	return table.scopes[len(table.scopes)-1].id
}

// NextScopeID returns the id the next EnterScope will assign.
func (table *SymbolTable) NextScopeID() int {
	return table.nextScopeID
}

func (table *SymbolTable) Depth() int {
	return len(table.scopes)
}

// Symbols returns the logged symbols stable-sorted by scope id, so declaration order is kept within
// a scope.
func (table *SymbolTable) Symbols() []*Symbol {
	symbols := make([]*Symbol, len(table.log))
	copy(symbols, table.log)
	sort.SliceStable(symbols, func(i, j int) bool {
		return symbols[i].ScopeID < symbols[j].ScopeID
	})
	return symbols
}

// initStandardLibrary adds the builtin functions to the innermost scope.
func (table *SymbolTable) initStandardLibrary() {
	getint := NewSymbol("getint", IntFuncSymbolKind)
	getint.builtin = true
	table.AddSymbol(getint)
}
