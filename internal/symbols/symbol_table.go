// symbols/symbol_table.go - Main symbol table entry point
//
// The symbol table is split into focused files:
// - symbol_table_core.go: entity interfaces, variable kinds, the SymbolTable struct
// - symbol_table_registry.go: the insertion-ordered registry both namespaces use
// - symbol_table_operations.go: registration, relabeling and scope-checked lookup
// - symbol_table_iter.go: live iterators over the registries
//
// A SymbolTable holds the variables and rules of one fuzzy system under
// construction. It is owned by a single front-end pass and is not safe for
// concurrent use.
package symbols
