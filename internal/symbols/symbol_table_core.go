package symbols

import (
	"fmt"
	"log/slog"
)

type VariableKind int

const (
	PlainVariable VariableKind = iota // a variable with no input/output role
	Antecedent                        // input variable
	Consequent                        // output variable
)

func (k VariableKind) String() string {
	switch k {
	case PlainVariable:
		return "variable"
	case Antecedent:
		return "antecedent"
	case Consequent:
		return "consequent"
	}
	return fmt.Sprintf("VariableKind(%d)", int(k))
}

// Valid reports whether k is one of the three variable kinds.
func (k VariableKind) Valid() bool {
	return k >= PlainVariable && k <= Consequent
}

// Entity is anything the table indexes by label.
type Entity interface {
	Label() string
}

// Variable is the capability required of registered variables.
type Variable interface {
	Entity
	Kind() VariableKind
}

// Rule is the capability required of registered rules. The label is
// mutable, but only through SetRuleLabel once the rule is registered.
type Rule interface {
	Entity
	SetLabel(label string)
}

type SymbolTable struct {
	functionBlock string
	variables     *registry[Variable]
	rules         *registry[Rule]

	logger *slog.Logger
}

// Option configures a SymbolTable.
type Option func(*SymbolTable)

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(st *SymbolTable) {
		st.logger = l
	}
}

func NewSymbolTable(opts ...Option) *SymbolTable {
	st := &SymbolTable{
		variables: newRegistry[Variable](),
		rules:     newRegistry[Rule](),
	}
	for _, opt := range opts {
		opt(st)
	}
	if st.logger == nil {
		st.logger = slog.Default()
	}
	return st
}

// FunctionBlock returns the function-block name, or "" if none was set.
func (st *SymbolTable) FunctionBlock() string {
	return st.functionBlock
}

func (st *SymbolTable) SetFunctionBlock(name string) {
	st.functionBlock = name
}

// Clear resets the table to its empty state.
func (st *SymbolTable) Clear() {
	st.functionBlock = ""
	st.variables.clear()
	st.rules.clear()
}

// VariableCount returns the number of registered variables.
func (st *SymbolTable) VariableCount() int {
	return st.variables.len()
}

// RuleCount returns the number of registered rules.
func (st *SymbolTable) RuleCount() int {
	return st.rules.len()
}

func (st *SymbolTable) String() string {
	fb := st.functionBlock
	if fb == "" {
		fb = "-"
	}
	return fmt.Sprintf("SymbolTable{function block: %s, variables: %d, rules: %d}",
		fb, st.variables.len(), st.rules.len())
}
