package fcl

import (
	"github.com/funvibe/fclsem/internal/control"
	"github.com/funvibe/fclsem/internal/symbols"
	"github.com/funvibe/fclsem/internal/token"
)

// Token kinds a parser emits.
const (
	SHAPE          = token.SHAPE
	DEFUZZ         = token.DEFUZZ
	AND            = token.AND
	OR             = token.OR
	HEDGE          = token.HEDGE
	RULEBLOCK      = token.RULEBLOCK
	END_RULEBLOCK  = token.END_RULEBLOCK
	FUNCTION_BLOCK = token.FUNCTION_BLOCK
	VAR            = token.VAR
	RULE           = token.RULE
	IDENT          = token.IDENT
	EOF            = token.EOF
)

type (
	Variable     = symbols.Variable
	Rule         = symbols.Rule
	Entity       = symbols.Entity
	VariableKind = symbols.VariableKind

	FuzzyVariable = control.Variable
	FuzzyRule     = control.Rule
	Term          = control.Term
)

const (
	PlainVariable = symbols.PlainVariable
	Antecedent    = symbols.Antecedent
	Consequent    = symbols.Consequent
)

func NewAntecedent(label string, universe []float64) *FuzzyVariable {
	return control.NewAntecedent(label, universe)
}

func NewConsequent(label string, universe []float64) *FuzzyVariable {
	return control.NewConsequent(label, universe)
}

func NewVariable(label string, universe []float64) *FuzzyVariable {
	return control.NewVariable(label, universe)
}

func NewRule(label, antecedent, consequent string) *FuzzyRule {
	return control.NewRule(label, antecedent, consequent)
}
