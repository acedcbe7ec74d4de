// Package control provides concrete variables and rules for the symbol
// table: fuzzy variables sampled over a universe of discourse with named
// terms, and labelled rules carrying the operator pair of their rule block.
package control

import (
	"fmt"
	"slices"
	"strings"

	"github.com/funvibe/fclsem/internal/defuzz"
	"github.com/funvibe/fclsem/internal/norms"
	"github.com/funvibe/fclsem/internal/symbols"
)

// Term is a named membership function sampled over its variable's universe.
type Term struct {
	Label string
	MF    []float64
}

// Variable is a fuzzy variable. It satisfies symbols.Variable.
type Variable struct {
	label    string
	kind     symbols.VariableKind
	universe []float64
	terms    []Term

	// Defuzz is the defuzzification strategy of a consequent. It is empty
	// for other kinds until set.
	Defuzz defuzz.Strategy
}

// NewVariable creates a variable with no input or output role.
func NewVariable(label string, universe []float64) *Variable {
	return newVariable(label, symbols.PlainVariable, universe)
}

func NewAntecedent(label string, universe []float64) *Variable {
	return newVariable(label, symbols.Antecedent, universe)
}

// NewConsequent creates an output variable defuzzified by centroid unless
// Defuzz is changed.
func NewConsequent(label string, universe []float64) *Variable {
	v := newVariable(label, symbols.Consequent, universe)
	v.Defuzz = defuzz.Centroid
	return v
}

func newVariable(label string, kind symbols.VariableKind, universe []float64) *Variable {
	return &Variable{label: label, kind: kind, universe: slices.Clone(universe)}
}

func (v *Variable) Label() string              { return v.label }
func (v *Variable) Kind() symbols.VariableKind { return v.kind }

// Universe returns the sample points. The slice must not be modified.
func (v *Variable) Universe() []float64 { return v.universe }

// Range returns the smallest and largest sample point, or zeros for an
// empty universe.
func (v *Variable) Range() (lo, hi float64) {
	if len(v.universe) == 0 {
		return 0, 0
	}
	return slices.Min(v.universe), slices.Max(v.universe)
}

// AddTerm adds a term or replaces the one with the same label. The
// membership degrees must be sampled over the variable's universe.
func (v *Variable) AddTerm(label string, mf []float64) error {
	if len(mf) != len(v.universe) {
		return fmt.Errorf("term %s.%s: %d degrees for %d sample points", v.label, label, len(mf), len(v.universe))
	}
	t := Term{Label: label, MF: slices.Clone(mf)}
	if i := v.termIndex(label); i >= 0 {
		v.terms[i] = t
		return nil
	}
	v.terms = append(v.terms, t)
	return nil
}

// Term returns the term with the given label.
func (v *Variable) Term(label string) (Term, bool) {
	if i := v.termIndex(label); i >= 0 {
		return v.terms[i], true
	}
	return Term{}, false
}

// TermLabels lists term labels in the order they were added.
func (v *Variable) TermLabels() []string {
	labels := make([]string, len(v.terms))
	for i, t := range v.terms {
		labels[i] = t.Label
	}
	return labels
}

// Crisp defuzzifies an aggregated output membership sampled over the
// variable's universe, using the variable's Defuzz strategy.
func (v *Variable) Crisp(mf []float64) (float64, error) {
	if v.Defuzz == "" {
		return 0, fmt.Errorf("variable %s: no defuzzification strategy", v.label)
	}
	if len(mf) != len(v.universe) {
		return 0, fmt.Errorf("variable %s: %d degrees for %d sample points", v.label, len(mf), len(v.universe))
	}
	return defuzz.Defuzzify(v.universe, mf, v.Defuzz)
}

func (v *Variable) termIndex(label string) int {
	return slices.IndexFunc(v.terms, func(t Term) bool { return t.Label == label })
}

func (v *Variable) String() string {
	return fmt.Sprintf("%s: %s", v.kind, v.label)
}

// Rule is a labelled fuzzy rule. It satisfies symbols.Rule.
type Rule struct {
	label string

	Antecedent string
	Consequent string
	// Aggregation is the AND/OR pair of the rule block the rule belongs to.
	Aggregation *norms.Pair
}

// NewRule creates a rule using the default operator pair.
func NewRule(label, antecedent, consequent string) *Rule {
	return &Rule{
		label:       label,
		Antecedent:  antecedent,
		Consequent:  consequent,
		Aggregation: norms.Default(),
	}
}

func (r *Rule) Label() string { return r.label }

// SetLabel changes the label. Use symbols.SymbolTable.SetRuleLabel for a
// registered rule.
func (r *Rule) SetLabel(label string) { r.label = label }

// SetAggregation sets the rule block's operator pair.
func (r *Rule) SetAggregation(p *norms.Pair) { r.Aggregation = p }

// Activation folds the degrees of a conjunctive antecedent with the rule's
// t-norm. No degrees activate fully.
func (r *Rule) Activation(degrees ...float64) float64 {
	p := r.Aggregation
	if p == nil {
		p = norms.Default()
	}
	act := 1.0
	for _, d := range degrees {
		act = p.And(act, d)
	}
	return act
}

func (r *Rule) String() string {
	var b strings.Builder
	b.WriteString("IF ")
	b.WriteString(r.Antecedent)
	b.WriteString(" THEN ")
	b.WriteString(r.Consequent)
	if r.Aggregation != nil && r.Aggregation != norms.Default() {
		fmt.Fprintf(&b, " [%s]", r.Aggregation)
	}
	return b.String()
}
