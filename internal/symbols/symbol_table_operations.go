package symbols

import (
	"fmt"
	"reflect"

	"github.com/funvibe/fclsem/internal/diagnostics"
)

// AddVariables registers vars by label. A variable registered under an
// existing label replaces the old entry in its original position.
//
// Every item is checked before any is registered: a nil item or one whose
// kind is not a known VariableKind is a capability violation and leaves the
// table unchanged.
func (st *SymbolTable) AddVariables(vars ...Variable) error {
	for i, v := range vars {
		if isNil(v) {
			return diagnostics.CapabilityViolation(diagnostics.CategoryVariable, fmt.Sprintf("item %d (<nil>)", i))
		}
		if !v.Kind().Valid() {
			return diagnostics.CapabilityViolation(diagnostics.CategoryVariable,
				fmt.Sprintf("%q of kind %s", v.Label(), v.Kind()))
		}
	}
	for _, v := range vars {
		if st.variables.set(v.Label(), v) {
			st.logger.Debug("variable redefined", "label", v.Label(), "kind", v.Kind().String())
		}
	}
	return nil
}

// Variable returns the variable registered under name.
func (st *SymbolTable) Variable(name string) (Variable, error) {
	v, ok := st.variables.get(name)
	if !ok {
		return nil, diagnostics.VariableNotFound(name)
	}
	return v, nil
}

// AddRule registers r under its label, replacing any rule already there,
// and returns r.
func (st *SymbolTable) AddRule(r Rule) (Rule, error) {
	if isNil(r) {
		return nil, diagnostics.CapabilityViolation(diagnostics.CategoryRule, "<nil>")
	}
	if st.rules.set(r.Label(), r) {
		st.logger.Debug("rule redefined", "label", r.Label())
	}
	return r, nil
}

// Rule returns the rule registered under name.
func (st *SymbolTable) Rule(name string) (Rule, error) {
	r, ok := st.rules.get(name)
	if !ok {
		return nil, diagnostics.RuleNotFound(name)
	}
	return r, nil
}

// SetRuleLabel relabels r and moves its entry to the new label, which
// becomes the last rule in order. Whatever is registered under r's current
// label is removed, whether or not it is r. A different rule already
// registered under label is replaced and returned as displaced.
//
// Use this instead of calling r.SetLabel on a registered rule.
func (st *SymbolTable) SetRuleLabel(r Rule, label string) (displaced Rule, err error) {
	if isNil(r) {
		return nil, diagnostics.CapabilityViolation(diagnostics.CategoryRule, "<nil>")
	}
	old := r.Label()
	st.rules.delete(old)
	if d, ok := st.rules.delete(label); ok {
		displaced = d
		st.logger.Debug("relabel replaced an existing rule", "from", old, "to", label)
	}
	r.SetLabel(label)
	st.rules.set(label, r)
	return displaced, nil
}

// Lookup resolves name against the variables first and then the rules.
// A label present in both namespaces resolves to the variable.
func (st *SymbolTable) Lookup(name string) (Entity, error) {
	if v, ok := st.variables.get(name); ok {
		return v, nil
	}
	if r, ok := st.rules.get(name); ok {
		return r, nil
	}
	return nil, diagnostics.UnknownSymbol(name)
}

// isNil reports whether e is nil or an interface holding a nil pointer,
// map, slice, func or channel.
func isNil(e any) bool {
	if e == nil {
		return true
	}
	switch v := reflect.ValueOf(e); v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
