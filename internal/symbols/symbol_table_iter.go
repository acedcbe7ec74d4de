package symbols

import "iter"

// Variables yields every registered variable in registration order.
//
// This and the other iterators read the live registry: each range over the
// returned sequence starts a fresh pass and sees registrations made since
// the sequence was obtained.
func (st *SymbolTable) Variables() iter.Seq[Variable] {
	return st.variables.values()
}

// Rules yields every registered rule in registration order.
func (st *SymbolTable) Rules() iter.Seq[Rule] {
	return st.rules.values()
}

// Antecedents yields the registered input variables.
func (st *SymbolTable) Antecedents() iter.Seq[Variable] {
	return st.ofKind(Antecedent)
}

// Consequents yields the registered output variables.
func (st *SymbolTable) Consequents() iter.Seq[Variable] {
	return st.ofKind(Consequent)
}

func (st *SymbolTable) ofKind(k VariableKind) iter.Seq[Variable] {
	return func(yield func(Variable) bool) {
		for v := range st.variables.values() {
			if v.Kind() == k && !yield(v) {
				return
			}
		}
	}
}
