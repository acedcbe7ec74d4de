package symbols

import (
	"bytes"
	"io"
	"iter"
	"log/slog"
	"slices"
	"testing"

	"github.com/funvibe/fclsem/internal/diagnostics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testVar struct {
	label string
	kind  VariableKind
}

func (v *testVar) Label() string      { return v.label }
func (v *testVar) Kind() VariableKind { return v.kind }

type testRule struct {
	label string
	text  string
}

func (r *testRule) Label() string         { return r.label }
func (r *testRule) SetLabel(label string) { r.label = label }

func newTable() *SymbolTable {
	return NewSymbolTable(WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
}

func labels[T Entity](seq iter.Seq[T]) []string {
	var out []string
	for e := range seq {
		out = append(out, e.Label())
	}
	return out
}

func TestAddAndGetVariable(t *testing.T) {
	st := newTable()
	speed := &testVar{"speed", Antecedent}
	require.NoError(t, st.AddVariables(speed, &testVar{"power", Consequent}))

	got, err := st.Variable("speed")
	require.NoError(t, err)
	assert.Same(t, speed, got)
	assert.Equal(t, 2, st.VariableCount())

	_, err = st.Variable("Speed")
	require.Error(t, err)
	assert.True(t, diagnostics.IsScope(err))
	assert.Equal(t, `scope error: Variable "Speed" not found`, err.Error())
}

func TestVariableOverwriteKeepsSlot(t *testing.T) {
	st := newTable()
	require.NoError(t, st.AddVariables(
		&testVar{"a", Antecedent},
		&testVar{"b", Antecedent},
		&testVar{"c", Consequent},
	))

	replacement := &testVar{"a", Consequent}
	require.NoError(t, st.AddVariables(replacement))

	assert.Equal(t, []string{"a", "b", "c"}, labels(st.Variables()))
	got, _ := st.Variable("a")
	assert.Same(t, replacement, got)
	assert.Equal(t, []string{"b"}, labels(st.Antecedents()))
	assert.Equal(t, []string{"a", "c"}, labels(st.Consequents()))
}

func TestAddVariablesCapability(t *testing.T) {
	st := newTable()

	err := st.AddVariables(&testVar{"ok", Antecedent}, nil)
	require.Error(t, err)
	assert.True(t, diagnostics.IsCapability(err))
	assert.True(t, diagnostics.IsFatal(err))
	assert.Equal(t, "capability violation: item 1 (<nil>) should be a variable", err.Error())
	assert.Zero(t, st.VariableCount(), "nothing is registered when any item is invalid")

	err = st.AddVariables(&testVar{"odd", VariableKind(7)})
	require.Error(t, err)
	assert.True(t, diagnostics.IsCapability(err))
	assert.Contains(t, err.Error(), `"odd" of kind VariableKind(7)`)

	assert.NoError(t, st.AddVariables())
}

func TestTypedNilIsCapabilityViolation(t *testing.T) {
	st := newTable()

	var v *testVar
	err := st.AddVariables(&testVar{"ok", Antecedent}, v)
	require.Error(t, err)
	assert.True(t, diagnostics.IsCapability(err))
	assert.Equal(t, "capability violation: item 1 (<nil>) should be a variable", err.Error())
	assert.Zero(t, st.VariableCount())

	var r *testRule
	_, err = st.AddRule(r)
	assert.True(t, diagnostics.IsCapability(err))

	_, err = st.SetRuleLabel(r, "R1")
	assert.True(t, diagnostics.IsCapability(err))
	assert.Zero(t, st.RuleCount())
}

func TestRules(t *testing.T) {
	st := newTable()
	r1 := &testRule{label: "R1", text: "if speed is fast then power is high"}

	got, err := st.AddRule(r1)
	require.NoError(t, err)
	assert.Same(t, r1, got)

	rule, err := st.Rule("R1")
	require.NoError(t, err)
	assert.Same(t, r1, rule)

	_, err = st.Rule("R2")
	assert.True(t, diagnostics.IsScope(err))
	assert.Equal(t, `scope error: Rule "R2" not found`, err.Error())

	again := &testRule{label: "R1"}
	_, err = st.AddRule(again)
	require.NoError(t, err)
	rule, _ = st.Rule("R1")
	assert.Same(t, again, rule)
	assert.Equal(t, 1, st.RuleCount())

	_, err = st.AddRule(nil)
	assert.True(t, diagnostics.IsCapability(err))
}

func TestRenameAtomicity(t *testing.T) {
	st := newTable()
	r := &testRule{label: "R1"}
	_, err := st.AddRule(r)
	require.NoError(t, err)

	displaced, err := st.SetRuleLabel(r, "R2")
	require.NoError(t, err)
	assert.Nil(t, displaced)

	_, err = st.Lookup("R1")
	assert.True(t, diagnostics.IsScope(err))

	e, err := st.Lookup("R2")
	require.NoError(t, err)
	assert.Same(t, r, e)
	assert.Equal(t, "R2", r.Label())
	assert.Equal(t, []string{"R2"}, labels(st.Rules()))
}

func TestRenameMovesToEnd(t *testing.T) {
	st := newTable()
	a, b, c := &testRule{label: "A"}, &testRule{label: "B"}, &testRule{label: "C"}
	for _, r := range []*testRule{a, b, c} {
		_, err := st.AddRule(r)
		require.NoError(t, err)
	}

	_, err := st.SetRuleLabel(a, "A2")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "A2"}, labels(st.Rules()))

	// relabelling to the same label is a move, not a displacement
	displaced, err := st.SetRuleLabel(b, "B")
	require.NoError(t, err)
	assert.Nil(t, displaced)
	assert.Equal(t, []string{"C", "A2", "B"}, labels(st.Rules()))
}

func TestRenameOntoOccupiedLabel(t *testing.T) {
	var buf bytes.Buffer
	st := NewSymbolTable(WithLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))))
	r1, r2 := &testRule{label: "R1"}, &testRule{label: "R2"}
	_, _ = st.AddRule(r1)
	_, _ = st.AddRule(r2)

	displaced, err := st.SetRuleLabel(r1, "R2")
	require.NoError(t, err)
	assert.Same(t, r2, displaced)
	assert.Equal(t, 1, st.RuleCount())

	got, err := st.Rule("R2")
	require.NoError(t, err)
	assert.Same(t, r1, got)
	assert.Contains(t, buf.String(), "relabel replaced an existing rule")
}

func TestRenameUnregisteredRule(t *testing.T) {
	st := newTable()
	r := &testRule{label: "draft"}

	_, err := st.SetRuleLabel(r, "R7")
	require.NoError(t, err)
	got, err := st.Rule("R7")
	require.NoError(t, err)
	assert.Same(t, r, got)

	_, err = st.SetRuleLabel(nil, "R8")
	assert.True(t, diagnostics.IsCapability(err))
	assert.Equal(t, 1, st.RuleCount())
}

func TestLookupNamespacePriority(t *testing.T) {
	st := newTable()
	v := &testVar{"X", PlainVariable}
	r := &testRule{label: "X"}
	_, _ = st.AddRule(r)
	require.NoError(t, st.AddVariables(v))

	e, err := st.Lookup("X")
	require.NoError(t, err)
	assert.Same(t, v, e)

	rule, err := st.Rule("X")
	require.NoError(t, err)
	assert.Same(t, r, rule)

	_, err = st.Lookup("Y")
	assert.Equal(t, `scope error: "Y" is not a known variable or rule name`, err.Error())
	de, ok := diagnostics.As(err)
	require.True(t, ok)
	assert.Equal(t, diagnostics.CategorySymbol, de.Category)
	assert.Equal(t, "Y", de.Name)
}

func TestIteratorsAreLive(t *testing.T) {
	st := newTable()
	require.NoError(t, st.AddVariables(&testVar{"in1", Antecedent}, &testVar{"out1", Consequent}))

	ants := st.Antecedents()
	assert.Equal(t, []string{"in1"}, labels(ants))

	require.NoError(t, st.AddVariables(&testVar{"in2", Antecedent}, &testVar{"plain", PlainVariable}))
	assert.Equal(t, []string{"in1", "in2"}, labels(ants), "the same sequence sees later registrations")
	assert.Equal(t, []string{"in1", "in2"}, labels(ants), "and can be ranged over again")
	assert.Equal(t, []string{"out1"}, labels(st.Consequents()))
	assert.Equal(t, []string{"in1", "out1", "in2", "plain"}, labels(st.Variables()))
}

func TestIteratorEarlyExit(t *testing.T) {
	st := newTable()
	require.NoError(t, st.AddVariables(
		&testVar{"a", Antecedent},
		&testVar{"b", Antecedent},
		&testVar{"c", Antecedent},
	))
	var seen []string
	for v := range st.Antecedents() {
		seen = append(seen, v.Label())
		if len(seen) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, seen)
	assert.Len(t, slices.Collect(st.Variables()), 3)
}

func TestClear(t *testing.T) {
	st := newTable()
	st.SetFunctionBlock("tipper")
	require.NoError(t, st.AddVariables(&testVar{"food", Antecedent}))
	_, _ = st.AddRule(&testRule{label: "R1"})
	assert.Equal(t, "SymbolTable{function block: tipper, variables: 1, rules: 1}", st.String())

	st.Clear()
	assert.Empty(t, st.FunctionBlock())
	assert.Zero(t, st.VariableCount())
	assert.Zero(t, st.RuleCount())
	assert.Empty(t, labels(st.Variables()))
	assert.Equal(t, "SymbolTable{function block: -, variables: 0, rules: 0}", st.String())

	// the table is usable after a clear
	require.NoError(t, st.AddVariables(&testVar{"food", Antecedent}))
	assert.Equal(t, []string{"food"}, labels(st.Antecedents()))
}

func TestVariableKindString(t *testing.T) {
	assert.Equal(t, "antecedent", Antecedent.String())
	assert.Equal(t, "consequent", Consequent.String())
	assert.Equal(t, "variable", PlainVariable.String())
	assert.False(t, VariableKind(-1).Valid())
}
