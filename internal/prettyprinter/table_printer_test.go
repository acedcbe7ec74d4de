package prettyprinter

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/funvibe/fclsem/internal/config"
	"github.com/funvibe/fclsem/internal/control"
	"github.com/funvibe/fclsem/internal/norms"
	"github.com/funvibe/fclsem/internal/symbols"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bareRule struct{ label string }

func (r *bareRule) Label() string         { return r.label }
func (r *bareRule) SetLabel(label string) { r.label = label }

func tipper(t *testing.T) *symbols.SymbolTable {
	t.Helper()
	st := symbols.NewSymbolTable(symbols.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	st.SetFunctionBlock("tipper")

	service := control.NewAntecedent("service", []float64{0, 5, 10})
	require.NoError(t, service.AddTerm("poor", []float64{1, 0, 0}))
	require.NoError(t, service.AddTerm("good", []float64{0, 1, 0}))
	tip := control.NewConsequent("tip", []float64{0, 12.5, 25})
	require.NoError(t, tip.AddTerm("cheap", []float64{1, 0, 0}))
	require.NoError(t, st.AddVariables(service, tip))

	r := control.NewRule("1", "service IS poor", "tip IS cheap")
	r.Aggregation = norms.Combine(norms.Get(norms.MinMax), norms.Get(norms.ProductSum))
	_, err := st.AddRule(r)
	require.NoError(t, err)
	_, err = st.AddRule(&bareRule{"2"})
	require.NoError(t, err)
	return st
}

func TestRender(t *testing.T) {
	want := strings.Join([]string{
		`Function-Block "tipper"`,
		`antecedent: service, range := (0 .. 10)`,
		`            terms: [poor, good]`,
		`consequent: tip, range := (0 .. 25)`,
		`            terms: [cheap]`,
		`Rule 1: IF service IS poor THEN tip IS cheap [min_max/product_sum]`,
		`Rule 2: 2`,
		``,
	}, "\n")
	assert.Equal(t, want, Render(tipper(t)))
}

func TestRenderEmpty(t *testing.T) {
	st := symbols.NewSymbolTable()
	assert.Empty(t, Render(st))
}

func TestColorOutput(t *testing.T) {
	p := NewTablePrinter(true)
	p.Print(tipper(t))
	out := p.String()

	assert.Contains(t, out, ansiBold+"Function-Block"+ansiReset)
	assert.Contains(t, out, ansiCyan+"service"+ansiReset)
	assert.Contains(t, out, ansiGreen+"1"+ansiReset)
}

func TestColorEnabled(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, ColorEnabled(config.ColorAlways, &buf))
	assert.False(t, ColorEnabled(config.ColorNever, &buf))
	assert.False(t, ColorEnabled(config.ColorAuto, &buf), "a buffer is not a terminal")

	t.Setenv(config.NoColorEnv, "1")
	assert.True(t, ColorEnabled(config.ColorAlways, &buf), "an explicit mode wins over NO_COLOR")
}
