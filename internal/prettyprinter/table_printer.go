package prettyprinter

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/funvibe/fclsem/internal/config"
	"github.com/funvibe/fclsem/internal/symbols"
	"github.com/mattn/go-isatty"
)

// --- Table Printer (diagnostic dump of a symbol table) ---

const (
	ansiReset = "\033[0m"
	ansiBold  = "\033[1m"
	ansiCyan  = "\033[36m"
	ansiGreen = "\033[32m"
)

// termsIndent lines the term list up under the variable line.
const termsIndent = 12

// ranged is implemented by variables that know their universe bounds.
type ranged interface {
	Range() (lo, hi float64)
}

// termed is implemented by variables with named terms.
type termed interface {
	TermLabels() []string
}

type TablePrinter struct {
	buf   bytes.Buffer
	color bool
}

func NewTablePrinter(color bool) *TablePrinter {
	return &TablePrinter{color: color}
}

// ColorEnabled decides whether output written to w should carry ANSI
// colour. In auto mode colour is used only when w is a terminal, NO_COLOR
// is unset and TERM is not "dumb".
func ColorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if _, ok := os.LookupEnv(config.NoColorEnv); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (p *TablePrinter) write(s string) {
	p.buf.WriteString(s)
}

func (p *TablePrinter) writeln() {
	p.buf.WriteByte('\n')
}

func (p *TablePrinter) paint(code, s string) string {
	if !p.color {
		return s
	}
	return code + s + ansiReset
}

// Print renders st: the function block, each variable with its range and
// terms, then each rule.
func (p *TablePrinter) Print(st *symbols.SymbolTable) {
	if fb := st.FunctionBlock(); fb != "" {
		p.write(p.paint(ansiBold, "Function-Block"))
		p.write(" " + strconv.Quote(fb))
		p.writeln()
	}
	for v := range st.Variables() {
		p.printVariable(v)
	}
	for r := range st.Rules() {
		p.write(p.paint(ansiBold, "Rule") + " ")
		p.write(p.paint(ansiGreen, r.Label()))
		p.write(": " + describe(r))
		p.writeln()
	}
}

func (p *TablePrinter) printVariable(v symbols.Variable) {
	p.write(v.Kind().String() + ": " + p.paint(ansiCyan, v.Label()))
	if rv, ok := v.(ranged); ok {
		lo, hi := rv.Range()
		p.write(", range := (" + formatFloat(lo) + " .. " + formatFloat(hi) + ")")
	}
	p.writeln()
	if tv, ok := v.(termed); ok {
		p.write(strings.Repeat(" ", termsIndent))
		p.write("terms: [" + strings.Join(tv.TermLabels(), ", ") + "]")
		p.writeln()
	}
}

func describe(e symbols.Entity) string {
	if s, ok := e.(fmt.Stringer); ok {
		return s.String()
	}
	return e.Label()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func (p *TablePrinter) String() string {
	return p.buf.String()
}

// Render is a convenience wrapper returning the uncoloured dump of st.
func Render(st *symbols.SymbolTable) string {
	p := NewTablePrinter(false)
	p.Print(st)
	return p.String()
}
