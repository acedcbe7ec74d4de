package pipeline

import (
	"log/slog"

	"github.com/funvibe/fclsem/internal/config"
	"github.com/funvibe/fclsem/internal/defuzz"
	"github.com/funvibe/fclsem/internal/diagnostics"
	"github.com/funvibe/fclsem/internal/dialect"
	"github.com/funvibe/fclsem/internal/hedges"
	"github.com/funvibe/fclsem/internal/norms"
	"github.com/funvibe/fclsem/internal/shapes"
	"github.com/funvibe/fclsem/internal/symbols"
	"github.com/funvibe/fclsem/internal/token"
	"github.com/google/uuid"
)

type DeclKind int

const (
	DeclFunctionBlock DeclKind = iota // names the function block
	DeclVariables                     // registers Variables
	DeclRule                          // registers Rule, in rule block Block
	DeclRelabel                       // relabels Rule to Name
	DeclReference                     // checks that Name is a known variable or rule
)

func (k DeclKind) String() string {
	switch k {
	case DeclFunctionBlock:
		return "function block"
	case DeclVariables:
		return "variables"
	case DeclRule:
		return "rule"
	case DeclRelabel:
		return "relabel"
	case DeclReference:
		return "reference"
	}
	return "unknown"
}

// Declaration is a structural event from the parser. Token positions any
// diagnostic it causes.
type Declaration struct {
	Kind  DeclKind
	Token token.Token

	Name      string
	Variables []symbols.Variable
	Rule      symbols.Rule
	Block     string
}

// Resolution is a name token and what it resolved to. Exactly one of
// Shape, Defuzz and Hedge is set, according to Token.Type.
type Resolution struct {
	Token  token.Token
	Shape  shapes.Shape
	Defuzz defuzz.Strategy
	Hedge  hedges.Hedge
}

// PipelineContext carries the state of one front-end pass between stages.
type PipelineContext struct {
	RunID    uuid.UUID
	FilePath string
	Config   *config.Config

	Tokens       []token.Token
	Declarations []Declaration

	Mapper  *dialect.Mapper
	Symbols *symbols.SymbolTable

	Resolutions []Resolution
	// Aggregations maps a rule block name to its operator pair. Blocks
	// lists the names in the order the blocks closed.
	Aggregations map[string]*norms.Pair
	Blocks       []string

	Errors []*diagnostics.DiagnosticError
	// Fatal is set when a stage hits a contract violation; later stages
	// skip their work.
	Fatal bool

	Logger *slog.Logger
}

func NewPipelineContext(tokens []token.Token, decls ...Declaration) *PipelineContext {
	return &PipelineContext{
		RunID:        uuid.New(),
		Config:       config.Default(),
		Tokens:       tokens,
		Declarations: decls,
		Aggregations: make(map[string]*norms.Pair),
	}
}

// AddError records err at tok. A fatal diagnostic also marks the context
// fatal.
func (ctx *PipelineContext) AddError(err *diagnostics.DiagnosticError, tok token.Token) {
	if tok.Line > 0 {
		err = err.At(tok)
	}
	ctx.Errors = append(ctx.Errors, err)
	if err.Fatal() {
		ctx.Fatal = true
	}
}

// HasErrors reports whether any stage recorded a diagnostic.
func (ctx *PipelineContext) HasErrors() bool {
	return len(ctx.Errors) > 0
}

// Aggregation returns the operator pair of a rule block.
func (ctx *PipelineContext) Aggregation(block string) (*norms.Pair, bool) {
	p, ok := ctx.Aggregations[block]
	return p, ok
}

func (ctx *PipelineContext) logger() *slog.Logger {
	if ctx.Logger == nil {
		return slog.Default()
	}
	return ctx.Logger
}

// Log returns the context's logger tagged with the run id.
func (ctx *PipelineContext) Log() *slog.Logger {
	return ctx.logger().With("run", ctx.RunID.String())
}
