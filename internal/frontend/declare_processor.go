package frontend

import (
	"github.com/funvibe/fclsem/internal/diagnostics"
	"github.com/funvibe/fclsem/internal/norms"
	"github.com/funvibe/fclsem/internal/pipeline"
	"github.com/funvibe/fclsem/internal/symbols"
)

// aggregated is implemented by rules that take their rule block's
// operator pair.
type aggregated interface {
	SetAggregation(p *norms.Pair)
}

// DeclareProcessor applies the declarations to the context's symbol table,
// creating the table if there is none. Scope errors are collected and the
// pass goes on; a capability violation stops it.
type DeclareProcessor struct{}

func (dp *DeclareProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Fatal {
		return ctx
	}
	if ctx.Symbols == nil {
		ctx.Symbols = symbols.NewSymbolTable(symbols.WithLogger(ctx.Log()))
	}
	st := ctx.Symbols

	for _, decl := range ctx.Declarations {
		var err error
		switch decl.Kind {
		case pipeline.DeclFunctionBlock:
			st.SetFunctionBlock(decl.Name)
		case pipeline.DeclVariables:
			err = st.AddVariables(decl.Variables...)
		case pipeline.DeclRule:
			var added symbols.Rule
			if added, err = st.AddRule(decl.Rule); err != nil {
				break
			}
			if r, ok := added.(aggregated); ok {
				if pair, found := ctx.Aggregation(decl.Block); found {
					r.SetAggregation(pair)
				}
			}
		case pipeline.DeclRelabel:
			var displaced symbols.Rule
			displaced, err = st.SetRuleLabel(decl.Rule, decl.Name)
			if displaced != nil {
				ctx.Log().Warn("relabel replaced a rule", "label", decl.Name)
			}
		case pipeline.DeclReference:
			_, err = st.Lookup(decl.Name)
		}
		if err == nil {
			continue
		}

		de, ok := diagnostics.As(err)
		if !ok {
			de = diagnostics.NewError(diagnostics.ErrS001, decl.Token, err.Error())
		}
		ctx.AddError(de, decl.Token)
		if ctx.Fatal {
			ctx.Log().Error("declaration rejected", "kind", decl.Kind.String(), "error", de.Error())
			return ctx
		}
	}
	return ctx
}
