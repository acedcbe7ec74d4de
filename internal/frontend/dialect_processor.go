// Package frontend holds the pipeline stages of a front-end pass: loading
// dialect vocabularies, resolving dialect name tokens and registering the
// declared variables and rules.
package frontend

import (
	"github.com/funvibe/fclsem/internal/diagnostics"
	"github.com/funvibe/fclsem/internal/dialect"
	"github.com/funvibe/fclsem/internal/pipeline"
	"github.com/funvibe/fclsem/internal/token"
)

// DialectProcessor loads the configured dialects into the context's mapper,
// creating the mapper if there is none. Dialects already loaded are skipped.
type DialectProcessor struct{}

func (dp *DialectProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Fatal {
		return ctx
	}
	if ctx.Mapper == nil {
		ctx.Mapper = dialect.NewMapper(dialect.WithLogger(ctx.Log()))
	}
	if ctx.Config == nil {
		return ctx
	}
	for _, name := range ctx.Config.Dialects {
		if ctx.Mapper.Loaded(name) {
			continue
		}
		if err := ctx.Mapper.LoadBuiltin(name); err != nil {
			de, ok := diagnostics.As(err)
			if !ok {
				de = diagnostics.InvalidVocabulary(name, "%v", err)
			}
			ctx.AddError(de, token.Token{})
		}
	}
	return ctx
}
