package frontend

import (
	"github.com/funvibe/fclsem/internal/diagnostics"
	"github.com/funvibe/fclsem/internal/norms"
	"github.com/funvibe/fclsem/internal/pipeline"
	"github.com/funvibe/fclsem/internal/token"
)

// ResolveProcessor resolves the dialect name tokens of the stream.
//
// Shape, defuzzify and hedge names resolve one at a time. AND and OR names
// are collected per rule block and resolved together when the block ends,
// so a block naming only one operator gets that family's dual. AND/OR
// tokens outside any RULEBLOCK belong to the unnamed block "".
type ResolveProcessor struct{}

type openBlock struct {
	name          string
	andTok, orTok token.Token
	hasAnd, hasOr bool
}

func (rp *ResolveProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Fatal || ctx.Mapper == nil {
		return ctx
	}
	if ctx.Aggregations == nil {
		ctx.Aggregations = make(map[string]*norms.Pair)
	}
	var block *openBlock

	closeBlock := func() {
		if block == nil {
			return
		}
		rp.closeBlock(ctx, block)
		block = nil
	}
	ensureBlock := func() *openBlock {
		if block == nil {
			block = &openBlock{}
		}
		return block
	}

	for _, tok := range ctx.Tokens {
		switch tok.Type {
		case token.SHAPE:
			s, err := ctx.Mapper.TranslateShape(tok.Lexeme)
			if err != nil {
				rp.fail(ctx, err, tok)
				continue
			}
			ctx.Resolutions = append(ctx.Resolutions, pipeline.Resolution{Token: tok, Shape: s})
		case token.DEFUZZ:
			d, err := ctx.Mapper.TranslateDefuzz(tok.Lexeme)
			if err != nil {
				rp.fail(ctx, err, tok)
				continue
			}
			ctx.Resolutions = append(ctx.Resolutions, pipeline.Resolution{Token: tok, Defuzz: d})
		case token.HEDGE:
			h, err := ctx.Mapper.TranslateHedge(tok.Lexeme)
			if err != nil {
				rp.fail(ctx, err, tok)
				continue
			}
			ctx.Resolutions = append(ctx.Resolutions, pipeline.Resolution{Token: tok, Hedge: h})
		case token.RULEBLOCK:
			closeBlock()
			block = &openBlock{name: tok.Lexeme}
		case token.AND:
			b := ensureBlock()
			b.andTok, b.hasAnd = tok, true
		case token.OR:
			b := ensureBlock()
			b.orTok, b.hasOr = tok, true
		case token.END_RULEBLOCK, token.EOF:
			closeBlock()
		}
	}
	closeBlock()
	return ctx
}

func (rp *ResolveProcessor) closeBlock(ctx *pipeline.PipelineContext, b *openBlock) {
	var andName, orName string
	if b.hasAnd {
		andName = b.andTok.Lexeme
	}
	if b.hasOr {
		orName = b.orTok.Lexeme
	}
	pair, err := ctx.Mapper.TranslateAndOr(andName, orName)
	if err != nil {
		tok := b.orTok
		if de, ok := diagnostics.As(err); ok && de.Category == diagnostics.CategoryAnd {
			tok = b.andTok
		}
		rp.fail(ctx, err, tok)
		return
	}
	if _, dup := ctx.Aggregations[b.name]; dup {
		ctx.Log().Debug("rule block operators redefined", "block", b.name)
	} else {
		ctx.Blocks = append(ctx.Blocks, b.name)
	}
	ctx.Aggregations[b.name] = pair
}

func (rp *ResolveProcessor) fail(ctx *pipeline.PipelineContext, err error, tok token.Token) {
	de, ok := diagnostics.As(err)
	if !ok {
		de = diagnostics.NewError(diagnostics.ErrU001, tok, err.Error())
	}
	ctx.AddError(de, tok)
}
