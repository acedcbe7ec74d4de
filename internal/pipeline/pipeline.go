package pipeline

import (
	"time"
)

// Pipeline represents a sequence of processing stages.
type Pipeline struct {
	processors []Processor
	metrics    *Metrics
}

// Processor is one stage of a front-end pass.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// ProcessorFunc adapts a function to Processor.
type ProcessorFunc func(ctx *PipelineContext) *PipelineContext

func (f ProcessorFunc) Process(ctx *PipelineContext) *PipelineContext { return f(ctx) }

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// WithMetrics makes the pipeline record every run in m.
func (p *Pipeline) WithMetrics(m *Metrics) *Pipeline {
	p.metrics = m
	return p
}

// Run executes the pipeline.
func (p *Pipeline) Run(initialCtx *PipelineContext) *PipelineContext {
	ctx := initialCtx
	log := ctx.Log()
	log.Debug("pipeline started", "stages", len(p.processors), "tokens", len(ctx.Tokens), "declarations", len(ctx.Declarations))
	start := time.Now()

	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
		// Continue on errors to collect diagnostics from all stages;
		// processors check ctx.Fatal themselves.
	}

	// Ensure all errors have file path set
	for _, err := range ctx.Errors {
		if err.File == "" {
			err.File = ctx.FilePath
		}
	}

	elapsed := time.Since(start)
	p.metrics.observe(ctx, elapsed)
	log.Debug("pipeline finished", "errors", len(ctx.Errors), "fatal", ctx.Fatal, "elapsed", elapsed)
	return ctx
}
