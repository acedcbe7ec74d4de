// Package fcl is the public entry point of the fuzzy control language
// semantic core. A Session owns one dialect mapper and one symbol table and
// runs front-end passes over parser output against them.
package fcl

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/funvibe/fclsem/internal/config"
	"github.com/funvibe/fclsem/internal/diagnostics"
	"github.com/funvibe/fclsem/internal/dialect"
	"github.com/funvibe/fclsem/internal/frontend"
	"github.com/funvibe/fclsem/internal/pipeline"
	"github.com/funvibe/fclsem/internal/prettyprinter"
	"github.com/funvibe/fclsem/internal/symbols"
	"github.com/funvibe/fclsem/internal/token"
	"github.com/prometheus/client_golang/prometheus"
)

type (
	Config      = config.Config
	Token       = token.Token
	TokenType   = token.TokenType
	Declaration = pipeline.Declaration
	DeclKind    = pipeline.DeclKind
	Diagnostic  = diagnostics.DiagnosticError
	// Result is the state a pass leaves behind: resolutions, rule block
	// operator pairs and diagnostics.
	Result      = pipeline.PipelineContext
)

const (
	DeclFunctionBlock = pipeline.DeclFunctionBlock
	DeclVariables     = pipeline.DeclVariables
	DeclRule          = pipeline.DeclRule
	DeclRelabel       = pipeline.DeclRelabel
	DeclReference     = pipeline.DeclReference
)

// Session wires configuration, dialect mapper, symbol table and the
// front-end pipeline together. It is not safe for concurrent use; give
// each fuzzy system its own session.
type Session struct {
	cfg      *config.Config
	logger   *slog.Logger
	mapper   *dialect.Mapper
	symbols  *symbols.SymbolTable
	pipeline *pipeline.Pipeline
	registry prometheus.Registerer
}

// Option configures a Session.
type Option func(*Session)

// WithLogger replaces the session logger. By default the session logs
// text to stderr at the configured level.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// WithMetrics registers pass metrics on reg. Sessions sharing a registry
// would collide, so give each its own or wrap reg with
// prometheus.WrapRegistererWith.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(s *Session) {
		s.registry = reg
	}
}

// New creates a session and loads the configured dialects. A nil cfg means
// config.Default().
func New(cfg *config.Config, opts ...Option) (*Session, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	s := &Session{cfg: cfg}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		level, err := cfg.Level()
		if err != nil {
			return nil, fmt.Errorf("session: %w", err)
		}
		s.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	}

	s.mapper = dialect.NewMapper(dialect.WithLogger(s.logger))
	s.symbols = symbols.NewSymbolTable(symbols.WithLogger(s.logger))
	s.pipeline = pipeline.New(
		&frontend.DialectProcessor{},
		&frontend.ResolveProcessor{},
		&frontend.DeclareProcessor{},
	).WithMetrics(pipeline.NewMetrics(s.registry))

	for _, name := range cfg.Dialects {
		if err := s.mapper.LoadBuiltin(name); err != nil {
			return nil, fmt.Errorf("session: loading dialect %s: %w", name, err)
		}
	}
	return s, nil
}

// NewFromYAML parses a YAML configuration and creates a session from it.
func NewFromYAML(data []byte, path string, opts ...Option) (*Session, error) {
	cfg, err := config.ParseConfig(data, path)
	if err != nil {
		return nil, err
	}
	return New(cfg, opts...)
}

// LoadVocabulary parses a user-defined vocabulary and layers it over the
// ones already loaded.
func (s *Session) LoadVocabulary(data []byte, path string) error {
	v, err := dialect.ParseVocabulary(data, path)
	if err != nil {
		return err
	}
	return s.mapper.Load(v)
}

// Run resolves the name tokens and applies the declarations to the
// session's symbol table. path is used only to label diagnostics.
func (s *Session) Run(path string, tokens []Token, decls ...Declaration) *Result {
	ctx := pipeline.NewPipelineContext(tokens, decls...)
	ctx.FilePath = path
	ctx.Config = s.cfg
	ctx.Logger = s.logger
	ctx.Mapper = s.mapper
	ctx.Symbols = s.symbols
	return s.pipeline.Run(ctx)
}

func (s *Session) Config() *Config               { return s.cfg }
func (s *Session) Mapper() *dialect.Mapper       { return s.mapper }
func (s *Session) Symbols() *symbols.SymbolTable { return s.symbols }

// Reset empties the symbol table. Loaded dialects are kept.
func (s *Session) Reset() {
	s.symbols.Clear()
}

// Render writes the symbol table dump to w, coloured according to the
// configured colour mode.
func (s *Session) Render(w io.Writer) error {
	p := prettyprinter.NewTablePrinter(prettyprinter.ColorEnabled(s.cfg.Color, w))
	p.Print(s.symbols)
	_, err := io.WriteString(w, p.String())
	return err
}
