// Package dialect resolves the names a fuzzy control language dialect uses
// for membership-function shapes, defuzzification methods, hedges and
// AND/OR operators.
//
// A Mapper starts empty and is populated by loading vocabularies. Each load
// appends a layer; resolution walks the layers newest-first, so a later
// vocabulary overrides an earlier one on a name collision while leaving the
// rest of the earlier vocabulary visible. The FCL and jFuzzyLogic
// vocabularies are overlays on the IEEE baseline.
//
// A Mapper owns all of its state. It is not safe for concurrent mutation;
// give each front-end pass its own instance.
package dialect

import (
	"log/slog"
	"slices"

	"github.com/funvibe/fclsem/internal/config"
	"github.com/funvibe/fclsem/internal/defuzz"
	"github.com/funvibe/fclsem/internal/diagnostics"
	"github.com/funvibe/fclsem/internal/hedges"
	"github.com/funvibe/fclsem/internal/norms"
	"github.com/funvibe/fclsem/internal/shapes"
	"github.com/funvibe/fclsem/internal/utils"
	"github.com/google/uuid"
)

// Layer is one loaded vocabulary.
type Layer struct {
	ID         uuid.UUID
	Vocabulary *Vocabulary
}

type Mapper struct {
	shapes shapes.Registry
	logger *slog.Logger
	layers []Layer
}

// Option configures a Mapper.
type Option func(*Mapper)

// WithShapes sets the registry shape ids resolve against. The default is
// shapes.Default().
func WithShapes(r shapes.Registry) Option {
	return func(m *Mapper) {
		m.shapes = r
	}
}

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(m *Mapper) {
		m.logger = l
	}
}

// NewMapper returns an empty mapper. Nothing resolves until a vocabulary
// is loaded.
func NewMapper(opts ...Option) *Mapper {
	m := &Mapper{}
	for _, opt := range opts {
		opt(m)
	}
	if m.shapes == nil {
		m.shapes = shapes.Default()
	}
	if m.logger == nil {
		m.logger = slog.Default()
	}
	return m
}

// Load adds v as the newest layer. Every shape id and hedge it names must
// exist; on error nothing is loaded.
func (m *Mapper) Load(v *Vocabulary) error {
	if v == nil {
		return diagnostics.InvalidVocabulary("", "nil vocabulary")
	}
	layer := v.clone()
	if err := m.check(layer); err != nil {
		return err
	}

	for _, req := range layer.Requires {
		if !m.Loaded(req) {
			m.logger.Warn("vocabulary loaded before its baseline",
				"vocabulary", layer.Name, "requires", req)
		}
	}

	id := uuid.New()
	m.layers = append(m.layers, Layer{ID: id, Vocabulary: layer})
	m.logger.Debug("loaded vocabulary",
		"vocabulary", layer.Name, "layer", id.String(), "names", layer.Size(), "depth", len(m.layers))
	return nil
}

func (m *Mapper) check(v *Vocabulary) error {
	for _, name := range utils.SortedKeys(v.Shapes) {
		if _, ok := m.shapes.Lookup(v.Shapes[name]); !ok {
			return diagnostics.InvalidVocabulary(v.Name, "shapes.%s: unknown shape id %q", name, v.Shapes[name])
		}
	}
	for _, name := range utils.SortedKeys(v.Hedges) {
		if _, ok := hedges.Lookup(v.Hedges[name]); !ok {
			return diagnostics.InvalidVocabulary(v.Name, "hedges.%s: unknown hedge %q", name, v.Hedges[name])
		}
	}
	for _, name := range utils.SortedKeys(v.And) {
		if !v.And[name].Valid() {
			return diagnostics.InvalidVocabulary(v.Name, "and.%s: invalid family %d", name, int(v.And[name]))
		}
	}
	for _, name := range utils.SortedKeys(v.Or) {
		if !v.Or[name].Valid() {
			return diagnostics.InvalidVocabulary(v.Name, "or.%s: invalid family %d", name, int(v.Or[name]))
		}
	}
	return nil
}

// LoadBuiltin loads one of the built-in vocabularies by name.
func (m *Mapper) LoadBuiltin(name string) error {
	v, err := Builtin(name)
	if err != nil {
		return err
	}
	return m.Load(v)
}

// LoadIEEE loads the IEEE 1855 baseline.
func (m *Mapper) LoadIEEE() error { return m.LoadBuiltin(config.DialectIEEE) }

// LoadFCL loads the FCL overlay. Load the IEEE baseline first.
func (m *Mapper) LoadFCL() error { return m.LoadBuiltin(config.DialectFCL) }

// LoadJFuzzyLogic loads the jFuzzyLogic overlay. Load the IEEE baseline first.
func (m *Mapper) LoadJFuzzyLogic() error { return m.LoadBuiltin(config.DialectJFuzzyLogic) }

// Loaded reports whether a vocabulary with this name has been loaded.
func (m *Mapper) Loaded(name string) bool {
	n := utils.NormalizeName(name)
	if n == config.DialectJFLAlias {
		n = config.DialectJFuzzyLogic
	}
	return slices.ContainsFunc(m.layers, func(l Layer) bool { return l.Vocabulary.Name == n })
}

// Layers returns the loaded layers, oldest first.
func (m *Mapper) Layers() []Layer {
	return slices.Clone(m.layers)
}

func resolve[T any](m *Mapper, pick func(*Vocabulary) map[string]T, name string) (T, bool) {
	key := utils.NormalizeName(name)
	for i := len(m.layers) - 1; i >= 0; i-- {
		if v, ok := pick(m.layers[i].Vocabulary)[key]; ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func shapeNames(v *Vocabulary) map[string]string           { return v.Shapes }
func defuzzNames(v *Vocabulary) map[string]defuzz.Strategy { return v.Defuzz }
func andNames(v *Vocabulary) map[string]norms.Family       { return v.And }
func orNames(v *Vocabulary) map[string]norms.Family        { return v.Or }
func hedgeNames(v *Vocabulary) map[string]string           { return v.Hedges }

// TranslateShape resolves a membership-function name.
func (m *Mapper) TranslateShape(name string) (shapes.Shape, error) {
	id, ok := resolve(m, shapeNames, name)
	if !ok {
		return shapes.Shape{}, diagnostics.Unsupported(diagnostics.CategoryShape, name)
	}
	s, ok := m.shapes.Lookup(id)
	if !ok {
		// the registry changed after the vocabulary was checked
		return shapes.Shape{}, diagnostics.Unsupported(diagnostics.CategoryShape, name)
	}
	return s, nil
}

// TranslateDefuzz resolves a defuzzification method name.
func (m *Mapper) TranslateDefuzz(name string) (defuzz.Strategy, error) {
	s, ok := resolve(m, defuzzNames, name)
	if !ok {
		return "", diagnostics.Unsupported(diagnostics.CategoryDefuzz, name)
	}
	return s, nil
}

// TranslateHedge resolves a hedge name.
func (m *Mapper) TranslateHedge(name string) (hedges.Hedge, error) {
	id, ok := resolve(m, hedgeNames, name)
	if !ok {
		return hedges.Hedge{}, diagnostics.Unsupported(diagnostics.CategoryHedge, name)
	}
	h, _ := hedges.Lookup(id)
	return h, nil
}

// TranslateAndOr resolves the operator pair for a rule block. An empty
// name means the operator was not given.
//
//   - neither given: the min-max pair.
//   - one given: that name's family, so the other operator is its dual.
//   - both given: the AND of one family with the OR of the other, even when
//     they are not duals.
//
// The AND name is checked before the OR name.
func (m *Mapper) TranslateAndOr(andName, orName string) (*norms.Pair, error) {
	var andPair, orPair *norms.Pair
	if andName != "" {
		f, ok := resolve(m, andNames, andName)
		if !ok {
			return nil, diagnostics.Unsupported(diagnostics.CategoryAnd, andName)
		}
		andPair = norms.Get(f)
	}
	if orName != "" {
		f, ok := resolve(m, orNames, orName)
		if !ok {
			return nil, diagnostics.Unsupported(diagnostics.CategoryOr, orName)
		}
		orPair = norms.Get(f)
	}

	switch {
	case andPair != nil && orPair != nil:
		return norms.Combine(andPair, orPair), nil
	case andPair != nil:
		return andPair, nil
	case orPair != nil:
		return orPair, nil
	}
	return norms.Default(), nil
}

// Names returns every name currently resolvable in a category, sorted.
// Categories other than shape, defuzz, and, or and hedge yield nil.
func (m *Mapper) Names(c diagnostics.Category) []string {
	seen := make(map[string]struct{})
	for _, l := range m.layers {
		var keys []string
		switch c {
		case diagnostics.CategoryShape:
			keys = utils.SortedKeys(l.Vocabulary.Shapes)
		case diagnostics.CategoryDefuzz:
			keys = utils.SortedKeys(l.Vocabulary.Defuzz)
		case diagnostics.CategoryAnd:
			keys = utils.SortedKeys(l.Vocabulary.And)
		case diagnostics.CategoryOr:
			keys = utils.SortedKeys(l.Vocabulary.Or)
		case diagnostics.CategoryHedge:
			keys = utils.SortedKeys(l.Vocabulary.Hedges)
		default:
			return nil
		}
		for _, k := range keys {
			seen[k] = struct{}{}
		}
	}
	return utils.SortedKeys(seen)
}
