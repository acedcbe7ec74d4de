package dialect

import (
	"bytes"
	"embed"
	"errors"
	"io"

	"github.com/funvibe/fclsem/internal/config"
	"github.com/funvibe/fclsem/internal/defuzz"
	"github.com/funvibe/fclsem/internal/diagnostics"
	"github.com/funvibe/fclsem/internal/norms"
	"github.com/funvibe/fclsem/internal/utils"
	"gopkg.in/yaml.v3"
)

//go:embed vocabularies/*.yaml
var builtinFS embed.FS

var builtinFiles = map[string]string{
	config.DialectIEEE:        "vocabularies/ieee.yaml",
	config.DialectFCL:         "vocabularies/fcl.yaml",
	config.DialectJFuzzyLogic: "vocabularies/jfuzzylogic.yaml",
}

// Vocabulary is one dialect's bundle of names. Keys are dialect names; the
// values are shape catalog ids, defuzzification strategies, norm families
// and hedge names.
type Vocabulary struct {
	Name        string
	Description string
	// Requires lists vocabularies that should be loaded first. It is a
	// documented precondition and is not enforced.
	Requires []string

	Shapes map[string]string
	Defuzz map[string]defuzz.Strategy
	And    map[string]norms.Family
	Or     map[string]norms.Family
	Hedges map[string]string
}

// vocabularyFile is the YAML form of a Vocabulary.
type vocabularyFile struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description,omitempty"`
	Requires    []string          `yaml:"requires,omitempty"`
	Shapes      map[string]string `yaml:"shapes,omitempty"`
	Defuzz      map[string]string `yaml:"defuzz,omitempty"`
	And         map[string]string `yaml:"and,omitempty"`
	Or          map[string]string `yaml:"or,omitempty"`
	Hedges      map[string]string `yaml:"hedges,omitempty"`
}

// ParseVocabulary parses a YAML vocabulary document. The path argument is
// used only for error messages. Unknown top-level fields are rejected.
func ParseVocabulary(data []byte, path string) (*Vocabulary, error) {
	var f vocabularyFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, diagnostics.InvalidVocabulary(path, "empty document")
		}
		return nil, diagnostics.InvalidVocabulary(path, "%v", err)
	}
	return f.resolve(path)
}

func (f *vocabularyFile) resolve(path string) (*Vocabulary, error) {
	if f.Name == "" {
		return nil, diagnostics.InvalidVocabulary(path, "name is required")
	}
	v := &Vocabulary{
		Name:        utils.NormalizeName(f.Name),
		Description: f.Description,
		Shapes:      make(map[string]string, len(f.Shapes)),
		Defuzz:      make(map[string]defuzz.Strategy, len(f.Defuzz)),
		And:         make(map[string]norms.Family, len(f.And)),
		Or:          make(map[string]norms.Family, len(f.Or)),
		Hedges:      make(map[string]string, len(f.Hedges)),
	}
	for _, r := range f.Requires {
		v.Requires = append(v.Requires, utils.NormalizeName(r))
	}

	for _, name := range utils.SortedKeys(f.Shapes) {
		if f.Shapes[name] == "" {
			return nil, diagnostics.InvalidVocabulary(path, "shapes.%s: empty shape id", name)
		}
		v.Shapes[utils.NormalizeName(name)] = f.Shapes[name]
	}
	for _, name := range utils.SortedKeys(f.Defuzz) {
		s, err := defuzz.ParseStrategy(f.Defuzz[name])
		if err != nil {
			return nil, diagnostics.InvalidVocabulary(path, "defuzz.%s: %v", name, err)
		}
		v.Defuzz[utils.NormalizeName(name)] = s
	}
	for _, name := range utils.SortedKeys(f.And) {
		fam, err := norms.ParseFamily(f.And[name])
		if err != nil {
			return nil, diagnostics.InvalidVocabulary(path, "and.%s: %v", name, err)
		}
		v.And[utils.NormalizeName(name)] = fam
	}
	for _, name := range utils.SortedKeys(f.Or) {
		fam, err := norms.ParseFamily(f.Or[name])
		if err != nil {
			return nil, diagnostics.InvalidVocabulary(path, "or.%s: %v", name, err)
		}
		v.Or[utils.NormalizeName(name)] = fam
	}
	for _, name := range utils.SortedKeys(f.Hedges) {
		v.Hedges[utils.NormalizeName(name)] = f.Hedges[name]
	}
	return v, nil
}

// Builtin returns a fresh copy of a built-in vocabulary. Names are
// case-insensitive and "jfl" is accepted for jFuzzyLogic.
func Builtin(name string) (*Vocabulary, error) {
	n := utils.NormalizeName(name)
	if n == config.DialectJFLAlias {
		n = config.DialectJFuzzyLogic
	}
	file, ok := builtinFiles[n]
	if !ok {
		return nil, diagnostics.InvalidVocabulary("", "no built-in vocabulary %q", name)
	}
	data, err := builtinFS.ReadFile(file)
	if err != nil {
		return nil, diagnostics.InvalidVocabulary(file, "%v", err)
	}
	return ParseVocabulary(data, file)
}

// BuiltinNames lists the built-in vocabularies in baseline-first order.
func BuiltinNames() []string {
	return []string{config.DialectIEEE, config.DialectFCL, config.DialectJFuzzyLogic}
}

// clone returns a deep copy with every key normalized, so a loaded layer is
// isolated from later changes to the caller's value.
func (v *Vocabulary) clone() *Vocabulary {
	c := &Vocabulary{
		Name:        utils.NormalizeName(v.Name),
		Description: v.Description,
		Shapes:      utils.NormalizeKeys(v.Shapes),
		Defuzz:      utils.NormalizeKeys(v.Defuzz),
		And:         utils.NormalizeKeys(v.And),
		Or:          utils.NormalizeKeys(v.Or),
		Hedges:      utils.NormalizeKeys(v.Hedges),
	}
	for _, r := range v.Requires {
		c.Requires = append(c.Requires, utils.NormalizeName(r))
	}
	return c
}

// Size is the total number of names the vocabulary defines.
func (v *Vocabulary) Size() int {
	return len(v.Shapes) + len(v.Defuzz) + len(v.And) + len(v.Or) + len(v.Hedges)
}
