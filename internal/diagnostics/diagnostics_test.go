package diagnostics

import (
	"errors"
	"fmt"
	"testing"

	"github.com/funvibe/fclsem/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorText(t *testing.T) {
	tests := []struct {
		name string
		err  *DiagnosticError
		want string
	}{
		{
			"unsupported shape",
			Unsupported(CategoryShape, "Bell"),
			`unsupported feature: membership function "Bell"`,
		},
		{
			"positioned",
			Unsupported(CategoryOr, "nsum").At(token.Token{Type: token.OR, Lexeme: "nsum", Line: 12, Column: 5}),
			`12:5: unsupported feature: or method "nsum"`,
		},
		{
			"variable not found",
			VariableNotFound("speed"),
			`scope error: Variable "speed" not found`,
		},
		{
			"rule not found",
			RuleNotFound("R1"),
			`scope error: Rule "R1" not found`,
		},
		{
			"unknown symbol",
			UnknownSymbol("R9"),
			`scope error: "R9" is not a known variable or rule name`,
		},
		{
			"capability",
			CapabilityViolation(CategoryVariable, "<nil>"),
			`capability violation: <nil> should be a variable`,
		},
		{
			"vocabulary",
			InvalidVocabulary("custom.yaml", "and %q: unknown family", "yager"),
			`custom.yaml: invalid vocabulary: and "yager": unknown family`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestClassification(t *testing.T) {
	unsupported := Unsupported(CategoryDefuzz, "wtsum")
	scope := UnknownSymbol("x")
	capability := CapabilityViolation(CategoryRule, "<nil>")

	wrapped := fmt.Errorf("resolving block: %w", unsupported)

	assert.True(t, IsUnsupported(wrapped))
	assert.True(t, errors.Is(wrapped, ErrUnsupportedFeature))
	assert.False(t, IsScope(wrapped))

	assert.True(t, IsScope(scope))
	assert.True(t, errors.Is(scope, ErrScope))
	assert.False(t, IsFatal(scope))

	assert.True(t, IsCapability(capability))
	assert.True(t, IsFatal(fmt.Errorf("declare: %w", capability)))
	assert.ErrorIs(t, capability, ErrCapabilityViolation)

	assert.False(t, IsUnsupported(errors.New("unsupported feature")))
	assert.False(t, IsFatal(nil))
}

func TestAtDoesNotMutate(t *testing.T) {
	base := Unsupported(CategoryShape, "bell")
	positioned := base.At(token.Token{Line: 3, Column: 1})
	assert.Empty(t, base.Token.Pos())
	assert.Equal(t, "3:1", positioned.Token.Pos())
	assert.Equal(t, base.Name, positioned.Name)
}

func TestAs(t *testing.T) {
	de, ok := As(fmt.Errorf("wrap: %w", VariableNotFound("temp")))
	require.True(t, ok)
	assert.Equal(t, ErrS001, de.Code)
	assert.Equal(t, CategoryVariable, de.Category)
	assert.Equal(t, "temp", de.Name)
	assert.Equal(t, "scope error", de.Kind())
	assert.Equal(t, `Variable "temp" not found`, de.Message())

	_, ok = As(errors.New("plain"))
	assert.False(t, ok)
}

func TestNewErrorFormatting(t *testing.T) {
	assert.Equal(t, "unsupported feature: plain", NewError(ErrU001, token.Token{}, "plain").Error())
	assert.Equal(t, "scope error: a 1", NewErrorf(ErrS001, token.Token{}, "a %d", 1).Error())
	assert.Equal(t, "scope error: ab", NewError(ErrS001, token.Token{}, "a", "b").Error())

	// a message that is not a format string is kept as is
	msg := "100% of %q"
	assert.Equal(t, msg, NewError(ErrU001, token.Token{}, msg).Message())
	assert.Equal(t, "error", NewError(ErrorCode("X"), token.Token{}).Error())
}
