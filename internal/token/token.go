package token

import "fmt"

type TokenType string

// Token types produced by a front end for names this core resolves or
// declarations it records.
const (
	SHAPE          TokenType = "SHAPE"          // membership-function shape name
	DEFUZZ         TokenType = "DEFUZZ"         // defuzzification method name
	AND            TokenType = "AND"            // AND operator name inside a rule block
	OR             TokenType = "OR"             // OR operator name inside a rule block
	HEDGE          TokenType = "HEDGE"          // linguistic hedge name
	RULEBLOCK      TokenType = "RULEBLOCK"      // start of a rule block; Lexeme is its name
	END_RULEBLOCK  TokenType = "END_RULEBLOCK"  // end of a rule block
	FUNCTION_BLOCK TokenType = "FUNCTION_BLOCK" // function block name
	VAR            TokenType = "VAR"            // variable declaration
	RULE           TokenType = "RULE"           // rule declaration
	IDENT          TokenType = "IDENT"          // reference to a variable or rule
	EOF            TokenType = "EOF"
)

type Token struct {
	Type   TokenType
	Lexeme string
	Line   int
	Column int
}

// Pos renders the position as "line:column", or "" when the token carries
// no position.
func (t Token) Pos() string {
	if t.Line <= 0 {
		return ""
	}
	return fmt.Sprintf("%d:%d", t.Line, t.Column)
}

func (t Token) String() string {
	if p := t.Pos(); p != "" {
		return fmt.Sprintf("%s(%q)@%s", t.Type, t.Lexeme, p)
	}
	return fmt.Sprintf("%s(%q)", t.Type, t.Lexeme)
}
