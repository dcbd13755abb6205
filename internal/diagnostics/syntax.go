package diagnostics

import (
	"errors"
	"fmt"

	"github.com/HicaroD/clite/internal/lexer/token"
)

// SyntaxError is the only error the parser produces. It names what the
// grammar wanted and the token that was actually there.
type SyntaxError struct {
	Expected string
	Kind     token.Kind
	Lexeme   string
	Pos      token.Pos
}

func NewSyntaxError(expected string, actual *token.Token) *SyntaxError {
	return &SyntaxError{
		Expected: expected,
		Kind:     actual.Kind,
		Lexeme:   actual.Lexeme,
		Pos:      actual.Pos,
	}
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("Syntax error - Expecting: %s But saw: %s = %s", e.Expected, e.Kind, e.Lexeme)
}

// AtEnd reports whether the parser ran out of input, i.e. the offending
// token is the end-of-stream sentinel.
func (e *SyntaxError) AtEnd() bool {
	return e.Kind == token.OTHER && e.Lexeme == ""
}

func AsSyntaxError(err error) (*SyntaxError, bool) {
	var syntaxErr *SyntaxError
	if errors.As(err, &syntaxErr) {
		return syntaxErr, true
	}
	return nil, false
}
