package token

import "fmt"

type Token struct {
	Lexeme string
	Kind   Kind
	Pos    Pos
}

func New(lexeme string, kind Kind, position Pos) *Token {
	return &Token{Lexeme: lexeme, Kind: kind, Pos: position}
}

// Sentinel is the token handed out once a stream runs past its last token.
// It never matches anything the grammar expects.
func Sentinel(position Pos) *Token {
	return &Token{Lexeme: "", Kind: OTHER, Pos: position}
}

func (token *Token) Is(kind Kind, lexeme string) bool {
	return token.Kind == kind && token.Lexeme == lexeme
}

func (token *Token) IsSentinel() bool {
	return token.Kind == OTHER && token.Lexeme == ""
}

// Equivalent compares kind and lexeme only; positions are ignored.
func (token *Token) Equivalent(other *Token) bool {
	if token == nil || other == nil {
		return token == other
	}
	return token.Kind == other.Kind && token.Lexeme == other.Lexeme
}

func (token *Token) String() string {
	return fmt.Sprintf("%s | %s | %s", token.Lexeme, token.Kind, token.Pos)
}
