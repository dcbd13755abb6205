package lexer

import "github.com/HicaroD/clite/internal/lexer/token"

// Stream is a single-reader cursor over a token slice. Once the slice is
// exhausted every call to Next returns a fresh sentinel token.
type Stream struct {
	tokens []*token.Token
	index  int
	end    token.Pos
}

func NewStream(tokens []*token.Token, end token.Pos) *Stream {
	return &Stream{tokens: tokens, end: end}
}

func (s *Stream) Next() *token.Token {
	if s.index < len(s.tokens) {
		tok := s.tokens[s.index]
		s.index++
		return tok
	}
	return token.Sentinel(s.end)
}

func (s *Stream) Done() bool {
	return s.index >= len(s.tokens)
}
