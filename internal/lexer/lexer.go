package lexer

import (
	"os"
	"unicode/utf8"

	"github.com/HicaroD/clite/internal/lexer/token"
)

type Lexer struct {
	Filename   string
	Classifier Classifier

	src     []byte
	tokens  []*token.Token
	scanned bool
	readErr error
	end     token.Pos
}

func New(filename string, src []byte) *Lexer {
	lexer := new(Lexer)

	lexer.Filename = filename
	lexer.Classifier = PERMISSIVE
	lexer.src = src

	return lexer
}

// NewFromFilePath never fails. An unreadable file degenerates into a
// single empty Other token so the parser rejects it on its first
// expectation; ReadErr keeps the underlying error.
func NewFromFilePath(path string) *Lexer {
	src, err := os.ReadFile(path)
	lex := New(path, src)
	if err != nil {
		lex.readErr = err
		lex.scanned = true
		lex.end = token.NewPosition(path, 1, 1)
		lex.tokens = []*token.Token{token.Sentinel(lex.end)}
	}
	return lex
}

func (lex *Lexer) ReadErr() error { return lex.readErr }

func (lex *Lexer) Tokenize() []*token.Token {
	if !lex.scanned {
		lex.scan()
	}
	return lex.tokens
}

// Stream returns a fresh cursor; each call starts from the first token.
func (lex *Lexer) Stream() *Stream {
	tokens := lex.Tokenize()
	return NewStream(tokens, lex.end)
}

func (lex *Lexer) scan() {
	lex.scanned = true
	lex.tokens = nil

	lines := splitLines(lex.src)
	for i, line := range lines {
		lex.scanLine(line, i+1)
	}

	lastLine := len(lines)
	if lastLine == 0 {
		lex.end = token.NewPosition(lex.Filename, 1, 1)
		return
	}
	lex.end = token.NewPosition(lex.Filename, lastLine, len(lines[lastLine-1])+1)
}

func (lex *Lexer) scanLine(line []byte, lineNumber int) {
	i, n := 0, len(line)
	for i < n {
		ch := line[i]
		if isSpace(ch) {
			i++
			continue
		}

		// line comment
		if ch == '/' && i+1 < n && line[i+1] == '/' {
			break
		}

		pos := token.NewPosition(lex.Filename, lineNumber, i+1)

		if i+1 < n {
			pair := string(line[i : i+2])
			if token.OPERATORS_2[pair] {
				lex.emit(pair, token.OPERATOR, pos)
				i += 2
				continue
			}
		}

		switch {
		case token.OPERATORS_1[ch]:
			lex.emit(string(ch), token.OPERATOR, pos)
		case token.SEPARATORS[ch]:
			lex.emit(string(ch), token.SEPARATOR, pos)
		case token.OTHERS[ch]:
			lex.emit(string(ch), token.OTHER, pos)
		case lex.Classifier.inWord(ch):
			j := i
			for j < n && lex.Classifier.inWord(line[j]) {
				j++
			}
			word := string(line[i:j])
			lex.emit(word, lex.Classifier.Classify(word), pos)
			i = j
			continue
		default:
			// a whole UTF-8 sequence, or one invalid byte
			_, size := utf8.DecodeRune(line[i:])
			lex.emit(string(line[i:i+size]), token.OTHER, pos)
			i += size
			continue
		}
		i++
	}
}

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func (lex *Lexer) emit(lexeme string, kind token.Kind, pos token.Pos) {
	lex.tokens = append(lex.tokens, token.New(lexeme, kind, pos))
}

// splitLines breaks src on "\n", "\r\n" and "\r". A trailing line
// terminator does not start an extra empty line.
func splitLines(src []byte) [][]byte {
	var lines [][]byte
	start := 0
	for i := 0; i < len(src); i++ {
		switch src[i] {
		case '\n':
			lines = append(lines, src[start:i])
			start = i + 1
		case '\r':
			lines = append(lines, src[start:i])
			if i+1 < len(src) && src[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	if start < len(src) {
		lines = append(lines, src[start:])
	}
	return lines
}
