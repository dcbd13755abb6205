package lexer

import (
	"fmt"
	"strings"

	"github.com/HicaroD/clite/internal/lexer/token"
)

// Classifier decides how alphanumeric words are scanned and which kind
// they get. Both modes agree on keywords, True/False and digit runs.
type Classifier int

const (
	// PERMISSIVE scans runs of letters and digits; any word that is not a
	// keyword, boolean or number is an identifier.
	PERMISSIVE Classifier = iota
	// STRICT also lets '.' into words and turns malformed words such as
	// "1abc" or "a.b" into Other tokens.
	STRICT
)

func ParseClassifier(name string) (Classifier, error) {
	switch strings.ToLower(name) {
	case "", "permissive":
		return PERMISSIVE, nil
	case "strict":
		return STRICT, nil
	}
	return PERMISSIVE, fmt.Errorf("unknown classifier %q (want permissive or strict)", name)
}

func (c Classifier) String() string {
	switch c {
	case PERMISSIVE:
		return "permissive"
	case STRICT:
		return "strict"
	}
	return "unknown"
}

func (c Classifier) inWord(ch byte) bool {
	if isLetterOrDigit(ch) {
		return true
	}
	return c == STRICT && ch == '.'
}

func (c Classifier) Classify(word string) token.Kind {
	if token.KEYWORDS[word] {
		return token.KEYWORD
	}
	if token.BOOL_LITERALS[word] {
		return token.LITERAL
	}
	if isDigits(word) {
		return token.LITERAL
	}
	if c == STRICT && !isIdentifier(word) {
		return token.OTHER
	}
	return token.IDENTIFIER
}

// Character classes are ASCII only; bytes of multi-byte UTF-8 sequences
// never belong to a word.
func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isLetterOrDigit(ch byte) bool {
	return isLetter(ch) || isDigit(ch)
}

func isDigits(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		if !isDigit(word[i]) {
			return false
		}
	}
	return true
}

func isIdentifier(word string) bool {
	if word == "" || !isLetter(word[0]) {
		return false
	}
	for i := 1; i < len(word); i++ {
		if !isLetterOrDigit(word[i]) {
			return false
		}
	}
	return true
}
