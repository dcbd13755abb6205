package token

import "log"

type Kind int

const (
	KEYWORD Kind = iota
	IDENTIFIER
	LITERAL
	OPERATOR
	SEPARATOR
	OTHER
)

var KEYWORDS map[string]bool = map[string]bool{
	"bool":    true,
	"else":    true,
	"if":      true,
	"integer": true,
	"main":    true,
	"while":   true,
}

var BOOL_LITERALS map[string]bool = map[string]bool{
	"True":  true,
	"False": true,
}

// Two-character operators are matched before any single character so that
// "<=" is never split into "<" and "=".
var OPERATORS_2 map[string]bool = map[string]bool{
	"||": true,
	"&&": true,
	"!=": true,
	"==": true,
	">=": true,
	"<=": true,
	":=": true,
}

var OPERATORS_1 map[byte]bool = map[byte]bool{
	'!': true,
	'<': true,
	'>': true,
	'/': true,
	'*': true,
	'-': true,
	'+': true,
}

var SEPARATORS map[byte]bool = map[byte]bool{
	'(': true,
	')': true,
	'{': true,
	'}': true,
	';': true,
	',': true,
}

// Punctuation that is tokenized but never accepted by the grammar.
var OTHERS map[byte]bool = map[byte]bool{
	'=':  true,
	'@':  true,
	'&':  true,
	'|':  true,
	':':  true,
	'\\': true,
	'[':  true,
	']':  true,
}

func (kind Kind) String() string {
	switch kind {
	case KEYWORD:
		return "Keyword"
	case IDENTIFIER:
		return "Identifier"
	case LITERAL:
		return "Literal"
	case OPERATOR:
		return "Operator"
	case SEPARATOR:
		return "Separator"
	case OTHER:
		return "Other"
	default:
		log.Fatalf("String() method not defined for the following token kind '%d'", kind)
	}
	return ""
}
