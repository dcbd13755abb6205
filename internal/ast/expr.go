package ast

import (
	"fmt"
	"strconv"
)

type Operator string

const (
	OR    Operator = "||"
	AND   Operator = "&&"
	LT    Operator = "<"
	LE    Operator = "<="
	GT    Operator = ">"
	GE    Operator = ">="
	NE    Operator = "<>"
	EQ    Operator = "=="
	PLUS  Operator = "+"
	MINUS Operator = "-"
	TIMES Operator = "*"
	DIV   Operator = "/"
	NOT   Operator = "!"
)

// Relational lexemes and the operator each one is stored as. "!=" is the
// only lexeme that is renamed.
var RELATIONAL map[string]Operator = map[string]Operator{
	"<":  LT,
	"<=": LE,
	">":  GT,
	">=": GE,
	"==": EQ,
	"!=": NE,
}

var ADDITIVE map[string]Operator = map[string]Operator{
	"+": PLUS,
	"-": MINUS,
}

var MULTIPLICATIVE map[string]Operator = map[string]Operator{
	"*": TIMES,
	"/": DIV,
}

var UNARY map[string]Operator = map[string]Operator{
	"!": NOT,
	"-": MINUS,
}

func (op Operator) String() string { return string(op) }

func (op Operator) IsValid() bool {
	switch op {
	case OR, AND, LT, LE, GT, GE, NE, EQ, PLUS, MINUS, TIMES, DIV, NOT:
		return true
	}
	return false
}

type Variable struct {
	ID string
}

func (v *Variable) String() string {
	return fmt.Sprintf("Variable(%s)", v.ID)
}
func (v *Variable) astNode()  {}
func (v *Variable) exprNode() {}

type ValueType int

const (
	INT_VALUE ValueType = iota
	BOOL_VALUE
)

type Value struct {
	Type ValueType
	Int  int
	Bool bool
}

func IntValue(n int) *Value {
	return &Value{Type: INT_VALUE, Int: n}
}

func BoolValue(b bool) *Value {
	return &Value{Type: BOOL_VALUE, Bool: b}
}

// Literal renders the payload alone, e.g. "42" or "true".
func (v *Value) Literal() string {
	if v.Type == BOOL_VALUE {
		return strconv.FormatBool(v.Bool)
	}
	return strconv.Itoa(v.Int)
}

func (v *Value) String() string {
	return fmt.Sprintf("Value(%s)", v.Literal())
}
func (v *Value) astNode()  {}
func (v *Value) exprNode() {}

type Binary struct {
	Op    Operator
	Term1 Expression
	Term2 Expression
}

func (bin *Binary) String() string {
	return fmt.Sprintf("Binary(%s, %s, %s)", bin.Op, bin.Term1, bin.Term2)
}
func (bin *Binary) astNode()  {}
func (bin *Binary) exprNode() {}

type Unary struct {
	Op   Operator
	Term Expression
}

func (unary *Unary) String() string {
	return fmt.Sprintf("Unary(%s, %s)", unary.Op, unary.Term)
}
func (unary *Unary) astNode()  {}
func (unary *Unary) exprNode() {}
