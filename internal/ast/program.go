package ast

import (
	"fmt"
	"strings"
)

type Type int

const (
	INTEGER Type = iota
	BOOL
)

// TypeFromKeyword maps a type keyword to its Type.
func TypeFromKeyword(keyword string) (Type, bool) {
	switch keyword {
	case "integer":
		return INTEGER, true
	case "bool":
		return BOOL, true
	}
	return INTEGER, false
}

func (t Type) String() string {
	switch t {
	case INTEGER:
		return "integer"
	case BOOL:
		return "bool"
	}
	return "unknown"
}

// Program is the root of every tree. Only its body may be preceded by
// declarations; nested blocks are statement lists.
type Program struct {
	Decpart Declarations
	Body    *Block
}

func (program *Program) String() string {
	return fmt.Sprintf("Program(%s, %s)", program.Decpart, program.Body)
}
func (program *Program) astNode() {}

type Declarations []*Declaration

func (decs Declarations) String() string {
	parts := make([]string, len(decs))
	for i, d := range decs {
		parts[i] = d.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

type Declaration struct {
	V *Variable
	T Type
}

func (decl *Declaration) String() string {
	return fmt.Sprintf("(%s:%s)", decl.V.ID, decl.T)
}
func (decl *Declaration) astNode() {}

type Block struct {
	Members []Statement
}

func (block *Block) String() string {
	parts := make([]string, len(block.Members))
	for i, s := range block.Members {
		parts[i] = s.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
func (block *Block) astNode() {}
