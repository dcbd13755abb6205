package ast

import (
	"fmt"
	"io"
	"strings"
)

const indentUnit = "  "

type printer struct {
	w   io.Writer
	err error
}

// Fprint writes an indented, one-node-per-line rendering of node to w.
func Fprint(w io.Writer, node Node) error {
	p := &printer{w: w}
	p.print(node, 0)
	return p.err
}

func (p *printer) line(depth int, format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, strings.Repeat(indentUnit, depth)+format+"\n", args...)
}

func (p *printer) print(node Node, depth int) {
	switch n := node.(type) {
	case *Program:
		p.line(depth, "Program")
		p.line(depth+1, "Declarations")
		for _, decl := range n.Decpart {
			p.print(decl, depth+2)
		}
		p.print(n.Body, depth+1)
	case *Declaration:
		p.line(depth, "%s: %s", n.V.ID, n.T)
	case *Block:
		p.line(depth, "Block")
		for _, stmt := range n.Members {
			p.print(stmt, depth+1)
		}
	case *Assignment:
		p.line(depth, "Assignment")
		p.print(n.Target, depth+1)
		p.print(n.Source, depth+1)
	case *Conditional:
		p.line(depth, "Conditional")
		p.print(n.Test, depth+1)
		p.print(n.ThenBranch, depth+1)
		if n.ElseBranch != nil {
			p.print(n.ElseBranch, depth+1)
		}
	case *Loop:
		p.line(depth, "Loop")
		p.print(n.Test, depth+1)
		p.print(n.Body, depth+1)
	case *Variable:
		p.line(depth, "Variable %s", n.ID)
	case *Value:
		p.line(depth, "Value %s", n.Literal())
	case *Binary:
		p.line(depth, "Binary %s", n.Op)
		p.print(n.Term1, depth+1)
		p.print(n.Term2, depth+1)
	case *Unary:
		p.line(depth, "Unary %s", n.Op)
		p.print(n.Term, depth+1)
	default:
		p.line(depth, "%T", n)
	}
}
