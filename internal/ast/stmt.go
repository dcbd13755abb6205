package ast

import "fmt"

type Assignment struct {
	Target *Variable
	Source Expression
}

func (assign *Assignment) String() string {
	return fmt.Sprintf("Assignment(%s, %s)", assign.Target.ID, assign.Source)
}
func (assign *Assignment) astNode()  {}
func (assign *Assignment) stmtNode() {}

// Conditional has a nil ElseBranch when the source has no else.
type Conditional struct {
	Test       Expression
	ThenBranch *Block
	ElseBranch *Block
}

func (cond *Conditional) String() string {
	if cond.ElseBranch == nil {
		return fmt.Sprintf("Conditional(%s, %s)", cond.Test, cond.ThenBranch)
	}
	return fmt.Sprintf("Conditional(%s, %s, %s)", cond.Test, cond.ThenBranch, cond.ElseBranch)
}
func (cond *Conditional) astNode()  {}
func (cond *Conditional) stmtNode() {}

type Loop struct {
	Test Expression
	Body *Block
}

func (loop *Loop) String() string {
	return fmt.Sprintf("Loop(%s, %s)", loop.Test, loop.Body)
}
func (loop *Loop) astNode()  {}
func (loop *Loop) stmtNode() {}
