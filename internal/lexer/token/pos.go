package token

import "fmt"

type Pos struct {
	Filename     string
	Line, Column int
}

func NewPosition(filename string, line, column int) Pos {
	return Pos{Filename: filename, Line: line, Column: column}
}

func (pos Pos) String() string {
	return fmt.Sprintf("[%s:%d:%d]", pos.Filename, pos.Line, pos.Column)
}
