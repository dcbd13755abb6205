package diagnostics

import (
	"errors"
	"fmt"

	"github.com/HicaroD/clite/internal/lexer/token"
)

var (
	COMPILER_ERROR_FOUND = errors.New("compiler error found")
)

type Diag struct {
	Message string
	Pos     token.Pos
	Err     error
}

// NewDiag formats err with the "file:line:column: " prefix used by every
// message the front end reports.
func NewDiag(pos token.Pos, err error) Diag {
	return Diag{
		Message: fmt.Sprintf("%s:%d:%d: %s", pos.Filename, pos.Line, pos.Column, err),
		Pos:     pos,
		Err:     err,
	}
}

func (diag Diag) String() string { return diag.Message }

type Collector struct {
	Diags []Diag
}

func New() *Collector {
	return &Collector{
		Diags: nil,
	}
}

func (collector *Collector) ReportAndSave(diag Diag) {
	collector.Diags = append(collector.Diags, diag)
}

func (collector *Collector) HasErrors() bool {
	return len(collector.Diags) > 0
}

func (collector *Collector) Reset() {
	collector.Diags = nil
}
