package main

import (
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/HicaroD/clite/internal/lexer/token"
)

var (
	colorError   = lipgloss.Color("#EF4444") // Red
	colorMuted   = lipgloss.Color("#6B7280") // Gray
	colorKeyword = lipgloss.Color("#8B5CF6") // Violet
	colorIdent   = lipgloss.Color("#F8FAFC") // Slate 50
	colorLiteral = lipgloss.Color("#10B981") // Emerald
	colorOp      = lipgloss.Color("#06B6D4") // Cyan
	colorSep     = lipgloss.Color("#94A3B8") // Slate 400
	colorOther   = lipgloss.Color("#F59E0B") // Amber
)

type styles struct {
	Error  lipgloss.Style
	Pos    lipgloss.Style
	Header lipgloss.Style
	Muted  lipgloss.Style
	kinds  map[token.Kind]lipgloss.Style
}

// newStyles binds every style to a renderer for w, so colors only show up
// when w is a terminal. With color off every style renders text unchanged
// apart from padding.
func newStyles(w io.Writer, color bool) *styles {
	r := lipgloss.NewRenderer(w)

	s := &styles{
		Error:  r.NewStyle(),
		Pos:    r.NewStyle().Width(8),
		Header: r.NewStyle(),
		Muted:  r.NewStyle(),
		kinds:  map[token.Kind]lipgloss.Style{},
	}
	for _, kind := range []token.Kind{token.KEYWORD, token.IDENTIFIER, token.LITERAL, token.OPERATOR, token.SEPARATOR, token.OTHER} {
		s.kinds[kind] = r.NewStyle().Width(12)
	}
	if !color {
		return s
	}

	s.Error = s.Error.Foreground(colorError).Bold(true)
	s.Pos = s.Pos.Foreground(colorMuted)
	s.Header = s.Header.Bold(true)
	s.Muted = s.Muted.Foreground(colorMuted).Italic(true)
	s.kinds[token.KEYWORD] = s.kinds[token.KEYWORD].Foreground(colorKeyword).Bold(true)
	s.kinds[token.IDENTIFIER] = s.kinds[token.IDENTIFIER].Foreground(colorIdent)
	s.kinds[token.LITERAL] = s.kinds[token.LITERAL].Foreground(colorLiteral)
	s.kinds[token.OPERATOR] = s.kinds[token.OPERATOR].Foreground(colorOp)
	s.kinds[token.SEPARATOR] = s.kinds[token.SEPARATOR].Foreground(colorSep)
	s.kinds[token.OTHER] = s.kinds[token.OTHER].Foreground(colorOther)
	return s
}

func (s *styles) Kind(kind token.Kind) lipgloss.Style {
	return s.kinds[kind]
}
