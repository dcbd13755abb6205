package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/HicaroD/clite/internal/ast"
	"github.com/HicaroD/clite/internal/config"
	"github.com/HicaroD/clite/internal/diagnostics"
	"github.com/HicaroD/clite/internal/lexer"
	"github.com/HicaroD/clite/internal/lexer/token"
	"github.com/HicaroD/clite/internal/parser"
)

const REPL_HELP = `Enter a whole program (main { ... }) or a single expression.
Input keeps going on the next line while it is unfinished.

Commands:
  :help    show this message
  :quit    leave the REPL
`

func newReplCmd(a *app) *cobra.Command {
	var classifierFlag string

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Parse programs and expressions interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			classifier, err := a.classifier(classifierFlag)
			if err != nil {
				return err
			}
			session := &replSession{
				classifier: classifier,
				out:        cmd.OutOrStdout(),
				errOut:     cmd.ErrOrStderr(),
				styles:     newStyles(cmd.OutOrStdout(), a.cfg.Output.Color),
			}
			return runRepl(a, session)
		},
	}

	cmd.Flags().StringVar(&classifierFlag, "classifier", "", "word classifier: permissive or strict (default from config)")
	return cmd
}

func runRepl(a *app, session *replSession) error {
	fmt.Fprint(session.out, session.styles.Muted.Render("clite repl, :help for help, :quit to leave")+"\n")

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	ln.SetMultiLineMode(true)

	histPath := a.cfg.HistoryPath()
	if histPath != "" && a.cfg.REPL.HistoryFile == "" {
		if _, err := config.EnsureDir(); err != nil {
			a.logger.Warn("history disabled", "error", err)
			histPath = ""
		}
	}
	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	for {
		src, ok := readByParseProbe(ln, session, a.cfg.REPL.Prompt, a.cfg.REPL.ContinuationPrompt)
		if !ok {
			fmt.Fprintln(session.out)
			return nil
		}
		if strings.TrimSpace(src) == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))

		if session.handle(src) {
			return nil
		}
	}
}

// readByParseProbe keeps prompting while the input so far only fails for
// running out of tokens.
func readByParseProbe(ln *liner.State, session *replSession, prompt, cont string) (string, bool) {
	var b strings.Builder

	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = ln.Prompt(prompt)
		} else {
			line, err = ln.Prompt(cont)
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			b.Reset()
			continue
		}
		if err != nil {
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if session.complete(src) {
			return src, true
		}
	}
}

type replSession struct {
	classifier lexer.Classifier
	out        io.Writer
	errOut     io.Writer
	styles     *styles
}

// isCommand reports whether src is a ":" command line.
func isCommand(src string) bool {
	return strings.HasPrefix(strings.TrimSpace(src), ":")
}

// isProgram reports whether src starts like a whole program.
func (session *replSession) isProgram(src string) bool {
	lex := lexer.New(STDIN_NAME, []byte(src))
	lex.Classifier = session.classifier
	first := lex.Stream().Next()
	return first.Is(token.KEYWORD, "main")
}

// complete reports whether src can be handed to the parser as is. Input
// that is only missing tokens at the end is incomplete; every other
// error is final.
func (session *replSession) complete(src string) bool {
	if isCommand(src) || strings.TrimSpace(src) == "" {
		return true
	}
	_, err := session.parse(src)
	syntaxErr, ok := diagnostics.AsSyntaxError(err)
	return !ok || !syntaxErr.AtEnd()
}

func (session *replSession) parse(src string) (ast.Node, error) {
	lex := lexer.New(STDIN_NAME, []byte(src))
	lex.Classifier = session.classifier

	if session.isProgram(src) {
		return parser.ParseFile(lex, nil)
	}

	return parser.ParseExpr(lex, nil)
}

// handle runs one complete input and reports whether the session is over.
func (session *replSession) handle(src string) bool {
	if isCommand(src) {
		switch strings.ToLower(strings.TrimSpace(src)) {
		case ":quit", ":q":
			return true
		case ":help", ":h":
			fmt.Fprint(session.out, REPL_HELP)
		default:
			fmt.Fprintln(session.out, "unknown command. Type :help for help.")
		}
		return false
	}

	node, err := session.parse(src)
	if err != nil {
		fmt.Fprintln(session.errOut, session.styles.Error.Render(err.Error()))
		return false
	}
	if err := ast.Fprint(session.out, node); err != nil {
		fmt.Fprintln(session.errOut, session.styles.Error.Render(err.Error()))
	}
	return false
}
