package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/HicaroD/clite/internal/lexer"
)

const STDIN_NAME = "<stdin>"

func newTokensCmd(a *app) *cobra.Command {
	var classifierFlag string

	cmd := &cobra.Command{
		Use:   "tokens FILE",
		Short: "Print the token stream of a file",
		Long: `Prints one token per line: position, kind and lexeme.
Comments and whitespace never show up. Use - to read from stdin.

Examples:
  clite tokens prog.cl
  clite tokens --classifier strict prog.cl
  echo "main { }" | clite tokens -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			classifier, err := a.classifier(classifierFlag)
			if err != nil {
				return err
			}
			lex, err := newSources(cmd).open(args[0])
			if err != nil {
				return err
			}
			lex.Classifier = classifier

			start := time.Now()
			tokens := lex.Tokenize()
			a.logger.Debug("tokenized", "file", lex.Filename, "classifier", classifier, "tokens", len(tokens), "elapsed", time.Since(start))

			out := cmd.OutOrStdout()
			s := newStyles(out, a.cfg.Output.Color)
			for _, tok := range tokens {
				pos := fmt.Sprintf("%d:%d", tok.Pos.Line, tok.Pos.Column)
				fmt.Fprintf(out, "%s%s%s\n", s.Pos.Render(pos), s.Kind(tok.Kind).Render(tok.Kind.String()), tok.Lexeme)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&classifierFlag, "classifier", "", "word classifier: permissive or strict (default from config)")
	return cmd
}

// sources opens the inputs of one command. Stdin is read at most once, so
// every "-" argument sees the same text.
type sources struct {
	cmd   *cobra.Command
	stdin []byte
	read  bool
}

func newSources(cmd *cobra.Command) *sources {
	return &sources{cmd: cmd}
}

// open builds a lexer for path, or for stdin when path is "-".
func (s *sources) open(path string) (*lexer.Lexer, error) {
	if path == "-" {
		if !s.read {
			src, err := io.ReadAll(s.cmd.InOrStdin())
			if err != nil {
				return nil, fmt.Errorf("failed to read stdin: %w", err)
			}
			s.stdin = src
			s.read = true
		}
		return lexer.New(STDIN_NAME, s.stdin), nil
	}

	lex := lexer.NewFromFilePath(path)
	if err := lex.ReadErr(); err != nil {
		return nil, fmt.Errorf("failed to read source: %w", err)
	}
	return lex, nil
}
