package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/HicaroD/clite/internal/config"
	"github.com/HicaroD/clite/internal/diagnostics"
	"github.com/HicaroD/clite/internal/lexer"
)

// app is the state shared by every command of one invocation.
type app struct {
	cfgFile string
	verbose bool

	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := new(app)

	rootCmd := &cobra.Command{
		Use:   "clite",
		Short: "Front end for the Clite language",
		Long: `clite tokenizes and parses Clite programs.

Commands:
  tokens   - print the token stream of a file
  parse    - print the syntax tree of a file
  repl     - parse programs and expressions interactively
  config   - print the effective configuration`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: ./clite.toml or the user config dir)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(
		newTokensCmd(a),
		newParseCmd(a),
		newReplCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	cfg, err := config.Discover(a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if cfg.Source == "" {
		a.logger.Debug("using default config")
	} else {
		a.logger.Debug("config loaded", "source", cfg.Source)
	}
	return nil
}

// classifier resolves --classifier against the config file.
func (a *app) classifier(flag string) (lexer.Classifier, error) {
	if flag == "" {
		return a.cfg.Classifier(), nil
	}
	return lexer.ParseClassifier(flag)
}

// reportDiags prints every collected diagnostic on w and turns a non-empty
// collector into COMPILER_ERROR_FOUND.
func reportDiags(w io.Writer, s *styles, collector *diagnostics.Collector) error {
	if !collector.HasErrors() {
		return nil
	}
	for _, diag := range collector.Diags {
		fmt.Fprintln(w, s.Error.Render(diag.Message))
	}
	return diagnostics.COMPILER_ERROR_FOUND
}
