package main

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/HicaroD/clite/internal/ast"
	"github.com/HicaroD/clite/internal/config"
	"github.com/HicaroD/clite/internal/diagnostics"
	"github.com/HicaroD/clite/internal/parser"
)

func newParseCmd(a *app) *cobra.Command {
	var (
		classifierFlag string
		formatFlag     string
		stats          bool
	)

	cmd := &cobra.Command{
		Use:   "parse FILE...",
		Short: "Print the syntax tree of one or more files",
		Long: `Parses every file and prints its syntax tree. A file with a syntax
error is reported and skipped; the command fails if any file did not parse.

Formats:
  tree  - indented, one node per line
  yaml  - the tree as a YAML document

Examples:
  clite parse prog.cl
  clite parse --format yaml prog.cl
  clite parse --stats a.cl b.cl`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			classifier, err := a.classifier(classifierFlag)
			if err != nil {
				return err
			}
			format := a.cfg.Output.Format
			if formatFlag != "" {
				format = formatFlag
			}
			if !config.OUTPUT_FORMATS[format] {
				return fmt.Errorf("unknown format %q, expected tree or yaml", format)
			}

			out := cmd.OutOrStdout()
			collector := diagnostics.New()
			s := newStyles(cmd.ErrOrStderr(), a.cfg.Output.Color)
			outStyles := newStyles(out, a.cfg.Output.Color)
			src := newSources(cmd)

			for _, path := range args {
				lex, err := src.open(path)
				if err != nil {
					collector.ReportAndSave(diagnostics.Diag{Message: fmt.Sprintf("%s: %v", path, err), Err: err})
					continue
				}
				lex.Classifier = classifier

				start := time.Now()
				program, err := parser.ParseFile(lex, collector)
				a.logger.Debug("parsed", "file", lex.Filename, "classifier", classifier, "ok", err == nil, "elapsed", time.Since(start))
				if err != nil {
					continue
				}

				if len(args) > 1 {
					fmt.Fprintln(out, outStyles.Header.Render("# "+lex.Filename))
				}
				if err := writeProgram(out, program, format); err != nil {
					return err
				}
				if stats {
					writeStats(out, program)
				}
			}

			return reportDiags(cmd.ErrOrStderr(), s, collector)
		},
	}

	cmd.Flags().StringVar(&classifierFlag, "classifier", "", "word classifier: permissive or strict (default from config)")
	cmd.Flags().StringVarP(&formatFlag, "format", "f", "", "output format: tree or yaml (default from config)")
	cmd.Flags().BoolVar(&stats, "stats", false, "print node counts after each tree")
	return cmd
}

func writeProgram(w io.Writer, program *ast.Program, format string) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(program); err != nil {
			return err
		}
		return enc.Close()
	default:
		return ast.Fprint(w, program)
	}
}

// nodeCounts tallies the nodes of a tree by kind.
func nodeCounts(node ast.Node) map[string]int {
	counts := map[string]int{}
	ast.Inspect(node, func(n ast.Node) bool {
		switch n.(type) {
		case *ast.Declaration:
			counts["declarations"]++
		case *ast.Assignment:
			counts["assignments"]++
		case *ast.Conditional:
			counts["conditionals"]++
		case *ast.Loop:
			counts["loops"]++
		case *ast.Binary, *ast.Unary:
			counts["operators"]++
		case *ast.Value:
			counts["values"]++
		}
		return true
	})
	return counts
}

func writeStats(w io.Writer, program *ast.Program) {
	counts := nodeCounts(program)
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "%s: %d\n", k, counts[k])
	}
}
