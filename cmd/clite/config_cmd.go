package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HicaroD/clite/internal/config"
)

func newConfigCmd(a *app) *cobra.Command {
	var formatFlag string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Prints the configuration every other command runs with, defaults
filled in. The output is a valid config file.

Lookup order:
  --config FILE
  $CLITE_CONFIG
  ./clite.toml
  <user config dir>/clite/config.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := config.ParseFormat(formatFlag)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if a.cfg.Source == "" {
				fmt.Fprintln(out, "# defaults")
			} else {
				fmt.Fprintf(out, "# loaded from %s\n", a.cfg.Source)
			}
			return a.cfg.Encode(out, format)
		},
	}
	cmd.Flags().StringVarP(&formatFlag, "format", "f", "toml", "output format: toml or yaml")

	dirCmd := &cobra.Command{
		Use:   "dir",
		Short: "Print the user config directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := config.Dir()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), dir)
			return nil
		},
	}
	cmd.AddCommand(dirCmd)

	return cmd
}
