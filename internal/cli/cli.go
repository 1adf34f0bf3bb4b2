// Package cli implements the enumlookup command tree.
package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/zero-day-ai/enumkit/catalog"
)

type loader func(cmd *cobra.Command) (*catalog.Catalog, error)

// New returns the root enumlookup command.
func New() *cobra.Command {
	var (
		catalogPath string
		verbose     bool
	)

	root := &cobra.Command{
		Use:   "enumlookup",
		Short: "Look up enumeration constants by name",
		Long: `Look up enumeration constants by name.

Enumerations are read from a YAML catalog (enums.yaml). Names are matched
exactly; a name that is not declared is an error.`,
		SilenceUsage: true,
	}
	root.CompletionOptions.HiddenDefaultCmd = true
	root.PersistentFlags().StringVarP(&catalogPath, "catalog", "c", ".", "catalog file, or directory containing enums.yaml")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	load := func(cmd *cobra.Command) (*catalog.Catalog, error) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		return catalog.Load(cmd.Context(), catalogPath, catalog.WithLogger(logger))
	}

	root.AddCommand(cmdLookup(load))
	root.AddCommand(cmdList(load))
	root.AddCommand(cmdSchema(load))
	root.AddCommand(cmdEval(load))
	return root
}

func cmdLookup(load loader) *cobra.Command {
	return &cobra.Command{
		Use:     "lookup TYPE NAME",
		Short:   "Print the constant NAME of enumeration TYPE",
		Example: "  enumlookup -c enums.yaml lookup Color GREEN",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := load(cmd)
			if err != nil {
				return err
			}
			k, err := c.Lookup(args[0], args[1])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s.%s ordinal=%d\n", k.Type, k.Name, k.Ordinal)
			return err
		},
	}
}

func cmdList(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "list [TYPE]",
		Short: "List enumerations, or the constants of TYPE",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := load(cmd)
			if err != nil {
				return err
			}

			names := c.TypeNames()
			if len(args) == 1 {
				js, err := c.Schema(args[0])
				if err != nil {
					return err
				}
				names = names[:0]
				for _, v := range js.Enum {
					names = append(names, fmt.Sprint(v))
				}
			}

			for _, n := range names {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), n); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func cmdSchema(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "schema TYPE",
		Short: "Print the JSON schema of enumeration TYPE",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := load(cmd)
			if err != nil {
				return err
			}
			js, err := c.Schema(args[0])
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(js)
		},
	}
}

func cmdEval(load loader) *cobra.Command {
	return &cobra.Command{
		Use:     "eval EXPR",
		Short:   "Evaluate a CEL expression over the catalog",
		Example: `  enumlookup eval 'valueOf("Size", "LARGE") > valueOf("Size", "SMALL")'`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := load(cmd)
			if err != nil {
				return err
			}
			v, err := c.Eval(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), v)
			return err
		},
	}
}
