// Package cmd - catalog commands
package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"printshop-quote/core/types"
)

var catalogPath string

// catalogCmd groups catalog maintenance commands.
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and validate the product catalog",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Parse the catalog and validate every pricing preset",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := catalogPath
		if len(args) > 0 {
			path = args[0]
		}
		store, err := openCatalog(path)
		if err != nil {
			return err
		}
		products, err := store.Products(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("OK: %d products\n", len(products))
		return nil
	},
}

var catalogListCmd = &cobra.Command{
	Use:   "list [path]",
	Short: "List catalog products and their pricing models",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := catalogPath
		if len(args) > 0 {
			path = args[0]
		}
		store, err := openCatalog(path)
		if err != nil {
			return err
		}
		products, err := store.Products(cmd.Context())
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "SLUG\tMODEL\tCATEGORY\tSIZES")
		for _, p := range products {
			model := types.ModelLegacy
			if p.Preset != nil {
				model = p.Preset.Model
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", p.Slug, model, p.Category, len(p.Options.Sizes))
		}
		return tw.Flush()
	},
}

func init() {
	catalogCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "catalog file or directory (defaults to config)")
	catalogCmd.AddCommand(catalogValidateCmd)
	catalogCmd.AddCommand(catalogListCmd)
}
