// Package cmd provides the CLI commands for printshop-quote.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"printshop-quote/internal/config"
	"printshop-quote/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "printshop-quote",
	Short: "Price large-format print jobs",
	Long: `printshop-quote is a deterministic pricing engine for print products.

It prices banners, rigid signs, decals and card products from a catalog
of products and pricing presets, producing an itemized quote.

Examples:
  printshop-quote quote vinyl-banner --width 48 --height 24 --quantity 2
  printshop-quote quote business-cards --size 3.5x2 --quantity 250 --format json
  printshop-quote catalog validate ./catalog`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.printshop-quote.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("printshop-quote version 1.0.0")
	},
}
