// C:\Users\wasab\OneDrive\デスクトップ\GS1SCAN\main.go
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// configPath は全サブコマンド共通の設定ファイルパスです。
var configPath string

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gs1scan",
		Short: "GS1 barcode decoder for pharmaceutical products",
		Long: `gs1scan decodes GS1 barcodes (DataMatrix, GS1-128, EAN-13, UPC-A) read from
pharmaceutical packaging, looks the product up in the local catalog and keeps a
scan history for audit export.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "./gs1scan_config.json", "Path to the JSON config file")

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newDecodeCmd())
	rootCmd.AddCommand(newLoadCatalogCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "gs1scan version %s\n", version)
			fmt.Fprintf(out, "commit: %s\n", commit)
			fmt.Fprintf(out, "date: %s\n", date)
		},
	}
}
