// C:\Users\wasab\OneDrive\デスクトップ\GS1SCAN\load_catalog.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gs1scan/loader"
)

func newLoadCatalogCmd() *cobra.Command {
	var encoding string

	cmd := &cobra.Command{
		Use:   "load-catalog [csv]",
		Short: "Load the product catalog CSV into the database",
		Long: `Load (insert or update) product master rows from a catalog CSV.
Without an argument the catalogCsvPath from the config file is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, db, err := setup()
			if err != nil {
				return err
			}
			defer log.Sync()
			defer db.Close()

			path := cfg.CatalogCSVPath
			if len(args) == 1 {
				path = args[0]
			}
			if encoding == "" {
				encoding = cfg.CatalogEncoding
			}

			count, err := loader.LoadCatalogCSV(db, path, encoding, log)
			if err != nil {
				log.Error("catalog load failed", zap.String("path", path), zap.Error(err))
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "loaded %d products from %s\n", count, path)
			return nil
		},
	}

	cmd.Flags().StringVar(&encoding, "encoding", "", "CSV encoding (sjis, utf8; default from config)")

	return cmd
}
