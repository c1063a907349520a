package main

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"heater_sizing/internal/logger"
	"heater_sizing/internal/models"
	"heater_sizing/internal/service"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func catalogCmd(v *viper.Viper, flags *rootFlags) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print the active catalog of materials, models and fuels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cfg, err := loadConfig(v, flags)
			if err != nil {
				return err
			}
			cat, err := loadCatalog(ctx, cfg, logger.New(logger.ErrorLevel, cfg.Log.Format))
			if err != nil {
				return err
			}
			view := service.NewCatalogService(cat).View(ctx)
			return writeCatalog(cmd.OutOrStdout(), view, asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of tables")
	return cmd
}

func writeCatalog(out io.Writer, view models.CatalogView, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	}
	printCatalog(out, view)
	return nil
}

func writePDFFile(ctx context.Context, services *service.Service, ev models.Evaluation, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return services.Report.PDF(ctx, ev, f)
}
