package main

import (
	"context"
	"fmt"
	"os"

	"heater_sizing/internal/config"
	"heater_sizing/internal/estimator"
	"heater_sizing/internal/logger"
	"heater_sizing/internal/repository"
	"heater_sizing/internal/repository/db"
	"heater_sizing/internal/service"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type rootFlags struct {
	configPath string
	envFile    string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:          "heater-sizing",
		Short:        "Pyrolysis heater sizing: heat loss, model comparison and fuel cost",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file (default configs/config.yml)")
	rootCmd.PersistentFlags().StringVar(&flags.envFile, "env-file", ".env", "dotenv file loaded before the config")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn or error")
	rootCmd.PersistentFlags().String("catalog-source", "", "catalog source: sqlite or builtin")
	_ = v.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = v.BindPFlag("catalog.source", rootCmd.PersistentFlags().Lookup("catalog-source"))

	rootCmd.AddCommand(serveCmd(v, flags))
	rootCmd.AddCommand(evaluateCmd(v, flags))
	rootCmd.AddCommand(catalogCmd(v, flags))
	return rootCmd
}

// loadConfig reads .env, the config file and HEATER_* overrides.
func loadConfig(v *viper.Viper, flags *rootFlags) (config.Config, error) {
	if err := config.LoadDotEnv(flags.envFile); err != nil {
		return config.Config{}, err
	}
	return config.Load(v, flags.configPath)
}

// loadCatalog builds the immutable catalog once. The sqlite handle is closed
// right after loading since requests never touch the store.
func loadCatalog(ctx context.Context, cfg config.Config, log *logger.Logger) (*estimator.Catalog, error) {
	if cfg.Catalog.Source == config.CatalogBuiltin {
		log.Infow("catalog_builtin")
		return estimator.DefaultCatalog(), nil
	}

	sqlDB, err := db.InitDB(cfg.DB.Path)
	if err != nil {
		return nil, fmt.Errorf("open catalog db: %w", err)
	}
	defer func() {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Errorw("catalog_db_close_failed", "err", cerr)
		}
	}()

	repos := repository.NewRepository(sqlDB)
	return service.LoadCatalog(ctx, repos.Catalog, cfg.Catalog.Seed, log)
}
