package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/skavtech/ict-platform/internal/catalog"
	"github.com/skavtech/ict-platform/internal/catalog/domain"
	"github.com/skavtech/ict-platform/internal/catalog/repository"
	"github.com/skavtech/ict-platform/internal/tradein/valuation"
	"github.com/skavtech/ict-platform/pkg/config"
	"github.com/skavtech/ict-platform/pkg/database"
	"github.com/skavtech/ict-platform/pkg/logger"
)

// deps lets tests swap the catalog store and the jitter source.
type deps struct {
	openCatalog func(ctx context.Context) (domain.ProductRepository, func() error, error)
	jitter      valuation.JitterSource
}

func defaultDeps() deps {
	return deps{openCatalog: openCatalogDB}
}

func newRootCmd(d deps) *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:           "ictctl",
		Short:         "Operator tooling for the ICT platform",
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.InitWithWriter(cmd.ErrOrStderr(), "ictctl")
			logger.SetLevel(v.GetString("log-level"))
		},
	}

	root.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")
	_ = v.BindPFlag("log-level", root.PersistentFlags().Lookup("log-level"))
	v.SetEnvPrefix("ICTCTL")
	v.AutomaticEnv()

	root.AddCommand(newEstimateCmd(d), newCompareCmd(), newSeedCmd(d))
	return root
}

// openCatalogDB connects to the catalog database with the same environment
// variables the catalog service reads.
func openCatalogDB(ctx context.Context) (domain.ProductRepository, func() error, error) {
	cfg, err := config.Load(config.Defaults{ServiceName: "ictctl", HTTPPort: "0", DBName: "catalogdb"})
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	db, err := database.NewGormConnection(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("connect catalog database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, err
	}
	if err := repository.NewGormProductRepository(db.WithContext(ctx)).AutoMigrate(); err != nil {
		sqlDB.Close()
		return nil, nil, fmt.Errorf("migrate catalog: %w", err)
	}

	logger.Info(ctx).Str("host", cfg.Database.Host).Str("db", cfg.Database.DBName).Msg("Connected to catalog database")
	return catalog.ProvideProductRepository(db), sqlDB.Close, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func readFile(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
