// Command oficinactl is the operator CLI: table migration, fixture seeding
// and offline category classification.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"oficina/internal/adapter/persistence/repository"
	"oficina/internal/infrastructure/config"
	"oficina/internal/infrastructure/logging"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rootOptions struct {
	driver      string
	databaseURL string
	verbose     bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "oficinactl",
		Short:         "Operator tooling for the oficina service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := "warn"
			if opts.verbose {
				level = "debug"
			}
			_, err := logging.Init(level, "console")
			return err
		},
	}
	cmd.PersistentFlags().StringVar(&opts.driver, "driver", "", "Storage driver: dynamodb or gorm (default from STORAGE_DRIVER)")
	cmd.PersistentFlags().StringVar(&opts.databaseURL, "database-url", "", "GORM DSN (default from DATABASE_URL)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newMigrateCmd(opts))
	cmd.AddCommand(newSeedCmd(opts))
	cmd.AddCommand(newClassifyCmd())
	return cmd
}

// config returns the environment config with flag overrides applied.
func (o *rootOptions) config() config.Config {
	cfg := config.Load()
	if o.driver != "" {
		cfg.StorageDriver = o.driver
	}
	if o.databaseURL != "" {
		cfg.DatabaseURL = o.databaseURL
	}
	return cfg
}

func (o *rootOptions) openStorage(ctx context.Context) (*repository.Storage, config.Config, error) {
	cfg := o.config()
	s, err := repository.OpenStorage(ctx, cfg)
	return s, cfg, err
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := newRootCmd().ExecuteContext(ctx)
	_ = zap.L().Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
