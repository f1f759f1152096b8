package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/example/adisyon/internal/config"
	"github.com/example/adisyon/internal/db"
	"github.com/example/adisyon/internal/logging"
	"github.com/example/adisyon/internal/migrate"
)

var (
	Version   = "dev"
	CommitSHA = "none"
	BuildDate = "unknown"
)

func NewRootCmd() *cobra.Command {
	opts := &seedOptions{}
	root := &cobra.Command{
		Use:           "adisyon",
		Short:         "Provision POS reference data: sections, tables, staff, menu and chef permissions",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd, opts)
		},
	}
	opts.bind(root)

	root.AddCommand(newVersionCmd())
	root.AddCommand(newSeedCmd())
	root.AddCommand(newMigrateCmd())
	root.AddCommand(newInspectCmd())
	root.AddCommand(newPasswordCmd())

	return root
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// env bundles what every database command needs.
type env struct {
	cfg config.Config
	log *zap.Logger
	db  *db.DB
}

func newEnv(databaseURL string) (*env, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, err
	}
	if databaseURL != "" {
		cfg.DatabaseURL = databaseURL
	}

	log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, log: log}, nil
}

// open connects to the store and applies pending migrations.
func (e *env) open(ctx context.Context) error {
	dialect, err := db.DialectFor(e.cfg.DatabaseDriver, e.cfg.DatabaseURL)
	if err != nil {
		return err
	}
	d, err := db.Open(ctx, dialect, e.cfg.DatabaseURL)
	if err != nil {
		return err
	}
	if err := d.Ping(ctx); err != nil {
		d.Close()
		return fmt.Errorf("db ping: %w", err)
	}
	if err := migrate.Up(ctx, d); err != nil {
		d.Close()
		return fmt.Errorf("migrate: %w", err)
	}
	e.db = d
	e.log.Debug("store ready", zap.String("dialect", string(dialect)))
	return nil
}

func (e *env) close() {
	if e.db != nil {
		e.db.Close()
	}
	_ = e.log.Sync()
}
