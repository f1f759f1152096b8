package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/example/adisyon/internal/fixture"
	"github.com/example/adisyon/internal/seed"
	"github.com/example/adisyon/internal/store"
)

type seedOptions struct {
	databaseURL string
	fixture     string
	generate    bool
}

func (o *seedOptions) bind(c *cobra.Command) {
	c.Flags().StringVar(&o.databaseURL, "database-url", "", "database URL (overrides DATABASE_URL)")
	c.Flags().StringVar(&o.fixture, "fixture", "", "YAML fixture to seed (default: built-in demo data)")
	c.Flags().BoolVar(&o.generate, "generate-passwords", false, "give every account its own random password")
}

func newSeedCmd() *cobra.Command {
	opts := &seedOptions{}
	c := &cobra.Command{
		Use:   "seed",
		Short: "Provision sections, tables, staff, menu and chef permissions (default command)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd, opts)
		},
	}
	opts.bind(c)
	return c
}

func runSeed(cmd *cobra.Command, o *seedOptions) error {
	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	e, err := newEnv(o.databaseURL)
	if err != nil {
		return err
	}
	defer e.close()

	path := e.cfg.FixturePath
	if o.fixture != "" {
		path = o.fixture
	}
	fx, err := fixture.Load(path)
	if err != nil {
		e.log.Error("fixture rejected", zap.Error(err))
		return err
	}

	policy := seed.PasswordPolicy{
		Default:  e.cfg.DefaultPassword,
		Generate: e.cfg.GeneratePasswords,
		Demo:     e.cfg.Demo,
		Cost:     e.cfg.BcryptCost,
	}
	if cmd.Flags().Changed("generate-passwords") {
		policy.Generate = o.generate
	}

	if err := e.open(ctx); err != nil {
		e.log.Error("store unavailable", zap.Error(err))
		return err
	}

	e.log.Info("seeding started",
		zap.String("fixture", fixtureName(path)),
		zap.Int("sections", len(fx.Sections)),
		zap.Int("users", len(fx.Users)),
		zap.Int("products", len(fx.Products)))

	report, err := seed.New(store.New(e.db), seed.Options{Passwords: policy, Logger: e.log}).Run(ctx, fx)
	if err != nil {
		e.log.Error("seeding failed", zap.Error(err))
		return err
	}

	e.log.Info("seeding completed", zap.Int("skipped", len(report.Skipped)))
	if policy.Demo && !policy.Generate {
		e.log.Warn("seeded accounts share the default password; demo use only")
	}
	return report.WriteSummary(cmd.OutOrStdout())
}

func fixtureName(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}
