package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/careercoin/internal/app"
	"github.com/MrJamesThe3rd/careercoin/internal/config"
	"github.com/MrJamesThe3rd/careercoin/internal/logging"
)

// openFunc builds the service graph. main passes app.New; tests pass a prebuilt app.
type openFunc func(ctx context.Context, cfg *config.Config) (*app.App, error)

type cli struct {
	open openFunc
	app  *app.App

	storage  string
	path     string
	logLevel string
}

func newRootCmd(open openFunc) *cobra.Command {
	c := &cli{open: open}

	root := &cobra.Command{
		Use:   "coinctl",
		Short: "Inspect and operate a CareerCoin ledger",
		Long: `coinctl reads the same configuration as the API server and works on the
same storage, so it can award coins, redeem rewards and export the log
without going through HTTP.`,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if c.app == nil {
				return nil
			}

			return c.app.Close()
		},
	}

	root.PersistentFlags().StringVar(&c.storage, "storage", "", "storage driver (memory, sqlite, postgres); overrides STORAGE_DRIVER")
	root.PersistentFlags().StringVar(&c.path, "db", "", "sqlite file; overrides STORAGE_PATH")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "warn", "log level for diagnostics on stderr")

	root.AddCommand(
		c.balanceCmd(),
		c.historyCmd(),
		c.earnCmd(),
		c.redeemCmd(),
		c.rewardsCmd(),
		c.walletCmd(),
		c.checkInCmd(),
		c.roadmapCmd(),
		c.exportCmd(),
		c.importCmd(),
	)

	return root
}

func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	logging.SetupWriter(cmd.ErrOrStderr(), c.logLevel)

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if c.storage != "" {
		cfg.Storage.Driver = c.storage
	}

	if c.path != "" {
		cfg.Storage.Path = c.path
	}

	a, err := c.open(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("opening ledger: %w", err)
	}

	c.app = a

	return nil
}
