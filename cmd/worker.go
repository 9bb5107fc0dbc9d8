package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	authPostgres "github.com/budgetwise/expense-tracker/internal/auth/postgres"
	"github.com/budgetwise/expense-tracker/pkg/logger"
	"github.com/spf13/cobra"
)

var pruneTokensCmd = &cobra.Command{
	Use:   "prune-tokens",
	Short: "Remove expired entries from the refresh token blacklist",
	Long:  `Delete blacklist rows whose tokens have already expired. Run once, or keep it running on an interval with --every.`,
	Run: func(cmd *cobra.Command, args []string) {
		runTokenPruner()
	},
}

var pruneInterval time.Duration

func init() {
	pruneTokensCmd.Flags().DurationVar(&pruneInterval, "every", 0, "Prune repeatedly on this interval instead of once (e.g. 1h)")
}

func runTokenPruner() {
	cfg, err := loadConfig(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	lg := logger.L()

	db, orm, err := initDB(cfg.Database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to init db: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	revocations := authPostgres.NewRevocationRepository(orm)

	prune := func() {
		pruned, err := revocations.PruneExpired(time.Now())
		if err != nil {
			lg.Error("token prune failed", "error", err)
			return
		}
		lg.Info("pruned expired blacklist entries", "count", pruned)
	}

	prune()
	if pruneInterval <= 0 {
		return
	}

	lg.Info("token pruner running", "interval", pruneInterval)

	ticker := time.NewTicker(pruneInterval)
	defer ticker.Stop()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-ticker.C:
			prune()
		case sig := <-sigChan:
			lg.Info("received signal, stopping token pruner", "signal", sig)
			return
		}
	}
}
