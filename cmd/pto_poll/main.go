// Command pto_poll runs one of the polling triggers once and prints every item it has not
// printed before, one JSON object per line. Scheduling is left to cron or the host.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	seenstore "github.com/SscSPs/pto_ledger_service/internal/adapters/seenstore/bolt"
	"github.com/SscSPs/pto_ledger_service/internal/core/services"
	"github.com/SscSPs/pto_ledger_service/internal/platform/bootstrap"
	"github.com/SscSPs/pto_ledger_service/internal/platform/config"
	"github.com/SscSPs/pto_ledger_service/internal/repositories/recordstore"
	"github.com/shopspring/decimal"
)

func main() {
	trigger := flag.String("trigger", TriggerPTORequests, "Trigger to poll: pto-requests, approvals")
	requestType := flag.String("request-type", "", "Only PTO requests of this type (pto-requests)")
	statusFilter := flag.String("status", "", "Only decisions with this status (approvals)")
	seenDB := flag.String("seen-db", "", "BoltDB file remembering emitted IDs (defaults to POLL_SEEN_DB)")
	reset := flag.Bool("reset", false, "Forget every ID seen for the trigger before polling")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// stdout carries the items
	logger := bootstrap.NewLogger(os.Stderr, cfg.LogLevel)
	slog.SetDefault(logger)
	decimal.MarshalJSONWithoutQuotes = true

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := bootstrap.OpenRecordStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize record store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeStore()

	path := *seenDB
	if path == "" {
		path = cfg.PollSeenDB
	}
	seen, err := seenstore.Open(path)
	if err != nil {
		logger.Error("Failed to open seen store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer seen.Close()

	if *reset {
		if err := seen.Forget(*trigger); err != nil {
			logger.Error("Failed to reset seen store", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	repos := recordstore.NewRepositoryProvider(store)
	poller := services.NewPollerService(repos.RequestRepo, repos.ApprovalRepo)

	n, err := poll(ctx, poller, seen, pollOptions{
		Trigger:      *trigger,
		RequestType:  *requestType,
		StatusFilter: *statusFilter,
	}, os.Stdout)
	if err != nil {
		logger.Error("Poll failed", slog.String("trigger", *trigger), slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Poll finished", slog.String("trigger", *trigger), slog.Int("new_items", n))
}
