// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/protonpass/ios-pass-sub006/internal/client"
	"github.com/protonpass/ios-pass-sub006/internal/config"
	"github.com/protonpass/ios-pass-sub006/internal/logger"
	"github.com/protonpass/ios-pass-sub006/internal/service"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("pass-sync")
	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := client.NewApp(ctx, cfg, nil, logObserver(log), log)
	if err != nil {
		log.Fatal().Err(err).Msg("init sync engine error")
	}

	// Standalone runs take one account's credentials from the environment;
	// embedded hosts call SignIn from their own account flows instead.
	if accountID := os.Getenv("PASS_ACCOUNT_ID"); accountID != "" {
		app.SignIn(accountID, os.Getenv("PASS_SESSION_TOKEN"), []byte(os.Getenv("PASS_USER_KEY")))
	}

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("sync engine run error")
	}
}

// logObserver surfaces loop events in the process log.
func logObserver(log *logger.Logger) service.LoopObserver {
	return func(event service.LoopEvent) {
		switch event.Kind {
		case service.SyncFinished:
			log.Info().
				Str("account_id", event.AccountID).
				Bool("had_new_events", event.HadNewEvents).
				Msg("sync finished")
		case service.SyncSkipped:
			log.Debug().
				Str("account_id", event.AccountID).
				Str("reason", string(event.Reason)).
				Msg("sync skipped")
		case service.SyncFailed:
			log.Error().
				Err(event.Err).
				Str("account_id", event.AccountID).
				Msg("sync failed")
		case service.TaskFailed:
			log.Error().
				Err(event.Err).
				Str("account_id", event.AccountID).
				Str("task", event.Label).
				Msg("task failed")
		}
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
