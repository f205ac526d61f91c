// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-pol-safe/internal/client"
	"github.com/MKhiriev/go-pol-safe/internal/config"
	"github.com/MKhiriev/go-pol-safe/internal/logger"
	"github.com/MKhiriev/go-pol-safe/internal/safe"
	"github.com/MKhiriev/go-pol-safe/internal/service"
	"github.com/MKhiriev/go-pol-safe/internal/store"
	"github.com/MKhiriev/go-pol-safe/internal/utils"
	"github.com/MKhiriev/go-pol-safe/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	log := logger.NewLogger("pol")
	cfg, args, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Error().Err(err).Msg("error getting configs")
		fmt.Fprintln(os.Stderr, "pol:", client.UserMessage(err))
		return 2
	}

	if len(args) > 0 && args[0] == "version" {
		fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
		return 0
	}

	log, err = log.WithLevel(cfg.Log.Level)
	if err != nil {
		fmt.Fprintln(os.Stderr, "pol:", client.UserMessage(err))
		return 2
	}
	log = log.WithTrace(utils.NewUUIDGenerator().Generate())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = log.WithContext(ctx)

	storage := store.NewSafeFileStorage(cfg.Safe.Path, log)
	svc := service.NewSafeService(storage,
		safe.WithLogger(log),
		safe.WithWorkers(cfg.Workers.Count),
		safe.WithProgress(func(done, total int) {
			log.Trace().Int("done", done).Int("total", total).Msg("rerandomize progress")
		}),
	)

	app, err := client.NewApp(svc, cfg)
	if err != nil {
		log.Error().Err(err).Msg("init client app error")
		return 1
	}

	if err = app.Run(ctx, args); err != nil {
		log.Debug().Err(err).Msg("command failed")
		fmt.Fprintln(os.Stderr, "pol:", client.UserMessage(err))
		return 1
	}
	return 0
}
