/*
 * Copyright 2025 Akina Networks.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/akinanet/pppsync/pkg/config"
	"github.com/akinanet/pppsync/pkg/logger"
	"github.com/akinanet/pppsync/pkg/store"
	"github.com/akinanet/pppsync/pkg/sync"
)

func main() {
	// exit through run so deferred cleanup (pool close) always happens
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "/etc/pppsync/sync.json", "Path to config file")
	once := flag.Bool("once", false, "Run a single sync pass and exit")
	flag.Parse()

	ctx := context.Background()
	cfgLoader := config.NewConfig(nil)

	var cfg sync.Config

	if err := cfgLoader.LoadAndValidate(ctx, *configPath, &cfg); err != nil {
		log.Printf("Failed to load config: %v", err)
		return 1
	}

	appLog, err := logger.NewLogger(cfg.Logging)
	if err != nil {
		log.Printf("Failed to create logger: %v", err)
		return 1
	}

	if cfg.DatabaseURL == "" {
		log.Printf("database_url is required: customers are loaded from the back-office database")
		return 1
	}

	db, err := store.New(ctx, cfg.DatabaseURL, appLog)
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		return 1
	}
	defer db.Close()

	var targets sync.TargetSource = db
	if len(cfg.Targets) > 0 {
		targets = sync.StaticTargets(cfg.Targets)
	}

	service, err := sync.NewService(&cfg, nil, db, targets, appLog)
	if err != nil {
		log.Printf("Failed to create sync service: %v", err)
		return 1
	}

	if *once {
		return runOnce(ctx, service)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := service.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("Sync service failed: %v", err)
		return 1
	}

	return 0
}

func runOnce(ctx context.Context, service *sync.Service) int {
	reports, err := service.Run(ctx)
	if err != nil {
		log.Printf("Sync pass failed: %v", err)
		return 1
	}

	exitCode := 0

	for i := range reports {
		if reports[i].Err != nil {
			exitCode = 1
			continue
		}

		for j := range reports[i].Outcomes {
			if reports[i].Outcomes[j].Failed() {
				exitCode = 1
			}
		}
	}

	return exitCode
}
