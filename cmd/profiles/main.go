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

// Command profiles lists the PPP profiles defined on a router. Used to
// check what profile names are available when mapping service plans.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/akinanet/pppsync/pkg/logger"
	"github.com/akinanet/pppsync/pkg/mikrotik"
	"github.com/akinanet/pppsync/pkg/models"
)

func main() {
	host := flag.String("host", "", "Router host or IP")
	username := flag.String("user", "admin", "SSH username")
	password := flag.String("password", "", "SSH password")
	port := flag.Int("port", 22, "SSH port")
	timeout := flag.Duration("timeout", 15*time.Second, "Per-command timeout")
	debug := flag.Bool("debug", false, "Log every command and raw response")
	flag.Parse()

	level := "warn"
	if *debug {
		level = "debug"
	}

	appLog, err := logger.NewLogger(&logger.Config{Level: level, Output: "stderr"})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	target := models.RemoteTarget{
		Name:     *host,
		Host:     *host,
		Username: *username,
		Password: *password,
		Port:     *port,
		IsActive: true,
	}

	ctx := context.Background()
	transport := mikrotik.NewSSHTransport(*timeout, appLog)

	session, err := transport.Open(ctx, target)
	if err != nil {
		log.Fatalf("Failed to open session: %v", err)
	}
	defer func() { _ = session.Close() }()

	profiles, err := mikrotik.NewClient(session, appLog).ListProfiles(ctx)
	if err != nil {
		log.Fatalf("Failed to list profiles: %v", err)
	}

	if len(profiles) == 0 {
		fmt.Println("no PPP profiles defined")
		return
	}

	for _, name := range profiles {
		fmt.Println(name)
	}
}
