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

//go:generate mockgen -destination=mock_sync.go -package=sync github.com/akinanet/pppsync/pkg/sync Device,CustomerSource,TargetSource

package sync

import (
	"context"
	"time"

	"github.com/akinanet/pppsync/pkg/logger"
	"github.com/akinanet/pppsync/pkg/mikrotik"
	"github.com/akinanet/pppsync/pkg/models"
)

// Device is the command surface of one router session. Implemented by
// mikrotik.Client; mocked in tests.
type Device interface {
	SecretExists(ctx context.Context, name string) (bool, error)
	DisableSecret(ctx context.Context, name string) error
	UpsertSecret(ctx context.Context, name, profile, password string) (models.SyncAction, error)
	ListProfiles(ctx context.Context) ([]string, error)
}

// DeviceFactory wraps an open session in a Device. The default wraps
// mikrotik.NewClient; tests substitute fakes.
type DeviceFactory func(session mikrotik.Session, log logger.Logger) Device

// CustomerSource yields the customers to reconcile against a router,
// each loaded with plan and invoices. A non-positive targetID means
// the full customer population (static single-router deployments).
type CustomerSource interface {
	CustomersForTarget(ctx context.Context, targetID int64) ([]models.Customer, error)
}

// TargetSource yields the routers to sync.
type TargetSource interface {
	ActiveTargets(ctx context.Context) ([]models.RemoteTarget, error)
}

// StaticTargets serves a fixed router list from configuration instead
// of the database. Entries are active by definition: removing one from
// the config is how it gets disabled.
type StaticTargets []models.RemoteTarget

func (s StaticTargets) ActiveTargets(_ context.Context) ([]models.RemoteTarget, error) {
	targets := make([]models.RemoteTarget, len(s))
	copy(targets, s)

	for i := range targets {
		targets[i].IsActive = true
	}

	return targets, nil
}

// Clock abstracts time for billing-status evaluation in tests.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }
