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

// Package sync reconciles customer billing state against MikroTik PPPoE
// secrets: a per-customer reconciler and a batch orchestrator that runs
// the full population against each active router.
package sync

import (
	"context"
	gosync "sync"
	"time"

	"github.com/akinanet/pppsync/pkg/logger"
	"github.com/akinanet/pppsync/pkg/mikrotik"
	"github.com/akinanet/pppsync/pkg/models"
	"github.com/google/uuid"
)

// TargetReport aggregates one router's sync pass. Err is set only when
// the session could not be established or the customer list could not
// be loaded; per-customer failures live inside Outcomes.
type TargetReport struct {
	Target   string               `json:"target"`
	Outcomes []models.SyncOutcome `json:"outcomes"`
	Err      error                `json:"-"`
}

// Service is the batch sync orchestrator.
type Service struct {
	config    Config
	transport mikrotik.Transport
	customers CustomerSource
	targets   TargetSource
	newDevice DeviceFactory
	clock     Clock
	logger    logger.Logger
}

// NewService validates the config and wires the orchestrator. transport
// may be nil, in which case an SSH transport with the configured
// per-command timeout is used.
func NewService(
	config *Config,
	transport mikrotik.Transport,
	customers CustomerSource,
	targets TargetSource,
	log logger.Logger,
) (*Service, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	if transport == nil {
		transport = mikrotik.NewSSHTransport(time.Duration(config.CommandTimeout), log)
	}

	return &Service{
		config:    *config,
		transport: transport,
		customers: customers,
		targets:   targets,
		newDevice: func(session mikrotik.Session, log logger.Logger) Device {
			return mikrotik.NewClient(session, log)
		},
		clock:  realClock{},
		logger: log,
	}, nil
}

// RunSync reconciles the given customers against one router on a single
// session. If the session cannot be opened the whole pass fails fast
// with zero outcomes. Otherwise customers are processed strictly in
// input order and every per-customer failure is recorded in its outcome
// without stopping the pass. The session is released exactly once.
func (s *Service) RunSync(ctx context.Context, target models.RemoteTarget, customers []models.Customer) ([]models.SyncOutcome, error) {
	runID := uuid.New().String()

	log := s.logger.With().
		Str("run_id", runID).
		Str("target", target.Name).
		Logger()

	session, err := s.transport.Open(ctx, target)
	if err != nil {
		log.Error().Err(err).Msg("session open failed, aborting run")
		return nil, err
	}

	defer func() {
		if closeErr := session.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("closing session")
		}
	}()

	log.Info().Int("customers", len(customers)).Msg("starting sync run")

	// the device gets the run-scoped logger so every audit entry in the
	// command stream is attributable to this run and router, even when
	// several routers sync concurrently
	runLog := logger.FromZerolog(log)
	device := s.newDevice(session, runLog)
	reconciler := NewReconciler(device, s.config.PPPoEPassword, s.config.UseAccountKeys, s.clock, runLog)

	outcomes := make([]models.SyncOutcome, 0, len(customers))

	for i := range customers {
		outcome := reconciler.Reconcile(ctx, &customers[i])

		if outcome.Failed() {
			log.Warn().Err(outcome.Err).
				Str("customer", outcome.Customer).
				Str("detail", outcome.Detail).
				Msg("customer sync failed")
		} else {
			log.Info().
				Str("customer", outcome.Customer).
				Str("action", string(outcome.Action)).
				Msg(outcome.Detail)
		}

		outcomes = append(outcomes, outcome)
	}

	log.Info().Int("outcomes", len(outcomes)).Msg("sync run complete")

	return outcomes, nil
}

// SyncCustomer reconciles a single customer on demand, on a dedicated
// session. Used for administrative "sync now" actions outside the
// scheduled batch.
func (s *Service) SyncCustomer(ctx context.Context, target models.RemoteTarget, customer models.Customer) (models.SyncOutcome, error) {
	outcomes, err := s.RunSync(ctx, target, []models.Customer{customer})
	if err != nil {
		return models.SyncOutcome{}, err
	}

	return outcomes[0], nil
}

// Run executes one full pass: every active router is synced against the
// customers of its linked coverage areas. Routers run concurrently,
// each on its own independently-sequenced session; commands within one
// session stay strictly sequential.
func (s *Service) Run(ctx context.Context) ([]TargetReport, error) {
	targets, err := s.targets.ActiveTargets(ctx)
	if err != nil {
		return nil, err
	}

	reports := make([]TargetReport, len(targets))

	var wg gosync.WaitGroup

	for i := range targets {
		target := targets[i]

		if !target.IsActive {
			reports[i] = TargetReport{Target: target.Name}
			continue
		}

		wg.Add(1)

		go func(i int, target models.RemoteTarget) {
			defer wg.Done()

			reports[i] = s.syncTarget(ctx, target)
		}(i, target)
	}

	wg.Wait()

	return reports, nil
}

func (s *Service) syncTarget(ctx context.Context, target models.RemoteTarget) TargetReport {
	customers, err := s.customers.CustomersForTarget(ctx, target.ID)
	if err != nil {
		return TargetReport{Target: target.Name, Err: err}
	}

	outcomes, err := s.RunSync(ctx, target, customers)

	return TargetReport{Target: target.Name, Outcomes: outcomes, Err: err}
}

// Start runs a pass immediately and then on every poll interval until
// the context is canceled.
func (s *Service) Start(ctx context.Context) error {
	ticker := time.NewTicker(time.Duration(s.config.PollInterval))
	defer ticker.Stop()

	s.runAndLog(ctx)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.runAndLog(ctx)
		}
	}
}

func (s *Service) runAndLog(ctx context.Context) {
	reports, err := s.Run(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("sync pass failed")
		return
	}

	for i := range reports {
		report := &reports[i]

		if report.Err != nil {
			s.logger.Error().Err(report.Err).
				Str("target", report.Target).
				Msg("router sync failed")

			continue
		}

		failed := 0

		for j := range report.Outcomes {
			if report.Outcomes[j].Failed() {
				failed++
			}
		}

		s.logger.Info().
			Str("target", report.Target).
			Int("customers", len(report.Outcomes)).
			Int("failed", failed).
			Msg("router sync complete")
	}
}
