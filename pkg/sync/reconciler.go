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

package sync

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/akinanet/pppsync/pkg/logger"
	"github.com/akinanet/pppsync/pkg/models"
)

// ErrMissingProfile marks a customer whose plan carries no router
// profile mapping. This is a data-configuration gap ("fix the data"),
// distinct from transport/device faults ("fix the network").
var ErrMissingProfile = errors.New("plan has no mikrotik profile configured")

// Reconciler converges one customer's router secret with their billing
// state. It holds no state across calls: the decision is re-evaluated
// from scratch on every run.
//
// Transition rule: overdue customers get their secret disabled if one
// exists (nothing to disable otherwise); current customers get an
// enabled secret with the plan's profile, created if absent.
type Reconciler struct {
	device         Device
	pppoePassword  string
	useAccountKeys bool
	clock          Clock
	logger         logger.Logger
}

// NewReconciler builds a reconciler over one router session's device.
func NewReconciler(device Device, pppoePassword string, useAccountKeys bool, clock Clock, log logger.Logger) *Reconciler {
	if clock == nil {
		clock = realClock{}
	}

	return &Reconciler{
		device:         device,
		pppoePassword:  pppoePassword,
		useAccountKeys: useAccountKeys,
		clock:          clock,
		logger:         log,
	}
}

// Reconcile applies the target secret state for one customer. Failures
// are reported in the outcome, never returned: per-customer faults must
// not abort a batch.
func (r *Reconciler) Reconcile(ctx context.Context, customer *models.Customer) models.SyncOutcome {
	secret := customer.SecretName(r.useAccountKeys)

	outcome := models.SyncOutcome{
		CustomerID: customer.ID,
		Customer:   customer.Name,
		Secret:     secret,
	}

	status := models.BillingStatusAt(r.clock.Now(), customer.Invoices)

	r.logger.Debug().
		Str("customer", customer.Name).
		Str("secret", secret).
		Str("billing_status", string(status)).
		Msg("reconciling customer")

	if status == models.BillingOverdue {
		r.disableIfPresent(ctx, secret, &outcome)
		return outcome
	}

	r.ensureEnabled(ctx, customer, secret, &outcome)

	return outcome
}

func (r *Reconciler) disableIfPresent(ctx context.Context, secret string, outcome *models.SyncOutcome) {
	exists, err := r.device.SecretExists(ctx, secret)
	if err != nil {
		outcome.Action = models.ActionFailed
		outcome.Err = err
		outcome.Detail = "checking for existing secret"

		return
	}

	if !exists {
		outcome.Action = models.ActionSkipped
		outcome.Detail = "overdue, but no secret on router: nothing to disable"

		return
	}

	if err := r.device.DisableSecret(ctx, secret); err != nil {
		outcome.Action = models.ActionFailed
		outcome.Err = err
		outcome.Detail = "disabling secret"

		return
	}

	outcome.Action = models.ActionDisabled
	outcome.Detail = "disabled for overdue pending invoice"
}

func (r *Reconciler) ensureEnabled(ctx context.Context, customer *models.Customer, secret string, outcome *models.SyncOutcome) {
	profile := ""
	planName := "(none)"

	if customer.Plan != nil {
		profile = strings.TrimSpace(customer.Plan.MikrotikProfile)
		planName = customer.Plan.Name
	}

	if profile == "" {
		outcome.Action = models.ActionFailed
		outcome.Err = fmt.Errorf("%w: plan %q", ErrMissingProfile, planName)
		outcome.Detail = "customer cannot be synced until the plan is mapped to a router profile"

		return
	}

	action, err := r.device.UpsertSecret(ctx, secret, profile, r.pppoePassword)
	if err != nil {
		outcome.Action = models.ActionFailed
		outcome.Err = err
		outcome.Detail = "upserting secret"

		return
	}

	outcome.Action = action

	switch action {
	case models.ActionCreated:
		outcome.Detail = fmt.Sprintf("created secret with profile %s", profile)
	case models.ActionEnabled:
		outcome.Detail = fmt.Sprintf("enabled secret with profile %s", profile)
	default:
		outcome.Detail = fmt.Sprintf("synced secret with profile %s", profile)
	}
}
