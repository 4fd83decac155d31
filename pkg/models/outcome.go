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

package models

import "fmt"

// SyncAction is the result kind of one reconciliation attempt.
type SyncAction string

const (
	ActionCreated  SyncAction = "created"
	ActionEnabled  SyncAction = "enabled"
	ActionDisabled SyncAction = "disabled"
	ActionSkipped  SyncAction = "skipped"
	ActionFailed   SyncAction = "failed"
)

// SyncOutcome records what happened to one customer during a sync pass.
// Outcomes are transient: produced by the reconciler, aggregated by the
// orchestrator for reporting, never persisted.
type SyncOutcome struct {
	CustomerID int64      `json:"customer_id"`
	Customer   string     `json:"customer"`
	Secret     string     `json:"secret"`
	Action     SyncAction `json:"action"`
	Detail     string     `json:"detail"`
	Err        error      `json:"-"`
}

// Failed reports whether the attempt ended in an error outcome.
func (o *SyncOutcome) Failed() bool {
	return o.Action == ActionFailed
}

// String renders the outcome for direct display or logging.
func (o *SyncOutcome) String() string {
	if o.Err != nil {
		return fmt.Sprintf("%s [%s]: %s: %v", o.Customer, o.Secret, o.Action, o.Err)
	}

	return fmt.Sprintf("%s [%s]: %s: %s", o.Customer, o.Secret, o.Action, o.Detail)
}
