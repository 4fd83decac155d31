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

// Package models defines the domain types shared across the sync engine:
// customers, plans, invoices, coverage areas, router targets, and the
// per-customer sync outcomes.
package models

import "time"

// InvoiceStatus is the billing state recorded on an invoice.
type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

// Invoice is one billing record for a customer. Amount policy (tax,
// proration) is owned by the billing application, not this engine.
type Invoice struct {
	ID          int64         `json:"id"`
	InvoiceNo   string        `json:"invoice_no"`
	CustomerID  int64         `json:"customer_id"`
	BillingType string        `json:"billing_type"`
	StartDate   time.Time     `json:"start_date"`
	EndDate     time.Time     `json:"end_date"`
	Amount      float64       `json:"amount"`
	Status      InvoiceStatus `json:"status"`
	DueDate     time.Time     `json:"due_date"`
	Remarks     string        `json:"remarks,omitempty"`
}

// BillingStatus is the per-pass verdict derived from a customer's
// invoices. It is recomputed on every sync pass and never persisted.
type BillingStatus string

const (
	BillingCurrent BillingStatus = "current"
	BillingOverdue BillingStatus = "overdue"
)

// BillingStatusAt classifies a customer's invoices as of now: any
// pending invoice whose due date has passed marks the customer overdue.
// The first match short-circuits the scan.
func BillingStatusAt(now time.Time, invoices []Invoice) BillingStatus {
	for i := range invoices {
		if invoices[i].Status == InvoiceStatusPending && invoices[i].DueDate.Before(now) {
			return BillingOverdue
		}
	}

	return BillingCurrent
}
