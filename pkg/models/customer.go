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

// Plan is an internet service package. MikrotikProfile is the PPP
// profile name configured on the routers for this plan; an empty value
// means the plan has never been mapped to device configuration.
type Plan struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	Category        string  `json:"category"`
	Status          string  `json:"status"`
	MikrotikProfile string  `json:"mikrotik_profile"`
}

// Coverage is a service area. Customers and routers are both scoped to
// coverage areas; the back office links them through an integration table.
type Coverage struct {
	ID       int64  `json:"id"`
	AreaCode string `json:"area_code"`
	Name     string `json:"name"`
	Address  string `json:"address,omitempty"`
}

// Customer is one subscriber record, loaded with the plan and invoice
// data the sync engine needs. The web application owns the full record;
// this is the projection the engine consumes.
type Customer struct {
	ID         int64  `json:"id"`
	AccountNo  string `json:"account_no"`
	Name       string `json:"name"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Address    string `json:"address,omitempty"`
	Status     string `json:"status"`
	CoverageID int64  `json:"coverage_id"`

	Plan     *Plan     `json:"plan"`
	Invoices []Invoice `json:"invoices"`
}

// SecretName returns the key this customer's PPPoE secret is stored
// under on the router. The display name is the historical key and the
// default; account numbers are stable and collision-free but change
// wire compatibility with secrets written under the old key.
func (c *Customer) SecretName(useAccountNo bool) string {
	if useAccountNo && c.AccountNo != "" {
		return c.AccountNo
	}

	return c.Name
}
