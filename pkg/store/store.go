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

// Package store reads customers, invoices, and router targets from the
// back-office Postgres database. It is read-only: schema and writes are
// owned by the web application.
package store

import (
	"context"
	"fmt"

	"github.com/akinanet/pppsync/pkg/logger"
	"github.com/akinanet/pppsync/pkg/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const activeTargetsQuery = `
	SELECT id, name, host, COALESCE(username, ''), COALESCE(password, ''), COALESCE(port, 22), is_active
	FROM mikrotik_servers
	WHERE is_active
	ORDER BY id`

const customersForTargetQuery = `
	SELECT c.id, c.account_no, c.name, COALESCE(c.email, ''), COALESCE(c.phone, ''),
	       COALESCE(c.address, ''), c.status, COALESCE(c.coverage_id, 0),
	       p.id, p.name, p.price, p.category, p.status, p.mikrotik_profile
	FROM customers c
	LEFT JOIN internet_packages p ON p.id = c.plan_id
	JOIN coverage_mikrotik_integrations i
	  ON i.coverage_id = c.coverage_id
	 AND i.mikrotik_server_id = $1
	 AND i.is_active
	ORDER BY c.id`

const allCustomersQuery = `
	SELECT c.id, c.account_no, c.name, COALESCE(c.email, ''), COALESCE(c.phone, ''),
	       COALESCE(c.address, ''), c.status, COALESCE(c.coverage_id, 0),
	       p.id, p.name, p.price, p.category, p.status, p.mikrotik_profile
	FROM customers c
	LEFT JOIN internet_packages p ON p.id = c.plan_id
	ORDER BY c.id`

const invoicesQuery = `
	SELECT id, invoice_no, customer_id, billing_type, start_date, end_date,
	       amount, status, due_date, COALESCE(remarks, '')
	FROM invoices
	WHERE customer_id = ANY($1)
	ORDER BY customer_id, due_date`

// DB wraps a pgx connection pool.
type DB struct {
	pool   *pgxpool.Pool
	logger logger.Logger
}

// New opens a pool against connString and verifies it with a ping.
func New(ctx context.Context, connString string, log logger.Logger) (*DB, error) {
	poolConfig, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing database url: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &DB{pool: pool, logger: log}, nil
}

// Close releases the pool.
func (db *DB) Close() {
	db.pool.Close()
}

// ActiveTargets returns every router marked active in settings.
func (db *DB) ActiveTargets(ctx context.Context) ([]models.RemoteTarget, error) {
	rows, err := db.pool.Query(ctx, activeTargetsQuery)
	if err != nil {
		return nil, fmt.Errorf("querying targets: %w", err)
	}
	defer rows.Close()

	var targets []models.RemoteTarget

	for rows.Next() {
		var t models.RemoteTarget

		if err := rows.Scan(&t.ID, &t.Name, &t.Host, &t.Username, &t.Password, &t.Port, &t.IsActive); err != nil {
			return nil, fmt.Errorf("scanning target: %w", err)
		}

		targets = append(targets, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading targets: %w", err)
	}

	return targets, nil
}

// CustomersForTarget loads the customers routed to one router through
// its active coverage links, each with plan and invoices. A
// non-positive targetID loads the full customer population, for static
// single-router deployments that predate coverage routing.
func (db *DB) CustomersForTarget(ctx context.Context, targetID int64) ([]models.Customer, error) {
	var (
		rows pgx.Rows
		err  error
	)

	if targetID > 0 {
		rows, err = db.pool.Query(ctx, customersForTargetQuery, targetID)
	} else {
		rows, err = db.pool.Query(ctx, allCustomersQuery)
	}

	if err != nil {
		return nil, fmt.Errorf("querying customers: %w", err)
	}
	defer rows.Close()

	var customers []models.Customer

	for rows.Next() {
		customer, scanErr := scanCustomer(rows)
		if scanErr != nil {
			return nil, scanErr
		}

		customers = append(customers, customer)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading customers: %w", err)
	}

	if err := db.attachInvoices(ctx, customers); err != nil {
		return nil, err
	}

	return customers, nil
}

func scanCustomer(rows pgx.Rows) (models.Customer, error) {
	var (
		c models.Customer

		// plan columns are nullable through the LEFT JOIN
		planID       *int64
		planName     *string
		planPrice    *float64
		planCategory *string
		planStatus   *string
		planProfile  *string
	)

	err := rows.Scan(
		&c.ID, &c.AccountNo, &c.Name, &c.Email, &c.Phone, &c.Address, &c.Status, &c.CoverageID,
		&planID, &planName, &planPrice, &planCategory, &planStatus, &planProfile,
	)
	if err != nil {
		return models.Customer{}, fmt.Errorf("scanning customer: %w", err)
	}

	if planID != nil {
		c.Plan = &models.Plan{ID: *planID}

		if planName != nil {
			c.Plan.Name = *planName
		}

		if planPrice != nil {
			c.Plan.Price = *planPrice
		}

		if planCategory != nil {
			c.Plan.Category = *planCategory
		}

		if planStatus != nil {
			c.Plan.Status = *planStatus
		}

		if planProfile != nil {
			c.Plan.MikrotikProfile = *planProfile
		}
	}

	return c, nil
}

func (db *DB) attachInvoices(ctx context.Context, customers []models.Customer) error {
	if len(customers) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(customers))
	byID := make(map[int64]*models.Customer, len(customers))

	for i := range customers {
		ids = append(ids, customers[i].ID)
		byID[customers[i].ID] = &customers[i]
	}

	rows, err := db.pool.Query(ctx, invoicesQuery, ids)
	if err != nil {
		return fmt.Errorf("querying invoices: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var inv models.Invoice

		err := rows.Scan(
			&inv.ID, &inv.InvoiceNo, &inv.CustomerID, &inv.BillingType,
			&inv.StartDate, &inv.EndDate, &inv.Amount, &inv.Status, &inv.DueDate, &inv.Remarks,
		)
		if err != nil {
			return fmt.Errorf("scanning invoice: %w", err)
		}

		if customer, ok := byID[inv.CustomerID]; ok {
			customer.Invoices = append(customer.Invoices, inv)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("reading invoices: %w", err)
	}

	return nil
}
