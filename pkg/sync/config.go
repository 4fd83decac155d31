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
	"errors"
	"fmt"
	"time"

	"github.com/akinanet/pppsync/pkg/logger"
	"github.com/akinanet/pppsync/pkg/models"
)

const (
	defaultPollInterval   = time.Hour
	defaultCommandTimeout = 15 * time.Second
)

var (
	errMissingPassword = errors.New("pppoe_password is required")
	errMissingSources  = errors.New("either database_url or at least one static target must be configured")
	errTargetFields    = errors.New("static target missing required fields (host, username, password)")
)

// Config drives the sync service.
type Config struct {
	// DatabaseURL points at the back-office Postgres database. When set,
	// routers and their coverage-scoped customers are loaded from it.
	DatabaseURL string `json:"database_url,omitempty"`

	// Targets statically configures routers instead of (or in addition
	// to) the database's router list. Each static target is synced
	// against the full customer population.
	Targets []models.RemoteTarget `json:"targets,omitempty"`

	// PPPoEPassword is the shared password set on created secrets.
	PPPoEPassword string `json:"pppoe_password"`

	// UseAccountKeys keys secrets by stable account number instead of
	// display name. Changes wire compatibility with secrets written
	// under display-name keys; see README.
	UseAccountKeys bool `json:"use_account_keys,omitempty"`

	PollInterval   models.Duration `json:"poll_interval,omitempty"`
	CommandTimeout models.Duration `json:"command_timeout,omitempty"`

	Logging *logger.Config `json:"logging,omitempty"`
}

// Validate applies defaults and rejects configs that cannot run.
func (c *Config) Validate() error {
	if c.PPPoEPassword == "" {
		return errMissingPassword
	}

	if c.DatabaseURL == "" && len(c.Targets) == 0 {
		return errMissingSources
	}

	for i := range c.Targets {
		t := &c.Targets[i]
		if t.Host == "" || t.Username == "" || t.Password == "" {
			return fmt.Errorf("%w: target %q", errTargetFields, t.Name)
		}
	}

	if time.Duration(c.PollInterval) == 0 {
		c.PollInterval = models.Duration(defaultPollInterval)
	}

	if time.Duration(c.CommandTimeout) == 0 {
		c.CommandTimeout = models.Duration(defaultCommandTimeout)
	}

	return nil
}
