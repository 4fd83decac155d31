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

package mikrotik

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/akinanet/pppsync/pkg/logger"
	"github.com/akinanet/pppsync/pkg/models"
)

// profileNamePattern extracts quoted name tokens from /ppp profile print
// output, e.g. ` 0 name="default" local-address=0.0.0.0 ...`.
var profileNamePattern = regexp.MustCompile(`name="([^"]+)"`)

// Client encodes PPP secret operations as RouterOS command lines and
// decodes the free-text replies. It owns nothing beyond the session it
// wraps; one Client per open Session.
type Client struct {
	session Session
	logger  logger.Logger
}

// NewClient wraps an open session.
func NewClient(session Session, log logger.Logger) *Client {
	return &Client{session: session, logger: log}
}

// run issues one newline-terminated command and logs both the exact
// command and the raw response. The log entries are the only audit
// trail the protocol offers; they are a required side effect, not
// optional instrumentation.
func (c *Client) run(ctx context.Context, command string) (string, error) {
	output, err := c.session.Run(ctx, command+"\n")

	event := c.logger.Info()
	if err != nil {
		event = c.logger.Error().Err(err)
	}

	event.Str("command", command).Str("output", output).Msg("router command")

	return output, err
}

// SecretExists reports whether a PPP secret named name is present,
// by checking the echoed listing output for the name token.
//
// Known protocol limitation: the check is a substring match over free
// text, so a name that is a substring of another secret's name can
// yield a false positive. RouterOS offers no structured output over
// the shell to do better.
func (c *Client) SecretExists(ctx context.Context, name string) (bool, error) {
	output, err := c.run(ctx, fmt.Sprintf(`/ppp secret print where name="%s"`, name))
	if err != nil {
		return false, err
	}

	return strings.Contains(output, name), nil
}

// DisableSecret marks the named secret disabled. The protocol gives no
// confirmation signal beyond echoed text, so non-error completion is
// treated as success without verifying the mutation.
func (c *Client) DisableSecret(ctx context.Context, name string) error {
	_, err := c.run(ctx, fmt.Sprintf(`/ppp secret set [find name="%s"] disabled=yes`, name))

	return err
}

// UpsertSecret ensures an enabled secret with the given profile exists:
// an existing secret is re-enabled and re-profiled (ActionEnabled), a
// missing one is created with service type pppoe (ActionCreated). The
// action taken is returned so callers can report which branch ran.
func (c *Client) UpsertSecret(ctx context.Context, name, profile, password string) (models.SyncAction, error) {
	exists, err := c.SecretExists(ctx, name)
	if err != nil {
		return models.ActionFailed, err
	}

	if exists {
		_, err = c.run(ctx, fmt.Sprintf(`/ppp secret set [find name="%s"] disabled=no profile=%s`, name, profile))
		if err != nil {
			return models.ActionFailed, err
		}

		return models.ActionEnabled, nil
	}

	_, err = c.run(ctx, fmt.Sprintf(`/ppp secret add name="%s" password=%s service=pppoe profile=%s`, name, password, profile))
	if err != nil {
		return models.ActionFailed, err
	}

	return models.ActionCreated, nil
}

// ListProfiles returns every PPP profile name defined on the router, in
// order of appearance. Zero matches yields an empty slice, not an
// error: a router with no profiles is a valid, reportable state.
func (c *Client) ListProfiles(ctx context.Context) ([]string, error) {
	output, err := c.run(ctx, "/ppp profile print")
	if err != nil {
		return nil, err
	}

	matches := profileNamePattern.FindAllStringSubmatch(output, -1)
	profiles := make([]string, 0, len(matches))

	for _, m := range matches {
		profiles = append(profiles, m[1])
	}

	return profiles, nil
}
