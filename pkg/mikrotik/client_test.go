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
	"strings"
	"testing"

	"github.com/akinanet/pppsync/pkg/logger"
	"github.com/akinanet/pppsync/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSession records every command line and answers through respond.
type fakeSession struct {
	commands []string
	respond  func(command string) (string, error)
	closed   int
}

func (f *fakeSession) Run(_ context.Context, command string) (string, error) {
	f.commands = append(f.commands, command)

	if f.respond != nil {
		return f.respond(command)
	}

	return "", nil
}

func (f *fakeSession) Close() error {
	f.closed++
	return nil
}

func newTestClient(respond func(string) (string, error)) (*Client, *fakeSession) {
	session := &fakeSession{respond: respond}
	return NewClient(session, logger.NewTestLogger()), session
}

func TestSecretExists(t *testing.T) {
	printOutput := `Flags: X - disabled
 0   name="Alice" service=pppoe profile=pppoe-10mbps
`

	tests := []struct {
		name   string
		secret string
		output string
		want   bool
	}{
		{name: "present", secret: "Alice", output: printOutput, want: true},
		{name: "absent", secret: "Alice", output: "", want: false},
		{
			// substring match over free text: a known protocol
			// limitation, asserted here so it never changes silently
			name:   "substring of another secret is a false positive",
			secret: "Ali",
			output: printOutput,
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, session := newTestClient(func(string) (string, error) {
				return tt.output, nil
			})

			exists, err := client.SecretExists(context.Background(), tt.secret)
			require.NoError(t, err)
			assert.Equal(t, tt.want, exists)

			require.Len(t, session.commands, 1)
			assert.Equal(t, `/ppp secret print where name="`+tt.secret+`"`+"\n", session.commands[0])
		})
	}
}

func TestDisableSecret(t *testing.T) {
	client, session := newTestClient(nil)

	err := client.DisableSecret(context.Background(), "Bob")
	require.NoError(t, err)

	require.Len(t, session.commands, 1)
	assert.Equal(t, "/ppp secret set [find name=\"Bob\"] disabled=yes\n", session.commands[0])
}

func TestUpsertSecretCreatesWhenAbsent(t *testing.T) {
	client, session := newTestClient(func(string) (string, error) {
		return "", nil
	})

	action, err := client.UpsertSecret(context.Background(), "Alice", "pppoe-10mbps", "pw123")
	require.NoError(t, err)
	assert.Equal(t, models.ActionCreated, action)

	require.Len(t, session.commands, 2)
	assert.Equal(t, `/ppp secret print where name="Alice"`+"\n", session.commands[0])
	assert.Equal(t, `/ppp secret add name="Alice" password=pw123 service=pppoe profile=pppoe-10mbps`+"\n", session.commands[1])
}

func TestUpsertSecretEnablesWhenPresent(t *testing.T) {
	client, session := newTestClient(func(command string) (string, error) {
		if strings.HasPrefix(command, "/ppp secret print") {
			return ` 0   name="Alice" service=pppoe`, nil
		}

		return "", nil
	})

	action, err := client.UpsertSecret(context.Background(), "Alice", "fiber-50", "pw123")
	require.NoError(t, err)
	assert.Equal(t, models.ActionEnabled, action)

	require.Len(t, session.commands, 2)
	assert.Equal(t, `/ppp secret set [find name="Alice"] disabled=no profile=fiber-50`+"\n", session.commands[1])
}

// Upserting an existing, enabled secret is idempotent: both passes take
// the update branch, no add command is ever issued.
func TestUpsertSecretIdempotent(t *testing.T) {
	client, session := newTestClient(func(command string) (string, error) {
		if strings.HasPrefix(command, "/ppp secret print") {
			return ` 0   name="Alice" service=pppoe profile=fiber-50`, nil
		}

		return "", nil
	})

	for i := 0; i < 2; i++ {
		action, err := client.UpsertSecret(context.Background(), "Alice", "fiber-50", "pw123")
		require.NoError(t, err)
		assert.Equal(t, models.ActionEnabled, action)
	}

	for _, command := range session.commands {
		assert.False(t, strings.HasPrefix(command, "/ppp secret add"), "no create command expected, got %q", command)
	}
}

func TestListProfiles(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   []string
	}{
		{
			name: "extracts quoted names in order",
			output: `Flags: * - default
 0 * name="default" local-address=0.0.0.0 remote-address=0.0.0.0
 1   name="fiber-50" local-address=10.0.0.1 rate-limit="50M/50M"
`,
			want: []string{"default", "fiber-50"},
		},
		{
			name:   "no matches yields empty slice, not error",
			output: "Flags: * - default\n",
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, session := newTestClient(func(string) (string, error) {
				return tt.output, nil
			})

			profiles, err := client.ListProfiles(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, profiles)

			require.Len(t, session.commands, 1)
			assert.Equal(t, "/ppp profile print\n", session.commands[0])
		})
	}
}

func TestClientPropagatesExecutionErrors(t *testing.T) {
	client, _ := newTestClient(func(string) (string, error) {
		return "", ErrExecution
	})

	_, err := client.SecretExists(context.Background(), "Alice")
	assert.ErrorIs(t, err, ErrExecution)

	err = client.DisableSecret(context.Background(), "Alice")
	assert.ErrorIs(t, err, ErrExecution)

	action, err := client.UpsertSecret(context.Background(), "Alice", "fiber-50", "pw123")
	assert.ErrorIs(t, err, ErrExecution)
	assert.Equal(t, models.ActionFailed, action)

	_, err = client.ListProfiles(context.Background())
	assert.ErrorIs(t, err, ErrExecution)
}
