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
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/akinanet/pppsync/pkg/logger"
	"github.com/akinanet/pppsync/pkg/mikrotik"
	"github.com/akinanet/pppsync/pkg/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type nopSession struct {
	closed int
}

func (*nopSession) Run(context.Context, string) (string, error) { return "", nil }

func (s *nopSession) Close() error {
	s.closed++
	return nil
}

type fakeTransport struct {
	session mikrotik.Session
	err     error
	opens   int
}

func (f *fakeTransport) Open(_ context.Context, _ models.RemoteTarget) (mikrotik.Session, error) {
	f.opens++

	if f.err != nil {
		return nil, f.err
	}

	return f.session, nil
}

// scriptDevice answers upserts with Created, failing only the named
// customers. Secrets never exist, so overdue customers get Skipped.
type scriptDevice struct {
	failFor map[string]error
}

func (*scriptDevice) SecretExists(context.Context, string) (bool, error) { return false, nil }

func (*scriptDevice) DisableSecret(context.Context, string) error { return nil }

func (d *scriptDevice) UpsertSecret(_ context.Context, name, _, _ string) (models.SyncAction, error) {
	if err, ok := d.failFor[name]; ok {
		return models.ActionFailed, err
	}

	return models.ActionCreated, nil
}

func (*scriptDevice) ListProfiles(context.Context) ([]string, error) { return []string{}, nil }

func testConfig() *Config {
	return &Config{
		PPPoEPassword: "pw123",
		Targets: []models.RemoteTarget{
			{Name: "core-router", Host: "10.0.0.1", Username: "admin", Password: "pw"},
		},
	}
}

func newTestService(t *testing.T, transport mikrotik.Transport, device Device) *Service {
	t.Helper()

	service, err := NewService(testConfig(), transport, nil, nil, logger.NewTestLogger())
	require.NoError(t, err)

	service.clock = fixedClock{t: testNow}

	if device != nil {
		service.newDevice = func(mikrotik.Session, logger.Logger) Device { return device }
	}

	return service
}

func planCustomer(id int64, name string) models.Customer {
	return models.Customer{
		ID:   id,
		Name: name,
		Plan: &models.Plan{Name: "10mbps", MikrotikProfile: "pppoe-10mbps"},
	}
}

func TestRunSyncPreservesOrderAndIsolatesFailures(t *testing.T) {
	session := &nopSession{}
	transport := &fakeTransport{session: session}
	device := &scriptDevice{failFor: map[string]error{"Bob": mikrotik.ErrExecution}}

	service := newTestService(t, transport, device)

	customers := []models.Customer{
		planCustomer(1, "Alice"),
		planCustomer(2, "Bob"),
		planCustomer(3, "Carol"),
	}

	outcomes, err := service.RunSync(context.Background(), testConfig().Targets[0], customers)
	require.NoError(t, err)

	// one outcome per customer, in input order
	require.Len(t, outcomes, len(customers))
	assert.Equal(t, "Alice", outcomes[0].Customer)
	assert.Equal(t, "Bob", outcomes[1].Customer)
	assert.Equal(t, "Carol", outcomes[2].Customer)

	// Bob's failure does not touch his neighbors
	assert.Equal(t, models.ActionCreated, outcomes[0].Action)
	assert.True(t, outcomes[1].Failed())
	assert.ErrorIs(t, outcomes[1].Err, mikrotik.ErrExecution)
	assert.Equal(t, models.ActionCreated, outcomes[2].Action)

	assert.Equal(t, 1, session.closed)
}

func TestRunSyncFailsFastWhenSessionOpenFails(t *testing.T) {
	transport := &fakeTransport{err: mikrotik.ErrAuth}
	service := newTestService(t, transport, nil)

	outcomes, err := service.RunSync(context.Background(), testConfig().Targets[0], []models.Customer{
		planCustomer(1, "Alice"),
	})

	assert.Nil(t, outcomes)
	assert.ErrorIs(t, err, mikrotik.ErrAuth)
	assert.Equal(t, 1, transport.opens)
}

func TestRunSyncEmptyPopulation(t *testing.T) {
	session := &nopSession{}
	service := newTestService(t, &fakeTransport{session: session}, &scriptDevice{})

	outcomes, err := service.RunSync(context.Background(), testConfig().Targets[0], nil)
	require.NoError(t, err)
	assert.Empty(t, outcomes)
	assert.Equal(t, 1, session.closed)
}

func TestRunSyncsEveryActiveTarget(t *testing.T) {
	ctrl := gomock.NewController(t)

	targets := NewMockTargetSource(ctrl)
	customers := NewMockCustomerSource(ctrl)

	targets.EXPECT().ActiveTargets(gomock.Any()).Return([]models.RemoteTarget{
		{ID: 1, Name: "north", Host: "10.0.0.1", Username: "admin", Password: "pw", IsActive: true},
		{ID: 2, Name: "south", Host: "10.0.0.2", Username: "admin", Password: "pw", IsActive: false},
	}, nil)

	customers.EXPECT().
		CustomersForTarget(gomock.Any(), int64(1)).
		Return([]models.Customer{planCustomer(1, "Alice")}, nil)

	service, err := NewService(testConfig(), &fakeTransport{session: &nopSession{}}, customers, targets, logger.NewTestLogger())
	require.NoError(t, err)

	service.clock = fixedClock{t: testNow}
	service.newDevice = func(mikrotik.Session, logger.Logger) Device { return &scriptDevice{} }

	reports, err := service.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, reports, 2)

	assert.Equal(t, "north", reports[0].Target)
	require.NoError(t, reports[0].Err)
	require.Len(t, reports[0].Outcomes, 1)
	assert.Equal(t, models.ActionCreated, reports[0].Outcomes[0].Action)

	// inactive router is reported but never contacted
	assert.Equal(t, "south", reports[1].Target)
	assert.Empty(t, reports[1].Outcomes)
	require.NoError(t, reports[1].Err)
}

func TestRunRecordsPerTargetErrors(t *testing.T) {
	ctrl := gomock.NewController(t)

	targets := NewMockTargetSource(ctrl)
	customers := NewMockCustomerSource(ctrl)

	targets.EXPECT().ActiveTargets(gomock.Any()).Return([]models.RemoteTarget{
		{ID: 1, Name: "north", Host: "10.0.0.1", Username: "admin", Password: "pw", IsActive: true},
	}, nil)

	loadErr := errors.New("database gone")
	customers.EXPECT().CustomersForTarget(gomock.Any(), int64(1)).Return(nil, loadErr)

	service, err := NewService(testConfig(), &fakeTransport{session: &nopSession{}}, customers, targets, logger.NewTestLogger())
	require.NoError(t, err)

	reports, err := service.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.ErrorIs(t, reports[0].Err, loadErr)
	assert.Empty(t, reports[0].Outcomes)
}

// Audit entries for router commands must be attributable to the run
// and router that issued them: routers sync concurrently and their
// command streams interleave in the shared log sink.
func TestRunSyncAuditEntriesCarryRunContext(t *testing.T) {
	var buf bytes.Buffer

	appLog := logger.FromZerolog(zerolog.New(&buf))

	// default device factory: the real adapter over the fake session,
	// so the command audit entries are the ones under test
	service, err := NewService(testConfig(), &fakeTransport{session: &nopSession{}}, nil, nil, appLog)
	require.NoError(t, err)

	service.clock = fixedClock{t: testNow}

	_, err = service.RunSync(context.Background(), testConfig().Targets[0], []models.Customer{
		planCustomer(1, "Alice"),
	})
	require.NoError(t, err)

	audited := 0

	for _, line := range bytes.Split(buf.Bytes(), []byte("\n")) {
		if len(line) == 0 {
			continue
		}

		var entry map[string]interface{}

		require.NoError(t, json.Unmarshal(line, &entry))

		if _, ok := entry["command"]; !ok {
			continue
		}

		audited++
		assert.NotEmpty(t, entry["run_id"], "audit entry missing run_id: %s", line)
		assert.Equal(t, "core-router", entry["target"], "audit entry missing target: %s", line)
	}

	require.NotZero(t, audited, "expected command audit entries in the log stream")
}

func TestSyncCustomerOnDemand(t *testing.T) {
	session := &nopSession{}
	service := newTestService(t, &fakeTransport{session: session}, &scriptDevice{})

	outcome, err := service.SyncCustomer(context.Background(), testConfig().Targets[0], planCustomer(1, "Alice"))
	require.NoError(t, err)
	assert.Equal(t, models.ActionCreated, outcome.Action)
	assert.Equal(t, 1, session.closed)
}

func TestStaticTargetsAreAlwaysActive(t *testing.T) {
	static := StaticTargets{
		{Name: "core-router", Host: "10.0.0.1", Username: "admin", Password: "pw"},
	}

	targets, err := static.ActiveTargets(context.Background())
	require.NoError(t, err)
	require.Len(t, targets, 1)
	assert.True(t, targets[0].IsActive)
}
