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

// Package mikrotik talks to MikroTik routers over SSH: a serialized
// session transport and a command adapter for the /ppp secret and
// /ppp profile command families. RouterOS has no structured output
// mode over the shell; every reply is parsed as free text.
package mikrotik

import (
	"context"
	"fmt"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/akinanet/pppsync/pkg/logger"
	"github.com/akinanet/pppsync/pkg/models"
	"golang.org/x/crypto/ssh"
)

const (
	defaultDialTimeout    = 10 * time.Second
	defaultCommandTimeout = 15 * time.Second
)

// Session is one authenticated command channel to a router. Commands
// are executed strictly one at a time; the shell is not safe for
// concurrent use on a single connection. Close is idempotent.
type Session interface {
	Run(ctx context.Context, command string) (string, error)
	Close() error
}

// Transport opens authenticated sessions to router targets.
type Transport interface {
	Open(ctx context.Context, target models.RemoteTarget) (Session, error)
}

// SSHTransport opens password-authenticated SSH sessions. The dial is
// split in two phases so callers can tell a dead host (ErrConnect)
// apart from rejected credentials (ErrAuth).
type SSHTransport struct {
	DialTimeout    time.Duration
	CommandTimeout time.Duration

	// HostKeyCallback defaults to accepting any host key. Routers live
	// on the management VLAN and RouterOS regenerates host keys on
	// reset, so pinning is left to deployment configuration.
	HostKeyCallback ssh.HostKeyCallback

	logger logger.Logger
}

// NewSSHTransport builds a transport with the given per-command timeout.
// A zero timeout falls back to the default; a timeout is mandatory
// because the remote shell can hang mid-command.
func NewSSHTransport(commandTimeout time.Duration, log logger.Logger) *SSHTransport {
	if commandTimeout <= 0 {
		commandTimeout = defaultCommandTimeout
	}

	return &SSHTransport{
		DialTimeout:    defaultDialTimeout,
		CommandTimeout: commandTimeout,
		logger:         log,
	}
}

// Open validates the target, dials it, and authenticates. The returned
// session is exclusively owned by the caller and must be closed on
// every exit path.
func (t *SSHTransport) Open(ctx context.Context, target models.RemoteTarget) (Session, error) {
	if strings.TrimSpace(target.Host) == "" ||
		strings.TrimSpace(target.Username) == "" ||
		strings.TrimSpace(target.Password) == "" {
		return nil, fmt.Errorf("%w: target %q", ErrInvalidTarget, target.Name)
	}

	addr := target.Addr()

	dialer := &net.Dialer{Timeout: t.DialTimeout}

	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConnect, addr, err)
	}

	hostKeyCallback := t.HostKeyCallback
	if hostKeyCallback == nil {
		hostKeyCallback = ssh.InsecureIgnoreHostKey() //nolint:gosec // see HostKeyCallback doc
	}

	clientConfig := &ssh.ClientConfig{
		User:            target.Username,
		Auth:            []ssh.AuthMethod{ssh.Password(target.Password)},
		HostKeyCallback: hostKeyCallback,
		Timeout:         t.DialTimeout,
	}

	sshConn, chans, reqs, err := ssh.NewClientConn(conn, addr, clientConfig)
	if err != nil {
		_ = conn.Close()

		return nil, fmt.Errorf("%w: %s: %v", ErrAuth, addr, err)
	}

	t.logger.Info().
		Str("target", target.Name).
		Str("addr", addr).
		Msg("SSH session established")

	session := &sshSession{
		client:  ssh.NewClient(sshConn, chans, reqs),
		addr:    addr,
		timeout: t.CommandTimeout,
	}
	session.exec = session.execOnChannel

	return session, nil
}

type sshSession struct {
	mu      sync.Mutex
	client  *ssh.Client
	addr    string
	timeout time.Duration
	closed  bool

	// exec runs one command; execOnChannel in production, swapped in
	// tests to exercise the timeout path without a live router
	exec func(command string) ([]byte, error)
}

type execResult struct {
	output []byte
	err    error
}

// Run executes one command line and returns the raw combined output.
// Calls are serialized; each command gets its own exec channel on the
// shared connection and is bounded by the per-command timeout. On
// timeout the channel is abandoned and the command's device-side
// effect is unknown.
func (s *sshSession) Run(ctx context.Context, command string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return "", fmt.Errorf("%w: %s", errSessionClosed, s.addr)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	done := make(chan execResult, 1)

	go func() {
		output, runErr := s.exec(command)
		done <- execResult{output: output, err: runErr}
	}()

	select {
	case <-ctx.Done():
		// the cause is wrapped so callers can tell a timeout apart
		// from other execution failures with errors.Is
		return "", fmt.Errorf("%w: %s: %w", ErrExecution, s.addr, ctx.Err())
	case result := <-done:
		if result.err != nil {
			return string(result.output), fmt.Errorf("%w: %s: %v", ErrExecution, s.addr, result.err)
		}

		return string(result.output), nil
	}
}

// execOnChannel runs one command on a fresh exec channel of the shared
// connection.
func (s *sshSession) execOnChannel(command string) ([]byte, error) {
	channel, err := s.client.NewSession()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}
	defer func() { _ = channel.Close() }()

	return channel.CombinedOutput(command)
}

// Close releases the SSH connection. Safe to call more than once.
func (s *sshSession) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}

	s.closed = true

	return s.client.Close()
}
