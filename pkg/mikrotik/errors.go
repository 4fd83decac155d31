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

import "errors"

var (
	// ErrInvalidTarget marks a target whose connection parameters are
	// incomplete. Raised before any network attempt.
	ErrInvalidTarget = errors.New("invalid router target: host, username, and password are required")

	// ErrConnect marks a TCP-level failure reaching the router.
	ErrConnect = errors.New("router unreachable")

	// ErrAuth marks an SSH handshake or credential rejection by the router.
	ErrAuth = errors.New("ssh authentication failed")

	// ErrExecution marks a command that failed after the session was
	// established, including per-command timeouts. The device-side effect
	// of a timed-out command is unknown; callers must not assume rollback.
	ErrExecution = errors.New("command execution failed")

	errSessionClosed = errors.New("session already closed")
)
