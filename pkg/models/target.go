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

import (
	"net"
	"strconv"
)

const defaultSSHPort = 22

// RemoteTarget describes one MikroTik router reachable over SSH. The
// engine receives targets by value per session; credential storage is
// owned by the settings layer.
type RemoteTarget struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Host     string `json:"host"`
	Username string `json:"username"`
	Password string `json:"password"`
	Port     int    `json:"port"`
	IsActive bool   `json:"is_active"`
}

// Addr returns the host:port dial address, defaulting the port to 22.
func (t *RemoteTarget) Addr() string {
	port := t.Port
	if port == 0 {
		port = defaultSSHPort
	}

	return net.JoinHostPort(t.Host, strconv.Itoa(port))
}
