// SPDX-License-Identifier: Apache-2.0

package adapter

import "errors"

var (
	// ErrUnauthorized is returned when the server rejects the request with
	// 401, typically because the admin token is missing, stale, or invalid.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrNotFound is returned when the server reports 404 for the targeted
	// account, device, or beacon.
	ErrNotFound = errors.New("not found")
)
