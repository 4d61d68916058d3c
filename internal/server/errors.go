// SPDX-License-Identifier: Apache-2.0

package server

import "errors"

var (
	errNoServersAreCreated = errors.New("no servers are created")
)
