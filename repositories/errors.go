// Package repositories provides GORM-backed persistence gateways for the
// booking domain. Each gateway is exposed as an interface so services can be
// constructed against fakes in tests.
package repositories

import "errors"

// ErrNotFound is returned by lookups for an unknown identifier or natural
// key. Handlers translate it into an HTTP 404 response.
var ErrNotFound = errors.New("record not found")
