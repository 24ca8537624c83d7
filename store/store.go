// Package store wraps the gorm handle with one store type per entity.
// Handlers perform at most one store call per request; the store maps
// driver-level errors to the sentinels callers branch on.
package store

import "errors"

// ErrDuplicate reports a unique-constraint violation (cafe name, user
// name or email). Not-found conditions pass through as
// gorm.ErrRecordNotFound.
var ErrDuplicate = errors.New("record already exists")
