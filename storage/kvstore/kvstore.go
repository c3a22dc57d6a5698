// Package kvstore defines the durable key-value byte store the domain
// state is persisted to, with redis, local-file and in-memory backends.
// Values are whole JSON-serialized collections under fixed keys; the
// store itself treats them as opaque bytes.
package kvstore

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("key not found")

// Collection keys. One key per collection; restoring an absent key yields
// that collection's default.
const (
	KeyStudents    = "elimusmart_students"
	KeyAssessments = "elimusmart_assessments"
	KeyPayments    = "elimusmart_payments"
	KeyCalendar    = "elimusmart_calendar"
	KeyUsers       = "elimusmart_system_users"
)

type Store interface {
	// Get returns the stored value for key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key string, value []byte) error
}
