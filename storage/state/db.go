// Package state holds the whole school's entity collections in memory,
// implements every core Repository over them behind one lock, and mirrors
// them to a kvstore.Store: restored at open, re-serialized in full after
// every successful mutation.
package state

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/officialmikal/cbc-edutrac-automation/core"
	"github.com/officialmikal/cbc-edutrac-automation/core/assessment"
	"github.com/officialmikal/cbc-edutrac-automation/core/calendar"
	"github.com/officialmikal/cbc-edutrac-automation/core/finance"
	"github.com/officialmikal/cbc-edutrac-automation/core/staff"
	"github.com/officialmikal/cbc-edutrac-automation/core/student"
	"github.com/officialmikal/cbc-edutrac-automation/storage/kvstore"
)

var nowFunc = time.Now // mockable

type DB struct {
	mutex  sync.RWMutex
	store  kvstore.Store
	logger core.Logger

	students    []student.Student
	assessments []assessment.Assessment
	payments    []finance.Payment
	calendar    []calendar.TermCalendar
	users       []staff.User
}

// Open restores all collections from the store. A missing key yields that
// collection's default; an unparsable blob is logged and replaced by the
// default rather than failing the open.
func Open(ctx context.Context, store kvstore.Store, logger core.Logger) (*DB, error) {
	db := &DB{store: store, logger: logger}

	if err := restore(ctx, db, kvstore.KeyStudents, &db.students, nil); err != nil {
		return nil, err
	}
	if err := restore(ctx, db, kvstore.KeyAssessments, &db.assessments, nil); err != nil {
		return nil, err
	}
	if err := restore(ctx, db, kvstore.KeyPayments, &db.payments, nil); err != nil {
		return nil, err
	}
	if err := restore(ctx, db, kvstore.KeyCalendar, &db.calendar, calendar.Defaults); err != nil {
		return nil, err
	}
	if err := restore(ctx, db, kvstore.KeyUsers, &db.users, staff.Defaults); err != nil {
		return nil, err
	}
	return db, nil
}

func restore[T any](ctx context.Context, db *DB, key string, dst *[]T, defaults func() []T) error {
	fallback := func() {
		if defaults != nil {
			*dst = defaults()
		} else {
			*dst = make([]T, 0)
		}
	}

	blob, err := db.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			fallback()
			return nil
		}
		return errors.Wrapf(err, "restoring %q", key)
	}
	if err = json.Unmarshal(blob, dst); err != nil {
		db.logger.Warn(fmt.Sprintf("discarding unparsable %q blob: %v", key, err), err)
		fallback()
	}
	return nil
}

// snapshot re-serializes every collection to the store. Must be called with
// the write lock held so no mutation can interleave between the key writes.
// Failures are logged, not propagated: the in-memory mutation has already
// been applied and the store is only eventually consistent with it.
func (db *DB) snapshot() {
	ctx := context.Background()
	persist(ctx, db, kvstore.KeyStudents, db.students)
	persist(ctx, db, kvstore.KeyAssessments, db.assessments)
	persist(ctx, db, kvstore.KeyPayments, db.payments)
	persist(ctx, db, kvstore.KeyCalendar, db.calendar)
	persist(ctx, db, kvstore.KeyUsers, db.users)
}

func persist[T any](ctx context.Context, db *DB, key string, collection []T) {
	blob, err := json.Marshal(collection)
	if err != nil {
		db.logger.Error(fmt.Sprintf("marshaling %q: %v", key, err), err)
		return
	}
	if err = db.store.Set(ctx, key, blob); err != nil {
		db.logger.Error(fmt.Sprintf("persisting %q: %v", key, err), err)
	}
}
