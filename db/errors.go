// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"strings"
)

// IsUniqueViolation reports whether err is a unique-constraint violation
// that mentions any of the given constraint or column names. Both supported
// drivers surface violations as errors with well-known message shapes:
//
//	postgres: pq: duplicate key value violates unique constraint "votes_poll_id_user_id_key"
//	sqlite:   constraint failed: UNIQUE constraint failed: votes.poll_id, votes.user_id
func IsUniqueViolation(err error, names ...string) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	if !strings.Contains(msg, "duplicate key value violates unique constraint") &&
		!strings.Contains(msg, "UNIQUE constraint failed") {
		return false
	}
	for _, name := range names {
		if strings.Contains(msg, name) {
			return true
		}
	}
	return false
}

// IsTransient reports whether err looks like a temporary store failure
// (connection loss, lock timeout, deadlock) that the caller may retry with
// the same arguments. Constraint violations are never transient.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	msg := err.Error()
	for _, s := range []string{
		"deadlock detected",          // postgres 40P01
		"could not serialize access", // postgres 40001
		"connection refused",
		"connection reset",
		"database is locked", // sqlite
		"SQLITE_BUSY",
	} {
		if strings.Contains(msg, s) {
			return true
		}
	}
	return false
}
