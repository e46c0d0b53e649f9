// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"pollcast/db"
)

// SetupTestDB creates a fresh sqlite database with the full schema in a
// per-test temp directory, so tests are hermetic and parallel-safe.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "pollcast_test.db") +
		"?_pragma=foreign_keys(1)&_pragma=busy_timeout(10000)"
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// sqlite allows a single writer; one connection keeps concurrent test
	// traffic from tripping SQLITE_BUSY
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn, "sqlite"); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// CreateTestUser inserts a user and returns its id. The email is derived
// from the username, so distinct usernames stay unique on both columns.
func CreateTestUser(t *testing.T, conn *sql.DB, username string) int {
	t.Helper()

	var id int
	err := conn.QueryRow(`
		INSERT INTO users (username, email, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`, username, username+"@example.com", time.Now().UTC()).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return id
}

// CreateTestPoll inserts a poll owned by createdBy and returns its id.
func CreateTestPoll(t *testing.T, conn *sql.DB, createdBy int, active bool) int {
	t.Helper()

	now := time.Now().UTC()
	var id int
	err := conn.QueryRow(`
		INSERT INTO polls (title, description, created_by, is_active, created_at, updated_at)
		VALUES ('Test Poll', 'A test poll', $1, $2, $3, $4)
		RETURNING id
	`, createdBy, active, now, now).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test poll: %v", err)
	}

	return id
}

// AddTestOption adds an option to a poll and returns the option id.
func AddTestOption(t *testing.T, conn *sql.DB, pollID int, text string) int {
	t.Helper()

	var id int
	err := conn.QueryRow(`
		INSERT INTO poll_options (poll_id, option_text, vote_count, created_at)
		VALUES ($1, $2, 0, $3)
		RETURNING id
	`, pollID, text, time.Now().UTC()).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test option: %v", err)
	}

	return id
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
