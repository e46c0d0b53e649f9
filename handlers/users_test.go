// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"pollcast/models"
	"pollcast/testutil"
)

func TestCreateUser(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := NewUserHandler(conn)

	t.Run("creates user", func(t *testing.T) {
		req := testutil.MakeRequest("POST", "/users", map[string]string{
			"username": "alice",
			"email":    "alice@example.com",
		}, nil)
		w := httptest.NewRecorder()
		handler.CreateUser(w, req)

		testutil.AssertStatus(t, w, http.StatusCreated)

		var user models.User
		testutil.AssertJSON(t, w, &user)
		if user.ID <= 0 {
			t.Errorf("Expected generated id, got %d", user.ID)
		}
		if user.Username != "alice" || user.Email != "alice@example.com" {
			t.Errorf("User fields mismatch: %+v", user)
		}
		if user.CreatedAt.IsZero() {
			t.Error("Expected created_at to be set")
		}
	})

	t.Run("duplicate username", func(t *testing.T) {
		req := testutil.MakeRequest("POST", "/users", map[string]string{
			"username": "alice",
			"email":    "alice2@example.com",
		}, nil)
		w := httptest.NewRecorder()
		handler.CreateUser(w, req)

		testutil.AssertStatus(t, w, http.StatusConflict)
		var resp models.ErrorResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.Code != "username_taken" {
			t.Errorf("Expected code username_taken, got %q", resp.Code)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		req := testutil.MakeRequest("POST", "/users", map[string]string{
			"username": "alice_two",
			"email":    "alice@example.com",
		}, nil)
		w := httptest.NewRecorder()
		handler.CreateUser(w, req)

		testutil.AssertStatus(t, w, http.StatusConflict)
		var resp models.ErrorResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.Code != "email_taken" {
			t.Errorf("Expected code email_taken, got %q", resp.Code)
		}
	})

	t.Run("validation failures", func(t *testing.T) {
		testCases := []struct {
			name string
			body map[string]string
		}{
			{"username too short", map[string]string{"username": "ab", "email": "ab@example.com"}},
			{"username too long", map[string]string{"username": string(make([]byte, 51)), "email": "long@example.com"}},
			{"invalid email", map[string]string{"username": "charlie", "email": "not-an-email"}},
			{"missing email", map[string]string{"username": "charlie"}},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				req := testutil.MakeRequest("POST", "/users", tc.body, nil)
				w := httptest.NewRecorder()
				handler.CreateUser(w, req)
				testutil.AssertStatus(t, w, http.StatusBadRequest)
			})
		}
	})

	t.Run("invalid JSON", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/users", nil)
		w := httptest.NewRecorder()
		handler.CreateUser(w, req)
		testutil.AssertStatus(t, w, http.StatusBadRequest)
	})
}

func TestGetUser(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := NewUserHandler(conn)
	userID := testutil.CreateTestUser(t, conn, "alice")

	t.Run("existing user", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/users/1", nil, nil)
		req.SetPathValue("id", strconv.Itoa(userID))
		w := httptest.NewRecorder()
		handler.GetUser(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		var user models.User
		testutil.AssertJSON(t, w, &user)
		if user.ID != userID || user.Username != "alice" {
			t.Errorf("User mismatch: %+v", user)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/users/999999", nil, nil)
		req.SetPathValue("id", "999999")
		w := httptest.NewRecorder()
		handler.GetUser(w, req)

		testutil.AssertStatus(t, w, http.StatusNotFound)
		var resp models.ErrorResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.Code != "user_not_found" {
			t.Errorf("Expected code user_not_found, got %q", resp.Code)
		}
	})

	t.Run("invalid id", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/users/abc", nil, nil)
		req.SetPathValue("id", "abc")
		w := httptest.NewRecorder()
		handler.GetUser(w, req)
		testutil.AssertStatus(t, w, http.StatusBadRequest)
	})
}

func TestListUsers(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := NewUserHandler(conn)

	t.Run("empty list", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/users", nil, nil)
		w := httptest.NewRecorder()
		handler.ListUsers(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		var users []models.User
		testutil.AssertJSON(t, w, &users)
		if users == nil || len(users) != 0 {
			t.Errorf("Expected empty array, got %v", users)
		}
	})

	t.Run("users in id order", func(t *testing.T) {
		first := testutil.CreateTestUser(t, conn, "alice")
		second := testutil.CreateTestUser(t, conn, "bob")

		req := testutil.MakeRequest("GET", "/users", nil, nil)
		w := httptest.NewRecorder()
		handler.ListUsers(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		var users []models.User
		testutil.AssertJSON(t, w, &users)
		if len(users) != 2 {
			t.Fatalf("Expected 2 users, got %d", len(users))
		}
		if users[0].ID != first || users[1].ID != second {
			t.Errorf("Expected id order [%d %d], got [%d %d]", first, second, users[0].ID, users[1].ID)
		}
	})
}
