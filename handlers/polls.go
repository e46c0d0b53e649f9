// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"pollcast/ledger"
	"pollcast/middleware"
	"pollcast/models"
)

type PollHandler struct {
	db     *sql.DB
	ledger *ledger.Ledger
}

func NewPollHandler(db *sql.DB, l *ledger.Ledger) *PollHandler {
	return &PollHandler{db: db, ledger: l}
}

// CreatePoll handles POST /polls
// Creates the poll and all of its options in one transaction.
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if len(req.Title) < 1 || len(req.Title) > 200 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "title must be 1-200 characters")
		return
	}
	if req.CreatedBy <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "created_by must be a positive integer")
		return
	}
	if len(req.Options) < 2 || len(req.Options) > 10 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "polls must have 2-10 options")
		return
	}
	for _, text := range req.Options {
		if text == "" {
			middleware.ErrorResponse(w, http.StatusBadRequest, "option text cannot be empty")
			return
		}
	}

	var creatorExists bool
	err := h.db.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)
	`, req.CreatedBy).Scan(&creatorExists)
	if err != nil {
		slog.Error("failed to query creator", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !creatorExists {
		middleware.ErrorCodeResponse(w, http.StatusNotFound, "user_not_found", "User not found")
		return
	}

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	details := models.PollDetails{
		Poll: models.Poll{
			Title:       req.Title,
			Description: req.Description,
			CreatedBy:   req.CreatedBy,
			IsActive:    true,
		},
		Options: []models.PollOption{},
	}
	err = tx.QueryRow(`
		INSERT INTO polls (title, description, created_by, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, req.Title, req.Description, req.CreatedBy, true, now, now).
		Scan(&details.ID, &details.CreatedAt, &details.UpdatedAt)
	if err != nil {
		slog.Error("failed to insert poll", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create poll")
		return
	}

	for _, text := range req.Options {
		opt := models.PollOption{
			PollID:     details.ID,
			OptionText: text,
		}
		err = tx.QueryRow(`
			INSERT INTO poll_options (poll_id, option_text, vote_count, created_at)
			VALUES ($1, $2, 0, $3)
			RETURNING id, created_at
		`, details.ID, text, now).Scan(&opt.ID, &opt.CreatedAt)
		if err != nil {
			slog.Error("failed to insert option", "error", err, "poll_id", details.ID)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create poll")
			return
		}
		details.Options = append(details.Options, opt)
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit poll", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create poll")
		return
	}

	slog.Info("poll created", "poll_id", details.ID, "created_by", req.CreatedBy, "options", len(details.Options))

	middleware.JSONResponse(w, http.StatusCreated, details)
}

// ListPolls handles GET /polls
func (h *PollHandler) ListPolls(w http.ResponseWriter, r *http.Request) {
	h.listPolls(w, false)
}

// ListActivePolls handles GET /polls/active
func (h *PollHandler) ListActivePolls(w http.ResponseWriter, r *http.Request) {
	h.listPolls(w, true)
}

func (h *PollHandler) listPolls(w http.ResponseWriter, activeOnly bool) {
	query := `
		SELECT id, title, description, created_by, is_active, created_at, updated_at
		FROM polls
		ORDER BY id
	`
	if activeOnly {
		query = `
			SELECT id, title, description, created_by, is_active, created_at, updated_at
			FROM polls
			WHERE is_active
			ORDER BY id
		`
	}

	rows, err := h.db.Query(query)
	if err != nil {
		slog.Error("failed to query polls", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	polls := []models.Poll{}
	for rows.Next() {
		var p models.Poll
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.CreatedBy, &p.IsActive, &p.CreatedAt, &p.UpdatedAt); err != nil {
			slog.Error("failed to scan poll", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		polls = append(polls, p)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to iterate polls", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, polls)
}

// GetPoll handles GET /polls/{id}
// Returns the poll with options and the tally derived from vote counters.
func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	pollID, err := pathID(r, "id")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	details, err := h.ledger.GetPollDetails(r.Context(), pollID)
	if err != nil {
		ledgerError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, details)
}

// UpdatePoll handles PUT /polls/{id}
// Partial update: absent fields are left unchanged. Toggling is_active is
// how voting opens and closes; vote counts are untouched either way.
func (h *PollHandler) UpdatePoll(w http.ResponseWriter, r *http.Request) {
	pollID, err := pathID(r, "id")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	var req models.UpdatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Title != nil && (len(*req.Title) < 1 || len(*req.Title) > 200) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "title must be 1-200 characters")
		return
	}

	set := []string{"updated_at = $1"}
	args := []interface{}{time.Now().UTC()}
	n := 2
	if req.Title != nil {
		set = append(set, fmt.Sprintf("title = $%d", n))
		args = append(args, *req.Title)
		n++
	}
	if req.Description != nil {
		set = append(set, fmt.Sprintf("description = $%d", n))
		args = append(args, *req.Description)
		n++
	}
	if req.IsActive != nil {
		set = append(set, fmt.Sprintf("is_active = $%d", n))
		args = append(args, *req.IsActive)
		n++
	}
	args = append(args, pollID)

	query := "UPDATE polls SET " + strings.Join(set, ", ") + fmt.Sprintf(" WHERE id = $%d", n)
	res, err := h.db.Exec(query, args...)
	if err != nil {
		slog.Error("failed to update poll", "error", err, "poll_id", pollID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update poll")
		return
	}
	affected, err := res.RowsAffected()
	if err != nil {
		slog.Error("failed to update poll", "error", err, "poll_id", pollID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update poll")
		return
	}
	if affected == 0 {
		middleware.ErrorCodeResponse(w, http.StatusNotFound, "poll_not_found", "Poll not found")
		return
	}

	var poll models.Poll
	err = h.db.QueryRow(`
		SELECT id, title, description, created_by, is_active, created_at, updated_at
		FROM polls
		WHERE id = $1
	`, pollID).Scan(&poll.ID, &poll.Title, &poll.Description, &poll.CreatedBy, &poll.IsActive, &poll.CreatedAt, &poll.UpdatedAt)
	if err != nil {
		slog.Error("failed to query updated poll", "error", err, "poll_id", pollID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("poll updated", "poll_id", pollID, "is_active", poll.IsActive)

	middleware.JSONResponse(w, http.StatusOK, poll)
}

// DeletePoll handles DELETE /polls/{id}
// Options and votes go with the poll via ON DELETE CASCADE.
func (h *PollHandler) DeletePoll(w http.ResponseWriter, r *http.Request) {
	pollID, err := pathID(r, "id")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.db.Exec(`DELETE FROM polls WHERE id = $1`, pollID)
	if err != nil {
		slog.Error("failed to delete poll", "error", err, "poll_id", pollID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete poll")
		return
	}
	affected, err := res.RowsAffected()
	if err != nil {
		slog.Error("failed to delete poll", "error", err, "poll_id", pollID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete poll")
		return
	}
	if affected == 0 {
		middleware.ErrorCodeResponse(w, http.StatusNotFound, "poll_not_found", "Poll not found")
		return
	}

	slog.Info("poll deleted", "poll_id", pollID)

	w.WriteHeader(http.StatusNoContent)
}
