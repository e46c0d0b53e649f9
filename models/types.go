// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Domain types

type User struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type Poll struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	CreatedBy   int       `json:"created_by"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type PollOption struct {
	ID         int       `json:"id"`
	PollID     int       `json:"poll_id"`
	OptionText string    `json:"option_text"`
	VoteCount  int       `json:"vote_count"`
	CreatedAt  time.Time `json:"created_at"`
}

// Vote records that one user chose one option within one poll. Immutable
// once written; at most one exists per (poll, user).
type Vote struct {
	ID        int       `json:"id"`
	PollID    int       `json:"poll_id"`
	OptionID  int       `json:"option_id"`
	UserID    int       `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// PollDetails is the detailed poll view: the poll itself, its options in
// creation order, and the total derived from the per-option counters.
type PollDetails struct {
	Poll
	Options    []PollOption `json:"options"`
	TotalVotes int          `json:"total_votes"`
}

// Request types

type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type CreatePollRequest struct {
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	CreatedBy   int      `json:"created_by"`
	Options     []string `json:"options"`
}

// UpdatePollRequest carries a partial update; nil fields are left unchanged.
type UpdatePollRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

type CastVoteRequest struct {
	OptionID int `json:"option_id"`
	UserID   int `json:"user_id"`
}

// Error response

// ErrorResponse is the JSON error shape. Code is a stable machine-readable
// identifier so clients can special-case outcomes like "already_voted"
// without parsing the message.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}
