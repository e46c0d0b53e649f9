// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"pollcast/ledger"
	"pollcast/middleware"
	"pollcast/models"
)

type VotingHandler struct {
	ledger *ledger.Ledger
}

func NewVotingHandler(l *ledger.Ledger) *VotingHandler {
	return &VotingHandler{ledger: l}
}

// CastVote handles POST /polls/{id}/votes
// The ledger decides whether the vote is legal; this handler only parses
// the request and maps the outcome to a response.
func (h *VotingHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	pollID, err := pathID(r, "id")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.OptionID <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "option_id must be a positive integer")
		return
	}
	if req.UserID <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "user_id must be a positive integer")
		return
	}

	vote, err := h.ledger.CastVote(r.Context(), pollID, req.OptionID, req.UserID)
	if err != nil {
		ledgerError(w, err)
		return
	}

	slog.Info("vote cast",
		"vote_id", vote.ID,
		"poll_id", pollID,
		"user_id", req.UserID,
		"remote", middleware.GetClientIP(r),
	)

	middleware.JSONResponse(w, http.StatusCreated, vote)
}

// ListUserVotes handles GET /users/{id}/votes
// The UI uses this to mark polls the user has already voted on. Unknown
// users get an empty list, matching a user with no votes.
func (h *VotingHandler) ListUserVotes(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "id")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	votes, err := h.ledger.ListVotesByUser(r.Context(), userID)
	if err != nil {
		ledgerError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, votes)
}
