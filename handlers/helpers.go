// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"pollcast/db"
	"pollcast/ledger"
	"pollcast/middleware"
)

// pathID parses a positive integer path value like {id}.
func pathID(r *http.Request, name string) (int, error) {
	raw := r.PathValue(name)
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer", name)
	}
	return id, nil
}

// ledgerError maps a ledger failure to its HTTP response. Every outcome
// carries a stable code so clients can tell already_voted apart from other
// conflicts without string matching.
func ledgerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ledger.ErrUserNotFound):
		middleware.ErrorCodeResponse(w, http.StatusNotFound, "user_not_found", "User not found")
	case errors.Is(err, ledger.ErrPollNotFound):
		middleware.ErrorCodeResponse(w, http.StatusNotFound, "poll_not_found", "Poll not found")
	case errors.Is(err, ledger.ErrPollInactive):
		middleware.ErrorCodeResponse(w, http.StatusConflict, "poll_inactive", "Poll is not active")
	case errors.Is(err, ledger.ErrOptionNotInPoll):
		middleware.ErrorCodeResponse(w, http.StatusBadRequest, "option_not_in_poll", "Option does not belong to this poll")
	case errors.Is(err, ledger.ErrAlreadyVoted):
		middleware.ErrorCodeResponse(w, http.StatusConflict, "already_voted", "User has already voted on this poll")
	case db.IsTransient(err):
		slog.Warn("transient store failure", "error", err)
		middleware.ErrorCodeResponse(w, http.StatusServiceUnavailable, "store_unavailable", "Temporary database failure, retry the request")
	default:
		slog.Error("ledger operation failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
	}
}
