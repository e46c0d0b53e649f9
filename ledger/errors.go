// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import "errors"

// Vote failures surface as one of these sentinel values so callers can map
// each outcome to a distinct response. Anything else returned by this
// package is a wrapped store error.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrPollNotFound    = errors.New("poll not found")
	ErrPollInactive    = errors.New("poll is not active")
	ErrOptionNotInPoll = errors.New("option does not belong to this poll")
	ErrAlreadyVoted    = errors.New("user has already voted on this poll")
)
