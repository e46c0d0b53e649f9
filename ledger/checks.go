// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"context"
	"database/sql"
	"fmt"
)

// voteCheck is one predicate of the vote validation pipeline. Every check
// reads through the transaction it is handed, never a prior snapshot, so
// the decision and the write that follows see the same data.
type voteCheck func(ctx context.Context, tx *sql.Tx, pollID, optionID, userID int) error

// voteChecks run in this fixed order and short-circuit on the first
// failure: existence before state before membership before duplicate.
// Reordering them changes which error wins when several apply.
var voteChecks = []voteCheck{
	checkUserExists,
	checkPollExists,
	checkPollActive,
	checkOptionInPoll,
	checkNotAlreadyVoted,
}

func runVoteChecks(ctx context.Context, tx *sql.Tx, pollID, optionID, userID int) error {
	for _, check := range voteChecks {
		if err := check(ctx, tx, pollID, optionID, userID); err != nil {
			return err
		}
	}
	return nil
}

func checkUserExists(ctx context.Context, tx *sql.Tx, _, _, userID int) error {
	var exists bool
	err := tx.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)
	`, userID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check user exists: %w", err)
	}
	if !exists {
		return ErrUserNotFound
	}
	return nil
}

func checkPollExists(ctx context.Context, tx *sql.Tx, pollID, _, _ int) error {
	var exists bool
	err := tx.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM polls WHERE id = $1)
	`, pollID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check poll exists: %w", err)
	}
	if !exists {
		return ErrPollNotFound
	}
	return nil
}

func checkPollActive(ctx context.Context, tx *sql.Tx, pollID, _, _ int) error {
	var isActive bool
	err := tx.QueryRowContext(ctx, `
		SELECT is_active FROM polls WHERE id = $1
	`, pollID).Scan(&isActive)
	if err == sql.ErrNoRows {
		// Poll deleted between checks; external mutations may interleave.
		return ErrPollNotFound
	}
	if err != nil {
		return fmt.Errorf("check poll active: %w", err)
	}
	if !isActive {
		return ErrPollInactive
	}
	return nil
}

func checkOptionInPoll(ctx context.Context, tx *sql.Tx, pollID, optionID, _ int) error {
	var exists bool
	err := tx.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM poll_options WHERE id = $1 AND poll_id = $2)
	`, optionID, pollID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check option membership: %w", err)
	}
	if !exists {
		return ErrOptionNotInPoll
	}
	return nil
}

// checkNotAlreadyVoted is an optimization for the common duplicate case;
// the votes unique constraint remains the authoritative guard under races.
func checkNotAlreadyVoted(ctx context.Context, tx *sql.Tx, pollID, _, userID int) error {
	var exists bool
	err := tx.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM votes WHERE poll_id = $1 AND user_id = $2)
	`, pollID, userID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check existing vote: %w", err)
	}
	if exists {
		return ErrAlreadyVoted
	}
	return nil
}
