// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"pollcast/db"
	"pollcast/models"
)

// voteUniqueNames identify the votes (poll_id, user_id) constraint in both
// drivers' violation messages.
var voteUniqueNames = []string{"votes_poll_id_user_id_key", "votes.poll_id"}

// Ledger owns atomic, constraint-enforced vote recording and the derived
// tally views. It is safe for concurrent use; correctness under races is
// delegated to the store's transactions and unique constraints.
type Ledger struct {
	db *sql.DB
}

func New(db *sql.DB) *Ledger {
	return &Ledger{db: db}
}

// CastVote records that userID chose optionID in pollID. Validation, the
// vote insert, and the option counter increment all happen in a single
// transaction: either one vote row exists and exactly one counter moved by
// one, or nothing changed.
//
// Casting twice for the same poll fails with ErrAlreadyVoted regardless of
// the option chosen; that is a business rule, not an accident. When two
// requests race for the first vote, the unique constraint decides the
// winner and the loser gets ErrAlreadyVoted even if it passed the
// in-transaction duplicate check.
func (l *Ledger) CastVote(ctx context.Context, pollID, optionID, userID int) (models.Vote, error) {
	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Vote{}, fmt.Errorf("begin vote transaction: %w", err)
	}
	defer tx.Rollback()

	if err := runVoteChecks(ctx, tx, pollID, optionID, userID); err != nil {
		return models.Vote{}, err
	}

	vote := models.Vote{
		PollID:   pollID,
		OptionID: optionID,
		UserID:   userID,
	}
	err = tx.QueryRowContext(ctx, `
		INSERT INTO votes (poll_id, option_id, user_id, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, pollID, optionID, userID, time.Now().UTC()).Scan(&vote.ID, &vote.CreatedAt)
	if err != nil {
		if db.IsUniqueViolation(err, voteUniqueNames...) {
			return models.Vote{}, ErrAlreadyVoted
		}
		return models.Vote{}, fmt.Errorf("insert vote: %w", err)
	}

	// The counter moves in the same transaction as the vote row, never on
	// its own. RowsAffected guards against the option being deleted by an
	// interleaved poll mutation after the membership check.
	res, err := tx.ExecContext(ctx, `
		UPDATE poll_options SET vote_count = vote_count + 1 WHERE id = $1
	`, optionID)
	if err != nil {
		return models.Vote{}, fmt.Errorf("increment vote count: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return models.Vote{}, fmt.Errorf("increment vote count: %w", err)
	}
	if n != 1 {
		return models.Vote{}, ErrOptionNotInPoll
	}

	if err := tx.Commit(); err != nil {
		// Under some isolation setups the constraint violation only
		// surfaces at commit; it still means a concurrent vote won.
		if db.IsUniqueViolation(err, voteUniqueNames...) {
			return models.Vote{}, ErrAlreadyVoted
		}
		return models.Vote{}, fmt.Errorf("commit vote: %w", err)
	}

	slog.Info("vote recorded",
		"vote_id", vote.ID,
		"poll_id", pollID,
		"option_id", optionID,
		"user_id", userID,
	)

	return vote, nil
}
