// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"context"
	"database/sql"
	"fmt"

	"pollcast/models"
)

// GetPollDetails returns the poll, its options in creation order, and the
// total vote count. The total is derived by summing the per-option
// counters; no separate total is ever stored, so the two can't drift.
// Returns ErrPollNotFound when the poll does not exist.
func (l *Ledger) GetPollDetails(ctx context.Context, pollID int) (models.PollDetails, error) {
	var details models.PollDetails
	err := l.db.QueryRowContext(ctx, `
		SELECT id, title, description, created_by, is_active, created_at, updated_at
		FROM polls
		WHERE id = $1
	`, pollID).Scan(
		&details.ID, &details.Title, &details.Description, &details.CreatedBy,
		&details.IsActive, &details.CreatedAt, &details.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return models.PollDetails{}, ErrPollNotFound
	}
	if err != nil {
		return models.PollDetails{}, fmt.Errorf("query poll: %w", err)
	}

	rows, err := l.db.QueryContext(ctx, `
		SELECT id, poll_id, option_text, vote_count, created_at
		FROM poll_options
		WHERE poll_id = $1
		ORDER BY id
	`, pollID)
	if err != nil {
		return models.PollDetails{}, fmt.Errorf("query options: %w", err)
	}
	defer rows.Close()

	details.Options = []models.PollOption{}
	for rows.Next() {
		var opt models.PollOption
		if err := rows.Scan(&opt.ID, &opt.PollID, &opt.OptionText, &opt.VoteCount, &opt.CreatedAt); err != nil {
			return models.PollDetails{}, fmt.Errorf("scan option: %w", err)
		}
		details.TotalVotes += opt.VoteCount
		details.Options = append(details.Options, opt)
	}
	if err := rows.Err(); err != nil {
		return models.PollDetails{}, fmt.Errorf("iterate options: %w", err)
	}

	return details, nil
}

// ListVotesByUser returns every vote the user has cast, oldest first.
// Unknown users simply have no votes.
func (l *Ledger) ListVotesByUser(ctx context.Context, userID int) ([]models.Vote, error) {
	rows, err := l.db.QueryContext(ctx, `
		SELECT id, poll_id, option_id, user_id, created_at
		FROM votes
		WHERE user_id = $1
		ORDER BY id
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query votes: %w", err)
	}
	defer rows.Close()

	votes := []models.Vote{}
	for rows.Next() {
		var v models.Vote
		if err := rows.Scan(&v.ID, &v.PollID, &v.OptionID, &v.UserID, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan vote: %w", err)
		}
		votes = append(votes, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate votes: %w", err)
	}

	return votes, nil
}
