// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ledger implements the vote-casting core: deciding whether a vote is
legal and, if so, durably recording it and updating the cached tally exactly
once.

# Casting a Vote

	l := ledger.New(db)
	vote, err := l.CastVote(ctx, pollID, optionID, userID)

CastVote opens one transaction and runs an ordered validation pipeline
against data read inside that same transaction:

 1. User exists
 2. Poll exists
 3. Poll is active
 4. Option exists and belongs to the poll
 5. No existing vote for this (poll, user)

The first failing check wins, so error precedence is deterministic. On
success the vote row is inserted and the chosen option's vote_count is
incremented in the same transaction; any failure rolls the whole thing
back. There are no partial writes.

# Concurrency

Two requests racing to cast the first vote for the same (poll, user) both
pass check 5; the votes table's UNIQUE(poll_id, user_id) constraint then
lets exactly one commit. The loser's constraint violation is translated to
ErrAlreadyVoted, never surfaced as a raw driver error. Which request wins
is unspecified.

# Errors

Validation failures are sentinel values (ErrUserNotFound, ErrPollNotFound,
ErrPollInactive, ErrOptionNotInPoll, ErrAlreadyVoted) matched with
errors.Is. Store failures are returned wrapped; callers can use
db.IsTransient to decide whether a retry is safe. ErrAlreadyVoted is never
transient - retrying it cannot succeed.

# Tally Reading

	details, err := l.GetPollDetails(ctx, pollID)

returns the poll with its options in creation order and total_votes summed
from the per-option counters. The counters are the single source of truth
for totals. A poll with no options yields an empty list and a zero total.

ListVotesByUser returns a user's votes oldest-first; the UI uses it to mark
polls the user already voted on.
*/
package ledger
