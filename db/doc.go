// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation and driver error classification.

# Schema Creation

CreateSchema initializes all required tables for the configured driver:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The DDL exists in two variants because the drivers disagree on
auto-incrementing primary keys (SERIAL vs INTEGER PRIMARY KEY); everything
else is shared SQL.

# Tables

  - users: registered participants (unique username, unique email)
  - polls: poll metadata, creator, is_active voting gate
  - poll_options: options per poll with the cached vote_count aggregate
  - votes: one row per (poll, user), UNIQUE constraint enforced

# Relationships

	users 1──* polls
	polls 1──* poll_options (ON DELETE CASCADE)
	polls 1──* votes        (ON DELETE CASCADE)
	poll_options 1──* votes (ON DELETE CASCADE)
	users 1──* votes        (no cascade; users are never deleted here)

# Contractual Constraints

Two constraints are prerequisites for vote correctness, not hints:

  - UNIQUE (poll_id, user_id) on votes: the final arbiter of
    one-vote-per-user-per-poll under concurrent requests
  - poll_options.poll_id REFERENCES polls ON DELETE CASCADE: deleting a
    poll removes its options and votes atomically

# Error Classification

Driver errors are stringly-typed, and the two drivers format them
differently, so classification lives here rather than in callers:

	db.IsUniqueViolation(err, "votes_poll_id_user_id_key", "votes.poll_id")
	db.IsTransient(err)

IsTransient identifies retryable failures (deadlock, lock timeout, lost
connection). A unique violation is never transient: retrying it cannot
succeed.
*/
package db
