// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the pollcast API.

# Handler Types

Each handler is a struct with its dependencies injected via constructor:

  - UserHandler: registration and user lookup (*sql.DB)
  - PollHandler: poll CRUD and listing (*sql.DB + *ledger.Ledger)
  - VotingHandler: vote casting and per-user vote history (*ledger.Ledger)

	userHandler := handlers.NewUserHandler(db)
	pollHandler := handlers.NewPollHandler(db, l)
	votingHandler := handlers.NewVotingHandler(l)

# Division of Labor

Handlers own parsing, input validation, and response mapping. Vote legality
and tally consistency belong to the ledger package; handlers never touch
the votes table or vote_count directly. Plain CRUD (users, poll metadata)
talks to the database here.

# Voting Flow

	POST /users            → CreateUser (register)
	POST /polls            → CreatePoll (poll + 2-10 options, atomic)
	POST /polls/{id}/votes → CastVote   (one per user per poll)
	GET  /polls/{id}       → GetPoll    (options + live tally)

# Error Mapping

Ledger failures map to stable codes via ledgerError: user_not_found and
poll_not_found (404), option_not_in_poll (400), poll_inactive and
already_voted (409), store_unavailable (503, safe to retry). already_voted
must stay distinguishable - the UI special-cases it.
*/
package handlers
