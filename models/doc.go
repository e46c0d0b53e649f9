// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Domain Types

  - User: registered participant (unique username and email)
  - Poll: question metadata, creator, and the is_active voting gate
  - PollOption: one selectable choice carrying the running vote_count
  - Vote: immutable record that a user chose an option within a poll
  - PollDetails: poll + options in creation order + derived total_votes

# Request Types

Types for parsing incoming JSON:

  - CreateUserRequest: username, email
  - CreatePollRequest: title, description, created_by, options (2-10)
  - UpdatePollRequest: partial update; nil fields unchanged
  - CastVoteRequest: option_id, user_id

# Error Response

ErrorResponse carries a stable code alongside the HTTP-level error text:

	{"error": "Conflict", "code": "already_voted", "message": "..."}

Clients branch on code, never on message wording.
*/
package models
