// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the pollcast API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db)

# Endpoints

Health:

	GET /health

Users:

	POST /users            - Register user
	GET  /users            - List users
	GET  /users/{id}       - Get user
	GET  /users/{id}/votes - List a user's votes

Polls:

	POST   /polls        - Create poll with options
	GET    /polls        - List all polls
	GET    /polls/active - List polls open for voting
	GET    /polls/{id}   - Poll details with tally
	PUT    /polls/{id}   - Update title/description/is_active
	DELETE /polls/{id}   - Delete poll (cascades options and votes)

Voting:

	POST /polls/{id}/votes - Cast a vote (body: option_id, user_id)

Note /polls/active and /polls/{id} coexist: ServeMux prefers the literal
segment, so "active" is never parsed as a poll id.
*/
package router
