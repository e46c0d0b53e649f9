// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the pollcast API server.

pollcast is a poll service: registered users create polls with 2-10
options, every user casts at most one vote per poll, and tallies update
live with the per-option counters kept exactly in sync with the vote rows.

# Starting the Server

The server reads configuration from a .env file, environment variables, or
CLI flags:

	DATABASE_URL=pollcast.db go run .

Or with flags:

	go run . -p 3000 -t postgres -d "postgres://..."

# Configuration

  - DATABASE_URL (-d): connection string, or file path for sqlite (required)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - PORT (-p): server port (default: 3000)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - ledger: the vote-casting core - atomic validation, vote insert, and
    counter increment; tally reads
  - handlers: HTTP request handlers (users, polls, voting)
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: request/response and domain types
  - db: schema creation and driver error classification
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
