// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"context"
	"errors"
	"testing"

	"pollcast/testutil"
)

func TestGetPollDetails(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	l := New(conn)
	ctx := context.Background()

	creator := testutil.CreateTestUser(t, conn, "creator")
	pollID := testutil.CreateTestPoll(t, conn, creator, true)
	opt1 := testutil.AddTestOption(t, conn, pollID, "First")
	opt2 := testutil.AddTestOption(t, conn, pollID, "Second")
	opt3 := testutil.AddTestOption(t, conn, pollID, "Third")

	// Two votes on the first option, one on the third.
	for i, opt := range []int{opt1, opt1, opt3} {
		voter := testutil.CreateTestUser(t, conn, "voter"+string(rune('a'+i)))
		if _, err := l.CastVote(ctx, pollID, opt, voter); err != nil {
			t.Fatalf("CastVote failed: %v", err)
		}
	}

	t.Run("options in creation order with tallies", func(t *testing.T) {
		details, err := l.GetPollDetails(ctx, pollID)
		if err != nil {
			t.Fatalf("GetPollDetails failed: %v", err)
		}

		if details.ID != pollID {
			t.Errorf("Expected poll id %d, got %d", pollID, details.ID)
		}
		if !details.IsActive {
			t.Error("Expected poll to be active")
		}
		if len(details.Options) != 3 {
			t.Fatalf("Expected 3 options, got %d", len(details.Options))
		}

		wantIDs := []int{opt1, opt2, opt3}
		wantCounts := []int{2, 0, 1}
		for i, opt := range details.Options {
			if opt.ID != wantIDs[i] {
				t.Errorf("Option %d: expected id %d, got %d", i, wantIDs[i], opt.ID)
			}
			if opt.VoteCount != wantCounts[i] {
				t.Errorf("Option %d: expected vote_count %d, got %d", i, wantCounts[i], opt.VoteCount)
			}
		}
		if details.TotalVotes != 3 {
			t.Errorf("Expected total 3, got %d", details.TotalVotes)
		}
	})

	t.Run("poll without options", func(t *testing.T) {
		emptyPollID := testutil.CreateTestPoll(t, conn, creator, true)
		details, err := l.GetPollDetails(ctx, emptyPollID)
		if err != nil {
			t.Fatalf("GetPollDetails failed: %v", err)
		}
		if details.Options == nil || len(details.Options) != 0 {
			t.Errorf("Expected empty options slice, got %v", details.Options)
		}
		if details.TotalVotes != 0 {
			t.Errorf("Expected total 0, got %d", details.TotalVotes)
		}
	})

	t.Run("nonexistent poll", func(t *testing.T) {
		_, err := l.GetPollDetails(ctx, 999999)
		if !errors.Is(err, ErrPollNotFound) {
			t.Fatalf("Expected ErrPollNotFound, got %v", err)
		}
	})
}

func TestListVotesByUser(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	l := New(conn)
	ctx := context.Background()

	creator := testutil.CreateTestUser(t, conn, "creator")
	voter := testutil.CreateTestUser(t, conn, "voter")

	poll1 := testutil.CreateTestPoll(t, conn, creator, true)
	opt1 := testutil.AddTestOption(t, conn, poll1, "A")
	testutil.AddTestOption(t, conn, poll1, "B")

	poll2 := testutil.CreateTestPoll(t, conn, creator, true)
	opt2 := testutil.AddTestOption(t, conn, poll2, "A")

	if _, err := l.CastVote(ctx, poll1, opt1, voter); err != nil {
		t.Fatalf("CastVote failed: %v", err)
	}
	if _, err := l.CastVote(ctx, poll2, opt2, voter); err != nil {
		t.Fatalf("CastVote failed: %v", err)
	}

	t.Run("votes ordered oldest first", func(t *testing.T) {
		votes, err := l.ListVotesByUser(ctx, voter)
		if err != nil {
			t.Fatalf("ListVotesByUser failed: %v", err)
		}
		if len(votes) != 2 {
			t.Fatalf("Expected 2 votes, got %d", len(votes))
		}
		if votes[0].PollID != poll1 || votes[0].OptionID != opt1 {
			t.Errorf("First vote mismatch: %+v", votes[0])
		}
		if votes[1].PollID != poll2 || votes[1].OptionID != opt2 {
			t.Errorf("Second vote mismatch: %+v", votes[1])
		}
		if votes[0].ID >= votes[1].ID {
			t.Errorf("Expected ascending order, got ids %d, %d", votes[0].ID, votes[1].ID)
		}
	})

	t.Run("user with no votes", func(t *testing.T) {
		votes, err := l.ListVotesByUser(ctx, creator)
		if err != nil {
			t.Fatalf("ListVotesByUser failed: %v", err)
		}
		if votes == nil || len(votes) != 0 {
			t.Errorf("Expected empty slice, got %v", votes)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		votes, err := l.ListVotesByUser(ctx, 999999)
		if err != nil {
			t.Fatalf("ListVotesByUser failed: %v", err)
		}
		if len(votes) != 0 {
			t.Errorf("Expected no votes for unknown user, got %d", len(votes))
		}
	})
}
