// Copyright (c) 2026 Aparna Ranjan.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"testing"

	"github.com/aparna-ranjan/usr-annotate/models"
	"github.com/aparna-ranjan/usr-annotate/testutil"
)

func TestFeedbackLifecycle(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	st := New(conn)
	ctx := context.Background()

	_, _, _, segmentID := testutil.CreateTestSegmentTree(t, conn)
	annotatorID := testutil.CreateTestUser(t, conn, models.RoleAnnotator)

	f, err := st.CreateSegmentFeedback(ctx, segmentID, annotatorID, models.FeedbackTypeIssue, "source text has a typo")
	if err != nil {
		t.Fatalf("CreateSegmentFeedback() error = %v", err)
	}
	if f.Status != models.FeedbackOpen {
		t.Errorf("Status = %q, want %q", f.Status, models.FeedbackOpen)
	}

	if err := st.UpdateFeedbackStatus(ctx, f.ID, models.FeedbackInProgress); err != nil {
		t.Fatalf("UpdateFeedbackStatus(in_progress) error = %v", err)
	}

	open, err := st.ListOpenFeedback(ctx)
	if err != nil {
		t.Fatalf("ListOpenFeedback() error = %v", err)
	}
	if len(open) != 1 {
		t.Errorf("ListOpenFeedback() = %d entries, want 1", len(open))
	}

	if err := st.UpdateFeedbackStatus(ctx, f.ID, models.FeedbackResolved); err != nil {
		t.Fatalf("UpdateFeedbackStatus(resolved) error = %v", err)
	}

	open, err = st.ListOpenFeedback(ctx)
	if err != nil {
		t.Fatalf("ListOpenFeedback() error = %v", err)
	}
	if len(open) != 0 {
		t.Errorf("ListOpenFeedback() = %d entries after resolution, want 0", len(open))
	}

	bySegment, err := st.ListFeedbackBySegment(ctx, segmentID)
	if err != nil {
		t.Fatalf("ListFeedbackBySegment() error = %v", err)
	}
	if len(bySegment) != 1 {
		t.Errorf("ListFeedbackBySegment() = %d entries, want 1", len(bySegment))
	}
}

func TestFeedbackTypeEnforced(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	st := New(conn)
	ctx := context.Background()

	_, _, _, segmentID := testutil.CreateTestSegmentTree(t, conn)
	annotatorID := testutil.CreateTestUser(t, conn, models.RoleAnnotator)

	if _, err := st.CreateSegmentFeedback(ctx, segmentID, annotatorID, "complaint", "not a valid type"); err == nil {
		t.Error("CreateSegmentFeedback() with invalid type succeeded, want enum violation")
	}
}
