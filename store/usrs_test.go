// Copyright (c) 2026 Aparna Ranjan.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"testing"

	"github.com/aparna-ranjan/usr-annotate/models"
	"github.com/aparna-ranjan/usr-annotate/testutil"
)

func TestUSRLifecycle(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	st := New(conn)
	ctx := context.Background()

	_, _, _, segmentID := testutil.CreateTestSegmentTree(t, conn)
	userID := testutil.CreateTestUser(t, conn, models.RoleAnnotator)

	u, err := st.CreateUSR(ctx, segmentID, "hindi", nil, &userID)
	if err != nil {
		t.Fatalf("CreateUSR() error = %v", err)
	}
	if u.Status != models.USRStatusPending {
		t.Errorf("Status = %q, want %q", u.Status, models.USRStatusPending)
	}

	if err := st.UpdateUSRStatus(ctx, u.ID, models.USRStatusCompleted); err != nil {
		t.Fatalf("UpdateUSRStatus(Completed) error = %v", err)
	}
	if err := st.UpdateUSRStatus(ctx, u.ID, models.USRStatusReviewed); err != nil {
		t.Fatalf("UpdateUSRStatus(Reviewed) error = %v", err)
	}

	got, err := st.GetUSR(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetUSR() error = %v", err)
	}
	if got.USR.Status != models.USRStatusReviewed {
		t.Errorf("Status = %q, want %q", got.USR.Status, models.USRStatusReviewed)
	}
	if got.USR.CreatedBy == nil || *got.USR.CreatedBy != userID {
		t.Errorf("CreatedBy = %v, want %d", got.USR.CreatedBy, userID)
	}
}

func TestUpdateUSRStatusRejectsInvalid(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	st := New(conn)
	ctx := context.Background()

	_, _, _, segmentID := testutil.CreateTestSegmentTree(t, conn)
	u, err := st.CreateUSR(ctx, segmentID, "hindi", nil, nil)
	if err != nil {
		t.Fatalf("CreateUSR() error = %v", err)
	}

	// usr_status is a native enum; the database rejects anything else
	if err := st.UpdateUSRStatus(ctx, u.ID, "Finalized"); err == nil {
		t.Error("UpdateUSRStatus() with invalid status succeeded, want enum violation")
	}
}

func TestReplaceInfoFragments(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	st := New(conn)
	ctx := context.Background()

	_, _, _, segmentID := testutil.CreateTestSegmentTree(t, conn)
	u, err := st.CreateUSR(ctx, segmentID, "hindi", nil, nil)
	if err != nil {
		t.Fatalf("CreateUSR() error = %v", err)
	}

	cat := "per/male"
	if err := st.ReplaceLexicalInfo(ctx, u.ID, []models.LexicalInfo{
		{Concept: "rAma_1", Index: 1, SemanticCategory: &cat},
		{Concept: "jA_1-paRa_1", Index: 2},
	}); err != nil {
		t.Fatalf("ReplaceLexicalInfo() error = %v", err)
	}

	head := "2"
	if err := st.ReplaceDependencyInfo(ctx, u.ID, []models.DependencyInfo{
		{Concept: "rAma_1", Index: 1, HeadIndex: &head, Relation: "k1"},
		{Concept: "jA_1-paRa_1", Index: 2, Relation: "main"},
	}); err != nil {
		t.Fatalf("ReplaceDependencyInfo() error = %v", err)
	}

	if err := st.ReplaceSentenceTypeInfo(ctx, u.ID, []models.SentenceTypeInfo{
		{SentenceType: "affirmative"},
	}); err != nil {
		t.Fatalf("ReplaceSentenceTypeInfo() error = %v", err)
	}

	got, err := st.GetUSR(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetUSR() error = %v", err)
	}
	if len(got.LexicalInfo) != 2 {
		t.Errorf("lexical fragments = %d, want 2", len(got.LexicalInfo))
	}
	if got.LexicalInfo[0].SemanticCategory == nil || *got.LexicalInfo[0].SemanticCategory != "per/male" {
		t.Errorf("SemanticCategory = %v", got.LexicalInfo[0].SemanticCategory)
	}
	if len(got.DependencyInfo) != 2 {
		t.Errorf("dependency fragments = %d, want 2", len(got.DependencyInfo))
	}
	if len(got.SentenceTypeInfo) != 1 {
		t.Errorf("sentence type fragments = %d, want 1", len(got.SentenceTypeInfo))
	}

	// Replacement swaps the whole set, not appends
	if err := st.ReplaceLexicalInfo(ctx, u.ID, []models.LexicalInfo{
		{Concept: "rAma_1", Index: 1},
	}); err != nil {
		t.Fatalf("ReplaceLexicalInfo() second call error = %v", err)
	}
	got, err = st.GetUSR(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetUSR() error = %v", err)
	}
	if len(got.LexicalInfo) != 1 {
		t.Errorf("lexical fragments after replace = %d, want 1", len(got.LexicalInfo))
	}
}

func TestReplaceInfoRollsBackOnBadRow(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	st := New(conn)
	ctx := context.Background()

	_, _, _, segmentID := testutil.CreateTestSegmentTree(t, conn)
	u, err := st.CreateUSR(ctx, segmentID, "hindi", nil, nil)
	if err != nil {
		t.Fatalf("CreateUSR() error = %v", err)
	}

	if err := st.ReplaceDependencyInfo(ctx, u.ID, []models.DependencyInfo{
		{Concept: "rAma_1", Index: 1, Relation: "k1"},
	}); err != nil {
		t.Fatalf("ReplaceDependencyInfo() error = %v", err)
	}

	// Relation is NOT NULL; lib/pq sends empty string, so force failure
	// with an over-length head_index instead (varchar(20)).
	longHead := "123456789012345678901234567890"
	err = st.ReplaceDependencyInfo(ctx, u.ID, []models.DependencyInfo{
		{Concept: "ok_1", Index: 1, Relation: "k1"},
		{Concept: "bad_1", Index: 2, HeadIndex: &longHead, Relation: "k2"},
	})
	if err == nil {
		t.Fatal("ReplaceDependencyInfo() with over-length head_index succeeded")
	}

	// The failed replacement must not have destroyed the previous set
	got, err := st.GetUSR(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetUSR() error = %v", err)
	}
	if len(got.DependencyInfo) != 1 || got.DependencyInfo[0].Concept != "rAma_1" {
		t.Errorf("dependency fragments after rollback = %+v, want original single row", got.DependencyInfo)
	}
}

func TestGetUSRNotFound(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	st := New(conn)

	if _, err := st.GetUSR(context.Background(), 99999); err != ErrNotFound {
		t.Errorf("GetUSR() error = %v, want ErrNotFound", err)
	}
}
