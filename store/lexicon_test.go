// Copyright (c) 2026 Aparna Ranjan.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"testing"

	"github.com/aparna-ranjan/usr-annotate/models"
	"github.com/aparna-ranjan/usr-annotate/testutil"
)

func TestConceptCRUD(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	st := New(conn)
	ctx := context.Background()

	hindi := "किताब"
	c, err := st.CreateConcept(ctx, models.Concept{
		ConceptLabel: "kitAba_1",
		HindiLabel:   &hindi,
	})
	if err != nil {
		t.Fatalf("CreateConcept() error = %v", err)
	}

	got, err := st.GetConcept(ctx, c.ID)
	if err != nil {
		t.Fatalf("GetConcept() error = %v", err)
	}
	if got.ConceptLabel != "kitAba_1" {
		t.Errorf("ConceptLabel = %q", got.ConceptLabel)
	}

	english := "book"
	got.EnglishLabel = &english
	if err := st.UpdateConcept(ctx, got); err != nil {
		t.Fatalf("UpdateConcept() error = %v", err)
	}
	got, err = st.GetConcept(ctx, c.ID)
	if err != nil {
		t.Fatalf("GetConcept() after update error = %v", err)
	}
	if got.EnglishLabel == nil || *got.EnglishLabel != "book" {
		t.Errorf("EnglishLabel = %v, want %q", got.EnglishLabel, "book")
	}

	if err := st.DeleteConcept(ctx, c.ID); err != nil {
		t.Fatalf("DeleteConcept() error = %v", err)
	}
	if _, err := st.GetConcept(ctx, c.ID); err != ErrNotFound {
		t.Errorf("GetConcept() after delete error = %v, want ErrNotFound", err)
	}
	if err := st.UpdateConcept(ctx, got); err != ErrNotFound {
		t.Errorf("UpdateConcept() on deleted concept error = %v, want ErrNotFound", err)
	}
}

func TestSearchConceptsLiteralPrefix(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	st := New(conn)
	ctx := context.Background()

	for _, label := range []string{"paharZa_1", "paharZaX1", "paharZa100"} {
		if _, err := st.CreateConcept(ctx, models.Concept{ConceptLabel: label}); err != nil {
			t.Fatalf("CreateConcept(%q) error = %v", label, err)
		}
	}

	// An underscore in the prefix must not act as a single-character wildcard
	concepts, err := st.SearchConcepts(ctx, "paharZa_")
	if err != nil {
		t.Fatalf("SearchConcepts() error = %v", err)
	}
	if len(concepts) != 1 {
		t.Fatalf("SearchConcepts(\"paharZa_\") = %d concepts, want 1", len(concepts))
	}
	if concepts[0].ConceptLabel != "paharZa_1" {
		t.Errorf("ConceptLabel = %q, want %q", concepts[0].ConceptLabel, "paharZa_1")
	}

	if concepts, _ := st.SearchConcepts(ctx, "%"); len(concepts) != 0 {
		t.Errorf("SearchConcepts(\"%%\") = %d concepts, want 0", len(concepts))
	}
}

func TestConceptSubmissionApproval(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	st := New(conn)
	ctx := context.Background()

	submitterID := testutil.CreateTestUser(t, conn, models.RoleAnnotator)
	validatorID := testutil.CreateTestUser(t, conn, models.RoleReviewer)

	segLabel := "Geo_nios_3ch_0002a"
	sub, err := st.SubmitConcept(ctx, models.ConceptSubmission{
		ConceptLabel: "paharZa_1",
		HindiLabel:   "पहाड़",
		SegmentID:    &segLabel,
		SubmittedBy:  &submitterID,
	})
	if err != nil {
		t.Fatalf("SubmitConcept() error = %v", err)
	}
	if sub.ValidationStatus != models.ValidationPending {
		t.Errorf("ValidationStatus = %q, want %q", sub.ValidationStatus, models.ValidationPending)
	}

	pending, err := st.ListPendingConceptSubmissions(ctx)
	if err != nil {
		t.Fatalf("ListPendingConceptSubmissions() error = %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("pending queue = %d entries, want 1", len(pending))
	}

	if err := st.ValidateConceptSubmission(ctx, sub.ID, validatorID, true, nil); err != nil {
		t.Fatalf("ValidateConceptSubmission() error = %v", err)
	}

	// Approval promotes the entry into the canonical table
	concepts, err := st.SearchConcepts(ctx, "paharZa")
	if err != nil {
		t.Fatalf("SearchConcepts() error = %v", err)
	}
	if len(concepts) != 1 {
		t.Fatalf("SearchConcepts() = %d concepts after approval, want 1", len(concepts))
	}
	if concepts[0].HindiLabel == nil || *concepts[0].HindiLabel != "पहाड़" {
		t.Errorf("HindiLabel = %v", concepts[0].HindiLabel)
	}

	// The queue is empty and revalidation is not possible
	pending, err = st.ListPendingConceptSubmissions(ctx)
	if err != nil {
		t.Fatalf("ListPendingConceptSubmissions() error = %v", err)
	}
	if len(pending) != 0 {
		t.Errorf("pending queue = %d entries after approval, want 0", len(pending))
	}
	if err := st.ValidateConceptSubmission(ctx, sub.ID, validatorID, false, nil); err != ErrNotFound {
		t.Errorf("ValidateConceptSubmission() on settled submission error = %v, want ErrNotFound", err)
	}
}

func TestConceptSubmissionRejection(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	st := New(conn)
	ctx := context.Background()

	validatorID := testutil.CreateTestUser(t, conn, models.RoleAdmin)

	sub, err := st.SubmitConcept(ctx, models.ConceptSubmission{
		ConceptLabel: "dubious_1",
		HindiLabel:   "संदिग्ध",
	})
	if err != nil {
		t.Fatalf("SubmitConcept() error = %v", err)
	}

	reason := "duplicate of an existing concept"
	if err := st.ValidateConceptSubmission(ctx, sub.ID, validatorID, false, &reason); err != nil {
		t.Fatalf("ValidateConceptSubmission() error = %v", err)
	}

	// Rejection must not create a canonical concept
	concepts, err := st.SearchConcepts(ctx, "dubious")
	if err != nil {
		t.Fatalf("SearchConcepts() error = %v", err)
	}
	if len(concepts) != 0 {
		t.Errorf("SearchConcepts() = %d concepts after rejection, want 0", len(concepts))
	}
}

func TestTAMDictionary(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	st := New(conn)
	ctx := context.Background()

	if _, err := st.CreateTAMEntry(ctx, models.TAMEntry{
		UTam:       "gA_1",
		HindiTam:   "गा",
		EnglishTam: "will",
	}); err != nil {
		t.Fatalf("CreateTAMEntry() error = %v", err)
	}

	entries, err := st.LookupTAM(ctx, "gA_1")
	if err != nil {
		t.Fatalf("LookupTAM() error = %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("LookupTAM() = %d entries, want 1", len(entries))
	}
	if entries[0].EnglishTam != "will" {
		t.Errorf("EnglishTam = %q", entries[0].EnglishTam)
	}

	if entries, _ := st.LookupTAM(ctx, "unknown_9"); len(entries) != 0 {
		t.Errorf("LookupTAM(unknown) = %d entries, want 0", len(entries))
	}
}

func TestTAMSubmissionApproval(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	st := New(conn)
	ctx := context.Background()

	submitterID := testutil.CreateTestUser(t, conn, models.RoleAnnotator)
	validatorID := testutil.CreateTestUser(t, conn, models.RoleReviewer)

	sub, err := st.SubmitTAM(ctx, models.TAMSubmission{
		UTam:        "yA_1",
		HindiTam:    "या",
		EnglishTam:  "past",
		SubmittedBy: &submitterID,
	})
	if err != nil {
		t.Fatalf("SubmitTAM() error = %v", err)
	}

	pending, err := st.ListPendingTAMSubmissions(ctx)
	if err != nil {
		t.Fatalf("ListPendingTAMSubmissions() error = %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("pending queue = %d entries, want 1", len(pending))
	}

	if err := st.ValidateTAMSubmission(ctx, sub.ID, validatorID, true, nil); err != nil {
		t.Fatalf("ValidateTAMSubmission() error = %v", err)
	}

	entries, err := st.LookupTAM(ctx, "yA_1")
	if err != nil {
		t.Fatalf("LookupTAM() error = %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("LookupTAM() = %d entries after approval, want 1", len(entries))
	}
}
