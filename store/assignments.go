// Copyright (c) 2026 Aparna Ranjan.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aparna-ranjan/usr-annotate/models"
)

// CreateAssignment routes a segment to an annotator, optionally with a
// reviewer, and records which annotation layers are assigned. The workflow
// status starts as Assigned.
func (s *Store) CreateAssignment(ctx context.Context, a models.Assignment) (models.Assignment, error) {
	a.AnnotationStatus = models.AnnotationAssigned

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO assignment (segment_id, annotator_id, reviewer_id, annotation_status,
		                        assign_lexical, assign_construction, assign_dependency, assign_discourse)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`, a.SegmentID, a.AnnotatorID, a.ReviewerID, a.AnnotationStatus,
		a.AssignLexical, a.AssignConstruction, a.AssignDependency, a.AssignDiscourse,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return models.Assignment{}, fmt.Errorf("failed to insert assignment: %w", err)
	}
	return a, nil
}

func (s *Store) GetAssignment(ctx context.Context, id int64) (models.Assignment, error) {
	var a models.Assignment
	err := s.db.QueryRowContext(ctx, assignmentSelect+`WHERE id = $1`, id).Scan(assignmentFields(&a)...)
	if err == sql.ErrNoRows {
		return models.Assignment{}, ErrNotFound
	}
	if err != nil {
		return models.Assignment{}, fmt.Errorf("failed to query assignment: %w", err)
	}
	return a, nil
}

func (s *Store) ListAssignmentsBySegment(ctx context.Context, segmentID int64) ([]models.Assignment, error) {
	return s.listAssignments(ctx, `WHERE segment_id = $1`, segmentID)
}

func (s *Store) ListAssignmentsByAnnotator(ctx context.Context, annotatorID int64) ([]models.Assignment, error) {
	return s.listAssignments(ctx, `WHERE annotator_id = $1`, annotatorID)
}

func (s *Store) ListAssignmentsByReviewer(ctx context.Context, reviewerID int64) ([]models.Assignment, error) {
	return s.listAssignments(ctx, `WHERE reviewer_id = $1`, reviewerID)
}

// UpdateAssignmentStatus moves the workflow status
// (Unassigned/Assigned/InProgress/Submitted/Reviewed).
func (s *Store) UpdateAssignmentStatus(ctx context.Context, id int64, status string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE assignment SET annotation_status = $1, updated_at = NOW() WHERE id = $2
	`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update assignment status: %w", err)
	}
	return oneRow(res)
}

// SetAssignmentReviewer attaches (or replaces) the reviewing user.
func (s *Store) SetAssignmentReviewer(ctx context.Context, id, reviewerID int64) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE assignment SET reviewer_id = $1, updated_at = NOW() WHERE id = $2
	`, reviewerID, id)
	if err != nil {
		return fmt.Errorf("failed to set reviewer: %w", err)
	}
	return oneRow(res)
}

// SetAssignmentFeedback records reviewer feedback on the assignment.
func (s *Store) SetAssignmentFeedback(ctx context.Context, id int64, feedback string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE assignment SET feedback = $1, updated_at = NOW() WHERE id = $2
	`, feedback, id)
	if err != nil {
		return fmt.Errorf("failed to set assignment feedback: %w", err)
	}
	return oneRow(res)
}

const assignmentSelect = `
	SELECT id, segment_id, annotator_id, reviewer_id, feedback, annotation_status,
	       assign_lexical, assign_construction, assign_dependency, assign_discourse,
	       created_at, updated_at
	FROM assignment
`

func assignmentFields(a *models.Assignment) []any {
	return []any{
		&a.ID, &a.SegmentID, &a.AnnotatorID, &a.ReviewerID, &a.Feedback, &a.AnnotationStatus,
		&a.AssignLexical, &a.AssignConstruction, &a.AssignDependency, &a.AssignDiscourse,
		&a.CreatedAt, &a.UpdatedAt,
	}
}

func (s *Store) listAssignments(ctx context.Context, where string, arg any) ([]models.Assignment, error) {
	rows, err := s.db.QueryContext(ctx, assignmentSelect+where+` ORDER BY id`, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments: %w", err)
	}
	defer rows.Close()

	assignments := []models.Assignment{}
	for rows.Next() {
		var a models.Assignment
		if err := rows.Scan(assignmentFields(&a)...); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}
