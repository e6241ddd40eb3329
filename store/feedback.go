// Copyright (c) 2026 Aparna Ranjan.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"

	"github.com/aparna-ranjan/usr-annotate/models"
)

// CreateSegmentFeedback files typed feedback (issue, suggestion, question)
// from an annotator on a segment. Status starts as open.
func (s *Store) CreateSegmentFeedback(ctx context.Context, segmentID, annotatorID int64, feedbackType, feedbackText string) (models.SegmentFeedback, error) {
	f := models.SegmentFeedback{
		SegmentID:    segmentID,
		AnnotatorID:  annotatorID,
		FeedbackType: feedbackType,
		FeedbackText: feedbackText,
	}

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO segment_feedback (segment_id, annotator_id, feedback_type, feedback_text)
		VALUES ($1, $2, $3, $4)
		RETURNING id, status, created_at, updated_at
	`, segmentID, annotatorID, feedbackType, feedbackText).Scan(&f.ID, &f.Status, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return models.SegmentFeedback{}, fmt.Errorf("failed to insert segment feedback: %w", err)
	}
	return f, nil
}

func (s *Store) ListFeedbackBySegment(ctx context.Context, segmentID int64) ([]models.SegmentFeedback, error) {
	return s.listFeedback(ctx, `WHERE segment_id = $1`, segmentID)
}

// ListOpenFeedback returns all feedback not yet resolved or closed.
func (s *Store) ListOpenFeedback(ctx context.Context) ([]models.SegmentFeedback, error) {
	return s.listFeedback(ctx, `WHERE status IN ($1, $2)`, models.FeedbackOpen, models.FeedbackInProgress)
}

// UpdateFeedbackStatus moves feedback through
// open -> in_progress -> resolved/closed.
func (s *Store) UpdateFeedbackStatus(ctx context.Context, id int64, status string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE segment_feedback SET status = $1, updated_at = NOW() WHERE id = $2
	`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update feedback status: %w", err)
	}
	return oneRow(res)
}

func (s *Store) listFeedback(ctx context.Context, where string, args ...any) ([]models.SegmentFeedback, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, segment_id, annotator_id, feedback_type, feedback_text, status, created_at, updated_at
		FROM segment_feedback `+where+` ORDER BY id`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query segment feedback: %w", err)
	}
	defer rows.Close()

	feedback := []models.SegmentFeedback{}
	for rows.Next() {
		var f models.SegmentFeedback
		if err := rows.Scan(&f.ID, &f.SegmentID, &f.AnnotatorID, &f.FeedbackType, &f.FeedbackText, &f.Status, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan segment feedback: %w", err)
		}
		feedback = append(feedback, f)
	}
	return feedback, rows.Err()
}
