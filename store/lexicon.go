// Copyright (c) 2026 Aparna Ranjan.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/aparna-ranjan/usr-annotate/models"
)

// Concept labels routinely contain underscores ("kitAba_1"), which LIKE
// treats as wildcards unless escaped.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// CreateConcept inserts a canonical vocabulary entry directly, bypassing the
// submission workflow (admin import path).
func (s *Store) CreateConcept(ctx context.Context, c models.Concept) (models.Concept, error) {
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO concept (concept_label, hindi_label, sanskrit_label, english_label, mrsc)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, c.ConceptLabel, c.HindiLabel, c.SanskritLabel, c.EnglishLabel, c.MRSC).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return models.Concept{}, fmt.Errorf("failed to insert concept: %w", err)
	}
	return c, nil
}

// SearchConcepts returns canonical concepts whose label starts with the
// given prefix, using the concept_label index. The prefix is matched
// literally.
func (s *Store) SearchConcepts(ctx context.Context, labelPrefix string) ([]models.Concept, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, concept_label, hindi_label, sanskrit_label, english_label, mrsc, created_at, updated_at
		FROM concept
		WHERE concept_label LIKE $1 ESCAPE '\'
		ORDER BY concept_label
	`, likeEscaper.Replace(labelPrefix)+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to query concepts: %w", err)
	}
	defer rows.Close()

	concepts := []models.Concept{}
	for rows.Next() {
		var c models.Concept
		if err := rows.Scan(&c.ID, &c.ConceptLabel, &c.HindiLabel, &c.SanskritLabel, &c.EnglishLabel, &c.MRSC, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan concept: %w", err)
		}
		concepts = append(concepts, c)
	}
	return concepts, rows.Err()
}

func (s *Store) GetConcept(ctx context.Context, id int64) (models.Concept, error) {
	var c models.Concept
	err := s.db.QueryRowContext(ctx, `
		SELECT id, concept_label, hindi_label, sanskrit_label, english_label, mrsc, created_at, updated_at
		FROM concept
		WHERE id = $1
	`, id).Scan(&c.ID, &c.ConceptLabel, &c.HindiLabel, &c.SanskritLabel, &c.EnglishLabel, &c.MRSC, &c.CreatedAt, &c.UpdatedAt)
	if err == sql.ErrNoRows {
		return models.Concept{}, ErrNotFound
	}
	if err != nil {
		return models.Concept{}, fmt.Errorf("failed to query concept: %w", err)
	}
	return c, nil
}

// UpdateConcept rewrites every label column of the concept identified by c.ID.
func (s *Store) UpdateConcept(ctx context.Context, c models.Concept) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE concept
		SET concept_label = $1, hindi_label = $2, sanskrit_label = $3,
		    english_label = $4, mrsc = $5, updated_at = NOW()
		WHERE id = $6
	`, c.ConceptLabel, c.HindiLabel, c.SanskritLabel, c.EnglishLabel, c.MRSC, c.ID)
	if err != nil {
		return fmt.Errorf("failed to update concept: %w", err)
	}
	return oneRow(res)
}

func (s *Store) DeleteConcept(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM concept WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete concept: %w", err)
	}
	return oneRow(res)
}

// SubmitConcept files a concept proposal in pending status, capturing the
// segment context the submitter was working on.
func (s *Store) SubmitConcept(ctx context.Context, sub models.ConceptSubmission) (models.ConceptSubmission, error) {
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO concept_submission (concept_label, hindi_label, sanskrit_label, english_label, mrsc,
		                                segment_id, original_text, wx_text, english_text, concept_index,
		                                submitted_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, validation_status, created_at, updated_at
	`, sub.ConceptLabel, sub.HindiLabel, sub.SanskritLabel, sub.EnglishLabel, sub.MRSC,
		sub.SegmentID, sub.OriginalText, sub.WXText, sub.EnglishText, sub.ConceptIndex,
		sub.SubmittedBy,
	).Scan(&sub.ID, &sub.ValidationStatus, &sub.CreatedAt, &sub.UpdatedAt)
	if err != nil {
		return models.ConceptSubmission{}, fmt.Errorf("failed to insert concept submission: %w", err)
	}
	return sub, nil
}

// ListPendingConceptSubmissions returns the validation queue, oldest first.
func (s *Store) ListPendingConceptSubmissions(ctx context.Context) ([]models.ConceptSubmission, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, concept_label, hindi_label, sanskrit_label, english_label, mrsc,
		       segment_id, original_text, wx_text, english_text, concept_index,
		       validation_status, submitted_by, validated_by, feedback, created_at, updated_at
		FROM concept_submission
		WHERE validation_status = $1
		ORDER BY id
	`, models.ValidationPending)
	if err != nil {
		return nil, fmt.Errorf("failed to query concept submissions: %w", err)
	}
	defer rows.Close()

	subs := []models.ConceptSubmission{}
	for rows.Next() {
		var sub models.ConceptSubmission
		if err := rows.Scan(
			&sub.ID, &sub.ConceptLabel, &sub.HindiLabel, &sub.SanskritLabel, &sub.EnglishLabel, &sub.MRSC,
			&sub.SegmentID, &sub.OriginalText, &sub.WXText, &sub.EnglishText, &sub.ConceptIndex,
			&sub.ValidationStatus, &sub.SubmittedBy, &sub.ValidatedBy, &sub.Feedback, &sub.CreatedAt, &sub.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan concept submission: %w", err)
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

// ValidateConceptSubmission approves or rejects a pending submission.
// Approval promotes the entry into the canonical concept table in the same
// transaction. Returns ErrNotFound if the submission is absent or already
// validated.
func (s *Store) ValidateConceptSubmission(ctx context.Context, id, validatorID int64, approve bool, feedback *string) error {
	status := models.ValidationRejected
	if approve {
		status = models.ValidationApproved
	}

	return s.inTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			UPDATE concept_submission
			SET validation_status = $1, validated_by = $2, feedback = $3, updated_at = NOW()
			WHERE id = $4 AND validation_status = $5
		`, status, validatorID, feedback, id, models.ValidationPending)
		if err != nil {
			return fmt.Errorf("failed to validate concept submission: %w", err)
		}
		if err := oneRow(res); err != nil {
			return err
		}

		if !approve {
			return nil
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO concept (concept_label, hindi_label, sanskrit_label, english_label, mrsc)
			SELECT concept_label, hindi_label, sanskrit_label, english_label, mrsc
			FROM concept_submission
			WHERE id = $1
		`, id)
		if err != nil {
			return fmt.Errorf("failed to promote concept submission: %w", err)
		}
		return nil
	})
}

// CreateTAMEntry inserts a canonical TAM dictionary row (admin import path).
func (s *Store) CreateTAMEntry(ctx context.Context, e models.TAMEntry) (models.TAMEntry, error) {
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO tam_dictionary (u_tam, hindi_tam, sanskrit_tam, english_tam)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, e.UTam, e.HindiTam, e.SanskritTam, e.EnglishTam).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return models.TAMEntry{}, fmt.Errorf("failed to insert tam entry: %w", err)
	}
	return e, nil
}

// LookupTAM returns dictionary entries for a universal TAM label.
func (s *Store) LookupTAM(ctx context.Context, uTam string) ([]models.TAMEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, u_tam, hindi_tam, sanskrit_tam, english_tam, created_at, updated_at
		FROM tam_dictionary
		WHERE u_tam = $1
		ORDER BY id
	`, uTam)
	if err != nil {
		return nil, fmt.Errorf("failed to query tam dictionary: %w", err)
	}
	defer rows.Close()

	entries := []models.TAMEntry{}
	for rows.Next() {
		var e models.TAMEntry
		if err := rows.Scan(&e.ID, &e.UTam, &e.HindiTam, &e.SanskritTam, &e.EnglishTam, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan tam entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// SubmitTAM files a TAM proposal in pending status.
func (s *Store) SubmitTAM(ctx context.Context, sub models.TAMSubmission) (models.TAMSubmission, error) {
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO tam_submission (u_tam, hindi_tam, sanskrit_tam, english_tam,
		                            segment_id, original_text, wx_text, english_text,
		                            submitted_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, validation_status, created_at, updated_at
	`, sub.UTam, sub.HindiTam, sub.SanskritTam, sub.EnglishTam,
		sub.SegmentID, sub.OriginalText, sub.WXText, sub.EnglishText,
		sub.SubmittedBy,
	).Scan(&sub.ID, &sub.ValidationStatus, &sub.CreatedAt, &sub.UpdatedAt)
	if err != nil {
		return models.TAMSubmission{}, fmt.Errorf("failed to insert tam submission: %w", err)
	}
	return sub, nil
}

// ListPendingTAMSubmissions returns the TAM validation queue, oldest first.
func (s *Store) ListPendingTAMSubmissions(ctx context.Context) ([]models.TAMSubmission, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, u_tam, hindi_tam, sanskrit_tam, english_tam,
		       segment_id, original_text, wx_text, english_text,
		       validation_status, submitted_by, validated_by, feedback, created_at, updated_at
		FROM tam_submission
		WHERE validation_status = $1
		ORDER BY id
	`, models.ValidationPending)
	if err != nil {
		return nil, fmt.Errorf("failed to query tam submissions: %w", err)
	}
	defer rows.Close()

	subs := []models.TAMSubmission{}
	for rows.Next() {
		var sub models.TAMSubmission
		if err := rows.Scan(
			&sub.ID, &sub.UTam, &sub.HindiTam, &sub.SanskritTam, &sub.EnglishTam,
			&sub.SegmentID, &sub.OriginalText, &sub.WXText, &sub.EnglishText,
			&sub.ValidationStatus, &sub.SubmittedBy, &sub.ValidatedBy, &sub.Feedback, &sub.CreatedAt, &sub.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan tam submission: %w", err)
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

// ValidateTAMSubmission approves or rejects a pending TAM proposal,
// promoting it into tam_dictionary on approval.
func (s *Store) ValidateTAMSubmission(ctx context.Context, id, validatorID int64, approve bool, feedback *string) error {
	status := models.ValidationRejected
	if approve {
		status = models.ValidationApproved
	}

	return s.inTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			UPDATE tam_submission
			SET validation_status = $1, validated_by = $2, feedback = $3, updated_at = NOW()
			WHERE id = $4 AND validation_status = $5
		`, status, validatorID, feedback, id, models.ValidationPending)
		if err != nil {
			return fmt.Errorf("failed to validate tam submission: %w", err)
		}
		if err := oneRow(res); err != nil {
			return err
		}

		if !approve {
			return nil
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO tam_dictionary (u_tam, hindi_tam, sanskrit_tam, english_tam)
			SELECT u_tam, hindi_tam, sanskrit_tam, english_tam
			FROM tam_submission
			WHERE id = $1
		`, id)
		if err != nil {
			return fmt.Errorf("failed to promote tam submission: %w", err)
		}
		return nil
	})
}
