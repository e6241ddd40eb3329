// Copyright (c) 2026 Aparna Ranjan.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aparna-ranjan/usr-annotate/models"
)

// CreateUSR opens a new USR record for a segment in Pending status.
func (s *Store) CreateUSR(ctx context.Context, segmentID int64, language string, sentenceType *string, createdBy *int64) (models.USR, error) {
	if language == "" {
		language = models.DefaultLanguage
	}

	u := models.USR{
		SegmentID:    segmentID,
		SentenceType: sentenceType,
		Language:     language,
		CreatedBy:    createdBy,
	}

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO usr (segment_id, sentence_type, language, created_by)
		VALUES ($1, $2, $3, $4)
		RETURNING id, status, created_at, updated_at
	`, segmentID, sentenceType, language, createdBy).Scan(&u.ID, &u.Status, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return models.USR{}, fmt.Errorf("failed to insert usr: %w", err)
	}
	return u, nil
}

// GetUSR loads a USR together with all five annotation fragment sets.
func (s *Store) GetUSR(ctx context.Context, id int64) (models.USRWithInfo, error) {
	var u models.USR
	err := s.db.QueryRowContext(ctx, `
		SELECT id, segment_id, status, sentence_type, language, created_by, created_at, updated_at
		FROM usr
		WHERE id = $1
	`, id).Scan(&u.ID, &u.SegmentID, &u.Status, &u.SentenceType, &u.Language, &u.CreatedBy, &u.CreatedAt, &u.UpdatedAt)
	if err == sql.ErrNoRows {
		return models.USRWithInfo{}, ErrNotFound
	}
	if err != nil {
		return models.USRWithInfo{}, fmt.Errorf("failed to query usr: %w", err)
	}

	full := models.USRWithInfo{USR: u}

	if full.LexicalInfo, err = s.lexicalInfoByUSR(ctx, id); err != nil {
		return models.USRWithInfo{}, err
	}
	if full.DependencyInfo, err = s.dependencyInfoByUSR(ctx, id); err != nil {
		return models.USRWithInfo{}, err
	}
	if full.DiscourseCoref, err = s.discourseCorefInfoByUSR(ctx, id); err != nil {
		return models.USRWithInfo{}, err
	}
	if full.ConstructionInfo, err = s.constructionInfoByUSR(ctx, id); err != nil {
		return models.USRWithInfo{}, err
	}
	if full.SentenceTypeInfo, err = s.sentenceTypeInfoByUSR(ctx, id); err != nil {
		return models.USRWithInfo{}, err
	}
	return full, nil
}

// ListUSRsBySegment returns every USR recorded for a segment, oldest first.
func (s *Store) ListUSRsBySegment(ctx context.Context, segmentID int64) ([]models.USR, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, segment_id, status, sentence_type, language, created_by, created_at, updated_at
		FROM usr
		WHERE segment_id = $1
		ORDER BY id
	`, segmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query usrs: %w", err)
	}
	defer rows.Close()

	usrs := []models.USR{}
	for rows.Next() {
		var u models.USR
		if err := rows.Scan(&u.ID, &u.SegmentID, &u.Status, &u.SentenceType, &u.Language, &u.CreatedBy, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan usr: %w", err)
		}
		usrs = append(usrs, u)
	}
	return usrs, rows.Err()
}

// UpdateUSRStatus moves a USR through its lifecycle
// (Pending -> Completed -> Reviewed).
func (s *Store) UpdateUSRStatus(ctx context.Context, id int64, status string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE usr SET status = $1, updated_at = NOW() WHERE id = $2
	`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update usr status: %w", err)
	}
	return oneRow(res)
}

// ReplaceLexicalInfo swaps the full lexical fragment set of a USR in one
// transaction. The other Replace* methods follow the same delete-then-insert
// pattern; partial annotation edits are not a thing the schema models.
func (s *Store) ReplaceLexicalInfo(ctx context.Context, usrID int64, infos []models.LexicalInfo) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM lexical_info WHERE usr_id = $1`, usrID); err != nil {
			return fmt.Errorf("failed to clear lexical info: %w", err)
		}
		for _, info := range infos {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO lexical_info (usr_id, concept, index, semantic_category, morpho_semantic, speakers_view)
				VALUES ($1, $2, $3, $4, $5, $6)
			`, usrID, info.Concept, info.Index, info.SemanticCategory, info.MorphoSemantic, info.SpeakersView)
			if err != nil {
				return fmt.Errorf("failed to insert lexical info: %w", err)
			}
		}
		return nil
	})
}

func (s *Store) ReplaceDependencyInfo(ctx context.Context, usrID int64, infos []models.DependencyInfo) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM dependency_info WHERE usr_id = $1`, usrID); err != nil {
			return fmt.Errorf("failed to clear dependency info: %w", err)
		}
		for _, info := range infos {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO dependency_info (usr_id, concept, index, head_index, relation)
				VALUES ($1, $2, $3, $4, $5)
			`, usrID, info.Concept, info.Index, info.HeadIndex, info.Relation)
			if err != nil {
				return fmt.Errorf("failed to insert dependency info: %w", err)
			}
		}
		return nil
	})
}

func (s *Store) ReplaceDiscourseCorefInfo(ctx context.Context, usrID int64, infos []models.DiscourseCorefInfo) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM discourse_coref_info WHERE usr_id = $1`, usrID); err != nil {
			return fmt.Errorf("failed to clear discourse coref info: %w", err)
		}
		for _, info := range infos {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO discourse_coref_info (usr_id, concept, index, head_index, relation)
				VALUES ($1, $2, $3, $4, $5)
			`, usrID, info.Concept, info.Index, info.HeadIndex, info.Relation)
			if err != nil {
				return fmt.Errorf("failed to insert discourse coref info: %w", err)
			}
		}
		return nil
	})
}

func (s *Store) ReplaceConstructionInfo(ctx context.Context, usrID int64, infos []models.ConstructionInfo) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM construction_info WHERE usr_id = $1`, usrID); err != nil {
			return fmt.Errorf("failed to clear construction info: %w", err)
		}
		for _, info := range infos {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO construction_info (usr_id, concept, index, cxn_index, component_type)
				VALUES ($1, $2, $3, $4, $5)
			`, usrID, info.Concept, info.Index, info.CxnIndex, info.ComponentType)
			if err != nil {
				return fmt.Errorf("failed to insert construction info: %w", err)
			}
		}
		return nil
	})
}

func (s *Store) ReplaceSentenceTypeInfo(ctx context.Context, usrID int64, infos []models.SentenceTypeInfo) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM sentence_type_info WHERE usr_id = $1`, usrID); err != nil {
			return fmt.Errorf("failed to clear sentence type info: %w", err)
		}
		for _, info := range infos {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO sentence_type_info (usr_id, sentence_type, scope)
				VALUES ($1, $2, $3)
			`, usrID, info.SentenceType, info.Scope)
			if err != nil {
				return fmt.Errorf("failed to insert sentence type info: %w", err)
			}
		}
		return nil
	})
}

func (s *Store) lexicalInfoByUSR(ctx context.Context, usrID int64) ([]models.LexicalInfo, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, usr_id, concept, index, semantic_category, morpho_semantic, speakers_view
		FROM lexical_info
		WHERE usr_id = $1
		ORDER BY index
	`, usrID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lexical info: %w", err)
	}
	defer rows.Close()

	infos := []models.LexicalInfo{}
	for rows.Next() {
		var info models.LexicalInfo
		if err := rows.Scan(&info.ID, &info.USRID, &info.Concept, &info.Index, &info.SemanticCategory, &info.MorphoSemantic, &info.SpeakersView); err != nil {
			return nil, fmt.Errorf("failed to scan lexical info: %w", err)
		}
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

func (s *Store) dependencyInfoByUSR(ctx context.Context, usrID int64) ([]models.DependencyInfo, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, usr_id, concept, index, head_index, relation
		FROM dependency_info
		WHERE usr_id = $1
		ORDER BY index
	`, usrID)
	if err != nil {
		return nil, fmt.Errorf("failed to query dependency info: %w", err)
	}
	defer rows.Close()

	infos := []models.DependencyInfo{}
	for rows.Next() {
		var info models.DependencyInfo
		if err := rows.Scan(&info.ID, &info.USRID, &info.Concept, &info.Index, &info.HeadIndex, &info.Relation); err != nil {
			return nil, fmt.Errorf("failed to scan dependency info: %w", err)
		}
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

func (s *Store) discourseCorefInfoByUSR(ctx context.Context, usrID int64) ([]models.DiscourseCorefInfo, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, usr_id, concept, index, head_index, relation
		FROM discourse_coref_info
		WHERE usr_id = $1
		ORDER BY index
	`, usrID)
	if err != nil {
		return nil, fmt.Errorf("failed to query discourse coref info: %w", err)
	}
	defer rows.Close()

	infos := []models.DiscourseCorefInfo{}
	for rows.Next() {
		var info models.DiscourseCorefInfo
		if err := rows.Scan(&info.ID, &info.USRID, &info.Concept, &info.Index, &info.HeadIndex, &info.Relation); err != nil {
			return nil, fmt.Errorf("failed to scan discourse coref info: %w", err)
		}
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

func (s *Store) constructionInfoByUSR(ctx context.Context, usrID int64) ([]models.ConstructionInfo, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, usr_id, concept, index, cxn_index, component_type
		FROM construction_info
		WHERE usr_id = $1
		ORDER BY index
	`, usrID)
	if err != nil {
		return nil, fmt.Errorf("failed to query construction info: %w", err)
	}
	defer rows.Close()

	infos := []models.ConstructionInfo{}
	for rows.Next() {
		var info models.ConstructionInfo
		if err := rows.Scan(&info.ID, &info.USRID, &info.Concept, &info.Index, &info.CxnIndex, &info.ComponentType); err != nil {
			return nil, fmt.Errorf("failed to scan construction info: %w", err)
		}
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

func (s *Store) sentenceTypeInfoByUSR(ctx context.Context, usrID int64) ([]models.SentenceTypeInfo, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, usr_id, sentence_type, scope
		FROM sentence_type_info
		WHERE usr_id = $1
		ORDER BY id
	`, usrID)
	if err != nil {
		return nil, fmt.Errorf("failed to query sentence type info: %w", err)
	}
	defer rows.Close()

	infos := []models.SentenceTypeInfo{}
	for rows.Next() {
		var info models.SentenceTypeInfo
		if err := rows.Scan(&info.ID, &info.USRID, &info.SentenceType, &info.Scope); err != nil {
			return nil, fmt.Errorf("failed to scan sentence type info: %w", err)
		}
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

// inTx runs fn inside a transaction, committing on success.
func (s *Store) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
