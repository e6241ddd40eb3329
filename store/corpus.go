// Copyright (c) 2026 Aparna Ranjan.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aparna-ranjan/usr-annotate/models"
)

// CreateProject inserts a project. An empty language falls back to the
// default ('hindi'), matching the column default.
func (s *Store) CreateProject(ctx context.Context, title, description, language string, organization *string) (models.Project, error) {
	if language == "" {
		language = models.DefaultLanguage
	}

	p := models.Project{
		Title:        title,
		Description:  description,
		Language:     language,
		Organization: organization,
	}

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO project (title, description, language, organization)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, title, description, language, organization).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return models.Project{}, fmt.Errorf("failed to insert project: %w", err)
	}
	return p, nil
}

func (s *Store) GetProject(ctx context.Context, id int64) (models.Project, error) {
	var p models.Project
	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, COALESCE(description, ''), language, organization, created_at, updated_at
		FROM project
		WHERE id = $1
	`, id).Scan(&p.ID, &p.Title, &p.Description, &p.Language, &p.Organization, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return models.Project{}, ErrNotFound
	}
	if err != nil {
		return models.Project{}, fmt.Errorf("failed to query project: %w", err)
	}
	return p, nil
}

func (s *Store) ListProjects(ctx context.Context) ([]models.Project, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, COALESCE(description, ''), language, organization, created_at, updated_at
		FROM project
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	projects := []models.Project{}
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Language, &p.Organization, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// UpdateProject rewrites the project's metadata. An empty language falls
// back to the default, as on create.
func (s *Store) UpdateProject(ctx context.Context, id int64, title, description, language string, organization *string) error {
	if language == "" {
		language = models.DefaultLanguage
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE project
		SET title = $1, description = $2, language = $3, organization = $4, updated_at = NOW()
		WHERE id = $5
	`, title, description, language, organization, id)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	return oneRow(res)
}

// DeleteProject removes a project; the database cascades the delete through
// chapters, sentences, segments, USRs and every annotation fragment.
func (s *Store) DeleteProject(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM project WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return oneRow(res)
}

func (s *Store) CreateChapter(ctx context.Context, projectID int64, title, language, chapterText string) (models.Chapter, error) {
	if language == "" {
		language = models.DefaultLanguage
	}

	c := models.Chapter{
		ProjectID:   projectID,
		Title:       title,
		Language:    language,
		ChapterText: chapterText,
	}

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO chapter (project_id, title, language, chapter_text)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, projectID, title, language, chapterText).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return models.Chapter{}, fmt.Errorf("failed to insert chapter: %w", err)
	}
	return c, nil
}

func (s *Store) GetChapter(ctx context.Context, id int64) (models.Chapter, error) {
	var c models.Chapter
	err := s.db.QueryRowContext(ctx, `
		SELECT id, project_id, title, language, COALESCE(chapter_text, ''), created_at, updated_at
		FROM chapter
		WHERE id = $1
	`, id).Scan(&c.ID, &c.ProjectID, &c.Title, &c.Language, &c.ChapterText, &c.CreatedAt, &c.UpdatedAt)
	if err == sql.ErrNoRows {
		return models.Chapter{}, ErrNotFound
	}
	if err != nil {
		return models.Chapter{}, fmt.Errorf("failed to query chapter: %w", err)
	}
	return c, nil
}

func (s *Store) UpdateChapter(ctx context.Context, id int64, title, language, chapterText string) error {
	if language == "" {
		language = models.DefaultLanguage
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE chapter
		SET title = $1, language = $2, chapter_text = $3, updated_at = NOW()
		WHERE id = $4
	`, title, language, chapterText, id)
	if err != nil {
		return fmt.Errorf("failed to update chapter: %w", err)
	}
	return oneRow(res)
}

// DeleteChapter removes a chapter and, via cascades, its sentences, segments
// and everything hanging off them.
func (s *Store) DeleteChapter(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM chapter WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete chapter: %w", err)
	}
	return oneRow(res)
}

func (s *Store) CreateSentence(ctx context.Context, chapterID int64, text, sentenceID, language string) (models.Sentence, error) {
	if language == "" {
		language = models.DefaultLanguage
	}

	sen := models.Sentence{
		ChapterID:  chapterID,
		Text:       text,
		SentenceID: sentenceID,
		Language:   language,
	}

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO sentence (chapter_id, text, sentence_id, language)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, chapterID, text, sentenceID, language).Scan(&sen.ID, &sen.CreatedAt, &sen.UpdatedAt)
	if err != nil {
		return models.Sentence{}, fmt.Errorf("failed to insert sentence: %w", err)
	}
	return sen, nil
}

func (s *Store) GetSentence(ctx context.Context, id int64) (models.Sentence, error) {
	var sen models.Sentence
	err := s.db.QueryRowContext(ctx, `
		SELECT id, chapter_id, text, COALESCE(sentence_id, ''), language, created_at, updated_at
		FROM sentence
		WHERE id = $1
	`, id).Scan(&sen.ID, &sen.ChapterID, &sen.Text, &sen.SentenceID, &sen.Language, &sen.CreatedAt, &sen.UpdatedAt)
	if err == sql.ErrNoRows {
		return models.Sentence{}, ErrNotFound
	}
	if err != nil {
		return models.Sentence{}, fmt.Errorf("failed to query sentence: %w", err)
	}
	return sen, nil
}

func (s *Store) UpdateSentence(ctx context.Context, id int64, text, sentenceID, language string) error {
	if language == "" {
		language = models.DefaultLanguage
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE sentence
		SET text = $1, sentence_id = $2, language = $3, updated_at = NOW()
		WHERE id = $4
	`, text, sentenceID, language, id)
	if err != nil {
		return fmt.Errorf("failed to update sentence: %w", err)
	}
	return oneRow(res)
}

// DeleteSentence removes a sentence and cascades through its segments.
func (s *Store) DeleteSentence(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM sentence WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete sentence: %w", err)
	}
	return oneRow(res)
}

func (s *Store) CreateSegment(ctx context.Context, sentenceID int64, text, wxText, englishText, segmentID, language string) (models.Segment, error) {
	if language == "" {
		language = models.DefaultLanguage
	}

	seg := models.Segment{
		SentenceID:  sentenceID,
		Text:        text,
		WXText:      wxText,
		EnglishText: englishText,
		SegmentID:   segmentID,
		Language:    language,
	}

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO segment (sentence_id, text, wxtext, englishtext, segment_id, language)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, is_annotated, created_at, updated_at
	`, sentenceID, text, wxText, englishText, segmentID, language).Scan(
		&seg.ID, &seg.IsAnnotated, &seg.CreatedAt, &seg.UpdatedAt,
	)
	if err != nil {
		return models.Segment{}, fmt.Errorf("failed to insert segment: %w", err)
	}
	return seg, nil
}

func (s *Store) GetSegment(ctx context.Context, id int64) (models.Segment, error) {
	var seg models.Segment
	err := s.db.QueryRowContext(ctx, `
		SELECT id, sentence_id, text, COALESCE(wxtext, ''), COALESCE(englishtext, ''),
		       is_annotated, COALESCE(segment_id, ''), language, created_at, updated_at
		FROM segment
		WHERE id = $1
	`, id).Scan(
		&seg.ID, &seg.SentenceID, &seg.Text, &seg.WXText, &seg.EnglishText,
		&seg.IsAnnotated, &seg.SegmentID, &seg.Language, &seg.CreatedAt, &seg.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return models.Segment{}, ErrNotFound
	}
	if err != nil {
		return models.Segment{}, fmt.Errorf("failed to query segment: %w", err)
	}
	return seg, nil
}

func (s *Store) UpdateSegment(ctx context.Context, id int64, text, wxText, englishText, segmentID, language string) error {
	if language == "" {
		language = models.DefaultLanguage
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE segment
		SET text = $1, wxtext = $2, englishtext = $3, segment_id = $4, language = $5, updated_at = NOW()
		WHERE id = $6
	`, text, wxText, englishText, segmentID, language, id)
	if err != nil {
		return fmt.Errorf("failed to update segment: %w", err)
	}
	return oneRow(res)
}

// DeleteSegment removes a segment and cascades through its USRs, assignments
// and feedback.
func (s *Store) DeleteSegment(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM segment WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete segment: %w", err)
	}
	return oneRow(res)
}

// MarkSegmentAnnotated flips the is_annotated flag.
func (s *Store) MarkSegmentAnnotated(ctx context.Context, id int64, annotated bool) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE segment SET is_annotated = $1, updated_at = NOW() WHERE id = $2
	`, annotated, id)
	if err != nil {
		return fmt.Errorf("failed to update segment: %w", err)
	}
	return oneRow(res)
}

// GetProjectTree loads a project with its full containment hierarchy:
// chapters, their sentences, and each sentence's segments.
func (s *Store) GetProjectTree(ctx context.Context, projectID int64) (models.ProjectTree, error) {
	project, err := s.GetProject(ctx, projectID)
	if err != nil {
		return models.ProjectTree{}, err
	}
	tree := models.ProjectTree{Project: project, Chapters: []models.ChapterTree{}}

	chapters, err := s.db.QueryContext(ctx, `
		SELECT id, project_id, title, language, COALESCE(chapter_text, ''), created_at, updated_at
		FROM chapter
		WHERE project_id = $1
		ORDER BY id
	`, projectID)
	if err != nil {
		return models.ProjectTree{}, fmt.Errorf("failed to query chapters: %w", err)
	}
	defer chapters.Close()

	for chapters.Next() {
		var c models.Chapter
		if err := chapters.Scan(&c.ID, &c.ProjectID, &c.Title, &c.Language, &c.ChapterText, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return models.ProjectTree{}, fmt.Errorf("failed to scan chapter: %w", err)
		}

		sentences, err := s.sentenceTrees(ctx, c.ID)
		if err != nil {
			return models.ProjectTree{}, err
		}
		tree.Chapters = append(tree.Chapters, models.ChapterTree{Chapter: c, Sentences: sentences})
	}
	if err := chapters.Err(); err != nil {
		return models.ProjectTree{}, err
	}
	return tree, nil
}

func (s *Store) sentenceTrees(ctx context.Context, chapterID int64) ([]models.SentenceTree, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, chapter_id, text, COALESCE(sentence_id, ''), language, created_at, updated_at
		FROM sentence
		WHERE chapter_id = $1
		ORDER BY id
	`, chapterID)
	if err != nil {
		return nil, fmt.Errorf("failed to query sentences: %w", err)
	}
	defer rows.Close()

	trees := []models.SentenceTree{}
	for rows.Next() {
		var sen models.Sentence
		if err := rows.Scan(&sen.ID, &sen.ChapterID, &sen.Text, &sen.SentenceID, &sen.Language, &sen.CreatedAt, &sen.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan sentence: %w", err)
		}

		segments, err := s.segmentsBySentence(ctx, sen.ID)
		if err != nil {
			return nil, err
		}
		trees = append(trees, models.SentenceTree{Sentence: sen, Segments: segments})
	}
	return trees, rows.Err()
}

func (s *Store) segmentsBySentence(ctx context.Context, sentenceID int64) ([]models.Segment, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, sentence_id, text, COALESCE(wxtext, ''), COALESCE(englishtext, ''),
		       is_annotated, COALESCE(segment_id, ''), language, created_at, updated_at
		FROM segment
		WHERE sentence_id = $1
		ORDER BY id
	`, sentenceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query segments: %w", err)
	}
	defer rows.Close()

	segments := []models.Segment{}
	for rows.Next() {
		var seg models.Segment
		if err := rows.Scan(
			&seg.ID, &seg.SentenceID, &seg.Text, &seg.WXText, &seg.EnglishText,
			&seg.IsAnnotated, &seg.SegmentID, &seg.Language, &seg.CreatedAt, &seg.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan segment: %w", err)
		}
		segments = append(segments, seg)
	}
	return segments, rows.Err()
}
