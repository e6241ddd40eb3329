// Copyright (c) 2026 Aparna Ranjan.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates the optimized schema: native enum types, indexed
// foreign keys, and normalized info tables (single-parent through usr).
// Safe to call multiple times.
func CreateSchema(db *sql.DB) error {
	if _, err := db.Exec(enumTypes); err != nil {
		return fmt.Errorf("failed to create enum types: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// CREATE TYPE has no IF NOT EXISTS; swallow duplicate_object instead.
const enumTypes = `
DO $$ BEGIN
    CREATE TYPE user_role AS ENUM ('pending', 'annotator', 'reviewer', 'admin');
EXCEPTION WHEN duplicate_object THEN NULL; END $$;

DO $$ BEGIN
    CREATE TYPE user_status AS ENUM ('pending', 'active', 'disabled');
EXCEPTION WHEN duplicate_object THEN NULL; END $$;

DO $$ BEGIN
    CREATE TYPE usr_status AS ENUM ('Pending', 'Completed', 'Reviewed');
EXCEPTION WHEN duplicate_object THEN NULL; END $$;

DO $$ BEGIN
    CREATE TYPE annotation_status AS ENUM ('Unassigned', 'Assigned', 'InProgress', 'Submitted', 'Reviewed');
EXCEPTION WHEN duplicate_object THEN NULL; END $$;

DO $$ BEGIN
    CREATE TYPE validation_status AS ENUM ('pending', 'approved', 'rejected');
EXCEPTION WHEN duplicate_object THEN NULL; END $$;

DO $$ BEGIN
    CREATE TYPE feedback_status AS ENUM ('open', 'in_progress', 'resolved', 'closed');
EXCEPTION WHEN duplicate_object THEN NULL; END $$;

DO $$ BEGIN
    CREATE TYPE feedback_type AS ENUM ('issue', 'suggestion', 'question');
EXCEPTION WHEN duplicate_object THEN NULL; END $$;
`

const schema = `
-- Users
CREATE TABLE IF NOT EXISTS "user" (
    id SERIAL PRIMARY KEY,
    name VARCHAR(150) NOT NULL,
    email VARCHAR(150) NOT NULL UNIQUE,
    password_hash VARCHAR(256) NOT NULL,
    role user_role NOT NULL DEFAULT 'pending',
    languages VARCHAR(50)[] NOT NULL DEFAULT '{hindi}',
    organization VARCHAR(150),
    status user_status DEFAULT 'pending',
    otp VARCHAR(6),
    otp_expiration TIMESTAMP,
    created_at TIMESTAMP DEFAULT NOW(),
    updated_at TIMESTAMP DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS ix_user_role ON "user"(role);
CREATE INDEX IF NOT EXISTS ix_user_status ON "user"(status);
CREATE INDEX IF NOT EXISTS ix_user_languages_gin ON "user" USING gin(languages);

-- Projects
CREATE TABLE IF NOT EXISTS project (
    id SERIAL PRIMARY KEY,
    title VARCHAR(200) NOT NULL,
    description TEXT,
    language VARCHAR(50) NOT NULL DEFAULT 'hindi',
    organization VARCHAR(150),
    created_at TIMESTAMP DEFAULT NOW(),
    updated_at TIMESTAMP DEFAULT NOW()
);

-- Chapters
CREATE TABLE IF NOT EXISTS chapter (
    id SERIAL PRIMARY KEY,
    project_id INTEGER NOT NULL REFERENCES project(id) ON DELETE CASCADE,
    title VARCHAR(200) NOT NULL,
    language VARCHAR(50) NOT NULL DEFAULT 'hindi',
    chapter_text TEXT,
    created_at TIMESTAMP DEFAULT NOW(),
    updated_at TIMESTAMP DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS ix_chapter_project_id ON chapter(project_id);

-- Sentences
CREATE TABLE IF NOT EXISTS sentence (
    id SERIAL PRIMARY KEY,
    chapter_id INTEGER NOT NULL REFERENCES chapter(id) ON DELETE CASCADE,
    text TEXT NOT NULL,
    sentence_id VARCHAR(100),
    language VARCHAR(50) NOT NULL DEFAULT 'hindi',
    created_at TIMESTAMP DEFAULT NOW(),
    updated_at TIMESTAMP DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS ix_sentence_chapter_id ON sentence(chapter_id);
CREATE INDEX IF NOT EXISTS ix_sentence_sentence_id ON sentence(sentence_id);

-- Segments
CREATE TABLE IF NOT EXISTS segment (
    id SERIAL PRIMARY KEY,
    sentence_id INTEGER NOT NULL REFERENCES sentence(id) ON DELETE CASCADE,
    text TEXT NOT NULL,
    wxtext TEXT,
    englishtext TEXT,
    is_annotated BOOLEAN DEFAULT FALSE,
    segment_id VARCHAR(100),
    language VARCHAR(50) NOT NULL DEFAULT 'hindi',
    created_at TIMESTAMP DEFAULT NOW(),
    updated_at TIMESTAMP DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS ix_segment_sentence_id ON segment(sentence_id);
CREATE INDEX IF NOT EXISTS ix_segment_segment_id ON segment(segment_id);

-- USRs
CREATE TABLE IF NOT EXISTS usr (
    id SERIAL PRIMARY KEY,
    segment_id INTEGER NOT NULL REFERENCES segment(id) ON DELETE CASCADE,
    status usr_status DEFAULT 'Pending',
    sentence_type VARCHAR(100),
    language VARCHAR(50) NOT NULL DEFAULT 'hindi',
    created_by INTEGER REFERENCES "user"(id),
    created_at TIMESTAMP DEFAULT NOW(),
    updated_at TIMESTAMP DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS ix_usr_segment_id ON usr(segment_id);
CREATE INDEX IF NOT EXISTS ix_usr_status ON usr(status);
CREATE INDEX IF NOT EXISTS ix_usr_created_by ON usr(created_by);

-- Annotation fragments, normalized: owned by usr only
CREATE TABLE IF NOT EXISTS lexical_info (
    id SERIAL PRIMARY KEY,
    usr_id INTEGER NOT NULL REFERENCES usr(id) ON DELETE CASCADE,
    concept VARCHAR(100) NOT NULL,
    index INTEGER NOT NULL,
    semantic_category VARCHAR(100),
    morpho_semantic VARCHAR(100),
    speakers_view VARCHAR(100)
);

CREATE INDEX IF NOT EXISTS ix_lexical_info_usr_id ON lexical_info(usr_id);

CREATE TABLE IF NOT EXISTS dependency_info (
    id SERIAL PRIMARY KEY,
    usr_id INTEGER NOT NULL REFERENCES usr(id) ON DELETE CASCADE,
    concept VARCHAR(100) NOT NULL,
    index INTEGER NOT NULL,
    head_index VARCHAR(20),
    relation VARCHAR(100) NOT NULL
);

CREATE INDEX IF NOT EXISTS ix_dependency_info_usr_id ON dependency_info(usr_id);

CREATE TABLE IF NOT EXISTS discourse_coref_info (
    id SERIAL PRIMARY KEY,
    usr_id INTEGER NOT NULL REFERENCES usr(id) ON DELETE CASCADE,
    concept VARCHAR(100) NOT NULL,
    index INTEGER NOT NULL,
    head_index VARCHAR(20),
    relation VARCHAR(100) NOT NULL
);

CREATE INDEX IF NOT EXISTS ix_discourse_coref_info_usr_id ON discourse_coref_info(usr_id);

CREATE TABLE IF NOT EXISTS construction_info (
    id SERIAL PRIMARY KEY,
    usr_id INTEGER NOT NULL REFERENCES usr(id) ON DELETE CASCADE,
    concept VARCHAR(100) NOT NULL,
    index INTEGER NOT NULL,
    cxn_index VARCHAR(20),
    component_type VARCHAR(100) NOT NULL
);

CREATE INDEX IF NOT EXISTS ix_construction_info_usr_id ON construction_info(usr_id);

CREATE TABLE IF NOT EXISTS sentence_type_info (
    id SERIAL PRIMARY KEY,
    usr_id INTEGER NOT NULL REFERENCES usr(id) ON DELETE CASCADE,
    sentence_type VARCHAR(100) NOT NULL,
    scope VARCHAR(100)
);

CREATE INDEX IF NOT EXISTS ix_sentence_type_info_usr_id ON sentence_type_info(usr_id);

-- Assignments
CREATE TABLE IF NOT EXISTS assignment (
    id SERIAL PRIMARY KEY,
    segment_id INTEGER NOT NULL REFERENCES segment(id) ON DELETE CASCADE,
    annotator_id INTEGER NOT NULL REFERENCES "user"(id) ON DELETE CASCADE,
    reviewer_id INTEGER REFERENCES "user"(id) ON DELETE CASCADE,
    feedback TEXT,
    annotation_status annotation_status DEFAULT 'Unassigned',
    assign_lexical BOOLEAN DEFAULT FALSE,
    assign_construction BOOLEAN DEFAULT FALSE,
    assign_dependency BOOLEAN DEFAULT FALSE,
    assign_discourse BOOLEAN DEFAULT FALSE,
    created_at TIMESTAMP DEFAULT NOW(),
    updated_at TIMESTAMP DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS ix_assignment_segment_id ON assignment(segment_id);
CREATE INDEX IF NOT EXISTS ix_assignment_annotator_id ON assignment(annotator_id);
CREATE INDEX IF NOT EXISTS ix_assignment_reviewer_id ON assignment(reviewer_id);
CREATE INDEX IF NOT EXISTS ix_assignment_annotation_status ON assignment(annotation_status);

-- Canonical concept vocabulary
CREATE TABLE IF NOT EXISTS concept (
    id SERIAL PRIMARY KEY,
    concept_label VARCHAR(200) NOT NULL,
    hindi_label VARCHAR(200),
    sanskrit_label VARCHAR(200),
    english_label VARCHAR(200),
    mrsc VARCHAR(200),
    created_at TIMESTAMP DEFAULT NOW(),
    updated_at TIMESTAMP DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS ix_concept_concept_label ON concept(concept_label);

-- Concept proposals awaiting validation
CREATE TABLE IF NOT EXISTS concept_submission (
    id SERIAL PRIMARY KEY,
    concept_label VARCHAR(200) NOT NULL,
    hindi_label VARCHAR(200) NOT NULL,
    sanskrit_label VARCHAR(200),
    english_label VARCHAR(200),
    mrsc VARCHAR(200),
    segment_id VARCHAR(100),
    original_text TEXT,
    wx_text TEXT,
    english_text TEXT,
    concept_index INTEGER,
    validation_status validation_status DEFAULT 'pending',
    submitted_by INTEGER REFERENCES "user"(id),
    validated_by INTEGER REFERENCES "user"(id),
    feedback TEXT,
    created_at TIMESTAMP DEFAULT NOW(),
    updated_at TIMESTAMP DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS ix_concept_submission_segment_id ON concept_submission(segment_id);
CREATE INDEX IF NOT EXISTS ix_concept_submission_validation_status ON concept_submission(validation_status);
CREATE INDEX IF NOT EXISTS ix_concept_submission_submitted_by ON concept_submission(submitted_by);
CREATE INDEX IF NOT EXISTS ix_concept_submission_validated_by ON concept_submission(validated_by);

-- TAM dictionary
CREATE TABLE IF NOT EXISTS tam_dictionary (
    id SERIAL PRIMARY KEY,
    u_tam VARCHAR(255) NOT NULL,
    hindi_tam VARCHAR(255) NOT NULL,
    sanskrit_tam VARCHAR(255),
    english_tam VARCHAR(255) NOT NULL,
    created_at TIMESTAMP DEFAULT NOW(),
    updated_at TIMESTAMP DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS ix_tam_dictionary_u_tam ON tam_dictionary(u_tam);

-- TAM proposals awaiting validation
CREATE TABLE IF NOT EXISTS tam_submission (
    id SERIAL PRIMARY KEY,
    u_tam VARCHAR(255) NOT NULL,
    hindi_tam VARCHAR(255) NOT NULL,
    sanskrit_tam VARCHAR(255),
    english_tam VARCHAR(255) NOT NULL,
    segment_id VARCHAR(100),
    original_text TEXT,
    wx_text TEXT,
    english_text TEXT,
    validation_status validation_status DEFAULT 'pending',
    submitted_by INTEGER REFERENCES "user"(id),
    validated_by INTEGER REFERENCES "user"(id),
    feedback TEXT,
    created_at TIMESTAMP DEFAULT NOW(),
    updated_at TIMESTAMP DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS ix_tam_submission_segment_id ON tam_submission(segment_id);
CREATE INDEX IF NOT EXISTS ix_tam_submission_validation_status ON tam_submission(validation_status);
CREATE INDEX IF NOT EXISTS ix_tam_submission_submitted_by ON tam_submission(submitted_by);
CREATE INDEX IF NOT EXISTS ix_tam_submission_validated_by ON tam_submission(validated_by);

-- Segment feedback
CREATE TABLE IF NOT EXISTS segment_feedback (
    id SERIAL PRIMARY KEY,
    segment_id INTEGER NOT NULL REFERENCES segment(id) ON DELETE CASCADE,
    annotator_id INTEGER NOT NULL REFERENCES "user"(id),
    feedback_type feedback_type NOT NULL,
    feedback_text TEXT NOT NULL,
    status feedback_status DEFAULT 'open',
    created_at TIMESTAMP DEFAULT NOW(),
    updated_at TIMESTAMP DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS ix_segment_feedback_segment_id ON segment_feedback(segment_id);
CREATE INDEX IF NOT EXISTS ix_segment_feedback_annotator_id ON segment_feedback(annotator_id);
CREATE INDEX IF NOT EXISTS ix_segment_feedback_status ON segment_feedback(status);
`
