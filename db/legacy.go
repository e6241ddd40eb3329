// Copyright (c) 2026 Aparna Ranjan.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateLegacySchema creates the original, unoptimized schema layout as it
// existed before the normalization pass: varchar status columns with no
// domain enforcement, a redundant segment_id foreign key on every info
// table, and no secondary indexes. Kept for databases that predate the
// optimized layout. Safe to call multiple times.
func CreateLegacySchema(db *sql.DB) error {
	_, err := db.Exec(legacySchema)
	if err != nil {
		return fmt.Errorf("failed to create legacy schema: %w", err)
	}
	return nil
}

const legacySchema = `
CREATE TABLE IF NOT EXISTS "user" (
    id SERIAL PRIMARY KEY,
    name VARCHAR(150) NOT NULL,
    email VARCHAR(150) NOT NULL UNIQUE,
    password_hash VARCHAR(200) NOT NULL,
    role VARCHAR(50) NOT NULL DEFAULT 'pending',
    languages VARCHAR(50)[] NOT NULL DEFAULT '{hindi}',
    organization VARCHAR(150),
    status VARCHAR(50) DEFAULT 'pending',
    otp VARCHAR(6),
    otp_expiration TIMESTAMP,
    created_at TIMESTAMP DEFAULT NOW(),
    updated_at TIMESTAMP DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS project (
    id SERIAL PRIMARY KEY,
    title VARCHAR(200) NOT NULL,
    description TEXT,
    language VARCHAR(50) NOT NULL DEFAULT 'hindi',
    organization VARCHAR(150),
    created_at TIMESTAMP DEFAULT NOW(),
    updated_at TIMESTAMP DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS chapter (
    id SERIAL PRIMARY KEY,
    project_id INTEGER NOT NULL REFERENCES project(id) ON DELETE CASCADE,
    title VARCHAR(200) NOT NULL,
    language VARCHAR(50) NOT NULL DEFAULT 'hindi',
    chapter_text TEXT,
    created_at TIMESTAMP DEFAULT NOW(),
    updated_at TIMESTAMP DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS sentence (
    id SERIAL PRIMARY KEY,
    chapter_id INTEGER NOT NULL REFERENCES chapter(id) ON DELETE CASCADE,
    text TEXT NOT NULL,
    sentence_id VARCHAR(100),
    language VARCHAR(50) NOT NULL DEFAULT 'hindi',
    created_at TIMESTAMP DEFAULT NOW(),
    updated_at TIMESTAMP DEFAULT NOW()
);

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

CREATE TABLE IF NOT EXISTS usr (
    id SERIAL PRIMARY KEY,
    segment_id INTEGER NOT NULL REFERENCES segment(id) ON DELETE CASCADE,
    status VARCHAR(50) DEFAULT 'Pending',
    sentence_type VARCHAR(100),
    language VARCHAR(50) NOT NULL DEFAULT 'hindi',
    created_by INTEGER REFERENCES "user"(id),
    created_at TIMESTAMP DEFAULT NOW(),
    updated_at TIMESTAMP DEFAULT NOW()
);

-- Info tables carry both usr_id and a redundant segment_id in the legacy
-- layout; the optimized schema drops the segment link.
CREATE TABLE IF NOT EXISTS lexical_info (
    id SERIAL PRIMARY KEY,
    usr_id INTEGER NOT NULL REFERENCES usr(id) ON DELETE CASCADE,
    segment_id INTEGER NOT NULL REFERENCES segment(id) ON DELETE CASCADE,
    concept VARCHAR(100) NOT NULL,
    index INTEGER NOT NULL,
    semantic_category VARCHAR(100),
    morpho_semantic VARCHAR(100),
    speakers_view VARCHAR(100)
);

CREATE TABLE IF NOT EXISTS dependency_info (
    id SERIAL PRIMARY KEY,
    usr_id INTEGER NOT NULL REFERENCES usr(id) ON DELETE CASCADE,
    segment_id INTEGER NOT NULL REFERENCES segment(id) ON DELETE CASCADE,
    concept VARCHAR(100) NOT NULL,
    index INTEGER NOT NULL,
    head_index VARCHAR(20),
    relation VARCHAR(100) NOT NULL
);

CREATE TABLE IF NOT EXISTS discourse_coref_info (
    id SERIAL PRIMARY KEY,
    usr_id INTEGER NOT NULL REFERENCES usr(id) ON DELETE CASCADE,
    segment_id INTEGER NOT NULL REFERENCES segment(id) ON DELETE CASCADE,
    concept VARCHAR(100) NOT NULL,
    index INTEGER NOT NULL,
    head_index VARCHAR(20),
    relation VARCHAR(100) NOT NULL
);

CREATE TABLE IF NOT EXISTS construction_info (
    id SERIAL PRIMARY KEY,
    usr_id INTEGER NOT NULL REFERENCES usr(id) ON DELETE CASCADE,
    segment_id INTEGER NOT NULL REFERENCES segment(id) ON DELETE CASCADE,
    concept VARCHAR(100) NOT NULL,
    index INTEGER NOT NULL,
    cxn_index VARCHAR(20),
    component_type VARCHAR(100) NOT NULL
);

CREATE TABLE IF NOT EXISTS sentence_type_info (
    id SERIAL PRIMARY KEY,
    usr_id INTEGER NOT NULL REFERENCES usr(id) ON DELETE CASCADE,
    sentence_type VARCHAR(100) NOT NULL,
    scope VARCHAR(100),
    segment_id INTEGER NOT NULL REFERENCES segment(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS assignment (
    id SERIAL PRIMARY KEY,
    segment_id INTEGER NOT NULL REFERENCES segment(id) ON DELETE CASCADE,
    annotator_id INTEGER NOT NULL REFERENCES "user"(id) ON DELETE CASCADE,
    reviewer_id INTEGER REFERENCES "user"(id) ON DELETE CASCADE,
    feedback TEXT,
    annotation_status VARCHAR(50) DEFAULT 'Unassigned',
    assign_lexical BOOLEAN DEFAULT FALSE,
    assign_construction BOOLEAN DEFAULT FALSE,
    assign_dependency BOOLEAN DEFAULT FALSE,
    assign_discourse BOOLEAN DEFAULT FALSE,
    created_at TIMESTAMP DEFAULT NOW(),
    updated_at TIMESTAMP DEFAULT NOW()
);

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
    validation_status VARCHAR(50) DEFAULT 'pending',
    submitted_by INTEGER REFERENCES "user"(id),
    validated_by INTEGER REFERENCES "user"(id),
    feedback TEXT,
    created_at TIMESTAMP DEFAULT NOW(),
    updated_at TIMESTAMP DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS tam_dictionary (
    id SERIAL PRIMARY KEY,
    u_tam VARCHAR(255) NOT NULL,
    hindi_tam VARCHAR(255) NOT NULL,
    sanskrit_tam VARCHAR(255),
    english_tam VARCHAR(255) NOT NULL,
    created_at TIMESTAMP DEFAULT NOW(),
    updated_at TIMESTAMP DEFAULT NOW()
);

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
    validation_status VARCHAR(50) DEFAULT 'pending',
    submitted_by INTEGER REFERENCES "user"(id),
    validated_by INTEGER REFERENCES "user"(id),
    feedback TEXT,
    created_at TIMESTAMP DEFAULT NOW(),
    updated_at TIMESTAMP DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS segment_feedback (
    id SERIAL PRIMARY KEY,
    segment_id INTEGER NOT NULL REFERENCES segment(id) ON DELETE CASCADE,
    annotator_id INTEGER NOT NULL REFERENCES "user"(id),
    feedback_type VARCHAR(50) NOT NULL,
    feedback_text TEXT NOT NULL,
    status VARCHAR(50) DEFAULT 'open',
    created_at TIMESTAMP DEFAULT NOW(),
    updated_at TIMESTAMP DEFAULT NOW()
);
`
