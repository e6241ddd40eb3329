// Copyright (c) 2026 Aparna Ranjan.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

Two schema versions exist. CreateSchema builds the optimized layout and is
what every new database should use:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

CreateLegacySchema reproduces the original layout for databases that predate
the optimization pass. Both are safe to call multiple times.

# Tables

  - user: annotators, reviewers and admins (credentials, role, OTP fields)
  - project, chapter, sentence, segment: the text containment hierarchy
  - usr: Unified Semantic Representation records per segment
  - lexical_info, dependency_info, discourse_coref_info, construction_info,
    sentence_type_info: annotation fragments per USR
  - assignment: segment-to-annotator routing with per-layer flags
  - concept, concept_submission: vocabulary and its validation queue
  - tam_dictionary, tam_submission: TAM entries and their validation queue
  - segment_feedback: typed feedback on segments

# Relationships

	project 1──* chapter 1──* sentence 1──* segment
	segment 1──* usr 1──* {lexical, dependency, discourse_coref,
	                       construction, sentence_type}_info
	segment 1──* assignment *──1 user (annotator, optional reviewer)
	segment 1──* segment_feedback
	user 1──* usr (created_by)
	user 1──* {concept,tam}_submission (submitted_by, validated_by)

All containment foreign keys use ON DELETE CASCADE: deleting a project
removes every descendant row down to the annotation fragments. Deleting a
user removes their assignments, but a user with segment feedback on record
cannot be deleted; the feedback trail keeps the row alive.

# Optimized vs legacy

The optimized schema differs from the legacy one in three ways:

  - Status columns use native Postgres enum types (user_role, user_status,
    usr_status, annotation_status, validation_status, feedback_status,
    feedback_type); the legacy schema stores unchecked varchar.
  - The five info tables are owned by usr alone; the legacy layout also
    carried a redundant segment_id foreign key on each.
  - Secondary indexes exist on every foreign key, on status columns, on the
    external sentence_id/segment_id identifiers, and a GIN index on
    user.languages. The legacy layout has none.
*/
package db
