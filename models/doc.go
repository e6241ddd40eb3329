// Copyright (c) 2026 Aparna Ranjan.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the row types and status domains for the annotation
database.

# Domain Types

One struct per table:

  - User: annotator/reviewer/admin identity with hashed credentials
  - Project, Chapter, Sentence, Segment: the containment hierarchy
  - USR: a Unified Semantic Representation record for a segment
  - LexicalInfo, DependencyInfo, DiscourseCorefInfo, ConstructionInfo,
    SentenceTypeInfo: annotation fragments owned by a USR
  - Assignment: segment-to-annotator routing with per-layer flags
  - Concept, ConceptSubmission: canonical vocabulary and pending proposals
  - TAMEntry, TAMSubmission: tense-aspect-mood dictionary and proposals
  - SegmentFeedback: typed free-text feedback on a segment

Pointer fields map to nullable columns. Credential and OTP fields are tagged
`json:"-"` and never serialized.

# Aggregates

  - USRWithInfo: a USR plus all five fragment slices
  - ProjectTree, ChapterTree, SentenceTree: fully loaded hierarchy levels

# Constants

Status domains mirror the database enum types:

	RolePending / RoleAnnotator / RoleReviewer / RoleAdmin
	UserStatusPending / UserStatusActive / UserStatusDisabled
	USRStatusPending / USRStatusCompleted / USRStatusReviewed
	AnnotationUnassigned / Assigned / InProgress / Submitted / Reviewed
	ValidationPending / ValidationApproved / ValidationRejected
	FeedbackOpen / FeedbackInProgress / FeedbackResolved / FeedbackClosed
	FeedbackTypeIssue / FeedbackTypeSuggestion / FeedbackTypeQuestion

The optimized schema enforces these domains with native Postgres enums; the
legacy schema stores plain varchar and enforces nothing.
*/
package models
