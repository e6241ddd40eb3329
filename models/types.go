// Copyright (c) 2026 Aparna Ranjan.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// User role constants
const (
	RolePending   = "pending"
	RoleAnnotator = "annotator"
	RoleReviewer  = "reviewer"
	RoleAdmin     = "admin"
)

// User account status constants
const (
	UserStatusPending  = "pending"
	UserStatusActive   = "active"
	UserStatusDisabled = "disabled"
)

// USR lifecycle status constants
const (
	USRStatusPending   = "Pending"
	USRStatusCompleted = "Completed"
	USRStatusReviewed  = "Reviewed"
)

// Assignment workflow status constants
const (
	AnnotationUnassigned = "Unassigned"
	AnnotationAssigned   = "Assigned"
	AnnotationInProgress = "InProgress"
	AnnotationSubmitted  = "Submitted"
	AnnotationReviewed   = "Reviewed"
)

// Submission validation status constants
const (
	ValidationPending  = "pending"
	ValidationApproved = "approved"
	ValidationRejected = "rejected"
)

// Segment feedback status constants
const (
	FeedbackOpen       = "open"
	FeedbackInProgress = "in_progress"
	FeedbackResolved   = "resolved"
	FeedbackClosed     = "closed"
)

// Segment feedback type constants
const (
	FeedbackTypeIssue      = "issue"
	FeedbackTypeSuggestion = "suggestion"
	FeedbackTypeQuestion   = "question"
)

// DefaultLanguage is the language tag applied when none is given.
const DefaultLanguage = "hindi"

// Domain types

type User struct {
	ID            int64      `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	PasswordHash  string     `json:"-"` // Never expose in JSON
	Role          string     `json:"role"`
	Languages     []string   `json:"languages"`
	Organization  *string    `json:"organization,omitempty"`
	Status        string     `json:"status"`
	OTP           *string    `json:"-"` // Never expose in JSON
	OTPExpiration *time.Time `json:"-"` // Never expose in JSON
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type Project struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Language     string    `json:"language"`
	Organization *string   `json:"organization,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Chapter struct {
	ID          int64     `json:"id"`
	ProjectID   int64     `json:"project_id"`
	Title       string    `json:"title"`
	Language    string    `json:"language"`
	ChapterText string    `json:"chapter_text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Sentence struct {
	ID        int64     `json:"id"`
	ChapterID int64     `json:"chapter_id"`
	Text      string    `json:"text"`
	// External corpus identifier, e.g. "Geo_nios_3ch_0002"
	SentenceID string    `json:"sentence_id"`
	Language   string    `json:"language"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type Segment struct {
	ID          int64  `json:"id"`
	SentenceID  int64  `json:"sentence_id"`
	Text        string `json:"text"`
	WXText      string `json:"wxtext"`
	EnglishText string `json:"englishtext"`
	IsAnnotated bool   `json:"is_annotated"`
	// External corpus identifier, parallel to Sentence.SentenceID
	SegmentID string    `json:"segment_id"`
	Language  string    `json:"language"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type USR struct {
	ID           int64     `json:"id"`
	SegmentID    int64     `json:"segment_id"`
	Status       string    `json:"status"`
	SentenceType *string   `json:"sentence_type,omitempty"`
	Language     string    `json:"language"`
	CreatedBy    *int64    `json:"created_by,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// USRWithInfo bundles a USR with all of its annotation fragments.
type USRWithInfo struct {
	USR               USR                  `json:"usr"`
	LexicalInfo       []LexicalInfo        `json:"lexical_info"`
	DependencyInfo    []DependencyInfo     `json:"dependency_info"`
	DiscourseCoref    []DiscourseCorefInfo `json:"discourse_coref_info"`
	ConstructionInfo  []ConstructionInfo   `json:"construction_info"`
	SentenceTypeInfo  []SentenceTypeInfo   `json:"sentence_type_info"`
}

type LexicalInfo struct {
	ID               int64   `json:"id"`
	USRID            int64   `json:"usr_id"`
	Concept          string  `json:"concept"`
	Index            int     `json:"index"`
	SemanticCategory *string `json:"semantic_category,omitempty"`
	MorphoSemantic   *string `json:"morpho_semantic,omitempty"`
	SpeakersView     *string `json:"speakers_view,omitempty"`
}

type DependencyInfo struct {
	ID        int64   `json:"id"`
	USRID     int64   `json:"usr_id"`
	Concept   string  `json:"concept"`
	Index     int     `json:"index"`
	HeadIndex *string `json:"head_index,omitempty"`
	Relation  string  `json:"relation"`
}

type DiscourseCorefInfo struct {
	ID        int64   `json:"id"`
	USRID     int64   `json:"usr_id"`
	Concept   string  `json:"concept"`
	Index     int     `json:"index"`
	HeadIndex *string `json:"head_index,omitempty"`
	Relation  string  `json:"relation"`
}

type ConstructionInfo struct {
	ID            int64   `json:"id"`
	USRID         int64   `json:"usr_id"`
	Concept       string  `json:"concept"`
	Index         int     `json:"index"`
	CxnIndex      *string `json:"cxn_index,omitempty"`
	ComponentType string  `json:"component_type"`
}

type SentenceTypeInfo struct {
	ID           int64   `json:"id"`
	USRID        int64   `json:"usr_id"`
	SentenceType string  `json:"sentence_type"`
	Scope        *string `json:"scope,omitempty"`
}

type Assignment struct {
	ID                 int64     `json:"id"`
	SegmentID          int64     `json:"segment_id"`
	AnnotatorID        int64     `json:"annotator_id"`
	ReviewerID         *int64    `json:"reviewer_id,omitempty"`
	Feedback           *string   `json:"feedback,omitempty"`
	AnnotationStatus   string    `json:"annotation_status"`
	AssignLexical      bool      `json:"assign_lexical"`
	AssignConstruction bool      `json:"assign_construction"`
	AssignDependency   bool      `json:"assign_dependency"`
	AssignDiscourse    bool      `json:"assign_discourse"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type Concept struct {
	ID            int64     `json:"id"`
	ConceptLabel  string    `json:"concept_label"`
	HindiLabel    *string   `json:"hindi_label,omitempty"`
	SanskritLabel *string   `json:"sanskrit_label,omitempty"`
	EnglishLabel  *string   `json:"english_label,omitempty"`
	MRSC          *string   `json:"mrsc,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ConceptSubmission struct {
	ID            int64   `json:"id"`
	ConceptLabel  string  `json:"concept_label"`
	HindiLabel    string  `json:"hindi_label"`
	SanskritLabel *string `json:"sanskrit_label,omitempty"`
	EnglishLabel  *string `json:"english_label,omitempty"`
	MRSC          *string `json:"mrsc,omitempty"`

	// Context captured from the segment the submitter was annotating.
	// SegmentID is the external string identifier, not a foreign key.
	SegmentID    *string `json:"segment_id,omitempty"`
	OriginalText *string `json:"original_text,omitempty"`
	WXText       *string `json:"wx_text,omitempty"`
	EnglishText  *string `json:"english_text,omitempty"`
	ConceptIndex *int    `json:"concept_index,omitempty"`

	ValidationStatus string    `json:"validation_status"`
	SubmittedBy      *int64    `json:"submitted_by,omitempty"`
	ValidatedBy      *int64    `json:"validated_by,omitempty"`
	Feedback         *string   `json:"feedback,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type TAMEntry struct {
	ID          int64     `json:"id"`
	UTam        string    `json:"u_tam"`
	HindiTam    string    `json:"hindi_tam"`
	SanskritTam *string   `json:"sanskrit_tam,omitempty"`
	EnglishTam  string    `json:"english_tam"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type TAMSubmission struct {
	ID          int64   `json:"id"`
	UTam        string  `json:"u_tam"`
	HindiTam    string  `json:"hindi_tam"`
	SanskritTam *string `json:"sanskrit_tam,omitempty"`
	EnglishTam  string  `json:"english_tam"`

	SegmentID    *string `json:"segment_id,omitempty"`
	OriginalText *string `json:"original_text,omitempty"`
	WXText       *string `json:"wx_text,omitempty"`
	EnglishText  *string `json:"english_text,omitempty"`

	ValidationStatus string    `json:"validation_status"`
	SubmittedBy      *int64    `json:"submitted_by,omitempty"`
	ValidatedBy      *int64    `json:"validated_by,omitempty"`
	Feedback         *string   `json:"feedback,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type SegmentFeedback struct {
	ID           int64     `json:"id"`
	SegmentID    int64     `json:"segment_id"`
	AnnotatorID  int64     `json:"annotator_id"`
	FeedbackType string    `json:"feedback_type"`
	FeedbackText string    `json:"feedback_text"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ProjectTree is a fully loaded containment hierarchy.
type ProjectTree struct {
	Project  Project       `json:"project"`
	Chapters []ChapterTree `json:"chapters"`
}

type ChapterTree struct {
	Chapter   Chapter        `json:"chapter"`
	Sentences []SentenceTree `json:"sentences"`
}

type SentenceTree struct {
	Sentence Sentence  `json:"sentence"`
	Segments []Segment `json:"segments"`
}
