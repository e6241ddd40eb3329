// Copyright (c) 2026 Aparna Ranjan.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the data-access layer over the annotation schema.

All methods hang off a Store wrapping *sql.DB and take a context:

	st := store.New(conn)
	user, err := st.CreateUser(ctx, "Asha", "asha@example.org", "s3cret", nil, nil)

# Method Groups

  - users.go: accounts, credentials (bcrypt via the auth package), OTP
    columns, role/status updates
  - corpus.go: full CRUD for project/chapter/sentence/segment,
    GetProjectTree, cascade-backed deletes at every level
  - usrs.go: USR lifecycle and transactional replacement of the five
    annotation fragment sets
  - assignments.go: routing segments to annotators/reviewers, workflow
    status, layer flags
  - lexicon.go: concept and TAM vocabularies with their submission and
    validation queues; approval promotes a submission into the canonical
    table transactionally
  - feedback.go: typed segment feedback with an open/in_progress/resolved/
    closed lifecycle

# Errors

Lookups of missing rows return ErrNotFound, as do updates that matched
nothing. Database constraint violations (not-null, foreign-key, unique,
enum-domain) are returned wrapped and unmodified; there is no retry logic.
Inspect them with errors.As against *pq.Error when the class matters.
*/
package store
