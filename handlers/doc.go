// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the lotto-gen API.

# Handler Types

Each handler is a struct holding the session store:

  - BirthHandler: Name and birth date form, generation by birth seed
  - QuizHandler: Multi-question quiz navigation and submission
  - CatalogHandler: Read-only view of the question bank

Handlers are created via constructor functions that accept *lottery.Store:

	birthHandler := handlers.NewBirthHandler(store)

# Birth Flow

	POST  /birth               → CreateSession (optional initial fields)
	PATCH /birth/{id}          → UpdateFields (absent fields untouched)
	POST  /birth/{id}/generate → Generate (validates, then calls the generator)
	POST  /birth/{id}/reset    → Reset

Validation failures are 422 responses carrying a code, the offending field
and the message shown to the user. Generation never runs on invalid input.

# Quiz Flow

	POST /quiz                          → CreateSession
	PUT  /quiz/{id}/answers/{question}  → Answer (never moves the quiz)
	POST /quiz/{id}/next                → Next (advances, or submits on the last question)
	POST /quiz/{id}/prev                → Prev (no-op on the first question)
	POST /quiz/{id}/reset               → Reset

Responses to next and prev carry a transition; animate is true for moves
between questions so the page can play its fade cue.

# Errors

Generation failures map to 502 with the same generic message for network
and server faults. Upstream bodies are never forwarded. Requests racing an
in-flight generation get 409.

Generation runs detached from the request context, so a client hanging up
does not abandon a result the session is waiting for.
*/
package handlers
