// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the lotto-gen API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(store)

# Endpoints

Health:

	GET /health

Question bank:

	GET /questions - Questions and options in display order

Birth date flow:

	POST   /birth               - Start a session, optionally with fields
	GET    /birth/{id}          - Current fields, status and result
	PATCH  /birth/{id}          - Update any subset of the fields
	DELETE /birth/{id}          - Drop the session
	POST   /birth/{id}/generate - Validate and generate numbers
	POST   /birth/{id}/reset    - Clear fields and result

Quiz flow:

	POST   /quiz                         - Start a session on the first question
	GET    /quiz/{id}                    - Current question, answers and result
	DELETE /quiz/{id}                    - Drop the session
	PUT    /quiz/{id}/answers/{question} - Select an option
	POST   /quiz/{id}/next               - Advance, or submit on the last question
	POST   /quiz/{id}/prev               - Go back one question
	POST   /quiz/{id}/reset              - Clear answers and return to the start

Every route except health and root is wrapped in middleware.WithLogging.
*/
package router
