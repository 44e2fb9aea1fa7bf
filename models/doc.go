// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - BirthFieldsRequest: name, year, month, day (each optional)
  - AnswerRequest: value

# Response Types

Types for JSON responses:

  - BirthSessionResponse: id, input, status, result, failure
  - QuizSessionResponse: id, phase, status, current question, transition, result
  - QuestionsResponse: the question bank
  - ErrorResponse: error, message, code, field

# Domain Types

LottoResult is a tagged union over Type:

	{"type": "BIRTH", "numbers": [3, 11, 19, 27, 33, 42], "name": "홍길동", "birth": "1999-12-31"}
	{"type": "PSY", "numbers": [1, 7, 13, 22, 30, 41]}

Only successful generations produce a LottoResult. The session that created
it owns it until reset.

# Constants

Result kinds:

	ResultBirth = "BIRTH"
	ResultPsy   = "PSY"

Submission status:

	StatusIdle    = "idle"
	StatusLoading = "loading"
	StatusSuccess = "success"
	StatusFailed  = "failed"
*/
package models
