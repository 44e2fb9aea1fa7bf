// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package catalog loads the quiz question bank.

# Sources

Load picks one source, in order of precedence:

 1. A SQL database (postgres or sqlite), tables quiz_question and quiz_option
 2. A YAML file
 3. The built-in default.yaml

An empty database is seeded from the file or the default on first start.

# YAML Format

	questions:
	  - id: 1
	    title: 가장 좋아하는 계절은?
	    options:
	      - label: 봄
	        value: A
	      - label: 여름
	        value: B

Unknown keys are errors. Question ids must be unique and every option value
must be non-empty and unique within its question.

# Sanitizing

Titles and labels are reduced to plain text with bluemonday's strict policy.
Values are concatenated into the quiz seed, so they are never rewritten.
*/
package catalog
