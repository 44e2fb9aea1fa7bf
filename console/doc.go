// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package console is the terminal client for lotto-gen.

It drives the same session store as the HTTP API, in process:

	app := &console.App{
		Store:    store,
		Prompter: console.NewSurveyPrompter(),
		Out:      os.Stdout,
	}
	err := app.Run(ctx)

# Prompts

Prompter hides the terminal library so flows can be tested with a scripted
stub. NewSurveyPrompter returns the survey implementation; Ctrl-C surfaces
as ErrAborted and ends Run cleanly.

# Flows

RunBirth asks for the name, year, month and day, then generates. A
validation warning re-asks only the field at fault (all date fields for a
future date). A generation failure prints the generic message and offers a
retry.

RunQuiz shows one question at a time as a select. Picking an option answers
it and moves on; the last answer submits. 이전 goes back one question and
초기화 clears every answer.

Results are rendered with lipgloss as colored balls in a rounded box, or as
plain text when NoColor is set.
*/
package console
