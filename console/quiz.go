// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package console

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/danielhkuo/lotto-gen/lottery"
	"github.com/danielhkuo/lotto-gen/models"
	"github.com/danielhkuo/lotto-gen/validate"
)

// RunQuiz walks the question bank one question at a time. Picking an option
// answers and moves on; the last answer submits the quiz.
func (a *App) RunQuiz(ctx context.Context) (*models.LottoResult, error) {
	session, err := a.Store.NewQuiz()
	if err != nil {
		return nil, err
	}
	defer a.Store.Delete(session.ID())

	for {
		st := session.Snapshot().State
		q := st.Current()

		opts := make([]string, 0, len(q.Options)+2)
		def := -1
		for i, o := range q.Options {
			opts = append(opts, o.Label)
			if o.Value == q.Selected {
				def = i
			}
		}
		if !st.IsFirst() {
			opts = append(opts, LabelPrev)
		}
		opts = append(opts, LabelReset)

		idx, err := a.Prompter.Select(ctx, SelectConfig{
			Message:      fmt.Sprintf("[%d/%d] %s", st.Position(), st.Len(), q.Title),
			Options:      opts,
			DefaultIndex: def,
		})
		if err != nil {
			return nil, err
		}
		if idx < 0 || idx >= len(opts) {
			return nil, fmt.Errorf("invalid selection %d", idx)
		}

		if idx < len(q.Options) {
			if _, err := session.Answer(q.ID, q.Options[idx].Value); err != nil {
				return nil, err
			}
			result, done, err := a.next(ctx, session)
			if err != nil || done {
				return result, err
			}
			continue
		}

		switch opts[idx] {
		case LabelPrev:
			snap, err := session.Prev()
			if err != nil {
				return nil, err
			}
			a.cue(snap)
		case LabelReset:
			session.Reset()
		}
	}
}

// next advances the quiz, submitting it on the last question. done is true
// once there is a result or the user gave up retrying.
func (a *App) next(ctx context.Context, session *lottery.QuizSession) (*models.LottoResult, bool, error) {
	for {
		snap, err := session.Next(ctx)
		if err == nil {
			if snap.Result != nil {
				a.show(snap.Result)
				return snap.Result, true, nil
			}
			a.cue(snap)
			return nil, false, nil
		}

		if verr, ok := validate.AsError(err); ok {
			a.warn(verr.Message())
			return nil, false, nil
		}

		again, err := a.retry(ctx, err)
		if err != nil || !again {
			return nil, true, err
		}
	}
}

// cue marks a move between questions
func (a *App) cue(snap lottery.QuizSnapshot) {
	if snap.Transition != nil && snap.Transition.Animate() {
		fmt.Fprintln(a.Out, stylize("· · ·", a.NoColor, lipgloss.Color("240")))
	}
}
