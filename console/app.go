// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/danielhkuo/lotto-gen/generator"
	"github.com/danielhkuo/lotto-gen/lottery"
	"github.com/danielhkuo/lotto-gen/models"
)

// Labels shown to the user
const (
	LabelBirthMode = "생일로 만들기"
	LabelQuizMode  = "심리테스트로 만들기"
	LabelPrev      = "이전"
	LabelReset     = "초기화"
)

const (
	promptMode  = "어떻게 번호를 만들까요?"
	promptRetry = "다시 시도할까요?"
	promptAgain = "한 번 더 만들어볼까요?"
)

// App runs the birth and quiz rituals against a session store
type App struct {
	Store    *lottery.Store
	Prompter Prompter
	Out      io.Writer
	NoColor  bool
	Now      func() time.Time
}

// Run lets the user pick a ritual until they stop or interrupt
func (a *App) Run(ctx context.Context) error {
	for {
		idx, err := a.Prompter.Select(ctx, SelectConfig{
			Message:      promptMode,
			Options:      []string{LabelBirthMode, LabelQuizMode},
			DefaultIndex: -1,
		})
		if err != nil {
			return quiet(err)
		}

		switch idx {
		case 0:
			_, err = a.RunBirth(ctx)
		case 1:
			_, err = a.RunQuiz(ctx)
		default:
			return fmt.Errorf("invalid selection %d", idx)
		}
		if err != nil {
			return quiet(err)
		}

		again, err := a.Prompter.Confirm(ctx, ConfirmConfig{Message: promptAgain, Default: true})
		if err != nil {
			return quiet(err)
		}
		if !again {
			return nil
		}
	}
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) warn(msg string) {
	fmt.Fprintln(a.Out, stylize("! "+msg, a.NoColor, lipgloss.Color("203")))
}

func (a *App) show(r *models.LottoResult) {
	fmt.Fprintln(a.Out, RenderResult(*r, a.NoColor))
}

// retry reports a generation failure and asks whether to try again.
// Other errors are returned as is.
func (a *App) retry(ctx context.Context, err error) (bool, error) {
	var gerr *generator.Error
	if !errors.As(err, &gerr) {
		return false, err
	}
	a.warn(gerr.Error())
	return a.Prompter.Confirm(ctx, ConfirmConfig{Message: promptRetry, Default: true})
}

// quiet turns an interrupt into a clean exit
func quiet(err error) error {
	if errors.Is(err, ErrAborted) {
		return nil
	}
	return err
}
