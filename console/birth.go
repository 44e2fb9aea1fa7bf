// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package console

import (
	"context"
	"fmt"
	"strconv"

	"github.com/danielhkuo/lotto-gen/lottery"
	"github.com/danielhkuo/lotto-gen/models"
	"github.com/danielhkuo/lotto-gen/validate"
)

// MinYear is the oldest year offered
const MinYear = 1900

var (
	birthFields = []string{validate.FieldName, validate.FieldYear, validate.FieldMonth, validate.FieldDay}
	dateFields  = []string{validate.FieldYear, validate.FieldMonth, validate.FieldDay}
)

// RunBirth asks for a name and birth date and generates numbers from them.
// A nil result with a nil error means the user gave up after a failure.
func (a *App) RunBirth(ctx context.Context) (*models.LottoResult, error) {
	session, _ := a.Store.NewBirth(lottery.BirthPatch{})
	defer a.Store.Delete(session.ID())

	ask := birthFields
	for {
		for _, field := range ask {
			patch, err := a.askBirthField(ctx, field, session.Snapshot().Input)
			if err != nil {
				return nil, err
			}
			if _, err := session.Update(patch); err != nil {
				return nil, err
			}
		}

		snap, err := session.Generate(ctx)
		if err == nil {
			a.show(snap.Result)
			return snap.Result, nil
		}

		if verr, ok := validate.AsError(err); ok {
			a.warn(verr.Message())
			ask = dateFields
			if verr.Field != "" {
				ask = []string{verr.Field}
			}
			continue
		}

		again, err := a.retry(ctx, err)
		if err != nil || !again {
			return nil, err
		}
		ask = nil
	}
}

func (a *App) askBirthField(ctx context.Context, field string, cur validate.BirthInput) (lottery.BirthPatch, error) {
	switch field {
	case validate.FieldName:
		name, err := a.Prompter.Input(ctx, InputConfig{Message: "이름", Default: cur.Name})
		if err != nil {
			return lottery.BirthPatch{}, err
		}
		return lottery.BirthPatch{Name: &name}, nil

	case validate.FieldYear:
		var years []int
		for y := a.now().Year(); y >= MinYear; y-- {
			years = append(years, y)
		}
		year, err := a.selectNumber(ctx, "년도", years, cur.Year)
		return lottery.BirthPatch{Year: &year}, err

	case validate.FieldMonth:
		month, err := a.selectNumber(ctx, "월", numberRange(1, 12), cur.Month)
		return lottery.BirthPatch{Month: &month}, err

	case validate.FieldDay:
		day, err := a.selectNumber(ctx, "일", numberRange(1, 31), cur.Day)
		return lottery.BirthPatch{Day: &day}, err
	}
	return lottery.BirthPatch{}, fmt.Errorf("unknown birth field %q", field)
}

// selectNumber offers values as a select, preselecting cur when present
func (a *App) selectNumber(ctx context.Context, message string, values []int, cur int) (int, error) {
	opts := make([]string, len(values))
	def := -1
	for i, v := range values {
		opts[i] = strconv.Itoa(v)
		if v == cur {
			def = i
		}
	}
	idx, err := a.Prompter.Select(ctx, SelectConfig{
		Message:      message,
		Options:      opts,
		DefaultIndex: def,
		PageSize:     12,
	})
	if err != nil {
		return 0, err
	}
	if idx < 0 || idx >= len(values) {
		return 0, fmt.Errorf("invalid selection %d", idx)
	}
	return values[idx], nil
}

func numberRange(from, to int) []int {
	out := make([]int, 0, to-from+1)
	for n := from; n <= to; n++ {
		out = append(out, n)
	}
	return out
}
