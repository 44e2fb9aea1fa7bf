// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package console

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/danielhkuo/lotto-gen/models"
)

// ballColor follows the colors printed on the official draw balls
func ballColor(n int) lipgloss.Color {
	switch {
	case n <= 10:
		return lipgloss.Color("220")
	case n <= 20:
		return lipgloss.Color("33")
	case n <= 30:
		return lipgloss.Color("160")
	case n <= 40:
		return lipgloss.Color("245")
	}
	return lipgloss.Color("34")
}

// RenderResult formats a result for the terminal
func RenderResult(r models.LottoResult, noColor bool) string {
	var title string
	switch r.Type {
	case models.ResultBirth:
		title = fmt.Sprintf("%s님의 행운 번호 (%s)", r.Name, r.Birth)
	default:
		title = "심리테스트 행운 번호"
	}

	balls := make([]string, len(r.Numbers))
	for i, n := range r.Numbers {
		balls[i] = renderBall(n, noColor)
	}
	body := title + "\n" + strings.Join(balls, " ")

	if noColor {
		return body
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1).
		Render(body)
}

func renderBall(n int, noColor bool) string {
	text := fmt.Sprintf("%2d", n)
	if noColor {
		return text
	}
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("231")).
		Background(ballColor(n)).
		Padding(0, 1).
		Render(text)
}

// stylize applies an optional foreground color
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
