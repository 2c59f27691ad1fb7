package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/carddeck/deck"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	redCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	blackCardStyle = lipgloss.NewStyle().
			Bold(true)

	jokerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true)

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

func renderCard(c deck.Card) string {
	switch {
	case c.Joker:
		return jokerStyle.Render(c.String())
	case c.IsRed():
		return redCardStyle.Render(c.String())
	default:
		return blackCardStyle.Render(c.String())
	}
}

func renderCards(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = renderCard(c)
	}
	return strings.Join(parts, dimStyle.Render(", "))
}
