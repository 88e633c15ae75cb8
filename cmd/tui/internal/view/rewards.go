package view

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/careercoin/internal/coin"
	"github.com/MrJamesThe3rd/careercoin/internal/reward"
)

var categoryFilters = []reward.Category{
	"",
	reward.CategoryCourse,
	reward.CategoryReview,
	reward.CategoryInterview,
	reward.CategoryMentorship,
}

// RewardsModel lists the catalog and redeems the selected item.
type RewardsModel struct {
	CommonModel
	coins *coin.Service

	table       table.Model
	items       []reward.Item
	categoryIdx int

	status string
	failed bool
}

func NewRewardsModel(coins *coin.Service) RewardsModel {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Reward", Width: 32},
			{Title: "Category", Width: 12},
			{Title: "Cost", Width: 8},
			{Title: "Status", Width: 12},
		}),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	s := table.DefaultStyles()
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	m := RewardsModel{coins: coins, table: t}
	m.reload()

	return m
}

func (m RewardsModel) Title() string { return "Rewards" }

func (m RewardsModel) ShortHelp() string {
	return "Esc: back | Enter: redeem | c: category"
}

func (m RewardsModel) Init() tea.Cmd {
	return nil
}

func (m RewardsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case redeemMsg:
		m.status = msg.text
		m.failed = msg.failed
		m.reload()

		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "c":
			m.categoryIdx = (m.categoryIdx + 1) % len(categoryFilters)
			m.reload()

			return m, nil
		case "enter":
			idx := m.table.Cursor()
			if idx < 0 || idx >= len(m.items) {
				return m, nil
			}

			return m, m.redeemCmd(m.items[idx])
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m RewardsModel) View() string {
	category := "All"
	if c := categoryFilters[m.categoryIdx]; c != "" {
		category = string(c)
	}

	header := fmt.Sprintf("%s  Balance: %s coins\nFilter: [c] Category: %s",
		headerStyle.Render("Rewards"),
		FormatCoins(m.coins.Balance()),
		activeStyle(category),
	)

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		m.table.View(),
	)

	if m.status != "" {
		style := okStyle
		if m.failed {
			style = errorStyle
		}

		content += "\n\n" + style.Render(m.status)
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *RewardsModel) reload() {
	catalog := m.coins.Catalog()

	if c := categoryFilters[m.categoryIdx]; c != "" {
		m.items = catalog.ByCategory(c)
	} else {
		m.items = catalog.Items()
	}

	balance := m.coins.Balance()

	rows := make([]table.Row, 0, len(m.items))
	for _, item := range m.items {
		rows = append(rows, table.Row{
			item.Title,
			string(item.Category),
			FormatCoins(item.Cost),
			itemStatus(item, balance),
		})
	}

	m.table.SetRows(rows)
}

func itemStatus(item reward.Item, balance int64) string {
	switch {
	case !item.Available:
		return "unavailable"
	case item.Cost > balance:
		return "need " + FormatCoins(item.Cost-balance)
	default:
		return "ready"
	}
}

type redeemMsg struct {
	text   string
	failed bool
}

func (m RewardsModel) redeemCmd(item reward.Item) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := OpCtx()
		defer cancel()

		_, err := m.coins.Redeem(ctx, item.ID)

		switch {
		case err == nil:
			return redeemMsg{text: fmt.Sprintf("Redeemed %s for %s coins", item.Title, FormatCoins(item.Cost))}
		case errors.Is(err, coin.ErrInsufficientBalance):
			return redeemMsg{text: "Not enough coins for " + item.Title, failed: true}
		case errors.Is(err, coin.ErrItemUnavailable):
			return redeemMsg{text: item.Title + " is not available", failed: true}
		default:
			return redeemMsg{text: fmt.Sprintf("Error: %v", err), failed: true}
		}
	}
}
