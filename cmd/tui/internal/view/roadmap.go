package view

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/careercoin/internal/progress"
	"github.com/MrJamesThe3rd/careercoin/internal/roadmap"
)

const progressBarWidth = 30

// RoadmapModel shows the active roadmap and pays out step, check-in and session bonuses.
type RoadmapModel struct {
	CommonModel
	tracker *progress.Tracker

	table table.Model
	steps []roadmap.Step
	job   string

	status string
	failed bool
}

func NewRoadmapModel(tracker *progress.Tracker) RoadmapModel {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "", Width: 3},
			{Title: "Step", Width: 36},
			{Title: "Resources", Width: 40},
		}),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	m := RoadmapModel{tracker: tracker, table: t}
	m.reload()

	return m
}

func (m RoadmapModel) Title() string { return "Roadmap" }

func (m RoadmapModel) ShortHelp() string {
	return "Esc: back | Space: toggle step | c: daily check-in | l: learning session"
}

func (m RoadmapModel) Init() tea.Cmd {
	return nil
}

func (m RoadmapModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressMsg:
		m.status = msg.text
		m.failed = msg.failed
		m.reload()

		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case " ", "enter":
			idx := m.table.Cursor()
			if idx < 0 || idx >= len(m.steps) {
				return m, nil
			}

			return m, m.toggleCmd(m.steps[idx].ID)
		case "c":
			return m, m.checkInCmd()
		case "l":
			return m, m.sessionCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m RoadmapModel) View() string {
	streak := m.tracker.Streak()
	streakLine := fmt.Sprintf("Streak: %d day(s)", streak.Days)

	if m.job == "" {
		content := lipgloss.JoinVertical(lipgloss.Left,
			headerStyle.Render("Roadmap"),
			"",
			faintStyle.Render("No career selected yet. Pick one from the Skills screen."),
			"",
			streakLine,
		)

		return lipgloss.NewStyle().Padding(1).Render(m.withStatus(content))
	}

	pct := m.tracker.Progress()

	content := lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render("Roadmap: "+m.job),
		"",
		fmt.Sprintf("%s %d%%", progressBar(pct, progressBarWidth), pct),
		streakLine,
		"",
		m.table.View(),
	)

	return lipgloss.NewStyle().Padding(1).Render(m.withStatus(content))
}

func (m RoadmapModel) withStatus(content string) string {
	if m.status == "" {
		return content
	}

	style := okStyle
	if m.failed {
		style = errorStyle
	}

	return content + "\n\n" + style.Render(m.status)
}

func (m *RoadmapModel) reload() {
	r, ok := m.tracker.Roadmap()
	if !ok {
		m.job = ""
		m.steps = nil
		m.table.SetRows(nil)

		return
	}

	m.job = r.Job
	m.steps = r.Steps

	rows := make([]table.Row, 0, len(r.Steps))
	for _, step := range r.Steps {
		check := "[ ]"
		if step.Completed {
			check = "[x]"
		}

		names := make([]string, 0, len(step.Resources))
		for _, res := range step.Resources {
			names = append(names, res.Name)
		}

		rows = append(rows, table.Row{
			check,
			step.Emoji + " " + step.Title,
			strings.Join(names, ", "),
		})
	}

	m.table.SetRows(rows)
}

// progressBar draws pct (0 to 100) as a fixed-width bar.
func progressBar(pct, width int) string {
	pct = max(0, min(pct, 100))
	filled := pct * width / 100

	return okStyle.Render(strings.Repeat("█", filled)) + faintStyle.Render(strings.Repeat("░", width-filled))
}

type progressMsg struct {
	text   string
	failed bool
}

func (m RoadmapModel) toggleCmd(stepID int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := OpCtx()
		defer cancel()

		res, err := m.tracker.ToggleStepCompleted(ctx, stepID)
		if err != nil {
			return progressMsg{text: fmt.Sprintf("Error: %v", err), failed: true}
		}

		if res.Award == nil {
			return progressMsg{text: fmt.Sprintf("%s marked incomplete", res.Step.Title)}
		}

		return progressMsg{text: fmt.Sprintf("%s done, +%s coins", res.Step.Title, FormatCoins(res.Award.Amount))}
	}
}

func (m RoadmapModel) checkInCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := OpCtx()
		defer cancel()

		streak, tx, err := m.tracker.IncrementDailyStreak(ctx)

		switch {
		case errors.Is(err, progress.ErrAlreadyCheckedIn):
			return progressMsg{text: "Already checked in today"}
		case err != nil:
			return progressMsg{text: fmt.Sprintf("Error: %v", err), failed: true}
		}

		return progressMsg{text: fmt.Sprintf("Day %d streak, +%s coins", streak.Days, FormatCoins(tx.Amount))}
	}
}

func (m RoadmapModel) sessionCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := OpCtx()
		defer cancel()

		tx, err := m.tracker.AttendLearningSession(ctx)
		if err != nil {
			return progressMsg{text: fmt.Sprintf("Error: %v", err), failed: true}
		}

		return progressMsg{text: fmt.Sprintf("Session logged, +%s coins", FormatCoins(tx.Amount))}
	}
}
