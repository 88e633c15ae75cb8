package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/careercoin/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/careercoin/internal/app"
	"github.com/MrJamesThe3rd/careercoin/internal/config"
	"github.com/MrJamesThe3rd/careercoin/internal/logging"
)

const logFile = "careercoin-tui.log"

type model struct {
	app *app.App

	currentView View

	historyView view.HistoryModel
	rewardsView view.RewardsModel
	roadmapView view.RoadmapModel
	skillsView  view.SkillsModel
	exportView  view.ExportModel
	importView  view.ImportModel
}

type View int

const (
	ViewMenu    View = 0
	ViewHistory View = 1
	ViewRewards View = 2
	ViewRoadmap View = 3
	ViewSkills  View = 4
	ViewExport  View = 5
	ViewImport  View = 6
)

func initialModel(a *app.App) model {
	return model{app: a, currentView: ViewMenu}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.currentView == ViewMenu {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewHistory
				m.historyView = view.NewHistoryModel(m.app.Coins)

				return m, m.historyView.Init()
			case "2":
				m.currentView = ViewRewards
				m.rewardsView = view.NewRewardsModel(m.app.Coins)

				return m, m.rewardsView.Init()
			case "3":
				m.currentView = ViewRoadmap
				m.roadmapView = view.NewRoadmapModel(m.app.Tracker)

				return m, m.roadmapView.Init()
			case "4":
				m.currentView = ViewSkills
				m.skillsView = view.NewSkillsModel(m.app.Skills)

				return m, m.skillsView.Init()
			case "5":
				m.currentView = ViewExport
				m.exportView = view.NewExportModel(m.app.Export)

				return m, m.exportView.Init()
			case "6":
				m.currentView = ViewImport
				m.importView = view.NewImportModel(m.app.Importer)

				return m, m.importView.Init()
			}

			return m, nil
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewHistory:
		var newModel tea.Model
		newModel, cmd = m.historyView.Update(msg)
		m.historyView = newModel.(view.HistoryModel)
	case ViewRewards:
		var newModel tea.Model
		newModel, cmd = m.rewardsView.Update(msg)
		m.rewardsView = newModel.(view.RewardsModel)
	case ViewRoadmap:
		var newModel tea.Model
		newModel, cmd = m.roadmapView.Update(msg)
		m.roadmapView = newModel.(view.RoadmapModel)
	case ViewSkills:
		var newModel tea.Model
		newModel, cmd = m.skillsView.Update(msg)
		m.skillsView = newModel.(view.SkillsModel)
	case ViewExport:
		var newModel tea.Model
		newModel, cmd = m.exportView.Update(msg)
		m.exportView = newModel.(view.ExportModel)
	case ViewImport:
		var newModel tea.Model
		newModel, cmd = m.importView.Update(msg)
		m.importView = newModel.(view.ImportModel)
	}

	return m, cmd
}

func (m model) View() string {
	var (
		body string
		help string
	)

	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf(
			"CareerCoin  %s coins\n\n"+
				"1. Wallet & History\n"+
				"2. Rewards\n"+
				"3. Roadmap\n"+
				"4. Skills\n"+
				"5. Export\n"+
				"6. Import Awards\n\n"+
				"q. Quit",
			view.FormatCoins(m.app.Coins.Balance()),
		))
	case ViewHistory:
		body, help = m.historyView.View(), m.historyView.ShortHelp()
	case ViewRewards:
		body, help = m.rewardsView.View(), m.rewardsView.ShortHelp()
	case ViewRoadmap:
		body, help = m.roadmapView.View(), m.roadmapView.ShortHelp()
	case ViewSkills:
		body, help = m.skillsView.View(), m.skillsView.ShortHelp()
	case ViewExport:
		body, help = m.exportView.View(), m.exportView.ShortHelp()
	case ViewImport:
		body, help = m.importView.View(), m.importView.ShortHelp()
	default:
		return "Unknown View"
	}

	return body + "\n" + lipgloss.NewStyle().Faint(true).PaddingLeft(1).Render(help)
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// The terminal belongs to the UI, so logs go to a file.
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		slog.Error("failed to open log file", "error", err)
		os.Exit(1)
	}
	defer f.Close()

	logging.SetupWriter(f, cfg.App.LogLevel)

	a, err := app.New(context.Background(), cfg)
	if err != nil {
		slog.Error("failed to start services", "error", err)
		fmt.Fprintln(os.Stderr, "failed to start services:", err)
		os.Exit(1)
	}
	defer a.Close()

	p := tea.NewProgram(initialModel(a), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
	}
}
