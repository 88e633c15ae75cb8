package view

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/careercoin/internal/coin"
	"github.com/MrJamesThe3rd/careercoin/internal/export"
)

const defaultExportPath = "./careercoin.xlsx"

type exportState int

const (
	exportStatePeriod exportState = iota
	exportStatePath
	exportStateExporting
	exportStateResult
)

// ExportModel writes the selected transactions to a spreadsheet.
type ExportModel struct {
	CommonModel
	exportService *export.Service

	state  exportState
	err    error
	picker PeriodPicker
	filter coin.HistoryFilter

	form    *huh.Form
	path    string
	spinner spinner.Model
	written string
	summary string
}

func NewExportModel(svc *export.Service) ExportModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return ExportModel{
		exportService: svc,
		picker:        NewPeriodPicker(PeriodThisMonth),
		path:          defaultExportPath,
		spinner:       s,
	}
}

func (m ExportModel) Title() string { return "Export" }

func (m ExportModel) ShortHelp() string {
	switch m.state {
	case exportStateResult:
		return "Esc: back to menu"
	case exportStateExporting:
		return "Exporting..."
	}

	return "Esc: back | Enter: confirm"
}

func (m ExportModel) Init() tea.Cmd {
	return nil
}

func (m ExportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if selected, ok := msg.(PeriodSelectedMsg); ok {
		m.filter = selected.Filter
		m.form = m.buildPathForm()
		m.state = exportStatePath

		return m, m.form.Init()
	}

	switch m.state {
	case exportStatePeriod:
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc && m.picker.IsSelecting() {
			return m, Back
		}

		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)

		return m, cmd
	case exportStatePath:
		return m.updatePath(msg)
	case exportStateExporting:
		if result, ok := msg.(exportResultMsg); ok {
			m.state = exportStateResult
			m.err = result.err
			m.written = result.path
			m.summary = result.summary

			return m, nil
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	case exportStateResult:
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
			return m, Back
		}
	}

	return m, nil
}

func (m ExportModel) updatePath(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = exportStatePeriod
		m.picker.Reset()

		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.state = exportStateExporting
	m.err = nil

	return m, tea.Batch(m.spinner.Tick, m.runExportCmd(m.form.GetString("path")))
}

func (m ExportModel) buildPathForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("path").
				Title("Output file").
				Description("Parent directories are created as needed").
				Placeholder(defaultExportPath).
				Value(&m.path).
				Validate(func(s string) error {
					if ext := strings.ToLower(filepath.Ext(strings.TrimSpace(s))); ext != ".xlsx" {
						return fmt.Errorf("file must end in .xlsx")
					}

					return nil
				}),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m ExportModel) View() string {
	var body string

	switch m.state {
	case exportStatePeriod:
		body = m.picker.View()
	case exportStatePath:
		body = m.form.View()
	case exportStateExporting:
		body = m.spinner.View() + " Writing spreadsheet..."
	case exportStateResult:
		body = m.viewResult()
	}

	return lipgloss.NewStyle().Padding(1).Render(body)
}

func (m ExportModel) viewResult() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", m.err))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		okStyle.Bold(true).Render("Export complete"),
		faintStyle.Render(m.written),
		"",
		m.summary,
	)
}

type exportResultMsg struct {
	path    string
	summary string
	err     error
}

func (m ExportModel) runExportCmd(path string) tea.Cmd {
	filter := m.filter

	return func() tea.Msg {
		path = strings.TrimSpace(path)

		if err := writeExport(m.exportService, filter, path); err != nil {
			return exportResultMsg{err: err}
		}

		return exportResultMsg{path: path, summary: m.exportService.Summary(filter)}
	}
}

func writeExport(svc *export.Service, filter coin.HistoryFilter, path string) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating export directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing export file: %w", cerr)
		}
	}()

	ctx, cancel := OpCtx()
	defer cancel()

	return svc.Export(ctx, filter, f)
}
