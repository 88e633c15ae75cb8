package view

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/careercoin/internal/importer"
)

const importTimeout = 2 * time.Minute

type importState int

const (
	importStateFilePick importState = iota
	importStateImporting
	importStateResult
)

// ImportModel picks a partner award file and credits its rows.
type ImportModel struct {
	CommonModel
	importService *importer.Service

	state      importState
	filePicker filepicker.Model

	status string
	err    error
}

func NewImportModel(svc *importer.Service) ImportModel {
	fp := filepicker.New()
	fp.CurrentDirectory, _ = os.Getwd()
	fp.AllowedTypes = []string{".csv", ".txt"}
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.SetHeight(15)

	return ImportModel{importService: svc, filePicker: fp}
}

func (m ImportModel) Title() string { return "Import Awards" }

func (m ImportModel) ShortHelp() string {
	return "Esc: back | Enter: select"
}

func (m ImportModel) Init() tea.Cmd {
	return m.filePicker.Init()
}

func (m ImportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc && m.state != importStateImporting {
			return m, Back
		}
	case importResultMsg:
		m.state = importStateResult
		m.err = msg.err
		m.status = fmt.Sprintf("Imported %d award(s) worth %s coins.", msg.result.Applied, FormatCoins(msg.result.Coins))

		return m, nil
	}

	if m.state != importStateFilePick {
		return m, nil
	}

	var cmd tea.Cmd
	m.filePicker, cmd = m.filePicker.Update(msg)

	if didSelect, path := m.filePicker.DidSelectFile(msg); didSelect {
		m.state = importStateImporting
		return m, m.importCmd(path)
	}

	return m, cmd
}

func (m ImportModel) View() string {
	var body string

	switch m.state {
	case importStateFilePick:
		body = "Pick an award file (.csv)\n\n" + m.filePicker.View()
	case importStateImporting:
		body = "Importing..."
	case importStateResult:
		body = okStyle.Render(m.status)
		if m.err != nil {
			body += "\n\n" + errorStyle.Render(fmt.Sprintf("Error: %v", m.err))
		}
	}

	return lipgloss.NewStyle().Padding(1).Render(body)
}

type importResultMsg struct {
	result importer.Result
	err    error
}

func (m ImportModel) importCmd(path string) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return importResultMsg{err: err}
		}
		defer f.Close()

		ctx, cancel := context.WithTimeout(context.Background(), importTimeout)
		defer cancel()

		res, err := m.importService.Import(ctx, f)

		return importResultMsg{result: res, err: err}
	}
}
