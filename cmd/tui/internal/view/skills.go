package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/careercoin/internal/skills"
)

type skillsState int

const (
	skillsStateBrowse skillsState = iota
	skillsStateAdd
	skillsStateSelect
)

// SkillsModel edits the skill profile and picks a career path.
type SkillsModel struct {
	CommonModel
	svc *skills.Service

	state   skillsState
	form    *huh.Form
	cursor  int
	matches []string

	formSkill  string
	formCareer string

	status string
	failed bool
}

func NewSkillsModel(svc *skills.Service) SkillsModel {
	return SkillsModel{svc: svc}
}

func (m SkillsModel) Title() string { return "Skills" }

func (m SkillsModel) ShortHelp() string {
	if m.state != skillsStateBrowse {
		return "Navigate form | Esc: cancel"
	}

	return "Esc: back | a: add skill | d: remove | s: select career | f: refer a friend"
}

func (m SkillsModel) Init() tea.Cmd {
	return m.matchesCmd()
}

func (m SkillsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case matchesMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error loading matches: %v", msg.err)
			m.failed = true

			return m, nil
		}

		m.matches = msg.careers

		return m, nil
	case skillsMsg:
		m.state = skillsStateBrowse
		m.form = nil
		m.status = msg.text
		m.failed = msg.failed

		if n := len(m.svc.Profile().Skills); m.cursor >= n {
			m.cursor = max(n-1, 0)
		}

		return m, m.matchesCmd()
	}

	if m.state != skillsStateBrowse {
		return m.updateForm(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	owned := m.svc.Profile().Skills

	switch keyMsg.String() {
	case "esc":
		return m, Back
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(owned)-1 {
			m.cursor++
		}
	case "a":
		return m.enterAddMode()
	case "d", "delete":
		if m.cursor < len(owned) {
			return m, m.removeCmd(owned[m.cursor])
		}
	case "s":
		return m.enterSelectMode()
	case "f":
		return m, m.referCmd()
	}

	return m, nil
}

func (m SkillsModel) enterAddMode() (tea.Model, tea.Cmd) {
	m.formSkill = ""

	input := huh.NewInput().
		Key("skill").
		Title("Skill").
		Value(&m.formSkill)

	if suggested := m.svc.Suggestions(""); len(suggested) > 0 {
		input = input.
			Description("Try: " + strings.Join(suggested, ", ")).
			Suggestions(suggested)
	}

	m.form = huh.NewForm(huh.NewGroup(input)).WithWidth(50).WithShowHelp(false)
	m.state = skillsStateAdd

	return m, m.form.Init()
}

func (m SkillsModel) enterSelectMode() (tea.Model, tea.Cmd) {
	options := careerOptions(m.matches, m.svc.Profile().DreamJob)
	if len(options) == 0 {
		m.status = "Add a few skills first to get career matches"
		m.failed = true

		return m, nil
	}

	m.formCareer = options[0].Value

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("career").
				Title("Career path").
				Options(options...).
				Value(&m.formCareer),
		),
	).WithWidth(50).WithShowHelp(false)
	m.state = skillsStateSelect

	return m, m.form.Init()
}

// careerOptions lists matches first and keeps the current dream job selectable.
func careerOptions(matches []string, dreamJob string) []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(matches)+1)

	seen := make(map[string]bool, len(matches)+1)
	for _, c := range matches {
		if seen[c] {
			continue
		}

		seen[c] = true
		options = append(options, huh.NewOption(c, c))
	}

	if dreamJob != "" && !seen[dreamJob] {
		options = append(options, huh.NewOption(dreamJob+" (current)", dreamJob))
	}

	return options
}

func (m SkillsModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = skillsStateBrowse
		m.form = nil

		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	if m.state == skillsStateAdd {
		return m, m.addCmd(m.form.GetString("skill"))
	}

	return m, m.selectCmd(m.form.GetString("career"))
}

func (m SkillsModel) View() string {
	p := m.svc.Profile()

	dream := faintStyle.Render("none")
	if p.DreamJob != "" {
		dream = activeStyle(p.DreamJob)
	}

	var b strings.Builder

	b.WriteString(headerStyle.Render("Your skills"))
	b.WriteString("\n\n")

	if len(p.Skills) == 0 {
		b.WriteString(faintStyle.Render("No skills yet. Press a to add one."))
		b.WriteString("\n")
	}

	for i, s := range p.Skills {
		prefix := "  "
		if i == m.cursor {
			prefix = activeStyle("> ")
		}

		b.WriteString(prefix + s + "\n")
	}

	b.WriteString("\nDream job: " + dream + "\n")

	if len(m.matches) > 0 {
		b.WriteString("Matching careers: " + strings.Join(m.matches, ", ") + "\n")
	}

	content := b.String()

	if m.form != nil {
		title := "Add Skill"
		if m.state == skillsStateSelect {
			title = "Select Career"
		}

		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(54).
			Render(title + "\n\n" + m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, "  ", panel)
	}

	if m.status != "" {
		style := okStyle
		if m.failed {
			style = errorStyle
		}

		content += "\n" + style.Render(m.status)
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

type matchesMsg struct {
	careers []string
	err     error
}

func (m SkillsModel) matchesCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := OpCtx()
		defer cancel()

		careers, err := m.svc.Matches(ctx)

		return matchesMsg{careers: careers, err: err}
	}
}

type skillsMsg struct {
	text   string
	failed bool
}

func (m SkillsModel) addCmd(skill string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := OpCtx()
		defer cancel()

		tx, err := m.svc.AddSkill(ctx, skill)
		if err != nil {
			return skillsMsg{text: fmt.Sprintf("Error: %v", err), failed: true}
		}

		if tx == nil {
			return skillsMsg{text: strings.TrimSpace(skill) + " is already on your list"}
		}

		return skillsMsg{text: fmt.Sprintf("Added %s, +%s coins", strings.TrimSpace(skill), FormatCoins(tx.Amount))}
	}
}

func (m SkillsModel) removeCmd(skill string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := OpCtx()
		defer cancel()

		if _, err := m.svc.RemoveSkill(ctx, skill); err != nil {
			return skillsMsg{text: fmt.Sprintf("Error: %v", err), failed: true}
		}

		return skillsMsg{text: "Removed " + skill}
	}
}

func (m SkillsModel) selectCmd(career string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := OpCtx()
		defer cancel()

		r, tx, err := m.svc.SelectCareer(ctx, career)
		if err != nil {
			return skillsMsg{text: fmt.Sprintf("Error: %v", err), failed: true}
		}

		return skillsMsg{text: fmt.Sprintf("Now heading for %s (%d steps), +%s coins", r.Job, len(r.Steps), FormatCoins(tx.Amount))}
	}
}

func (m SkillsModel) referCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := OpCtx()
		defer cancel()

		tx, err := m.svc.ReferFriend(ctx)
		if err != nil {
			return skillsMsg{text: fmt.Sprintf("Error: %v", err), failed: true}
		}

		return skillsMsg{text: fmt.Sprintf("Thanks for spreading the word, +%s coins", FormatCoins(tx.Amount))}
	}
}
