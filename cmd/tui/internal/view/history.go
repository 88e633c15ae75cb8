package view

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/careercoin/internal/coin"
	"github.com/MrJamesThe3rd/careercoin/internal/ledger"
)

type historyState int

const (
	historyStateBrowse historyState = iota
	historyStateEarn
)

var (
	kindLabels     = []string{"All", "Earned", "Redeemed"}
	historyPeriods = []Period{PeriodAll, PeriodToday, PeriodThisWeek, PeriodThisMonth, PeriodLast30Days}
)

// HistoryModel shows the wallet, the balance and the transaction log.
type HistoryModel struct {
	CommonModel
	coins *coin.Service

	state historyState
	table table.Model
	txs   []ledger.Transaction
	form  *huh.Form

	kindFilterIdx int
	periodIdx     int
	filter        coin.HistoryFilter

	status string

	formAmount string
	formDesc   string
}

func NewHistoryModel(coins *coin.Service) HistoryModel {
	columns := []table.Column{
		{Title: "Date", Width: 17},
		{Title: "Type", Width: 9},
		{Title: "Amount", Width: 9},
		{Title: "Description", Width: 40},
		{Title: "Reference", Width: 18},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	m := HistoryModel{coins: coins, table: t}
	m.reload()

	return m
}

func (m HistoryModel) Title() string { return "Wallet & History" }

func (m HistoryModel) ShortHelp() string {
	if m.state == historyStateEarn {
		return "Navigate form | Esc: cancel"
	}

	return "Esc: back | k: kind | d: date | e: earn | w: connect wallet | x: disconnect | r: refresh"
}

func (m HistoryModel) Init() tea.Cmd {
	return nil
}

func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case walletMsg:
		m.status = msg.text
		m.reload()

		return m, nil
	case earnMsg:
		m.state = historyStateBrowse
		m.form = nil
		m.status = msg.text
		m.table.Focus()
		m.reload()

		return m, nil
	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 12)
		return m, nil
	}

	if m.state == historyStateEarn {
		return m.updateEarn(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.reload()
			return m, nil
		case "k":
			m.kindFilterIdx = (m.kindFilterIdx + 1) % len(kindLabels)
			m.applyFilter(time.Now())
			m.reload()

			return m, nil
		case "d":
			m.periodIdx = (m.periodIdx + 1) % len(historyPeriods)
			m.applyFilter(time.Now())
			m.reload()

			return m, nil
		case "w":
			return m, m.connectCmd()
		case "x":
			return m, m.disconnectCmd()
		case "e":
			return m.enterEarnMode()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m HistoryModel) enterEarnMode() (tea.Model, tea.Cmd) {
	m.formAmount = ""
	m.formDesc = ""

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("amount").
				Title("Coins").
				Value(&m.formAmount).
				Validate(func(s string) error {
					n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
					if err != nil || n <= 0 {
						return fmt.Errorf("enter a positive whole number")
					}

					return nil
				}),

			huh.NewInput().
				Key("description").
				Title("Reason").
				Value(&m.formDesc),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = historyStateEarn
	m.table.Blur()

	return m, m.form.Init()
}

func (m HistoryModel) updateEarn(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = historyStateBrowse
		m.form = nil
		m.table.Focus()

		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.earnCmd(m.form.GetString("amount"), m.form.GetString("description"))
}

func (m HistoryModel) View() string {
	snap := m.coins.Snapshot()

	wallet := faintStyle.Render("not connected")
	if snap.Wallet.Connected {
		wallet = okStyle.Render(snap.Wallet.Address)
	}

	summary := fmt.Sprintf(
		"%s  Balance: %s | Earned: %s | Redeemed: %s\nWallet: %s",
		headerStyle.Render("CareerCoin"),
		FormatCoins(snap.Balance),
		FormatCoins(snap.TotalEarned),
		FormatCoins(snap.TotalRedeemed),
		wallet,
	)

	filters := fmt.Sprintf(
		"Filter: [k] Kind: %s | [d] Date: %s",
		activeStyle(kindLabels[m.kindFilterIdx]),
		activeStyle(historyPeriods[m.periodIdx].String()),
	)

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(summary),
		lipgloss.NewStyle().PaddingBottom(1).Render(filters),
		tableView,
	)

	if m.state == historyStateEarn && m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render("Award Coins\n\n" + m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = faintStyle.Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *HistoryModel) applyFilter(now time.Time) {
	switch m.kindFilterIdx {
	case 1:
		m.filter.Kind = new(ledger.KindEarned)
	case 2:
		m.filter.Kind = new(ledger.KindRedeemed)
	default:
		m.filter.Kind = nil
	}

	window := historyPeriods[m.periodIdx].Filter(now)
	m.filter.StartDate = window.StartDate
	m.filter.EndDate = window.EndDate
}

func (m *HistoryModel) reload() {
	m.txs = m.coins.History(m.filter)

	rows := make([]table.Row, 0, len(m.txs))
	for _, tx := range m.txs {
		amount := "+" + FormatCoins(tx.Amount)
		if tx.Kind == ledger.KindRedeemed {
			amount = "-" + FormatCoins(tx.Amount)
		}

		rows = append(rows, table.Row{
			FormatDate(tx.Timestamp),
			string(tx.Kind),
			amount,
			tx.Description,
			tx.Reference,
		})
	}

	m.table.SetRows(rows)
}

// Messages

type walletMsg struct {
	text string
}

func (m HistoryModel) connectCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := OpCtx()
		defer cancel()

		w, err := m.coins.ConnectWallet(ctx)
		if err != nil {
			return walletMsg{text: fmt.Sprintf("Wallet connection failed: %v", err)}
		}

		return walletMsg{text: "Connected " + w.Address}
	}
}

func (m HistoryModel) disconnectCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := OpCtx()
		defer cancel()

		if err := m.coins.DisconnectWallet(ctx); err != nil {
			return walletMsg{text: fmt.Sprintf("Disconnect failed: %v", err)}
		}

		return walletMsg{text: "Wallet disconnected"}
	}
}

type earnMsg struct {
	text string
}

func (m HistoryModel) earnCmd(amount, desc string) tea.Cmd {
	return func() tea.Msg {
		n, err := strconv.ParseInt(strings.TrimSpace(amount), 10, 64)
		if err != nil {
			return earnMsg{text: fmt.Sprintf("Invalid amount: %v", err)}
		}

		ctx, cancel := OpCtx()
		defer cancel()

		if _, err := m.coins.EarnCoins(ctx, n, desc); err != nil {
			return earnMsg{text: fmt.Sprintf("Error: %v", err)}
		}

		return earnMsg{text: fmt.Sprintf("Awarded %s coins", FormatCoins(n))}
	}
}
