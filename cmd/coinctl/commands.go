package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/MrJamesThe3rd/careercoin/internal/coin"
	"github.com/MrJamesThe3rd/careercoin/internal/ledger"
	"github.com/MrJamesThe3rd/careercoin/internal/progress"
	"github.com/MrJamesThe3rd/careercoin/internal/reward"
)

const dateLayout = "2006-01-02"

var printer = message.NewPrinter(language.English)

var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// renderTable lays rows out under headers with a rule below the header row only.
func renderTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		StyleFunc(func(_, _ int) lipgloss.Style { return cellStyle }).
		Headers(headers...).
		Rows(rows...).
		String()
}

func (c *cli) balanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show the balance, totals and wallet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			snap := c.app.Coins.Snapshot()
			out := cmd.OutOrStdout()

			printer.Fprintf(out, "Balance:        %d coins\n", snap.Balance)
			printer.Fprintf(out, "Total earned:   %d coins\n", snap.TotalEarned)
			printer.Fprintf(out, "Total redeemed: %d coins\n", snap.TotalRedeemed)
			printer.Fprintf(out, "Transactions:   %d\n", snap.Transactions)

			if snap.Wallet.Connected {
				fmt.Fprintf(out, "Wallet:         %s\n", snap.Wallet.Address)
			} else {
				fmt.Fprintln(out, "Wallet:         not connected")
			}

			return nil
		},
	}
}

func (c *cli) historyCmd() *cobra.Command {
	var kind, from, to string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List transactions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter, err := parseFilter(kind, from, to, time.Local)
			if err != nil {
				return err
			}

			txs := c.app.Coins.History(filter)
			if len(txs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No transactions.")
				return nil
			}

			rows := make([][]string, 0, len(txs))

			for _, tx := range txs {
				amount := printer.Sprintf("+%d", tx.Amount)
				if tx.Kind == ledger.KindRedeemed {
					amount = printer.Sprintf("-%d", tx.Amount)
				}

				rows = append(rows, []string{
					tx.Timestamp.Local().Format("2006-01-02 15:04"), string(tx.Kind), amount, tx.Description, tx.Reference,
				})
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"DATE", "TYPE", "AMOUNT", "DESCRIPTION", "REFERENCE"}, rows))

			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "", "only earned or redeemed")
	cmd.Flags().StringVar(&from, "from", "", "first day, YYYY-MM-DD")
	cmd.Flags().StringVar(&to, "to", "", "last day, YYYY-MM-DD")

	return cmd
}

// parseFilter builds a history filter from flag values. Dates are whole days in loc.
func parseFilter(kind, from, to string, loc *time.Location) (coin.HistoryFilter, error) {
	var f coin.HistoryFilter

	switch k := ledger.Kind(strings.ToLower(strings.TrimSpace(kind))); k {
	case "":
	case ledger.KindEarned, ledger.KindRedeemed:
		f.Kind = &k
	default:
		return f, fmt.Errorf("unknown kind %q, want earned or redeemed", kind)
	}

	if from != "" {
		start, err := time.ParseInLocation(dateLayout, from, loc)
		if err != nil {
			return f, fmt.Errorf("parsing --from: %w", err)
		}

		f.StartDate = &start
	}

	if to != "" {
		day, err := time.ParseInLocation(dateLayout, to, loc)
		if err != nil {
			return f, fmt.Errorf("parsing --to: %w", err)
		}

		end := day.AddDate(0, 0, 1).Add(-time.Nanosecond)
		f.EndDate = &end
	}

	if f.StartDate != nil && f.EndDate != nil && f.StartDate.After(*f.EndDate) {
		return f, errors.New("--from is after --to")
	}

	return f, nil
}

func (c *cli) earnCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "earn AMOUNT DESCRIPTION...",
		Short: "Award coins",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("parsing amount: %w", err)
			}

			tx, err := c.app.Coins.EarnCoins(cmd.Context(), amount, strings.Join(args[1:], " "))
			if err != nil {
				return err
			}

			printer.Fprintf(cmd.OutOrStdout(), "Earned %d coins (%s). Balance: %d\n", tx.Amount, tx.ID, c.app.Coins.Balance())

			return nil
		},
	}
}

func (c *cli) redeemCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "redeem ITEM_ID",
		Short: "Spend coins on a reward",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tx, err := c.app.Coins.Redeem(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			printer.Fprintf(cmd.OutOrStdout(), "%s: -%d coins. Balance: %d\n", tx.Description, tx.Amount, c.app.Coins.Balance())

			return nil
		},
	}
}

func (c *cli) rewardsCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "rewards",
		Short: "List the reward catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog := c.app.Coins.Catalog()

			items := catalog.Items()
			if category != "" {
				cat := reward.Category(category)
				if !cat.Valid() {
					return fmt.Errorf("unknown category %q", category)
				}

				items = catalog.ByCategory(cat)
			}

			rows := make([][]string, 0, len(items))
			for _, it := range items {
				rows = append(rows, []string{it.ID, it.Title, string(it.Category), printer.Sprintf("%d", it.Cost), strconv.FormatBool(it.Available)})
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"ID", "TITLE", "CATEGORY", "COST", "AVAILABLE"}, rows))

			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "course, review, interview or mentorship")

	return cmd
}

func (c *cli) walletCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallet",
		Short: "Connect or disconnect the external wallet",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "connect",
			Short: "Connect a wallet, replacing any current one",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				w, err := c.app.Coins.ConnectWallet(cmd.Context())
				if err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), "Connected", w.Address)

				return nil
			},
		},
		&cobra.Command{
			Use:   "disconnect",
			Short: "Forget the connected wallet",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				if err := c.app.Coins.DisconnectWallet(cmd.Context()); err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), "Wallet disconnected")

				return nil
			},
		},
	)

	return cmd
}

func (c *cli) checkInCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "checkin",
		Short: "Record today's check-in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			streak, tx, err := c.app.Tracker.IncrementDailyStreak(cmd.Context())
			if errors.Is(err, progress.ErrAlreadyCheckedIn) {
				fmt.Fprintf(cmd.OutOrStdout(), "Already checked in today (%d day streak)\n", streak.Days)
				return nil
			}

			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Day %d streak, +%d coins\n", streak.Days, tx.Amount)

			return nil
		},
	}
}

func (c *cli) roadmapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roadmap",
		Short: "Show the active roadmap",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, ok := c.app.Tracker.Roadmap()
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "No career selected.")
				return nil
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%d%%)\n", r.Job, r.Progress())

			for _, s := range r.Steps {
				mark := " "
				if s.Completed {
					mark = "x"
				}

				fmt.Fprintf(out, "[%s] %d. %s %s\n", mark, s.ID, s.Emoji, s.Title)
			}

			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "toggle STEP_ID",
		Short: "Mark a step done or not done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("parsing step id: %w", err)
			}

			res, err := c.app.Tracker.ToggleStepCompleted(cmd.Context(), id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if res.Award != nil {
				fmt.Fprintf(out, "%s done, +%d coins. Progress %d%%\n", res.Step.Title, res.Award.Amount, res.Progress)
			} else {
				fmt.Fprintf(out, "%s reopened. Progress %d%%\n", res.Step.Title, res.Progress)
			}

			return nil
		},
	})

	return cmd
}

func (c *cli) exportCmd() *cobra.Command {
	var kind, from, to string

	cmd := &cobra.Command{
		Use:   "export FILE.xlsx",
		Short: "Write transactions to a spreadsheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			filter, err := parseFilter(kind, from, to, time.Local)
			if err != nil {
				return err
			}

			f, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("creating %s: %w", args[0], err)
			}

			defer func() {
				if cerr := f.Close(); cerr != nil && err == nil {
					err = cerr
				}
			}()

			if err := c.app.Export.Export(cmd.Context(), filter, f); err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), c.app.Export.Summary(filter))

			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "", "only earned or redeemed")
	cmd.Flags().StringVar(&from, "from", "", "first day, YYYY-MM-DD")
	cmd.Flags().StringVar(&to, "to", "", "last day, YYYY-MM-DD")

	return cmd
}

func (c *cli) importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Award coins from a partner CSV file",
		Long: `Reads a partner award file (course platform, events or careercoin layout,
any common delimiter and charset) and earns one transaction per row.
Rows are committed one by one; on failure the rows before it stay credited.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}
			defer f.Close()

			res, err := c.app.Importer.Import(cmd.Context(), f)

			printer.Fprintf(cmd.OutOrStdout(), "Imported %d award(s), %d coins. Balance: %d\n", res.Applied, res.Coins, c.app.Coins.Balance())

			return err
		},
	}
}
