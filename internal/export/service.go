// Package export renders the coin ledger as an XLSX statement or a plain-text summary.
package export

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/MrJamesThe3rd/careercoin/internal/coin"
	"github.com/MrJamesThe3rd/careercoin/internal/ledger"
)

const (
	sheet      = "Sheet1"
	dateLayout = "2006-01-02 15:04"
)

var header = []any{"Date", "Type", "Amount", "Description", "Reference"}

// Ledger is the read side of the coin service the statement is built from.
type Ledger interface {
	History(filter coin.HistoryFilter) []ledger.Transaction
	Snapshot() coin.Snapshot
}

type Service struct {
	ledger  Ledger
	printer *message.Printer
}

func NewService(l Ledger) *Service {
	return &Service{
		ledger:  l,
		printer: message.NewPrinter(language.English),
	}
}

// Export writes a workbook with one row per matching transaction, newest first,
// followed by the ledger totals. Redemptions carry a negative amount.
func (s *Service) Export(ctx context.Context, filter coin.HistoryFilter, w io.Writer) error {
	txs := s.ledger.History(filter)
	snap := s.ledger.Snapshot()

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating style: %w", err)
	}

	if err := f.SetCellStyle(sheet, "A1", "E1", bold); err != nil {
		return fmt.Errorf("styling header: %w", err)
	}

	row := 2

	for _, tx := range txs {
		if err := ctx.Err(); err != nil {
			return err
		}

		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}

		values := []any{tx.Timestamp.Format(dateLayout), string(tx.Kind), signed(tx), tx.Description, tx.Reference}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("writing row %d: %w", row, err)
		}

		row++
	}

	row++

	totals := [][]any{
		{"Balance", snap.Balance},
		{"Total earned", snap.TotalEarned},
		{"Total redeemed", snap.TotalRedeemed},
	}

	for _, t := range totals {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}

		if err := f.SetSheetRow(sheet, cell, &t); err != nil {
			return fmt.Errorf("writing totals: %w", err)
		}

		if err := f.SetCellStyle(sheet, cell, cell, bold); err != nil {
			return fmt.Errorf("styling totals: %w", err)
		}

		row++
	}

	if err := f.SetColWidth(sheet, "A", "A", 18); err != nil {
		return err
	}

	if err := f.SetColWidth(sheet, "D", "D", 40); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}

	return nil
}

// Summary renders the matching transactions as one line each, then the totals.
func (s *Service) Summary(filter coin.HistoryFilter) string {
	var sb strings.Builder

	for _, tx := range s.ledger.History(filter) {
		ref := tx.Reference
		if ref == "" {
			ref = "-"
		}

		sign := "+"
		if tx.Kind == ledger.KindRedeemed {
			sign = "-"
		}

		sb.WriteString(s.printer.Sprintf("* %s | %s | %s%d coins | %s\n", tx.Timestamp.Format("2006-01-02"), tx.Description, sign, tx.Amount, ref))
	}

	snap := s.ledger.Snapshot()

	sb.WriteString(s.printer.Sprintf("\nBalance: %d coins\n", snap.Balance))
	sb.WriteString(s.printer.Sprintf("Total earned: %d coins\n", snap.TotalEarned))
	sb.WriteString(s.printer.Sprintf("Total redeemed: %d coins\n", snap.TotalRedeemed))

	return sb.String()
}

func signed(tx ledger.Transaction) int64 {
	if tx.Kind == ledger.KindRedeemed {
		return -tx.Amount
	}

	return tx.Amount
}
