package awards

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/MrJamesThe3rd/careercoin/internal/encoding"
)

var ErrUnknownFormat = errors.New("no matching award file format")

// Row is one award line of a partner file.
type Row struct {
	Date        time.Time
	Amount      int64
	Description string
	Profile     string
}

// Parser reads partner award exports. It decodes the file to UTF-8, picks the
// delimiter and finds the header row by matching column names against known profiles.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]Row, error) {
	utf8r, err := encoding.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	data, err := io.ReadAll(utf8r)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	for _, comma := range []rune{',', ';', '\t'} {
		rows, err := readRows(data, comma)
		if err != nil {
			continue
		}

		profile, cols, headerIdx := detectProfile(rows)
		if profile == nil {
			continue
		}

		return parseRows(profile, cols, rows[headerIdx+1:], headerIdx+1)
	}

	return nil, ErrUnknownFormat
}

func readRows(data []byte, comma rune) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	return reader.ReadAll()
}

type colIndex map[string]int

// detectProfile returns the first profile whose columns all appear in one row,
// along with that row's index. Header names are compared case-insensitively.
func detectProfile(rows [][]string) (*Profile, colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			if name := strings.ToLower(strings.TrimSpace(cell)); name != "" {
				cols[name] = i
			}
		}

		for i := range profiles {
			if matchesProfile(&profiles[i], cols) {
				return &profiles[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

func matchesProfile(p *Profile, cols colIndex) bool {
	for _, name := range p.requiredCols() {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

// parseRows skips rows without a parseable date (totals, page footers) and rejects
// rows that have a date but no description or no positive amount.
func parseRows(p *Profile, cols colIndex, rows [][]string, headerRowNum int) ([]Row, error) {
	dateIdx := cols[p.DateCol]
	descIdx := cols[p.DescCol]
	amountIdx := cols[p.AmountCol]

	var out []Row

	for i, row := range rows {
		rowNum := headerRowNum + i + 1

		date, err := time.Parse(p.DateLayout, cellValue(row, dateIdx))
		if err != nil {
			continue
		}

		desc := cellValue(row, descIdx)
		if desc == "" {
			return nil, fmt.Errorf("row %d: missing description", rowNum)
		}

		amount, err := parseCoins(cellValue(row, amountIdx))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}

		out = append(out, Row{Date: date, Amount: amount, Description: desc, Profile: p.Name})
	}

	return out, nil
}

// wholeCoins matches plain digits or digits grouped in thousands by a single separator.
var wholeCoins = regexp.MustCompile(`^(\d+|\d{1,3}(,\d{3})+|\d{1,3}(\.\d{3})+|\d{1,3}( \d{3})+|\d{1,3}(_\d{3})+)$`)

// parseCoins reads a whole positive coin count. A decimal mark is rejected.
func parseCoins(s string) (int64, error) {
	raw := strings.TrimPrefix(s, "+")
	if strings.HasPrefix(raw, "-") {
		return 0, fmt.Errorf("amount %q must be positive", s)
	}

	if !wholeCoins.MatchString(raw) {
		return 0, fmt.Errorf("invalid amount %q", s)
	}

	clean := strings.NewReplacer(",", "", ".", "", " ", "", "_", "").Replace(raw)

	n, err := strconv.ParseInt(clean, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}

	if n <= 0 {
		return 0, fmt.Errorf("amount %q must be positive", s)
	}

	return n, nil
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
