package awards_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/MrJamesThe3rd/careercoin/internal/importer/awards"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestParser_CoursePlatform(t *testing.T) {
	csv := `Learner report;Jane Doe
Generated;15/03/2025

Completed On;Course;Points;Certificate
01/03/2025;Intro to SQL;120;yes
09/03/2025;Statistics for Analysts;"1.500";yes
;;;Page 1/1
`

	rows, err := awards.NewParser().Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, date(2025, 3, 1), rows[0].Date)
	assert.Equal(t, "Intro to SQL", rows[0].Description)
	assert.Equal(t, int64(120), rows[0].Amount)
	assert.Equal(t, "course platform", rows[0].Profile)

	assert.Equal(t, date(2025, 3, 9), rows[1].Date)
	assert.Equal(t, int64(1500), rows[1].Amount)
}

func TestParser_EventsCommaSeparated(t *testing.T) {
	csv := `Event Date,Event,Coins
2025-02-20,Career fair booth visit,40
2025-02-21,"Resume workshop, part 2",60
`

	rows, err := awards.NewParser().Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "events", rows[1].Profile)
	assert.Equal(t, "Resume workshop, part 2", rows[1].Description)
	assert.Equal(t, date(2025, 2, 21), rows[1].Date)
}

func TestParser_HeaderCaseAndOrder(t *testing.T) {
	csv := "AMOUNT\tIgnored\tDescription\tDate\n75\tx\tMentor feedback\t2025-01-05\n"

	rows, err := awards.NewParser().Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, "careercoin", rows[0].Profile)
	assert.Equal(t, int64(75), rows[0].Amount)
	assert.Equal(t, "Mentor feedback", rows[0].Description)
}

func TestParser_Latin1Encoding(t *testing.T) {
	utf8CSV := "Event Date;Event;Coins\n2025-01-30;Café meetup;30\n"

	latin1, err := charmap.Windows1252.NewEncoder().Bytes([]byte(utf8CSV))
	require.NoError(t, err)

	rows, err := awards.NewParser().Parse(bytes.NewReader(latin1))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, "Café meetup", rows[0].Description)
}

func TestParser_Errors(t *testing.T) {
	tests := []struct {
		name    string
		csv     string
		wantErr string
	}{
		{name: "Empty", csv: "", wantErr: "no matching award file format"},
		{name: "UnknownHeader", csv: "Foo;Bar\n1;2\n", wantErr: "no matching award file format"},
		{name: "MissingDescription", csv: "Date;Description;Amount\n2025-01-01;;10\n", wantErr: "row 2: missing description"},
		{name: "NegativeAmount", csv: "Date;Description;Amount\n2025-01-01;Refund;-10\n", wantErr: "must be positive"},
		{name: "Exponent", csv: "Date;Description;Amount\n2025-01-01;Half;1.5e2\n", wantErr: "invalid amount"},
		{name: "DecimalPoint", csv: "Date,Description,Amount\n2024-01-02,Course,12.5\n", wantErr: `invalid amount "12.5"`},
		{name: "DecimalComma", csv: "Date;Description;Amount\n2024-01-02;Course;12,5\n", wantErr: `invalid amount "12,5"`},
		{name: "BelowOne", csv: "Date;Description;Amount\n2024-01-02;Course;0.5\n", wantErr: "invalid amount"},
		{name: "MixedGrouping", csv: "Date;Description;Amount\n2024-01-02;Course;1,000.000\n", wantErr: "invalid amount"},
		{name: "Zero", csv: "Date;Description;Amount\n2024-01-02;Course;0\n", wantErr: "must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := awards.NewParser().Parse(strings.NewReader(tt.csv))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParser_GroupedAmounts(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   int64
	}{
		{name: "Comma", amount: `"1,000"`, want: 1000},
		{name: "Dot", amount: "1.000", want: 1000},
		{name: "Millions", amount: `"2,500,000"`, want: 2500000},
		{name: "Plain", amount: "1000", want: 1000},
		{name: "Plus", amount: "+40", want: 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			csv := "Date,Description,Amount\n2024-01-02,Course," + tt.amount + "\n"

			rows, err := awards.NewParser().Parse(strings.NewReader(csv))
			require.NoError(t, err)
			require.Len(t, rows, 1)
			assert.Equal(t, tt.want, rows[0].Amount)
		})
	}
}

func TestParser_HeaderOnly(t *testing.T) {
	rows, err := awards.NewParser().Parse(strings.NewReader("Date;Description;Amount\n"))
	require.NoError(t, err)
	assert.Empty(t, rows)
}
