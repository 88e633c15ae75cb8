package awards

// Profile describes the column layout of one partner export.
// Adding a partner is adding a Profile to profiles.
type Profile struct {
	Name       string
	DateCol    string
	DescCol    string
	AmountCol  string
	DateLayout string
}

func (p Profile) requiredCols() []string {
	return []string{p.DateCol, p.DescCol, p.AmountCol}
}

// profiles is tried in order; put layouts with more specific headers first.
var profiles = []Profile{
	{
		Name:       "course platform",
		DateCol:    "completed on",
		DescCol:    "course",
		AmountCol:  "points",
		DateLayout: "02/01/2006",
	},
	{
		Name:       "events",
		DateCol:    "event date",
		DescCol:    "event",
		AmountCol:  "coins",
		DateLayout: "2006-01-02",
	},
	{
		Name:       "careercoin",
		DateCol:    "date",
		DescCol:    "description",
		AmountCol:  "amount",
		DateLayout: "2006-01-02",
	},
}
