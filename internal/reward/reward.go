package reward

import (
	"errors"
	"fmt"
	"slices"
)

// Category groups reward items for display and filtering.
type Category string

const (
	CategoryCourse     Category = "course"
	CategoryReview     Category = "review"
	CategoryInterview  Category = "interview"
	CategoryMentorship Category = "mentorship"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryCourse, CategoryReview, CategoryInterview, CategoryMentorship:
		return true
	}

	return false
}

var ErrInvalidCatalog = errors.New("invalid reward catalog")

// Item is something coins can be spent on.
type Item struct {
	ID          string   `json:"id" toml:"id"`
	Title       string   `json:"title" toml:"title"`
	Description string   `json:"description" toml:"description"`
	Cost        int64    `json:"cost" toml:"cost"`
	Category    Category `json:"category" toml:"category"`
	Available   bool     `json:"available" toml:"available"`
}

// Catalog is a read-only list of reward items. It is never modified after construction.
type Catalog struct {
	items []Item
	byID  map[string]int
}

// NewCatalog validates items and builds a catalog. Ids must be unique and costs positive.
func NewCatalog(items []Item) (*Catalog, error) {
	c := &Catalog{
		items: slices.Clone(items),
		byID:  make(map[string]int, len(items)),
	}

	for i, it := range c.items {
		switch {
		case it.ID == "":
			return nil, fmt.Errorf("%w: item %d has no id", ErrInvalidCatalog, i)
		case it.Cost <= 0:
			return nil, fmt.Errorf("%w: item %q has cost %d", ErrInvalidCatalog, it.ID, it.Cost)
		case !it.Category.Valid():
			return nil, fmt.Errorf("%w: item %q has unknown category %q", ErrInvalidCatalog, it.ID, it.Category)
		}

		if _, dup := c.byID[it.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrInvalidCatalog, it.ID)
		}

		c.byID[it.ID] = i
	}

	return c, nil
}

// Find returns the item with the given id.
func (c *Catalog) Find(id string) (Item, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Item{}, false
	}

	return c.items[i], true
}

// Items returns a copy of every item in catalog order.
func (c *Catalog) Items() []Item {
	return slices.Clone(c.items)
}

func (c *Catalog) ByCategory(cat Category) []Item {
	var out []Item

	for _, it := range c.items {
		if it.Category == cat {
			out = append(out, it)
		}
	}

	return out
}

// DefaultCatalog is the built-in reward list.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(defaultItems)
	if err != nil {
		panic(err)
	}

	return c
}

var defaultItems = []Item{
	{
		ID:          "1",
		Title:       "Premium Web Development Course",
		Description: "Advanced React and Node.js course with certification",
		Cost:        500,
		Category:    CategoryCourse,
		Available:   true,
	},
	{
		ID:          "2",
		Title:       "Professional Resume Review",
		Description: "Expert review and optimization of your resume",
		Cost:        150,
		Category:    CategoryReview,
		Available:   true,
	},
	{
		ID:          "3",
		Title:       "Mock Technical Interview",
		Description: "1-hour mock interview with industry professional",
		Cost:        300,
		Category:    CategoryInterview,
		Available:   true,
	},
	{
		ID:          "4",
		Title:       "1-on-1 Career Mentorship",
		Description: "30-minute session with senior industry mentor",
		Cost:        400,
		Category:    CategoryMentorship,
		Available:   true,
	},
	{
		ID:          "5",
		Title:       "Data Science Bootcamp",
		Description: "Comprehensive Python and ML course",
		Cost:        750,
		Category:    CategoryCourse,
		Available:   true,
	},
	{
		ID:          "6",
		Title:       "LinkedIn Profile Optimization",
		Description: "Professional LinkedIn profile makeover",
		Cost:        200,
		Category:    CategoryReview,
		Available:   true,
	},
}
