package reward_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/careercoin/internal/reward"
)

func TestDefaultCatalog(t *testing.T) {
	c := reward.DefaultCatalog()

	items := c.Items()
	require.Len(t, items, 6)

	costs := make([]int64, len(items))
	for i, it := range items {
		costs[i] = it.Cost
		assert.True(t, it.Available)
	}

	assert.Equal(t, []int64{500, 150, 300, 400, 750, 200}, costs)

	item, ok := c.Find("2")
	require.True(t, ok)
	assert.Equal(t, "Professional Resume Review", item.Title)

	_, ok = c.Find("99")
	assert.False(t, ok)

	assert.Len(t, c.ByCategory(reward.CategoryCourse), 2)
	assert.Len(t, c.ByCategory(reward.CategoryMentorship), 1)
}

func TestCatalog_ItemsIsACopy(t *testing.T) {
	c := reward.DefaultCatalog()

	items := c.Items()
	items[0].Cost = 1

	item, _ := c.Find("1")
	assert.Equal(t, int64(500), item.Cost)
}

func TestNewCatalog_Validation(t *testing.T) {
	tests := []struct {
		name  string
		items []reward.Item
	}{
		{"MissingID", []reward.Item{{Cost: 10, Category: reward.CategoryCourse}}},
		{"ZeroCost", []reward.Item{{ID: "a", Category: reward.CategoryCourse}}},
		{"NegativeCost", []reward.Item{{ID: "a", Cost: -5, Category: reward.CategoryCourse}}},
		{"UnknownCategory", []reward.Item{{ID: "a", Cost: 5, Category: "swag"}}},
		{"DuplicateID", []reward.Item{
			{ID: "a", Cost: 5, Category: reward.CategoryCourse},
			{ID: "a", Cost: 7, Category: reward.CategoryReview},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := reward.NewCatalog(tt.items)
			assert.ErrorIs(t, err, reward.ErrInvalidCatalog)
		})
	}
}

const catalogTOML = `
[[item]]
id = "cv"
title = "Resume Review"
description = "Line-by-line feedback"
cost = 120
category = "review"
available = true

[[item]]
id = "mock"
title = "Mock Interview"
cost = 300
category = "interview"
available = false
`

func TestLoadCatalog(t *testing.T) {
	c, err := reward.LoadCatalog(strings.NewReader(catalogTOML))
	require.NoError(t, err)

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, reward.Item{
		ID:          "cv",
		Title:       "Resume Review",
		Description: "Line-by-line feedback",
		Cost:        120,
		Category:    reward.CategoryReview,
		Available:   true,
	}, items[0])
	assert.False(t, items[1].Available)
}

func TestLoadCatalog_Errors(t *testing.T) {
	_, err := reward.LoadCatalog(strings.NewReader("[[item]\nbroken"))
	assert.Error(t, err)

	_, err = reward.LoadCatalog(strings.NewReader("[[item]]\nid = \"a\"\ncost = 1\ncategory = \"course\"\nprice = 3\n"))
	assert.ErrorIs(t, err, reward.ErrInvalidCatalog)
}

func TestLoadCatalogFile_Latin1(t *testing.T) {
	// "Revisão" with ã encoded as 0xE3 (Windows-1252).
	content := []byte("[[item]]\nid = \"cv\"\ntitle = \"Revis\xe3o\"\ncost = 100\ncategory = \"review\"\navailable = true\n")

	path := filepath.Join(t.TempDir(), "rewards.toml")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	c, err := reward.LoadCatalogFile(path)
	require.NoError(t, err)

	item, ok := c.Find("cv")
	require.True(t, ok)
	assert.Equal(t, "Revisão", item.Title)
}
