package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCareerOptions(t *testing.T) {
	t.Run("MatchesThenDreamJob", func(t *testing.T) {
		got := careerOptions([]string{"Data Scientist", "Data Scientist", "ML Engineer"}, "Product Manager")

		values := make([]string, 0, len(got))
		for _, o := range got {
			values = append(values, o.Value)
		}

		assert.Equal(t, []string{"Data Scientist", "ML Engineer", "Product Manager"}, values)
		assert.Equal(t, "Product Manager (current)", got[2].Key)
	})

	t.Run("DreamJobAlreadyMatched", func(t *testing.T) {
		got := careerOptions([]string{"ML Engineer"}, "ML Engineer")

		assert.Len(t, got, 1)
		assert.Equal(t, "ML Engineer", got[0].Key)
	})

	t.Run("Nothing", func(t *testing.T) {
		assert.Empty(t, careerOptions(nil, ""))
	})
}
