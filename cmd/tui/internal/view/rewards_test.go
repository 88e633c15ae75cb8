package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/careercoin/internal/reward"
)

func TestItemStatus(t *testing.T) {
	tests := []struct {
		name    string
		item    reward.Item
		balance int64
		want    string
	}{
		{name: "Unavailable", item: reward.Item{Cost: 10}, balance: 100, want: "unavailable"},
		{name: "Short", item: reward.Item{Cost: 1500, Available: true}, balance: 200, want: "need 1,300"},
		{name: "Ready", item: reward.Item{Cost: 100, Available: true}, balance: 100, want: "ready"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, itemStatus(tt.item, tt.balance))
		})
	}
}
