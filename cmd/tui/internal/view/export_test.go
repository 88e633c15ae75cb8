package view

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/MrJamesThe3rd/careercoin/internal/app"
	"github.com/MrJamesThe3rd/careercoin/internal/coin"
	"github.com/MrJamesThe3rd/careercoin/internal/kv"
)

func TestWriteExport(t *testing.T) {
	ctx := context.Background()

	a, err := app.Build(ctx, kv.NewMemory(), "")
	require.NoError(t, err)

	_, err = a.Coins.EarnCoins(ctx, 120, "Completed: Learn the basics")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "nested", "out.xlsx")
	require.NoError(t, writeExport(a.Export, coin.HistoryFilter{}, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 2)

	assert.Equal(t, "Date", rows[0][0])
	assert.Equal(t, "Completed: Learn the basics", rows[1][3])
}
