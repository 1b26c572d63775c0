package export

import (
	"bytes"
	"testing"
	"time"

	"barista/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteXLSX(t *testing.T) {
	grind := 5
	rating := 4.5
	records := []domain.CoffeeRecord{
		{ID: "1", Name: "Yirgacheffe", Origin: "Ethiopia", RoastLevel: domain.RoastLight, GrindSize: &grind, Rating: &rating,
			CreatedAt: time.Date(2026, 2, 8, 7, 0, 0, 0, time.UTC)},
		{ID: "2", Name: "Bourbon", Origin: "Brazil", RoastLevel: domain.RoastDark,
			CreatedAt: time.Date(2026, 2, 9, 8, 30, 0, 0, time.UTC)},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, records))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck

	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Name", rows[0][1])
	assert.Equal(t, "Yirgacheffe", rows[1][1])
	assert.Equal(t, "5", rows[1][4])
	assert.Equal(t, "4.5", rows[1][8])
	assert.Equal(t, "2026-02-08 07:00", rows[1][9])
	assert.Equal(t, "dark", rows[2][3])
	assert.Equal(t, "", rows[2][4])
}

func TestWriteXLSX_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck

	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
