package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleTable() Table {
	return Table{
		Title:   "Container Report",
		Headers: []string{"Item", "Qty", "Amount"},
		Rows: [][]string{
			{"Rice 25kg", "10", "1500.00"},
			{"Oil 5L", "4", "320.00"},
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf, sampleTable())
	require.NoError(t, err)

	expected := "Item,Qty,Amount\nRice 25kg,10,1500.00\nOil 5L,4,320.00\n"
	assert.Equal(t, expected, buf.String())
}

func TestWriteCSVEmptyTable(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf, Table{})
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestWriteExcel(t *testing.T) {
	var buf bytes.Buffer
	err := WriteExcel(&buf, sampleTable())
	require.NoError(t, err)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue("Report", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Container Report", title)

	header, err := f.GetCellValue("Report", "A3")
	require.NoError(t, err)
	assert.Equal(t, "Item", header)

	cell, err := f.GetCellValue("Report", "C4")
	require.NoError(t, err)
	assert.Equal(t, "1500.00", cell)
}
