package export

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpreadsheetSink_Write(t *testing.T) {
	sink := NewSpreadsheetSink()

	data, err := sink.Write("EMI Schedule",
		[]string{"Month", "Principal Paid"},
		[][]string{
			{"1", "3429.00"},
			{"2", "3452.00"},
		})
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(data))

	workbook := doc.SelectElement("Workbook")
	require.NotNil(t, workbook)
	assert.Equal(t, "urn:schemas-microsoft-com:office:spreadsheet", workbook.SelectAttrValue("xmlns", ""))

	worksheet := workbook.SelectElement("Worksheet")
	require.NotNil(t, worksheet)
	assert.Equal(t, "EMI Schedule", worksheet.SelectAttrValue("ss:Name", ""))

	rows := worksheet.SelectElement("Table").SelectElements("Row")
	require.Len(t, rows, 3, "header plus two data rows")

	headerCells := rows[0].SelectElements("Cell")
	require.Len(t, headerCells, 2)
	assert.Equal(t, "Header", headerCells[0].SelectAttrValue("ss:StyleID", ""))
	assert.Equal(t, "Month", headerCells[0].SelectElement("Data").Text())

	dataCell := rows[1].SelectElements("Cell")[1].SelectElement("Data")
	assert.Equal(t, "String", dataCell.SelectAttrValue("ss:Type", ""))
	assert.Equal(t, "3429.00", dataCell.Text())
}

func TestSpreadsheetSink_Write_Empty(t *testing.T) {
	sink := NewSpreadsheetSink()

	data, err := sink.Write("Completed Disbursements", []string{"Lead ID"}, nil)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(data))
	rows := doc.SelectElement("Workbook").SelectElement("Worksheet").SelectElement("Table").SelectElements("Row")
	assert.Len(t, rows, 1, "header row only")
}
