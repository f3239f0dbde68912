package export

import (
	"github.com/beevik/etree"
)

const (
	ssNamespace = "urn:schemas-microsoft-com:office:spreadsheet"
)

// SpreadsheetSink implements the ExportSink collaborator by building a
// SpreadsheetML 2003 workbook. Excel opens the resulting .xls file
// directly; the core only supplies headers and string cells.
type SpreadsheetSink struct{}

func NewSpreadsheetSink() *SpreadsheetSink {
	return &SpreadsheetSink{}
}

func (s *SpreadsheetSink) Write(sheetName string, headers []string, rows [][]string) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.CreateProcInst("mso-application", `progid="Excel.Sheet"`)

	workbook := doc.CreateElement("Workbook")
	workbook.CreateAttr("xmlns", ssNamespace)
	workbook.CreateAttr("xmlns:ss", ssNamespace)

	styles := workbook.CreateElement("Styles")
	header := styles.CreateElement("Style")
	header.CreateAttr("ss:ID", "Header")
	font := header.CreateElement("Font")
	font.CreateAttr("ss:Bold", "1")

	worksheet := workbook.CreateElement("Worksheet")
	worksheet.CreateAttr("ss:Name", sheetName)
	table := worksheet.CreateElement("Table")

	headerRow := table.CreateElement("Row")
	for _, h := range headers {
		cell := headerRow.CreateElement("Cell")
		cell.CreateAttr("ss:StyleID", "Header")
		data := cell.CreateElement("Data")
		data.CreateAttr("ss:Type", "String")
		data.SetText(h)
	}

	for _, row := range rows {
		r := table.CreateElement("Row")
		for _, value := range row {
			cell := r.CreateElement("Cell")
			data := cell.CreateElement("Data")
			data.CreateAttr("ss:Type", "String")
			data.SetText(value)
		}
	}

	doc.Indent(2)
	return doc.WriteToBytes()
}
