package export

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/kishorwakchaure727-maker/corpnorm-ai/internal/model"
)

// Workbook header colors (ARGB).
const (
	deepBlue   = "FF1F4B99" // core output columns
	teal       = "FF1ABC9C" // search helper columns
	softYellow = "FFF5A623" // combined search column
	lightGrey  = "FFDDDDDD" // title bar
)

const workbookTitle = "CorpNorm AI"

// searchHeaders are the manual-enrichment helper columns appended after the
// core output columns in the output template.
var searchHeaders = []string{
	"Search – Website",
	"Search – Industry",
	"Search – Profile / Registry",
}

// headerStyle builds the bold white-on-color header cell style.
func headerStyle(color string) *xlsx.Style {
	style := xlsx.NewStyle()
	style.Fill = *xlsx.NewFill("solid", color, color)
	style.ApplyFill = true
	style.Font = *xlsx.NewFont(11, "Calibri")
	style.Font.Bold = true
	style.Font.Color = "FFFFFFFF"
	style.ApplyFont = true
	style.Alignment.Horizontal = "center"
	style.Alignment.Vertical = "center"
	style.Alignment.WrapText = true
	style.ApplyAlignment = true
	style.Border = *xlsx.NewBorder("thin", "thin", "thin", "thin")
	style.ApplyBorder = true
	return style
}

func titleStyle() *xlsx.Style {
	style := xlsx.NewStyle()
	style.Fill = *xlsx.NewFill("solid", lightGrey, lightGrey)
	style.ApplyFill = true
	style.Font = *xlsx.NewFont(16, "Calibri")
	style.Font.Bold = true
	style.ApplyFont = true
	style.Alignment.Horizontal = "center"
	style.Alignment.Vertical = "center"
	style.ApplyAlignment = true
	return style
}

// WriteInputTemplate writes the upload template: the four canonical input
// columns plus one sample row.
func WriteInputTemplate(path string) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("CorpNorm Input")
	if err != nil {
		return eris.Wrap(err, "export: add sheet")
	}

	header := sheet.AddRow()
	for _, h := range []string{"Raw Company Name", "Street Address1", "City Name", "Country Name"} {
		cell := header.AddCell()
		cell.SetString(h)
		cell.SetStyle(headerStyle(deepBlue))
	}

	sample := sheet.AddRow()
	for _, v := range []string{"Samsung Electro-Mechanics Co., Ltd.", "150 Maeyeong-ro", "Suwon", "South Korea"} {
		sample.AddCell().SetString(v)
	}

	for i, width := range []float64{40, 25, 20, 20} {
		sheet.SetColWidth(i, i, width)
	}

	return eris.Wrap(f.Save(path), "export: save file")
}

// WriteOutputTemplate writes the enrichment template: a title bar, the core
// output columns, Google search helper columns with hyperlink formulas in the
// first data row, an optional combined-search column, and a usage guide
// sheet. sampleRow adds one example row of output.
func WriteOutputTemplate(path string, combined, sampleRow bool) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("CorpNorm Template")
	if err != nil {
		return eris.Wrap(err, "export: add sheet")
	}

	headers := append(model.Columns()[:6], searchHeaders...)
	if combined {
		headers = append(headers, "All Searches")
	}

	// Title bar spanning every column.
	titleRow := sheet.AddRow()
	title := titleRow.AddCell()
	title.SetString(workbookTitle)
	title.SetStyle(titleStyle())
	title.Merge(len(headers)-1, 1)
	sheet.AddRow() // merged continuation row

	note := sheet.AddRow().AddCell()
	note.SetString("Output enrichment template: paste resolver output into the first six columns, then copy the search formulas down.")

	headerRow := sheet.AddRow()
	for i, h := range headers {
		cell := headerRow.AddCell()
		cell.SetString(h)
		switch {
		case i < 6:
			cell.SetStyle(headerStyle(deepBlue))
		case i < 9:
			cell.SetStyle(headerStyle(teal))
		default:
			style := headerStyle(softYellow)
			style.Font.Color = "FF000000"
			cell.SetStyle(style)
		}
	}

	dataRow := sheet.AddRow()
	values := make([]string, 6)
	if sampleRow {
		values = []string{
			"Samsung Electro-Mechanics Co., Ltd.",
			"SAMSUNG ELECTRO MECHANICS",
			"https://www.samsungsem.com/",
			"Electronic components",
			"",
			"Sample row - replace with your real data",
		}
	}
	for _, v := range values {
		dataRow.AddCell().SetString(v)
	}

	row := 5 // first data row, accounting for title, continuation, note, header
	dataRow.AddCell().SetFormula(searchFormula(row, "official website", "Search Website"))
	dataRow.AddCell().SetFormula(searchFormula(row, "industry", "Search Industry"))
	dataRow.AddCell().SetFormula(searchFormula(row, "company profile registry", "Search Profile"))
	if combined {
		dataRow.AddCell().SetFormula(fmt.Sprintf(
			"%s & \" | \" & %s & \" | \" & %s",
			searchFormula(row, "official website", "Website"),
			searchFormula(row, "industry", "Industry"),
			searchFormula(row, "company profile registry", "Registry"),
		))
	}

	widths := []float64{40, 40, 30, 25, 40, 35, 18, 18, 22}
	if combined {
		widths = append(widths, 30)
	}
	for i, width := range widths {
		sheet.SetColWidth(i, i, width)
	}

	if err := addUsageGuide(f, combined); err != nil {
		return err
	}

	return eris.Wrap(f.Save(path), "export: save file")
}

// searchFormula builds a HYPERLINK formula that googles the normalized name
// (column B) with a qualifier.
func searchFormula(row int, qualifier, label string) string {
	return fmt.Sprintf(
		`HYPERLINK("https://www.google.com/search?q=" & ENCODEURL($B%d & " %s"), "%s")`,
		row, qualifier, label,
	)
}

func addUsageGuide(f *xlsx.File, combined bool) error {
	sheet, err := f.AddSheet("Usage Guide")
	if err != nil {
		return eris.Wrap(err, "export: add guide sheet")
	}

	lines := []string{
		workbookTitle,
		"",
		"Usage Guide",
		"===========",
		"",
		"Columns Overview (Main Sheet):",
		"- Column A: Raw Company Name",
		"- Column B: Normalized Company Name",
		"- Column C: Website",
		"- Column D: Industry",
		"- Column E: Third Party Data Source Link",
		"- Column F: Remark",
		"- Column G: Search – Website (Google search link)",
		"- Column H: Search – Industry (Google search link)",
		"- Column I: Search – Profile / Registry (Google search link)",
	}
	if combined {
		lines = append(lines, "- Column J: All Searches (combined)")
	}
	lines = append(lines,
		"",
		"How to Use:",
		"1) Run a batch resolution and export the output workbook.",
		"2) Paste the output into columns A-F of the main sheet.",
		"3) Copy the search formulas in the first data row down to every row.",
		"4) Use the search links to verify websites, industries, and registry profiles.",
		"",
		"Tips:",
		"- Prefer official corporate sites over distributors or social media.",
		"- If no official website exists, use a trusted registry or profile link.",
		"- Keep industries short and consistent (1-4 words).",
	)

	for _, line := range lines {
		sheet.AddRow().AddCell().SetString(line)
	}
	sheet.SetColWidth(0, 0, 110)
	return nil
}
