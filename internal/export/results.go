// Package export writes resolution results and workbook templates.
package export

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/kishorwakchaure727-maker/corpnorm-ai/internal/model"
)

const resultsSheetName = "CorpNorm Output"

// WriteResults writes records to path, dispatching on the file extension
// (.xlsx or .csv). extraHeaders label the carried-through input columns and
// are appended after the canonical output header.
func WriteResults(path string, extraHeaders []string, records []model.OutputRecord) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return WriteResultsXLSX(path, extraHeaders, records)
	case ".csv":
		f, err := os.Create(path)
		if err != nil {
			return eris.Wrap(err, "export: create file")
		}
		defer f.Close() //nolint:errcheck
		return WriteResultsCSV(f, extraHeaders, records)
	default:
		return eris.Errorf("export: unsupported output format %q (use .xlsx or .csv)", filepath.Ext(path))
	}
}

// WriteResultsCSV writes the header row followed by one row per record.
func WriteResultsCSV(w io.Writer, extraHeaders []string, records []model.OutputRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(append(model.Columns(), extraHeaders...)); err != nil {
		return eris.Wrap(err, "export: write header")
	}
	for _, rec := range records {
		if err := cw.Write(rec.Row()); err != nil {
			return eris.Wrap(err, "export: write row")
		}
	}

	cw.Flush()
	return eris.Wrap(cw.Error(), "export: flush")
}

// WriteResultsXLSX writes records to a single-sheet workbook with a styled
// header row.
func WriteResultsXLSX(path string, extraHeaders []string, records []model.OutputRecord) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet(resultsSheetName)
	if err != nil {
		return eris.Wrap(err, "export: add sheet")
	}

	header := sheet.AddRow()
	for _, h := range append(model.Columns(), extraHeaders...) {
		cell := header.AddCell()
		cell.SetString(h)
		cell.SetStyle(headerStyle(deepBlue))
	}

	for _, rec := range records {
		row := sheet.AddRow()
		for _, val := range rec.Row() {
			row.AddCell().SetString(val)
		}
	}

	for i, width := range columnWidths(len(extraHeaders)) {
		sheet.SetColWidth(i, i, width)
	}

	return eris.Wrap(f.Save(path), "export: save file")
}

// columnWidths returns widths for the canonical columns plus extras.
func columnWidths(extras int) []float64 {
	widths := []float64{40, 40, 30, 25, 40, 35, 16}
	for i := 0; i < extras; i++ {
		widths = append(widths, 20)
	}
	return widths
}
