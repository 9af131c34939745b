// Package fetcher reads raw company records from XLSX and CSV input files.
package fetcher

import (
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/kishorwakchaure727-maker/corpnorm-ai/internal/model"
)

// Canonical input column headers, matched case-insensitively.
const (
	colRawName = "raw company name"
	colStreet  = "street address1"
	colCity    = "city name"
	colCountry = "country name"
)

// layout maps canonical columns to their positions in one file's header row.
// Columns outside the canonical set are carried through as extras.
type layout struct {
	rawName int
	street  int
	city    int
	country int
	extras  []int
}

func detectLayout(header []string) (layout, []string, error) {
	l := layout{rawName: -1, street: -1, city: -1, country: -1}
	var extraHeaders []string

	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case colRawName:
			l.rawName = i
		case colStreet:
			l.street = i
		case colCity:
			l.city = i
		case colCountry:
			l.country = i
		default:
			l.extras = append(l.extras, i)
			extraHeaders = append(extraHeaders, strings.TrimSpace(h))
		}
	}

	if l.rawName == -1 {
		return layout{}, nil, eris.Errorf("fetcher: input is missing the %q column", "Raw Company Name")
	}
	return l, extraHeaders, nil
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// MapRecords converts raw rows (header first) into RawRecords. Rows with an
// empty raw name are skipped. The second return value lists the headers of
// carried-through extra columns, in input order.
func MapRecords(rows [][]string) ([]model.RawRecord, []string, error) {
	if len(rows) == 0 {
		return nil, nil, eris.New("fetcher: input file is empty")
	}

	l, extraHeaders, err := detectLayout(rows[0])
	if err != nil {
		return nil, nil, err
	}

	records := make([]model.RawRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rawName := cellAt(row, l.rawName)
		if rawName == "" {
			continue
		}

		rec := model.RawRecord{
			RawName: rawName,
			Address: model.Address{
				Street:  cellAt(row, l.street),
				City:    cellAt(row, l.city),
				Country: cellAt(row, l.country),
			},
		}
		for _, idx := range l.extras {
			rec.Extras = append(rec.Extras, cellAt(row, idx))
		}
		records = append(records, rec)
	}

	return records, extraHeaders, nil
}

// ReadInput loads records from path, dispatching on the file extension
// (.xlsx or .csv).
func ReadInput(path string) ([]model.RawRecord, []string, error) {
	var rows [][]string
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		rows, err = ReadXLSX(path, XLSXOptions{})
	case ".csv":
		rows, err = ReadCSVFile(path)
	default:
		return nil, nil, eris.Errorf("fetcher: unsupported input format %q (use .xlsx or .csv)", filepath.Ext(path))
	}
	if err != nil {
		return nil, nil, err
	}

	return MapRecords(rows)
}
