// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package report renders [hostname.Result] lists as plain text or as an
// Excel workbook.
package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/H0llyW00dzZ/hostname-checker/src/hostname"
)

// SheetName is the worksheet written by [WriteXLSX].
const SheetName = "Hostnames"

// Header is the first row written by [WriteXLSX].
var Header = []any{"Candidate", "Valid", "Canonical", "Reason", "Detail"}

// Summary counts results by outcome.
type Summary struct {
	Total   int
	Valid   int
	Invalid int

	// ByKind counts invalid results per rejection kind. Errors that are
	// not validation failures, e.g. a cancelled context, count as
	// [hostname.KindNone].
	ByKind map[hostname.Kind]int
}

// Summarize tallies results.
func Summarize(results []hostname.Result) Summary {
	s := Summary{Total: len(results), ByKind: make(map[hostname.Kind]int)}
	for _, r := range results {
		if r.Valid {
			s.Valid++
			continue
		}
		s.Invalid++
		s.ByKind[r.Kind()]++
	}
	return s
}

// WriteText writes one tab-separated line per result:
//
//	valid	<candidate>	<canonical>
//	invalid	<candidate>	<kind>	<message>
func WriteText(w io.Writer, results []hostname.Result) error {
	bw := bufio.NewWriter(w)
	for _, r := range results {
		var err error
		if r.Valid {
			_, err = fmt.Fprintf(bw, "valid\t%s\t%s\n", r.Candidate, r.Hostname)
		} else {
			_, err = fmt.Fprintf(bw, "invalid\t%s\t%s\t%v\n", r.Candidate, r.Kind(), r.Error)
		}
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteXLSX writes results to w as an .xlsx workbook with a single
// [SheetName] sheet whose first row is [Header].
func WriteXLSX(w io.Writer, results []hostname.Result) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return err
	}
	if err := f.SetSheetRow(SheetName, "A1", &Header); err != nil {
		return err
	}

	for i, r := range results {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetName, cell, &[]any{
			r.Candidate,
			r.Valid,
			canonical(r),
			reason(r),
			detail(r),
		}); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(SheetName, "A", "A", 40); err != nil {
		return err
	}
	if err := f.SetColWidth(SheetName, "C", "C", 40); err != nil {
		return err
	}
	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return err
	}

	return f.Write(w)
}

func canonical(r hostname.Result) string {
	if !r.Valid {
		return ""
	}
	return r.Hostname.String()
}

func reason(r hostname.Result) string {
	if r.Valid {
		return ""
	}
	return r.Kind().String()
}

func detail(r hostname.Result) string {
	if r.Error == nil {
		return ""
	}
	return r.Error.Error()
}
