// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package report_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/H0llyW00dzZ/hostname-checker/src/hostname"
	"github.com/H0llyW00dzZ/hostname-checker/src/report"
)

func sampleResults(t *testing.T) []hostname.Result {
	t.Helper()
	c := hostname.New(hostname.WithCache(nil))
	results, err := c.Check(context.Background(),
		"a.good.example",
		"-initial.hyphen.example",
		"last.digits.123",
		"bücher.example.",
	)
	require.NoError(t, err)
	return results
}

func TestSummarize(t *testing.T) {
	s := report.Summarize(sampleResults(t))
	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 2, s.Valid)
	assert.Equal(t, 2, s.Invalid)
	assert.Equal(t, 1, s.ByKind[hostname.KindBadHyphen])
	assert.Equal(t, 1, s.ByKind[hostname.KindDigitOnly])
	assert.Zero(t, s.ByKind[hostname.KindNone])
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteText(&buf, sampleResults(t)))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "valid\ta.good.example\ta.good.example", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "invalid\t-initial.hyphen.example\tBadHyphen\t"), lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "invalid\tlast.digits.123\tDigitOnly\t"), lines[2])
	assert.Equal(t, "valid\tbücher.example.\txn--bcher-kva.example", lines[3])
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteXLSX(&buf, sampleResults(t)))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(report.SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 5)

	assert.Equal(t, []string{"Candidate", "Valid", "Canonical", "Reason", "Detail"}, rows[0])
	assert.Equal(t, "a.good.example", rows[1][0])
	assert.Equal(t, "TRUE", rows[1][1])
	assert.Equal(t, "a.good.example", rows[1][2])

	assert.Equal(t, "-initial.hyphen.example", rows[2][0])
	assert.Equal(t, "FALSE", rows[2][1])
	require.Len(t, rows[2], 5)
	assert.Equal(t, "BadHyphen", rows[2][3])
	assert.Contains(t, rows[2][4], "hyphen")

	assert.Equal(t, "xn--bcher-kva.example", rows[4][2])
}

func TestWriteXLSXEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteXLSX(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(report.SheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
