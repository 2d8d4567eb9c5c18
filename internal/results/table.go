// Package results holds the tables shown after a capture or a batch run
// and renders them for a terminal or as JSON.
package results

import (
	"strings"
)

// Live table columns.
var LiveHeaders = []string{"Original", "Translation"}

// Batch table columns.
var BatchHeaders = []string{"Original", "Detected block", "Extracted text", "Translation"}

// Table is a header row plus data rows. Every row has len(Headers) cells.
type Table struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// NewTable creates an empty table with the given headers.
func NewTable(headers ...string) *Table {
	return &Table{Headers: headers, Rows: [][]string{}}
}

// Replace discards the current rows and stores rows instead.
func (t *Table) Replace(rows [][]string) {
	t.Rows = make([][]string, 0, len(rows))
	for _, row := range rows {
		t.Append(row...)
	}
}

// Append adds one row, padding or truncating it to the header width.
func (t *Table) Append(cells ...string) {
	row := make([]string, len(t.Headers))
	copy(row, cells)
	t.Rows = append(t.Rows, row)
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// PairRows splits original and translated on newlines and pairs the lines
// in order. Extra lines on either side are dropped. Cells are trimmed.
func PairRows(original, translated string) [][]string {
	orig := strings.Split(original, "\n")
	trans := strings.Split(translated, "\n")

	n := min(len(orig), len(trans))
	rows := make([][]string, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, []string{strings.TrimSpace(orig[i]), strings.TrimSpace(trans[i])})
	}
	return rows
}

// NewLiveTable builds the original/translation table for one capture.
func NewLiveTable(original, translated string) *Table {
	t := NewTable(LiveHeaders...)
	t.Replace(PairRows(original, translated))
	return t
}

// BatchRow is one processed image.
type BatchRow struct {
	Image       string `json:"image"`
	Block       string `json:"block"`
	Text        string `json:"text"`
	Translation string `json:"translation"`
}

// NewBatchTable builds the batch results table.
func NewBatchTable(rows []BatchRow) *Table {
	t := NewTable(BatchHeaders...)
	for _, r := range rows {
		t.Append(r.Image, r.Block, r.Text, r.Translation)
	}
	return t
}
