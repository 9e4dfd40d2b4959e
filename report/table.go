/*
Package report renders row sets as styled terminal tables.

PURPOSE:
  The table side of the output: column display labels, per-column format
  kinds (date / price / number / plain), bold headers and optional row
  striping, rendered with tablewriter under a colored title line.

  Rendering is a side effect on an io.Writer; nothing here feeds back into
  the pipeline.
*/
package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"

	"github.com/partsight/pricing-reports/pricing"
)

// =============================================================================
// COLUMN SPEC - Display label plus format kind
// =============================================================================

type Kind int

const (
	KindPlain Kind = iota
	KindDate
	KindNumber
	KindPrice
)

type Column struct {
	Label string
	Kind  Kind
}

// formatCell renders one value according to the column kind.
func formatCell(kind Kind, v any) string {
	switch kind {
	case KindDate:
		if d, ok := v.(pricing.Date); ok {
			return d.String()
		}
	case KindPrice:
		if p, ok := v.(decimal.Decimal); ok {
			return p.StringFixed(2)
		}
	case KindNumber:
		switch n := v.(type) {
		case int:
			return fmt.Sprintf("%d", n)
		case int64:
			return fmt.Sprintf("%d", n)
		}
	}
	return fmt.Sprintf("%v", v)
}

// =============================================================================
// TABLE
// =============================================================================

type Table struct {
	Title    string
	Subtitle string
	Columns  []Column
	Rows     [][]any

	// Striped dims every other data row.
	Striped bool
}

// Render writes the title, subtitle and table to w.
func (t Table) Render(w io.Writer) {
	if t.Title != "" {
		heading := color.New(color.FgYellow, color.Bold)
		heading.Fprintf(w, "\n%s\n", t.Title)
	}
	if t.Subtitle != "" {
		color.New(color.FgCyan).Fprintf(w, "%s\n", t.Subtitle)
	}

	tw := tablewriter.NewWriter(w)

	headers := make([]string, len(t.Columns))
	headerColors := make([]tablewriter.Colors, len(t.Columns))
	for i, c := range t.Columns {
		headers[i] = c.Label
		headerColors[i] = tablewriter.Colors{tablewriter.Bold}
	}
	tw.SetHeader(headers)
	tw.SetHeaderColor(headerColors...)

	dim := make([]tablewriter.Colors, len(t.Columns))
	for i := range dim {
		dim[i] = tablewriter.Colors{tablewriter.FgHiBlackColor}
	}

	for rowIdx, row := range t.Rows {
		cells := make([]string, len(t.Columns))
		for i := range t.Columns {
			var v any
			if i < len(row) {
				v = row[i]
			}
			cells[i] = formatCell(t.Columns[i].Kind, v)
		}
		if t.Striped && rowIdx%2 == 1 {
			tw.Rich(cells, dim)
		} else {
			tw.Append(cells)
		}
	}

	tw.Render()
}
