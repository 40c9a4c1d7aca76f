package cli

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

// column header plus the alignment of its cells
type tableColumn struct {
	header string
	align  columnAlignment
}

func columnsOf(headers []string, aligns []columnAlignment) []tableColumn {
	cols := make([]tableColumn, len(headers))
	for i, h := range headers {
		cols[i].header = h
		if i < len(aligns) {
			cols[i].align = aligns[i]
		}
	}
	return cols
}

// renders rows under headers inside a rounded box; a non-empty title is
// printed above the header, and short rows are padded with empty cells
func renderTable(title string, headers []string, rows [][]string, aligns []columnAlignment) string {
	cols := columnsOf(headers, aligns)
	if len(cols) == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	if title != "" {
		tw.SetTitle("%s", title)
	}

	header := make(table.Row, len(cols))
	configs := make([]table.ColumnConfig, len(cols))
	for i, c := range cols {
		header[i] = c.header
		configs[i] = table.ColumnConfig{
			Number:      i + 1,
			Align:       c.align.textAlign(),
			AlignHeader: text.AlignLeft,
		}
	}
	tw.AppendHeader(header)
	tw.SetColumnConfigs(configs)

	for _, row := range rows {
		cells := make(table.Row, len(cols))
		for i := range cells {
			cells[i] = ""
			if i < len(row) {
				cells[i] = row[i]
			}
		}
		tw.AppendRow(cells)
	}

	return tw.Render()
}

func (a columnAlignment) textAlign() text.Align {
	if a == alignRight {
		return text.AlignRight
	}
	return text.AlignLeft
}
