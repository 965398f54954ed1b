package render

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// maxCellWidth caps left-aligned columns; longer values such as regex
// patterns or Chinese descriptions wrap onto further lines.
const maxCellWidth = 40

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

// summaryTable is a small counts table printed under a listing.
type summaryTable struct {
	title   string
	headers []string
	aligns  []columnAlignment
	rows    [][]string
	// footer is optional; when set it is rendered as a totals row.
	footer []string
}

func (s summaryTable) render(style Style) string {
	columns := len(s.headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.Style().Format.Header = text.FormatDefault
	tw.Style().Format.Footer = text.FormatDefault
	if style.Color {
		tw.Style().Color.Header = text.Colors{text.FgCyan, text.Bold}
		tw.Style().Color.Footer = text.Colors{text.Bold}
	}
	if s.title != "" {
		tw.SetTitle(s.title)
	}

	tw.AppendHeader(s.row(s.headers))
	for _, r := range s.rows {
		tw.AppendRow(s.row(r))
	}
	if len(s.footer) > 0 {
		tw.AppendFooter(s.row(s.footer))
	}

	configs := make([]table.ColumnConfig, 0, columns)
	for i := range columns {
		cfg := table.ColumnConfig{Number: i + 1, AlignHeader: text.AlignLeft}
		if i < len(s.aligns) && s.aligns[i] == alignRight {
			cfg.Align = text.AlignRight
			cfg.AlignFooter = text.AlignRight
		} else {
			cfg.Align = text.AlignLeft
			cfg.WidthMax = maxCellWidth
			cfg.WidthMaxEnforcer = text.WrapSoft
		}
		configs = append(configs, cfg)
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}

// row pads or truncates values to the header width.
func (s summaryTable) row(values []string) table.Row {
	r := make(table.Row, len(s.headers))
	for i := range r {
		if i < len(values) {
			r[i] = values[i]
		} else {
			r[i] = ""
		}
	}
	return r
}
