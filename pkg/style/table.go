package style

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// OutlierColors highlights values that fall outside the fence.
var OutlierColors = text.Colors{text.FgHiRed, text.Bold}

// NewReportTableStyle returns the rounded box style used for reports,
// the colored variant alternates yellow rows on a black background.
func NewReportTableStyle(colored bool) *table.Style {
	style := table.Style{
		Name:    "StyleRounded",
		Box:     table.StyleBoxRounded,
		Format:  table.FormatOptionsDefault,
		HTML:    table.DefaultHTMLOptions,
		Options: table.OptionsDefault,
		Title:   table.TitleOptionsDefault,
	}

	if colored {
		style.Color = table.ColorOptionsYellowWhiteOnBlack
		style.Color.Row = text.Colors{text.FgHiYellow, text.BgHiBlack}
		style.Color.RowAlternate = text.Colors{text.FgYellow, text.BgBlack}
	}

	return &style
}
