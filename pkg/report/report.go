package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/c9s/outliers/pkg/outlier"
	"github.com/c9s/outliers/pkg/style"
	"github.com/c9s/outliers/pkg/util"
)

type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatPlain Format = "plain"
)

var ErrUnknownFormat = errors.New("unknown report format")

func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatTable, FormatJSON, FormatYAML, FormatPlain:
		return f, nil
	}

	return "", errors.Wrapf(ErrUnknownFormat, "%q, valid formats: table, json, yaml, plain", s)
}

// Report summarizes the fence computed for one dataset.
type Report struct {
	Name       string    `json:"name" yaml:"name"`
	Size       int       `json:"size" yaml:"size"`
	Median     float64   `json:"median" yaml:"median"`
	Q1         float64   `json:"q1" yaml:"q1"`
	Q3         float64   `json:"q3" yaml:"q3"`
	IQR        float64   `json:"iqr" yaml:"iqr"`
	Multiplier float64   `json:"multiplier" yaml:"multiplier"`
	Range      float64   `json:"range" yaml:"range"`
	Lower      float64   `json:"lower" yaml:"lower"`
	Upper      float64   `json:"upper" yaml:"upper"`
	Outliers   []float64 `json:"outliers" yaml:"outliers"`
}

func New(name string, fence *outlier.Fence[float64]) *Report {
	return &Report{
		Name:       name,
		Size:       fence.Size,
		Median:     fence.Median,
		Q1:         fence.Q1,
		Q3:         fence.Q3,
		IQR:        fence.IQR(),
		Multiplier: fence.Multiplier,
		Range:      fence.Range,
		Lower:      fence.Lower(),
		Upper:      fence.Upper(),
		Outliers:   fence.Outliers,
	}
}

// Renderer writes reports to an output.
type Renderer struct {
	Format Format

	// Colored enables ANSI colors for the table and plain formats.
	Colored bool

	// Precision is the number of decimals printed, -1 prints the shortest exact form.
	Precision int
}

func NewRenderer(format Format, colored bool) *Renderer {
	return &Renderer{Format: format, Colored: colored, Precision: -1}
}

func (r *Renderer) Render(w io.Writer, reports []*Report) error {
	switch r.Format {
	case FormatTable:
		return r.renderTable(w, reports)

	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)

	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return err
		}
		return enc.Close()

	case FormatPlain:
		return r.renderPlain(w, reports)
	}

	return errors.Wrapf(ErrUnknownFormat, "%q", r.Format)
}

func (r *Renderer) format(v float64) string {
	return util.FormatFloat(v, r.Precision)
}

func (r *Renderer) renderTable(w io.Writer, reports []*Report) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(*style.NewReportTableStyle(r.Colored))
	t.AppendHeader(table.Row{"Dataset", "Size", "Median", "Q1", "Q3", "Range", "Lower", "Upper", "Outliers"})

	for _, report := range reports {
		outliers := util.FormatFloats(report.Outliers, r.Precision, ", ")
		if r.Colored && len(report.Outliers) > 0 {
			outliers = style.OutlierColors.Sprint(outliers)
		}

		t.AppendRow(table.Row{
			report.Name,
			report.Size,
			r.format(report.Median),
			r.format(report.Q1),
			r.format(report.Q3),
			r.format(report.Range),
			r.format(report.Lower),
			r.format(report.Upper),
			outliers,
		})
	}

	t.Render()
	return nil
}

func (r *Renderer) renderPlain(w io.Writer, reports []*Report) error {
	highlight := color.New(color.FgRed, color.Bold)
	if !r.Colored {
		highlight.DisableColor()
	}

	for _, report := range reports {
		if _, err := fmt.Fprintf(w, "%s: %d values, median %s, fence [%s, %s], %s outliers\n",
			report.Name,
			report.Size,
			r.format(report.Median),
			r.format(report.Lower),
			r.format(report.Upper),
			strconv.Itoa(len(report.Outliers)),
		); err != nil {
			return err
		}

		for _, v := range report.Outliers {
			if _, err := highlight.Fprintln(w, r.format(v)); err != nil {
				return err
			}
		}
	}

	return nil
}
