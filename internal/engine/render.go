package engine

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/goccy/go-json"

	"github.com/rshade/footprint/internal/footprint"
	"github.com/rshade/footprint/internal/greenops"
)

// tabwriterPadding is the minimum padding between table columns.
const tabwriterPadding = 2

// NDJSON record kinds.
const (
	RecordReport      = "report"
	RecordBenchmark   = "benchmark"
	RecordEquivalency = "equivalency"
	RecordTip         = "tip"
)

// RenderResult writes result to w in the given format.
func RenderResult(w io.Writer, format OutputFormat, result *Result) error {
	if result == nil {
		return errors.New("nothing to render")
	}
	switch format {
	case OutputTable:
		return renderTable(w, result)
	case OutputJSON:
		return renderJSON(w, result)
	case OutputNDJSON:
		return renderNDJSON(w, result)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// RenderBenchmarks writes the reference benchmark rows to w.
func RenderBenchmarks(w io.Writer, format OutputFormat, rows []footprint.BenchmarkEntry) error {
	switch format {
	case OutputTable:
		tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)
		if err := writeBenchmarkRows(tw, rows); err != nil {
			return err
		}
		return tw.Flush()
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case OutputNDJSON:
		enc := json.NewEncoder(w)
		for _, row := range rows {
			if err := enc.Encode(benchmarkRecord{Kind: RecordBenchmark, BenchmarkEntry: row}); err != nil {
				return fmt.Errorf("encoding benchmark: %w", err)
			}
		}
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// RenderTips writes the reduction tips to w.
func RenderTips(w io.Writer, format OutputFormat, tips []string) error {
	switch format {
	case OutputTable:
		if _, err := fmt.Fprintln(w, TipsHeading); err != nil {
			return fmt.Errorf("writing tips: %w", err)
		}
		for _, tip := range tips {
			if _, err := fmt.Fprintf(w, "- %s\n", tip); err != nil {
				return fmt.Errorf("writing tips: %w", err)
			}
		}
		return nil
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(tips)
	case OutputNDJSON:
		enc := json.NewEncoder(w)
		for _, tip := range tips {
			if err := enc.Encode(tipRecord{Kind: RecordTip, Text: tip}); err != nil {
				return fmt.Errorf("encoding tip: %w", err)
			}
		}
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func renderJSON(w io.Writer, result *Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	return nil
}

type reportRecord struct {
	Kind string `json:"kind"`
	footprint.EmissionsReport
}

type benchmarkRecord struct {
	Kind string `json:"kind"`
	footprint.BenchmarkEntry
}

type equivalencyRecord struct {
	Kind string `json:"kind"`
	greenops.EquivalencyOutput
}

type tipRecord struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

// renderNDJSON writes one record per line: the report, each benchmark row,
// the equivalency (when present), then each tip.
func renderNDJSON(w io.Writer, result *Result) error {
	enc := json.NewEncoder(w)

	if err := enc.Encode(reportRecord{Kind: RecordReport, EmissionsReport: result.Report}); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	for _, row := range result.Benchmarks {
		if err := enc.Encode(benchmarkRecord{Kind: RecordBenchmark, BenchmarkEntry: row}); err != nil {
			return fmt.Errorf("encoding benchmark: %w", err)
		}
	}
	if !result.Equivalency.IsEmpty {
		if err := enc.Encode(equivalencyRecord{Kind: RecordEquivalency, EquivalencyOutput: result.Equivalency}); err != nil {
			return fmt.Errorf("encoding equivalency: %w", err)
		}
	}
	for _, tip := range result.Tips {
		if err := enc.Encode(tipRecord{Kind: RecordTip, Text: tip}); err != nil {
			return fmt.Errorf("encoding tip: %w", err)
		}
	}
	return nil
}

// renderTable writes the plain-text report used for pipes and non-styled
// terminals.
func renderTable(w io.Writer, result *Result) error {
	if _, err := fmt.Fprintf(w, "%s\n\n", result.SummaryLine()); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}

	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', tabwriter.AlignRight)
	if _, err := fmt.Fprintf(tw, "CATEGORY\tKG CO2\t\n--------\t------\t\n"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, line := range BreakdownLines(result.Report.Breakdown) {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t\n", line.Label,
			greenops.FormatFloat(line.KgCO2, result.Precision)); err != nil {
			return fmt.Errorf("writing breakdown: %w", err)
		}
	}
	if _, err := fmt.Fprintf(tw, "TOTAL\t%s\t\n\n", greenops.FormatFloat(result.Report.TotalKgCO2, result.Precision)); err != nil {
		return fmt.Errorf("writing total: %w", err)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	tw = tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)
	if err := writeBenchmarkRows(tw, result.Benchmarks); err != nil {
		return err
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if !result.Equivalency.IsEmpty {
		if _, err := fmt.Fprintf(w, "\n%s\n", result.Equivalency.DisplayText); err != nil {
			return fmt.Errorf("writing equivalency: %w", err)
		}
	}

	if _, err := fmt.Fprintf(w, "\n%s\n", TipsHeading); err != nil {
		return fmt.Errorf("writing tips: %w", err)
	}
	for _, tip := range result.Tips {
		if _, err := fmt.Fprintf(w, "- %s\n", tip); err != nil {
			return fmt.Errorf("writing tips: %w", err)
		}
	}
	return nil
}

func writeBenchmarkRows(tw io.Writer, rows []footprint.BenchmarkEntry) error {
	if _, err := fmt.Fprintf(tw, "COMPARISON\tKG CO2\n----------\t------\n"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", row.Label, greenops.FormatKg(row.KgCO2)); err != nil {
			return fmt.Errorf("writing benchmark: %w", err)
		}
	}
	return nil
}

// TipsHeading introduces the reduction tips.
const TipsHeading = "Tips to Reduce Your Emissions"

// BreakdownLine is one labelled category contribution.
type BreakdownLine struct {
	Label string
	KgCO2 float64
}

// BreakdownLines returns b's contributions in survey order.
func BreakdownLines(b footprint.Breakdown) []BreakdownLine {
	return []BreakdownLine{
		{"Car", b.Car},
		{"Flights", b.Flights},
		{"Diet", b.Diet},
		{"Electricity", b.Electricity},
		{"Shopping", b.Shopping},
		{"Recycling", b.Recycling},
	}
}
