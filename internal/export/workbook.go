package export

import (
	"fmt"
	"io"
	"math"

	"github.com/xuri/excelize/v2"

	"qa-insights-go/internal/aggregator"
	"qa-insights-go/internal/scoring"
	"qa-insights-go/internal/types"
)

const (
	SheetSummary = "Summary"
	SheetCalls   = "Calls"
	SheetDrivers = "Drivers"
)

// DriverHeaders are the columns of the Drivers sheet.
var DriverHeaders = []string{
	"Call Driver", "Calls", "% of Total", "Avg Duration (s)", "Avg Procedure Flow",
	"Avg Ownership", "Avg Empathy", "Avg Verification", "Resolution Rate %", "Repeat Call %",
}

// WriteWorkbook writes an XLSX report of items: campaign summary, one row per
// call, and the call-driver breakdown.
func WriteWorkbook(w io.Writer, campaign types.Campaign, items []types.ResultItem) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	for _, s := range []string{SheetCalls, SheetDrivers} {
		if _, err := f.NewSheet(s); err != nil {
			return fmt.Errorf("new sheet %s: %w", s, err)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	records := types.Results(items)
	if err := writeSummary(f, bold, campaign, aggregator.GenerateDashboardMetrics(records)); err != nil {
		return err
	}
	if err := writeCalls(f, bold, records); err != nil {
		return err
	}
	if err := writeDrivers(f, bold, aggregator.BuildDriverMetrics(records)); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeSummary(f *excelize.File, bold int, campaign types.Campaign, m types.DashboardMetrics) error {
	s := m.AnalyticsSummary
	rows := [][]any{
		{"Metric", "Value"},
		{"Campaign", string(campaign)},
		{"Total Calls", m.TotalCalls},
		{"Average Duration", m.AvgDuration},
		{"Average Call Quality Score", round1(m.AvgQaScore)},
		{"Resolution Rate %", round1(s.ResolutionRate)},
		{"Resolved", m.Resolved.Count},
		{"Unresolved", m.Unresolved.Count},
	}
	if campaign == types.CampaignBanking {
		rows = append(rows, []any{"Average Verification Score", round1(m.AvgVerificationScore)})
	} else {
		rows = append(rows,
			[]any{"Average Procedure Flow Score", round1(m.AvgProcedureFlowScore)},
			[]any{"Average Ownership Score", round1(m.AvgOwnershipScore)},
		)
	}
	rows = append(rows,
		[]any{"Average Empathy Score", round1(m.AvgEmpathyScore)},
		[]any{"Positive Sentiment %", m.Sentiment.PositivePercent},
		[]any{"Negative Sentiment %", m.Sentiment.NegativePercent},
		[]any{"Top Call Driver", labelOrNA(s.TopCallDriver)},
		[]any{"Top Unresolved Root Cause", strOrNA(s.TopUnresolvedRootCause)},
	)

	reasonStart := len(rows) + 2
	rows = append(rows, []any{}, []any{"Unresolved Reason", "Calls"})
	for _, rc := range s.UnresolvedReasonCounts {
		rows = append(rows, []any{rc.Reason, rc.Count})
	}

	if err := setRows(f, SheetSummary, rows); err != nil {
		return err
	}
	if err := headerStyle(f, bold, SheetSummary, 1, 2); err != nil {
		return err
	}
	return headerStyle(f, bold, SheetSummary, reasonStart, 2)
}

func writeCalls(f *excelize.File, bold int, records []types.AnalysisResult) error {
	rows := make([][]any, 0, len(records)+1)
	rows = append(rows, toCells(CSVHeaders))
	for _, r := range records {
		row := callRow(r)
		// score is a number in the sheet, not the CSV's fixed-point string
		row[11] = roundTo(scoring.TotalScore(r), 2)
		rows = append(rows, row)
	}
	if err := setRows(f, SheetCalls, rows); err != nil {
		return err
	}
	return headerStyle(f, bold, SheetCalls, 1, len(CSVHeaders))
}

func writeDrivers(f *excelize.File, bold int, b types.DriverBreakdown) error {
	rows := make([][]any, 0, len(b.Data)+1)
	rows = append(rows, toCells(DriverHeaders))
	for _, d := range b.Data {
		rows = append(rows, []any{
			d.Driver, d.Count, round1(d.PercentOfTotal), round1(d.AvgDuration),
			round1(d.AvgProcedureFlowScore), round1(d.AvgOwnershipScore), round1(d.AvgEmpathyScore),
			round1(d.AvgVerificationScore), round1(d.ResolutionRate), round1(d.RepeatPercent),
		})
	}
	if err := setRows(f, SheetDrivers, rows); err != nil {
		return err
	}
	return headerStyle(f, bold, SheetDrivers, 1, len(DriverHeaders))
}

func setRows(f *excelize.File, sheet string, rows [][]any) error {
	for i := range rows {
		if len(rows[i]) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return fmt.Errorf("%s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

func headerStyle(f *excelize.File, style int, sheet string, row, cols int) error {
	first, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(cols, row)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, first, last, style)
}

func round1(x float64) float64 {
	return roundTo(x, 1)
}

func roundTo(x float64, digits int) float64 {
	p := math.Pow(10, float64(digits))
	return scoring.RoundHalfUp(x*p) / p
}

func labelOrNA(lv *types.LabelValue) string {
	if lv == nil {
		return "N/A"
	}
	return lv.Label
}

func strOrNA(s *string) string {
	if s == nil {
		return "N/A"
	}
	return *s
}
