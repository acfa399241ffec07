package cli

import (
	"fmt"
	"strings"

	"transferreport/internal/model"
)

// How many ranked clinics to show at each end of the table.
const rankingDisplayLimit = 3

// RenderReportSummary renders the key figures of a daily report for the
// terminal. The full document goes to JSON; this is the operator's glance.
func RenderReportSummary(report *model.Report) string {
	var b strings.Builder

	if !report.Classified {
		b.WriteString(FormatWarning("classification skipped"))
		b.WriteString("\n")
		for _, warning := range report.Warnings {
			b.WriteString(SubtleStyle.Render("  " + warning))
			b.WriteString("\n")
		}
		return b.String()
	}

	mix := report.CaseMix
	fmt.Fprintf(&b, "%s  %s\n",
		BoldStyle.Render("Window:"), report.Window.String())
	fmt.Fprintf(&b, "%s  %d total, %d in scope\n",
		BoldStyle.Render("Records:"), report.TotalRecords, report.ValidRecords)
	fmt.Fprintf(&b, "%s  %d new (%.1f%%), %d carried over (%.1f%%)\n",
		BoldStyle.Render("Case mix:"),
		mix.NewCount, mix.NewPercent,
		mix.CarriedOverCount, mix.CarriedOverPercent)

	if local, ok := report.Groups[model.GroupLocal][model.ScopeAll]; ok {
		fmt.Fprintf(&b, "%s  %d local", BoldStyle.Render("Regions:"), local.Records)
		if external, ok := report.Groups[model.GroupExternal][model.ScopeAll]; ok {
			fmt.Fprintf(&b, ", %d external", external.Records)
		}
		b.WriteString("\n")
	}

	if report.Elapsed != nil {
		if report.Elapsed.Resolution != nil {
			fmt.Fprintf(&b, "%s  mean %.1fh, median %.1fh over %d resolved\n",
				BoldStyle.Render("Resolution:"),
				report.Elapsed.Resolution.MeanHours,
				report.Elapsed.Resolution.MedianHours,
				report.Elapsed.ResolvedCases)
		}
		if report.Elapsed.Waiting != nil {
			fmt.Fprintf(&b, "%s  %d cases, mean %.1fh, longest %.1fh\n",
				BoldStyle.Render("Still waiting:"),
				report.Elapsed.WaitingCases,
				report.Elapsed.Waiting.MeanHours,
				report.Elapsed.Waiting.MaxHours)
		}
	}

	if len(report.ClinicRankings) > 0 {
		b.WriteString(BoldStyle.Render("Fastest clinics:"))
		b.WriteString("\n")
		for i, ranking := range report.ClinicRankings {
			if i >= rankingDisplayLimit {
				break
			}
			fmt.Fprintf(&b, "  %s %.1fh (n=%d)\n",
				ranking.Clinic, ranking.MeanHours, ranking.Count)
		}
		if len(report.ClinicRankings) > rankingDisplayLimit {
			b.WriteString(BoldStyle.Render("Slowest clinics:"))
			b.WriteString("\n")
			start := len(report.ClinicRankings) - rankingDisplayLimit
			if start < rankingDisplayLimit {
				start = rankingDisplayLimit
			}
			for _, ranking := range report.ClinicRankings[start:] {
				fmt.Fprintf(&b, "  %s %.1fh (n=%d)\n",
					ranking.Clinic, ranking.MeanHours, ranking.Count)
			}
		}
	}

	for _, warning := range report.Warnings {
		b.WriteString(FormatWarning(warning))
		b.WriteString("\n")
	}

	return RenderBox("Transfer report "+report.AnalysisDate, strings.TrimRight(b.String(), "\n"))
}
