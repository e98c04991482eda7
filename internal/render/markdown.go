package render

import (
	"fmt"
	"strconv"
	"strings"

	"digitlens/domain/benford"
	"digitlens/internal/profiling"
)

// Published artifact filenames
const (
	ReportFile         = "benford_report.md"
	HTMLReportFile     = "benford_report.html"
	ObservedChartFile  = "first_digit_observed_vs_expected.svg"
	DeviationChartFile = "first_digit_deviation.svg"
	ManifestFile       = "run_manifest.json"
)

// ReportData collects everything the Markdown report shows. Profile and
// ChiSquare are optional sections; the core report renders without them.
type ReportData struct {
	Result    *benford.Result
	Profile   *profiling.AmountProfile
	ChiSquare *profiling.ChiSquareAssessment
}

// BuildMarkdownReport renders the analysis into the report document
func BuildMarkdownReport(data ReportData) string {
	result := data.Result

	lines := []string{
		"# Benford Analysis Report",
		"",
		fmt.Sprintf("Total non-zero amounts analyzed: **%s**", formatCount(result.Summary.TotalCount)),
		"",
		"## First-digit distribution",
		"",
		fmt.Sprintf("![Observed vs Expected](%s)", ObservedChartFile),
		"",
		fmt.Sprintf("![Observed - Expected Deviation](%s)", DeviationChartFile),
		"",
		"| Digit | Observed Count | Observed % | Expected % | Deviation (Obs - Exp) |",
		"| --- | --- | --- | --- | --- |",
	}

	for _, row := range result.Digits {
		lines = append(lines, fmt.Sprintf("| %d | %s | %.2f%% | %.2f%% | %+.2f%% |",
			row.Digit, formatCount(row.ObservedCount), row.ObservedPct, row.ExpectedPct, row.DeviationPct))
	}

	lines = append(lines,
		"",
		fmt.Sprintf("Mean absolute deviation (MAD): **%.4f**", result.Summary.MAD),
		fmt.Sprintf("Chi-square statistic: **%.2f**", result.Summary.ChiSquare),
		"",
		"MAD guidance (Nigrini):",
		"",
		"- 0.000–0.006: Close conformity",
		"",
		"- 0.006–0.012: Acceptable conformity",
		"",
		"- 0.012–0.015: Marginally acceptable",
		"",
		"- >0.015: Nonconformity",
	)

	if data.ChiSquare != nil {
		verdict := "does not reject Benford conformity at the 5% level"
		if data.ChiSquare.RejectAt05 {
			verdict = "rejects Benford conformity at the 5% level"
		}
		lines = append(lines,
			"",
			"## Conformity assessment",
			"",
			fmt.Sprintf("- MAD classification: **%s**", result.Summary.Conformity()),
			fmt.Sprintf("- Chi-square p-value (df = %d): **%.4f**", data.ChiSquare.DegreesOfFreedom, data.ChiSquare.PValue),
			fmt.Sprintf("- Chi-square critical value at 5%%: **%.2f**; the statistic %s", data.ChiSquare.CriticalValue05, verdict),
		)
	}

	if data.Profile != nil {
		profile := data.Profile
		lines = append(lines,
			"",
			"## Amount profile",
			"",
			"| Statistic | Value |",
			"| --- | --- |",
			fmt.Sprintf("| Count | %s |", formatCount(profile.Count)),
			fmt.Sprintf("| Mean | %.2f |", profile.Mean),
			fmt.Sprintf("| Median | %.2f |", profile.Median),
			fmt.Sprintf("| Std dev | %.2f |", profile.StdDev),
			fmt.Sprintf("| Min | %.2f |", profile.Min),
			fmt.Sprintf("| Max | %.2f |", profile.Max),
			fmt.Sprintf("| 25th percentile | %.2f |", profile.Q25),
			fmt.Sprintf("| 75th percentile | %.2f |", profile.Q75),
		)
	}

	return strings.Join(lines, "\n")
}

// formatCount renders an integer with comma-grouped thousands
func formatCount(n int) string {
	if n < 0 {
		return "-" + formatCount(-n)
	}
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
