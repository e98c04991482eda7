package render

import (
	"fmt"
	"math"
	"strings"

	"digitlens/domain/benford"
)

// Chart canvas geometry, shared by both charts
const (
	chartWidth  = 900
	chartHeight = 500
	chartMargin = 60
)

var chartPalette = []string{"#4c78a8", "#f58518", "#54a24b"}

const (
	deviationPositiveFill = "#54a24b"
	deviationNegativeFill = "#e45756"
)

// barSeries is one named series of per-digit values, indexed digit-1
type barSeries struct {
	name   string
	values []float64
}

// BuildObservedExpectedChart renders the grouped observed-vs-expected
// percentage bars for digits 1 through 9
func BuildObservedExpectedChart(result *benford.Result) string {
	observed := make([]float64, benford.DigitCount)
	expected := make([]float64, benford.DigitCount)
	peak := 0.0
	for i, row := range result.Digits {
		observed[i] = row.ObservedPct
		expected[i] = row.ExpectedPct
		if row.ObservedPct > peak {
			peak = row.ObservedPct
		}
		if row.ExpectedPct > peak {
			peak = row.ExpectedPct
		}
	}

	series := []barSeries{
		{name: "Observed", values: observed},
		{name: "Expected", values: expected},
	}
	return groupedBarChart(
		"First-Digit Distribution (Observed vs Expected)",
		"Percent of totals",
		series,
		peak*1.2,
	)
}

func groupedBarChart(title, yLabel string, series []barSeries, yMax float64) string {
	plotWidth := float64(chartWidth - 2*chartMargin)
	plotHeight := float64(chartHeight - 2*chartMargin)
	groupWidth := plotWidth / benford.DigitCount
	barWidth := groupWidth / float64(len(series)+1)

	yPos := func(value float64) float64 {
		return float64(chartHeight-chartMargin) - (value/yMax)*plotHeight
	}

	lines := []string{
		fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d">`, chartWidth, chartHeight),
		`<rect width="100%" height="100%" fill="#ffffff"/>`,
		fmt.Sprintf(`<text x="%d" y="30" font-size="18" text-anchor="middle">%s</text>`, chartWidth/2, title),
		fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#333"/>`,
			chartMargin, chartHeight-chartMargin, chartWidth-chartMargin, chartHeight-chartMargin),
		fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#333"/>`,
			chartMargin, chartMargin, chartMargin, chartHeight-chartMargin),
	}

	for idx := 0; idx < benford.DigitCount; idx++ {
		xBase := float64(chartMargin) + float64(idx)*groupWidth
		for sIdx, s := range series {
			value := s.values[idx]
			y := yPos(value)
			barHeight := float64(chartHeight-chartMargin) - y
			x := xBase + (float64(sIdx)+0.5)*barWidth
			lines = append(lines, fmt.Sprintf(`<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s"/>`,
				x, y, barWidth*0.8, barHeight, chartPalette[sIdx%len(chartPalette)]))
		}
		lines = append(lines, fmt.Sprintf(`<text x="%.2f" y="%d" font-size="12" text-anchor="middle">%d</text>`,
			xBase+groupWidth/2, chartHeight-chartMargin+20, idx+1))
	}

	for i := 0; i <= 5; i++ {
		val := yMax * float64(i) / 5
		y := yPos(val)
		lines = append(lines,
			fmt.Sprintf(`<line x1="%d" y1="%.2f" x2="%d" y2="%.2f" stroke="#ddd"/>`,
				chartMargin, y, chartWidth-chartMargin, y),
			fmt.Sprintf(`<text x="%d" y="%.2f" font-size="10" text-anchor="end">%.1f%%</text>`,
				chartMargin-10, y+4, val))
	}

	lines = append(lines, fmt.Sprintf(`<text x="%d" y="%d" font-size="12">%s</text>`,
		chartMargin, chartMargin-20, yLabel))

	legendX := chartWidth - chartMargin - 150
	for idx, s := range series {
		y := chartMargin + idx*20
		lines = append(lines,
			fmt.Sprintf(`<rect x="%d" y="%d" width="12" height="12" fill="%s"/>`,
				legendX, y-10, chartPalette[idx%len(chartPalette)]),
			fmt.Sprintf(`<text x="%d" y="%d" font-size="12" alignment-baseline="middle">%s</text>`,
				legendX+18, y, s.name))
	}

	lines = append(lines, "</svg>")
	return strings.Join(lines, "\n")
}

// BuildDeviationChart renders signed observed-minus-expected bars on a
// symmetric axis centered at zero
func BuildDeviationChart(result *benford.Result) string {
	maxDev := 0.0
	for _, row := range result.Digits {
		if dev := math.Abs(row.DeviationPct); dev > maxDev {
			maxDev = dev
		}
	}
	yMax := maxDev * 1.2
	if maxDev == 0 {
		yMax = 0.05
	}

	plotWidth := float64(chartWidth - 2*chartMargin)
	plotHeight := float64(chartHeight - 2*chartMargin)
	groupWidth := plotWidth / benford.DigitCount
	barWidth := groupWidth * 0.6

	yPos := func(value float64) float64 {
		return float64(chartHeight-chartMargin) - ((value+yMax)/(2*yMax))*plotHeight
	}

	lines := []string{
		fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d">`, chartWidth, chartHeight),
		`<rect width="100%" height="100%" fill="#ffffff"/>`,
		fmt.Sprintf(`<text x="%d" y="30" font-size="18" text-anchor="middle">%s</text>`,
			chartWidth/2, "Deviation from Benford (Observed - Expected)"),
		fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#333"/>`,
			chartMargin, chartHeight-chartMargin, chartWidth-chartMargin, chartHeight-chartMargin),
		fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#333"/>`,
			chartMargin, chartMargin, chartMargin, chartHeight-chartMargin),
	}

	for idx, row := range result.Digits {
		dev := row.DeviationPct
		x := float64(chartMargin) + float64(idx)*groupWidth + (groupWidth-barWidth)/2
		y := yPos(math.Max(dev, 0))
		barHeight := math.Abs(dev) / (2 * yMax) * plotHeight
		fill := deviationPositiveFill
		if dev < 0 {
			fill = deviationNegativeFill
		}
		lines = append(lines,
			fmt.Sprintf(`<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s"/>`,
				x, y, barWidth, barHeight, fill),
			fmt.Sprintf(`<text x="%.2f" y="%d" font-size="12" text-anchor="middle">%d</text>`,
				x+barWidth/2, chartHeight-chartMargin+20, row.Digit))
	}

	for i := 0; i < 5; i++ {
		val := yMax * float64(i-2) / 2
		y := yPos(val)
		lines = append(lines,
			fmt.Sprintf(`<line x1="%d" y1="%.2f" x2="%d" y2="%.2f" stroke="#ddd"/>`,
				chartMargin, y, chartWidth-chartMargin, y),
			fmt.Sprintf(`<text x="%d" y="%.2f" font-size="10" text-anchor="end">%.1f%%</text>`,
				chartMargin-10, y+4, val))
	}

	lines = append(lines,
		fmt.Sprintf(`<text x="%d" y="%d" font-size="12">Observed - Expected</text>`,
			chartMargin, chartMargin-20),
		"</svg>")

	return strings.Join(lines, "\n")
}
