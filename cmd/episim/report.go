package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	valueStyle  = lipgloss.NewStyle().Bold(true)
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 2)
)

// renderReport builds the styled terminal summary of one run.
func renderReport(res *Result) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("episim — "+res.Scenario.Topology+" / "+engineName(res)) + "\n\n")

	line := func(label, value string) {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-16s", label)) + valueStyle.Render(value) + "\n")
	}

	line("population", fmt.Sprintf("%d nodes, %d links", res.Nodes, res.Links))
	line("seed", strconv.FormatInt(res.Scenario.Seed, 10))
	if res.Times != nil {
		line("events fired", strconv.Itoa(res.Events))
		if res.Events > 0 {
			line("sim clock", fmt.Sprintf("%.4f", res.Times[len(res.Times)-1]))
		}
	} else {
		line("steps", strconv.Itoa(len(res.Series)-1))
	}
	line("peak infected", accentStyle.Render(strconv.Itoa(res.PeakI)))
	if res.Nodes > 0 {
		line("attack rate", fmt.Sprintf("%.1f%%", 100*float64(res.FinalR)/float64(res.Nodes)))
	}
	line("wall time", res.Elapsed.String())

	return borderStyle.Render(b.String())
}

// engineName labels the report header.
func engineName(res *Result) string {
	if res.Times != nil {
		return "event engine"
	}
	if res.Scenario.Resistance {
		return "discrete engine (waning immunity)"
	}

	return "discrete engine"
}

// writeSeriesCSV emits one row per timeline entry: index (or timestamp for
// the event engine), counts and fractions — the handoff format for
// external charting.
func writeSeriesCSV(path string, res *Result) error {
	out := os.Stdout
	if path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create csv: %w", err)
		}
		defer f.Close()
		out = f
	}

	w := csv.NewWriter(out)
	defer w.Flush()

	if err := w.Write([]string{"t", "s", "i", "r", "fs", "fi", "fr"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, c := range res.Series {
		t := strconv.Itoa(i)
		if res.Times != nil {
			t = strconv.FormatFloat(res.Times[i], 'g', -1, 64)
		}
		fs, fi, fr := c.Fractions()
		row := []string{
			t,
			strconv.Itoa(c.S), strconv.Itoa(c.I), strconv.Itoa(c.R),
			strconv.FormatFloat(fs, 'g', -1, 64),
			strconv.FormatFloat(fi, 'g', -1, 64),
			strconv.FormatFloat(fr, 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}

	return w.Error()
}
