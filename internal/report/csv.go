// Package report renders an AnalysisResult for humans: a delimited control
// report for downstream processing and text tables for the terminal. File
// formats are fixed here and nowhere else.
package report

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/rolandertl/uberall-rechnungskontrolle/internal/domain"
)

// RunInfo identifies a single control run in the report preamble.
type RunInfo struct {
	ID        uuid.UUID
	Timestamp time.Time
}

// NewRunInfo stamps a fresh run with the current time.
func NewRunInfo() RunInfo {
	return RunInfo{ID: uuid.New(), Timestamp: time.Now()}
}

// csvColumns is the fixed column order of the issue table.
var csvColumns = []string{
	"Location ID",
	"Location Name",
	"Location State",
	"Problem Typ",
	"Problem Detail",
	"Workflow Status",
	"Projektname",
}

// WriteCSV writes the control report: a #-prefixed preamble with the run
// summary and breakdowns, then the issue table with the fixed seven columns.
func WriteCSV(w io.Writer, result *domain.AnalysisResult, info RunInfo) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "# uberall Rechnungskontrolle - Bericht")
	fmt.Fprintf(bw, "# Erstellt am: %s\n", info.Timestamp.Format("02.01.2006 15:04"))
	fmt.Fprintf(bw, "# Lauf-ID: %s\n", info.ID)
	fmt.Fprintln(bw, "#")
	fmt.Fprintf(bw, "# Gesamt verrechnet (gefiltert): %d\n", result.TotalBilled)
	fmt.Fprintf(bw, "# OK (korrekte Status-Kombination): %d\n", result.OKCount)
	fmt.Fprintf(bw, "# Manuelle Kontrolle nötig: %d\n", result.IssuesCount)
	if result.TotalBilled > 0 {
		fmt.Fprintf(bw, "# Problemrate: %.1f%%\n", result.ProblemRate())
	}
	fmt.Fprintln(bw, "#")

	writeBreakdown(bw, "Produkttyp-Breakdown", result.ProductBreakdown)
	writeBreakdown(bw, "Location State-Breakdown", result.StateBreakdown)
	writeBreakdown(bw, "Probleme nach Typ", result.IssuesByType)

	fmt.Fprintln(bw)
	writeRow(bw, csvColumns)
	for _, issue := range result.Issues {
		writeRow(bw, []string{
			issue.Billing.LocationID,
			issue.Billing.Name,
			string(issue.Billing.State),
			string(issue.ProblemType),
			issue.ProblemDetail,
			issue.WorkflowStatus,
			issue.ProjectName,
		})
	}

	return bw.Flush()
}

func writeBreakdown(w io.Writer, title string, b *domain.Breakdown) {
	if b == nil || b.Len() == 0 {
		return
	}
	fmt.Fprintf(w, "# %s:\n", title)
	for _, entry := range b.Entries() {
		fmt.Fprintf(w, "# %s: %d\n", entry.Label, entry.Count)
	}
	fmt.Fprintln(w, "#")
}

func writeRow(w io.Writer, fields []string) {
	for i, field := range fields {
		if i > 0 {
			fmt.Fprint(w, ",")
		}
		fmt.Fprint(w, sanitizeField(field))
	}
	fmt.Fprintln(w)
}

// sanitizeField keeps the comma-delimited rows well-formed without a full
// quoting scheme: embedded commas become semicolons, embedded line breaks
// become spaces.
func sanitizeField(field string) string {
	out := make([]rune, 0, len(field))
	for _, r := range field {
		switch r {
		case ',':
			out = append(out, ';')
		case '\n', '\r':
			out = append(out, ' ')
		default:
			out = append(out, r)
		}
	}
	return string(out)
}
