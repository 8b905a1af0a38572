package report

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/rolandertl/uberall-rechnungskontrolle/internal/domain"
)

// WriteSummary renders the run summary and the two breakdowns as text tables.
func WriteSummary(w io.Writer, result *domain.AnalysisResult) {
	metrics := tablewriter.NewWriter(w)
	metrics.SetHeader([]string{"Kennzahl", "Wert"})
	metrics.SetAutoWrapText(false)
	metrics.Append([]string{"Gesamt verrechnet", fmt.Sprintf("%d", result.TotalBilled)})
	metrics.Append([]string{"OK (korrekt)", fmt.Sprintf("%d", result.OKCount)})
	metrics.Append([]string{"Manuelle Kontrolle", fmt.Sprintf("%d", result.IssuesCount)})
	metrics.Append([]string{"Problemrate", fmt.Sprintf("%.1f%%", result.ProblemRate())})
	metrics.Render()

	writeBreakdownTable(w, "Produkttyp", result.ProductBreakdown)
	writeBreakdownTable(w, "Location State", result.StateBreakdown)
	writeBreakdownTable(w, "Problemtyp", result.IssuesByType)
}

// WriteIssues renders the flagged records with a dashboard deep link per
// location, the terminal counterpart of the CSV issue table.
func WriteIssues(w io.Writer, result *domain.AnalysisResult, dashboardBaseURL string) {
	if len(result.Issues) == 0 {
		fmt.Fprintln(w, "Alle Einträge sind korrekt, keine manuellen Kontrollen nötig.")
		return
	}

	fmt.Fprintf(w, "Problematische Einträge (%d):\n", len(result.Issues))
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Location ID", "Name", "State", "Problem", "Workflow Status", "Projektname", "Link"})
	table.SetAutoWrapText(false)
	for _, issue := range result.Issues {
		detail := issue.ProblemDetail
		if issue.CRMMatchCount > 1 {
			detail = fmt.Sprintf("%s (%d CRM-Treffer)", detail, issue.CRMMatchCount)
		}
		table.Append([]string{
			issue.Billing.LocationID,
			issue.Billing.Name,
			string(issue.Billing.State),
			detail,
			issue.WorkflowStatus,
			issue.ProjectName,
			fmt.Sprintf("%s/%s", dashboardBaseURL, issue.Billing.LocationID),
		})
	}
	table.Render()
}

func writeBreakdownTable(w io.Writer, label string, b *domain.Breakdown) {
	if b == nil || b.Len() == 0 {
		return
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{label, "Anzahl"})
	table.SetAutoWrapText(false)
	for _, entry := range b.Entries() {
		table.Append([]string{entry.Label, fmt.Sprintf("%d", entry.Count)})
	}
	table.Render()
}
