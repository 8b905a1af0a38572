package domain

import "encoding/json"

// ProblemType labels a category of reconciliation issue.
type ProblemType string

const (
	// ProblemNotInCRM flags billing records whose location ID has no CRM row.
	ProblemNotInCRM ProblemType = "Location nicht im CRM"
	// ProblemStatusCombination flags records whose billing state contradicts
	// the CRM workflow status.
	ProblemStatusCombination ProblemType = "Status-Kombination Problem"
)

// DetailNotInCRM is the fixed problem detail for unmatched billing records.
const DetailNotInCRM = "Location ID wurde im CRM nicht gefunden"

// FieldNotAvailable is reported for CRM-sourced fields of unmatched records.
const FieldNotAvailable = "N/A"

// ReconciliationOutcome is the verdict for a single billing record. Exactly
// one outcome exists per billing record that reached the engine; outcomes are
// never mutated after creation.
type ReconciliationOutcome struct {
	Billing BillingRecord `json:"billing"`
	// CRM is the first matching CRM record in source order, nil when the
	// location ID was not found in the CRM export.
	CRM *CrmRecord `json:"crm,omitempty"`
	// CRMMatchCount records how many CRM rows shared the location ID. More
	// than one points at a data-quality issue upstream; the verdict still
	// comes from the first match only.
	CRMMatchCount  int         `json:"crm_match_count"`
	OK             bool        `json:"ok"`
	ProblemType    ProblemType `json:"problem_type,omitempty"`
	ProblemDetail  string      `json:"problem_detail,omitempty"`
	WorkflowStatus string      `json:"workflow_status"`
	ProjectName    string      `json:"projektname"`
}

// BreakdownEntry is one label with its frequency count.
type BreakdownEntry struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Breakdown is a frequency count over string labels that preserves the order
// in which labels first appeared.
type Breakdown struct {
	labels []string
	counts map[string]int
}

// NewBreakdown returns an empty breakdown.
func NewBreakdown() *Breakdown {
	return &Breakdown{counts: make(map[string]int)}
}

// Add increments the count for label, registering it on first appearance.
func (b *Breakdown) Add(label string) {
	if _, ok := b.counts[label]; !ok {
		b.labels = append(b.labels, label)
	}
	b.counts[label]++
}

// Count returns the frequency of label, zero if it never appeared.
func (b *Breakdown) Count(label string) int {
	return b.counts[label]
}

// Labels returns all labels in first-appearance order.
func (b *Breakdown) Labels() []string {
	return b.labels
}

// Len returns the number of distinct labels.
func (b *Breakdown) Len() int {
	return len(b.labels)
}

// Total returns the sum of all counts.
func (b *Breakdown) Total() int {
	total := 0
	for _, c := range b.counts {
		total += c
	}
	return total
}

// Entries returns label/count pairs in first-appearance order.
func (b *Breakdown) Entries() []BreakdownEntry {
	entries := make([]BreakdownEntry, 0, len(b.labels))
	for _, label := range b.labels {
		entries = append(entries, BreakdownEntry{Label: label, Count: b.counts[label]})
	}
	return entries
}

// MarshalJSON renders the breakdown as an ordered list of entries so that
// first-appearance order survives serialization.
func (b *Breakdown) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Entries())
}

// AnalysisResult is the aggregate view over one reconciliation run.
// Invariant: OKCount + IssuesCount == TotalBilled, and the per-type issue
// counts sum to IssuesCount.
type AnalysisResult struct {
	TotalBilled      int                     `json:"total_billed"`
	OKCount          int                     `json:"ok_count"`
	IssuesCount      int                     `json:"issues_count"`
	IssuesByType     *Breakdown              `json:"issues_by_type"`
	ProductBreakdown *Breakdown              `json:"product_breakdown"`
	StateBreakdown   *Breakdown              `json:"location_state_breakdown"`
	Issues           []ReconciliationOutcome `json:"problematic_entries"`
}

// ProblemRate is the share of billing records needing manual review, in
// percent.
func (r *AnalysisResult) ProblemRate() float64 {
	if r.TotalBilled == 0 {
		return 0
	}
	return float64(r.IssuesCount) / float64(r.TotalBilled) * 100
}
