package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rolandertl/uberall-rechnungskontrolle/internal/domain"
	"github.com/rolandertl/uberall-rechnungskontrolle/internal/usecase"
)

func sampleResult() *domain.AnalysisResult {
	billing := []domain.BillingRecord{
		{LocationID: "L1", State: "ACTIVE", Name: "Bäckerei Huber", Product: domain.ProductBasic},
		{LocationID: "L2", State: "ACTIVE", Name: "Müller, Wien", Product: domain.ProductPro},
		{LocationID: "L3", State: "CANCELLED", Name: "Cafe Sacher", Product: domain.ProductBasic},
	}
	crm := []domain.CrmRecord{
		{LocationID: "L1", WorkflowStatus: "Firmendaten Manager Fulfillment abgeschlossen.", ProjectName: "Huber"},
		{LocationID: "L2", WorkflowStatus: "in Arbeit, Rückfrage offen", ProjectName: "Müller"},
		// L3 missing from CRM
	}
	outcomes := usecase.Reconcile(billing, crm)
	return usecase.Aggregate(billing, outcomes)
}

func sampleRunInfo() RunInfo {
	return RunInfo{
		ID:        uuid.MustParse("a2f1bb84-9c1d-4a41-9a2e-3f53cf1bb0aa"),
		Timestamp: time.Date(2026, 8, 28, 14, 30, 0, 0, time.Local),
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleResult(), sampleRunInfo()))
	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	assert.Equal(t, "# uberall Rechnungskontrolle - Bericht", lines[0])
	assert.Equal(t, "# Erstellt am: 28.08.2026 14:30", lines[1])
	assert.Equal(t, "# Lauf-ID: a2f1bb84-9c1d-4a41-9a2e-3f53cf1bb0aa", lines[2])

	assert.Contains(t, out, "# Gesamt verrechnet (gefiltert): 3")
	assert.Contains(t, out, "# OK (korrekte Status-Kombination): 1")
	assert.Contains(t, out, "# Manuelle Kontrolle nötig: 2")
	assert.Contains(t, out, "# Problemrate: 66.7%")

	assert.Contains(t, out, "# Produkttyp-Breakdown:")
	assert.Contains(t, out, "# Firmendaten Manager Basic: 2")
	assert.Contains(t, out, "# Firmendaten Manager PRO: 1")
	assert.Contains(t, out, "# Location State-Breakdown:")
	assert.Contains(t, out, "# ACTIVE: 2")
	assert.Contains(t, out, "# Probleme nach Typ:")
	assert.Contains(t, out, "# Status-Kombination Problem: 1")
	assert.Contains(t, out, "# Location nicht im CRM: 1")

	assert.Contains(t, out, "Location ID,Location Name,Location State,Problem Typ,Problem Detail,Workflow Status,Projektname")
}

func TestWriteCSV_SanitizesEmbeddedSeparators(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleResult(), sampleRunInfo()))

	var issueLine string
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.HasPrefix(line, "L2,") {
			issueLine = line
			break
		}
	}
	require.NotEmpty(t, issueLine, "expected an issue row for L2")

	// Embedded commas in name and workflow status became semicolons, so the
	// row still has exactly seven fields.
	fields := strings.Split(issueLine, ",")
	assert.Len(t, fields, 7)
	assert.Equal(t, "Müller; Wien", fields[1])
	assert.Equal(t, "in Arbeit; Rückfrage offen", fields[5])
}

func TestWriteCSV_UnmatchedRecordReportsNA(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleResult(), sampleRunInfo()))
	assert.Contains(t, buf.String(), "L3,Cafe Sacher,CANCELLED,Location nicht im CRM,Location ID wurde im CRM nicht gefunden,N/A,N/A")
}

func TestWriteCSV_EmptyResult(t *testing.T) {
	result := usecase.Aggregate(nil, nil)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, result, sampleRunInfo()))
	out := buf.String()

	assert.Contains(t, out, "# Gesamt verrechnet (gefiltert): 0")
	assert.NotContains(t, out, "# Problemrate:")
	// Header row is always present even with no issues.
	assert.Contains(t, out, "Location ID,Location Name,Location State")
}

func TestSanitizeField(t *testing.T) {
	assert.Equal(t, "a; b", sanitizeField("a, b"))
	assert.Equal(t, "zwei Zeilen", sanitizeField("zwei\nZeilen"))
	assert.Equal(t, "unverändert", sanitizeField("unverändert"))
}
