package gateway

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Column names of the two export formats. Header matching is
// case-insensitive after trimming; the exports are hand-maintained and the
// casing drifts.
const (
	colBillingID    = "location id"
	colSalespartner = "salespartner name"
	colState        = "location state"
	colName         = "name"
	colPlan         = "plan"

	colCrmID    = "uberall-location-id"
	colWorkflow = "workflow-status"
	colProject  = "projektname"
)

// FileExportRepository implements the usecase.SourceRepository interface for
// local export files: the uberall billing XLSX and the CRM CSV export.
type FileExportRepository struct {
	allowedPartners map[string]bool
	log             *zap.Logger
}

// NewFileExportRepository creates a repository that keeps only billing rows
// whose salespartner is in the allow-list.
func NewFileExportRepository(allowedPartners []string, log *zap.Logger) *FileExportRepository {
	allowed := make(map[string]bool, len(allowedPartners))
	for _, p := range allowedPartners {
		allowed[p] = true
	}
	return &FileExportRepository{allowedPartners: allowed, log: log}
}

// mapColumns resolves header names to column indexes and fails when any
// required column is missing. The first occurrence of a duplicated header
// wins.
func mapColumns(header []string, required []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(h))
		if _, ok := idx[name]; !ok {
			idx[name] = i
		}
	}

	var missing []string
	for _, col := range required {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}
	return idx, nil
}

// cell returns the value at index i, or "" when the row is short. XLSX rows
// omit trailing empty cells.
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
