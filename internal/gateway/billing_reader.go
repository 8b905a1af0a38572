package gateway

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/rolandertl/uberall-rechnungskontrolle/internal/domain"
)

// GetBillingRecords reads the uberall billing XLSX export from its first
// sheet. Rows are filtered to the salespartner allow-list, rows with an empty
// location ID are dropped, and the product category is derived from the
// optional plan column.
func (r *FileExportRepository) GetBillingRecords(ctx context.Context, path string) ([]domain.BillingRecord, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open billing file %s: %w", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q from %s: %w", sheet, path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("billing file %s: sheet %q has no header row", path, sheet)
	}

	cols, err := mapColumns(rows[0], []string{colBillingID, colSalespartner, colState, colName})
	if err != nil {
		return nil, fmt.Errorf("billing file %s: %w", path, err)
	}
	planIdx, hasPlan := cols[colPlan]
	if !hasPlan {
		planIdx = -1
	}

	var records []domain.BillingRecord
	for _, row := range rows[1:] {
		partner := strings.TrimSpace(cell(row, cols[colSalespartner]))
		if !r.allowedPartners[partner] {
			continue
		}
		id := strings.TrimSpace(cell(row, cols[colBillingID]))
		if id == "" {
			continue
		}

		plan := cell(row, planIdx)
		records = append(records, domain.BillingRecord{
			LocationID:   id,
			State:        domain.LocationState(strings.TrimSpace(cell(row, cols[colState]))),
			Name:         cell(row, cols[colName]),
			Plan:         plan,
			Product:      domain.CategorizePlan(plan),
			Salespartner: partner,
		})
	}

	r.log.Info("billing export loaded",
		zap.String("file", filepath.Base(path)),
		zap.Int("rows", len(rows)-1),
		zap.Int("kept", len(records)))

	return records, nil
}
