package gateway

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/rolandertl/uberall-rechnungskontrolle/internal/domain"
)

// crmDelimiters is tried in order; semicolon first because German CRM
// exports usually use it.
var crmDelimiters = []rune{';', ',', '\t'}

// GetCrmRecords reads the CRM CSV export. The delimiter is sniffed, the
// encoding falls back to Windows-1252 when the bytes are not valid UTF-8, and
// rows with an empty location ID are dropped.
func (r *FileExportRepository) GetCrmRecords(ctx context.Context, path string) ([]domain.CrmRecord, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CRM file %s: %w", path, err)
	}

	text, reencoded := decodeExport(raw)
	if reencoded {
		r.log.Debug("CRM export decoded as Windows-1252", zap.String("file", filepath.Base(path)))
	}

	header, rows, err := sniffCrmTable(text)
	if err != nil {
		return nil, fmt.Errorf("CRM file %s: %w", path, err)
	}

	cols, err := mapColumns(header, []string{colCrmID, colWorkflow, colProject})
	if err != nil {
		return nil, fmt.Errorf("CRM file %s: %w", path, err)
	}

	var records []domain.CrmRecord
	for _, row := range rows {
		id := strings.TrimSpace(cell(row, cols[colCrmID]))
		if id == "" {
			continue
		}
		records = append(records, domain.CrmRecord{
			LocationID:     id,
			WorkflowStatus: cell(row, cols[colWorkflow]),
			ProjectName:    cell(row, cols[colProject]),
		})
	}

	r.log.Info("CRM export loaded",
		zap.String("file", filepath.Base(path)),
		zap.Int("rows", len(rows)),
		zap.Int("kept", len(records)))

	return records, nil
}

// sniffCrmTable parses the export with each candidate delimiter and accepts
// the first parse whose header contains the location ID column.
func sniffCrmTable(text string) (header []string, rows [][]string, err error) {
	for _, delim := range crmDelimiters {
		reader := csv.NewReader(strings.NewReader(text))
		reader.Comma = delim
		reader.FieldsPerRecord = -1
		reader.LazyQuotes = true

		all, err := reader.ReadAll()
		if err != nil || len(all) == 0 {
			continue
		}
		for _, h := range all[0] {
			if strings.EqualFold(strings.TrimSpace(h), colCrmID) {
				return all[0], all[1:], nil
			}
		}
	}
	return nil, nil, errors.New("could not parse file with any delimiter: no uberall-Location-ID column found")
}

// decodeExport turns raw export bytes into text. German CRM exports are often
// Windows-1252 encoded; anything that is not valid UTF-8 is decoded as such.
// The second return reports whether the fallback was used.
func decodeExport(raw []byte) (string, bool) {
	raw = bytes.TrimPrefix(raw, []byte{0xEF, 0xBB, 0xBF})
	if utf8.Valid(raw) {
		return string(raw), false
	}
	decoded, _, err := transform.Bytes(charmap.Windows1252.NewDecoder(), raw)
	if err != nil {
		return string(raw), false
	}
	return string(decoded), true
}
