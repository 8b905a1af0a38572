package usecase

import (
	"context"

	"github.com/rolandertl/uberall-rechnungskontrolle/internal/domain"
)

// SourceRepository defines the interface for loading the two export files.
// The usecase layer depends on this interface, not on a concrete
// implementation; loaders deliver only well-formed records, so the core never
// sees malformed rows.
//
//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go SourceRepository
type SourceRepository interface {
	GetBillingRecords(ctx context.Context, path string) ([]domain.BillingRecord, error)
	GetCrmRecords(ctx context.Context, path string) ([]domain.CrmRecord, error)
}
