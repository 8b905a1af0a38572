package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/rolandertl/uberall-rechnungskontrolle/internal/domain"
)

// ReconciliationUseCase orchestrates one control run: load both exports,
// reconcile, aggregate.
type ReconciliationUseCase struct {
	repo SourceRepository
	log  *zap.Logger
}

// NewReconciliationUseCase creates a new instance of the usecase.
func NewReconciliationUseCase(repo SourceRepository, log *zap.Logger) *ReconciliationUseCase {
	return &ReconciliationUseCase{repo: repo, log: log}
}

// Run loads the billing and CRM exports, reconciles them and returns the
// aggregated result. The two sources are independent, so they load
// concurrently.
func (uc *ReconciliationUseCase) Run(ctx context.Context, billingPath, crmPath string) (*domain.AnalysisResult, error) {
	var (
		billing []domain.BillingRecord
		crm     []domain.CrmRecord
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		billing, err = uc.repo.GetBillingRecords(ctx, billingPath)
		if err != nil {
			return fmt.Errorf("could not get billing records: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		crm, err = uc.repo.GetCrmRecords(ctx, crmPath)
		if err != nil {
			return fmt.Errorf("could not get CRM records: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	uc.log.Info("exports loaded",
		zap.Int("billing_records", len(billing)),
		zap.Int("crm_records", len(crm)))

	outcomes := Reconcile(billing, crm)
	result := Aggregate(billing, outcomes)

	uc.log.Info("reconciliation finished",
		zap.Int("total", result.TotalBilled),
		zap.Int("ok", result.OKCount),
		zap.Int("issues", result.IssuesCount))

	return result, nil
}

// Reconcile joins billing records to CRM records by location ID and
// classifies each pair. It produces exactly one outcome per billing record,
// in billing iteration order, and cannot fail: an unmatched or unclassifiable
// record becomes a defined problem outcome, never an error.
func Reconcile(billing []domain.BillingRecord, crm []domain.CrmRecord) []domain.ReconciliationOutcome {
	// Index the CRM side once; a per-record scan would make the join
	// quadratic on real export sizes.
	index := make(map[string][]domain.CrmRecord, len(crm))
	for _, rec := range crm {
		index[rec.LocationID] = append(index[rec.LocationID], rec)
	}

	outcomes := make([]domain.ReconciliationOutcome, 0, len(billing))
	for _, b := range billing {
		matches := index[b.LocationID]
		if len(matches) == 0 {
			outcomes = append(outcomes, domain.ReconciliationOutcome{
				Billing:        b,
				OK:             false,
				ProblemType:    domain.ProblemNotInCRM,
				ProblemDetail:  domain.DetailNotInCRM,
				WorkflowStatus: domain.FieldNotAvailable,
				ProjectName:    domain.FieldNotAvailable,
			})
			continue
		}

		// Duplicate location IDs resolve to the first CRM row in source
		// order; the count is kept so reports can surface the duplication.
		first := matches[0]
		ok, reason := domain.EvaluateStatus(b.State, first.WorkflowStatus)
		outcome := domain.ReconciliationOutcome{
			Billing:        b,
			CRM:            &first,
			CRMMatchCount:  len(matches),
			OK:             ok,
			WorkflowStatus: first.WorkflowStatus,
			ProjectName:    first.ProjectName,
		}
		if !ok {
			outcome.ProblemType = domain.ProblemStatusCombination
			outcome.ProblemDetail = reason
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes
}

// Aggregate builds the AnalysisResult from the full outcome sequence. The
// product and location-state breakdowns cover every billing record, not just
// the flagged ones, preserving first-appearance order of each distinct value.
func Aggregate(billing []domain.BillingRecord, outcomes []domain.ReconciliationOutcome) *domain.AnalysisResult {
	result := &domain.AnalysisResult{
		TotalBilled:      len(outcomes),
		IssuesByType:     domain.NewBreakdown(),
		ProductBreakdown: domain.NewBreakdown(),
		StateBreakdown:   domain.NewBreakdown(),
		Issues:           make([]domain.ReconciliationOutcome, 0),
	}

	for _, b := range billing {
		result.ProductBreakdown.Add(string(b.Product))
		result.StateBreakdown.Add(string(b.State))
	}

	for _, outcome := range outcomes {
		if outcome.OK {
			result.OKCount++
			continue
		}
		result.Issues = append(result.Issues, outcome)
		result.IssuesByType.Add(string(outcome.ProblemType))
	}
	result.IssuesCount = len(result.Issues)

	return result
}
