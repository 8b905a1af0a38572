package domain

import "strings"

// LocationState is the lifecycle status of a billed location as reported by
// the uberall billing export.
type LocationState string

const (
	StateActive    LocationState = "ACTIVE"
	StateCancelled LocationState = "CANCELLED"
	StateInactive  LocationState = "INACTIVE"
)

// ProductCategory is the derived classification of a billed service.
type ProductCategory string

const (
	ProductBasic     ProductCategory = "Firmendaten Manager Basic"
	ProductPlus      ProductCategory = "Firmendaten Manager Plus"
	ProductPro       ProductCategory = "Firmendaten Manager PRO"
	ProductSonstige  ProductCategory = "Sonstige"
	ProductUnbekannt ProductCategory = "Unbekannt"
)

// BillingRecord represents one row of the uberall billing export, after
// salespartner filtering. Records with an empty location ID never leave the
// loader.
type BillingRecord struct {
	LocationID   string          `json:"location_id"`
	State        LocationState   `json:"location_state"`
	Name         string          `json:"location_name"`
	Plan         string          `json:"plan,omitempty"`
	Product      ProductCategory `json:"product"`
	Salespartner string          `json:"salespartner,omitempty"`
}

// CrmRecord represents one row of the CRM project export.
type CrmRecord struct {
	LocationID     string `json:"uberall_location_id"`
	WorkflowStatus string `json:"workflow_status"`
	ProjectName    string `json:"projektname"`
}

// CategorizePlan derives the product category from a raw plan name using
// case-insensitive substring rules. The first matching rule wins, so a plan
// like "basic pro" classifies as Basic.
func CategorizePlan(plan string) ProductCategory {
	p := strings.ToLower(strings.TrimSpace(plan))
	switch {
	case p == "":
		return ProductUnbekannt
	case strings.Contains(p, "basic"):
		return ProductBasic
	case strings.Contains(p, "plus"):
		// also covers the "manger plus" misspelling seen in real exports
		return ProductPlus
	case strings.Contains(p, "pro"):
		return ProductPro
	default:
		return ProductSonstige
	}
}
