package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// CarePackage is a subscription offering. Prices are in cents.
type CarePackage struct {
	ID           uuid.UUID `json:"id"`
	PackageType  string    `json:"package_type" validate:"required,max=50"`
	Name         string    `json:"name" validate:"required,max=100"`
	Description  *string   `json:"description,omitempty"`
	PriceMonthly int64     `json:"price_monthly" validate:"gte=0"`
	PriceYearly  *int64    `json:"price_yearly,omitempty" validate:"omitempty,gte=0"`
	Currency     string    `json:"currency" validate:"required,len=3"`
	Features     []string  `json:"features"`
	IsFeatured   bool      `json:"is_featured"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// HasFeatures reports whether the package includes every required feature.
func (p *CarePackage) HasFeatures(required []string) bool {
	for _, feature := range required {
		if !slices.Contains(p.Features, feature) {
			return false
		}
	}

	return true
}

// PackageRecommendationRequest describes what a prospective subscriber needs.
type PackageRecommendationRequest struct {
	UserType         string   `json:"user_type" validate:"required,max=50"`
	BudgetMonthly    *int64   `json:"budget_monthly,omitempty" validate:"omitempty,gt=0"`
	RequiredFeatures []string `json:"required_features,omitempty"`
}

// PackageRecommendation is the outcome of a recommendation.
type PackageRecommendation struct {
	UserType     string         `json:"user_type"`
	Recommended  *CarePackage   `json:"recommended_package"`
	Alternatives []*CarePackage `json:"alternative_packages"`
	Reasoning    string         `json:"reasoning"`
}
