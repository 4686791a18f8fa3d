package calculations

import (
	"time"

	"github.com/google/uuid"
)

// NewRealEstateProperty собирает входные данные симуляции с новым идентификатором
func NewRealEstateProperty(property PropertyInfo, loan LoanInfo, initial InitialCosts,
	annual AnnualCosts, selling SellingCostConfig) *RealEstateProperty {

	return &RealEstateProperty{
		ID:           uuid.NewString(),
		CreatedAt:    time.Now().UTC(),
		Property:     property,
		Loan:         loan,
		InitialCosts: initial,
		AnnualCosts:  annual,
		SellingCosts: selling,
	}
}
