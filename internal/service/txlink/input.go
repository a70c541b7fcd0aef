package txlink

import (
	"math"

	"github.com/heartmarshall/tripmatch-backend/internal/domain"
)

const maxReasoningLength = 2000

// LinkInput holds parameters for a manual link.
type LinkInput struct {
	TransactionID string
	TripID        string
	Confidence    *float64 // nil means 1
	Reasoning     *string
}

// Validate validates the link input.
func (i LinkInput) Validate() error {
	var errs []domain.FieldError

	if i.TransactionID == "" {
		errs = append(errs, domain.FieldError{Field: "transactionId", Message: "required"})
	}
	if i.TripID == "" {
		errs = append(errs, domain.FieldError{Field: "tripId", Message: "required"})
	}
	if i.Confidence != nil && (math.IsNaN(*i.Confidence) || math.IsInf(*i.Confidence, 0)) {
		errs = append(errs, domain.FieldError{Field: "confidence", Message: "must be a number"})
	}
	if i.Reasoning != nil && len(*i.Reasoning) > maxReasoningLength {
		errs = append(errs, domain.FieldError{Field: "reasoning", Message: "too long"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
