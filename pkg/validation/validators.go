package validation

import (
	"github.com/go-playground/validator/v10"

	"go-intake-backend/internal/domain"
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("quote_tool", QuoteTool)
	_ = v.RegisterValidation("time_slot", TimeSlot)
}

// QuoteTool validates that a tool identifier is in the fixed catalog.
// Plan availability is a wizard concern; the gateway only rejects
// identifiers outside the enum.
func QuoteTool(fl validator.FieldLevel) bool {
	return domain.ToolKey(fl.Field().String()).IsValid()
}

// TimeSlot validates an appointment slot against the bookable set
func TimeSlot(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	return domain.IsValidTimeSlot(val)
}
