package hazardforms

import (
	"Backend-HazardAssessment/src/models"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateSubmission ตรวจสอบ field ที่จำเป็นก่อนบันทึกข้อมูล
// Only presence is checked; date stays opaque text and no lengths are enforced.
func ValidateSubmission(form *models.HazardFormSubmission) error {
	if err := validate.Struct(form); err != nil {
		return ErrMissingRequiredFields
	}
	return nil
}
