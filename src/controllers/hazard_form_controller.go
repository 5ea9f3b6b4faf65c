package controllers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"Backend-HazardAssessment/src/models"
	"Backend-HazardAssessment/src/services/hazardforms"
	"Backend-HazardAssessment/src/utils"
)

type HazardFormController struct {
	Service *hazardforms.Service
}

func NewHazardFormController(service *hazardforms.Service) *HazardFormController {
	return &HazardFormController{Service: service}
}

// SubmitForm godoc
// @Summary Submit a hazard assessment form
// @Description Validates the submission, assigns a form number, stores the record and emails it to the operations address
// @Tags hazard-forms
// @Accept json
// @Produce json
// @Param form body models.HazardFormSubmission true "Hazard assessment form"
// @Success 200 {object} models.SubmitFormResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /submit-form [post]
func (h *HazardFormController) SubmitForm(c *fiber.Ctx) error {
	var form models.HazardFormSubmission

	if err := c.BodyParser(&form); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid input")
	}

	record, err := h.Service.Submit(c.Context(), &form)
	if err != nil {
		if errors.Is(err, hazardforms.ErrMissingRequiredFields) {
			return utils.HandleError(c, http.StatusBadRequest, "Missing required fields")
		}
		return utils.HandleError(c, http.StatusInternalServerError, "Submission failed")
	}

	return c.JSON(models.SubmitFormResponse{
		Success:    true,
		FormNumber: record.FormNumber,
		ID:         record.ID.Hex(),
	})
}
