package handlers

import (
	"net/http"

	"medibook/models"
	"medibook/services/doctor"
	"medibook/services/intelligence"
	"medibook/services/urgent"
	"medibook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UrgentHandler exposes the two-phase urgent booking flow.
type UrgentHandler struct {
	Urgent    urgent.UrgentBookingService
	Doctors   doctor.DoctorService
	Suggester intelligence.SpecialtySuggester
}

func NewUrgentHandler(
	urgentSvc urgent.UrgentBookingService,
	doctorSvc doctor.DoctorService,
	suggester intelligence.SpecialtySuggester,
) *UrgentHandler {
	return &UrgentHandler{
		Urgent:    urgentSvc,
		Doctors:   doctorSvc,
		Suggester: suggester,
	}
}

// SearchHandler runs the search phase: resolve a specialty, load the
// candidate pool and propose the best slot. Nothing is persisted; the
// response carries needsConfirmation=true and the identifiers the client
// must echo back to confirm.
func (h *UrgentHandler) SearchHandler(c *gin.Context) {
	var input struct {
		Symptoms  string `json:"symptoms" binding:"required"`
		Specialty string `json:"specialty"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	specialty := input.Specialty
	if specialty == "" {
		specialty = h.suggestSpecialty(c, input.Symptoms)
	}

	doctors, err := h.Doctors.FindBySpecialty(c.Request.Context(), specialty)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load doctors", err.Error())
		return
	}

	result := h.Urgent.FindBestUrgentSlot(c.Request.Context(), doctors, specialty, input.Symptoms)
	c.JSON(http.StatusOK, result)
}

// ConfirmHandler runs the commit phase with the identifiers echoed back
// from a search proposal.
func (h *UrgentHandler) ConfirmHandler(c *gin.Context) {
	var req models.UrgentConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	result := h.Urgent.ConfirmUrgentBooking(c.Request.Context(), req)
	c.JSON(http.StatusOK, result)
}

func (h *UrgentHandler) suggestSpecialty(c *gin.Context, symptoms string) string {
	const fallback = "General Physician"
	if h.Suggester == nil {
		return fallback
	}
	specialty, err := h.Suggester.SuggestSpecialty(c.Request.Context(), symptoms)
	if err != nil {
		utils.GetLogger().Warn("urgent: specialty suggestion failed, using fallback", zap.Error(err))
		return fallback
	}
	return specialty
}
