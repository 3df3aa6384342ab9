package handlers

import (
	"net/http"

	"medibook/models"
	"medibook/services/doctor"
	"medibook/utils"

	"github.com/gin-gonic/gin"
)

// DoctorHandler exposes the doctor directory and weekly schedule endpoints.
type DoctorHandler struct {
	Doctors doctor.DoctorService
}

func NewDoctorHandler(svc doctor.DoctorService) *DoctorHandler {
	return &DoctorHandler{Doctors: svc}
}

func (h *DoctorHandler) ListBySpecialtyHandler(c *gin.Context) {
	specialty := c.Query("specialty")
	if specialty == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "specialty query parameter is required")
		return
	}
	doctors, err := h.Doctors.FindBySpecialty(c.Request.Context(), specialty)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list doctors", err.Error())
		return
	}
	c.JSON(http.StatusOK, doctors)
}

func (h *DoctorHandler) GetByIDHandler(c *gin.Context) {
	doc, err := h.Doctors.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "doctor not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, doc)
}

// SetAvailabilityHandler replaces the doctor's weekly availability windows.
func (h *DoctorHandler) SetAvailabilityHandler(c *gin.Context) {
	var input struct {
		Windows []models.AvailabilityWindow `json:"windows" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if err := h.Doctors.SetWeeklyAvailability(c.Request.Context(), c.Param("id"), input.Windows); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to set availability", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}

func (h *DoctorHandler) GetAvailabilityHandler(c *gin.Context) {
	windows, err := h.Doctors.GetWeeklyAvailability(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch availability", err.Error())
		return
	}
	c.JSON(http.StatusOK, windows)
}
