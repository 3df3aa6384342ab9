package handlers

import (
	"net/http"
	"time"

	"medibook/services/appointment"
	"medibook/utils"

	"github.com/gin-gonic/gin"
)

// AppointmentHandler exposes the general appointment CRUD used by the
// mobile app's screens.
type AppointmentHandler struct {
	Appointments appointment.AppointmentService
}

func NewAppointmentHandler(svc appointment.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{Appointments: svc}
}

func (h *AppointmentHandler) CreateHandler(c *gin.Context) {
	var input struct {
		PatientID   string `json:"patientId" binding:"required"`
		PatientName string `json:"patientName" binding:"required"`
		DoctorID    string `json:"doctorId" binding:"required"`
		DoctorName  string `json:"doctorName"`
		Specialty   string `json:"specialty"`
		Date        string `json:"date" binding:"required"` // "2006-01-02"
		Block       string `json:"block" binding:"required"`
		Notes       string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	day, err := time.ParseInLocation("2006-01-02", input.Date, time.Local)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid date", "expected yyyy-MM-dd")
		return
	}

	appt, err := h.Appointments.Create(c.Request.Context(), appointment.CreateInput{
		PatientID:   input.PatientID,
		PatientName: input.PatientName,
		DoctorID:    input.DoctorID,
		DoctorName:  input.DoctorName,
		Specialty:   input.Specialty,
		Date:        day,
		Block:       input.Block,
		Notes:       input.Notes,
	})
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create appointment", err.Error())
		return
	}
	c.JSON(http.StatusCreated, appt)
}

func (h *AppointmentHandler) ListByPatientHandler(c *gin.Context) {
	appts, err := h.Appointments.ListByPatient(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list appointments", err.Error())
		return
	}
	c.JSON(http.StatusOK, appts)
}

func (h *AppointmentHandler) ListByDoctorHandler(c *gin.Context) {
	appts, err := h.Appointments.ListByDoctor(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list appointments", err.Error())
		return
	}
	c.JSON(http.StatusOK, appts)
}

func (h *AppointmentHandler) UpdateStatusHandler(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if err := h.Appointments.UpdateStatus(c.Request.Context(), c.Param("id"), input.Status); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update status", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}

func (h *AppointmentHandler) CancelHandler(c *gin.Context) {
	if err := h.Appointments.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to cancel appointment", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"cancelled": true})
}
