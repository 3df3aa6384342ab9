package routes

import (
	"medibook/handlers"

	"github.com/gin-gonic/gin"
)

// Handlers bundles everything the router needs.
type Handlers struct {
	Urgent        *handlers.UrgentHandler
	Appointments  *handlers.AppointmentHandler
	Doctors       *handlers.DoctorHandler
	Notifications *handlers.NotificationHandler
}

// RegisterRoutes wires all endpoints onto the router.
func RegisterRoutes(r *gin.Engine, h *Handlers) {
	urgent := r.Group("/api/urgent")
	{
		urgent.POST("/search", h.Urgent.SearchHandler)   // Phase 1: propose a slot
		urgent.POST("/confirm", h.Urgent.ConfirmHandler) // Phase 2: commit it
	}

	appointments := r.Group("/api/appointments")
	{
		appointments.POST("", h.Appointments.CreateHandler)
		appointments.GET("/patient/:id", h.Appointments.ListByPatientHandler)
		appointments.GET("/doctor/:id", h.Appointments.ListByDoctorHandler)
		appointments.PUT("/:id/status", h.Appointments.UpdateStatusHandler)
		appointments.DELETE("/:id", h.Appointments.CancelHandler)
	}

	doctors := r.Group("/api/doctors")
	{
		doctors.GET("", h.Doctors.ListBySpecialtyHandler)
		doctors.GET("/:id", h.Doctors.GetByIDHandler)
		doctors.PUT("/:id/availability", h.Doctors.SetAvailabilityHandler)
		doctors.GET("/:id/availability", h.Doctors.GetAvailabilityHandler)
	}

	r.GET("/api/notifications/:id", h.Notifications.ListHandler)
}
