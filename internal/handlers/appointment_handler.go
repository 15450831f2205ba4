package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/medconnect/telemed-api/internal/httperr"
	"github.com/medconnect/telemed-api/internal/httpresp"
	"github.com/medconnect/telemed-api/internal/middleware"
	ucAppointment "github.com/medconnect/telemed-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	bookUC     *ucAppointment.BookAppointment
	listUC     *ucAppointment.ListAppointments
	startUC    *ucAppointment.StartCall
	joinUC     *ucAppointment.JoinCall
	completeUC *ucAppointment.CompleteAppointment
}

func NewAppointmentHandler(
	bookUC *ucAppointment.BookAppointment,
	listUC *ucAppointment.ListAppointments,
	startUC *ucAppointment.StartCall,
	joinUC *ucAppointment.JoinCall,
	completeUC *ucAppointment.CompleteAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		bookUC:     bookUC,
		listUC:     listUC,
		startUC:    startUC,
		joinUC:     joinUC,
		completeUC: completeUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookAppointmentRequest struct {
	DoctorID      string     `json:"doctor_id" binding:"required"`
	Type          string     `json:"type" binding:"required"`
	ScheduledTime *time.Time `json:"scheduled_time"`
}

// ======================================================
// BOOK
// ======================================================

func (h *AppointmentHandler) Book(c *gin.Context) {
	callerID := c.MustGet(middleware.ContextUserID).(string)

	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking data.")
		return
	}

	result, err := h.bookUC.Execute(c.Request.Context(), ucAppointment.BookAppointmentInput{
		PatientID:     callerID,
		DoctorID:      req.DoctorID,
		Type:          req.Type,
		ScheduledTime: req.ScheduledTime,
	})

	if err != nil {
		switch httperr.BusinessCode(err) {
		case "doctor_not_found":
			httperr.NotFound(c, "doctor_not_found", "Doctor not available.")
		case "invalid_type":
			httperr.BadRequest(c, "invalid_type", "Appointment type must be instant or scheduled.")
		case "missing_scheduled_time":
			httperr.BadRequest(c, "missing_scheduled_time", "Scheduled appointments need a time.")
		case "scheduled_time_in_past":
			httperr.BadRequest(c, "scheduled_time_in_past", "Scheduled time must be in the future.")
		default:
			httperr.Internal(c, "failed_to_book_appointment", "Failed to book appointment.")
		}
		return
	}

	resp := gin.H{"appointment": result.Appointment, "success": true}
	if result.PaymentURL != "" {
		resp["payment_url"] = result.PaymentURL
	}

	c.JSON(http.StatusCreated, resp)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	callerID := c.MustGet(middleware.ContextUserID).(string)

	appointments, err := h.listUC.Execute(c.Request.Context(), callerID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Failed to list appointments.")
		return
	}

	httpresp.List(c, appointments)
}

// ======================================================
// START / JOIN
// ======================================================

func (h *AppointmentHandler) Start(c *gin.Context) {
	callerID := c.MustGet(middleware.ContextUserID).(string)
	id := c.Param("id")

	roomID, err := h.startUC.Execute(c.Request.Context(), id, callerID)
	if err != nil {
		h.writeCallError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"video_room_id": roomID, "success": true})
}

func (h *AppointmentHandler) Join(c *gin.Context) {
	callerID := c.MustGet(middleware.ContextUserID).(string)
	id := c.Param("id")

	ap, err := h.joinUC.Execute(c.Request.Context(), id, callerID)
	if err != nil {
		h.writeCallError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"appointment": ap})
}

// ======================================================
// COMPLETE
// ======================================================

func (h *AppointmentHandler) Complete(c *gin.Context) {
	callerID := c.MustGet(middleware.ContextUserID).(string)
	id := c.Param("id")

	ap, err := h.completeUC.Execute(c.Request.Context(), id, callerID)
	if err != nil {
		h.writeCallError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"appointment": ap, "success": true})
}

// ======================================================
// ERROR MAPPING
// ======================================================

func (h *AppointmentHandler) writeCallError(c *gin.Context, err error) {
	switch httperr.BusinessCode(err) {
	case "appointment_not_found":
		httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
	case "not_a_party":
		httperr.Forbidden(c, "access_denied", "You are not a party to this appointment.")
	case "call_not_started":
		httperr.Conflict(c, "call_not_started", "The call has not been started yet.")
	case "invalid_state":
		httperr.Conflict(c, "invalid_state", "The appointment is not in a state that allows this.")
	default:
		httperr.Internal(c, "internal_error", "Something went wrong.")
	}
}
