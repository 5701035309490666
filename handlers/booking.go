package handlers

import (
	"errors"
	"net/http"

	"courtside/models"
	"courtside/services/booking"
	"courtside/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the booking workflow: availability, session
// selection, summaries, and the payment lifecycle.
type BookingHandler struct {
	Service booking.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// statusFor maps booking service error codes onto HTTP statuses.
func statusFor(err error) int {
	var berr *booking.BookingError
	if !errors.As(err, &berr) {
		return http.StatusInternalServerError
	}
	switch berr.Code {
	case booking.CodeValidation:
		return http.StatusBadRequest
	case booking.CodeNotFound:
		return http.StatusNotFound
	case booking.CodeConflict:
		return http.StatusConflict
	case booking.CodeState:
		return http.StatusConflict
	case booking.CodeGateway:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func bookingError(c *gin.Context, err error) {
	var berr *booking.BookingError
	if errors.As(err, &berr) {
		utils.JSONError(c, statusFor(err), berr.Message, "")
		return
	}
	utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", err.Error())
}

// AvailableSlotsHandler returns normalized available slots for a sport and a
// day or month window.
func (h *BookingHandler) AvailableSlotsHandler(c *gin.Context) {
	sportID := c.Query("sports_id")
	slotType := c.DefaultQuery("slot_type", models.SlotTypeDay)

	slots, err := h.Service.FetchAvailableSlots(c.Request.Context(), sportID, slotType,
		c.Query("date"), c.Query("type_month"), c.Query("type_year"))
	if err != nil {
		bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

// StartSessionHandler opens a booking session for the authenticated user.
func (h *BookingHandler) StartSessionHandler(c *gin.Context) {
	var req booking.StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	session, err := h.Service.StartSession(c.Request.Context(), c.GetString("userID"), req)
	if err != nil {
		bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// GetSessionHandler returns the caller's session state.
func (h *BookingHandler) GetSessionHandler(c *gin.Context) {
	session, err := h.Service.GetSession(c.Request.Context(), c.Param("sessionID"), c.GetString("userID"))
	if err != nil {
		bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// ToggleSlotHandler adds or removes one slot from the session's selection.
func (h *BookingHandler) ToggleSlotHandler(c *gin.Context) {
	var slot models.Slot
	if err := c.ShouldBindJSON(&slot); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	session, err := h.Service.ToggleSlot(c.Request.Context(), c.Param("sessionID"), c.GetString("userID"), slot)
	if err != nil {
		bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SetPlayersHandler updates the session's player count.
func (h *BookingHandler) SetPlayersHandler(c *gin.Context) {
	var req struct {
		NoOfPlayers int `json:"no_of_players" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	session, err := h.Service.SetPlayers(c.Request.Context(), c.Param("sessionID"), c.GetString("userID"), req.NoOfPlayers)
	if err != nil {
		bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// CancelSessionHandler discards the caller's session.
func (h *BookingHandler) CancelSessionHandler(c *gin.Context) {
	if err := h.Service.CancelSession(c.Request.Context(), c.Param("sessionID"), c.GetString("userID")); err != nil {
		bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// BookingSummaryHandler prices the current selection and returns the summary.
func (h *BookingHandler) BookingSummaryHandler(c *gin.Context) {
	var req struct {
		SessionID string `json:"session_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	summary, err := h.Service.BuildSummary(c.Request.Context(), req.SessionID, c.GetString("userID"))
	if err != nil {
		bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// BookSlotHandler opens a payment attempt for the session's priced summary.
func (h *BookingHandler) BookSlotHandler(c *gin.Context) {
	var req struct {
		SessionID     string `json:"session_id" binding:"required"`
		PaymentMethod string `json:"payment_method" binding:"required"`
		Name          string `json:"name" binding:"required"`
		Phone         string `json:"phone" binding:"required"`
		Email         string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	order, err := h.Service.CreateAttempt(c.Request.Context(), req.SessionID,
		c.GetString("userID"), c.GetString("role"), req.PaymentMethod,
		models.Customer{Name: req.Name, Phone: req.Phone, Email: req.Email})
	if err != nil {
		bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// VerifyPaymentHandler checks the gateway's signed success payload and
// commits or cancels the attempt.
func (h *BookingHandler) VerifyPaymentHandler(c *gin.Context) {
	var req models.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	attempt, err := h.Service.VerifyPayment(c.Request.Context(), req)
	if err != nil {
		bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": attempt.Status, "payment_id": attempt.PaymentID})
}

// MyBookingsHandler returns the caller's payment attempts.
func (h *BookingHandler) MyBookingsHandler(c *gin.Context) {
	attempts, err := h.Service.ListUserAttempts(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": attempts})
}

// CancelBookingHandler cancels the caller's pending attempt and releases
// its slots.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	attempt, err := h.Service.CancelAttempt(c.Request.Context(), c.Param("paymentID"), c.GetString("userID"))
	if err != nil {
		bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": attempt.Status, "payment_id": attempt.PaymentID})
}

// PaymentFailedHandler records a gateway-reported failure for the caller's
// attempt and releases its slots.
func (h *BookingHandler) PaymentFailedHandler(c *gin.Context) {
	var req struct {
		PaymentID string `json:"payment_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	attempt, err := h.Service.FailAttempt(c.Request.Context(), req.PaymentID, c.GetString("userID"))
	if err != nil {
		bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": attempt.Status, "payment_id": attempt.PaymentID})
}
