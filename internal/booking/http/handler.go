package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pedalshare/rental-booking-backend/internal/auth"
	"github.com/pedalshare/rental-booking-backend/internal/booking"
	"github.com/pedalshare/rental-booking-backend/internal/pkg/request"
	"github.com/pedalshare/rental-booking-backend/internal/pkg/response"
)

type Handler struct {
	service booking.Service
}

func NewHandler(service booking.Service) *Handler {
	return &Handler{service: service}
}

// Request submits a booking request for an offer. The caller becomes the
// requester; the interval is an inclusive date range.
func (h *Handler) Request(c *gin.Context) {
	var body RequestBookingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	requesterID := auth.GetUserID(c)
	if requesterID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	from, to := body.Dates()
	b, err := h.service.Request(c.Request.Context(), booking.RequestInput{
		OfferID:     body.OfferID,
		RequesterID: requesterID,
		From:        from,
		To:          to,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewBookingResponse(b))
}

func (h *Handler) Get(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), req.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	// Only the parties involved may inspect a booking.
	userID := auth.GetUserID(c)
	if userID != b.OwnerID && userID != b.RequesterID {
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) Approve(c *gin.Context) {
	h.mutate(c, h.service.Approve)
}

func (h *Handler) Cancel(c *gin.Context) {
	h.mutate(c, h.service.Cancel)
}

func (h *Handler) Reopen(c *gin.Context) {
	h.mutate(c, h.service.Reopen)
}

func (h *Handler) mutate(c *gin.Context, fn func(ctx context.Context, id, actorID string) (*booking.Booking, error)) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	actorID := auth.GetUserID(c)
	if actorID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	b, err := fn(c.Request.Context(), req.ID, actorID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

// ListForOffer returns every booking of an offer. Restricted to the offer
// owner by the service.
func (h *Handler) ListForOffer(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid offer id"})
		return
	}

	actorID := auth.GetUserID(c)
	if actorID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	bookings, err := h.service.ListForOffer(c.Request.Context(), req.ID, actorID)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// BookedDays reports the occupied calendar days of an offer in a window.
// Public: rental calendars are shown to anonymous visitors.
func (h *Handler) BookedDays(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid offer id"})
		return
	}

	var query BookedDaysRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	from, to := query.Dates()
	days, err := h.service.BookedDays(c.Request.Context(), req.ID, from, to)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookedDaysResponse(days))
}
