package http

import (
	"time"

	"github.com/pedalshare/rental-booking-backend/internal/booking"
)

const dateLayout = "2006-01-02"

type RequestBookingBody struct {
	OfferID string `json:"offer_id" binding:"required,uuid"`
	From    string `json:"from" binding:"required,datetime=2006-01-02"`
	To      string `json:"to" binding:"required,datetime=2006-01-02"`
}

// Dates parses the request bounds. Binding already guarantees the layout.
func (b RequestBookingBody) Dates() (from, to time.Time) {
	from, _ = time.ParseInLocation(dateLayout, b.From, time.UTC)
	to, _ = time.ParseInLocation(dateLayout, b.To, time.UTC)
	return from, to
}

// BookedDaysRequest defines query parameters for the occupied-days report.
type BookedDaysRequest struct {
	From string `form:"from" binding:"required,datetime=2006-01-02"`
	To   string `form:"to" binding:"required,datetime=2006-01-02"`
}

func (r BookedDaysRequest) Dates() (from, to time.Time) {
	from, _ = time.ParseInLocation(dateLayout, r.From, time.UTC)
	to, _ = time.ParseInLocation(dateLayout, r.To, time.UTC)
	return from, to
}

type BookingResponse struct {
	ID          string    `json:"id"`
	OfferID     string    `json:"offer_id"`
	OwnerID     string    `json:"owner_id"`
	RequesterID string    `json:"requester_id"`
	From        time.Time `json:"from"`
	To          time.Time `json:"to"`
	State       string    `json:"state"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:          b.ID,
		OfferID:     b.OfferID,
		OwnerID:     b.OwnerID,
		RequesterID: b.RequesterID,
		From:        b.Interval.From,
		To:          b.Interval.To,
		State:       string(b.State),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

type BookedDaysResponse struct {
	Days []string `json:"days"`
}

func NewBookedDaysResponse(days []time.Time) BookedDaysResponse {
	out := BookedDaysResponse{Days: make([]string, len(days))}
	for i, d := range days {
		out.Days[i] = d.Format(dateLayout)
	}
	return out
}
