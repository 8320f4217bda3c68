package http

import (
	"time"

	"github.com/pedalshare/rental-booking-backend/internal/offer"
	"github.com/pedalshare/rental-booking-backend/internal/pkg/request"
)

type CreateOfferBody struct {
	Title            string `json:"title" binding:"required,max=120"`
	Description      string `json:"description" binding:"max=4000"`
	PricePerDayCents int64  `json:"price_per_day_cents" binding:"required,gt=0"`
	Street           string `json:"street"`
	HouseNumber      string `json:"house_number"`
	Postcode         string `json:"postcode"`
	City             string `json:"city"`
}

// ListMyOffersRequest defines query parameters for listing the caller's offers.
type ListMyOffersRequest struct {
	request.ListParams
}

type OfferResponse struct {
	ID               string    `json:"id"`
	OwnerID          string    `json:"owner_id"`
	OwnerName        string    `json:"owner_name"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	PricePerDayCents int64     `json:"price_per_day_cents"`
	Street           string    `json:"street"`
	HouseNumber      string    `json:"house_number"`
	Postcode         string    `json:"postcode"`
	City             string    `json:"city"`
	CreatedAt        time.Time `json:"created_at"`
}

func NewOfferResponse(o *offer.Offer) OfferResponse {
	return OfferResponse{
		ID:               o.ID,
		OwnerID:          o.OwnerID,
		OwnerName:        o.OwnerName,
		Title:            o.Title,
		Description:      o.Description,
		PricePerDayCents: o.PricePerDayCents,
		Street:           o.Street,
		HouseNumber:      o.HouseNumber,
		Postcode:         o.Postcode,
		City:             o.City,
		CreatedAt:        o.CreatedAt,
	}
}
