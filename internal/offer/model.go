package offer

import (
	"net/http"
	"time"

	"github.com/pedalshare/rental-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound     = apperror.New(http.StatusNotFound, "offer not found")
	ErrEmptyTitle   = apperror.New(http.StatusBadRequest, "title cannot be empty")
	ErrInvalidPrice = apperror.New(http.StatusBadRequest, "price must be positive")
)

// Offer is a rentable item listed by its owner.
type Offer struct {
	ID               string
	OwnerID          string
	OwnerName        string
	Title            string
	Description      string
	PricePerDayCents int64
	Street           string
	HouseNumber      string
	Postcode         string
	City             string
	CreatedAt        time.Time
}

// Filter defines parameters for listing offers.
type Filter struct {
	OwnerID  string
	Page     int
	PageSize int
}
