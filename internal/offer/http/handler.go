package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pedalshare/rental-booking-backend/internal/auth"
	"github.com/pedalshare/rental-booking-backend/internal/offer"
	"github.com/pedalshare/rental-booking-backend/internal/pkg/request"
	"github.com/pedalshare/rental-booking-backend/internal/pkg/response"
)

type Handler struct {
	service offer.Service
}

func NewHandler(service offer.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateOfferBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	ownerID := auth.GetUserID(c)
	if ownerID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	o, err := h.service.Create(c.Request.Context(), offer.CreateRequest{
		OwnerID:          ownerID,
		Title:            body.Title,
		Description:      body.Description,
		PricePerDayCents: body.PricePerDayCents,
		Street:           body.Street,
		HouseNumber:      body.HouseNumber,
		Postcode:         body.Postcode,
		City:             body.City,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewOfferResponse(o))
}

func (h *Handler) Get(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid offer id"})
		return
	}

	o, err := h.service.GetByID(c.Request.Context(), req.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewOfferResponse(o))
}

// ListMine returns the authenticated user's own offers.
func (h *Handler) ListMine(c *gin.Context) {
	var req ListMyOffersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}
	req.ApplyDefaults()

	ownerID := auth.GetUserID(c)
	if ownerID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	offers, total, err := h.service.ListByOwner(c.Request.Context(), ownerID, req.Page, req.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]OfferResponse, len(offers))
	for i, o := range offers {
		items[i] = NewOfferResponse(o)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.PageSize, total))
}
