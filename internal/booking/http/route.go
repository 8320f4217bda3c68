package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	bookings := g.Group("/bookings")
	bookings.Use(authMiddleware)
	{
		bookings.POST("", h.Request)
		bookings.GET("/:id", h.Get)
		bookings.POST("/:id/approve", h.Approve)
		bookings.POST("/:id/cancel", h.Cancel)
		bookings.POST("/:id/reopen", h.Reopen)
	}

	offers := g.Group("/offers/:id")
	{
		// Public calendar of occupied days.
		offers.GET("/booked-days", h.BookedDays)
		// Owner-only booking list for an offer.
		offers.GET("/bookings", authMiddleware, h.ListForOffer)
	}
}
