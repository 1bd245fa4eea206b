package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pesowise/internal/services"
)

// DemoHandler handles demo-data requests.
type DemoHandler struct {
	seedService services.SeedServicer
}

// NewDemoHandler creates a new DemoHandler.
func NewDemoHandler(seedService services.SeedServicer) *DemoHandler {
	return &DemoHandler{seedService: seedService}
}

// ResetAndSeed handles regenerating the caller's demo data
// @Summary     Reset and seed demo data
// @Description Destructively replace all of the authenticated user's transactions, subscriptions, categories, and budget with a generated demo data set.
// @Tags        demo
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.SeedResult "Seeded data counts"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /demo/reset [post]
func (h *DemoHandler) ResetAndSeed(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.seedService.ResetAndSeed(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"seeded": result})
}
