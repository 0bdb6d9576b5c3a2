package handlers

import (
	"net/http"

	portssvc "github.com/airvoucher/av_backend/internal/core/ports/services"
	"github.com/airvoucher/av_backend/internal/dto"
	"github.com/airvoucher/av_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type retailerHandler struct {
	retailerService portssvc.RetailerSvcFacade
}

func registerRetailerRoutes(rg *gin.RouterGroup, rs portssvc.RetailerSvcFacade) {
	h := &retailerHandler{retailerService: rs}
	rg.GET("/profile", h.getProfile)
}

// getProfile godoc
// @Summary Retailer profile
// @Description The retailer account owned by the caller.
// @Tags retailer
// @Produce json
// @Success 200 {object} dto.RetailerProfileResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /retailer/profile [get]
func (h *retailerHandler) getProfile(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)
	retailer, err := h.retailerService.GetRetailerForUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to fetch retailer profile")
		return
	}
	c.JSON(http.StatusOK, dto.ToRetailerProfileResponse(retailer))
}
