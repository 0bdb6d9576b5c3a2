package handlers

import (
	"net/http"

	portssvc "github.com/airvoucher/av_backend/internal/core/ports/services"
	"github.com/airvoucher/av_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type layoutHandler struct {
	layoutService portssvc.LayoutSvcFacade
}

func registerLayoutRoutes(v1 *gin.RouterGroup, ls portssvc.LayoutSvcFacade) {
	h := &layoutHandler{layoutService: ls}
	v1.GET("/layout", h.getLayout)
}

// getLayout godoc
// @Summary Navigation layout
// @Description Role navigation items and the display name of the caller.
// @Tags layout
// @Produce json
// @Success 200 {object} domain.Layout
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /layout [get]
func (h *layoutHandler) getLayout(c *gin.Context) {
	layout, err := h.layoutService.GetLayout(c.Request.Context(), middleware.GetSessionFromContext(c))
	if err != nil {
		respondError(c, err, "Failed to load layout")
		return
	}
	c.JSON(http.StatusOK, layout)
}
