package handlers

import (
	"net/http"

	portssvc "github.com/airvoucher/av_backend/internal/core/ports/services"
	"github.com/airvoucher/av_backend/internal/dto"
	"github.com/airvoucher/av_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// salesHandler serves the sales table and dashboard of the caller's role.
type salesHandler struct {
	salesService portssvc.SalesSvcFacade
}

func newSalesHandler(ss portssvc.SalesSvcFacade) *salesHandler {
	return &salesHandler{salesService: ss}
}

// registerSalesRoutes registers the sales routes under a role group.
func registerSalesRoutes(rg *gin.RouterGroup, ss portssvc.SalesSvcFacade) {
	h := newSalesHandler(ss)
	rg.GET("/sales", h.listSales)
	rg.GET("/dashboard", h.getDashboard)
}

// listSales godoc
// @Summary Sales table page
// @Description Filters, sorts and paginates the caller's sales over the sales window.
// @Tags sales
// @Produce json
// @Param search query string false "Case-insensitive search over voucher type, retailer name and sale ID"
// @Param voucher_type query string false "Voucher type or all"
// @Param retailer_name query string false "Retailer name or all"
// @Param terminal_name query string false "Terminal name or all"
// @Param sort query string false "date, voucher_type, amount, retailer_name, terminal_name or ref_number" default(date)
// @Param dir query string false "asc or desc" default(desc)
// @Param page query int false "1-based page" default(1)
// @Param toggle query string false "Column header click; flips or selects the sort field and returns to page 1"
// @Param prev_search query string false "Search of the view being left"
// @Param prev_voucher_type query string false "Voucher type of the view being left"
// @Param prev_retailer_name query string false "Retailer name of the view being left"
// @Param prev_terminal_name query string false "Terminal name of the view being left"
// @Param prev_sort query string false "Sort field of the view being left"
// @Param prev_dir query string false "Sort direction of the view being left"
// @Success 200 {object} dto.SalesPageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /retailer/sales [get]
func (h *salesHandler) listSales(c *gin.Context) {
	var q dto.SalesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	page, err := h.salesService.GetSalesPage(c.Request.Context(), middleware.GetSessionFromContext(c), q.ToFilterState())
	if err != nil {
		respondError(c, err, "Failed to fetch sales")
		return
	}
	c.JSON(http.StatusOK, dto.ToSalesPageResponse(page))
}

// getDashboard godoc
// @Summary Dashboard
// @Description Stats tiles, daily series and voucher mix over the sales window.
// @Tags sales
// @Produce json
// @Success 200 {object} domain.Dashboard
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /retailer/dashboard [get]
func (h *salesHandler) getDashboard(c *gin.Context) {
	dashboard, err := h.salesService.GetDashboard(c.Request.Context(), middleware.GetSessionFromContext(c))
	if err != nil {
		respondError(c, err, "Failed to fetch dashboard")
		return
	}
	c.JSON(http.StatusOK, dashboard)
}
