package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/airvoucher/av_backend/internal/core/ports/services"
	"github.com/airvoucher/av_backend/internal/dto"
	"github.com/airvoucher/av_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// terminalHandler handles the retailer terminal pages and actions.
type terminalHandler struct {
	terminalService portssvc.TerminalSvcFacade
}

func newTerminalHandler(ts portssvc.TerminalSvcFacade) *terminalHandler {
	return &terminalHandler{terminalService: ts}
}

// registerTerminalRoutes registers routes related to terminals. The actions
// accept POST only; any other method gets 405.
func registerTerminalRoutes(rg *gin.RouterGroup, ts portssvc.TerminalSvcFacade) {
	h := newTerminalHandler(ts)

	terminals := rg.Group("/terminals")
	{
		terminals.GET("", h.listTerminals)
		postOnly(terminals, "/create", h.createTerminal)
		postOnly(terminals, "/toggle-status", h.toggleTerminalStatus)
		postOnly(terminals, "/delete", h.deleteTerminal)
	}
}

func postOnly(rg *gin.RouterGroup, path string, handler gin.HandlerFunc) {
	rg.POST(path, handler)
	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodPatch, http.MethodDelete} {
		rg.Handle(method, path, methodNotAllowed)
	}
}

// listTerminals godoc
// @Summary List terminals
// @Description Lists the caller's retailer terminals with their sales flags.
// @Tags terminals
// @Produce json
// @Success 200 {object} dto.ListTerminalsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Retailer profile not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /retailer/terminals [get]
func (h *terminalHandler) listTerminals(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	terminals, err := h.terminalService.ListTerminals(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to fetch terminals")
		return
	}
	c.JSON(http.StatusOK, dto.ToListTerminalsResponse(terminals))
}

// createTerminal godoc
// @Summary Create a terminal
// @Description Creates an active terminal for a retailer the caller owns. A generated login password is returned once.
// @Tags terminals
// @Accept json
// @Produce json
// @Param terminal body dto.CreateTerminalRequest true "Terminal details"
// @Success 201 {object} dto.CreateTerminalResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Login email already in use"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /retailer/terminals/create [post]
func (h *terminalHandler) createTerminal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateTerminalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTerminal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}

	terminal, password, err := h.terminalService.CreateTerminal(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "Failed to create terminal")
		return
	}
	c.JSON(http.StatusCreated, dto.CreateTerminalResponse{
		Terminal: dto.ToTerminalResponse(terminal),
		Password: password,
	})
}

// toggleTerminalStatus godoc
// @Summary Set terminal status
// @Description Sets a terminal active or inactive.
// @Tags terminals
// @Accept json
// @Produce json
// @Param request body dto.ToggleTerminalStatusRequest true "Terminal and target status"
// @Success 200 {object} dto.TerminalEnvelope
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /retailer/terminals/toggle-status [post]
func (h *terminalHandler) toggleTerminalStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.ToggleTerminalStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ToggleTerminalStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}

	terminal, err := h.terminalService.ToggleTerminalStatus(c.Request.Context(), userID, req.TerminalID, req.Status)
	if err != nil {
		respondError(c, err, "Failed to update terminal status")
		return
	}
	c.JSON(http.StatusOK, dto.TerminalEnvelope{Terminal: dto.ToTerminalResponse(terminal)})
}

// deleteTerminal godoc
// @Summary Delete a terminal
// @Description Deletes a terminal that has no sales.
// @Tags terminals
// @Accept json
// @Param request body dto.DeleteTerminalRequest true "Terminal to delete"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Terminal has sales history"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /retailer/terminals/delete [post]
func (h *terminalHandler) deleteTerminal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.DeleteTerminalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for DeleteTerminal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}

	if err := h.terminalService.DeleteTerminal(c.Request.Context(), userID, req.TerminalID); err != nil {
		respondError(c, err, "Failed to delete terminal")
		return
	}
	c.Status(http.StatusNoContent)
}
