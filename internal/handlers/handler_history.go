package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	portssvc "github.com/poshub/multicurrency/internal/core/ports/services"
	"github.com/poshub/multicurrency/internal/dto"
	"github.com/poshub/multicurrency/internal/middleware"
)

// historyHandler serves the rate change audit trail.
type historyHandler struct {
	historyService portssvc.HistorySvc
}

func newHistoryHandler(hs portssvc.HistorySvc) *historyHandler {
	return &historyHandler{historyService: hs}
}

// registerHistoryRoutes registers the rate history routes.
func registerHistoryRoutes(rg *gin.RouterGroup, hs portssvc.HistorySvc) {
	h := newHistoryHandler(hs)
	rg.GET("/history", h.listHistory)
}

// listHistory godoc
// @Summary List rate change history
// @Description Returns rate history entries newest first, optionally filtered by currency
// @Tags history
// @Produce  json
// @Param   currency query string false "Currency code filter"
// @Param   limit query int false "Maximum number of entries"
// @Success 200 {array} dto.RateHistoryResponse
// @Failure 500 {object} map[string]string "Failed to list history"
// @Security BearerAuth
// @Router /history [get]
func (h *historyHandler) listHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	hubID, _, ok := requestScope(c)
	if !ok {
		return
	}

	var currencyCode *string
	if code := c.Query("currency"); code != "" {
		currencyCode = &code
	}

	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit: " + limitStr})
			return
		}
		limit = parsed
	}

	entries, err := h.historyService.ListHistory(c.Request.Context(), hubID, currencyCode, limit)
	if err != nil {
		logger.Error("Failed to list rate history", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list history"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListRateHistoryResponse(entries))
}
