package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/poshub/multicurrency/internal/apperrors"
	portssvc "github.com/poshub/multicurrency/internal/core/ports/services"
	"github.com/poshub/multicurrency/internal/dto"
	"github.com/poshub/multicurrency/internal/middleware"
)

// currencyHandler handles HTTP requests related to the currency registry.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.CurrencySvcFacade) *currencyHandler {
	return &currencyHandler{
		currencyService: cs,
	}
}

// registerCurrencyRoutes registers routes related to currencies.
func registerCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade) {
	h := newCurrencyHandler(currencyService)

	currencies := rg.Group("/currencies")
	{
		currencies.POST("", h.createCurrency)
		currencies.GET("", h.listCurrencies)
		currencies.PUT("/:id", h.updateCurrency)
		currencies.POST("/:id/toggle", h.toggleCurrency)
		currencies.DELETE("/:id", h.deleteCurrency)
		currencies.DELETE("/:id/purge", h.purgeCurrency)
	}
}

// createCurrency godoc
// @Summary Register a new currency
// @Description Adds a currency to the hub's registry and records its initial rate
// @Tags currencies
// @Accept  json
// @Produce  json
// @Param   currency body dto.CreateCurrencyRequest true "Currency details"
// @Success 201 {object} dto.CurrencyResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Currency code already exists"
// @Failure 500 {object} map[string]string "Failed to create currency"
// @Security BearerAuth
// @Router /currencies [post]
func (h *currencyHandler) createCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCurrency", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	hubID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	logger.Info("Received request to create currency", slog.String("code", req.Code))

	createdCurrency, err := h.currencyService.CreateCurrency(c.Request.Context(), hubID, req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Attempted to create duplicate currency", slog.String("code", req.Code))
			c.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("Currency code '%s' already exists", req.Code)})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating currency", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create currency in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create currency"})
		}
		return
	}

	logger.Info("Currency created successfully", slog.String("code", createdCurrency.Code))
	c.JSON(http.StatusCreated, dto.ToCurrencyResponse(createdCurrency))
}

// listCurrencies godoc
// @Summary List currencies
// @Description Retrieves the hub's currencies ordered by sort order then code
// @Tags currencies
// @Produce  json
// @Param   activeOnly query bool false "Only return active currencies"
// @Success 200 {array} dto.CurrencyResponse
// @Failure 500 {object} map[string]string "Failed to list currencies"
// @Security BearerAuth
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	hubID, _, ok := requestScope(c)
	if !ok {
		return
	}

	activeOnly := c.Query("activeOnly") == "true"

	currencies, err := h.currencyService.ListCurrencies(c.Request.Context(), hubID, activeOnly)
	if err != nil {
		logger.Error("Failed to list currencies from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list currencies"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(currencies))
}

// updateCurrency godoc
// @Summary Update a currency
// @Description Applies a full edit; a history entry is recorded only when the rate changed
// @Tags currencies
// @Accept  json
// @Produce  json
// @Param   id path string true "Currency ID"
// @Param   currency body dto.UpdateCurrencyRequest true "Updated currency details"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Currency not found"
// @Failure 409 {object} map[string]string "Currency code already exists"
// @Failure 500 {object} map[string]string "Failed to update currency"
// @Security BearerAuth
// @Router /currencies/{id} [put]
func (h *currencyHandler) updateCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	currencyID := c.Param("id")

	var req dto.UpdateCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateCurrency", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	hubID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	updated, err := h.currencyService.UpdateCurrency(c.Request.Context(), hubID, currencyID, req, userID)
	if err != nil {
		respondCurrencyError(c, logger, err, "Failed to update currency")
		return
	}

	logger.Info("Currency updated successfully", slog.String("code", updated.Code))
	c.JSON(http.StatusOK, dto.ToCurrencyResponse(updated))
}

// toggleCurrency godoc
// @Summary Toggle a currency's active flag
// @Description Flips the active state; inactive currencies are excluded from conversions
// @Tags currencies
// @Produce  json
// @Param   id path string true "Currency ID"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 404 {object} map[string]string "Currency not found"
// @Failure 500 {object} map[string]string "Failed to toggle currency"
// @Security BearerAuth
// @Router /currencies/{id}/toggle [post]
func (h *currencyHandler) toggleCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	currencyID := c.Param("id")

	hubID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	toggled, err := h.currencyService.ToggleActive(c.Request.Context(), hubID, currencyID, userID)
	if err != nil {
		respondCurrencyError(c, logger, err, "Failed to toggle currency")
		return
	}

	logger.Info("Currency toggled", slog.String("code", toggled.Code), slog.Bool("is_active", toggled.IsActive))
	c.JSON(http.StatusOK, dto.ToCurrencyResponse(toggled))
}

// deleteCurrency godoc
// @Summary Delete a currency
// @Description Soft-deletes a currency; rejected while payments still reference it
// @Tags currencies
// @Produce  json
// @Param   id path string true "Currency ID"
// @Success 204 "Currency deleted"
// @Failure 404 {object} map[string]string "Currency not found"
// @Failure 409 {object} map[string]string "Currency has recorded payments"
// @Failure 500 {object} map[string]string "Failed to delete currency"
// @Security BearerAuth
// @Router /currencies/{id} [delete]
func (h *currencyHandler) deleteCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	currencyID := c.Param("id")

	hubID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	err := h.currencyService.DeleteCurrency(c.Request.Context(), hubID, currencyID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrHasDependentPayments) {
			logger.Warn("Attempted to delete currency with payments", slog.String("currency_id", currencyID))
			c.JSON(http.StatusConflict, gin.H{"error": "Currency has recorded payments and cannot be deleted"})
			return
		}
		respondCurrencyError(c, logger, err, "Failed to delete currency")
		return
	}

	logger.Info("Currency deleted", slog.String("currency_id", currencyID))
	c.Status(http.StatusNoContent)
}

// purgeCurrency godoc
// @Summary Permanently delete a currency
// @Description Hard-deletes a currency, removing its rate history and detaching payments (amounts are preserved)
// @Tags currencies
// @Produce  json
// @Param   id path string true "Currency ID"
// @Success 204 "Currency purged"
// @Failure 404 {object} map[string]string "Currency not found"
// @Failure 500 {object} map[string]string "Failed to purge currency"
// @Security BearerAuth
// @Router /currencies/{id}/purge [delete]
func (h *currencyHandler) purgeCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	currencyID := c.Param("id")

	hubID, _, ok := requestScope(c)
	if !ok {
		return
	}

	if err := h.currencyService.HardDeleteCurrency(c.Request.Context(), hubID, currencyID); err != nil {
		respondCurrencyError(c, logger, err, "Failed to purge currency")
		return
	}

	logger.Info("Currency purged", slog.String("currency_id", currencyID))
	c.Status(http.StatusNoContent)
}

// respondCurrencyError maps common service errors onto HTTP responses.
func respondCurrencyError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Currency not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Currency not found"})
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Currency code conflict", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

// requestScope extracts the hub and user the token is bound to. Aborts with
// 401 when either is missing.
func requestScope(c *gin.Context) (hubID, userID string, ok bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	hubID, ok = middleware.GetHubIDFromContext(c)
	if !ok {
		logger.Error("Hub ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", "", false
	}
	userID, ok = middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", "", false
	}
	return hubID, userID, true
}
