package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/poshub/multicurrency/internal/apperrors"
	portssvc "github.com/poshub/multicurrency/internal/core/ports/services"
	"github.com/poshub/multicurrency/internal/dto"
	"github.com/poshub/multicurrency/internal/middleware"
	"github.com/shopspring/decimal"
)

// conversionHandler handles conversion and rate listing requests.
type conversionHandler struct {
	conversionService portssvc.ConversionSvc
	currencyService   portssvc.CurrencySvcFacade
	rateUpdateService portssvc.RateUpdateSvc
}

// newConversionHandler creates a new conversionHandler.
func newConversionHandler(cs portssvc.ConversionSvc, curr portssvc.CurrencySvcFacade, ru portssvc.RateUpdateSvc) *conversionHandler {
	return &conversionHandler{
		conversionService: cs,
		currencyService:   curr,
		rateUpdateService: ru,
	}
}

// registerConversionRoutes registers the conversion and rates routes.
func registerConversionRoutes(rg *gin.RouterGroup, cs portssvc.ConversionSvc, curr portssvc.CurrencySvcFacade, ru portssvc.RateUpdateSvc) {
	h := newConversionHandler(cs, curr, ru)

	rg.GET("/convert", h.convert)

	rates := rg.Group("/rates")
	{
		rates.GET("", h.listRates)
		rates.PUT("/:code", h.updateRate)
		rates.POST("/update", h.runRateUpdate)
	}
}

// convert godoc
// @Summary Convert an amount between currencies
// @Description Converts through the hub's base currency with half-up rounding
// @Tags conversion
// @Produce  json
// @Param   from query string true "Source currency code"
// @Param   to query string true "Target currency code"
// @Param   amount query string true "Amount to convert"
// @Success 200 {object} dto.ConvertResult
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Currency not found"
// @Failure 500 {object} map[string]string "Failed to convert"
// @Security BearerAuth
// @Router /convert [get]
func (h *conversionHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	hubID, _, ok := requestScope(c)
	if !ok {
		return
	}

	from := c.Query("from")
	to := c.Query("to")
	amountStr := c.Query("amount")
	if from == "" || to == "" || amountStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameters 'from', 'to' and 'amount' are required"})
		return
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid amount: " + amountStr})
		return
	}

	result, err := h.conversionService.Convert(c.Request.Context(), hubID, amount, from, to)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Conversion currency not found", slog.String("from", from), slog.String("to", to))
			c.JSON(http.StatusNotFound, gin.H{"error": "Currency not found"})
			return
		}
		logger.Error("Failed to convert", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to convert"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// listRates godoc
// @Summary List current exchange rates
// @Description Returns the hub's base currency and the rates of its active currencies
// @Tags conversion
// @Produce  json
// @Success 200 {object} dto.RatesResponse
// @Failure 500 {object} map[string]string "Failed to list rates"
// @Security BearerAuth
// @Router /rates [get]
func (h *conversionHandler) listRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	hubID, _, ok := requestScope(c)
	if !ok {
		return
	}

	rates, err := h.conversionService.GetRates(c.Request.Context(), hubID)
	if err != nil {
		logger.Error("Failed to list rates", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list rates"})
		return
	}

	c.JSON(http.StatusOK, rates)
}

// updateRate godoc
// @Summary Set a currency's exchange rate
// @Description Applies an explicit rate update and always records a history entry
// @Tags conversion
// @Accept  json
// @Produce  json
// @Param   code path string true "Currency code (3 letters)"
// @Param   rate body dto.UpdateRateRequest true "New exchange rate"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Currency not found"
// @Failure 500 {object} map[string]string "Failed to update rate"
// @Security BearerAuth
// @Router /rates/{code} [put]
func (h *conversionHandler) updateRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := c.Param("code")

	var req dto.UpdateRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	hubID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	updated, err := h.currencyService.UpdateRate(c.Request.Context(), hubID, code, req.ExchangeRate, userID)
	if err != nil {
		respondCurrencyError(c, logger, err, "Failed to update rate")
		return
	}

	logger.Info("Rate updated", slog.String("code", updated.Code), slog.String("rate", updated.ExchangeRate.String()))
	c.JSON(http.StatusOK, dto.ToCurrencyResponse(updated))
}

// runRateUpdate godoc
// @Summary Refresh exchange rates from the configured source
// @Description Runs one synchronous refresh; unresolvable currencies are reported as warnings
// @Tags conversion
// @Produce  json
// @Success 200 {object} dto.RateUpdateSummary
// @Failure 400 {object} map[string]string "Manual source or missing API key"
// @Failure 502 {object} map[string]string "Rate provider failure"
// @Failure 500 {object} map[string]string "Failed to update rates"
// @Security BearerAuth
// @Router /rates/update [post]
func (h *conversionHandler) runRateUpdate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	hubID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	summary, err := h.rateUpdateService.RunRateUpdate(c.Request.Context(), hubID, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrManualSource):
			logger.Warn("Rate update rejected: manual source")
			c.JSON(http.StatusBadRequest, gin.H{"error": "Rate source is set to manual; automatic updates are disabled"})
		case errors.Is(err, apperrors.ErrMissingCredential):
			logger.Warn("Rate update rejected: missing API key")
			c.JSON(http.StatusBadRequest, gin.H{"error": "Configured rate source requires an API key"})
		case errors.Is(err, apperrors.ErrProvider):
			logger.Error("Rate provider failure", slog.String("error", err.Error()))
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch rates from provider"})
		default:
			logger.Error("Failed to update rates", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update rates"})
		}
		return
	}

	logger.Info("Rate update completed", slog.Int("updated", summary.Updated), slog.Int("warnings", len(summary.Warnings)))
	c.JSON(http.StatusOK, summary)
}
