package dto

import (
	"github.com/poshub/multicurrency/internal/core/domain"
)

// UpdateSettingsRequest carries a full settings edit for a hub.
type UpdateSettingsRequest struct {
	BaseCurrency              string `json:"baseCurrency" binding:"required,alpha,len=3"`
	AutoUpdateRates           bool   `json:"autoUpdateRates"`
	UpdateFrequency           string `json:"updateFrequency" binding:"required,oneof=hourly daily weekly"`
	RateSource                string `json:"rateSource" binding:"required,oneof=manual ecb exchangerate_api"`
	APIKey                    string `json:"apiKey"`
	RoundToDecimals           int    `json:"roundToDecimals" binding:"gte=0"`
	ShowBothCurrencies        bool   `json:"showBothCurrencies"`
	AllowMultiCurrencyPayment bool   `json:"allowMultiCurrencyPayment"`
}

// SettingsResponse defines the settings data returned to callers. The API
// key is reported only as a presence flag.
type SettingsResponse struct {
	BaseCurrency              string `json:"baseCurrency"`
	AutoUpdateRates           bool   `json:"autoUpdateRates"`
	UpdateFrequency           string `json:"updateFrequency"`
	RateSource                string `json:"rateSource"`
	HasAPIKey                 bool   `json:"hasApiKey"`
	RoundToDecimals           int    `json:"roundToDecimals"`
	ShowBothCurrencies        bool   `json:"showBothCurrencies"`
	AllowMultiCurrencyPayment bool   `json:"allowMultiCurrencyPayment"`
}

// ToSettingsResponse converts domain settings to the response DTO.
func ToSettingsResponse(s *domain.CurrencySettings) SettingsResponse {
	return SettingsResponse{
		BaseCurrency:              s.BaseCurrency,
		AutoUpdateRates:           s.AutoUpdateRates,
		UpdateFrequency:           string(s.UpdateFrequency),
		RateSource:                string(s.RateSource),
		HasAPIKey:                 s.APIKey != "",
		RoundToDecimals:           s.RoundToDecimals,
		ShowBothCurrencies:        s.ShowBothCurrencies,
		AllowMultiCurrencyPayment: s.AllowMultiCurrencyPayment,
	}
}
