package models

// CurrencySettings mirrors the currency_settings table (one row per hub).
type CurrencySettings struct {
	SettingsID                string `json:"settingsID"`
	HubID                     string `json:"hubID"`
	BaseCurrency              string `json:"baseCurrency"`
	AutoUpdateRates           bool   `json:"autoUpdateRates"`
	UpdateFrequency           string `json:"updateFrequency"`
	RateSource                string `json:"rateSource"`
	APIKey                    string `json:"apiKey"`
	RoundToDecimals           int    `json:"roundToDecimals"`
	ShowBothCurrencies        bool   `json:"showBothCurrencies"`
	AllowMultiCurrencyPayment bool   `json:"allowMultiCurrencyPayment"`
	AuditFields
}
