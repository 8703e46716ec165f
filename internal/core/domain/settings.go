package domain

// UpdateFrequency controls how often an external scheduler is expected to
// trigger a rate refresh. The service itself never schedules anything.
type UpdateFrequency string

const (
	FrequencyHourly UpdateFrequency = "hourly"
	FrequencyDaily  UpdateFrequency = "daily"
	FrequencyWeekly UpdateFrequency = "weekly"
)

// IsValid reports whether f is a known frequency.
func (f UpdateFrequency) IsValid() bool {
	switch f {
	case FrequencyHourly, FrequencyDaily, FrequencyWeekly:
		return true
	}
	return false
}

// RateSource selects the policy for refreshing exchange rates.
type RateSource string

const (
	// SourceManual disables automated refreshes; rates are edited per currency.
	SourceManual RateSource = "manual"
	// SourceECB pulls the European Central Bank daily reference feed.
	SourceECB RateSource = "ecb"
	// SourceExchangeRateAPI pulls rates from the commercial exchangerate-api
	// provider and requires an API key.
	SourceExchangeRateAPI RateSource = "exchangerate_api"
)

// IsValid reports whether s is a known rate source.
func (s RateSource) IsValid() bool {
	switch s {
	case SourceManual, SourceECB, SourceExchangeRateAPI:
		return true
	}
	return false
}

// CurrencySettings is the per-hub multi-currency configuration. Exactly one
// record exists per hub; it is created lazily with defaults on first access.
type CurrencySettings struct {
	SettingsID                string          `json:"settingsID"` // Primary key (UUID)
	HubID                     string          `json:"hubID"`
	BaseCurrency              string          `json:"baseCurrency"` // ISO 4217, rate implicitly 1.0
	AutoUpdateRates           bool            `json:"autoUpdateRates"`
	UpdateFrequency           UpdateFrequency `json:"updateFrequency"`
	RateSource                RateSource      `json:"rateSource"`
	APIKey                    string          `json:"-"` // opaque provider credential, never serialized
	RoundToDecimals           int             `json:"roundToDecimals"`
	ShowBothCurrencies        bool            `json:"showBothCurrencies"`
	AllowMultiCurrencyPayment bool            `json:"allowMultiCurrencyPayment"`
	AuditFields
}

// DefaultSettings returns the settings record created on first access.
func DefaultSettings(hubID string) CurrencySettings {
	return CurrencySettings{
		HubID:                     hubID,
		BaseCurrency:              "EUR",
		AutoUpdateRates:           false,
		UpdateFrequency:           FrequencyDaily,
		RateSource:                SourceManual,
		RoundToDecimals:           2,
		ShowBothCurrencies:        true,
		AllowMultiCurrencyPayment: true,
	}
}
