package ozon

// Config holds credentials and endpoints for the Ozon seller API.
type Config struct {
	// BaseURL is the API root.
	BaseURL string `mapstructure:"base_url" default:"https://api-seller.ozon.ru"`
	// ClientID is the Ozon seller client identifier.
	ClientID string `mapstructure:"client_id" validate:"required"`
	// APIKey is the Ozon seller API key.
	APIKey string `mapstructure:"api_key" validate:"required"`
	// TimeoutSeconds is the per-request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
