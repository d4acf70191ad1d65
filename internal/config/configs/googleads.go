package configs

// GoogleAds holds credentials and addressing for the Google Ads API.
// All mutations and queries run against the single configured customer
// account; per-user accounts are out of scope.
type GoogleAds struct {
	// CustomerID is the operating customer account, digits only.
	CustomerID string `env:"CUSTOMER_ID,notEmpty"`
	// LoginCustomerID is the manager account used for authorization when
	// the operating account is managed. Optional.
	LoginCustomerID string `env:"LOGIN_CUSTOMER_ID"`
	// DeveloperToken authorizes API access for the developer account.
	DeveloperToken string `env:"DEVELOPER_TOKEN,notEmpty"`
	// OAuth client credentials plus a long-lived refresh token. Access
	// tokens are minted on demand.
	ClientID     string `env:"CLIENT_ID,notEmpty"`
	ClientSecret string `env:"CLIENT_SECRET,notEmpty"`
	RefreshToken string `env:"REFRESH_TOKEN,notEmpty"`
	// Endpoint is the API base URL including version. Overridable for
	// tests.
	Endpoint string `env:"ENDPOINT" envDefault:"https://googleads.googleapis.com/v21"`
}
