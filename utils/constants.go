// File: utils/constants.go
package utils

// Cookie names shared by the auth middleware and web handlers.
const (
	AccessTokenCookie  = "access_token"
	UserRoleCookie     = "user_role"
	FlashSuccessCookie = "flash_success"
	FlashErrorCookie   = "flash_error"
)

// Roles.
const (
	RoleAdmin   = "admin"
	RoleCompany = "company"
)

// Currencies accepted for companies and packages.
var Currencies = []string{"AED", "USD", "EUR", "SAR"}

// CountryCode is a dialing prefix offered in phone inputs.
type CountryCode struct {
	Code    string `json:"code"`
	Country string `json:"country"`
}

var CountryCodes = []CountryCode{
	{Code: "+971", Country: "UAE"},
	{Code: "+91", Country: "India"},
	{Code: "+966", Country: "Saudi Arabia"},
	{Code: "+974", Country: "Qatar"},
	{Code: "+968", Country: "Oman"},
	{Code: "+965", Country: "Kuwait"},
	{Code: "+973", Country: "Bahrain"},
	{Code: "+44", Country: "United Kingdom"},
	{Code: "+1", Country: "USA"},
	{Code: "+92", Country: "Pakistan"},
	{Code: "+63", Country: "Philippines"},
}

var Countries = []string{
	"United Arab Emirates",
	"India",
	"Saudi Arabia",
	"Qatar",
	"Oman",
	"Kuwait",
	"Bahrain",
	"United Kingdom",
	"United States",
	"Pakistan",
	"Philippines",
}

// IsSupportedCurrency reports whether code is one of Currencies.
func IsSupportedCurrency(code string) bool {
	for _, c := range Currencies {
		if c == code {
			return true
		}
	}
	return false
}
