package wallet

// Funding methods
const (
	MethodBank   = "bank"
	MethodCard   = "card"
	MethodCrypto = "crypto"
)

// Default configuration values. The fund ceiling is 50000.00 in minor units.
const (
	DefaultCurrency      = "USD"
	DefaultMaxFundAmount = 5_000_000
)

var methodDisplayNames = map[string]string{
	MethodBank:   "Bank Transfer",
	MethodCard:   "Credit Card",
	MethodCrypto: "Crypto Wallet",
}

// MethodDisplayName returns the human-readable name of a funding method,
// falling back to the bank transfer label.
func MethodDisplayName(method string) string {
	if name, ok := methodDisplayNames[method]; ok {
		return name
	}
	return methodDisplayNames[MethodBank]
}
