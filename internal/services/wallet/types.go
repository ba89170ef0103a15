package wallet

// FundRequest is a validated deposit request. Amount is minor units and must
// be positive.
type FundRequest struct {
	Amount   int64
	Currency string
	Method   string
	Source   string
}

// Config holds configuration for wallet operations. Amount limits are minor
// units.
type Config struct {
	DefaultCurrency string
	MaxFundAmount   int64
}

// MetricsCollector defines the metrics recorded by the wallet service.
type MetricsCollector interface {
	RecordTransaction(txType string, amount int64)
	RecordError(operation, errType string)
	RecordCacheHit(key string)
	RecordCacheMiss(key string)
}
