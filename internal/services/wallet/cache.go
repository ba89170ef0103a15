package wallet

import "context"

// NoopBalanceCache never caches. Used when Redis is not configured; every
// balance read recomputes from the store.
type NoopBalanceCache struct{}

func (n *NoopBalanceCache) GetBalance(context.Context, string) (int64, bool, error) {
	return 0, false, nil
}
func (n *NoopBalanceCache) SetBalance(context.Context, string, int64) error { return nil }
func (n *NoopBalanceCache) InvalidateBalance(context.Context, string) error { return nil }
