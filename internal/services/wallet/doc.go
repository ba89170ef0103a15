/*
Package wallet provides funding and balance operations over the transaction
store.

The service enforces the deposit invariants (positive amount, fund ceiling)
and derives the balance by summing every transaction amount for a user. The
balance is cached and the cache is invalidated on every append.

Usage:

	svc := wallet.NewService(repo, cache, wallet.Config{}, metrics)

	// Deposit 500.00 USD
	txn, err := svc.Fund(ctx, userID, wallet.FundRequest{
	    Amount:   50000,
	    Currency: "USD",
	    Method:   wallet.MethodBank,
	})

	// Current balance in minor units
	balance, err := svc.Balance(ctx, userID)

Error Handling:

The service returns specific errors for different scenarios:
- ErrInvalidAmount: amount is zero or negative
- ErrInvalidCurrency: currency is not supported
- ErrFundLimitExceeded: amount is above the funding ceiling
- ErrInsufficientBalance: balance validation failed
*/
package wallet
