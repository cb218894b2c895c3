package downstream

import (
	"github.com/SscSPs/bank_transaction_service/internal/core/domain"
	"github.com/SscSPs/bank_transaction_service/internal/core/ports/providers"
	"github.com/SscSPs/bank_transaction_service/internal/platform/config"
)

// SettingsFromConfig extracts the client settings from the application config.
func SettingsFromConfig(cfg *config.Config) Settings {
	return Settings{
		Timeout:             cfg.ProviderTimeout,
		ConsecutiveFailures: cfg.BreakerConsecutiveFailures,
		OpenTimeout:         cfg.BreakerOpenTimeout,
	}
}

// NewProviderSet builds an HTTP client for each of the seven downstream services.
func NewProviderSet(cfg *config.Config) providers.ProviderSet {
	s := SettingsFromConfig(cfg)
	urls := cfg.Providers

	return providers.ProviderSet{
		Customers:   NewCustomerClient(urls.Customer, s),
		Products:    NewProductClient(urls.Product, s),
		Deposits:    NewListClient[domain.Deposit]("deposit", urls.Deposit, s),
		Withdrawals: NewListClient[domain.Withdrawal]("withdrawal", urls.Withdrawal, s),
		Payments:    NewListClient[domain.Payment]("payment", urls.Payment, s),
		Purchases:   NewListClient[domain.Purchase]("purchase", urls.Purchase, s),
		Signatories: NewListClient[domain.Signatory]("signatory", urls.Signatory, s),
	}
}
