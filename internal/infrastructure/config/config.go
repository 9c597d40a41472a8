package config

import (
	"github.com/caarlos0/env/v10"
	"github.com/shopspring/decimal"
)

// Config holds all application configuration. The movement limits were
// hard-coded in earlier iterations; they are environment-injectable now so a
// deployment can tune them without a rebuild.
type Config struct {
	// Logging
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`

	// E-transfer limits
	ETransferPerTransactionMax decimal.Decimal `env:"ETRANSFER_PER_TRANSACTION_MAX" envDefault:"5000.00"`
	ETransferDailyLimit        decimal.Decimal `env:"ETRANSFER_DAILY_LIMIT"         envDefault:"10000.00"`

	// Savings account policy
	SavingsWithdrawalLimit     int             `env:"SAVINGS_WITHDRAWAL_LIMIT"      envDefault:"5"`
	SavingsMonthlyInterestRate decimal.Decimal `env:"SAVINGS_MONTHLY_INTEREST_RATE" envDefault:"0.001"`

	// Checking account policy. Zero disables the per-debit ceiling.
	CheckingDebitCeiling decimal.Decimal `env:"CHECKING_DEBIT_CEILING" envDefault:"0"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
