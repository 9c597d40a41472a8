package main

import (
	"context"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/retailbank/fundsmove/internal/adapter/repository/memory"
	"github.com/retailbank/fundsmove/internal/domain"
	"github.com/retailbank/fundsmove/internal/infrastructure/config"
	"github.com/retailbank/fundsmove/internal/infrastructure/id"
	"github.com/retailbank/fundsmove/internal/infrastructure/logger"
	"github.com/retailbank/fundsmove/internal/infrastructure/metrics"
	"github.com/retailbank/fundsmove/internal/usecase"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fundsmove",
		Short: "Funds-movement core CLI",
		Long:  `A command line interface for exercising the funds-movement core against in-memory repositories.`,
	}

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Run a scripted walkthrough of transfers and e-transfers",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo()
		},
	}

	rootCmd.AddCommand(demoCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runDemo() error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	m := metrics.New()

	accountRepo := memory.NewAccountRepository()
	txRepo := memory.NewTransactionRepository()
	recipientRepo := memory.NewRecipientRepository()
	etRepo := memory.NewETransferRepository()

	idGen := id.NewULIDGenerator()
	locker := usecase.NewAccountLocker()

	policy := domain.AccountPolicy{
		CheckingDebitCeiling:       cfg.CheckingDebitCeiling,
		SavingsWithdrawalLimit:     cfg.SavingsWithdrawalLimit,
		SavingsMonthlyInterestRate: cfg.SavingsMonthlyInterestRate,
	}

	accounts := usecase.NewAccountUseCase(accountRepo, txRepo, idGen, locker, policy, log, m)
	recipients := usecase.NewRecipientUseCase(recipientRepo, idGen, log)
	transfers := usecase.NewTransferUseCase(accountRepo, txRepo, idGen, locker, log, m)
	etransfers := usecase.NewETransferUseCase(accountRepo, recipientRepo, txRepo, etRepo, idGen, locker,
		usecase.ETransferLimits{
			PerTransactionMax: cfg.ETransferPerTransactionMax,
			DailyLimit:        cfg.ETransferDailyLimit,
		}, log, m)

	const customerID = "customer-demo"

	checking, err := accounts.OpenAccount(ctx, usecase.OpenAccountInput{
		CustomerID:     customerID,
		Kind:           domain.AccountKindChecking,
		OpeningBalance: decimal.NewFromInt(1000),
	})
	if err != nil {
		return err
	}

	savings, err := accounts.OpenAccount(ctx, usecase.OpenAccountInput{
		CustomerID:     customerID,
		Kind:           domain.AccountKindSavings,
		OpeningBalance: decimal.NewFromInt(500),
	})
	if err != nil {
		return err
	}

	tx, err := transfers.Transfer(ctx, usecase.TransferInput{
		CustomerID:           customerID,
		SourceAccountID:      checking.ID,
		DestinationAccountID: savings.ID,
		Amount:               decimal.NewFromInt(200),
	})
	if err != nil {
		return err
	}

	fmt.Printf("Transfer %s: %s (checking %s, savings %s)\n",
		tx.ID, tx.Status, checking.Balance, savings.Balance)

	recipient, err := recipients.AddRecipient(ctx, usecase.AddRecipientInput{
		OwnerID: customerID,
		Name:    "Jordan Reyes",
		Email:   "jordan.reyes@example.com",
		Phone:   "+1 416 555 0100",
	})
	if err != nil {
		return err
	}

	et, err := etransfers.Send(ctx, usecase.SendInput{
		CustomerID:      customerID,
		SourceAccountID: checking.ID,
		RecipientID:     recipient.ID,
		Amount:          decimal.NewFromInt(150),
		Message:         "lunch money",
	})
	if err != nil {
		return err
	}

	remaining, err := etransfers.RemainingDailyLimit(ctx, customerID)
	if err != nil {
		return err
	}

	fmt.Printf("E-Transfer %s: %s (checking %s, remaining daily limit %s)\n",
		et.ID, et.Status, checking.Balance, remaining)

	maintained, err := accounts.RunMonthlyMaintenance(ctx, customerID)
	if err != nil {
		return err
	}

	for _, account := range maintained {
		fmt.Printf("Savings %s after monthly interest: %s\n", account.ID, account.Balance)
	}

	return nil
}
