package main

import (
	"fmt"
	"io"

	"finance-ledger/internal/config"
	"finance-ledger/internal/models"

	"github.com/spf13/cobra"
)

func balanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Print the ledger balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			l, err := openLedger(config.Load())
			if err != nil {
				return err
			}
			defer l.Close()

			balance, err := l.balances.GetBalance(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to compute balance: %w", err)
			}

			printBalance(cmd.OutOrStdout(), balance)
			return nil
		},
	}
}

func printBalance(w io.Writer, balance *models.Balance) {
	fmt.Fprintf(w, "income:  %d\n", balance.Income)
	fmt.Fprintf(w, "outcome: %d\n", balance.Outcome)
	fmt.Fprintf(w, "total:   %d\n", balance.Total)
}
