package main

import (
	"fmt"
	"os"
	"time"

	"finance-ledger/internal/services"

	"github.com/spf13/cobra"
)

func generateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <file>",
		Short: "Write a sample import file",
		Long: `Write a CSV file of plausible transactions that "ledgerctl import" accepts.

Use --seed to reproduce a previous file.`,
		Args: cobra.ExactArgs(1),
		RunE: runGenerate,
	}

	cmd.Flags().IntP("rows", "n", 100, "number of transactions to generate")
	cmd.Flags().Int64("seed", 0, "random seed (default: current time)")

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	rows, _ := cmd.Flags().GetInt("rows")
	seed, _ := cmd.Flags().GetInt64("seed")
	if !cmd.Flags().Changed("seed") {
		seed = time.Now().UnixNano()
	}

	return writeSample(args[0], rows, seed)
}

func writeSample(path string, rows int, seed int64) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create sample file: %w", err)
	}

	if err := services.NewSampleGenerator(seed).WriteCSV(file, rows); err != nil {
		file.Close()
		os.Remove(path)
		return fmt.Errorf("failed to write sample file: %w", err)
	}

	return file.Close()
}
