package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"text/tabwriter"

	"finance-ledger/internal/config"
	"finance-ledger/internal/services"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import transactions from a CSV file",
		Long: `Import a CSV file of transactions with the columns title, type, value, category.

The first line is a header. The file is deleted once every row has been
written; pass --keep to import a copy and leave the original in place.`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}

	cmd.Flags().Bool("keep", false, "import a temporary copy so the source file is not deleted")
	_ = viper.BindPFlag("import.keep", cmd.Flags().Lookup("keep"))

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	source := args[0]
	if viper.GetBool("import.keep") {
		copied, err := copyToTemp(source)
		if err != nil {
			return err
		}
		slog.Debug("Importing temporary copy", "source", source, "copy", copied)
		source = copied
	}

	l, err := openLedger(config.Load())
	if err != nil {
		return err
	}
	defer l.Close()

	result, err := l.importer.ImportTransactions(cmd.Context(), source)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	return printImportSummary(cmd.OutOrStdout(), result)
}

// copyToTemp copies path into a new file under the system temp directory
func copyToTemp(path string) (string, error) {
	src, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open source file: %w", err)
	}
	defer src.Close()

	dst, err := os.CreateTemp("", "ledgerctl-*"+filepath.Ext(path))
	if err != nil {
		return "", fmt.Errorf("failed to create temporary copy: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(dst.Name())
		return "", fmt.Errorf("failed to copy source file: %w", err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("failed to copy source file: %w", err)
	}

	return dst.Name(), nil
}

type categoryTotal struct {
	Category string
	Count    int
	Income   int64
	Outcome  int64
}

// summarizeByCategory groups imported transactions by category title, sorted by title
func summarizeByCategory(result *services.ImportResult) []categoryTotal {
	byTitle := make(map[string]*categoryTotal)
	for _, transaction := range result.Transactions {
		title := ""
		if transaction.Category != nil {
			title = transaction.Category.Title
		}

		total, ok := byTitle[title]
		if !ok {
			total = &categoryTotal{Category: title}
			byTitle[title] = total
		}

		total.Count++
		if transaction.IsIncome() {
			total.Income += transaction.Value
		} else {
			total.Outcome += transaction.Value
		}
	}

	totals := make([]categoryTotal, 0, len(byTitle))
	for _, total := range byTitle {
		totals = append(totals, *total)
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].Category < totals[j].Category })
	return totals
}

func printImportSummary(w io.Writer, result *services.ImportResult) error {
	fmt.Fprintf(w, "Imported %d transactions (%d new categories, %d rows skipped)\n",
		len(result.Transactions), result.CategoriesCreated, result.RowsSkipped)

	totals := summarizeByCategory(result)
	if len(totals) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tCOUNT\tINCOME\tOUTCOME")
	for _, total := range totals {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", total.Category, total.Count, total.Income, total.Outcome)
	}
	return tw.Flush()
}
