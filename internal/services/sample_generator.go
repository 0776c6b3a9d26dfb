package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"math/rand"
	"strconv"

	"finance-ledger/internal/models"
)

// samplePayee is a title the generator can draw, with the category it books to
type samplePayee struct {
	title    string
	category string
}

var samplePayees = []samplePayee{
	{"Monthly salary", "Salary"},
	{"Freelance invoice", "Salary"},
	{"Dividend payout", "Investments"},
	{"Supermarket", "Groceries"},
	{"Farmers market", "Groceries"},
	{"Bakery", "Groceries"},
	{"Pizza night", "Dining"},
	{"Coffee shop", "Dining"},
	{"Fuel", "Transport"},
	{"Train ticket", "Transport"},
	{"Rent", "Housing"},
	{"Electricity bill", "Utilities"},
	{"Internet", "Utilities"},
	{"Streaming subscription", "Entertainment"},
	{"Cinema", "Entertainment"},
	{"Pharmacy", "Health"},
}

var incomeCategories = map[string]bool{"Salary": true, "Investments": true}

// valueRanges bounds generated values per category, inclusive
var valueRanges = map[string][2]int64{
	"Salary":        {2000, 8000},
	"Investments":   {50, 600},
	"Groceries":     {15, 250},
	"Dining":        {5, 120},
	"Transport":     {10, 80},
	"Housing":       {600, 2000},
	"Utilities":     {30, 250},
	"Entertainment": {8, 60},
	"Health":        {10, 300},
}

// SampleGenerator writes import files with plausible ledger rows
type SampleGenerator struct {
	rng *rand.Rand
}

// NewSampleGenerator returns a generator seeded with seed so output is reproducible
func NewSampleGenerator(seed int64) *SampleGenerator {
	return &SampleGenerator{rng: rand.New(rand.NewSource(seed))}
}

// WriteCSV writes a header and rows data rows in import column order
func (g *SampleGenerator) WriteCSV(w io.Writer, rows int) error {
	if rows < 0 {
		return fmt.Errorf("row count must not be negative: %d", rows)
	}

	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"title", "type", "value", "category"}); err != nil {
		return err
	}

	for i := 0; i < rows; i++ {
		payee := samplePayees[g.rng.Intn(len(samplePayees))]

		transactionType := models.TransactionTypeOutcome
		if incomeCategories[payee.category] {
			transactionType = models.TransactionTypeIncome
		}

		record := []string{payee.title, transactionType, strconv.FormatInt(g.value(payee.category), 10), payee.category}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func (g *SampleGenerator) value(category string) int64 {
	bounds, ok := valueRanges[category]
	if !ok {
		bounds = [2]int64{10, 100}
	}
	return bounds[0] + g.rng.Int63n(bounds[1]-bounds[0]+1)
}
