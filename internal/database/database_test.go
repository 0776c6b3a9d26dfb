package database

import (
	"testing"

	"finance-ledger/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupTestDB_MigratesLedgerTables(t *testing.T) {
	db := SetupTestDB(t)

	assert.True(t, db.Migrator().HasTable(&models.Category{}))
	assert.True(t, db.Migrator().HasTable(&models.Transaction{}))
	assert.NoError(t, db.HealthCheck())
}

func TestCreateIndexes_IsIdempotent(t *testing.T) {
	db := SetupTestDB(t)

	require.NoError(t, db.CreateIndexes())
	require.NoError(t, db.CreateIndexes())
}

func TestCategoryTitleIsUnique(t *testing.T) {
	db := SetupTestDB(t)
	CreateTestCategory(t, db, "Groceries")

	err := db.Create(models.NewCategory("Groceries")).Error

	assert.Error(t, err)
}

func TestCleanupTestDB(t *testing.T) {
	db := SetupTestDB(t)
	category := CreateTestCategory(t, db, "Salary")
	CreateTestTransaction(t, db, "Paycheck", models.TransactionTypeIncome, 5000, category)

	CleanupTestDB(t, db)

	var count int64
	require.NoError(t, db.Model(&models.Transaction{}).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&models.Category{}).Count(&count).Error)
	assert.Zero(t, count)
}
