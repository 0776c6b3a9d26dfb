package handlers

import (
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"finance-ledger/internal/config"
	"finance-ledger/internal/dto"
	"finance-ledger/internal/errors"
	"finance-ledger/internal/models"
	"finance-ledger/internal/repositories"
	"finance-ledger/internal/services"
	"finance-ledger/internal/validation"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const importFormField = "file"

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionService services.TransactionServiceInterface
	ledgerService      services.LedgerServiceInterface
	importService      services.ImportServiceInterface
	uploadDir          string
	maxUploadBytes     int64
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(
	transactionService services.TransactionServiceInterface,
	ledgerService services.LedgerServiceInterface,
	importService services.ImportServiceInterface,
	importConfig config.ImportConfig,
) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		ledgerService:      ledgerService,
		importService:      importService,
		uploadDir:          importConfig.UploadDir,
		maxUploadBytes:     importConfig.MaxUploadBytes,
	}
}

// CreateTransaction records a single income or outcome transaction
// @Summary Create transaction
// @Description Record a transaction under a category title. Outcomes larger than the current balance are rejected.
// @Tags Transactions
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Transaction"
// @Success 201 {object} dto.TransactionResponse "Created transaction"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 422 {object} errors.ErrorResponse "TRANSACTION_003 - Insufficient funds"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(validation.FormatValidationErrors(err)...))
	}

	transaction, err := h.transactionService.CreateTransaction(c.Request().Context(), services.CreateTransactionInput{
		Title:    req.Title,
		Value:    *req.Value,
		Type:     req.Type,
		Category: req.Category,
	})
	if err != nil {
		switch {
		case stderrors.Is(err, services.ErrInsufficientFunds):
			return SendError(c, errors.TransactionInsufficientFunds)
		case stderrors.Is(err, models.ErrInvalidTransactionType):
			return SendError(c, errors.TransactionInvalidType)
		case stderrors.Is(err, models.ErrNegativeValue):
			return SendError(c, errors.TransactionInvalidValue)
		case stderrors.Is(err, models.ErrTitleRequired),
			stderrors.Is(err, models.ErrCategoryRequired),
			stderrors.Is(err, models.ErrCategoryTitleTooLong):
			return SendError(c, errors.TransactionValidationFailed, errors.WithDetails(err.Error()))
		case stderrors.Is(err, repositories.ErrCategoryTitleExists):
			return SendError(c, errors.CategoryAlreadyExists)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewTransactionResponse(transaction))
}

// ListTransactions returns every transaction together with the derived balance
// @Summary List transactions
// @Tags Transactions
// @Produce json
// @Success 200 {object} dto.ListTransactionsResponse "Transactions and balance"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	transactions, balance, err := h.ledgerService.ListTransactions(c.Request().Context())
	if err != nil {
		return SendSystemError(c, err)
	}

	response := dto.ListTransactionsResponse{
		Transactions: make([]dto.TransactionResponse, 0, len(transactions)),
		Balance:      dto.NewBalanceResponse(balance),
	}
	for i := range transactions {
		response.Transactions = append(response.Transactions, dto.NewTransactionResponse(&transactions[i]))
	}

	return c.JSON(http.StatusOK, response)
}

// ImportTransactions stores an uploaded CSV file and bulk-imports it
// @Summary Import transactions
// @Description Upload a CSV file with header title,type,value,category. Missing categories are created. The balance is not checked.
// @Tags Transactions
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Success 201 {object} dto.ImportTransactionsResponse "Imported transactions"
// @Failure 400 {object} errors.ErrorResponse "IMPORT_001 - Missing file"
// @Failure 413 {object} errors.ErrorResponse "IMPORT_004 - File too large"
// @Failure 422 {object} errors.ErrorResponse "IMPORT_002 - Malformed CSV or IMPORT_003 - Invalid row"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions/import [post]
func (h *TransactionHandler) ImportTransactions(c echo.Context) error {
	fileHeader, err := c.FormFile(importFormField)
	if err != nil {
		return SendError(c, errors.ImportMissingFile)
	}

	if h.maxUploadBytes > 0 && fileHeader.Size > h.maxUploadBytes {
		return SendError(c, errors.ImportFileTooLarge,
			errors.WithDetails(fmt.Sprintf("maximum size is %d bytes", h.maxUploadBytes)))
	}

	path, err := h.storeUpload(fileHeader.Open)
	if err != nil {
		return SendSystemError(c, err)
	}

	slog.InfoContext(c.Request().Context(), "import upload stored",
		"file_name", fileHeader.Filename,
		"size", fileHeader.Size,
		"client_ip", getClientIP(c),
	)

	result, err := h.importService.ImportTransactions(c.Request().Context(), path)
	if err != nil {
		switch {
		case stderrors.Is(err, services.ErrInvalidValue),
			stderrors.Is(err, services.ErrInvalidType):
			return SendError(c, errors.ImportInvalidRow, errors.WithDetails(err.Error()))
		case stderrors.Is(err, services.ErrMalformedSource):
			return SendError(c, errors.ImportMalformedSource, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	response := dto.ImportTransactionsResponse{
		Transactions:      make([]dto.TransactionResponse, 0, len(result.Transactions)),
		Count:             len(result.Transactions),
		CategoriesCreated: result.CategoriesCreated,
		RowsSkipped:       result.RowsSkipped,
	}
	for _, transaction := range result.Transactions {
		response.Transactions = append(response.Transactions, dto.NewTransactionResponse(transaction))
	}

	return c.JSON(http.StatusCreated, response)
}

// storeUpload copies the uploaded file into the upload directory under a fresh name
func (h *TransactionHandler) storeUpload(open func() (multipart.File, error)) (string, error) {
	src, err := open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	if err := os.MkdirAll(h.uploadDir, 0o750); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	path := filepath.Join(h.uploadDir, uuid.New().String()+uploadExt)
	dst, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o600)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return "", fmt.Errorf("failed to store upload: %w", err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to store upload: %w", err)
	}

	return path, nil
}
