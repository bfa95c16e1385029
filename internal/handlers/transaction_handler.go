package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/gabrielrealm08/finance-tracker-app/internal/errors"
	"github.com/gabrielrealm08/finance-tracker-app/internal/models"
	"github.com/gabrielrealm08/finance-tracker-app/internal/services"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// CreateTransactionRequest represents the request payload for creating a transaction.
// Amount is a pointer so absence can be told apart from an explicit value.
type CreateTransactionRequest struct {
	Type     string   `json:"type" binding:"omitempty,transaction_type"`
	Amount   *float64 `json:"amount"`
	Category string   `json:"category"`
	Note     string   `json:"note"`
	Date     string   `json:"date"`
}

// UpdateTransactionRequest represents an arbitrary partial-field set for
// updating a transaction. Every field is optional; provided fields are
// re-validated against store rules when the merge is persisted.
type UpdateTransactionRequest struct {
	Type     *string  `json:"type" binding:"omitempty,transaction_type"`
	Amount   *float64 `json:"amount"`
	Category *string  `json:"category"`
	Note     *string  `json:"note"`
	Date     *string  `json:"date"`
}

// ListTransactions handles the retrieval of all transactions
// @Summary     List transactions
// @Description Get all transactions sorted by date descending
// @Tags        transactions
// @Produce     json
// @Success     200 {array} models.Transaction "Transactions"
// @Failure     500 {object} errors.AppError "Server error"
// @Router      /transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	transactions, err := h.transactionService.ListTransactions()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, transactions)
}

// CreateTransaction handles the creation of a new transaction
// @Summary     Create a transaction
// @Description Record a new income or expense entry
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       request body CreateTransactionRequest true "Transaction fields"
// @Success     201 {object} models.Transaction "Transaction created"
// @Failure     400 {object} errors.AppError "Missing required fields"
// @Failure     500 {object} errors.AppError "Server error"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	// Presence check mirrors the contract: amount == 0 counts as missing,
	// not invalid. Negative amounts pass here and are rejected by the store.
	if req.Type == "" || req.Amount == nil || *req.Amount == 0 || req.Category == "" || req.Date == "" {
		respondWithError(c, apperrors.ErrMissingFields)
		return
	}

	date, err := parseFlexibleDate(req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.CreateTransaction(services.TransactionInput{
		Type:     models.TransactionType(req.Type),
		Amount:   *req.Amount,
		Category: req.Category,
		Note:     req.Note,
		Date:     date,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, transaction)
}

// UpdateTransaction handles partial updates of an existing transaction
// @Summary     Update a transaction
// @Description Merge the provided fields into an existing transaction
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       id      path string                   true "Transaction ID"
// @Param       request body UpdateTransactionRequest true "Fields to update"
// @Success     200 {object} models.Transaction "Transaction updated"
// @Failure     400 {object} errors.AppError "Validation failed"
// @Failure     404 {object} errors.AppError "Not found"
// @Failure     500 {object} errors.AppError "Server error"
// @Router      /transactions/{id} [patch]
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	update := services.TransactionUpdate{
		Amount:   req.Amount,
		Category: req.Category,
		Note:     req.Note,
	}
	if req.Type != nil {
		transactionType := models.TransactionType(*req.Type)
		update.Type = &transactionType
	}
	if req.Date != nil {
		date, err := parseFlexibleDate(*req.Date)
		if err != nil {
			respondWithError(c, err)
			return
		}
		update.Date = &date
	}

	transaction, err := h.transactionService.UpdateTransaction(c.Param("id"), update)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, transaction)
}

// DeleteTransaction handles the permanent removal of a transaction
// @Summary     Delete a transaction
// @Description Permanently remove a transaction
// @Tags        transactions
// @Produce     json
// @Param       id path string true "Transaction ID"
// @Success     200 {object} map[string]bool "Deleted"
// @Failure     404 {object} errors.AppError "Not found"
// @Failure     500 {object} errors.AppError "Server error"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	if err := h.transactionService.DeleteTransaction(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// HealthCheck reports service liveness
// @Summary     Health check
// @Tags        health
// @Produce     json
// @Success     200 {object} map[string]interface{} "Service is up"
// @Router      /health [get]
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "message": "Finance Tracker API is running"})
}
