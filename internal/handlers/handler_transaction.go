package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/pocketfin/pocketfin_backend/internal/core/ports/services"
	"github.com/pocketfin/pocketfin_backend/internal/dto"
)

// transactionHandler handles HTTP requests related to ledger entries and
// recurring templates.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
	recurrenceService  portssvc.RecurrenceSvcFacade
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade, rs portssvc.RecurrenceSvcFacade) *transactionHandler {
	return &transactionHandler{
		transactionService: ts,
		recurrenceService:  rs,
	}
}

// registerTransactionRoutes registers routes related to the ledger.
func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade, recurrenceService portssvc.RecurrenceSvcFacade) {
	h := newTransactionHandler(transactionService, recurrenceService)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("", h.listTransactions)
		transactions.GET("/:id", h.getTransaction)
		transactions.DELETE("/:id", h.deleteTransaction)
		transactions.POST("/recurring/run", h.runRecurring)
	}
}

// createTransaction godoc
// @Summary Create a ledger entry or recurring template
// @Description Records an income/expense entry, or a recurring template when
// @Description isRecurring is set. Leaf entries referencing an account move
// @Description its balance; templates never do.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Entry details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Referenced account not found"
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	txn, err := h.transactionService.CreateTransaction(c.Request.Context(), userID, req)
	if err != nil {
		respondWithError(c, err, "Failed to create transaction")
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// listTransactions godoc
// @Summary List ledger entries
// @Description Retrieves the user's entries newest first, with token-based
// @Description pagination. Recurring templates are never listed here.
// @Tags transactions
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Opaque page token"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.transactionService.ListTransactions(c.Request.Context(), userID, params)
	if err != nil {
		respondWithError(c, err, "Failed to list transactions")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getTransaction godoc
// @Summary Get a ledger record
// @Description Retrieves one of the user's ledger records (entry or
// @Description template) by ID.
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	txn, err := h.transactionService.GetTransactionByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondWithError(c, err, "Failed to retrieve transaction")
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// deleteTransaction godoc
// @Summary Delete a ledger record
// @Description Removes a record and reverses its balance effect. Deleting a
// @Description template leaves already-spawned entries untouched.
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	if err := h.transactionService.DeleteTransaction(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondWithError(c, err, "Failed to delete transaction")
		return
	}

	c.Status(http.StatusNoContent)
}

// runRecurring godoc
// @Summary Materialize due recurring templates
// @Description Spawns one entry per elapsed cycle for every due template.
// @Description The client calls this on app foreground; running it twice in
// @Description a row creates nothing new.
// @Tags transactions
// @Produce json
// @Success 200 {object} dto.RecurrenceRunResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/recurring/run [post]
func (h *transactionHandler) runRecurring(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	resp, err := h.recurrenceService.AdvanceDueTemplates(c.Request.Context(), userID, time.Now())
	if err != nil {
		respondWithError(c, err, "Failed to process recurring transactions")
		return
	}

	c.JSON(http.StatusOK, resp)
}
