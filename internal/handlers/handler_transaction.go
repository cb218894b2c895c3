package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/bank_transaction_service/internal/apperrors"
	portssvc "github.com/SscSPs/bank_transaction_service/internal/core/ports/services"
	"github.com/SscSPs/bank_transaction_service/internal/dto"
	"github.com/SscSPs/bank_transaction_service/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to transactions.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

// newTransactionHandler creates a new transactionHandler.
func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{
		transactionService: ts,
	}
}

// registerTransactionRoutes registers routes related to transactions.
func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(transactionService)

	transactions := rg.Group("/transaction")
	{
		transactions.GET("/findAll", h.findAll)
		transactions.GET("/find/:id", h.findByID)
		transactions.POST("/create", h.create)
		transactions.PUT("/update/:id", h.update)
		transactions.DELETE("/delete/:id", h.delete)
		transactions.GET("/findAllWithDetail", h.findAllWithDetail)
		transactions.GET("/findByIdWithCustomer/:id", h.findByIDWithCustomer)
	}
}

// findAll godoc
// @Summary List transactions
// @Description Retrieves every stored transaction without enrichment
// @Tags transactions
// @Produce  json
// @Success 200 {array} dto.TransactionResponse
// @Failure 500 {object} dto.ErrorResponse "Transaction store failure"
// @Router /transaction/findAll [get]
func (h *transactionHandler) findAll(c *gin.Context) {
	txs, err := h.transactionService.FindAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionListResponse(txs))
}

// findByID godoc
// @Summary Get a transaction
// @Description Retrieves a transaction by its ID
// @Tags transactions
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} dto.ErrorResponse "Transaction not found"
// @Failure 500 {object} dto.ErrorResponse "Transaction store failure"
// @Router /transaction/find/{id} [get]
func (h *transactionHandler) findByID(c *gin.Context) {
	tx, err := h.transactionService.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(tx))
}

// create godoc
// @Summary Create a transaction
// @Description Opens a product for a customer after checking the eligibility rules
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Customer or product not found"
// @Failure 409 {object} dto.ErrorResponse "Duplicate account or credit"
// @Failure 422 {object} dto.ErrorResponse "Product restricted for business customers"
// @Failure 502 {object} dto.ErrorResponse "Downstream service unavailable"
// @Failure 500 {object} dto.ErrorResponse "Transaction store failure"
// @Router /transaction/create [post]
func (h *transactionHandler) create(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransaction", slog.String("error", err.Error()))
		respondError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid request format: "+err.Error()))
		return
	}

	created, err := h.transactionService.Create(c.Request.Context(), req.ToDomain())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(created))
}

// update godoc
// @Summary Update a transaction
// @Description Overwrites every mutable field of a transaction. The customer is kept.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Param   transaction body dto.UpdateTransactionRequest true "New field values"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Transaction not found"
// @Failure 500 {object} dto.ErrorResponse "Transaction store failure"
// @Router /transaction/update/{id} [put]
func (h *transactionHandler) update(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateTransaction", slog.String("error", err.Error()))
		respondError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid request format: "+err.Error()))
		return
	}

	updated, err := h.transactionService.Update(c.Request.Context(), req.ToDomain(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(updated))
}

// delete godoc
// @Summary Delete a transaction
// @Description Removes a transaction and answers with an empty transaction
// @Tags transactions
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse "Empty acknowledgment"
// @Failure 404 {object} dto.ErrorResponse "Transaction not found"
// @Failure 500 {object} dto.ErrorResponse "Transaction store failure"
// @Router /transaction/delete/{id} [delete]
func (h *transactionHandler) delete(c *gin.Context) {
	ack, err := h.transactionService.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(ack))
}

// findAllWithDetail godoc
// @Summary List transactions with detail
// @Description Retrieves every transaction joined with its customer, product and movements
// @Tags transactions
// @Produce  json
// @Success 200 {array} dto.EnrichedTransactionResponse
// @Failure 404 {object} dto.ErrorResponse "Customer or product of a transaction not found"
// @Failure 502 {object} dto.ErrorResponse "Downstream service unavailable"
// @Failure 500 {object} dto.ErrorResponse "Transaction store failure"
// @Router /transaction/findAllWithDetail [get]
func (h *transactionHandler) findAllWithDetail(c *gin.Context) {
	ets, err := h.transactionService.FindAllWithDetail(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToEnrichedTransactionListResponse(ets))
}

// findByIDWithCustomer godoc
// @Summary Get a transaction with detail
// @Description Retrieves one transaction joined with its customer, product and movements
// @Tags transactions
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Success 200 {object} dto.EnrichedTransactionResponse
// @Failure 404 {object} dto.ErrorResponse "Transaction, customer or product not found"
// @Failure 502 {object} dto.ErrorResponse "Downstream service unavailable"
// @Failure 500 {object} dto.ErrorResponse "Transaction store failure"
// @Router /transaction/findByIdWithCustomer/{id} [get]
func (h *transactionHandler) findByIDWithCustomer(c *gin.Context) {
	et, err := h.transactionService.FindByIDWithCustomer(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToEnrichedTransactionResponse(et))
}

// respondError writes err with the status and code of its *apperrors.AppError.
// Server-side failures hide the underlying cause from the client.
func respondError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status := apperrors.StatusCode(err)

	body := dto.ErrorResponse{Code: "INTERNAL_ERROR", Error: "Internal server error"}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		body.Code = appErr.Code
		body.Error = appErr.Message
	}

	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", slog.String("code", body.Code), slog.String("error", err.Error()))
	} else {
		logger.Warn("Request rejected", slog.String("code", body.Code), slog.String("error", err.Error()))
	}
	c.JSON(status, body)
}
