package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/pto_ledger_service/internal/apperrors"
	"github.com/SscSPs/pto_ledger_service/internal/core/domain"
	portssvc "github.com/SscSPs/pto_ledger_service/internal/core/ports/services"
	"github.com/SscSPs/pto_ledger_service/internal/dto"
	"github.com/SscSPs/pto_ledger_service/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerHandler handles balance mutations.
type ledgerHandler struct {
	ledgerService portssvc.LedgerWriterSvc
}

// newLedgerHandler creates a new ledgerHandler.
func newLedgerHandler(ls portssvc.LedgerWriterSvc) *ledgerHandler {
	return &ledgerHandler{
		ledgerService: ls,
	}
}

// registerLedgerRoutes registers the balance mutation routes.
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerWriterSvc) {
	h := newLedgerHandler(ledgerService)

	ledger := rg.Group("/ledger")
	{
		ledger.POST("/deductions", h.applyDeduction)
		ledger.POST("/credits", h.applyCredit)
		ledger.POST("/adjustments", h.applyAdjustment)
	}
}

// applyDeduction godoc
// @Summary Deduct PTO days from an employee's balance
// @Description Reads the employee's current balance, writes max(0, balance - days) and appends a Deduction transaction.
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   deduction body dto.ApplyDeductionRequest true "Deduction details"
// @Success 200 {object} dto.LedgerUpdateResponse
// @Success 207 {object} dto.LedgerUpdateResponse "Balance updated but the audit transaction was not recorded"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "No current balance record"
// @Failure 409 {object} map[string]string "Concurrent modification or duplicate current balance records"
// @Failure 502 {object} map[string]string "Record store unavailable"
// @Failure 500 {object} map[string]string "Failed to apply deduction"
// @Router /ledger/deductions [post]
func (h *ledgerHandler) applyDeduction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ApplyDeductionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ApplyDeduction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("employee_id", req.EmployeeID))
	logger.Info("Received request to deduct PTO days", slog.String("days", req.DaysToDeduct.String()))

	result, err := h.ledgerService.ApplyDeduction(c.Request.Context(), req)
	h.respond(c, logger, result, err, "Failed to apply deduction")
}

// applyCredit godoc
// @Summary Credit PTO days to an employee's balance
// @Description Reads the employee's current balance, writes balance + days and appends a Credit transaction.
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   credit body dto.ApplyCreditRequest true "Credit details"
// @Success 200 {object} dto.LedgerUpdateResponse
// @Success 207 {object} dto.LedgerUpdateResponse "Balance updated but the audit transaction was not recorded"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "No current balance record"
// @Failure 409 {object} map[string]string "Concurrent modification or duplicate current balance records"
// @Failure 502 {object} map[string]string "Record store unavailable"
// @Failure 500 {object} map[string]string "Failed to apply credit"
// @Router /ledger/credits [post]
func (h *ledgerHandler) applyCredit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ApplyCreditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ApplyCredit", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("employee_id", req.EmployeeID))
	logger.Info("Received request to credit PTO days", slog.String("days", req.DaysToCredit.String()))

	result, err := h.ledgerService.ApplyCredit(c.Request.Context(), req)
	h.respond(c, logger, result, err, "Failed to apply credit")
}

// applyAdjustment godoc
// @Summary Apply a signed correction to an employee's balance
// @Description Adds daysChanged (positive or negative, never zero) to the current balance, floored at zero, and appends an Adjustment transaction.
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   adjustment body dto.ApplyAdjustmentRequest true "Adjustment details"
// @Success 200 {object} dto.LedgerUpdateResponse
// @Success 207 {object} dto.LedgerUpdateResponse "Balance updated but the audit transaction was not recorded"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "No current balance record"
// @Failure 409 {object} map[string]string "Concurrent modification or duplicate current balance records"
// @Failure 502 {object} map[string]string "Record store unavailable"
// @Failure 500 {object} map[string]string "Failed to apply adjustment"
// @Router /ledger/adjustments [post]
func (h *ledgerHandler) applyAdjustment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ApplyAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ApplyAdjustment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("employee_id", req.EmployeeID))
	logger.Info("Received request to adjust PTO balance", slog.String("days", req.DaysChanged.String()))

	result, err := h.ledgerService.ApplyAdjustment(c.Request.Context(), req)
	h.respond(c, logger, result, err, "Failed to apply adjustment")
}

// respond writes the outcome of a mutation. A partial write still carries the result so
// the caller can see which balance changed without an audit entry.
func (h *ledgerHandler) respond(c *gin.Context, logger *slog.Logger, result *domain.LedgerUpdateResult, err error, fallback string) {
	if err != nil {
		if errors.Is(err, apperrors.ErrPartialWrite) && result != nil {
			logger.Error("Balance written without audit transaction",
				slog.String("balance_record_id", result.BalanceRecordID),
				slog.String("error", err.Error()))
			resp := dto.ToLedgerUpdateResponse(result)
			resp.Error = err.Error()
			c.JSON(http.StatusMultiStatus, resp)
			return
		}
		respondError(c, logger, err, fallback)
		return
	}

	logger.Info("Balance mutation applied",
		slog.String("transaction_id", result.TransactionID),
		slog.String("new_balance", result.NewBalance.String()))
	c.JSON(http.StatusOK, dto.ToLedgerUpdateResponse(result))
}
