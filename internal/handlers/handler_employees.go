package handlers

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/pto_ledger_service/internal/core/ports/services"
	"github.com/SscSPs/pto_ledger_service/internal/dto"
	"github.com/SscSPs/pto_ledger_service/internal/middleware"
	"github.com/SscSPs/pto_ledger_service/internal/utils/export"
	"github.com/gin-gonic/gin"
)

// employeeHandler serves read access to an employee's balance and audit trail.
type employeeHandler struct {
	ledgerService portssvc.LedgerReaderSvc
}

func newEmployeeHandler(ls portssvc.LedgerReaderSvc) *employeeHandler {
	return &employeeHandler{ledgerService: ls}
}

// registerEmployeeRoutes registers routes nested under one employee.
func registerEmployeeRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerReaderSvc) {
	h := newEmployeeHandler(ledgerService)

	employee := rg.Group("/employees/:employeeID")
	{
		employee.GET("/balance", h.getBalance)
		employee.GET("/transactions", h.listTransactions)
		employee.GET("/transactions/export", h.exportTransactions)
	}
}

// getBalance godoc
// @Summary Get an employee's current PTO balance
// @Description Returns the single balance record flagged as current for the employee
// @Tags employees
// @Produce  json
// @Param   employeeID path string true "Employee record ID"
// @Success 200 {object} dto.BalanceResponse
// @Failure 404 {object} map[string]string "No current balance record"
// @Failure 409 {object} map[string]string "More than one current balance record"
// @Failure 500 {object} map[string]string "Failed to retrieve balance"
// @Router /employees/{employeeID}/balance [get]
func (h *employeeHandler) getBalance(c *gin.Context) {
	employeeID := c.Param("employeeID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("employee_id", employeeID))
	logger.Info("Received request to get current balance")

	balance, err := h.ledgerService.GetCurrentBalance(c.Request.Context(), employeeID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve balance")
		return
	}

	c.JSON(http.StatusOK, dto.ToBalanceResponse(balance))
}

// listTransactions godoc
// @Summary List an employee's balance transactions
// @Description Retrieves a page of the employee's audit trail, newest first
// @Tags employees
// @Produce  json
// @Param   employeeID path string true "Employee record ID"
// @Param   limit query int false "Maximum number of transactions to return" default(20) minimum(1) maximum(100)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Router /employees/{employeeID}/transactions [get]
func (h *employeeHandler) listTransactions(c *gin.Context) {
	employeeID := c.Param("employeeID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("employee_id", employeeID))

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query parameters for ListTransactions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.ledgerService.ListTransactions(c.Request.Context(), employeeID, params)
	if err != nil {
		respondError(c, logger, err, "Failed to list transactions")
		return
	}

	logger.Info("Transactions listed successfully", slog.Int("count", len(resp.Transactions)))
	c.JSON(http.StatusOK, resp)
}

// exportTransactions godoc
// @Summary Export an employee's balance transactions
// @Description Downloads the employee's whole audit trail, newest first, as an xlsx workbook
// @Tags employees
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param   employeeID path string true "Employee record ID"
// @Success 200 {file} file
// @Failure 500 {object} map[string]string "Failed to export transactions"
// @Router /employees/{employeeID}/transactions/export [get]
func (h *employeeHandler) exportTransactions(c *gin.Context) {
	employeeID := c.Param("employeeID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("employee_id", employeeID))

	txns, err := h.ledgerService.ExportTransactions(c.Request.Context(), employeeID)
	if err != nil {
		respondError(c, logger, err, "Failed to export transactions")
		return
	}

	// rendered fully before the status is written so failures can still answer 500
	var buf bytes.Buffer
	if err := export.WriteTransactions(&buf, txns); err != nil {
		logger.Error("Failed to render transaction export", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export transactions"})
		return
	}

	logger.Info("Transactions exported", slog.Int("count", len(txns)))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, export.FileName(employeeID)))
	c.Data(http.StatusOK, export.ContentType, buf.Bytes())
}
