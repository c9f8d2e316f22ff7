package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/pto_ledger_service/internal/core/ports/services"
	"github.com/SscSPs/pto_ledger_service/internal/dto"
	"github.com/SscSPs/pto_ledger_service/internal/middleware"
	"github.com/gin-gonic/gin"
)

// triggerHandler exposes the polling triggers. Every call returns the latest matching
// items; callers remember what they have already processed.
type triggerHandler struct {
	pollerService portssvc.ChangePollerSvc
}

func newTriggerHandler(ps portssvc.ChangePollerSvc) *triggerHandler {
	return &triggerHandler{pollerService: ps}
}

func registerTriggerRoutes(rg *gin.RouterGroup, pollerService portssvc.ChangePollerSvc) {
	h := newTriggerHandler(pollerService)

	triggers := rg.Group("/triggers")
	{
		triggers.GET("/pto-requests", h.pollSubmittedRequests)
		triggers.GET("/approvals", h.pollApprovalDecisions)
	}
}

// pollSubmittedRequests godoc
// @Summary Poll newly submitted PTO requests
// @Description Returns up to 100 requests with status Submitted, most recently submitted first
// @Tags triggers
// @Produce  json
// @Param   requestType query string false "Only requests of this type" Enums(Vacation, Sick, Personal, Emergency, Other)
// @Success 200 {array} dto.PTORequestItem
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to poll PTO requests"
// @Router /triggers/pto-requests [get]
func (h *triggerHandler) pollSubmittedRequests(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.PollRequestsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query parameters for PollSubmittedRequests", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	requests, err := h.pollerService.ListSubmittedRequests(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to poll PTO requests")
		return
	}

	logger.Debug("Polled submitted PTO requests", slog.Int("count", len(requests)))
	c.JSON(http.StatusOK, dto.ToPTORequestItems(requests))
}

// pollApprovalDecisions godoc
// @Summary Poll approval decisions
// @Description Returns up to 50 approvals that are no longer Pending and have a decision date, most recent decision first
// @Tags triggers
// @Produce  json
// @Param   statusFilter query string false "Only decisions with this status" Enums(Approved, Rejected, Delegated)
// @Success 200 {array} dto.ApprovalDecisionItem
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to poll approval decisions"
// @Router /triggers/approvals [get]
func (h *triggerHandler) pollApprovalDecisions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.PollApprovalsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query parameters for PollApprovalDecisions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	decisions, err := h.pollerService.ListApprovalDecisions(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to poll approval decisions")
		return
	}

	logger.Debug("Polled approval decisions", slog.Int("count", len(decisions)))
	c.JSON(http.StatusOK, dto.ToApprovalDecisionItems(decisions))
}
