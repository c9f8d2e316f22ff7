package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/pto_ledger_service/internal/core/ports/services"
	"github.com/SscSPs/pto_ledger_service/internal/dto"
	"github.com/SscSPs/pto_ledger_service/internal/middleware"
	"github.com/gin-gonic/gin"
)

// workflowHandler creates the approval and notification records that drive the
// PTO approval workflow.
type workflowHandler struct {
	approvalService     portssvc.ApprovalWriterSvc
	notificationService portssvc.NotificationWriterSvc
}

func newWorkflowHandler(as portssvc.ApprovalWriterSvc, ns portssvc.NotificationWriterSvc) *workflowHandler {
	return &workflowHandler{
		approvalService:     as,
		notificationService: ns,
	}
}

func registerWorkflowRoutes(rg *gin.RouterGroup, approvalService portssvc.ApprovalWriterSvc, notificationService portssvc.NotificationWriterSvc) {
	h := newWorkflowHandler(approvalService, notificationService)

	rg.POST("/approvals", h.createApproval)
	rg.POST("/notifications", h.createNotification)
}

// createApproval godoc
// @Summary Create an approval record
// @Description Links a PTO request to the approver who has to decide on it
// @Tags workflow
// @Accept  json
// @Produce  json
// @Param   approval body dto.CreateApprovalRequest true "Approval details"
// @Success 201 {object} dto.ApprovalResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create approval"
// @Router /approvals [post]
func (h *workflowHandler) createApproval(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateApproval", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("pto_request_id", req.PTORequestID))
	approval, err := h.approvalService.CreateApproval(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to create approval")
		return
	}

	logger.Info("Approval created", slog.String("approval_record_id", approval.ID))
	c.JSON(http.StatusCreated, dto.ToApprovalResponse(approval))
}

// createNotification godoc
// @Summary Queue a notification
// @Description Creates a notification record for an external sender; defaults to Normal priority, scheduled today
// @Tags workflow
// @Accept  json
// @Produce  json
// @Param   notification body dto.CreateNotificationRequest true "Notification details"
// @Success 201 {object} dto.NotificationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create notification"
// @Router /notifications [post]
func (h *workflowHandler) createNotification(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateNotification", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("recipient_id", req.RecipientID))
	notification, err := h.notificationService.CreateNotification(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to create notification")
		return
	}

	logger.Info("Notification queued", slog.String("notification_record_id", notification.ID))
	c.JSON(http.StatusCreated, dto.ToNotificationResponse(notification))
}
