package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/pto_ledger_service/internal/apperrors"
	"github.com/SscSPs/pto_ledger_service/internal/core/domain"
	"github.com/SscSPs/pto_ledger_service/internal/core/services"
	"github.com/SscSPs/pto_ledger_service/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPoller_ListSubmittedRequests(t *testing.T) {
	requestRepo := new(MockPTORequestRepository)
	svc := services.NewPollerService(requestRepo, new(MockApprovalRepository))
	ctx := context.Background()

	reqs := []domain.PTORequest{{ID: "recREQ1", EmployeeName: "Unknown"}}
	requestRepo.On("FindSubmittedRequests", ctx, (*domain.RequestType)(nil), services.SubmittedRequestsLimit).Return(reqs, nil).Once()
	requestRepo.On("FindSubmittedRequests", ctx, mock.MatchedBy(func(rt *domain.RequestType) bool {
		return rt != nil && *rt == domain.Sick
	}), services.SubmittedRequestsLimit).Return([]domain.PTORequest{}, nil).Once()

	got, err := svc.ListSubmittedRequests(ctx, dto.PollRequestsParams{})
	require.NoError(t, err)
	assert.Equal(t, reqs, got)

	got, err = svc.ListSubmittedRequests(ctx, dto.PollRequestsParams{RequestType: "Sick"})
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = svc.ListSubmittedRequests(ctx, dto.PollRequestsParams{RequestType: "Sabbatical"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	requestRepo.AssertExpectations(t)
}

func TestPoller_ListApprovalDecisions(t *testing.T) {
	approvalRepo := new(MockApprovalRepository)
	svc := services.NewPollerService(new(MockPTORequestRepository), approvalRepo)
	ctx := context.Background()

	decisions := []domain.ApprovalDecision{{ID: "recAPP1", ApprovalStatus: domain.ApprovalApproved}}
	approvalRepo.On("FindDecidedApprovals", ctx, mock.MatchedBy(func(st *domain.ApprovalStatus) bool {
		return st != nil && *st == domain.ApprovalApproved
	}), services.DecidedApprovalsLimit).Return(decisions, nil).Once()
	approvalRepo.On("FindDecidedApprovals", ctx, (*domain.ApprovalStatus)(nil), services.DecidedApprovalsLimit).Return(nil, apperrors.ErrStoreUnavailable).Once()

	got, err := svc.ListApprovalDecisions(ctx, dto.PollApprovalsParams{StatusFilter: "Approved"})
	require.NoError(t, err)
	assert.Equal(t, decisions, got)

	_, err = svc.ListApprovalDecisions(ctx, dto.PollApprovalsParams{})
	assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)

	_, err = svc.ListApprovalDecisions(ctx, dto.PollApprovalsParams{StatusFilter: "Pending"})
	assert.ErrorIs(t, err, apperrors.ErrValidation, "pending approvals are never decisions")

	approvalRepo.AssertExpectations(t)
}

func TestCreateApproval_DefaultsToPending(t *testing.T) {
	approvalRepo := new(MockApprovalRepository)
	svc := services.NewApprovalService(approvalRepo)
	ctx := context.Background()

	approvalRepo.On("SaveApproval", ctx, domain.Approval{
		PTORequestID:   "recREQ1",
		ApproverID:     "recMGR1",
		ApprovalStatus: domain.ApprovalPending,
	}).Return(&domain.Approval{ID: "recAPP1", PTORequestID: "recREQ1", ApproverID: "recMGR1", ApprovalStatus: domain.ApprovalPending}, nil).Once()

	created, err := svc.CreateApproval(ctx, dto.CreateApprovalRequest{PTORequestID: "recREQ1", ApproverID: "recMGR1"})
	require.NoError(t, err)
	assert.Equal(t, "recAPP1", created.ID)

	_, err = svc.CreateApproval(ctx, dto.CreateApprovalRequest{PTORequestID: "recREQ1"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.CreateApproval(ctx, dto.CreateApprovalRequest{PTORequestID: "recREQ1", ApproverID: "recMGR1", ApprovalStatus: "Maybe"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	approvalRepo.AssertExpectations(t)
}

func TestCreateNotification_Defaults(t *testing.T) {
	notificationRepo := new(MockNotificationRepository)
	fixed := time.Date(2025, 9, 4, 22, 15, 0, 0, time.UTC)
	svc := services.NewNotificationService(notificationRepo, func() time.Time { return fixed })
	ctx := context.Background()

	var saved domain.Notification
	notificationRepo.On("SaveNotification", ctx, mock.AnythingOfType("domain.Notification")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.Notification) }).
		Return(&domain.Notification{ID: "recNOT1"}, nil).Once()

	approvalID := "recAPP1"
	created, err := svc.CreateNotification(ctx, dto.CreateNotificationRequest{
		RecipientID:       "recEMP1",
		NotificationType:  domain.NotifyRequestApproved,
		RelatedApprovalID: &approvalID,
		Subject:           "Your PTO was approved",
		MessageContent:    "Enjoy!",
	})
	require.NoError(t, err)
	assert.Equal(t, "recNOT1", created.ID)
	assert.Equal(t, domain.PriorityNormal, saved.Priority)
	assert.Equal(t, domain.SendStatusPending, saved.SendStatus)
	assert.Equal(t, time.Date(2025, 9, 4, 0, 0, 0, 0, time.UTC), saved.ScheduledSendDate)
	assert.Equal(t, &approvalID, saved.RelatedApprovalID)
	assert.Nil(t, saved.RelatedRequestID)

	_, err = svc.CreateNotification(ctx, dto.CreateNotificationRequest{
		RecipientID:      "recEMP1",
		NotificationType: "Carrier Pigeon",
		Subject:          "x",
		MessageContent:   "y",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	notificationRepo.AssertExpectations(t)
}
