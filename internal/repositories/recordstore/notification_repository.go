package recordstore

import (
	"context"
	"fmt"

	"github.com/SscSPs/pto_ledger_service/internal/apperrors"
	"github.com/SscSPs/pto_ledger_service/internal/core/domain"
	portsrepo "github.com/SscSPs/pto_ledger_service/internal/core/ports/repositories"
	"github.com/SscSPs/pto_ledger_service/internal/models"
	"github.com/SscSPs/pto_ledger_service/internal/utils/mapping"
)

type NotificationRepository struct {
	BaseRepository
}

func newNotificationRepository(store portsrepo.RecordStore) portsrepo.NotificationWriter {
	return &NotificationRepository{BaseRepository: BaseRepository{Store: store}}
}

var _ portsrepo.NotificationWriter = (*NotificationRepository)(nil)

// SaveNotification creates one Notifications record.
func (r *NotificationRepository) SaveNotification(ctx context.Context, notification domain.Notification) (*domain.Notification, error) {
	rec, err := r.Store.Create(ctx, models.TableNotifications, mapping.ToNotificationFields(notification))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create notification for %s: %w", apperrors.ErrPersistence, notification.RecipientID, err)
	}
	created := mapping.ToDomainNotification(*rec)
	return &created, nil
}
