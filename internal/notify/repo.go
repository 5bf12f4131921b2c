package notify

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/tiendalocal/storefront-backend/internal/repo"
	"github.com/tiendalocal/storefront-backend/pkg/db/models"
	pkgerrors "github.com/tiendalocal/storefront-backend/pkg/errors"
	"github.com/tiendalocal/storefront-backend/pkg/pagination"
)

// Repository exposes persistence helpers for order notifications.
type Repository interface {
	Create(ctx context.Context, notification *models.Notification) error
	List(ctx context.Context, params pagination.Params, unreadOnly bool) ([]models.Notification, string, error)
	CountUnread(ctx context.Context) (int64, error)
	MarkRead(ctx context.Context, notificationID string, now time.Time) (bool, error)
	MarkAllRead(ctx context.Context, now time.Time) (int64, error)
}

type repositoryImpl struct {
	repo.Base
}

// NewRepository returns a notifications repository bound to the database.
func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{Base: repo.NewBase(db)}
}

func (r *repositoryImpl) Create(ctx context.Context, notification *models.Notification) error {
	return r.DB(ctx).Create(notification).Error
}

// List pages through the inbox newest first. The returned cursor is empty
// on the last page.
func (r *repositoryImpl) List(ctx context.Context, params pagination.Params, unreadOnly bool) ([]models.Notification, string, error) {
	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, "", pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
	}

	query := r.DB(ctx).Model(&models.Notification{})
	if unreadOnly {
		query = query.Where("read_at IS NULL")
	}
	if cursor != nil {
		query = query.Where(
			"created_at < ? OR (created_at = ? AND id < ?)",
			cursor.CreatedAt, cursor.CreatedAt, cursor.ID,
		)
	}

	var notifications []models.Notification
	err = query.Order("created_at DESC, id DESC").
		Limit(pagination.LimitWithBuffer(params.Limit)).
		Find(&notifications).Error
	if err != nil {
		return nil, "", err
	}

	limit := pagination.NormalizeLimit(params.Limit)
	next := ""
	if len(notifications) > limit {
		notifications = notifications[:limit]
		last := notifications[limit-1]
		next = pagination.EncodeCursor(pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.ID})
	}
	return notifications, next, nil
}

func (r *repositoryImpl) CountUnread(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB(ctx).Model(&models.Notification{}).
		Where("read_at IS NULL").Count(&count).Error
	return count, err
}

func (r *repositoryImpl) MarkRead(ctx context.Context, notificationID string, now time.Time) (bool, error) {
	result := r.DB(ctx).Model(&models.Notification{}).
		Where("id = ? AND read_at IS NULL", notificationID).
		UpdateColumn("read_at", now)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *repositoryImpl) MarkAllRead(ctx context.Context, now time.Time) (int64, error) {
	result := r.DB(ctx).Model(&models.Notification{}).
		Where("read_at IS NULL").
		UpdateColumn("read_at", now)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
