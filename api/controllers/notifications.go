package controllers

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tiendalocal/storefront-backend/api/responses"
	"github.com/tiendalocal/storefront-backend/api/validators"
	"github.com/tiendalocal/storefront-backend/pkg/db/models"
	pkgerrors "github.com/tiendalocal/storefront-backend/pkg/errors"
	"github.com/tiendalocal/storefront-backend/pkg/logger"
	"github.com/tiendalocal/storefront-backend/pkg/pagination"
)

// NotificationReader is the inbox surface the admin endpoints need.
type NotificationReader interface {
	List(ctx context.Context, params pagination.Params, unreadOnly bool) ([]models.Notification, string, error)
	CountUnread(ctx context.Context) (int64, error)
	MarkRead(ctx context.Context, id string, now time.Time) (bool, error)
	MarkAllRead(ctx context.Context, now time.Time) (int64, error)
}

type notificationsPage struct {
	Notifications []notificationView `json:"notifications"`
	NextCursor    string             `json:"next_cursor,omitempty"`
}

// ListNotifications returns the admin inbox, newest first.
func ListNotifications(repo NotificationReader, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if repo == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "notifications unavailable"))
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", 0, 1, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		unreadOnly := false
		if raw := strings.TrimSpace(r.URL.Query().Get("unread_only")); raw != "" {
			value, err := strconv.ParseBool(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid unread_only value"))
				return
			}
			unreadOnly = value
		}

		params := pagination.Params{
			Limit:  limit,
			Cursor: r.URL.Query().Get("cursor"),
		}
		notifications, next, err := repo.List(r.Context(), params, unreadOnly)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, notificationsPage{
			Notifications: notificationsToViews(notifications),
			NextCursor:    next,
		})
	}
}

// CountUnreadNotifications returns the badge count.
func CountUnreadNotifications(repo NotificationReader, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if repo == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "notifications unavailable"))
			return
		}

		count, err := repo.CountUnread(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]int64{"unread": count})
	}
}

// MarkNotificationRead marks one inbox entry as read.
func MarkNotificationRead(repo NotificationReader, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if repo == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "notifications unavailable"))
			return
		}

		id := chi.URLParam(r, "id")
		updated, err := repo.MarkRead(r.Context(), id, time.Now().UTC())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		// RowsAffected zero means missing or already read; both are fine
		// to report as read so retries stay idempotent.
		status := "read"
		if !updated {
			status = "already_read"
		}
		responses.WriteSuccess(w, map[string]string{"id": id, "status": status})
	}
}

// MarkAllNotificationsRead clears the badge in one call.
func MarkAllNotificationsRead(repo NotificationReader, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if repo == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "notifications unavailable"))
			return
		}

		updated, err := repo.MarkAllRead(r.Context(), time.Now().UTC())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]int64{"updated": updated})
	}
}
