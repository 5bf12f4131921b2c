package notify

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/tiendalocal/storefront-backend/pkg/db/models"
	pkgerrors "github.com/tiendalocal/storefront-backend/pkg/errors"
	"github.com/tiendalocal/storefront-backend/pkg/pagination"
)

func newTestRepo(t *testing.T) Repository {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&models.Notification{}))
	return NewRepository(conn)
}

func seedNotification(t *testing.T, repo Repository, id, eventID string) {
	t.Helper()
	require.NoError(t, repo.Create(context.Background(), &models.Notification{
		ID:      id,
		EventID: eventID,
		OrderID: "ord_1",
		UserID:  "u1",
		Status:  "shipped",
		Message: "Order ord_1 is on its way.",
	}))
}

func seedNotificationAt(t *testing.T, repo Repository, id, eventID string, at time.Time) {
	t.Helper()
	require.NoError(t, repo.Create(context.Background(), &models.Notification{
		ID:        id,
		EventID:   eventID,
		OrderID:   "ord_1",
		UserID:    "u1",
		Status:    "shipped",
		Message:   "Order ord_1 is on its way.",
		CreatedAt: at,
	}))
}

func TestCreateRejectsDuplicateEventID(t *testing.T) {
	repo := newTestRepo(t)
	seedNotification(t, repo, "ntf_1", "evt-1")

	err := repo.Create(context.Background(), &models.Notification{
		ID:      "ntf_2",
		EventID: "evt-1",
		OrderID: "ord_1",
		UserID:  "u1",
		Status:  "shipped",
	})
	assert.Error(t, err)
}

func TestListAndUnreadCount(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	seedNotification(t, repo, "ntf_1", "evt-1")
	seedNotification(t, repo, "ntf_2", "evt-2")

	all, _, err := repo.List(ctx, pagination.Params{Limit: 10}, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	count, err := repo.CountUnread(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	updated, err := repo.MarkRead(ctx, "ntf_1", time.Now().UTC())
	require.NoError(t, err)
	assert.True(t, updated)

	unread, _, err := repo.List(ctx, pagination.Params{Limit: 10}, true)
	require.NoError(t, err)
	require.Len(t, unread, 1)
	assert.Equal(t, "ntf_2", unread[0].ID)

	// A second mark of the same row reports nothing changed.
	updated, err = repo.MarkRead(ctx, "ntf_1", time.Now().UTC())
	require.NoError(t, err)
	assert.False(t, updated)
}

func TestListPaginatesWithCursor(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	seedNotificationAt(t, repo, "ntf_1", "evt-1", base)
	seedNotificationAt(t, repo, "ntf_2", "evt-2", base.Add(time.Minute))
	seedNotificationAt(t, repo, "ntf_3", "evt-3", base.Add(2*time.Minute))

	first, next, err := repo.List(ctx, pagination.Params{Limit: 2}, false)
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, "ntf_3", first[0].ID)
	assert.Equal(t, "ntf_2", first[1].ID)
	require.NotEmpty(t, next)

	second, next, err := repo.List(ctx, pagination.Params{Limit: 2, Cursor: next}, false)
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, "ntf_1", second[0].ID)
	assert.Empty(t, next)
}

func TestListRejectsMalformedCursor(t *testing.T) {
	repo := newTestRepo(t)

	_, _, err := repo.List(context.Background(), pagination.Params{Cursor: "not a cursor"}, false)
	require.Error(t, err)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))
}

func TestMarkAllRead(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	seedNotification(t, repo, "ntf_1", "evt-1")
	seedNotification(t, repo, "ntf_2", "evt-2")

	n, err := repo.MarkAllRead(ctx, time.Now().UTC())
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	count, err := repo.CountUnread(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}
