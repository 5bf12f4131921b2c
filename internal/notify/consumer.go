// Package notify consumes order status events and turns them into inbox
// notifications for the store admins.
package notify

import (
	"context"
	"fmt"

	pubsub "cloud.google.com/go/pubsub/v2"

	"github.com/tiendalocal/storefront-backend/internal/events"
	"github.com/tiendalocal/storefront-backend/pkg/db/models"
	"github.com/tiendalocal/storefront-backend/pkg/enums"
	pkgerrors "github.com/tiendalocal/storefront-backend/pkg/errors"
	"github.com/tiendalocal/storefront-backend/pkg/identifier"
	"github.com/tiendalocal/storefront-backend/pkg/logger"
)

const orderNotificationConsumer = "order-notifications"

type repository interface {
	Create(ctx context.Context, notification *models.Notification) error
}

// Consumer watches order events and writes one notification per status
// change. A Redis SETNX guard plus the database unique index on event_id
// keep redelivered messages from producing duplicates.
type Consumer struct {
	repo         repository
	subscription *pubsub.Subscriber
	idempotency  *Idempotency
	logg         *logger.Logger
}

// NewConsumer builds an order notification consumer.
func NewConsumer(repo repository, subscription *pubsub.Subscriber, guard *Idempotency, logg *logger.Logger) (*Consumer, error) {
	if repo == nil {
		return nil, fmt.Errorf("notifications repository required")
	}
	if subscription == nil {
		return nil, fmt.Errorf("orders subscription required")
	}
	if guard == nil {
		return nil, fmt.Errorf("idempotency guard required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &Consumer{repo: repo, subscription: subscription, idempotency: guard, logg: logg}, nil
}

// Run starts the consumer loop until the context is canceled.
func (c *Consumer) Run(ctx context.Context) error {
	return c.subscription.Receive(ctx, func(ctx context.Context, msg *pubsub.Message) {
		result := c.process(ctx, msg)
		if result.nack {
			msg.Nack()
			return
		}
		msg.Ack()
	})
}

type processResult struct {
	ack  bool
	nack bool
}

func (c *Consumer) process(ctx context.Context, msg *pubsub.Message) processResult {
	eventType := msg.Attributes["event_type"]
	logCtx := c.logg.WithFields(ctx, map[string]any{
		"message_id": msg.ID,
		"event_type": eventType,
	})

	if eventType != events.TypeOrderStatusChanged {
		c.logg.Info(logCtx, "skipping unrelated event")
		return processResult{ack: true}
	}

	envelope, err := events.DecodeOrderStatusChanged(msg.Data)
	if err != nil {
		c.logg.Error(logCtx, "failed to decode envelope", err)
		return processResult{ack: true}
	}
	if envelope.EventID == "" || envelope.OrderID == "" {
		c.logg.Error(logCtx, "envelope missing identifiers", nil)
		return processResult{ack: true}
	}

	already, err := c.idempotency.CheckAndMark(ctx, orderNotificationConsumer, envelope.EventID)
	if err != nil {
		c.logg.Error(logCtx, "idempotency check failed", err)
		return processResult{nack: true}
	}
	if already {
		c.logg.Info(logCtx, "event already processed")
		return processResult{ack: true}
	}

	logCtx = c.logg.WithFields(logCtx, map[string]any{
		"order_id": envelope.OrderID,
		"status":   envelope.Status,
	})

	notification := models.Notification{
		ID:      identifier.New(identifier.PrefixNotification),
		EventID: envelope.EventID,
		OrderID: envelope.OrderID,
		UserID:  envelope.UserID,
		Status:  envelope.Status,
		Message: statusMessage(envelope.OrderID, envelope.Status),
	}
	if err := c.repo.Create(ctx, &notification); err != nil {
		if pkgerrors.IsUniqueViolation(err) {
			c.logg.Info(logCtx, "notification already recorded")
			return processResult{ack: true}
		}
		c.logg.Error(logCtx, "failed to store notification", err)
		_ = c.idempotency.Unmark(ctx, orderNotificationConsumer, envelope.EventID)
		return processResult{nack: true}
	}

	c.logg.Info(logCtx, "notification recorded")
	return processResult{ack: true}
}

func statusMessage(orderID, status string) string {
	switch enums.OrderStatus(status) {
	case enums.OrderStatusShipped:
		return fmt.Sprintf("Order %s is on its way.", orderID)
	case enums.OrderStatusDelivered:
		return fmt.Sprintf("Order %s was delivered.", orderID)
	case enums.OrderStatusCancelled:
		return fmt.Sprintf("Order %s was cancelled.", orderID)
	case enums.OrderStatusIssue:
		return fmt.Sprintf("Order %s needs attention.", orderID)
	default:
		return fmt.Sprintf("Order %s moved to %s.", orderID, status)
	}
}
