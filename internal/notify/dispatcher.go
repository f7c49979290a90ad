// Package notify models the three outbound channels fired when an order
// is placed: spreadsheet sync, owner email, and Line message.
package notify

import (
	"context"

	"github.com/rickfeng0804-dot/NoodleGenius/internal/domain"
)

type Status string

const (
	StatusSent    Status = "sent"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// Dispatcher has one method per channel so a real integration can be
// swapped in without touching calling code. A channel fires only when it
// is enabled and its endpoint or credential is configured; otherwise the
// result is StatusSkipped.
type Dispatcher interface {
	SyncToSheet(ctx context.Context, order *domain.Order, settings domain.StoreSettings) (Status, error)
	SendEmail(ctx context.Context, order *domain.Order, settings domain.StoreSettings) (Status, error)
	SendLine(ctx context.Context, order *domain.Order, settings domain.StoreSettings) (Status, error)

	// NotifyOrderReady fires when an order reaches COMPLETED and carries
	// a customer contact method.
	NotifyOrderReady(ctx context.Context, order *domain.Order) (Status, error)
}
