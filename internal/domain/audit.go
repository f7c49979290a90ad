package domain

import "time"

const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
)

type OrderStatusAudit struct {
	OrderID   string      `json:"order_id"`
	EventType string      `json:"event_type"`
	OldStatus OrderStatus `json:"old_status,omitempty"`
	NewStatus OrderStatus `json:"new_status"`
	Actor     string      `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
}
