package domain

import (
	"fmt"
	"time"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPaid      OrderStatus = "PAID"
	StatusCooking   OrderStatus = "COOKING"
	StatusCompleted OrderStatus = "COMPLETED"
	StatusServed    OrderStatus = "SERVED"
)

// nextStatus is the full lifecycle table. Transitions are strict and
// linear: no skipping, no reverse, SERVED is terminal.
var nextStatus = map[OrderStatus]OrderStatus{
	StatusPending:   StatusPaid,
	StatusPaid:      StatusCooking,
	StatusCooking:   StatusCompleted,
	StatusCompleted: StatusServed,
}

// Next returns the single legal successor of s, or false when s is
// terminal or unknown.
func (s OrderStatus) Next() (OrderStatus, bool) {
	next, ok := nextStatus[s]
	return next, ok
}

func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusCooking, StatusCompleted, StatusServed:
		return true
	}
	return false
}

// CanTransition reports whether from -> to is a legal single step.
func CanTransition(from, to OrderStatus) bool {
	next, ok := nextStatus[from]
	return ok && next == to
}

type InvalidTransitionError struct {
	OrderID string
	From    OrderStatus
	To      OrderStatus
}

func (e *InvalidTransitionError) Error() string {
	if e.To == "" {
		return fmt.Sprintf("order %s: status %s is terminal", e.OrderID, e.From)
	}
	return fmt.Sprintf("order %s: illegal transition %s -> %s", e.OrderID, e.From, e.To)
}

type CartItem struct {
	MenuItem
	Quantity int `json:"quantity"`
}

type Order struct {
	ID            string      `json:"id"`
	CustomerName  string      `json:"customer_name,omitempty"`
	TableNumber   string      `json:"table_number"`
	Items         []CartItem  `json:"items"`
	TotalAmount   float64     `json:"total_amount"`
	Status        OrderStatus `json:"status"`
	Timestamp     time.Time   `json:"timestamp"`
	ContactLineID string      `json:"contact_line_id,omitempty"`
	ContactEmail  string      `json:"contact_email,omitempty"`
	SyncedToSheet bool        `json:"synced_to_sheet"`
	SentEmail     bool        `json:"sent_email"`
	SentLine      bool        `json:"sent_line"`
}

func (o *Order) HasContact() bool {
	return o.ContactLineID != "" || o.ContactEmail != ""
}

// CartTotal sums price*quantity over a cart. Orders snapshot this value
// at creation time and never recompute it.
func CartTotal(items []CartItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
