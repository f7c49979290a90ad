package main

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/rickfeng0804-dot/NoodleGenius/internal/domain"
	"github.com/rickfeng0804-dot/NoodleGenius/internal/repo"
	"github.com/rickfeng0804-dot/NoodleGenius/internal/service"
)

var ErrMissingOrderID = errors.New("order_id is required")

type PlaceOrderRequest struct {
	SessionID     string `json:"session_id" validate:"required"`
	TableNumber   string `json:"table_number" validate:"required"`
	CustomerName  string `json:"customer_name,omitempty"`
	ContactLineID string `json:"contact_line_id,omitempty"`
	ContactEmail  string `json:"contact_email,omitempty" validate:"omitempty,email"`
}

// placeOrderHandler godoc
//
//	@Summary		Place an order
//	@Description	Checks out the session cart. The order enters the ledger as PENDING once the notification channels have fired.
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		PlaceOrderRequest	true	"Checkout request"
//	@Success		201		{object}	domain.Order
//	@Failure		400		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/orders [post]
func (app *application) placeOrderHandler(w http.ResponseWriter, r *http.Request) {
	var req PlaceOrderRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	order, err := app.orderService.PlaceOrder(r.Context(), service.PlaceOrderInput{
		SessionID:     req.SessionID,
		TableNumber:   req.TableNumber,
		CustomerName:  req.CustomerName,
		ContactLineID: req.ContactLineID,
		ContactEmail:  req.ContactEmail,
	})
	if err != nil {
		if errors.Is(err, service.ErrEmptyCart) {
			app.badRequestResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusCreated, order); err != nil {
		app.internalServerError(w, r, err)
	}
}

// pendingOrdersHandler godoc
//
//	@Summary		Cashier queue
//	@Description	All PENDING orders, oldest first
//	@Tags			orders
//	@Produce		json
//	@Success		200	{array}	domain.Order
//	@Failure		500	{object}	map[string]string
//	@Router			/orders/pending [get]
func (app *application) pendingOrdersHandler(w http.ResponseWriter, r *http.Request) {
	orders, err := app.orderService.PendingOrders(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, orders); err != nil {
		app.internalServerError(w, r, err)
	}
}

// activeOrdersHandler godoc
//
//	@Summary		Kitchen queue (KDS)
//	@Description	Orders in PAID, COOKING or COMPLETED, oldest first. PENDING and SERVED orders are excluded.
//	@Tags			orders
//	@Produce		json
//	@Success		200	{array}	domain.Order
//	@Failure		500	{object}	map[string]string
//	@Router			/orders/active [get]
func (app *application) activeOrdersHandler(w http.ResponseWriter, r *http.Request) {
	orders, err := app.orderService.ActiveOrders(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, orders); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getOrderHandler godoc
//
//	@Summary		Get order by ID
//	@Tags			orders
//	@Produce		json
//	@Param			order_id	path		string	true	"Order ID"
//	@Success		200			{object}	domain.Order
//	@Failure		404			{object}	map[string]string
//	@Router			/orders/{order_id} [get]
func (app *application) getOrderHandler(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "order_id")
	if orderID == "" {
		app.badRequestResponse(w, r, ErrMissingOrderID)
		return
	}

	order, err := app.orderService.Order(r.Context(), orderID)
	if err != nil {
		app.orderErrorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, order); err != nil {
		app.internalServerError(w, r, err)
	}
}

// confirmPaymentHandler godoc
//
//	@Summary		Confirm payment
//	@Description	Cashier action: PENDING -> PAID. Any other current status is rejected.
//	@Tags			orders
//	@Produce		json
//	@Param			order_id	path		string	true	"Order ID"
//	@Success		200			{object}	domain.Order
//	@Failure		404			{object}	map[string]string
//	@Failure		409			{object}	map[string]string
//	@Router			/orders/{order_id}/payment [post]
func (app *application) confirmPaymentHandler(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "order_id")
	if orderID == "" {
		app.badRequestResponse(w, r, ErrMissingOrderID)
		return
	}

	order, err := app.orderService.ConfirmPayment(r.Context(), orderID)
	if err != nil {
		app.orderErrorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, order); err != nil {
		app.internalServerError(w, r, err)
	}
}

// advanceOrderHandler godoc
//
//	@Summary		Advance order status
//	@Description	Kitchen action: applies the single legal next status. Advancing a SERVED order is rejected.
//	@Tags			orders
//	@Produce		json
//	@Param			order_id	path		string	true	"Order ID"
//	@Success		200			{object}	domain.Order
//	@Failure		404			{object}	map[string]string
//	@Failure		409			{object}	map[string]string
//	@Router			/orders/{order_id}/advance [post]
func (app *application) advanceOrderHandler(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "order_id")
	if orderID == "" {
		app.badRequestResponse(w, r, ErrMissingOrderID)
		return
	}

	order, err := app.orderService.Advance(r.Context(), orderID)
	if err != nil {
		app.orderErrorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, order); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getOrderAuditHandler godoc
//
//	@Summary		Order status history
//	@Description	Audit trail for one order, newest first
//	@Tags			orders
//	@Produce		json
//	@Param			order_id	path	string	true	"Order ID"
//	@Success		200			{array}	domain.OrderStatusAudit
//	@Failure		500			{object}	map[string]string
//	@Router			/orders/{order_id}/audit [get]
func (app *application) getOrderAuditHandler(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "order_id")
	if orderID == "" {
		app.badRequestResponse(w, r, ErrMissingOrderID)
		return
	}

	audits, err := app.orderService.AuditTrail(r.Context(), orderID, 50)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, audits); err != nil {
		app.internalServerError(w, r, err)
	}
}

func (app *application) orderErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	var invalid *domain.InvalidTransitionError
	switch {
	case errors.As(err, &invalid):
		app.conflictResponse(w, r, err)
	case errors.Is(err, repo.ErrOrderNotFound):
		app.notFoundError(w, r, err)
	default:
		app.internalServerError(w, r, err)
	}
}
