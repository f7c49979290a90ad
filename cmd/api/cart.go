package main

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/rickfeng0804-dot/NoodleGenius/internal/repo"
)

var ErrMissingSessionID = errors.New("session_id is required")

type AddCartItemRequest struct {
	ItemID string `json:"item_id" validate:"required"`
}

type CartResponse struct {
	Items       interface{} `json:"items"`
	TotalAmount float64     `json:"total_amount"`
}

// getCartHandler godoc
//
//	@Summary		Get the session cart
//	@Description	Returns the cart for one customer session with its running total
//	@Tags			cart
//	@Produce		json
//	@Param			session_id	path		string	true	"Session ID"
//	@Success		200			{object}	CartResponse
//	@Failure		400			{object}	map[string]string
//	@Failure		500			{object}	map[string]string
//	@Router			/cart/{session_id} [get]
func (app *application) getCartHandler(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "session_id")
	if sessionID == "" {
		app.badRequestResponse(w, r, ErrMissingSessionID)
		return
	}

	items, total, err := app.orderService.Cart(r.Context(), sessionID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, CartResponse{Items: items, TotalAmount: total}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// addCartItemHandler godoc
//
//	@Summary		Add one unit of a menu item to the cart
//	@Description	Adding an item already in the cart increments its quantity
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			session_id	path		string				true	"Session ID"
//	@Param			request		body		AddCartItemRequest	true	"Item to add"
//	@Success		204			{object}	nil
//	@Failure		400			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Router			/cart/{session_id}/items [post]
func (app *application) addCartItemHandler(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "session_id")
	if sessionID == "" {
		app.badRequestResponse(w, r, ErrMissingSessionID)
		return
	}

	var req AddCartItemRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.orderService.AddToCart(r.Context(), sessionID, req.ItemID); err != nil {
		if errors.Is(err, repo.ErrItemNotFound) {
			app.notFoundError(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// removeCartItemHandler godoc
//
//	@Summary		Remove one unit of an item from the cart
//	@Description	Removing the last unit removes the cart line entirely
//	@Tags			cart
//	@Produce		json
//	@Param			session_id	path		string	true	"Session ID"
//	@Param			item_id		path		string	true	"Menu item ID"
//	@Success		204			{object}	nil
//	@Failure		400			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Router			/cart/{session_id}/items/{item_id} [delete]
func (app *application) removeCartItemHandler(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "session_id")
	itemID := chi.URLParam(r, "item_id")
	if sessionID == "" || itemID == "" {
		app.badRequestResponse(w, r, errors.New("session_id and item_id are required"))
		return
	}

	if err := app.orderService.RemoveFromCart(r.Context(), sessionID, itemID); err != nil {
		if errors.Is(err, repo.ErrItemNotFound) {
			app.notFoundError(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
